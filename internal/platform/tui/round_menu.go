package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-arkanoid/internal/arkanoid"
	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// RoundSelection holds the user's choice from the round selector.
type RoundSelection struct {
	Round      int // 1-indexed starting round
	Difficulty config.DifficultyPreset
}

// RoundSelectModel lets users choose a starting round and difficulty.
type RoundSelectModel struct {
	cursor        int
	roundCursor   int
	inRoundSelect bool
	width         int
	height        int
	keyMapper     *KeyMapper
	selection     RoundSelection
	choosing      bool
	quitting      bool
	back          bool
}

var difficultyPresets = []struct {
	Preset config.DifficultyPreset
	Label  string
}{
	{config.DifficultyEasy, "Easy"},
	{config.DifficultyNormal, "Normal"},
	{config.DifficultyHard, "Hard"},
	{config.DifficultyFixed, "Fixed (no ramp-up)"},
}

// NewRoundSelectModel creates a new round selection model.
func NewRoundSelectModel(width, height int) RoundSelectModel {
	return RoundSelectModel{
		cursor:    1, // Normal preselected
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m RoundSelectModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m RoundSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m RoundSelectModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	if m.inRoundSelect {
		return m.handleRoundSelectKey(action)
	}
	return m.handleDifficultyKey(action)
}

func (m RoundSelectModel) handleDifficultyKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(difficultyPresets)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.selection.Difficulty = difficultyPresets[m.cursor].Preset
		m.inRoundSelect = true
		m.roundCursor = 0
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

func (m RoundSelectModel) handleRoundSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	roundCount := arkanoid.RoundCount()

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.roundCursor > 0 {
			m.roundCursor--
		}
	case MenuActionDown:
		if m.roundCursor < roundCount-1 {
			m.roundCursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selection.Round = m.roundCursor + 1 // 1-indexed
		return m, tea.Quit
	case MenuActionBack:
		m.inRoundSelect = false
	}

	return m, nil
}

// View renders the difficulty/round selection.
func (m RoundSelectModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inRoundSelect {
		return m.viewRoundSelect()
	}
	return m.viewDifficultySelect()
}

func (m RoundSelectModel) viewDifficultySelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("A R K A N O I D", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	for i, preset := range difficultyPresets {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+preset.Label, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

func (m RoundSelectModel) viewRoundSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("SELECT ROUND", m.width))
	b.WriteString("\n\n")

	for i := 0; i < arkanoid.RoundCount(); i++ {
		cursor := "  "
		if i == m.roundCursor {
			cursor = "> "
		}

		round := arkanoid.GetRound(i)
		line := fmt.Sprintf("%s%2d. %s", cursor, round.Number, round.Name)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m RoundSelectModel) Selected() *RoundSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m RoundSelectModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m RoundSelectModel) WantsBack() bool {
	return m.back
}

// RunRoundSelector runs the round selection and returns the selection.
// A nil selection means the user backed out or quit.
func RunRoundSelector(cfg core.RuntimeConfig) (*RoundSelection, core.RuntimeConfig, error) {
	model := NewRoundSelectModel(cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, cfg, err
	}

	m, ok := finalModel.(RoundSelectModel)
	if !ok {
		return nil, cfg, nil
	}

	if m.IsQuitting() || m.WantsBack() {
		return nil, cfg, nil
	}

	return m.Selected(), cfg, nil
}
