package arkanoid

import (
	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// BrickColour identifies a brick variety. The colour determines point
// value and durability: silver takes two hits and scores 50 times the
// round number, gold is indestructible.
type BrickColour int

const (
	BrickNone BrickColour = iota
	BrickWhite
	BrickSilver
	BrickOrange
	BrickCyan
	BrickGreen
	BrickRed
	BrickBlue
	BrickPink
	BrickYellow
	BrickGold
)

// Points returns the score value for destroying this brick.
// Silver bricks scale with the round number.
func (c BrickColour) Points(round int) int {
	switch c {
	case BrickWhite:
		return 40
	case BrickSilver:
		return 50 * round
	case BrickOrange:
		return 60
	case BrickCyan:
		return 70
	case BrickGreen:
		return 80
	case BrickRed:
		return 90
	case BrickBlue:
		return 100
	case BrickPink:
		return 110
	case BrickYellow:
		return 120
	default:
		return 0
	}
}

// Hits returns the number of ball hits needed to destroy this brick.
// Gold bricks return 0, meaning indestructible.
func (c BrickColour) Hits() int {
	switch c {
	case BrickSilver:
		return 2
	case BrickGold:
		return 0
	case BrickNone:
		return 0
	default:
		return 1
	}
}

// Destructible returns true if the brick can be destroyed.
func (c BrickColour) Destructible() bool {
	return c != BrickNone && c != BrickGold
}

// Colour returns the screen color for this brick variety.
func (c BrickColour) Colour() core.Color {
	switch c {
	case BrickWhite:
		return core.ColorBrightWhite
	case BrickSilver:
		return core.ColorGray
	case BrickOrange:
		return core.ColorOrange
	case BrickCyan:
		return core.ColorCyan
	case BrickGreen:
		return core.ColorGreen
	case BrickRed:
		return core.ColorRed
	case BrickBlue:
		return core.ColorBlue
	case BrickPink:
		return core.ColorBrightMagenta
	case BrickYellow:
		return core.ColorYellow
	case BrickGold:
		return core.ColorBrightYellow
	default:
		return core.ColorDefault
	}
}

// Brick is a single brick in the grid.
type Brick struct {
	Colour  BrickColour
	HP      int
	Alive   bool
	PowerUp PowerUpKind // capsule released when destroyed, PowerNone for most bricks
}

// Grid holds the brick field for the current round plus the screen
// layout needed to map playfield cells to bricks.
type Grid struct {
	Cols, Rows int
	Bricks     [][]Brick

	// Screen layout
	Left   int // x of the leftmost brick cell
	Top    int // y of the topmost brick row
	BrickW int // brick width in cells, brick height is one row
}

// NewGrid builds a grid from a round layout. Capsule kinds from the
// round's powerup list are assigned to random destructible bricks.
func NewGrid(round *Round, left, top, brickW int, rng *SimpleRNG) *Grid {
	rows := len(round.Layout)
	g := &Grid{
		Cols:   GridCols,
		Rows:   rows,
		Left:   left,
		Top:    top,
		BrickW: brickW,
	}

	g.Bricks = make([][]Brick, rows)
	type cell struct{ row, col int }
	var destructible []cell

	for row, line := range round.Layout {
		g.Bricks[row] = make([]Brick, GridCols)
		for col := 0; col < GridCols && col < len(line); col++ {
			colour := colourForChar(rune(line[col]))
			if colour == BrickNone {
				continue
			}
			g.Bricks[row][col] = Brick{
				Colour: colour,
				HP:     colour.Hits(),
				Alive:  true,
			}
			if colour.Destructible() {
				destructible = append(destructible, cell{row, col})
			}
		}
	}

	// Scatter the round's capsules over destructible bricks
	for _, kind := range round.PowerUps {
		if len(destructible) == 0 {
			break
		}
		i := rng.Intn(len(destructible))
		c := destructible[i]
		g.Bricks[c.row][c.col].PowerUp = kind
		destructible = append(destructible[:i], destructible[i+1:]...)
	}

	return g
}

// colourForChar maps a layout character to a brick colour.
func colourForChar(ch rune) BrickColour {
	switch ch {
	case 'w':
		return BrickWhite
	case 's':
		return BrickSilver
	case 'o':
		return BrickOrange
	case 'c':
		return BrickCyan
	case 'g':
		return BrickGreen
	case 'r':
		return BrickRed
	case 'b':
		return BrickBlue
	case 'p':
		return BrickPink
	case 'y':
		return BrickYellow
	case 'G':
		return BrickGold
	default:
		return BrickNone
	}
}

// At returns the brick at grid coordinates, or nil if out of range.
func (g *Grid) At(row, col int) *Brick {
	if row < 0 || row >= g.Rows || col < 0 || col >= g.Cols {
		return nil
	}
	return &g.Bricks[row][col]
}

// CellToBrick maps a playfield cell to grid coordinates.
// Returns (-1, -1) when the cell is outside the brick area.
func (g *Grid) CellToBrick(x, y int) (row, col int) {
	row = y - g.Top
	if row < 0 || row >= g.Rows {
		return -1, -1
	}
	col = (x - g.Left) / g.BrickW
	if x < g.Left || col < 0 || col >= g.Cols {
		return -1, -1
	}
	return row, col
}

// AliveAt returns the alive brick covering a playfield cell, or nil.
func (g *Grid) AliveAt(x, y int) (*Brick, int, int) {
	row, col := g.CellToBrick(x, y)
	if row < 0 {
		return nil, -1, -1
	}
	b := &g.Bricks[row][col]
	if !b.Alive {
		return nil, -1, -1
	}
	return b, row, col
}

// CountDestructible returns the number of alive destructible bricks.
// The round is complete when this reaches zero.
func (g *Grid) CountDestructible() int {
	count := 0
	for row := range g.Bricks {
		for col := range g.Bricks[row] {
			b := g.Bricks[row][col]
			if b.Alive && b.Colour.Destructible() {
				count++
			}
		}
	}
	return count
}
