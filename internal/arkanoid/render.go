package arkanoid

import (
	"fmt"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	g.renderHUD(dst)
	g.renderWalls(dst)

	// During the intro, sprites appear together with the "READY" text
	spritesVisible := g.state != StateRoundStart || g.stateTick >= g.readyTick

	g.renderBricks(dst)
	if spritesVisible {
		g.renderCapsules(dst)
		g.renderEnemies(dst)
		g.renderBolts(dst)
		g.renderPaddle(dst)
		g.renderBalls(dst)
	}

	g.renderOverlay(dst)
}

// renderHUD draws the score, lives, and round indicator.
func (g *Game) renderHUD(dst *core.Screen) {
	scoreText := fmt.Sprintf("Score: %d", g.score)
	dst.DrawText(1, 0, scoreText)

	livesText := fmt.Sprintf("Lives: %d", g.lives)
	dst.DrawTextCentered(0, livesText)

	roundText := fmt.Sprintf("Round: %d/%d", g.roundIndex+1, RoundCount())
	dst.DrawText(dst.Width()-len(roundText)-1, 0, roundText)

	if g.active != PowerNone {
		dst.DrawTextColored(1, 1, g.active.String(), g.active.Colour())
	}
}

// renderWalls draws the playfield frame with the two enemy doors.
func (g *Game) renderWalls(dst *core.Screen) {
	w := g.runtime.ScreenW
	h := g.runtime.ScreenH
	wallY := g.playTop - 1

	for x := 0; x < w; x++ {
		dst.Set(x, wallY, '─')
	}
	dst.Set(0, wallY, '┌')
	dst.Set(w-1, wallY, '┐')

	for y := g.playTop; y < h; y++ {
		dst.Set(0, y, '│')
		dst.Set(w-1, y, '│')
	}

	// Enemy doors in the top wall
	dst.SetCell(w/4, wallY, DoorChar, core.ColorGray)
	dst.SetCell(3*w/4, wallY, DoorChar, core.ColorGray)
}

// renderBricks draws all alive bricks.
func (g *Game) renderBricks(dst *core.Screen) {
	for row := 0; row < g.grid.Rows; row++ {
		for col := 0; col < g.grid.Cols; col++ {
			brick := g.grid.Bricks[row][col]
			if !brick.Alive {
				continue
			}

			glyph := BrickChar
			if brick.Colour == BrickSilver && brick.HP < brick.Colour.Hits() {
				glyph = BrickWornChar // damaged silver
			}

			y := g.grid.Top + row
			x := g.grid.Left + col*g.grid.BrickW
			for dx := 0; dx < g.grid.BrickW; dx++ {
				dst.SetCell(x+dx, y, glyph, brick.Colour.Colour())
			}
		}
	}
}

// renderCapsules draws falling powerup capsules.
func (g *Game) renderCapsules(dst *core.Screen) {
	for i := range g.capsules {
		c := &g.capsules[i]
		if c.Active {
			dst.SetCell(c.CellX(), c.CellY(), c.Kind.Glyph(), c.Kind.Colour())
		}
	}
}

// renderEnemies draws live enemies with the round's glyph.
func (g *Game) renderEnemies(dst *core.Screen) {
	glyph := GetRound(g.roundIndex).EnemyGlyph
	for _, e := range g.enemies {
		if e.Active {
			dst.SetCell(e.CellX(), e.CellY(), glyph, core.ColorBrightRed)
		}
	}
}

// renderBolts draws laser bolts.
func (g *Game) renderBolts(dst *core.Screen) {
	for i := range g.bolts {
		b := &g.bolts[i]
		if b.Active {
			dst.SetCell(b.CellX(), b.CellY(), BoltChar, core.ColorBrightYellow)
		}
	}
}

// renderPaddle draws the paddle in its current form.
func (g *Game) renderPaddle(dst *core.Screen) {
	glyph := PaddleChar
	colour := core.ColorBrightCyan
	switch g.paddle.State {
	case PaddleLaser:
		glyph = PaddleLaserCh
		colour = core.ColorBrightMagenta
	case PaddleExploding:
		glyph = ExplodeChar
		colour = core.ColorBrightRed
	}

	x := g.paddle.CellX()
	for i := 0; i < g.paddle.Width; i++ {
		dst.SetCell(x+i, g.paddle.Y, glyph, colour)
	}
}

// renderBalls draws all live balls.
func (g *Game) renderBalls(dst *core.Screen) {
	for _, ball := range g.balls {
		if ball.Active {
			dst.SetCell(ball.CellX(), ball.CellY(), BallChar, core.ColorBrightWhite)
		}
	}
}

// renderOverlay draws intro text and game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StateRoundStart:
		if g.stateTick >= g.captionTick && g.stateTick < g.clearTextTick {
			round := GetRound(g.roundIndex)
			caption := fmt.Sprintf("ROUND %d - %s", round.Number, round.Name)
			dst.DrawTextCentered(dst.Height()/2-1, caption)
			if g.stateTick >= g.readyTick {
				dst.DrawTextCentered(dst.Height()/2+1, "READY")
			}
		}

	case StatePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case StateGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.score)
		g.drawCenteredBox(dst, "GAME OVER", subtitle)

	case StateWin:
		subtitle := fmt.Sprintf("Final Score: %d  |  Press R to restart", g.score)
		g.drawCenteredBox(dst, "YOU WIN!", subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
