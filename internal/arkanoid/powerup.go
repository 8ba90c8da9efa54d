package arkanoid

import (
	"math"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// PowerUpKind identifies a powerup capsule variety.
type PowerUpKind int

const (
	PowerNone PowerUpKind = iota
	PowerExtraLife
	PowerSlowBall
	PowerExpand
	PowerLaser
	PowerCatch
	PowerDuplicate
)

// Glyph returns the display character for a falling capsule.
func (k PowerUpKind) Glyph() rune {
	switch k {
	case PowerExtraLife:
		return 'P'
	case PowerSlowBall:
		return 'S'
	case PowerExpand:
		return 'E'
	case PowerLaser:
		return 'L'
	case PowerCatch:
		return 'C'
	case PowerDuplicate:
		return 'D'
	default:
		return '?'
	}
}

// Colour returns the capsule display color.
func (k PowerUpKind) Colour() core.Color {
	switch k {
	case PowerExtraLife:
		return core.ColorGray
	case PowerSlowBall:
		return core.ColorBlue
	case PowerExpand:
		return core.ColorCyan
	case PowerLaser:
		return core.ColorRed
	case PowerCatch:
		return core.ColorGreen
	case PowerDuplicate:
		return core.ColorBrightCyan
	default:
		return core.ColorDefault
	}
}

// String returns a human-readable name for the powerup.
func (k PowerUpKind) String() string {
	switch k {
	case PowerExtraLife:
		return "Extra Life"
	case PowerSlowBall:
		return "Slow Ball"
	case PowerExpand:
		return "Expand"
	case PowerLaser:
		return "Laser"
	case PowerCatch:
		return "Catch"
	case PowerDuplicate:
		return "Duplicate"
	default:
		return "None"
	}
}

// Capsule is a powerup falling from a destroyed brick.
type Capsule struct {
	X, Y   float64
	Kind   PowerUpKind
	Active bool
}

// CellX returns the x cell the capsule occupies.
func (c *Capsule) CellX() int {
	return int(math.Floor(c.X))
}

// CellY returns the y cell the capsule occupies.
func (c *Capsule) CellY() int {
	return int(math.Floor(c.Y))
}

// updateCapsules advances falling capsules and activates the one the
// paddle catches.
func (g *Game) updateCapsules() {
	for i := range g.capsules {
		c := &g.capsules[i]
		if !c.Active {
			continue
		}

		c.Y += g.cfg.PowerUps.FallSpeed

		// Fell past the paddle row
		if c.Y >= float64(g.runtime.ScreenH) {
			c.Active = false
			continue
		}

		// Caught by the paddle
		if c.CellY() == g.paddle.Y && g.paddle.Covers(c.X) {
			c.Active = false
			g.activatePowerUp(c.Kind)
		}
	}
}

// activatePowerUp applies a caught capsule. Only one powerup is active
// at a time: catching a new one ends the previous effect. An exploding
// paddle cannot catch anything.
func (g *Game) activatePowerUp(kind PowerUpKind) {
	if g.paddle.State == PaddleExploding {
		return
	}

	g.deactivatePowerUp()

	switch kind {
	case PowerExtraLife:
		g.lives++

	case PowerSlowBall:
		g.active = kind
		g.baseSpeed = g.cfg.Ball.SlowSpeed
		for _, ball := range g.balls {
			if ball.Active {
				ball.Speed = g.baseSpeed
			}
		}

	case PowerExpand:
		g.active = kind
		g.paddle.State = PaddleWide
		g.paddle.SetWidth(g.cfg.Paddle.WideWidth)
		g.clampPaddle()
		g.baseSpeed = g.cfg.Ball.BaseSpeed + g.cfg.Paddle.SpeedBonus

	case PowerLaser:
		g.active = kind
		g.paddle.State = PaddleLaser
		g.baseSpeed = g.cfg.Ball.BaseSpeed + g.cfg.Paddle.SpeedBonus

	case PowerCatch:
		g.active = kind

	case PowerDuplicate:
		g.duplicateBalls()
	}
}

// deactivatePowerUp ends the active powerup and restores defaults.
func (g *Game) deactivatePowerUp() {
	switch g.active {
	case PowerSlowBall, PowerExpand, PowerLaser:
		g.baseSpeed = g.cfg.Ball.BaseSpeed
	case PowerCatch:
		g.releaseBalls()
	}

	if g.paddle.State == PaddleWide || g.paddle.State == PaddleLaser {
		g.paddle.State = PaddleNormal
		g.paddle.SetWidth(g.cfg.Paddle.Width)
		g.clampPaddle()
	}

	g.active = PowerNone
}

// duplicateBalls clones every live ball with a slightly different
// heading, up to the configured cap.
func (g *Game) duplicateBalls() {
	clones := make([]*Ball, 0, len(g.balls))
	for _, ball := range g.balls {
		if !ball.Active || ball.Anchored {
			continue
		}
		if g.countActiveBalls()+len(clones) >= g.cfg.Ball.MaxBalls {
			break
		}
		clone := *ball
		clone.Angle = normalizeAngle(ball.Angle + 0.5 + g.rng.Jitter(0.2))
		clones = append(clones, &clone)
	}
	g.balls = append(g.balls, clones...)
}
