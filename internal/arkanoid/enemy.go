package arkanoid

import "math"

// Enemy is a hostile drone released from the doors in the top wall.
// Enemies drift toward the paddle with noisy steering and explode on
// contact with a ball, the paddle, or a laser bolt.
type Enemy struct {
	X, Y    float64
	Angle   float64
	SteerIn int // ticks until the next retarget
	Active  bool
}

// CellX returns the x cell the enemy occupies.
func (e *Enemy) CellX() int {
	return int(math.Floor(e.X))
}

// CellY returns the y cell the enemy occupies.
func (e *Enemy) CellY() int {
	return int(math.Floor(e.Y))
}

// releaseEnemies spawns a new enemy from one of the two doors when the
// release timer elapses and the round still has enemies to give.
func (g *Game) releaseEnemies() {
	round := GetRound(g.roundIndex)
	if g.enemiesReleased >= round.EnemyCount {
		return
	}
	if g.countActiveEnemies() >= g.cfg.Enemies.MaxActive {
		return
	}

	g.releaseTimer--
	if g.releaseTimer > 0 {
		return
	}
	g.releaseTimer = g.difficulty.ReleaseInterval(g.cfg.Enemies.ReleaseInterval, g.score, g.tickCount)

	// Alternate between the two doors
	doorX := float64(g.runtime.ScreenW / 4)
	if g.enemiesReleased%2 == 1 {
		doorX = float64(3 * g.runtime.ScreenW / 4)
	}

	g.enemies = append(g.enemies, &Enemy{
		X:       doorX,
		Y:       float64(g.playTop),
		Angle:   math.Pi / 2, // straight down
		SteerIn: g.steerDelay(),
		Active:  true,
	})
	g.enemiesReleased++
}

// steerDelay picks the tick count until an enemy retargets.
func (g *Game) steerDelay() int {
	span := g.cfg.Enemies.MaxSteerTicks - g.cfg.Enemies.MinSteerTicks
	if span <= 0 {
		return g.cfg.Enemies.MinSteerTicks
	}
	return g.cfg.Enemies.MinSteerTicks + g.rng.Intn(span)
}

// updateEnemies advances all enemies and resolves their collisions.
func (g *Game) updateEnemies() {
	for _, e := range g.enemies {
		if !e.Active {
			continue
		}

		// Noisy steering toward the paddle
		e.SteerIn--
		if e.SteerIn <= 0 {
			e.SteerIn = g.steerDelay()
			dx := g.paddle.CenterX() - e.X
			dy := float64(g.paddle.Y) - e.Y
			heading := math.Atan2(dy, dx)
			e.Angle = normalizeAngle(heading + g.rng.Jitter(g.cfg.Enemies.SteerNoise))
		}

		prevX, prevY := e.X, e.Y
		speed := g.cfg.Enemies.Speed
		e.X += math.Cos(e.Angle) * speed
		e.Y += math.Sin(e.Angle) * speed

		// Deflect off side and top walls
		if e.X <= float64(g.playLeft) || e.X >= float64(g.playRight) {
			e.X = prevX
			e.Angle = normalizeAngle(math.Pi - e.Angle)
		}
		if e.Y <= float64(g.playTop) {
			e.Y = prevY
			e.Angle = normalizeAngle(-e.Angle)
		}

		// Fell off the bottom
		if e.Y >= float64(g.runtime.ScreenH) {
			e.Active = false
			continue
		}

		// Deflect off bricks
		if brick, _, _ := g.grid.AliveAt(e.CellX(), e.CellY()); brick != nil {
			e.X, e.Y = prevX, prevY
			e.Angle = normalizeAngle(e.Angle + math.Pi + g.rng.Jitter(0.3))
			continue
		}

		// Explode on ball contact
		for _, ball := range g.balls {
			if ball.Active && !ball.Anchored &&
				ball.CellX() == e.CellX() && ball.CellY() == e.CellY() {
				g.killEnemy(e)
				break
			}
		}
		if !e.Active {
			continue
		}

		// Explode on paddle contact
		if e.CellY() == g.paddle.Y && g.paddle.Covers(e.X) && g.paddle.State != PaddleExploding {
			g.killEnemy(e)
		}
	}
}

// killEnemy destroys an enemy and awards its points.
func (g *Game) killEnemy(e *Enemy) {
	e.Active = false
	g.score += g.cfg.Enemies.Points
}

// countActiveEnemies returns the number of live enemies.
func (g *Game) countActiveEnemies() int {
	count := 0
	for _, e := range g.enemies {
		if e.Active {
			count++
		}
	}
	return count
}
