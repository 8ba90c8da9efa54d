package arkanoid

import "math"

// Snapshot captures the full simulation state for determinism tests
// and replay. Float fields are stored as raw IEEE 754 bits so that
// restore is exact.
type Snapshot struct {
	State      string
	TickCount  int
	StateTick  int
	Score      int
	Lives      int
	RoundIndex int
	Active     int
	BaseSpeed  uint64

	PaddleX     uint64
	PaddleY     int
	PaddleWidth int
	PaddleState int

	LaserCooldown   int
	EnemiesReleased int
	ReleaseTimer    int
	RNGState        uint64

	// Flattened entity data
	Balls    []uint64 // 7 per ball: x, y, angle, speed, anchored, anchorDX, active
	Capsules []uint64 // 4 per capsule: x, y, kind, active
	Enemies  []uint64 // 5 per enemy: x, y, angle, steerIn, active
	Bolts    []uint64 // 3 per bolt: x, y, active
	Bricks   []int    // 3 per cell: alive, hp, powerup
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

// Snapshot captures the current game state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		State:           g.state,
		TickCount:       g.tickCount,
		StateTick:       g.stateTick,
		Score:           g.score,
		Lives:           g.lives,
		RoundIndex:      g.roundIndex,
		Active:          int(g.active),
		BaseSpeed:       math.Float64bits(g.baseSpeed),
		PaddleX:         math.Float64bits(g.paddle.X),
		PaddleY:         g.paddle.Y,
		PaddleWidth:     g.paddle.Width,
		PaddleState:     int(g.paddle.State),
		LaserCooldown:   g.laserCooldown,
		EnemiesReleased: g.enemiesReleased,
		ReleaseTimer:    g.releaseTimer,
		RNGState:        g.rng.State(),
	}

	for _, ball := range g.balls {
		s.Balls = append(s.Balls,
			math.Float64bits(ball.X),
			math.Float64bits(ball.Y),
			math.Float64bits(ball.Angle),
			math.Float64bits(ball.Speed),
			boolBit(ball.Anchored),
			math.Float64bits(ball.AnchorDX),
			boolBit(ball.Active),
		)
	}

	for i := range g.capsules {
		c := &g.capsules[i]
		s.Capsules = append(s.Capsules,
			math.Float64bits(c.X),
			math.Float64bits(c.Y),
			uint64(c.Kind),
			boolBit(c.Active),
		)
	}

	for _, e := range g.enemies {
		s.Enemies = append(s.Enemies,
			math.Float64bits(e.X),
			math.Float64bits(e.Y),
			math.Float64bits(e.Angle),
			uint64(e.SteerIn),
			boolBit(e.Active),
		)
	}

	for i := range g.bolts {
		b := &g.bolts[i]
		s.Bolts = append(s.Bolts,
			math.Float64bits(b.X),
			math.Float64bits(b.Y),
			boolBit(b.Active),
		)
	}

	for row := 0; row < g.grid.Rows; row++ {
		for col := 0; col < g.grid.Cols; col++ {
			brick := g.grid.Bricks[row][col]
			alive := 0
			if brick.Alive {
				alive = 1
			}
			s.Bricks = append(s.Bricks, alive, brick.HP, int(brick.PowerUp))
		}
	}

	return s
}

// ApplySnapshot restores the game to a previously captured state.
// The grid geometry must match, so the game must have been Reset with
// the same runtime config first.
func (g *Game) ApplySnapshot(s Snapshot) {
	g.state = s.State
	g.tickCount = s.TickCount
	g.stateTick = s.StateTick
	g.score = s.Score
	g.lives = s.Lives
	g.roundIndex = s.RoundIndex
	g.active = PowerUpKind(s.Active)
	g.baseSpeed = math.Float64frombits(s.BaseSpeed)

	g.paddle.X = math.Float64frombits(s.PaddleX)
	g.paddle.Y = s.PaddleY
	g.paddle.Width = s.PaddleWidth
	g.paddle.State = PaddleState(s.PaddleState)

	g.laserCooldown = s.LaserCooldown
	g.enemiesReleased = s.EnemiesReleased
	g.releaseTimer = s.ReleaseTimer
	g.rng.SetState(s.RNGState)

	g.balls = g.balls[:0]
	for i := 0; i+6 < len(s.Balls); i += 7 {
		g.balls = append(g.balls, &Ball{
			X:        math.Float64frombits(s.Balls[i]),
			Y:        math.Float64frombits(s.Balls[i+1]),
			Angle:    math.Float64frombits(s.Balls[i+2]),
			Speed:    math.Float64frombits(s.Balls[i+3]),
			Anchored: s.Balls[i+4] == 1,
			AnchorDX: math.Float64frombits(s.Balls[i+5]),
			Active:   s.Balls[i+6] == 1,
		})
	}

	g.capsules = g.capsules[:0]
	for i := 0; i+3 < len(s.Capsules); i += 4 {
		g.capsules = append(g.capsules, Capsule{
			X:      math.Float64frombits(s.Capsules[i]),
			Y:      math.Float64frombits(s.Capsules[i+1]),
			Kind:   PowerUpKind(s.Capsules[i+2]),
			Active: s.Capsules[i+3] == 1,
		})
	}

	g.enemies = g.enemies[:0]
	for i := 0; i+4 < len(s.Enemies); i += 5 {
		g.enemies = append(g.enemies, &Enemy{
			X:       math.Float64frombits(s.Enemies[i]),
			Y:       math.Float64frombits(s.Enemies[i+1]),
			Angle:   math.Float64frombits(s.Enemies[i+2]),
			SteerIn: int(s.Enemies[i+3]),
			Active:  s.Enemies[i+4] == 1,
		})
	}

	g.bolts = g.bolts[:0]
	for i := 0; i+2 < len(s.Bolts); i += 3 {
		g.bolts = append(g.bolts, Bolt{
			X:      math.Float64frombits(s.Bolts[i]),
			Y:      math.Float64frombits(s.Bolts[i+1]),
			Active: s.Bolts[i+2] == 1,
		})
	}

	i := 0
	for row := 0; row < g.grid.Rows && i+2 < len(s.Bricks); row++ {
		for col := 0; col < g.grid.Cols && i+2 < len(s.Bricks); col++ {
			brick := &g.grid.Bricks[row][col]
			brick.Alive = s.Bricks[i] == 1
			brick.HP = s.Bricks[i+1]
			brick.PowerUp = PowerUpKind(s.Bricks[i+2])
			i += 3
		}
	}
}

// Hash returns a deterministic hash of the snapshot for quick
// state comparison in tests.
func (s Snapshot) Hash() uint64 {
	h := uint64(14695981039346656037)

	mix := func(v uint64) {
		h = h*31 + v
	}

	for _, ch := range s.State {
		mix(uint64(ch))
	}
	mix(uint64(s.TickCount))
	mix(uint64(s.StateTick))
	mix(uint64(s.Score))
	mix(uint64(s.Lives))
	mix(uint64(s.RoundIndex))
	mix(uint64(s.Active))
	mix(s.BaseSpeed)
	mix(s.PaddleX)
	mix(uint64(s.PaddleY))
	mix(uint64(s.PaddleWidth))
	mix(uint64(s.PaddleState))
	mix(uint64(s.LaserCooldown))
	mix(uint64(s.EnemiesReleased))
	mix(uint64(s.ReleaseTimer))
	mix(s.RNGState)

	for _, v := range s.Balls {
		mix(v)
	}
	for _, v := range s.Capsules {
		mix(v)
	}
	for _, v := range s.Enemies {
		mix(v)
	}
	for _, v := range s.Bolts {
		mix(v)
	}
	for _, v := range s.Bricks {
		mix(uint64(v))
	}

	return h
}
