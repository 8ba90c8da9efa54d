// Package arkanoid implements the game logic: paddle, balls, bricks,
// powerups, enemies, and the round state machine. The package is pure
// simulation with no terminal dependencies; the platform layer handles
// input mapping, timing, and display.
package arkanoid

import (
	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/registry"
)

// Visual characters for rendering
const (
	PaddleChar    = '='
	PaddleLaserCh = '≡'
	ExplodeChar   = '*'
	BallChar      = '●'
	BoltChar      = '¦'
	BrickChar     = '█'
	BrickWornChar = '▓'
	DoorChar      = '▒'
)

// Game state constants
const (
	StateRoundStart = "round_start" // Caption/Ready countdown before the ball releases
	StatePlaying    = "playing"     // Ball in play
	StateBallOff    = "ball_off"    // Last ball lost, paddle about to explode
	StatePaused     = "paused"      // Game paused
	StateGameOver   = "gameover"    // No lives left
	StateWin        = "win"         // Final round cleared
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// startRound stores the 1-based starting round set via CLI
var startRound int

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = ""
	}
}

// SetStartRound sets the 1-based round the game starts at.
func SetStartRound(round int) {
	startRound = round
}

// Game implements the Arkanoid game logic.
type Game struct {
	// Game objects
	paddle   *Paddle
	balls    []*Ball
	grid     *Grid
	capsules []Capsule
	enemies  []*Enemy
	bolts    []Bolt

	// Game state
	state      string
	tickCount  int
	stateTick  int // ticks since entering the current state
	score      int
	lives      int
	roundIndex int         // 0-based
	active     PowerUpKind // the single active powerup
	baseSpeed  float64     // ball speed drifts back toward this

	// Enemy release
	enemiesReleased int
	releaseTimer    int

	// Laser fire cooldown
	laserCooldown int

	// Set when the last destructible brick dies mid-tick; the round
	// transition itself runs only after the entity loops finish.
	roundCleared bool

	// Round intro / ball-off timelines, derived from the tick rate
	captionTick     int // "ROUND N" appears
	readyTick       int // "READY" appears, sprites become visible
	clearTextTick   int // intro text is erased
	ballReleaseTick int // ball launches
	explodeTick     int // paddle explodes after losing the last ball
	decideTick      int // round restarts or the game ends

	// Configuration
	runtime    core.RuntimeConfig
	cfg        config.ArkanoidConfig
	difficulty *config.DifficultyManager
	rng        *SimpleRNG

	// Layout (computed from screen size)
	playLeft       int // leftmost playable cell
	playRight      int // rightmost playable cell
	playTop        int // topmost playable row
	paddleY        int
	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a new game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "arkanoid"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Arkanoid"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	// Load game config
	cfg, err := config.LoadArkanoid(configPath)
	if err != nil {
		cfg = config.DefaultArkanoidConfig()
	}

	// Apply difficulty preset if set
	if difficultyPreset != "" {
		config.ApplyArkanoidPreset(&cfg, difficultyPreset)
	}

	g.cfg = cfg

	// Initialize difficulty manager
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	// Deterministic RNG
	g.rng = NewSimpleRNG(runtime.Seed)

	// Calculate layout
	g.calculateLayout()

	// Check screen size
	g.minScreenW = 30
	g.minScreenH = 16
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	// Intro and ball-off timelines
	rate := runtime.TickRate
	if rate <= 0 {
		rate = 60
	}
	g.captionTick = rate
	g.readyTick = rate * 5 / 2
	g.clearTextTick = rate * 9 / 2
	g.ballReleaseTick = rate * 5
	g.explodeTick = rate / 3
	g.decideTick = rate * 5 / 3

	// Initialize game state
	g.score = 0
	g.lives = cfg.Gameplay.Lives
	g.tickCount = 0
	g.active = PowerNone
	g.baseSpeed = cfg.Ball.BaseSpeed
	g.roundCleared = false

	g.roundIndex = 0
	first := startRound
	if first == 0 {
		first = cfg.Gameplay.StartRound
	}
	if first > 0 && first <= RoundCount() {
		g.roundIndex = first - 1
	}

	g.paddle = &Paddle{
		Y:     g.paddleY,
		Width: cfg.Paddle.Width,
		State: PaddleNormal,
	}

	g.enterRound(g.roundIndex)
}

// calculateLayout computes the playfield geometry from the screen size.
func (g *Game) calculateLayout() {
	// Row 0 is the HUD, row 1 the top wall
	g.playTop = 2
	g.playLeft = 1
	g.playRight = g.runtime.ScreenW - 2
	g.paddleY = g.runtime.ScreenH - 2
}

// gridLayout computes where the brick grid sits on screen.
func (g *Game) gridLayout() (left, top, brickW int) {
	playW := g.playRight - g.playLeft + 1
	brickW = playW / GridCols
	if brickW < 2 {
		brickW = 2
	}
	left = g.playLeft + (playW-GridCols*brickW)/2
	top = g.playTop + 1
	return left, top, brickW
}

// enterRound builds the brick grid for a round and resets the paddle
// and ball for the intro countdown.
func (g *Game) enterRound(index int) {
	g.roundIndex = index

	left, top, brickW := g.gridLayout()
	g.grid = NewGrid(GetRound(index), left, top, brickW, g.rng)

	g.capsules = g.capsules[:0]
	g.enemies = g.enemies[:0]
	g.bolts = g.bolts[:0]
	g.enemiesReleased = 0
	g.releaseTimer = g.cfg.Enemies.ReleaseInterval

	g.resetPaddleAndBall()
	g.enterState(StateRoundStart)
}

// resetPaddleAndBall re-centers a normal paddle with one anchored ball.
func (g *Game) resetPaddleAndBall() {
	g.active = PowerNone
	g.baseSpeed = g.cfg.Ball.BaseSpeed
	g.laserCooldown = 0

	g.paddle.State = PaddleNormal
	g.paddle.Width = g.cfg.Paddle.Width
	g.paddle.X = float64(g.runtime.ScreenW-g.paddle.Width) / 2

	g.balls = g.balls[:0]
	g.balls = append(g.balls, &Ball{
		X:        g.paddle.CenterX(),
		Y:        float64(g.paddleY - 1),
		Speed:    g.baseSpeed,
		Anchored: true,
		AnchorDX: float64(g.paddle.Width) / 2,
		Active:   true,
	})
}

// enterState switches the state machine and restarts the state clock.
func (g *Game) enterState(state string) {
	g.state = state
	g.stateTick = 0
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	// Handle restart
	if in.Has(core.ActionRestart) && (g.state == StateGameOver || g.state == StateWin) {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		if g.state == StatePaused {
			g.enterState(StatePlaying)
		} else if g.state == StatePlaying {
			g.enterState(StatePaused)
		}
	}

	// Don't update if paused or finished
	if g.state == StatePaused || g.state == StateGameOver || g.state == StateWin {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	g.stateTick++

	switch g.state {
	case StateRoundStart:
		g.stepRoundIntro(in)
	case StatePlaying:
		g.stepPlaying(in)
	case StateBallOff:
		g.stepBallOff()
	}

	return core.StepResult{State: g.State()}
}

// stepRoundIntro runs the caption/Ready countdown. Once the sprites are
// visible the paddle can already be moved; the ball launches at the end.
func (g *Game) stepRoundIntro(in core.InputFrame) {
	if g.stateTick >= g.readyTick {
		g.updatePaddle(in)
		g.followPaddle()
	}

	if g.stateTick >= g.ballReleaseTick {
		g.launchBall()
		g.enterState(StatePlaying)
	}
}

// launchBall releases the anchored ball at the configured start angle.
func (g *Game) launchBall() {
	for _, ball := range g.balls {
		if ball.Active && ball.Anchored {
			ball.Anchored = false
			ball.Angle = normalizeAngle(g.cfg.Ball.StartAngle)
			ball.Speed = g.baseSpeed
		}
	}
}

// releaseBalls releases caught balls using the paddle segment angles.
func (g *Game) releaseBalls() {
	for _, ball := range g.balls {
		if ball.Active && ball.Anchored {
			ball.Anchored = false
			ball.Angle = normalizeAngle(g.paddle.BounceAngle(ball.X) + g.rng.Jitter(g.cfg.Ball.BounceJitter))
			ball.Speed = g.baseSpeed
		}
	}
}

// stepPlaying runs one tick of regular play.
func (g *Game) stepPlaying(in core.InputFrame) {
	if g.laserCooldown > 0 {
		g.laserCooldown--
	}

	if in.Has(core.ActionFire) {
		g.releaseBalls()
		g.fireLasers()
	}

	g.updatePaddle(in)
	g.followPaddle()
	g.updateCapsules()
	g.updateBolts()
	g.releaseEnemies()
	g.updateEnemies()
	g.updateBalls()

	if g.roundCleared {
		g.roundCleared = false
		g.handleRoundClear()
		return
	}

	if g.countActiveBalls() == 0 {
		g.enterState(StateBallOff)
	}
}

// stepBallOff runs the lost-ball sequence: the active powerup ends,
// the paddle explodes, then the round restarts or the game ends.
func (g *Game) stepBallOff() {
	if g.stateTick == 1 {
		g.deactivatePowerUp()
		g.capsules = g.capsules[:0]
		g.bolts = g.bolts[:0]
	}

	if g.stateTick == g.explodeTick {
		g.paddle.State = PaddleExploding
	}

	if g.stateTick >= g.decideTick {
		if g.lives-1 > 0 {
			g.lives--
			g.resetPaddleAndBall()
			g.enterState(StateRoundStart)
		} else {
			g.lives = 0
			g.enterState(StateGameOver)
		}
	}
}

// updatePaddle handles paddle movement.
func (g *Game) updatePaddle(in core.InputFrame) {
	if g.paddle.State == PaddleExploding {
		return
	}

	speed := g.cfg.Paddle.Speed
	if in.Has(core.ActionLeft) {
		g.paddle.Move(-speed, float64(g.playLeft), float64(g.playRight+1-g.paddle.Width))
	}
	if in.Has(core.ActionRight) {
		g.paddle.Move(speed, float64(g.playLeft), float64(g.playRight+1-g.paddle.Width))
	}
}

// clampPaddle keeps the paddle inside the playfield after width changes.
func (g *Game) clampPaddle() {
	g.paddle.Move(0, float64(g.playLeft), float64(g.playRight+1-g.paddle.Width))
}

// followPaddle keeps anchored balls glued to the paddle.
func (g *Game) followPaddle() {
	for _, ball := range g.balls {
		if ball.Active && ball.Anchored {
			ball.X = g.paddle.X + ball.AnchorDX
			ball.Y = float64(g.paddleY - 1)
		}
	}
}

// fireLasers spawns two bolts from the paddle's cannons.
func (g *Game) fireLasers() {
	if g.paddle.State != PaddleLaser || g.laserCooldown > 0 {
		return
	}
	g.laserCooldown = g.cfg.Lasers.CooldownTicks

	y := float64(g.paddleY - 1)
	g.bolts = append(g.bolts,
		Bolt{X: g.paddle.X + 0.5, Y: y, Active: true},
		Bolt{X: g.paddle.X + float64(g.paddle.Width) - 0.5, Y: y, Active: true},
	)
}

// updateBolts advances laser bolts and resolves their hits.
func (g *Game) updateBolts() {
	for i := range g.bolts {
		bolt := &g.bolts[i]
		if !bolt.Active {
			continue
		}

		bolt.Y -= g.cfg.Lasers.BoltSpeed

		// Off the top of the playfield
		if bolt.Y < float64(g.playTop) {
			bolt.Active = false
			continue
		}

		// Brick hit: the bolt is spent either way, gold just absorbs it
		if brick, row, col := g.grid.AliveAt(bolt.CellX(), bolt.CellY()); brick != nil {
			bolt.Active = false
			g.hitBrick(brick, row, col)
			continue
		}

		// Enemy hit
		for _, e := range g.enemies {
			if e.Active && e.CellX() == bolt.CellX() && e.CellY() == bolt.CellY() {
				bolt.Active = false
				g.killEnemy(e)
				break
			}
		}
	}
}

// updateBalls handles ball movement and collisions.
func (g *Game) updateBalls() {
	for _, ball := range g.balls {
		if !ball.Active || ball.Anchored {
			continue
		}
		g.updateBall(ball)
		g.regulateSpeed(ball)
	}
}

// updateBall moves one ball and resolves wall, paddle, and brick hits.
func (g *Game) updateBall(ball *Ball) {
	prevX, prevY := ball.X, ball.Y
	ball.Move()

	jitter := g.cfg.Ball.BounceJitter

	// Side walls
	if ball.X <= float64(g.playLeft) {
		ball.X = float64(g.playLeft)
		ball.ReflectX()
		ball.Angle = normalizeAngle(ball.Angle + g.rng.Jitter(jitter))
		g.speedUp(ball, g.cfg.Ball.WallSpeedAdjust)
	} else if ball.X >= float64(g.playRight) {
		ball.X = float64(g.playRight)
		ball.ReflectX()
		ball.Angle = normalizeAngle(ball.Angle + g.rng.Jitter(jitter))
		g.speedUp(ball, g.cfg.Ball.WallSpeedAdjust)
	}

	// Top wall
	if ball.Y <= float64(g.playTop) {
		ball.Y = float64(g.playTop)
		ball.ReflectY()
		ball.Angle = normalizeAngle(ball.Angle + g.rng.Jitter(jitter))
		g.speedUp(ball, g.cfg.Ball.WallSpeedAdjust)
	}

	// Lost off the bottom
	if ball.Y >= float64(g.runtime.ScreenH) {
		ball.Active = false
		return
	}

	// Paddle
	if ball.MovingDown() && ball.Y >= float64(g.paddle.Y) && ball.Y < float64(g.paddle.Y+1) &&
		g.paddle.Covers(ball.X) && g.paddle.State != PaddleExploding {
		if g.active == PowerCatch {
			ball.Anchored = true
			ball.AnchorDX = ball.X - g.paddle.X
			ball.Y = float64(g.paddleY - 1)
			return
		}
		ball.Y = float64(g.paddle.Y) - 0.01
		ball.Angle = normalizeAngle(g.paddle.BounceAngle(ball.X) + g.rng.Jitter(jitter))
		return
	}

	// Bricks
	if brick, row, col := g.grid.AliveAt(ball.CellX(), ball.CellY()); brick != nil {
		prevRow, prevCol := g.grid.CellToBrick(int(prevX), int(prevY))

		// Bounce off the side the ball came from
		switch {
		case prevRow == row && prevCol != col:
			ball.ReflectX()
		case prevCol == col && prevRow != row:
			ball.ReflectY()
		default:
			ball.Reverse()
		}
		ball.Angle = normalizeAngle(ball.Angle + g.rng.Jitter(jitter))
		ball.X, ball.Y = prevX, prevY

		g.speedUp(ball, g.cfg.Ball.BrickSpeedAdjust)
		g.hitBrick(brick, row, col)
	}
}

// speedUp adds a collision speed bonus, capped at the top speed.
func (g *Game) speedUp(ball *Ball, amount float64) {
	ball.Speed += amount
	if ball.Speed > g.cfg.Ball.TopSpeed {
		ball.Speed = g.cfg.Ball.TopSpeed
	}
}

// regulateSpeed drifts the ball speed back toward the base speed.
// Difficulty progression raises the target as the score grows.
func (g *Game) regulateSpeed(ball *Ball) {
	target := g.difficulty.Speed(g.baseSpeed, g.score, g.tickCount)
	if target > g.cfg.Ball.TopSpeed {
		target = g.cfg.Ball.TopSpeed
	}

	rate := g.cfg.Ball.Normalisation
	switch {
	case ball.Speed < target-rate:
		ball.Speed += rate
	case ball.Speed > target+rate:
		ball.Speed -= rate
	default:
		ball.Speed = target
	}
}

// hitBrick damages a brick and handles destruction.
func (g *Game) hitBrick(brick *Brick, row, col int) {
	if !brick.Colour.Destructible() {
		return
	}

	brick.HP--
	if brick.HP > 0 {
		return
	}

	brick.Alive = false
	g.score += brick.Colour.Points(g.roundIndex + 1)

	// Release the capsule hidden in this brick
	if brick.PowerUp != PowerNone {
		g.capsules = append(g.capsules, Capsule{
			X:      float64(g.grid.Left + col*g.grid.BrickW + g.grid.BrickW/2),
			Y:      float64(g.grid.Top + row),
			Kind:   brick.PowerUp,
			Active: true,
		})
	}

	if g.grid.CountDestructible() == 0 {
		g.roundCleared = true
	}
}

// handleRoundClear advances to the next round or ends the game.
// Must not run inside the entity loops: enterRound rebuilds the grid
// and truncates the ball, enemy, and bolt slices.
func (g *Game) handleRoundClear() {
	g.deactivatePowerUp()

	if g.roundIndex+1 >= RoundCount() {
		g.enterState(StateWin)
		return
	}

	g.enterRound(g.roundIndex + 1)
}

// countActiveBalls returns the number of live balls.
func (g *Game) countActiveBalls() int {
	count := 0
	for _, ball := range g.balls {
		if ball.Active {
			count++
		}
	}
	return count
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lives:    g.lives,
		Round:    g.roundIndex + 1,
		GameOver: g.state == StateGameOver || g.state == StateWin,
		Won:      g.state == StateWin,
		Paused:   g.state == StatePaused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("arkanoid", func() registry.Game {
		return New()
	})
}
