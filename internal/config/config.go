// Package config provides YAML-based game configuration loading and
// difficulty management.
package config

// ArkanoidConfig contains all tunable parameters for the game.
type ArkanoidConfig struct {
	Ball       BallConfig       `yaml:"ball"`
	Paddle     PaddleConfig     `yaml:"paddle"`
	PowerUps   PowerUpConfig    `yaml:"powerups"`
	Lasers     LaserConfig      `yaml:"lasers"`
	Enemies    EnemyConfig      `yaml:"enemies"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BallConfig defines ball physics. Speeds are in cells per tick,
// angles in radians.
type BallConfig struct {
	BaseSpeed        float64 `yaml:"base_speed"`
	TopSpeed         float64 `yaml:"top_speed"`
	SlowSpeed        float64 `yaml:"slow_speed"`         // base speed while SlowBall is active
	Normalisation    float64 `yaml:"normalisation_rate"` // per-tick drift back toward base speed
	BrickSpeedAdjust float64 `yaml:"brick_speed_adjust"` // speed gained per brick hit
	WallSpeedAdjust  float64 `yaml:"wall_speed_adjust"`  // speed gained per wall hit
	StartAngle       float64 `yaml:"start_angle"`        // release angle at round start
	BounceJitter     float64 `yaml:"bounce_jitter"`      // random angle added on brick/wall bounces
	MaxBalls         int     `yaml:"max_balls"`          // cap for Duplicate
}

// PaddleConfig defines paddle parameters.
type PaddleConfig struct {
	Width      int     `yaml:"width"`
	WideWidth  int     `yaml:"wide_width"`
	Speed      float64 `yaml:"speed"`       // cells per tick
	SpeedBonus float64 `yaml:"speed_bonus"` // base ball speed bonus while Expand/Laser runs
}

// PowerUpConfig defines falling capsule parameters.
type PowerUpConfig struct {
	FallSpeed float64 `yaml:"fall_speed"`
}

// LaserConfig defines laser bolt parameters.
type LaserConfig struct {
	BoltSpeed     float64 `yaml:"bolt_speed"`
	CooldownTicks int     `yaml:"cooldown_ticks"`
}

// EnemyConfig defines enemy behaviour parameters.
type EnemyConfig struct {
	Speed           float64 `yaml:"speed"`
	MaxActive       int     `yaml:"max_active"`
	ReleaseInterval int     `yaml:"release_interval"` // ticks between door releases
	MinSteerTicks   int     `yaml:"min_steer_ticks"`  // retarget window lower bound
	MaxSteerTicks   int     `yaml:"max_steer_ticks"`  // retarget window upper bound
	SteerNoise      float64 `yaml:"steer_noise"`      // radians added around the paddle heading
	Points          int     `yaml:"points"`
}

// GameplayConfig defines round and scoring parameters.
type GameplayConfig struct {
	Lives      int `yaml:"lives"`
	StartRound int `yaml:"start_round"` // 1-based
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`   // Multiplier added to ball speed at max difficulty
	IntervalReduction int     `yaml:"interval_reduction"` // Enemy release interval reduction at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
