package config

import (
	_ "embed"
)

//go:embed defaults/arkanoid.yaml
var defaultArkanoidYAML []byte

// DefaultArkanoidConfig returns the default configuration.
// Mirrors defaults/arkanoid.yaml for the case where the embed is unparsable.
func DefaultArkanoidConfig() ArkanoidConfig {
	return ArkanoidConfig{
		Ball: BallConfig{
			BaseSpeed:        0.35,
			TopSpeed:         0.65,
			SlowSpeed:        0.20,
			Normalisation:    0.001,
			BrickSpeedAdjust: 0.02,
			WallSpeedAdjust:  0.01,
			StartAngle:       5.0,
			BounceJitter:     0.05,
			MaxBalls:         8,
		},
		Paddle: PaddleConfig{
			Width:      8,
			WideWidth:  12,
			Speed:      0.6,
			SpeedBonus: 0.05,
		},
		PowerUps: PowerUpConfig{
			FallSpeed: 0.15,
		},
		Lasers: LaserConfig{
			BoltSpeed:     0.8,
			CooldownTicks: 20,
		},
		Enemies: EnemyConfig{
			Speed:           0.12,
			MaxActive:       3,
			ReleaseInterval: 600,
			MinSteerTicks:   30,
			MaxSteerTicks:   60,
			SteerNoise:      1.5,
			Points:          100,
		},
		Gameplay: GameplayConfig{
			Lives:      3,
			StartRound: 1,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 3000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   0.3,
				IntervalReduction: 300,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultArkanoidYAML
}
