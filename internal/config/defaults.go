package config

import (
	_ "embed"
)

//go:embed defaults/rainrun.yaml
var defaultRainRunYAML []byte

// DefaultRainRunConfig returns the default Rain Run configuration.
func DefaultRainRunConfig() RainRunConfig {
	return RainRunConfig{
		Physics: RainRunPhysics{
			Gravity:       38,
			JumpImpulse:   28,
			VerticalScale: 60,
			MaxJumpHeight: 60,
			MaxDelta:      0.05,
			DistanceScale: 180,
		},
		Speed: RainRunSpeed{
			Base:       2,
			Min:        1,
			Max:        6,
			Step:       0.5,
			BoostStep:  2.2,
			BoostCap:   6,
			BoostDecay: 0.8,
		},
		Spawn: RainRunSpawn{
			InitialDelay: 1.2,
			BaseInterval: 1.4,
			SpeedCap:     6,
			SpeedFactor:  0.15,
			Jitter:       1.0,
			MinInterval:  0.45,
			LowWeight:    0.6,
			ScrollScale:  34,
			SpawnX:       730,
			DespawnX:     -40,
		},
		Obstacles: RainRunObstacles{
			Low:  ObstacleShape{Width: 24, Height: 16},
			High: ObstacleShape{Width: 26, Height: 18, Elevation: 38},
		},
		Runner: RainRunRunner{
			X:            120,
			GroundOffset: 80,
			HalfWidth:    6,
			BodyHeight:   30,
			CrouchHeight: 22,
			LegHeight:    20,
		},
		Health: RainRunHealth{
			Max:        100,
			Damage:     10,
			Cooldown:   0.5,
			Shake:      0.3,
			EvadeScore: 10,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 1000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "rainrun":
		return defaultRainRunYAML
	default:
		return nil
	}
}
