package config

import (
	_ "embed"
)

//go:embed defaults/launch.yaml
var defaultLaunchYAML []byte

// DefaultLaunchConfig returns the default launcher configuration.
func DefaultLaunchConfig() LaunchConfig {
	return LaunchConfig{
		Physics: LaunchPhysics{
			Gravity:          Vec2{X: 0, Y: 300},
			MouseMultiplier:  8,
			StartPoint:       Vec2{X: 96, Y: 500},
			TileOffset:       Vec2{X: 200, Y: 24},
			TileResistance:   Vec2{X: 400, Y: 800},
			Size:             Vec2{X: 800, Y: 600},
			DeathThreshold:   50,
			CollisionFixStep: 0.01,
			ScanMargin:       5,
			BounceFactor:     Vec2{X: 0.9, Y: 0.9},
			HorizontalBounce: Vec2{X: 0.9, Y: 0.75},
			VerticalBounce:   Vec2{X: 0.9, Y: 0.9},
			BounceIncrease:   Vec2{X: 20, Y: 30},
		},
		Scoring: LaunchScoring{
			TileScore: 10,
			WinScore:  1000,
			Lives:     10,
		},
		Animation: LaunchAnimation{
			WinAnimationSpeed: 16,
			WinAnimationTime:  4,
			WinTransitionTime: 1.5,
			ArrowLengthScale:  0.3,
		},
		Particles: LaunchParticles{
			MinTime:                0.5,
			MaxTime:                1.5,
			MinCount:               16,
			MaxCount:               32,
			MinSize:                2,
			MaxSize:                8,
			PartialBreakMultiplier: 0.25,
			GoalBreakMultiplier:    7,
			BoostFlag:              "10xParticles",
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "launch", "launch_practice":
		return defaultLaunchYAML
	default:
		return nil
	}
}
