package launch

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/tile-launcher/internal/config"
	"github.com/vovakirdan/tile-launcher/internal/games/launch/sim"
)

// RulesFromConfig converts the YAML configuration into simulation rules.
func RulesFromConfig(cfg config.LaunchConfig) sim.Rules {
	p := cfg.Physics
	return sim.Rules{
		Gravity:         vec(p.Gravity),
		MouseMultiplier: p.MouseMultiplier,
		StartPoint:      vec(p.StartPoint),
		TileOffset:      vec(p.TileOffset),
		TileResistance:  vec(p.TileResistance),
		Size:            vec(p.Size),

		DeathThreshold:   p.DeathThreshold,
		CollisionFixStep: p.CollisionFixStep,
		ScanMargin:       p.ScanMargin,
		BounceFactor:     vec(p.BounceFactor),
		HorizontalBounce: vec(p.HorizontalBounce),
		VerticalBounce:   vec(p.VerticalBounce),
		BounceIncrease:   vec(p.BounceIncrease),

		TileScore:    cfg.Scoring.TileScore,
		WinScore:     cfg.Scoring.WinScore,
		DefaultLives: cfg.Scoring.Lives,

		WinAnimationSpeed: cfg.Animation.WinAnimationSpeed,
		WinAnimationTime:  cfg.Animation.WinAnimationTime,
		WinTransitionTime: cfg.Animation.WinTransitionTime,

		Particles: sim.ParticleRules{
			MinTime:                cfg.Particles.MinTime,
			MaxTime:                cfg.Particles.MaxTime,
			MinCount:               cfg.Particles.MinCount,
			MaxCount:               cfg.Particles.MaxCount,
			MinSize:                cfg.Particles.MinSize,
			MaxSize:                cfg.Particles.MaxSize,
			PartialBreakMultiplier: cfg.Particles.PartialBreakMultiplier,
			GoalBreakMultiplier:    cfg.Particles.GoalBreakMultiplier,
			BoostFlag:              cfg.Particles.BoostFlag,
		},
	}
}

func vec(v config.Vec2) r2.Vec {
	return r2.Vec{X: v.X, Y: v.Y}
}
