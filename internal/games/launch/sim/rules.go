package sim

import "gonum.org/v1/gonum/spatial/r2"

// TileSize is the edge length of a tile in world pixels.
const TileSize = 48.0

// Rules holds every tunable of the simulation.
// Level properties override the first six fields per level.
type Rules struct {
	Gravity         r2.Vec
	MouseMultiplier float64
	StartPoint      r2.Vec
	TileOffset      r2.Vec
	TileResistance  r2.Vec
	Size            r2.Vec

	DeathThreshold   float64
	CollisionFixStep float64
	ScanMargin       float64
	BounceFactor     r2.Vec // applied on every hit
	HorizontalBounce r2.Vec // X response on non-bouncy tiles
	VerticalBounce   r2.Vec // Y response on non-bouncy tiles
	BounceIncrease   r2.Vec

	TileScore    int
	WinScore     int
	DefaultLives int

	WinAnimationSpeed float64
	WinAnimationTime  float64
	WinTransitionTime float64

	Particles ParticleRules
}

// ParticleRules configures particle bursts.
type ParticleRules struct {
	MinTime, MaxTime       float64
	MinCount, MaxCount     float64
	MinSize, MaxSize       float64
	PartialBreakMultiplier float64
	GoalBreakMultiplier    float64
	// BoostFlag is the level flag that multiplies destruction bursts by 10.
	BoostFlag string
}

// DefaultRules returns the stock tuning.
func DefaultRules() Rules {
	return Rules{
		Gravity:         r2.Vec{X: 0, Y: 300},
		MouseMultiplier: 8,
		StartPoint:      r2.Vec{X: 96, Y: 500},
		TileOffset:      r2.Vec{X: 200, Y: 24},
		TileResistance:  r2.Vec{X: 400, Y: 800},
		Size:            r2.Vec{X: 800, Y: 600},

		DeathThreshold:   50,
		CollisionFixStep: 0.01,
		ScanMargin:       5,
		BounceFactor:     r2.Vec{X: 0.9, Y: 0.9},
		HorizontalBounce: r2.Vec{X: 0.9, Y: 0.75},
		VerticalBounce:   r2.Vec{X: 0.9, Y: 0.9},
		BounceIncrease:   r2.Vec{X: 20, Y: 30},

		TileScore:    10,
		WinScore:     1000,
		DefaultLives: 10,

		WinAnimationSpeed: 16,
		WinAnimationTime:  4,
		WinTransitionTime: 1.5,

		Particles: ParticleRules{
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
