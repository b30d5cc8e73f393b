// Package config provides YAML-based configuration for the launcher game.
package config

// LaunchConfig holds every tunable of the launcher game.
type LaunchConfig struct {
	Physics   LaunchPhysics   `yaml:"physics"`
	Scoring   LaunchScoring   `yaml:"scoring"`
	Animation LaunchAnimation `yaml:"animation"`
	Particles LaunchParticles `yaml:"particles"`
}

// Vec2 is a pair of world-space values.
type Vec2 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// LaunchPhysics holds level defaults and collision response settings.
// Level files may override the first six fields.
type LaunchPhysics struct {
	Gravity          Vec2    `yaml:"gravity"`
	MouseMultiplier  float64 `yaml:"mouse_distance_multiplier"` // launch speed per pixel of drag
	StartPoint       Vec2    `yaml:"start_point"`
	TileOffset       Vec2    `yaml:"tile_offset"`
	TileResistance   Vec2    `yaml:"tile_resistance"` // speed above which breakable tiles dampen instead of reflecting
	Size             Vec2    `yaml:"size"`
	DeathThreshold   float64 `yaml:"death_threshold"`    // pixels past the arena edge before the ball is lost
	CollisionFixStep float64 `yaml:"collision_fix_step"` // anti-sticking push per pixel of penetration
	ScanMargin       float64 `yaml:"scan_margin"`
	BounceFactor     Vec2    `yaml:"bounce_factor"`
	HorizontalBounce Vec2    `yaml:"horizontal_bounce"`
	VerticalBounce   Vec2    `yaml:"vertical_bounce"`
	BounceIncrease   Vec2    `yaml:"bounce_velocity_increase"`
}

// LaunchScoring holds points and lives.
type LaunchScoring struct {
	TileScore int `yaml:"tile_score"`
	WinScore  int `yaml:"win_score"`
	Lives     int `yaml:"lives"`
}

// LaunchAnimation holds win sequence and aim arrow settings.
type LaunchAnimation struct {
	WinAnimationSpeed float64 `yaml:"win_animation_speed"` // cells per second
	WinAnimationTime  float64 `yaml:"win_animation_time"`  // seconds
	WinTransitionTime float64 `yaml:"win_transition_time"` // seconds
	ArrowLengthScale  float64 `yaml:"arrow_length_scale"`
}

// LaunchParticles configures particle bursts.
type LaunchParticles struct {
	MinTime                float64 `yaml:"min_time"`
	MaxTime                float64 `yaml:"max_time"`
	MinCount               float64 `yaml:"min_count"`
	MaxCount               float64 `yaml:"max_count"`
	MinSize                float64 `yaml:"min_size"`
	MaxSize                float64 `yaml:"max_size"`
	PartialBreakMultiplier float64 `yaml:"partial_break_multiplier"`
	GoalBreakMultiplier    float64 `yaml:"goal_break_multiplier"`
	BoostFlag              string  `yaml:"boost_flag"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset maps a CLI value to a preset. Unknown values return "".
func ParsePreset(name string) DifficultyPreset {
	switch DifficultyPreset(name) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(name)
	}
	return ""
}
