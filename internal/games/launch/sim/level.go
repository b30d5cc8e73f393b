package sim

import (
	"slices"

	"gonum.org/v1/gonum/spatial/r2"
)

// LevelData is the in-memory description of one level.
type LevelData struct {
	ID         string
	Name       string
	Flags      []string
	Tiles      [][]*TileSpec
	Properties Properties
	Appearance Appearance
}

// HasFlag reports whether the level carries flag.
func (l *LevelData) HasFlag(flag string) bool {
	return slices.Contains(l.Flags, flag)
}

// TileSpec describes a tile before it is placed.
type TileSpec struct {
	Type  TileType
	Value int
}

// Properties are optional per-level physics overrides. Nil fields fall
// back to the rules.
type Properties struct {
	Gravity         *r2.Vec
	MouseMultiplier *float64
	StartPoint      *r2.Vec
	TileOffset      *r2.Vec
	TileResistance  *r2.Vec
	Size            *r2.Vec
}

// apply returns rules with the set properties written over it.
func (p Properties) apply(rules Rules) Rules {
	if p.Gravity != nil {
		rules.Gravity = *p.Gravity
	}
	if p.MouseMultiplier != nil {
		rules.MouseMultiplier = *p.MouseMultiplier
	}
	if p.StartPoint != nil {
		rules.StartPoint = *p.StartPoint
	}
	if p.TileOffset != nil {
		rules.TileOffset = *p.TileOffset
	}
	if p.TileResistance != nil {
		rules.TileResistance = *p.TileResistance
	}
	if p.Size != nil {
		rules.Size = *p.Size
	}
	return rules
}

// Appearance holds optional level fills. The simulation only passes them
// through to renderers.
type Appearance struct {
	Background *Fill
	Foreground *Fill
}

// GradientKind names a gradient shape.
type GradientKind string

const (
	GradientLinear GradientKind = "linear"
	GradientRadial GradientKind = "radial"
	GradientConic  GradientKind = "conic"
)

// Fill is either a plain colour or a gradient.
type Fill struct {
	Color    string
	Gradient *Gradient
}

// Gradient is a colour ramp between two points in world pixels.
type Gradient struct {
	Kind  GradientKind
	Start r2.Vec
	End   r2.Vec
	Stops []GradientStop
}

// GradientStop is one colour of a gradient at offset in [0, 1].
type GradientStop struct {
	Offset float64
	Color  string
}

// Base returns a single representative colour for renderers that cannot
// draw gradients: the plain colour, or the first stop.
func (f *Fill) Base() string {
	if f == nil {
		return ""
	}
	if f.Color != "" {
		return f.Color
	}
	if f.Gradient != nil && len(f.Gradient.Stops) > 0 {
		return f.Gradient.Stops[0].Color
	}
	return ""
}
