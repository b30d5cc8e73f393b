// Package formats parses level files into simulation level data.
package formats

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/tile-launcher/internal/games/launch/sim"
	"gonum.org/v1/gonum/spatial/r2"
	"gopkg.in/yaml.v3"
)

// YAMLLevel is the on-disk structure of a level file.
type YAMLLevel struct {
	ID         string         `yaml:"id"`
	Name       string         `yaml:"name"`
	Flags      []string       `yaml:"flags,omitempty"`
	Properties YAMLProperties `yaml:"properties,omitempty"`
	Appearance YAMLAppearance `yaml:"appearance,omitempty"`
	Tiles      [][]*string    `yaml:"tiles"` // nil cells are empty
}

// YAMLVec is a 2D vector in world pixels.
type YAMLVec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (v *YAMLVec) vec() *r2.Vec {
	if v == nil {
		return nil
	}
	return &r2.Vec{X: v.X, Y: v.Y}
}

// YAMLProperties are the optional physics overrides.
type YAMLProperties struct {
	Gravity         *YAMLVec `yaml:"gravity,omitempty"`
	MouseMultiplier *float64 `yaml:"mouse_distance_multiplier,omitempty"`
	StartPoint      *YAMLVec `yaml:"start_point,omitempty"`
	TileOffset      *YAMLVec `yaml:"tile_offset,omitempty"`
	TileResistance  *YAMLVec `yaml:"tile_resistance,omitempty"`
	Size            *YAMLVec `yaml:"size,omitempty"`
}

// YAMLAppearance holds optional fills.
type YAMLAppearance struct {
	Background *YAMLFill `yaml:"background,omitempty"`
	Foreground *YAMLFill `yaml:"foreground,omitempty"`
}

// YAMLFill is either a colour string or a gradient mapping.
type YAMLFill struct {
	Color    string
	Gradient *YAMLGradient
}

// YAMLGradient is the mapping form of a fill.
type YAMLGradient struct {
	Type  string     `yaml:"type"`
	Start YAMLVec    `yaml:"start"`
	End   YAMLVec    `yaml:"end"`
	Stops []YAMLStop `yaml:"stops"`
}

// YAMLStop is one gradient stop.
type YAMLStop struct {
	Offset float64 `yaml:"offset"`
	Color  string  `yaml:"color"`
}

// UnmarshalYAML accepts a scalar colour or a gradient mapping.
func (f *YAMLFill) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		f.Color = value.Value
		return nil
	case yaml.MappingNode:
		var g YAMLGradient
		if err := value.Decode(&g); err != nil {
			return err
		}
		switch sim.GradientKind(g.Type) {
		case sim.GradientLinear, sim.GradientRadial, sim.GradientConic:
		default:
			return fmt.Errorf("line %d: unknown gradient type %q", value.Line, g.Type)
		}
		f.Gradient = &g
		return nil
	}
	return fmt.Errorf("line %d: fill must be a colour or a gradient", value.Line)
}

func (f *YAMLFill) fill() *sim.Fill {
	if f == nil {
		return nil
	}
	out := &sim.Fill{Color: f.Color}
	if g := f.Gradient; g != nil {
		out.Gradient = &sim.Gradient{
			Kind:  sim.GradientKind(g.Type),
			Start: r2.Vec{X: g.Start.X, Y: g.Start.Y},
			End:   r2.Vec{X: g.End.X, Y: g.End.Y},
		}
		for _, s := range g.Stops {
			out.Gradient.Stops = append(out.Gradient.Stops, sim.GradientStop{Offset: s.Offset, Color: s.Color})
		}
	}
	return out
}

// ErrNoTiles is returned for a level without a single tile.
var ErrNoTiles = errors.New("level has no tiles")

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (sim.LevelData, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return sim.LevelData{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	level := sim.LevelData{
		ID:    yl.ID,
		Name:  yl.Name,
		Flags: yl.Flags,
		Properties: sim.Properties{
			Gravity:         yl.Properties.Gravity.vec(),
			MouseMultiplier: yl.Properties.MouseMultiplier,
			StartPoint:      yl.Properties.StartPoint.vec(),
			TileOffset:      yl.Properties.TileOffset.vec(),
			TileResistance:  yl.Properties.TileResistance.vec(),
			Size:            yl.Properties.Size.vec(),
		},
		Appearance: sim.Appearance{
			Background: yl.Appearance.Background.fill(),
			Foreground: yl.Appearance.Foreground.fill(),
		},
		Tiles: make([][]*sim.TileSpec, len(yl.Tiles)),
	}

	count := 0
	for y, row := range yl.Tiles {
		level.Tiles[y] = make([]*sim.TileSpec, len(row))
		for x, cell := range row {
			if cell == nil {
				continue
			}
			spec, err := ParseCell(*cell)
			if err != nil {
				return sim.LevelData{}, fmt.Errorf("tile (%d,%d): %w", x, y, err)
			}
			if spec != nil {
				count++
			}
			level.Tiles[y][x] = spec
		}
	}
	if count == 0 {
		return sim.LevelData{}, ErrNoTiles
	}

	return level, nil
}

// ParseCell parses "type#value" or "type". Empty cells and "." mean no tile.
func ParseCell(cell string) (*sim.TileSpec, error) {
	cell = strings.TrimSpace(cell)
	if cell == "" || cell == "." {
		return nil, nil
	}

	name, raw, hasValue := strings.Cut(cell, "#")
	typ, ok := sim.ParseTileType(name)
	if !ok {
		return nil, fmt.Errorf("unknown tile type %q", name)
	}

	value := 0
	if hasValue {
		v, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("bad value in %q: %w", cell, err)
		}
		value = v
	}
	return &sim.TileSpec{Type: typ, Value: value}, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
