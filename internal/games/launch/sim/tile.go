package sim

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/spatial/r2"
)

// GridCoord is a tile location in grid cells.
type GridCoord struct {
	X, Y int
}

// Manhattan returns the taxicab distance between two cells.
func (c GridCoord) Manhattan(o GridCoord) int {
	return abs(c.X-o.X) + abs(c.Y-o.Y)
}

// Distance returns the Euclidean distance between two cells.
func (c GridCoord) Distance(o GridCoord) float64 {
	return r2.Norm(r2.Vec{X: float64(c.X - o.X), Y: float64(c.Y - o.Y)})
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Tile is one cell of the level grid.
type Tile struct {
	Location GridCoord
	Type     TileType
	Value    int
	Pos      r2.Vec // top-left corner in world pixels
}

// NewTile places a tile at loc, offset by the level's tile offset.
func NewTile(loc GridCoord, typ TileType, value int, offset r2.Vec) *Tile {
	return &Tile{
		Location: loc,
		Type:     typ,
		Value:    value,
		Pos: r2.Vec{
			X: float64(loc.X)*TileSize + offset.X,
			Y: float64(loc.Y)*TileSize + offset.Y,
		},
	}
}

// Color returns the display colour of the tile as a hex string.
func (t *Tile) Color() string {
	if t.Type != TileNormal {
		return t.Type.Info().Style
	}
	hue := math.Mod(float64(t.Value)*30, 360)
	if hue < 0 {
		hue += 360
	}
	return colorful.Hsl(hue, 0.9, 0.75).Hex()
}

// Center returns the centre of the tile in world pixels.
func (t *Tile) Center() r2.Vec {
	return r2.Add(t.Pos, r2.Vec{X: TileSize / 2, Y: TileSize / 2})
}

// Touches reports whether p lies strictly inside the tile bounds
// grown by margin on every side.
func (t *Tile) Touches(p r2.Vec, margin float64) bool {
	return p.X > t.Pos.X-margin && p.X < t.Pos.X+TileSize+margin &&
		p.Y > t.Pos.Y-margin && p.Y < t.Pos.Y+TileSize+margin
}

// contactAxes reports on which axes p lies outside the tile bounds
// grown by one pixel.
func (t *Tile) contactAxes(p r2.Vec) (x, y bool) {
	x = p.X < t.Pos.X-1 || p.X > t.Pos.X+1+TileSize
	y = p.Y < t.Pos.Y-1 || p.Y > t.Pos.Y+1+TileSize
	return x, y
}

// Accumulator collects the velocity response of every tile touched in
// one tick. It is applied to the ball once, after the scan.
type Accumulator struct {
	Multiplier r2.Vec
	Increase   r2.Vec
	InvertX    bool
	InvertY    bool
	Scale      float64
	Nudge      r2.Vec
}

// NewAccumulator returns the neutral accumulator.
func NewAccumulator() Accumulator {
	return Accumulator{Multiplier: r2.Vec{X: 1, Y: 1}, Scale: 1}
}

// Apply writes the accumulated response into b. The velocity increase is
// clamped to limit on each axis.
func (a *Accumulator) Apply(b *Body, limit r2.Vec) {
	b.Vel = r2.Add(mulVec(r2.Scale(a.Scale, b.Vel), a.Multiplier), clampVec(a.Increase, limit))
	b.Pos = r2.Add(b.Pos, a.Nudge)
}

// Outcome is the effect of a hit on the round. The controller applies it.
type Outcome struct {
	Destroy bool
	Score   int
	Lives   int
	Event   Event
	Origin  GridCoord
	// Burst is a particle multiplier spawned whether or not the tile is destroyed.
	Burst float64
	// Blast destroys every other tile closer than this many cells.
	Blast float64
}

// Hit resolves one contact between the ball and this tile. ball is the
// body as it was at the start of the scan; acc is shared by every tile
// touched in the same tick. The response sees the velocity after any
// scaling accumulated so far.
func (t *Tile) Hit(ball Body, acc *Accumulator, rules *Rules) Outcome {
	var out Outcome

	switch t.Type {
	case TileNormal:
		out.Destroy = true
	case TileHard:
		t.Value--
		out.Burst = rules.Particles.PartialBreakMultiplier
		out.Destroy = t.Value <= 0
	case TileSolid:
	case TilePoints:
		out.Destroy = true
		out.Score = t.Value
	case TileLife:
		out.Destroy = true
		out.Lives = t.Value
	case TileKill:
		out.Event = EventDie
		out.Origin = t.Location
	case TileGoal:
		out.Event = EventWin
		out.Origin = t.Location
		out.Burst = rules.Particles.GoalBreakMultiplier
		out.Destroy = true
	case TileBounce:
		acc.Scale *= float64(t.Value)
		out.Destroy = true
	case TileSpring:
		acc.Scale *= float64(t.Value)
	case TileExploding:
		out.Destroy = true
		out.Blast = float64(t.Value)
	}

	// springs and bounce tiles have already rescaled the ball
	ball.Vel = r2.Scale(acc.Scale, ball.Vel)
	t.respond(ball, acc, rules)
	return out
}

func (t *Tile) respond(ball Body, acc *Accumulator, rules *Rules) {
	xHit, yHit := t.contactAxes(ball.Pos)
	bouncy := t.Type.Bouncy()
	reflects := bouncy || t.Type.Rigid()

	if xHit || !yHit {
		acc.Increase.X -= sign(ball.Vel.X) * rules.BounceIncrease.X
		if !acc.InvertX {
			res := rules.TileResistance.X
			if speed := math.Abs(ball.Vel.X); speed > res && !reflects {
				acc.Multiplier.X -= sign(ball.Vel.X) * res / speed
			} else {
				acc.Multiplier.X = -acc.Multiplier.X
				acc.InvertX = true
			}
		}
		if !bouncy {
			acc.Multiplier = mulVec(acc.Multiplier, rules.HorizontalBounce)
		}
	}

	if yHit || !xHit {
		acc.Increase.Y -= sign(ball.Vel.Y) * rules.BounceIncrease.Y
		if !acc.InvertY {
			res := rules.TileResistance.Y
			if speed := math.Abs(ball.Vel.Y); speed > res && !reflects {
				acc.Multiplier.Y -= sign(ball.Vel.Y) * res / speed
			} else {
				acc.Multiplier.Y = -acc.Multiplier.Y
				acc.InvertY = true
			}
		}
		if !bouncy {
			acc.Multiplier = mulVec(acc.Multiplier, rules.VerticalBounce)
		}
	}

	acc.Multiplier = mulVec(acc.Multiplier, rules.BounceFactor)
	acc.Nudge = r2.Add(acc.Nudge, r2.Scale(rules.CollisionFixStep, r2.Sub(ball.Pos, t.Pos)))
}
