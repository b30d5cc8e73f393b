package sim

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func TestParseTileType(t *testing.T) {
	for _, typ := range TileTypes() {
		got, ok := ParseTileType(typ.String())
		if !ok || got != typ {
			t.Errorf("ParseTileType(%q) = %v, %v", typ.String(), got, ok)
		}
	}
	if _, ok := ParseTileType("lava"); ok {
		t.Error("ParseTileType(lava) should fail")
	}
	if got, ok := ParseTileType(" Spring "); !ok || got != TileSpring {
		t.Errorf("ParseTileType should ignore case and spaces, got %v", got)
	}
}

func TestTileColor(t *testing.T) {
	hard := NewTile(GridCoord{}, TileHard, 3, r2.Vec{})
	if got := hard.Color(); got != "#8F30FF" {
		t.Errorf("hard colour = %s", got)
	}

	// hue 0, 90% saturation, 75% lightness
	red := NewTile(GridCoord{}, TileNormal, 0, r2.Vec{})
	if got := red.Color(); got != "#f98686" {
		t.Errorf("normal value 0 colour = %s, want #f98686", got)
	}
	wrapped := NewTile(GridCoord{}, TileNormal, 12, r2.Vec{})
	if wrapped.Color() != red.Color() {
		t.Errorf("hue should wrap at 360: %s vs %s", wrapped.Color(), red.Color())
	}
}

func TestNewTilePosition(t *testing.T) {
	tile := NewTile(GridCoord{X: 2, Y: 1}, TileNormal, 0, r2.Vec{X: 200, Y: 24})
	if tile.Pos != (r2.Vec{X: 296, Y: 72}) {
		t.Errorf("Pos = %v, want {296 72}", tile.Pos)
	}
}

func TestHitSideEffects(t *testing.T) {
	rules := DefaultRules()
	ball := Body{Pos: r2.Vec{X: 24, Y: -3}, Vel: r2.Vec{Y: 100}}

	tests := []struct {
		name    string
		typ     TileType
		value   int
		destroy bool
		score   int
		lives   int
		event   Event
		burst   float64
		blast   float64
	}{
		{"normal", TileNormal, 1, true, 0, 0, EventNone, 0, 0},
		{"hard", TileHard, 2, false, 0, 0, EventNone, 0.25, 0},
		{"solid", TileSolid, 0, false, 0, 0, EventNone, 0, 0},
		{"points", TilePoints, 50, true, 50, 0, EventNone, 0, 0},
		{"life", TileLife, 2, true, 0, 2, EventNone, 0, 0},
		{"kill", TileKill, 0, false, 0, 0, EventDie, 0, 0},
		{"goal", TileGoal, 0, true, 0, 0, EventWin, 7, 0},
		{"bounce", TileBounce, 2, true, 0, 0, EventNone, 0, 0},
		{"spring", TileSpring, 2, false, 0, 0, EventNone, 0, 0},
		{"exploding", TileExploding, 3, true, 0, 0, EventNone, 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tile := NewTile(GridCoord{X: 4, Y: 5}, tt.typ, tt.value, r2.Vec{})
			acc := NewAccumulator()
			out := tile.Hit(ball, &acc, &rules)

			if out.Destroy != tt.destroy {
				t.Errorf("Destroy = %v, want %v", out.Destroy, tt.destroy)
			}
			if out.Score != tt.score {
				t.Errorf("Score = %d, want %d", out.Score, tt.score)
			}
			if out.Lives != tt.lives {
				t.Errorf("Lives = %d, want %d", out.Lives, tt.lives)
			}
			if out.Event != tt.event {
				t.Errorf("Event = %v, want %v", out.Event, tt.event)
			}
			if tt.event != EventNone && out.Origin != tile.Location {
				t.Errorf("Origin = %v, want %v", out.Origin, tile.Location)
			}
			if out.Burst != tt.burst {
				t.Errorf("Burst = %v, want %v", out.Burst, tt.burst)
			}
			if out.Blast != tt.blast {
				t.Errorf("Blast = %v, want %v", out.Blast, tt.blast)
			}
			if tt.typ.Bouncy() && acc.Scale != float64(tt.value) {
				t.Errorf("Scale = %v, want %v", acc.Scale, tt.value)
			}
		})
	}
}

func TestHardTileNeedsValueHits(t *testing.T) {
	rules := DefaultRules()
	tile := NewTile(GridCoord{}, TileHard, 3, r2.Vec{})
	ball := Body{Pos: r2.Vec{X: 24, Y: -3}}

	for i := 1; i <= 3; i++ {
		acc := NewAccumulator()
		out := tile.Hit(ball, &acc, &rules)
		if want := i == 3; out.Destroy != want {
			t.Errorf("hit %d: Destroy = %v, want %v", i, out.Destroy, want)
		}
	}
	if tile.Value != 0 {
		t.Errorf("Value = %d, want 0", tile.Value)
	}
}

func TestCornerContactRespondsOnBothAxes(t *testing.T) {
	rules := DefaultRules()
	tile := NewTile(GridCoord{}, TileNormal, 0, r2.Vec{})
	ball := Body{Pos: r2.Vec{X: -3, Y: -3}, Vel: r2.Vec{X: 100, Y: 100}}

	acc := NewAccumulator()
	tile.Hit(ball, &acc, &rules)

	if !acc.InvertX || !acc.InvertY {
		t.Fatalf("expected both axes inverted, got X=%v Y=%v", acc.InvertX, acc.InvertY)
	}
	if !nearVec(acc.Multiplier, r2.Vec{X: -0.729, Y: -0.6075}) {
		t.Errorf("Multiplier = %v, want {-0.729 -0.6075}", acc.Multiplier)
	}
	if acc.Increase != (r2.Vec{X: -20, Y: -30}) {
		t.Errorf("Increase = %v, want {-20 -30}", acc.Increase)
	}
	if !nearVec(acc.Nudge, r2.Vec{X: -0.03, Y: -0.03}) {
		t.Errorf("Nudge = %v, want {-0.03 -0.03}", acc.Nudge)
	}
}

func TestFaceContact(t *testing.T) {
	rules := DefaultRules()
	tests := []struct {
		name     string
		typ      TileType
		vel      r2.Vec
		want     r2.Vec
		invertsY bool
	}{
		{"slow normal reflects", TileNormal, r2.Vec{Y: 100}, r2.Vec{X: 0.81, Y: -0.81}, true},
		{"fast normal dampens", TileNormal, r2.Vec{Y: 1600}, r2.Vec{X: 0.81, Y: 0.405}, false},
		{"fast hard reflects", TileHard, r2.Vec{Y: 1600}, r2.Vec{X: 0.81, Y: -0.81}, true},
		{"fast solid reflects", TileSolid, r2.Vec{Y: 1600}, r2.Vec{X: 0.81, Y: -0.81}, true},
		{"spring skips axis friction", TileSpring, r2.Vec{Y: 1600}, r2.Vec{X: 0.9, Y: -0.9}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tile := NewTile(GridCoord{}, tt.typ, 5, r2.Vec{})
			ball := Body{Pos: r2.Vec{X: 24, Y: -3}, Vel: tt.vel}
			acc := NewAccumulator()
			tile.Hit(ball, &acc, &rules)

			if acc.InvertX {
				t.Error("X must not respond on a top face contact")
			}
			if acc.InvertY != tt.invertsY {
				t.Errorf("InvertY = %v, want %v", acc.InvertY, tt.invertsY)
			}
			if !nearVec(acc.Multiplier, tt.want) {
				t.Errorf("Multiplier = %v, want %v", acc.Multiplier, tt.want)
			}
			if acc.Increase != (r2.Vec{Y: -30}) {
				t.Errorf("Increase = %v, want {0 -30}", acc.Increase)
			}
		})
	}
}

func TestBallInsideTileRespondsOnBothAxes(t *testing.T) {
	rules := DefaultRules()
	tile := NewTile(GridCoord{}, TileSolid, 0, r2.Vec{})
	acc := NewAccumulator()
	tile.Hit(Body{Pos: r2.Vec{X: 24, Y: 24}}, &acc, &rules)

	if !acc.InvertX || !acc.InvertY {
		t.Errorf("expected both axes inverted, got X=%v Y=%v", acc.InvertX, acc.InvertY)
	}
}

func TestInversionIsSharedAcrossTiles(t *testing.T) {
	rules := DefaultRules()
	a := NewTile(GridCoord{X: 0}, TileNormal, 0, r2.Vec{})
	b := NewTile(GridCoord{X: 1}, TileNormal, 0, r2.Vec{})
	ball := Body{Pos: r2.Vec{X: 48, Y: -3}, Vel: r2.Vec{Y: 100}}

	acc := NewAccumulator()
	a.Hit(ball, &acc, &rules)
	b.Hit(ball, &acc, &rules)

	// inverted once, not twice
	if !nearVec(acc.Multiplier, r2.Vec{X: 0.6561, Y: -0.6561}) {
		t.Errorf("Multiplier = %v, want {0.6561 -0.6561}", acc.Multiplier)
	}
	if acc.Increase != (r2.Vec{Y: -60}) {
		t.Errorf("Increase = %v, want {0 -60}", acc.Increase)
	}

	acc.Apply(&ball, rules.BounceIncrease)
	if !near(ball.Vel.Y, -95.61) {
		t.Errorf("Vel.Y = %v, want -95.61 (increase clamped to 30)", ball.Vel.Y)
	}
}

func TestTwoTileContactIsOrderIndependent(t *testing.T) {
	rules := DefaultRules()
	cases := []Body{
		{Pos: r2.Vec{X: 48, Y: -3}, Vel: r2.Vec{X: 30, Y: 100}},
		{Pos: r2.Vec{X: 47, Y: -2}, Vel: r2.Vec{X: -500, Y: 1200}},
		{Pos: r2.Vec{X: 49, Y: 50}, Vel: r2.Vec{X: 900, Y: -50}},
	}

	for _, ball := range cases {
		run := func(first, second GridCoord) (Accumulator, Body) {
			t1 := NewTile(first, TileNormal, 0, r2.Vec{})
			t2 := NewTile(second, TileNormal, 0, r2.Vec{})
			acc := NewAccumulator()
			t1.Hit(ball, &acc, &rules)
			t2.Hit(ball, &acc, &rules)
			out := ball
			acc.Apply(&out, rules.BounceIncrease)
			return acc, out
		}

		accAB, bodyAB := run(GridCoord{X: 0}, GridCoord{X: 1})
		accBA, bodyBA := run(GridCoord{X: 1}, GridCoord{X: 0})

		if !nearVec(accAB.Multiplier, accBA.Multiplier) || !nearVec(accAB.Increase, accBA.Increase) {
			t.Errorf("ball %v: accumulators differ: %+v vs %+v", ball.Pos, accAB, accBA)
		}
		if !nearVec(bodyAB.Vel, bodyBA.Vel) || !nearVec(bodyAB.Pos, bodyBA.Pos) {
			t.Errorf("ball %v: results differ: %+v vs %+v", ball.Pos, bodyAB, bodyBA)
		}
	}
}

func TestTouches(t *testing.T) {
	tile := NewTile(GridCoord{}, TileNormal, 0, r2.Vec{})
	tests := []struct {
		p    r2.Vec
		want bool
	}{
		{r2.Vec{X: 24, Y: 24}, true},
		{r2.Vec{X: -4.9, Y: 24}, true},
		{r2.Vec{X: -5, Y: 24}, false},
		{r2.Vec{X: 52.9, Y: 52.9}, true},
		{r2.Vec{X: 53, Y: 0}, false},
	}
	for _, tt := range tests {
		if got := tile.Touches(tt.p, 5); got != tt.want {
			t.Errorf("Touches(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestScalingTilesRespondToScaledVelocity(t *testing.T) {
	rules := DefaultRules()
	tests := []struct {
		name  string
		typ   TileType
		value int
		want  r2.Vec
	}{
		{"spring zero stops the ball", TileSpring, 0, r2.Vec{}},
		{"bounce zero stops the ball", TileBounce, 0, r2.Vec{}},
		{"reversing spring pushes back", TileSpring, -1, r2.Vec{Y: 30}},
		{"plain spring", TileSpring, 2, r2.Vec{Y: -30}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tile := NewTile(GridCoord{}, tt.typ, tt.value, r2.Vec{})
			ball := Body{Pos: r2.Vec{X: 24, Y: -3}, Vel: r2.Vec{Y: 200}}
			acc := NewAccumulator()
			tile.Hit(ball, &acc, &rules)

			if acc.Increase != tt.want {
				t.Errorf("Increase = %v, want %v", acc.Increase, tt.want)
			}
		})
	}
}
