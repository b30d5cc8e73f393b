package sim

import "math"

// Snapshot is a flat copy of the round state, used for determinism checks.
type Snapshot struct {
	Tick       uint64
	Score      int
	StartScore int
	Lives      int
	Attempts   int
	Level      int
	Event      int
	EventTime  float64

	// Ball is X, Y, VX, VY; empty when there is no ball.
	Ball       []float64
	BallActive bool

	// Tiles holds X, Y, Type, Value per live tile.
	Tiles []int

	ParticleCount int
	RNGState      uint64
}

// Snapshot returns the current state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:          g.tick,
		Score:         g.score,
		StartScore:    g.startScore,
		Lives:         g.lives,
		Attempts:      g.attempts,
		Level:         g.level,
		Event:         int(g.event),
		EventTime:     g.eventTime,
		ParticleCount: len(g.particles),
		RNGState:      g.rng.State(),
	}
	if g.ball != nil {
		snap.Ball = []float64{g.ball.Pos.X, g.ball.Pos.Y, g.ball.Vel.X, g.ball.Vel.Y}
		snap.BallActive = g.ball.Active
	}
	g.grid.Each(func(t *Tile) {
		snap.Tiles = append(snap.Tiles, t.Location.X, t.Location.Y, int(t.Type), t.Value)
	})
	return snap
}

// Hash returns a simple hash of the snapshot.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.StartScore) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Attempts)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Event)      //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.EventTime)

	for _, v := range snap.Ball {
		h = h*31 + math.Float64bits(v)
	}
	if snap.BallActive {
		h = h*31 + 1
	}
	for _, v := range snap.Tiles {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	h = h*31 + uint64(snap.ParticleCount) //#nosec G115 -- hash computation
	h = h*31 + snap.RNGState
	return h
}
