// Package sim is the tile launcher simulation: ball integration, tile
// collision resolution, particles and the round state machine.
// It has no terminal, storage or logging dependencies.
package sim

import "gonum.org/v1/gonum/spatial/r2"

// Body is a point mass with position, velocity and acceleration.
type Body struct {
	Pos r2.Vec
	Vel r2.Vec
	Acc r2.Vec
}

// Update advances the body by dt using semi-implicit Euler:
// velocity first, then position with the new velocity.
func (b *Body) Update(dt float64) {
	b.Vel = r2.Add(b.Vel, r2.Scale(dt, b.Acc))
	b.Pos = r2.Add(b.Pos, r2.Scale(dt, b.Vel))
}

// mulVec is the componentwise product.
func mulVec(a, b r2.Vec) r2.Vec {
	return r2.Vec{X: a.X * b.X, Y: a.Y * b.Y}
}

// clampVec clamps each component of v to [-limit, limit].
func clampVec(v, limit r2.Vec) r2.Vec {
	return r2.Vec{
		X: max(-limit.X, min(v.X, limit.X)),
		Y: max(-limit.Y, min(v.Y, limit.Y)),
	}
}

// sign returns -1, 0 or 1.
func sign(f float64) float64 {
	switch {
	case f > 0:
		return 1
	case f < 0:
		return -1
	}
	return 0
}
