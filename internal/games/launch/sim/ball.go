package sim

import "gonum.org/v1/gonum/spatial/r2"

// Ball is the launched projectile. An inactive ball waits at the start point.
type Ball struct {
	Body
	Active bool
}

// NewBall returns an inactive ball at pos.
func NewBall(pos r2.Vec) *Ball {
	return &Ball{Body: Body{Pos: pos}}
}

// Launch activates the ball with the given velocity and acceleration.
func (b *Ball) Launch(vel, acc r2.Vec) {
	b.Vel = vel
	b.Acc = acc
	b.Active = true
}

// Step integrates the ball and resolves every tile it touches.
// resolve receives each outcome as soon as the tile is hit, so tiles it
// removes are not visited later in the same scan. The accumulated
// response is applied once the scan is done.
func (b *Ball) Step(dt float64, grid *Grid, rules *Rules, resolve func(*Tile, Outcome)) {
	b.Body.Update(dt)

	snap := b.Body
	acc := NewAccumulator()
	grid.Each(func(t *Tile) {
		if !t.Touches(snap.Pos, rules.ScanMargin) {
			return
		}
		out := t.Hit(snap, &acc, rules)
		if resolve != nil {
			resolve(t, out)
		}
	})
	acc.Apply(&b.Body, rules.BounceIncrease)
}

// OutOfBounds reports whether the ball left the arena by more than threshold
// on the left, right or bottom edge. Flying over the top is allowed.
func (b *Ball) OutOfBounds(size r2.Vec, threshold float64) bool {
	return b.Pos.Y > size.Y+threshold || b.Pos.X < -threshold || b.Pos.X > size.X+threshold
}
