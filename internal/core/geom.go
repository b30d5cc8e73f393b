// Package core provides fundamental types and utilities for the game platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect is an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Centered returns a w×h rectangle centred in r.
func (r Rect) Centered(w, h int) Rect {
	return Rect{X: r.X + (r.W-w)/2, Y: r.Y + (r.H-h)/2, W: w, H: h}
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	return max(lo, min(val, hi))
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	return max(lo, min(val, hi))
}

// Viewport maps a continuous world rectangle of WorldW×WorldH units
// starting at the origin onto the cells of Area.
type Viewport struct {
	WorldW, WorldH float64
	Area           Rect
}

// ToCell returns the cell containing world point (wx, wy).
// The result may lie outside Area.
func (v Viewport) ToCell(wx, wy float64) (int, int) {
	if v.WorldW <= 0 || v.WorldH <= 0 {
		return v.Area.X, v.Area.Y
	}
	cx := int(math.Floor(wx / v.WorldW * float64(v.Area.W)))
	cy := int(math.Floor(wy / v.WorldH * float64(v.Area.H)))
	return v.Area.X + cx, v.Area.Y + cy
}

// ToWorld returns the world point at the centre of cell (cx, cy).
func (v Viewport) ToWorld(cx, cy int) (float64, float64) {
	if v.Area.W <= 0 || v.Area.H <= 0 {
		return 0, 0
	}
	wx := (float64(cx-v.Area.X) + 0.5) * v.WorldW / float64(v.Area.W)
	wy := (float64(cy-v.Area.Y) + 0.5) * v.WorldH / float64(v.Area.H)
	return wx, wy
}

// CellSize returns the world extent of one cell.
func (v Viewport) CellSize() (float64, float64) {
	if v.Area.W <= 0 || v.Area.H <= 0 {
		return 0, 0
	}
	return v.WorldW / float64(v.Area.W), v.WorldH / float64(v.Area.H)
}
