// Package core provides fundamental types and utilities for the game.
// It contains no external dependencies (especially no Bubble Tea) to keep
// game logic pure and testable.
package core

import "math"

// Vec2 is a 2D point or offset in pixel space.
type Vec2 struct {
	X, Y float64
}

// RectF is an axis-aligned rectangle in pixel space, used both for the
// playfield viewport and for entity collision areas.
type RectF struct {
	X, Y float64 // Top-left corner
	W, H float64 // Width and height
}

// NewRectF creates a rectangle with the given position and dimensions.
func NewRectF(x, y, w, h float64) RectF {
	return RectF{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 {
	return r.Y + r.H
}

// Intersects returns true if this rectangle strictly overlaps another.
// Rectangles that merely share an edge do not intersect.
func (r RectF) Intersects(other RectF) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r RectF) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Wrap maps a coordinate onto the torus [origin, origin+extent).
// The origin offset matters: a playfield that does not start at zero
// (header row, border frame) must wrap relative to its own edges, not
// the window's.
func Wrap(coord, origin, extent float64) float64 {
	return math.Mod(coord-origin+extent, extent) + origin
}
