// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned rectangle in screen cells.
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

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Box is an axis-aligned box in world units, anchored at its top-left corner.
type Box struct {
	X, Y float64
	W, H float64
}

// Center returns the center point of the box.
func (b Box) Center() (float64, float64) {
	return b.X + b.W/2, b.Y + b.H/2
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// CenterOn moves the box so that (x, y) becomes its center.
func (b *Box) CenterOn(x, y float64) {
	b.X = x - b.W/2
	b.Y = y - b.H/2
}

// Circle is a circle in world units, anchored at its center.
type Circle struct {
	X, Y float64
	R    float64
}

// CircleIntersectsBox reports whether a circle touches a box.
//
// The circle center is folded into the box's positive quadrant (dx, dy are
// distances from the box center). Outside the inflated box there is no
// contact; inside the cross formed by the box extended by r along either
// axis there is; in the diagonal regions the corner distance decides.
func CircleIntersectsBox(c Circle, b Box) bool {
	hw := b.W / 2
	hh := b.H / 2
	dx := math.Abs(c.X - b.X - hw)
	dy := math.Abs(c.Y - b.Y - hh)

	if dx > hw+c.R || dy > hh+c.R {
		return false
	}
	if dx <= hw || dy <= hh {
		return true
	}

	cx := dx - hw
	cy := dy - hh
	return cx*cx+cy*cy <= c.R*c.R
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
