// Package core provides fundamental types and utilities for the flappycat
// frontend. It contains no external dependencies (especially no Bubble Tea)
// so that drawing code stays pure and testable.
package core

import "math"

// Rect represents an axis-aligned block of screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectFromBounds converts continuous bounds to the cells they cover.
// A non-empty span always covers at least one cell.
func RectFromBounds(left, top, right, bottom float64) Rect {
	x0 := int(math.Floor(left))
	y0 := int(math.Floor(top))
	x1 := int(math.Ceil(right))
	y1 := int(math.Ceil(bottom))
	if right > left && x1 == x0 {
		x1++
	}
	if bottom > top && y1 == y0 {
		y1++
	}
	return NewRect(x0, y0, Max(0, x1-x0), Max(0, y1-y0))
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
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

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
