// Package core provides the shared types games and the platform agree on:
// runtime config, input, geometry and the character screen buffer.
// It has no terminal or Bubble Tea dependencies so game logic stays testable.
package core

import "math"

// Rect is an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left cell
	W, H int // Size in cells
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Box is an axis-aligned rectangle in world units.
// Games simulate in world units and only convert to cells when rendering.
type Box struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// BoxAt builds a box from its centre point, the way sprites are placed.
func BoxAt(cx, cy, w, h float64) Box {
	return Box{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// Center returns the centre point of the box.
func (b Box) Center() (float64, float64) {
	return b.X + b.W/2, b.Y + b.H/2
}

// Intersects reports whether two boxes overlap.
// Touching edges do not count as overlap.
func (b Box) Intersects(o Box) bool {
	return b.X < o.Right() && o.X < b.Right() && b.Y < o.Bottom() && o.Y < b.Bottom()
}

// Viewport maps world units onto a grid of screen cells.
type Viewport struct {
	WorldW, WorldH float64
	Cols, Rows     int
}

// ToCells converts a world box into the covering cell rectangle.
// Every non-empty box covers at least one cell.
func (v Viewport) ToCells(b Box) Rect {
	sx := float64(v.Cols) / v.WorldW
	sy := float64(v.Rows) / v.WorldH

	x0 := int(math.Floor(b.X * sx))
	y0 := int(math.Floor(b.Y * sy))
	x1 := int(math.Ceil(b.Right() * sx))
	y1 := int(math.Ceil(b.Bottom() * sy))

	return Rect{X: x0, Y: y0, W: max(1, x1-x0), H: max(1, y1-y0)}
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
