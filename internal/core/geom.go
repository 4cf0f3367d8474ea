// Package core holds the frontend-neutral pieces shared by the game and its
// runners: the cell buffer games draw into, colors, input frames and the
// runtime config. It has no terminal dependencies.
package core

// Rect is an axis-aligned rectangle of screen cells.
type Rect struct {
	X, Y int
	W, H int
}

func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right is the first column past the rectangle.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom is the first row past the rectangle.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// CenteredRect returns a w×h rectangle centered in an outer area of the given size.
// The result is clamped so that it never starts at a negative coordinate.
func CenteredRect(outerW, outerH, w, h int) Rect {
	return NewRect(max((outerW-w)/2, 0), max((outerH-h)/2, 0), w, h)
}
