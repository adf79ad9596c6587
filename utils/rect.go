package utils

import "fmt"

// Rect is an axis aligned rectangle, with (X, Y) its top-left corner.
type Rect struct {
	X, Y, Width, Height Fl
}

func (r Rect) String() string {
	return fmt.Sprintf("[%g,%g %gx%g]", r.X, r.Y, r.Width, r.Height)
}

// MaxX returns the right edge.
func (r Rect) MaxX() Fl { return r.X + r.Width }

// MaxY returns the bottom edge.
func (r Rect) MaxY() Fl { return r.Y + r.Height }

// Empty is true when the rectangle has no area.
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Intersect returns the common area of r and o, which may be empty.
func (r Rect) Intersect(o Rect) Rect {
	x0, y0 := MaxF(r.X, o.X), MaxF(r.Y, o.Y)
	x1, y1 := MinF(r.MaxX(), o.MaxX()), MinF(r.MaxY(), o.MaxY())
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Intersects reports whether the box r shares some area with the clip o.
// Boxes of null size (like an empty line) are considered to intersect
// a clip containing their origin. A clip of null size intersects nothing.
func (r Rect) Intersects(o Rect) bool {
	if o.Empty() {
		return false
	}
	if r.Empty() {
		return r.X >= o.X && r.X <= o.MaxX() && r.Y >= o.Y && r.Y <= o.MaxY()
	}
	return r.X < o.MaxX() && o.X < r.MaxX() && r.Y < o.MaxY() && o.Y < r.MaxY()
}

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy Fl) Rect {
	r.X += dx
	r.Y += dy
	return r
}
