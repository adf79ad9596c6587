package layout

import (
	bo "github.com/benoitkugler/cssflow/html/boxes"
	"github.com/benoitkugler/cssflow/utils"
)

// flowState locates the box being laid out in its block formatting context.
type flowState struct {
	floats *floatContext
	// origin of the content box of the current box,
	// in the coordinates of the content box of the formatting context root
	x, y Fl
}

// floatContext stores the margin boxes of the floats placed
// in a block formatting context.
type floatContext struct {
	left, right []utils.Rect
}

func overlaps(f utils.Rect, y, h Fl) bool {
	if h <= 0 {
		return f.Y <= y && y < f.MaxY()
	}
	return f.Y < y+h && y < f.MaxY()
}

// edges returns the horizontal space between [minX] and [maxX] left free
// by the floats in the band [y, y+h].
func (fc *floatContext) edges(y, h, minX, maxX Fl) (left, right Fl) {
	left, right = minX, maxX
	for _, f := range fc.left {
		if overlaps(f, y, h) {
			left = utils.MaxF(left, f.MaxX())
		}
	}
	for _, f := range fc.right {
		if overlaps(f, y, h) {
			right = utils.MinF(right, f.X)
		}
	}
	return left, right
}

// clearance returns the position below the floats on [side].
func (fc *floatContext) clearance(side bo.FloatSide) Fl {
	var out Fl
	if side == bo.FloatLeft || side == bo.FloatBoth {
		for _, f := range fc.left {
			out = utils.MaxF(out, f.MaxY())
		}
	}
	if side == bo.FloatRight || side == bo.FloatBoth {
		for _, f := range fc.right {
			out = utils.MaxF(out, f.MaxY())
		}
	}
	return out
}

// bottom returns the position below every float.
func (fc *floatContext) bottom() Fl { return fc.clearance(bo.FloatBoth) }

// nextBottom returns the closest float bottom strictly below [y],
// or [y] if there is none.
func (fc *floatContext) nextBottom(y Fl) Fl {
	out := y
	for _, list := range [2][]utils.Rect{fc.left, fc.right} {
		for _, f := range list {
			if b := f.MaxY(); b > y && (out == y || b < out) {
				out = b
			}
		}
	}
	return out
}

// lastTop returns the top of the last placed float : a float
// may not be higher than a previous one.
func (fc *floatContext) lastTop() Fl {
	var out Fl
	if n := len(fc.left); n != 0 {
		out = fc.left[n-1].Y
	}
	if n := len(fc.right); n != 0 {
		out = utils.MaxF(out, fc.right[n-1].Y)
	}
	return out
}

// place finds the highest position, not above [top], where a float
// of size [w] x [h] fits between [minX] and [maxX], and records it.
func (fc *floatContext) place(w, h, top Fl, side bo.FloatSide, minX, maxX Fl) utils.Rect {
	y := utils.MaxF(top, fc.lastTop())
	var left, right Fl
	for {
		left, right = fc.edges(y, h, minX, maxX)
		if right-left >= w || (left == minX && right == maxX) {
			break
		}
		next := fc.nextBottom(y)
		if next == y {
			break
		}
		y = next
	}
	r := utils.Rect{Y: y, Width: w, Height: h}
	if side == bo.FloatRight {
		r.X = right - w
		fc.right = append(fc.right, r)
	} else {
		r.X = left
		fc.left = append(fc.left, r)
	}
	return r
}
