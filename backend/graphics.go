// Package backend defines a common interface, providing graphics primitives.
//
// It only exposes the operations needed to paint a laid out box tree,
// so that various output formats may be generated (raster image,
// recording tracer for tests).
package backend

import (
	"fmt"

	"github.com/benoitkugler/cssflow/css/parser"
	"github.com/benoitkugler/cssflow/text"
	"github.com/benoitkugler/cssflow/utils"
)

type Fl = utils.Fl

// PaintOp specifies the graphic operation applied to the current path
type PaintOp uint8

const (
	Stroke PaintOp = 1 << iota
	FillNonZero
)

func (op PaintOp) String() string {
	switch op {
	case Stroke:
		return "Stroke"
	case FillNonZero:
		return "Fill"
	case Stroke | FillNonZero:
		return "Fill+Stroke"
	default:
		return fmt.Sprintf("<unknown PaintOp %d>", uint8(op))
	}
}

// Canvas represents a 2D surface which is the target of graphic operations.
type Canvas interface {
	text.Graphics

	// Returns the current canvas rectangle
	GetRectangle() (left, top, right, bottom Fl)

	// GetClip returns the current clip rectangle.
	GetClip() utils.Rect
	// SetClip replaces the clip rectangle. Callers wanting to
	// restrict the clip should intersect with the value returned
	// by GetClip.
	SetClip(r utils.Rect)

	// Sets the current line width to be used by `Stroke`.
	SetLineWidth(width Fl)

	// Rectangle adds a rectangle to the current path.
	Rectangle(x, y, width, height Fl)

	// Paint actually shows the current path on the target,
	// either stroking, filling or doing both, according to `op`.
	// After this call, the current path will be cleared.
	Paint(op PaintOp)

	// DrawText draws [s] with the current font and fill color,
	// (x, y) being the position of the baseline origin.
	DrawText(s string, x, y Fl)
}

// FillRectangle is a shortcut to fill a rectangle with a color.
func FillRectangle(c Canvas, r utils.Rect, color parser.RGBA) {
	if color.IsTransparent() || r.Empty() {
		return
	}
	c.SetColorRgba(color, false)
	c.Rectangle(r.X, r.Y, r.Width, r.Height)
	c.Paint(FillNonZero)
}
