// Package raster implements [backend.Canvas] on top of an in-memory
// RGBA image, using github.com/fogleman/gg.
package raster

import (
	"fmt"
	"image"
	"io"
	"math"

	"github.com/benoitkugler/cssflow/backend"
	"github.com/benoitkugler/cssflow/css/parser"
	"github.com/benoitkugler/cssflow/text"
	"github.com/benoitkugler/cssflow/utils"
	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

type Fl = utils.Fl

var _ backend.Canvas = (*Canvas)(nil)

// Canvas paints on an image whose size is the (rounded up) document size.
type Canvas struct {
	dc   *gg.Context
	clip utils.Rect
}

// New returns a canvas of the given size, filled with white.
func New(width, height Fl) *Canvas {
	w, h := int(math.Ceil(float64(width))), int(math.Ceil(float64(height)))
	dc := gg.NewContext(max(w, 1), max(h, 1))
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.SetFontFace(basicfont.Face7x13)
	return &Canvas{dc: dc, clip: utils.Rect{Width: Fl(dc.Width()), Height: Fl(dc.Height())}}
}

func (c *Canvas) GetRectangle() (left, top, right, bottom Fl) {
	return 0, 0, Fl(c.dc.Width()), Fl(c.dc.Height())
}

func (c *Canvas) GetClip() utils.Rect { return c.clip }

func (c *Canvas) SetClip(r utils.Rect) {
	c.clip = r
	c.dc.ResetClip()
	c.dc.ClearPath()
	c.dc.DrawRectangle(float64(r.X), float64(r.Y), float64(max(r.Width, 0)), float64(max(r.Height, 0)))
	c.dc.Clip()
}

// SetFont uses the glyphs of [face] if it has some,
// and falls back to a bitmap font otherwise.
func (c *Canvas) SetFont(face text.Face) {
	if d, ok := face.(text.Drawable); ok {
		c.dc.SetFontFace(d.FontFace())
		return
	}
	c.dc.SetFontFace(basicfont.Face7x13)
}

// the stroke and fill colors are not distinguished by gg
func (c *Canvas) SetColorRgba(color parser.RGBA, _ bool) {
	c.dc.SetRGBA(float64(color.R), float64(color.G), float64(color.B), float64(color.A))
}

func (c *Canvas) SetLineWidth(width Fl) { c.dc.SetLineWidth(float64(width)) }

func (c *Canvas) Rectangle(x, y, width, height Fl) {
	c.dc.DrawRectangle(float64(x), float64(y), float64(width), float64(height))
}

func (c *Canvas) Paint(op backend.PaintOp) {
	switch op {
	case backend.Stroke:
		c.dc.Stroke()
	case backend.FillNonZero:
		c.dc.SetFillRuleWinding()
		c.dc.Fill()
	case backend.Stroke | backend.FillNonZero:
		c.dc.SetFillRuleWinding()
		c.dc.FillPreserve()
		c.dc.Stroke()
	default:
		c.dc.ClearPath()
	}
}

func (c *Canvas) DrawText(s string, x, y Fl) { c.dc.DrawString(s, float64(x), float64(y)) }

// Image returns the painted image.
func (c *Canvas) Image() image.Image { return c.dc.Image() }

// EncodePNG writes the image to [w], in PNG format.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if err := c.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}

// SavePNG writes the image to the file [path], in PNG format.
func (c *Canvas) SavePNG(path string) error {
	if err := c.dc.SavePNG(path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}
