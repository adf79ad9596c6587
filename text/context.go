package text

import (
	pa "github.com/benoitkugler/cssflow/css/parser"
	pr "github.com/benoitkugler/cssflow/css/properties"
)

// Graphics is the part of a drawing surface
// the visual context updates before drawing text.
type Graphics interface {
	SetFont(face Face)
	SetColorRgba(color pa.RGBA, stroke bool)
}

// Context is the visual context of a box : the font metrics
// and colors derived from its style.
type Context struct {
	Face       Face
	FontSize   Fl
	LineHeight Fl // used value, in pixels
	Color      pa.RGBA
}

// NewContext resolves the font properties of [style].
// The font size is expected to be already computed in pixels.
func NewContext(fonts FontConfiguration, style pr.ElementStyle) *Context {
	size := Fl(16)
	if fs := style.GetFontSize(); fs.S == "" && fs.Unit == pr.Px {
		size = Fl(fs.Value)
	}
	ctx := &Context{
		Face:     fonts.Face(size),
		FontSize: size,
		Color:    pa.RGBA(style.GetColor()),
	}
	ctx.LineHeight = ctx.resolveLineHeight(style.GetLineHeight())
	return ctx
}

// "normal" and invalid values use the default line height
func (ctx *Context) resolveLineHeight(lh pr.DimOrS) Fl {
	if lh.S != "" {
		return ctx.DefaultLineHeight()
	}
	switch lh.Unit {
	case pr.Scalar:
		return Fl(lh.Value) * ctx.FontSize
	case pr.Perc:
		return Fl(lh.Value) * ctx.FontSize / 100
	case pr.Em:
		return Fl(lh.Value) * ctx.FontSize
	case pr.Px:
		return Fl(lh.Value)
	}
	if f, ok := pr.LengthsToPixels[lh.Unit]; ok {
		return Fl(lh.Value * f)
	}
	return ctx.DefaultLineHeight()
}

func (ctx *Context) Ascent() Fl  { return ctx.Face.Ascent() }
func (ctx *Context) Descent() Fl { return ctx.Face.Descent() }

// FontHeight is the nominal height of the font.
func (ctx *Context) FontHeight() Fl { return ctx.Face.Ascent() + ctx.Face.Descent() }

// BaselineOffset is the distance between the top of the glyph box and the baseline.
func (ctx *Context) BaselineOffset() Fl { return ctx.Face.Ascent() }

// DefaultLineHeight is the height used for "line-height: normal".
func (ctx *Context) DefaultLineHeight() Fl { return 1.2 * ctx.FontHeight() }

func (ctx *Context) EmSize() Fl { return ctx.FontSize }

func (ctx *Context) ExSize() Fl { return ctx.Face.XHeight() }

// StringWidth returns the advance of [s] with the context font.
func (ctx *Context) StringWidth(s string) Fl { return ctx.Face.StringWidth(s) }

// Decoder returns a length decoder using the context font.
func (ctx *Context) Decoder(rootEm Fl) pr.Decoder {
	return pr.Decoder{EmSize: pr.Float(ctx.FontSize), ExSize: pr.Float(ctx.ExSize()), RootEm: pr.Float(rootEm)}
}

// UpdateGraphics applies the context font and color to [g].
func (ctx *Context) UpdateGraphics(g Graphics) {
	g.SetFont(ctx.Face)
	g.SetColorRgba(ctx.Color, false)
}
