package layout

import (
	pr "github.com/benoitkugler/cssflow/css/properties"
)

// Layout for replaced elements, whose content is not laid out
// but only reserves the space given by the document.

type replacedFlow struct{ atomicFlow }

func (replacedFlow) loadSizes(lc *layoutContext, b *Box, _ bool) {
	dec := lc.decoder(b)
	style := b.Style
	cw, ch := lc.cbSize(b)
	marginLeft, marginRight := loadDecorations(b, dec, cw)

	intrinsic := b.Replaced.Intrinsic
	width := dec.Length(style.GetWidth(), false, pr.AutoF, pr.AutoF, pr.Float(cw))
	height := resolve(dec, style.GetHeight(), ch)
	w, h := intrinsic.Width, intrinsic.Height
	switch {
	case !pr.IsAuto(width) && !pr.IsAuto(height):
		w, h = fl(width), fl(height)
	case !pr.IsAuto(width):
		w = fl(width)
		if intrinsic.Width != 0 {
			h = w * intrinsic.Height / intrinsic.Width
		}
	case !pr.IsAuto(height):
		h = fl(height)
		if intrinsic.Height != 0 {
			w = h * intrinsic.Width / intrinsic.Height
		}
	}
	b.Content.Width, b.Content.Height = w, h

	if b.IsBlock {
		solveWidth(b, cw, pr.Float(w), marginLeft, marginRight)
	}
}

// Replaced boxes are placed as a whole, or not at all.
func (replacedFlow) doLayout(_ *layoutContext, b *Box, avail Fl, force, _ bool) Outcome {
	if !force && b.TotalWidth() > avail {
		return didNotFit
	}
	b.SetSize(b.TotalWidth(), b.TotalHeight())
	return placed
}
