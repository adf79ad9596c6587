package layout

import (
	pr "github.com/benoitkugler/cssflow/css/properties"
	bo "github.com/benoitkugler/cssflow/html/boxes"
	"github.com/benoitkugler/cssflow/logger"
	"github.com/benoitkugler/cssflow/utils"
)

// Resolve percentages into fixed values, and solve the
// width equation of block-level boxes.

func (lc *layoutContext) decoder(b *Box) pr.Decoder { return b.Ctx.Decoder(lc.rootEm) }

// cbSize returns the size of the containing block used to resolve
// the percentages of [b] : the padding box for absolutely positioned boxes,
// the content box otherwise. The height is AUTO when it depends on the content.
func (lc *layoutContext) cbSize(b *Box) (Fl, pr.MaybeFloat) {
	cb := lc.tree.Get(b.ContainingBlock)
	if cb == nil {
		lc.warn(logger.MissingContainingBlock, b.ID, "no containing block for %s: using zero sizes", b)
		return 0, pr.AutoF
	}
	if cb.Kind == bo.ViewportKind {
		return cb.Content.Width, pr.Float(cb.Content.Height)
	}
	if b.Block != nil && b.Block.Position.IsPositioned() {
		// the containing block is laid out before its positioned descendants
		size := cb.PaddingSize()
		return size.Width, pr.Float(size.Height)
	}
	if cb.Block != nil && !pr.IsAuto(cb.Block.Height) {
		return cb.Content.Width, pr.Float(cb.Content.Height)
	}
	return cb.Content.Width, pr.AutoF
}

// resolve a length which is AUTO if it is a percentage of an AUTO base.
func resolve(dec pr.Decoder, term pr.DimOrS, base pr.MaybeFloat) pr.MaybeFloat {
	if term.S == "" && term.Unit == pr.Perc && pr.IsAuto(base) {
		return pr.AutoF
	}
	return dec.Length(term, false, pr.AutoF, pr.AutoF, base.V())
}

func fl(v pr.MaybeFloat) Fl { return Fl(v.V()) }

// loadDecorations resolves the borders, the paddings and the margins,
// AUTO margins being set to zero.
// The declared horizontal margins are returned.
func loadDecorations(b *Box, dec pr.Decoder, cw Fl) (left, right pr.MaybeFloat) {
	style := b.Style
	base := pr.Float(cw)
	var margins [4]pr.MaybeFloat
	for side := pr.STop; side <= pr.SLeft; side++ {
		b.Border.Set(side, Fl(dec.BorderWidth(style.GetBorderWidth(side), style.GetBorderStyle(side))))
		b.Padding.Set(side, fl(dec.Length(style.GetPadding(side), false, pr.Float(0), pr.Float(0), base)))
		margins[side] = dec.Length(style.GetMargin(side), false, pr.Float(0), pr.AutoF, base)
		b.Margin.Set(side, fl(margins[side]))
	}
	return margins[pr.SLeft], margins[pr.SRight]
}

// isShrinkToFit is true for the boxes whose AUTO width depends on their content.
func isShrinkToFit(b *Box) bool {
	bf := b.Block
	if b.Kind != bo.BlockKind || !pr.IsAuto(bf.Width) {
		return false
	}
	if bf.Position.IsPositioned() {
		return pr.IsAuto(bf.Left) || pr.IsAuto(bf.Right)
	}
	return bf.Float != bo.FloatNone || bf.InlineBlock
}

func (blockFlow) loadSizes(lc *layoutContext, b *Box, update bool) {
	bf := b.Block
	dec := lc.decoder(b)
	style := b.Style
	cw, ch := lc.cbSize(b)

	bf.MarginLeft, bf.MarginRight = loadDecorations(b, dec, cw)

	bf.Width = dec.Length(style.GetWidth(), false, pr.AutoF, pr.AutoF, pr.Float(cw))
	bf.Height = resolve(dec, style.GetHeight(), ch)
	bf.MinWidth = dec.Length(style.GetMinWidth(), false, pr.Float(0), pr.Float(0), pr.Float(cw)).V()
	bf.MaxWidth = dec.MaxLength(style.GetMaxWidth(), pr.Float(cw))
	if mh := resolve(dec, style.GetMinHeight(), ch); !pr.IsAuto(mh) {
		bf.MinHeight = mh.V()
	} else {
		bf.MinHeight = 0
	}
	bf.MaxHeight = dec.MaxLength(style.GetMaxHeight(), ch)

	bf.Left = dec.Length(style.GetLeft(), false, pr.AutoF, pr.AutoF, pr.Float(cw))
	bf.Right = dec.Length(style.GetRight(), false, pr.AutoF, pr.AutoF, pr.Float(cw))
	bf.Top = resolve(dec, style.GetTop(), ch)
	bf.Bottom = resolve(dec, style.GetBottom(), ch)

	switch {
	case bf.InFlow() && !bf.InlineBlock:
		solveWidth(b, cw, bf.Width, bf.MarginLeft, bf.MarginRight)
	case bf.Position.IsPositioned() && pr.IsAuto(bf.Width) && !pr.IsAuto(bf.Left) && !pr.IsAuto(bf.Right):
		w := cw - fl(bf.Left) - fl(bf.Right) - b.Margin.Horizontal() - b.Border.Horizontal() - b.Padding.Horizontal()
		b.Content.Width = clampWidth(b, utils.MaxF(0, w))
	case !pr.IsAuto(bf.Width):
		b.Content.Width = clampWidth(b, fl(bf.Width))
	default:
		// shrink-to-fit, resolved by the layout
		b.Content.Width = clampWidth(b, cw-b.Margin.Horizontal()-b.Border.Horizontal()-b.Padding.Horizontal())
	}

	if !update {
		b.Content.Height = 0
		if !pr.IsAuto(bf.Height) {
			b.Content.Height = fl(bf.Height)
		}
	}
}

func clampWidth(b *Box, w Fl) Fl {
	bf := b.Block
	if !pr.IsAuto(bf.MaxWidth) && w > fl(bf.MaxWidth) {
		w = fl(bf.MaxWidth)
	}
	return utils.MaxF(w, Fl(bf.MinWidth))
}

// solveWidth applies the width equation of in-flow block-level boxes
// (CSS 2.1 section 10.3.3) :
//
//	margin-left + border-left + padding-left + width + padding-right + border-right + margin-right = cw
//
// then clamps the width with min-width and max-width, solving
// the equation again with a fixed width.
func solveWidth(b *Box, cw Fl, width, marginLeft, marginRight pr.MaybeFloat) {
	solveWidthOnce(b, cw, width, marginLeft, marginRight)
	if bf := b.Block; bf != nil {
		if !pr.IsAuto(bf.MaxWidth) && b.Content.Width > fl(bf.MaxWidth) {
			solveWidthOnce(b, cw, bf.MaxWidth, marginLeft, marginRight)
		}
		if b.Content.Width < Fl(bf.MinWidth) {
			solveWidthOnce(b, cw, pr.Float(bf.MinWidth), marginLeft, marginRight)
		}
	}
}

func solveWidthOnce(b *Box, cw Fl, width, marginLeft, marginRight pr.MaybeFloat) {
	decoration := b.Border.Horizontal() + b.Padding.Horizontal()
	autoLeft, autoRight := pr.IsAuto(marginLeft), pr.IsAuto(marginRight)
	ml, mr := fl(marginLeft), fl(marginRight) // AUTO is 0

	if pr.IsAuto(width) {
		w := utils.MaxF(0, cw-decoration-ml-mr)
		b.Content.Width = w
		b.Margin.Left = ml
		b.Margin.Right = cw - decoration - ml - w
		return
	}

	w := fl(width)
	rest := cw - decoration - w
	switch {
	case autoLeft && autoRight && rest >= 0:
		ml, mr = rest/2, rest/2
	case autoLeft && !autoRight && rest-mr >= 0:
		ml = rest - mr
	default:
		// over-constrained or overflowing : the AUTO margins are 0
		// and margin-right is recomputed
		mr = rest - ml
	}
	b.Content.Width = w
	b.Margin.Left, b.Margin.Right = ml, mr
}

// shrinkToFit sets the content width of [b] to
// min(max(minimal, available), maximal).
func (lc *layoutContext) shrinkToFit(b *Box, avail Fl) {
	decoration := b.Margin.Horizontal() + b.Border.Horizontal() + b.Padding.Horizontal()
	minimal := lc.minimalContentWidth(b)
	maximal := lc.maximalContentWidth(b)
	w := utils.MinF(utils.MaxF(minimal, avail-decoration), maximal)
	b.Content.Width = clampWidth(b, w)
}
