package layout

import (
	bo "github.com/benoitkugler/cssflow/html/boxes"
)

// Layout for inline boxes, which may be split across lines.

type inlineFlow struct{}

func (inlineFlow) loadSizes(lc *layoutContext, b *Box, _ bool) {
	cw, _ := lc.cbSize(b)
	loadDecorations(b, lc.decoder(b), cw)
	// vertical margins have no effect on inline boxes
	b.Margin.Top, b.Margin.Bottom = 0, 0

	// the decorations are only drawn on the outer sides of a split box
	if b.Splitted {
		b.Margin.Left, b.Border.Left, b.Padding.Left = 0, 0, 0
	}
	if b.EndChild < len(b.Children) {
		b.Margin.Right, b.Border.Right, b.Padding.Right = 0, 0, 0
	}
}

// Lay out the children of “b“ on the current line, from left to right.
//
// If the children overflow [avail], the box is split after the last
// possible break, and the continuation holding the remaining
// children is returned.
func (inlineFlow) doLayout(lc *layoutContext, b *Box, avail Fl, force, lineStart bool) Outcome {
	t := lc.tree
	// the right decorations are kept in case the box is split
	wlimit := avail - b.Margin.Horizontal() - b.Border.Horizontal() - b.Padding.Horizontal()

	var (
		x         Fl
		start     = b.StartChild
		lastBreak = start
		lastWhite = b.Inline.IgnoreInitialWS
		positions []Fl // of the children from start
		rest      *Box
	)
	for i := start; i < b.EndChild; i++ {
		id := b.Children[i]
		c := t.Box(id)
		if i > start && lc.canSplitBefore(id) {
			lastBreak = i
		}
		f := force && lastBreak == start
		lc.setIgnoreInitialWhitespace(id, lastWhite)
		res := lc.doLayout(id, wlimit-x, f, lineStart && i == start)

		if res.Kind == DidNotFit {
			if lastBreak == start {
				return didNotFit
			}
			rest = lc.splitInline(b, lastBreak, bo.None)
			break
		}

		positions = append(positions, x)
		c.SetPosition(x, 0)
		x += c.Bounds.Width
		if res.Kind == PlacedWithContinuation {
			rest = lc.splitInline(b, i, res.Rest)
			break
		}
		if lc.canSplitAfter(id) {
			lastBreak = i + 1
		}
		lastWhite = lc.whitespaceAfter(id, lastWhite)
	}

	// the children moved to the continuation are not counted
	if n := b.EndChild - start; n < len(positions) {
		x = positions[n]
	}
	b.Content.Width = x
	b.Content.Height = contentHeightFactor * b.Ctx.FontHeight()
	lc.alignInline(b)
	b.SetSize(b.TotalWidth(), b.TotalHeight())

	if rest != nil {
		return continued(rest.ID)
	}
	return placed
}

// splitInline ends [b] before the child [at] and returns the continuation,
// starting at [at]. If [first] is not [bo.None], [b] ends after [at] instead,
// and [first] replaces the child [at] in the continuation.
func (lc *layoutContext) splitInline(b *Box, at int, first bo.ID) *Box {
	rest := lc.tree.CopyBox(b.ID)
	rest.Splitted = true
	rest.StartChild = at
	if first != bo.None {
		rest.Children[at] = first
		b.EndChild = at + 1
	} else {
		b.EndChild = at
	}
	lc.tree.AdoptChildren(rest)

	b.Margin.Right, b.Border.Right, b.Padding.Right = 0, 0, 0
	rest.Margin.Left, rest.Border.Left, rest.Padding.Left = 0, 0, 0
	rest.Inline.IgnoreInitialWS = false
	return rest
}

// contentHeightFactor scales the font height of an inline box
// into the height of its content box, as browsers do.
const contentHeightFactor = 1.2

// alignInline computes the line of [b] from its active children and
// aligns them vertically, relative to its content box.
// The content height of [b] must be set.
func (lc *layoutContext) alignInline(b *Box) {
	line := lc.newLineBox(b.Ctx)
	children := b.ActiveChildren()
	for _, id := range children {
		line.add(lc, lc.tree.Box(id))
	}
	b.Inline.Line = line.lineMetrics()
	b.Inline.HalfLead = (b.Content.Height - b.Inline.Line.TotalLineHeight) / 2
	b.Inline.LineboxOffset = b.Inline.Line.BaselineOffset - b.Ctx.BaselineOffset() - b.Inline.HalfLead
	for _, id := range children {
		c := lc.tree.Box(id)
		c.Bounds.Y = line.itemTop(lc, c) - b.Inline.LineboxOffset
	}
}

func (inlineFlow) minimalWidth(lc *layoutContext, b *Box) Fl {
	return b.Margin.Horizontal() + b.Border.Horizontal() + b.Padding.Horizontal() + lc.minimalContentWidth(b)
}

func (inlineFlow) maximalWidth(lc *layoutContext, b *Box) Fl {
	return b.Margin.Horizontal() + b.Border.Horizontal() + b.Padding.Horizontal() + lc.maximalContentWidth(b)
}

func (inlineFlow) canSplitInside(lc *layoutContext, b *Box) bool {
	children := b.ActiveChildren()
	if len(children) > 1 {
		return true
	}
	return len(children) == 1 && lc.canSplitInside(children[0])
}

func (inlineFlow) canSplitBefore(lc *layoutContext, b *Box) bool {
	children := b.ActiveChildren()
	return len(children) != 0 && b.ContentX() == 0 && lc.canSplitBefore(children[0])
}

func (inlineFlow) canSplitAfter(lc *layoutContext, b *Box) bool {
	children := b.ActiveChildren()
	right := b.Margin.Right + b.Border.Right + b.Padding.Right
	return len(children) != 0 && right == 0 && lc.canSplitAfter(children[len(children)-1])
}

func (inlineFlow) startsWithWhitespace(lc *layoutContext, b *Box) bool {
	children := b.ActiveChildren()
	return len(children) != 0 && lc.startsWithWhitespace(children[0])
}

func (inlineFlow) endsWithWhitespace(lc *layoutContext, b *Box) bool {
	children := b.ActiveChildren()
	return len(children) != 0 && lc.endsWithWhitespace(children[len(children)-1])
}

func (inlineFlow) collapsesSpaces(b *Box) bool {
	return parseWhiteSpace(b).Collapses()
}

func (inlineFlow) isWhitespace(lc *layoutContext, b *Box) bool {
	if b.Margin.Horizontal()+b.Border.Horizontal()+b.Padding.Horizontal() != 0 {
		return false
	}
	for _, id := range b.ActiveChildren() {
		if !lc.isWhitespace(id) {
			return false
		}
	}
	return true
}

func (inlineFlow) setIgnoreInitialWhitespace(_ *layoutContext, b *Box, ignore bool) {
	b.Inline.IgnoreInitialWS = ignore
}

// inline boxes are not concerned by vertical margins
func (inlineFlow) computeEfficientMargins(_ *layoutContext, b *Box) {
	b.EMargin = b.Margin
}

func (inlineFlow) marginsAdjoin(*layoutContext, *Box) bool { return false }

func parseWhiteSpace(b *Box) bo.WhiteSpace {
	switch b.Style.GetWhiteSpace() {
	case "nowrap":
		return bo.NoWrap
	case "pre":
		return bo.Pre
	case "pre-wrap":
		return bo.PreWrap
	case "pre-line":
		return bo.PreLine
	default:
		return bo.Normal
	}
}
