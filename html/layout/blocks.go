package layout

import (
	pr "github.com/benoitkugler/cssflow/css/properties"
	bo "github.com/benoitkugler/cssflow/html/boxes"
	"github.com/benoitkugler/cssflow/logger"
	"github.com/benoitkugler/cssflow/utils"
)

// Layout for block-level and block-container boxes.

type blockFlow struct{ atomicFlow }

// isBFCRoot is true for the boxes establishing a new block formatting context :
// they enclose their floats, and their margins never collapse with their children.
func isBFCRoot(b *Box) bool {
	if b.Kind == bo.ViewportKind {
		return true
	}
	if b.Block == nil {
		return false
	}
	bf := b.Block
	return b.IsRoot || bf.Float != bo.FloatNone || bf.Position.IsPositioned() || bf.InlineBlock || bf.Overflow
}

// Lay out the block container “b“, either made of block-level
// children or of lines.
func (blockFlow) doLayout(lc *layoutContext, b *Box, avail Fl, force, _ bool) Outcome {
	bf := b.Block
	if isShrinkToFit(b) {
		lc.shrinkToFit(b, avail)
	}
	if bf.InlineBlock && !force && b.TotalWidth() > avail {
		return didNotFit
	}

	// positioned descendants are collected during the layout
	delete(lc.absolutes, b.ID)

	saved := lc.state
	bfc := isBFCRoot(b)
	if bfc {
		lc.state = flowState{floats: new(floatContext)}
	}

	var height Fl
	if bf.ContainsBlocks {
		height = lc.layoutBlockChildren(b)
	} else {
		height = lc.layoutLines(b)
	}
	if bfc && pr.IsAuto(bf.Height) {
		height = utils.MaxF(height, lc.state.floats.bottom())
	}
	lc.state = saved

	b.Content.Height = lc.finalHeight(b, height)
	b.SetSize(b.TotalWidth(), b.TotalHeight())

	if b.Kind == bo.ViewportKind || bf.Position != bo.Static {
		lc.layoutAbsolutes(b)
	}
	return placed
}

// finalHeight resolves the height of [b], given the height of its content.
func (lc *layoutContext) finalHeight(b *Box, content Fl) Fl {
	bf := b.Block
	h := content
	if !pr.IsAuto(bf.Height) {
		h = fl(bf.Height)
	} else if bf.Position.IsPositioned() && !pr.IsAuto(bf.Top) && !pr.IsAuto(bf.Bottom) {
		if _, ch := lc.cbSize(b); !pr.IsAuto(ch) {
			h = fl(ch) - fl(bf.Top) - fl(bf.Bottom) - b.Margin.Vertical() - b.Border.Vertical() - b.Padding.Vertical()
		}
	}
	if !pr.IsAuto(bf.MaxHeight) && h > fl(bf.MaxHeight) {
		h = fl(bf.MaxHeight)
	}
	return utils.MaxF(utils.MaxF(h, Fl(bf.MinHeight)), 0)
}

// layoutBlockChildren lays out the block-level children of [b],
// collapsing their vertical margins, and returns the height of the content.
func (lc *layoutContext) layoutBlockChildren(b *Box) Fl {
	t := lc.tree
	bfc := isBFCRoot(b)
	collapseTop := !bfc && b.Border.Top == 0 && b.Padding.Top == 0
	collapseBottom := !bfc && b.Border.Bottom == 0 && b.Padding.Bottom == 0 && pr.IsAuto(b.Block.Height)

	var (
		y         Fl
		adjoining []Fl
		atTop     = true
		last      *Box
	)
	for _, id := range b.ActiveChildren() {
		c := t.Box(id)
		if !c.IsBlock {
			lc.warn(logger.UnexpectedChild, id, "inline-level %s in a block container: ignored", c)
			c.Displayed = false
			continue
		}
		lc.loadSizes(id, false)

		if c.Block != nil && c.Block.Position.IsPositioned() {
			c.Block.StaticPosition = utils.Rect{X: 0, Y: y + collapseMargin(adjoining)}
			c.SetPosition(0, y)
			lc.absolutes[c.ContainingBlock] = append(lc.absolutes[c.ContainingBlock], id)
			continue
		}
		if c.Block != nil && c.Block.Float != bo.FloatNone {
			lc.layoutFloat(b, c, y)
			continue
		}

		if lc.marginsAdjoin(id) {
			adjoining = append(adjoining, c.EMargin.Top)
			c.EMargin.Top, c.EMargin.Bottom = 0, 0
			lc.layoutChild(b, c, y)
			continue
		}

		bottom := c.EMargin.Bottom
		adjoining = append(adjoining, c.EMargin.Top)
		var space Fl
		if !(atTop && collapseTop) {
			space = collapseMargin(adjoining)
		}
		if c.Block != nil && c.Block.Clear != bo.FloatNone {
			clear := lc.state.floats.clearance(c.Block.Clear) - lc.state.y
			space = utils.MaxF(space, clear-y)
		}
		c.EMargin.Top, c.EMargin.Bottom = space, 0
		lc.layoutChild(b, c, y)

		y += c.Bounds.Height
		adjoining = []Fl{bottom}
		atTop = false
		last = c
	}

	if collapseBottom {
		return y
	}
	m := collapseMargin(adjoining)
	if last == nil {
		// only collapsing-through children
		if collapseTop {
			return y
		}
		return y + m
	}
	last.EMargin.Bottom = m
	last.SetSize(last.TotalWidth(), last.TotalHeight())
	return y + m
}

// layoutChild lays out the in-flow block [c] at [y] in the content of [parent].
func (lc *layoutContext) layoutChild(parent, c *Box, y Fl) {
	c.SetPosition(0, y)
	saved := lc.state
	lc.state.x += c.ContentX()
	lc.state.y += y + c.ContentY()
	lc.doLayout(c.ID, parent.Content.Width, true, true)
	lc.state = saved
}

// layoutFloat lays out the float [c], then places it
// as high as possible, starting at [y] in the content of [parent].
func (lc *layoutContext) layoutFloat(parent, c *Box, y Fl) {
	lc.doLayout(c.ID, parent.Content.Width, true, true)

	fc := lc.state.floats
	top := lc.state.y + y
	if c.Block.Clear != bo.FloatNone {
		top = utils.MaxF(top, fc.clearance(c.Block.Clear))
	}
	r := fc.place(c.Bounds.Width, c.Bounds.Height, top, c.Block.Float, lc.state.x, lc.state.x+parent.Content.Width)
	c.SetPosition(r.X-lc.state.x, r.Y-lc.state.y)
}

func (blockFlow) minimalWidth(lc *layoutContext, b *Box) Fl {
	return blockDecoration(b) + blockWidth(b, lc.minimalContentWidth)
}

func (blockFlow) maximalWidth(lc *layoutContext, b *Box) Fl {
	return blockDecoration(b) + blockWidth(b, lc.maximalContentWidth)
}

// blockDecoration returns the horizontal margins, borders and paddings,
// AUTO margins being 0.
func blockDecoration(b *Box) Fl {
	return fl(b.Block.MarginLeft) + fl(b.Block.MarginRight) + b.Border.Horizontal() + b.Padding.Horizontal()
}

func blockWidth(b *Box, content func(*Box) Fl) Fl {
	if !pr.IsAuto(b.Block.Width) {
		return b.Content.Width
	}
	return clampWidth(b, content(b))
}

// minimalContentWidth returns the narrowest width of the content of [b].
func (lc *layoutContext) minimalContentWidth(b *Box) Fl {
	var out Fl
	for _, id := range b.ActiveChildren() {
		c := lc.tree.Box(id)
		if c.Block != nil && c.Block.Position.IsPositioned() {
			continue
		}
		out = utils.MaxF(out, lc.minimalWidth(id))
	}
	return out
}

// maximalContentWidth returns the width of the content of [b], laid out without
// line breaks.
func (lc *layoutContext) maximalContentWidth(b *Box) Fl {
	var out, line Fl
	for _, id := range b.ActiveChildren() {
		c := lc.tree.Box(id)
		if c.Block != nil && c.Block.Position.IsPositioned() {
			continue
		}
		if b.Block != nil && b.Block.ContainsBlocks {
			out = utils.MaxF(out, lc.maximalWidth(id))
		} else {
			line += lc.maximalWidth(id)
		}
	}
	return utils.MaxF(out, line)
}

func (blockFlow) canSplitInside(lc *layoutContext, b *Box) bool { return false }

func (blockFlow) computeEfficientMargins(lc *layoutContext, b *Box) {
	if isBFCRoot(b) {
		b.EMargin = b.Margin
		return
	}
	if lc.marginsAdjoin(b.ID) {
		all := []Fl{b.Margin.Top, b.Margin.Bottom}
		for _, id := range lc.inFlowChildren(b) {
			all = append(all, lc.tree.Box(id).EMargin.Top)
		}
		b.EMargin = b.Margin
		b.EMargin.Top, b.EMargin.Bottom = collapseMargin(all), 0
		return
	}

	b.EMargin = b.Margin
	if !b.Block.ContainsBlocks {
		return
	}
	children := lc.inFlowChildren(b)
	if b.Border.Top == 0 && b.Padding.Top == 0 {
		top := []Fl{b.Margin.Top}
		for _, id := range children {
			top = append(top, lc.tree.Box(id).EMargin.Top)
			if !lc.marginsAdjoin(id) {
				break
			}
		}
		b.EMargin.Top = collapseMargin(top)
	}
	if b.Border.Bottom == 0 && b.Padding.Bottom == 0 && pr.IsAuto(b.Block.Height) {
		bottom := []Fl{b.Margin.Bottom}
		for i := len(children) - 1; i >= 0; i-- {
			c := lc.tree.Box(children[i])
			if lc.marginsAdjoin(c.ID) {
				bottom = append(bottom, c.EMargin.Top)
				continue
			}
			bottom = append(bottom, c.EMargin.Bottom)
			break
		}
		b.EMargin.Bottom = collapseMargin(bottom)
	}
}

// inFlowChildren returns the active children, floats and
// positioned boxes excepted.
func (lc *layoutContext) inFlowChildren(b *Box) []bo.ID {
	var out []bo.ID
	for _, id := range b.ActiveChildren() {
		if c := lc.tree.Box(id); c.Block != nil && !c.Block.InFlow() {
			continue
		}
		out = append(out, id)
	}
	return out
}

func (blockFlow) marginsAdjoin(lc *layoutContext, b *Box) bool {
	bf := b.Block
	if isBFCRoot(b) || b.Border.Vertical() != 0 || b.Padding.Vertical() != 0 {
		return false
	}
	if !pr.IsAuto(bf.Height) && fl(bf.Height) != 0 || bf.MinHeight != 0 {
		return false
	}
	for _, id := range lc.inFlowChildren(b) {
		if bf.ContainsBlocks && !lc.marginsAdjoin(id) {
			return false
		}
		if !bf.ContainsBlocks && !lc.isWhitespace(id) {
			return false
		}
	}
	return true
}

func (blockFlow) isWhitespace(lc *layoutContext, b *Box) bool {
	if b.Block.InlineBlock {
		return false
	}
	for _, id := range b.ActiveChildren() {
		if !lc.isWhitespace(id) {
			return false
		}
	}
	return true
}

// collapseMargin returns the collapsed margin of [adjoiningMargins] :
// the largest positive margin plus the smallest negative one.
func collapseMargin(adjoiningMargins []Fl) Fl {
	var maxPos, minNeg Fl
	for _, m := range adjoiningMargins {
		if m > maxPos {
			maxPos = m
		} else if m < minNeg {
			minNeg = m
		}
	}
	return maxPos + minNeg
}
