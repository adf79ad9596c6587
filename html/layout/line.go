package layout

import (
	pr "github.com/benoitkugler/cssflow/css/properties"
	bo "github.com/benoitkugler/cssflow/html/boxes"
	"github.com/benoitkugler/cssflow/text"
	"github.com/benoitkugler/cssflow/utils"
)

// Line boxes : vertical alignment of the inline-level boxes
// placed on a line, and line breaking for the blocks containing inline content.

// lineBox aggregates the vertical metrics of the boxes on a line,
// around the baseline of the line.
type lineBox struct {
	ctx    *text.Context // the box owning the line
	rootEm Fl

	above, below  Fl // extents above and below the baseline
	tallest       Fl // height of the tallest box aligned with the top or bottom
	maxLineHeight Fl
}

// newLineBox starts a line with the strut of [ctx].
func (lc *layoutContext) newLineBox(ctx *text.Context) lineBox {
	halfLead := (ctx.LineHeight - ctx.FontHeight()) / 2
	return lineBox{
		ctx:           ctx,
		rootEm:        lc.rootEm,
		above:         ctx.Ascent() + halfLead,
		below:         ctx.Descent() + halfLead,
		maxLineHeight: ctx.LineHeight,
	}
}

// metrics returns the extents of [c] around its baseline, and
// the offset of its bounds from the top of these extents.
func (lc *layoutContext) metrics(c *Box) (above, below, topOffset Fl) {
	switch c.Kind {
	case bo.TextKind:
		halfLead := (c.Ctx.LineHeight - c.Ctx.FontHeight()) / 2
		return c.Ctx.Ascent() + halfLead, c.Ctx.Descent() + halfLead, halfLead
	case bo.InlineKind:
		line := c.Inline.Line
		return line.BaselineOffset, line.BelowBaseline, c.Inline.LineboxOffset - c.ContentY()
	default:
		// atomic boxes sit on the baseline
		return c.TotalHeight(), 0, 0
	}
}

func lineHeight(c *Box) Fl {
	switch c.Kind {
	case bo.TextKind:
		return c.Ctx.LineHeight
	case bo.InlineKind:
		return c.Inline.Line.TotalLineHeight
	default:
		return c.TotalHeight()
	}
}

func verticalAlign(c *Box) bo.VerticalAlign {
	switch c.Kind {
	case bo.InlineKind:
		return c.Inline.VAlign
	case bo.ReplacedKind:
		return c.Replaced.VAlign
	case bo.BlockKind:
		return c.Block.VAlign
	default:
		// text boxes are aligned by their parent
		return bo.VerticalAlign{Keyword: "baseline"}
	}
}

// shift returns how much the baseline of [c] is raised
// above the baseline of the line.
func (l *lineBox) shift(c *Box, above, below Fl) Fl {
	va := verticalAlign(c)
	switch va.Keyword {
	case "", "baseline", "top", "bottom":
		if va.Keyword == "" {
			if va.Length.Unit == pr.Perc {
				return Fl(va.Length.Value) * lineHeight(c) / 100
			}
			return Fl(c.Ctx.Decoder(l.rootEm).Dimension(va.Length.Dimension, 0))
		}
		return 0
	case "sub":
		return -0.3 * l.ctx.EmSize()
	case "super":
		return 0.4 * l.ctx.EmSize()
	case "middle":
		return l.ctx.ExSize()/2 - (above-below)/2
	case "text-top":
		return l.ctx.Ascent() - above
	case "text-bottom":
		return below - l.ctx.Descent()
	default:
		return 0
	}
}

// add includes [c] in the line.
func (l *lineBox) add(lc *layoutContext, c *Box) {
	above, below, _ := lc.metrics(c)
	switch verticalAlign(c).Keyword {
	case "top", "bottom":
		l.tallest = utils.MaxF(l.tallest, above+below)
	default:
		s := l.shift(c, above, below)
		l.above = utils.MaxF(l.above, above+s)
		l.below = utils.MaxF(l.below, below-s)
	}
	l.maxLineHeight = utils.MaxF(l.maxLineHeight, lineHeight(c))
}

func (l *lineBox) total() Fl { return utils.MaxF(l.above+l.below, l.tallest) }

func (l *lineBox) lead() Fl { return utils.MaxF(0, l.maxLineHeight-l.total()) }

// height returns the height of the line.
func (l *lineBox) height() Fl { return l.total() + l.lead() }

// baseline returns the distance between the top of the line and its baseline.
func (l *lineBox) baseline() Fl { return l.lead()/2 + l.above }

// alignTop returns the position of the top of the extents
// of [c], relative to the top of the line.
func (l *lineBox) alignTop(lc *layoutContext, c *Box) Fl {
	above, below, _ := lc.metrics(c)
	switch verticalAlign(c).Keyword {
	case "top":
		return l.lead() / 2
	case "bottom":
		return l.lead()/2 + l.total() - (above + below)
	default:
		return l.baseline() - l.shift(c, above, below) - above
	}
}

// itemTop returns the position of the bounds of [c], relative to the top of the line.
func (l *lineBox) itemTop(lc *layoutContext, c *Box) Fl {
	_, _, topOffset := lc.metrics(c)
	return l.alignTop(lc, c) + topOffset
}

func (l *lineBox) lineMetrics() bo.LineMetrics {
	return bo.LineMetrics{
		BaselineOffset:  l.baseline(),
		BelowBaseline:   l.height() - l.baseline(),
		TotalLineHeight: l.height(),
		MaxLineHeight:   l.maxLineHeight,
		Lead:            l.lead(),
	}
}

// loadInlineContent resolves the sizes of the inline-level descendants of [b].
func (lc *layoutContext) loadInlineContent(b *Box) {
	for _, id := range b.ActiveChildren() {
		lc.loadSizes(id, false)
		// the content of inline blocks is loaded by their own layout
		if c := lc.tree.Box(id); c.Kind == bo.InlineKind {
			lc.loadInlineContent(c)
		}
	}
}

// layoutLines breaks the inline content of [b] into lines, and returns
// the height of the content.
// The continuations of the split children are inserted in the
// children of [b].
func (lc *layoutContext) layoutLines(b *Box) Fl {
	t := lc.tree
	fc := lc.state.floats
	lc.loadInlineContent(b)

	var y Fl
	i := b.StartChild
	ignoreFloats := false
	for i < b.EndChild {
		// the space left by the floats, using the strut as line height
		absY := lc.state.y + y
		x0, x1 := lc.state.x, lc.state.x+b.Content.Width
		if !ignoreFloats {
			x0, x1 = fc.edges(absY, b.Ctx.LineHeight, x0, x1)
		}
		narrowed := x0 != lc.state.x || x1 != lc.state.x+b.Content.Width
		avail := x1 - x0

		var (
			x         Fl
			start     = i
			lastBreak = i
			lastWhite = true
			end       = i
			positions []Fl
		)
	items:
		for j := start; j < b.EndChild; j++ {
			id := b.Children[j]
			c := t.Box(id)
			if j > start && lc.canSplitBefore(id) {
				lastBreak = j
			}
			force := lastBreak == start && !narrowed
			lc.setIgnoreInitialWhitespace(id, lastWhite)
			res := lc.doLayout(id, avail-x, force, j == start)
			switch res.Kind {
			case DidNotFit:
				end = lastBreak
				break items
			case PlacedWithContinuation:
				positions = append(positions, x)
				x += c.Bounds.Width
				lc.insertChild(b, j+1, res.Rest)
				end = j + 1
				break items
			default:
				positions = append(positions, x)
				x += c.Bounds.Width
				if lc.canSplitAfter(id) {
					lastBreak = j + 1
				}
				lastWhite = lc.whitespaceAfter(id, lastWhite)
				end = j + 1
			}
		}

		if end == start {
			// nothing fits beside the floats : try below
			if next := fc.nextBottom(absY); next > absY {
				y = next - lc.state.y
			} else {
				ignoreFloats = true
			}
			continue
		}
		ignoreFloats = false

		y += lc.finishLine(b, start, end, x0-lc.state.x, y, positions)
		i = end
	}
	return y
}

// finishLine aligns the items of the line [start, end) vertically, places them
// and returns the height of the line.
func (lc *layoutContext) finishLine(b *Box, start, end int, left, y Fl, positions []Fl) Fl {
	items := b.Children[start:end]
	whitespace := true
	for _, id := range items {
		if !lc.isWhitespace(id) {
			whitespace = false
			break
		}
	}

	line := lc.newLineBox(b.Ctx)
	for _, id := range items {
		line.add(lc, lc.tree.Box(id))
	}
	for k, id := range items {
		c := lc.tree.Box(id)
		c.SetPosition(left+positions[k], y+line.itemTop(lc, c))
	}
	if whitespace {
		return 0
	}
	return line.height()
}

// insertChild inserts [id] in the children of [b], at [index].
func (lc *layoutContext) insertChild(b *Box, index int, id bo.ID) {
	b.Children = append(b.Children, 0)
	copy(b.Children[index+1:], b.Children[index:])
	b.Children[index] = id
	b.EndChild++
	lc.tree.AdoptChildren(b)
}
