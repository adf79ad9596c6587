package layout

import (
	"strings"

	bo "github.com/benoitkugler/cssflow/html/boxes"
	"github.com/benoitkugler/cssflow/utils"
	"github.com/rivo/uniseg"
)

// Layout for text boxes, broken at the line break opportunities
// given by the Unicode line breaking algorithm.

type textFlow struct{}

// text boxes have no box model : their size is set by the layout
func (textFlow) loadSizes(_ *layoutContext, b *Box, _ bool) {
	b.Margin, b.Border, b.Padding = bo.Sides{}, bo.Sides{}, bo.Sides{}
}

// breakPoint is a position in the text where a line may end.
type breakPoint struct {
	pos       int
	mandatory bool
}

// breakPoints returns the line break opportunities in text[start:end],
// the last one being always [end].
// Only the mandatory breaks are returned if the text does not wrap.
func breakPoints(tf *bo.TextFields, start int) []breakPoint {
	var (
		out   []breakPoint
		state = -1
		pos   = start
	)
	for pos < tf.End {
		var seg string
		var mustBreak bool
		seg, _, mustBreak, state = uniseg.FirstLineSegmentInString(tf.Text[pos:tf.End], state)
		pos += len(seg)
		// newlines are only kept when they are significant
		mandatory := mustBreak && strings.HasSuffix(seg, "\n")
		if pos < tf.End && !mandatory && !tf.WhiteSpace.Wraps() {
			continue
		}
		out = append(out, breakPoint{pos: pos, mandatory: mandatory})
	}
	return out
}

// trimBreak removes the trailing spaces and newline, which do
// not count at the end of a line.
func trimBreak(s string) string { return strings.TrimRight(s, " \n") }

// Lay out the text “b“, breaking it if it overflows [avail].
func (textFlow) doLayout(lc *layoutContext, b *Box, avail Fl, force, lineStart bool) Outcome {
	tf := b.Text
	ctx := b.Ctx
	start := tf.Start
	if tf.WhiteSpace.Collapses() && (tf.IgnoreInitialWS || lineStart) {
		for start < tf.End && tf.Text[start] == ' ' {
			start++
		}
	}

	fit, mandatory := start, false
	for _, bp := range breakPoints(tf, start) {
		w := ctx.StringWidth(trimBreak(tf.Text[start:bp.pos]))
		if w > avail {
			if fit > start {
				break
			}
			if !force {
				return didNotFit
			}
			// the first word overflows
			fit = bp.pos
			break
		}
		fit = bp.pos
		if bp.mandatory {
			mandatory = true
			break
		}
	}

	tf.ShownStart = start
	if fit < tf.End || mandatory {
		rest := lc.tree.CopyBox(b.ID)
		rest.Splitted = true
		rest.Text.Start = fit
		rest.Text.IgnoreInitialWS = false
		tf.End = fit
		tf.ShownEnd = start + len(trimBreak(tf.Text[start:fit]))
		b.Content.Width = ctx.StringWidth(tf.Shown())
		b.Content.Height = ctx.FontHeight()
		b.SetSize(b.Content.Width, b.Content.Height)
		return continued(rest.ID)
	}

	tf.ShownEnd = start + len(strings.TrimRight(tf.Text[start:tf.End], "\n"))
	b.Content.Width = ctx.StringWidth(tf.Shown())
	b.Content.Height = ctx.FontHeight()
	b.SetSize(b.Content.Width, b.Content.Height)
	return placed
}

func (textFlow) minimalWidth(_ *layoutContext, b *Box) Fl {
	tf := b.Text
	var (
		out  Fl
		prev = tf.Start
	)
	for _, bp := range breakPoints(tf, tf.Start) {
		out = utils.MaxF(out, b.Ctx.StringWidth(trimBreak(strings.TrimLeft(tf.Text[prev:bp.pos], " "))))
		prev = bp.pos
	}
	return out
}

func (textFlow) maximalWidth(_ *layoutContext, b *Box) Fl {
	tf := b.Text
	var (
		out  Fl
		prev = tf.Start
	)
	for _, bp := range breakPoints(tf, tf.Start) {
		if bp.mandatory || bp.pos == tf.End {
			out = utils.MaxF(out, b.Ctx.StringWidth(trimBreak(tf.Text[prev:bp.pos])))
			prev = bp.pos
		}
	}
	return out
}

func (textFlow) canSplitInside(_ *layoutContext, b *Box) bool {
	return len(breakPoints(b.Text, b.Text.Start)) > 1
}

func (f textFlow) canSplitBefore(lc *layoutContext, b *Box) bool {
	return b.Text.WhiteSpace.Wraps() && f.startsWithWhitespace(lc, b)
}

func (f textFlow) canSplitAfter(lc *layoutContext, b *Box) bool {
	return b.Text.WhiteSpace.Wraps() && f.endsWithWhitespace(lc, b)
}

func isSpace(c byte) bool { return c == ' ' || c == '\n' }

func (textFlow) startsWithWhitespace(_ *layoutContext, b *Box) bool {
	s := b.Text.Fragment()
	return s != "" && isSpace(s[0])
}

func (textFlow) endsWithWhitespace(_ *layoutContext, b *Box) bool {
	s := b.Text.Fragment()
	return s != "" && isSpace(s[len(s)-1])
}

func (textFlow) collapsesSpaces(b *Box) bool { return b.Text.WhiteSpace.Collapses() }

func (textFlow) isWhitespace(_ *layoutContext, b *Box) bool {
	return b.Text.WhiteSpace.Collapses() && strings.TrimSpace(b.Text.Fragment()) == ""
}

func (textFlow) setIgnoreInitialWhitespace(_ *layoutContext, b *Box, ignore bool) {
	b.Text.IgnoreInitialWS = ignore
}

func (textFlow) computeEfficientMargins(_ *layoutContext, b *Box) { b.EMargin = bo.Sides{} }

func (textFlow) marginsAdjoin(*layoutContext, *Box) bool { return false }
