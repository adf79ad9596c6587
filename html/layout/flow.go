package layout

import (
	bo "github.com/benoitkugler/cssflow/html/boxes"
)

// OutcomeKind is the result of laying out a box.
type OutcomeKind uint8

const (
	// Placed means the box fits and has been placed entirely.
	Placed OutcomeKind = iota
	// PlacedWithContinuation means the box has been split : the first
	// part is placed, and the rest must be laid out on the next line.
	PlacedWithContinuation
	// DidNotFit means nothing could be placed : the box is unchanged.
	DidNotFit
)

func (k OutcomeKind) String() string {
	switch k {
	case Placed:
		return "Placed"
	case PlacedWithContinuation:
		return "PlacedWithContinuation"
	default:
		return "DidNotFit"
	}
}

// Outcome is returned by the layout of a box.
// Rest is only valid for [PlacedWithContinuation] : it is the
// continuation box, owned by the caller, which must insert it in the tree.
type Outcome struct {
	Kind OutcomeKind
	Rest bo.ID
}

var (
	placed    = Outcome{Kind: Placed, Rest: bo.None}
	didNotFit = Outcome{Kind: DidNotFit, Rest: bo.None}
)

func continued(rest bo.ID) Outcome { return Outcome{Kind: PlacedWithContinuation, Rest: rest} }

// flow is the layout behavior of a box kind.
type flow interface {
	// loadSizes resolves the used values of the box model,
	// given the size of the containing block.
	// If [update] is true, the content height computed by a
	// previous layout is kept.
	loadSizes(lc *layoutContext, b *Box, update bool)

	// doLayout places the content of the box, and sets its size.
	// [avail] is the horizontal space available for the box margin box.
	// If [force] is true, the box must place at least some content,
	// even if it overflows. [lineStart] is true when the box starts a line.
	doLayout(lc *layoutContext, b *Box, avail Fl, force, lineStart bool) Outcome

	// minimalWidth and maximalWidth return the widths of the margin box
	// with the narrowest and widest possible layouts.
	minimalWidth(lc *layoutContext, b *Box) Fl
	maximalWidth(lc *layoutContext, b *Box) Fl

	canSplitInside(lc *layoutContext, b *Box) bool
	canSplitBefore(lc *layoutContext, b *Box) bool
	canSplitAfter(lc *layoutContext, b *Box) bool

	startsWithWhitespace(lc *layoutContext, b *Box) bool
	endsWithWhitespace(lc *layoutContext, b *Box) bool
	collapsesSpaces(b *Box) bool
	// isWhitespace is true for boxes only containing collapsible spaces.
	isWhitespace(lc *layoutContext, b *Box) bool
	setIgnoreInitialWhitespace(lc *layoutContext, b *Box, ignore bool)

	// computeEfficientMargins sets [Box.EMargin], once the children are done.
	computeEfficientMargins(lc *layoutContext, b *Box)
	// marginsAdjoin is true when the top and bottom margins of the box
	// collapse through it.
	marginsAdjoin(lc *layoutContext, b *Box) bool
}

var flows = [...]flow{
	bo.ViewportKind: viewportFlow{},
	bo.BlockKind:    blockFlow{},
	bo.InlineKind:   inlineFlow{},
	bo.TextKind:     textFlow{},
	bo.ReplacedKind: replacedFlow{},
}

func flowOf(b *Box) flow { return flows[b.Kind] }

// atomicFlow provides the behavior of boxes laid out as a whole,
// like images and inline blocks.
type atomicFlow struct{}

func (atomicFlow) canSplitInside(*layoutContext, *Box) bool              { return false }
func (atomicFlow) canSplitBefore(*layoutContext, *Box) bool              { return true }
func (atomicFlow) canSplitAfter(*layoutContext, *Box) bool               { return true }
func (atomicFlow) startsWithWhitespace(*layoutContext, *Box) bool        { return false }
func (atomicFlow) endsWithWhitespace(*layoutContext, *Box) bool          { return false }
func (atomicFlow) collapsesSpaces(*Box) bool                             { return true }
func (atomicFlow) isWhitespace(*layoutContext, *Box) bool                { return false }
func (atomicFlow) setIgnoreInitialWhitespace(*layoutContext, *Box, bool) {}
func (atomicFlow) marginsAdjoin(*layoutContext, *Box) bool               { return false }

func (atomicFlow) computeEfficientMargins(_ *layoutContext, b *Box) {
	b.EMargin = b.Margin
}

func (atomicFlow) minimalWidth(_ *layoutContext, b *Box) Fl { return b.TotalWidth() }
func (atomicFlow) maximalWidth(_ *layoutContext, b *Box) Fl { return b.TotalWidth() }

// dispatch helpers

func (lc *layoutContext) loadSizes(id bo.ID, update bool) {
	b := lc.tree.Box(id)
	flowOf(b).loadSizes(lc, b, update)
}

// doLayout lays out the box [id], recording the available width.
func (lc *layoutContext) doLayout(id bo.ID, avail Fl, force, lineStart bool) Outcome {
	b := lc.tree.Box(id)
	b.AvailableWidth = avail
	out := flowOf(b).doLayout(lc, b, avail, force, lineStart)
	if traceMode {
		traceLogger.Dump("layout %s (avail %g, force %v): %s %s", b, avail, force, out.Kind, b.Bounds)
	}
	return out
}

func (lc *layoutContext) minimalWidth(id bo.ID) Fl {
	b := lc.tree.Box(id)
	return flowOf(b).minimalWidth(lc, b)
}

func (lc *layoutContext) maximalWidth(id bo.ID) Fl {
	b := lc.tree.Box(id)
	return flowOf(b).maximalWidth(lc, b)
}

func (lc *layoutContext) canSplitInside(id bo.ID) bool {
	b := lc.tree.Box(id)
	return flowOf(b).canSplitInside(lc, b)
}

func (lc *layoutContext) canSplitBefore(id bo.ID) bool {
	b := lc.tree.Box(id)
	return flowOf(b).canSplitBefore(lc, b)
}

func (lc *layoutContext) canSplitAfter(id bo.ID) bool {
	b := lc.tree.Box(id)
	return flowOf(b).canSplitAfter(lc, b)
}

func (lc *layoutContext) startsWithWhitespace(id bo.ID) bool {
	b := lc.tree.Box(id)
	return flowOf(b).startsWithWhitespace(lc, b)
}

func (lc *layoutContext) endsWithWhitespace(id bo.ID) bool {
	b := lc.tree.Box(id)
	return flowOf(b).endsWithWhitespace(lc, b)
}

func (lc *layoutContext) collapsesSpaces(id bo.ID) bool {
	b := lc.tree.Box(id)
	return flowOf(b).collapsesSpaces(b)
}

func (lc *layoutContext) isWhitespace(id bo.ID) bool {
	b := lc.tree.Box(id)
	return flowOf(b).isWhitespace(lc, b)
}

func (lc *layoutContext) setIgnoreInitialWhitespace(id bo.ID, ignore bool) {
	b := lc.tree.Box(id)
	flowOf(b).setIgnoreInitialWhitespace(lc, b, ignore)
}

// computeEfficientMargins is a bottom-up pass over the subtree of [id].
func (lc *layoutContext) computeEfficientMargins(id bo.ID) {
	b := lc.tree.Box(id)
	for _, c := range b.ActiveChildren() {
		lc.computeEfficientMargins(c)
	}
	flowOf(b).computeEfficientMargins(lc, b)
}

func (lc *layoutContext) marginsAdjoin(id bo.ID) bool {
	b := lc.tree.Box(id)
	return flowOf(b).marginsAdjoin(lc, b)
}

// whitespaceAfter returns the state of the whitespace collapsing
// after [id], given the state before it.
func (lc *layoutContext) whitespaceAfter(id bo.ID, lastWhite bool) bool {
	if lc.isWhitespace(id) {
		return lastWhite || lc.collapsesSpaces(id)
	}
	return lc.endsWithWhitespace(id) && lc.collapsesSpaces(id)
}
