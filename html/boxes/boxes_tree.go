// Package boxes defines the box tree produced from the styled document
// and consumed by the layout.
//
// Boxes are stored in an arena, a [Tree], and addressed by stable [ID]s :
// the references to the parent, containing block, clip block and viewport
// are plain IDs, never owning pointers. A box is one record with the
// geometry shared by every kind, plus a payload specific to its [Kind].
package boxes

import (
	"fmt"

	pa "github.com/benoitkugler/cssflow/css/parser"
	pr "github.com/benoitkugler/cssflow/css/properties"
	"github.com/benoitkugler/cssflow/html/tree"
	"github.com/benoitkugler/cssflow/logger"
	"github.com/benoitkugler/cssflow/text"
	"github.com/benoitkugler/cssflow/utils"
	"github.com/google/uuid"
)

type Fl = utils.Fl

// ID identifies a box in its [Tree].
type ID int32

// None is the invalid [ID], used for missing references.
const None ID = -1

// Kind is the tag of the box variant.
type Kind uint8

const (
	ViewportKind Kind = iota
	BlockKind
	InlineKind
	TextKind
	ReplacedKind
)

func (k Kind) String() string {
	switch k {
	case ViewportKind:
		return "Viewport"
	case BlockKind:
		return "Block"
	case InlineKind:
		return "Inline"
	case TextKind:
		return "Text"
	case ReplacedKind:
		return "Replaced"
	default:
		return fmt.Sprintf("<kind %d>", k)
	}
}

// Sides stores a value for each side of a box.
type Sides struct {
	Top, Right, Bottom, Left Fl
}

// Horizontal returns Left + Right.
func (s Sides) Horizontal() Fl { return s.Left + s.Right }

// Vertical returns Top + Bottom.
func (s Sides) Vertical() Fl { return s.Top + s.Bottom }

// Set updates the value for [side].
func (s *Sides) Set(side pr.Side, v Fl) {
	switch side {
	case pr.STop:
		s.Top = v
	case pr.SRight:
		s.Right = v
	case pr.SBottom:
		s.Bottom = v
	case pr.SLeft:
		s.Left = v
	}
}

// Size is a width and a height.
type Size struct {
	Width, Height Fl
}

// Box is one node of the box tree.
type Box struct {
	ID   ID
	Kind Kind

	Element *tree.Element // source element, nil for the viewport
	Style   pr.ElementStyle
	Order   int // index in document order

	// Anonymous boxes are generated to wrap inline content
	// between blocks : they share the style of their parent element.
	Anonymous bool

	IsRoot    bool // the box of the document root element
	IsBlock   bool // block-level box
	IsEmpty   bool // the box has no content (only whitespace)
	Displayed bool // false for boxes hidden by display or fully clipped
	Visible   bool // the declared visibility

	// Bounds is the margin box, relative to the content box of the parent,
	// or to the padding box of the containing block for absolutely
	// positioned boxes. For inline boxes, the vertical margins are not included.
	Bounds utils.Rect

	absBounds  utils.Rect
	clipped    utils.Rect
	positioned bool // absBounds is valid

	Parent          ID
	ContainingBlock ID
	ClipBlock       ID
	Viewport        ID

	AvailableWidth Fl
	Splitted       bool // the box is a continuation produced by a split

	Margin  Sides // used margins
	EMargin Sides // effective vertical margins, after collapsing
	Border  Sides
	Padding Sides
	Content Size

	Children []ID
	// StartChild and EndChild delimit the active range of [Children].
	StartChild, EndChild int

	Ctx        *text.Context
	Background pa.RGBA

	Block    *BlockFields
	Inline   *InlineFields
	Text     *TextFields
	Replaced *ReplacedFields
	View     *ViewportFields
}

// Position is the positioning scheme of a block.
type Position uint8

const (
	Static Position = iota
	Relative
	Absolute
	Fixed
)

// IsPositioned is true for absolute and fixed boxes.
func (p Position) IsPositioned() bool { return p == Absolute || p == Fixed }

// FloatSide is the value of the 'float' and 'clear' properties.
type FloatSide uint8

const (
	FloatNone FloatSide = iota
	FloatLeft
	FloatRight
	FloatBoth // only valid for 'clear'
)

// BlockFields is the payload of block boxes, including the viewport.
type BlockFields struct {
	Position Position
	Float    FloatSide
	Clear    FloatSide
	Overflow bool // overflow is not visible : the box clips its content

	InlineBlock    bool          // an atomic inline-level block container
	ContainsBlocks bool          // the children are block-level, otherwise they form lines
	VAlign         VerticalAlign // only used by inline blocks

	// Used offsets, AUTO when not set.
	Top, Right, Bottom, Left pr.MaybeFloat

	// Declared horizontal margins, AUTO when not set.
	MarginLeft, MarginRight pr.MaybeFloat

	// Declared sizes and clamps, percentages resolved, AUTO when not set
	// (or "none" for the maximum sizes).
	Width, Height       pr.MaybeFloat
	MinWidth, MinHeight pr.Float
	MaxWidth, MaxHeight pr.MaybeFloat

	// StaticPosition is the position the box would have had in
	// the normal flow, relative to the content box of its parent.
	StaticPosition utils.Rect
	// StaticX and StaticY are set when the offsets are AUTO on both sides,
	// so that the static position is used.
	StaticX, StaticY bool
}

func newBlockFields() *BlockFields {
	return &BlockFields{
		Top: pr.AutoF, Right: pr.AutoF, Bottom: pr.AutoF, Left: pr.AutoF,
		MarginLeft: pr.AutoF, MarginRight: pr.AutoF,
		Width: pr.AutoF, Height: pr.AutoF,
		MaxWidth: pr.AutoF, MaxHeight: pr.AutoF,
	}
}

// InFlow is false for floats and absolutely positioned boxes.
func (bf *BlockFields) InFlow() bool {
	return bf.Float == FloatNone && !bf.Position.IsPositioned()
}

// VerticalAlign is the parsed value of the 'vertical-align' property.
type VerticalAlign struct {
	Keyword string    // empty for lengths
	Length  pr.DimOrS // used when Keyword is empty
}

// LineMetrics aggregates the vertical metrics of a line.
type LineMetrics struct {
	BaselineOffset  Fl // distance from the top of the line to the baseline
	BelowBaseline   Fl
	TotalLineHeight Fl
	MaxLineHeight   Fl
	Lead            Fl
}

// InlineFields is the payload of inline boxes.
type InlineFields struct {
	VAlign VerticalAlign

	// Line is the line built from the children during the last layout.
	Line LineMetrics
	// HalfLead is half the difference between the content height and the line height.
	HalfLead Fl
	// LineboxOffset is the offset of the content box from the top of the line.
	LineboxOffset Fl

	IgnoreInitialWS bool
}

// WhiteSpace is the value of the 'white-space' property.
type WhiteSpace uint8

const (
	Normal WhiteSpace = iota
	NoWrap
	Pre
	PreWrap
	PreLine
)

// Collapses is true when sequences of spaces are collapsed.
func (ws WhiteSpace) Collapses() bool { return ws == Normal || ws == NoWrap || ws == PreLine }

// Wraps is true when lines may be broken at spaces.
func (ws WhiteSpace) Wraps() bool { return ws == Normal || ws == PreWrap || ws == PreLine }

// TextFields is the payload of text boxes.
type TextFields struct {
	Text string // the whole text of the node, with collapsed spaces
	// Start and End delimit the fragment shown by this box.
	Start, End int
	// Shown is the part of the fragment placed by the last layout.
	ShownStart, ShownEnd int

	WhiteSpace      WhiteSpace
	IgnoreInitialWS bool
}

// Fragment returns the text of the box.
func (tf *TextFields) Fragment() string { return tf.Text[tf.Start:tf.End] }

// Shown returns the text placed by the layout.
func (tf *TextFields) Shown() string { return tf.Text[tf.ShownStart:tf.ShownEnd] }

// ReplacedFields is the payload of replaced elements, like images.
type ReplacedFields struct {
	Intrinsic Size
	VAlign    VerticalAlign
}

// ViewportFields is the payload of the viewport.
type ViewportFields struct {
	Width, Height Fl
	RootBox       ID
	RootNode      *tree.Element
	// MaxX and MaxY are the extents of the descendants,
	// updated by the absolute positioning pass.
	MaxX, MaxY Fl
}

// Tree is the arena storing the boxes.
type Tree struct {
	boxes    []*Box
	Viewport ID

	// Diagnostics receives the non fatal issues found while
	// building and laying out the tree.
	Diagnostics logger.Sink
	// Run identifies the events of one layout.
	Run uuid.UUID
}

// NewTree returns an empty tree, reporting to [sink], or [logger.Default] if nil.
func NewTree(sink logger.Sink) *Tree {
	if sink == nil {
		sink = logger.Default
	}
	return &Tree{Viewport: None, Diagnostics: sink, Run: uuid.New()}
}

// Len returns the number of boxes, including the ones
// not reachable anymore from the viewport.
func (t *Tree) Len() int { return len(t.boxes) }

// Box returns the box for [id], which must be valid.
func (t *Tree) Box(id ID) *Box { return t.boxes[id] }

// Get returns the box for [id], or nil for [None].
func (t *Tree) Get(id ID) *Box {
	if id == None {
		return nil
	}
	return t.boxes[id]
}

// NewBox registers a new box without parent.
func (t *Tree) NewBox(kind Kind, element *tree.Element, style pr.ElementStyle) *Box {
	b := &Box{
		ID:              ID(len(t.boxes)),
		Kind:            kind,
		Element:         element,
		Style:           style,
		Displayed:       true,
		Visible:         true,
		Parent:          None,
		ContainingBlock: None,
		ClipBlock:       None,
		Viewport:        t.Viewport,
	}
	switch kind {
	case ViewportKind, BlockKind:
		b.Block = newBlockFields()
		if kind == ViewportKind {
			b.View = &ViewportFields{RootBox: None}
		}
	case InlineKind:
		b.Inline = new(InlineFields)
	case TextKind:
		b.Text = new(TextFields)
	case ReplacedKind:
		b.Replaced = new(ReplacedFields)
	}
	t.boxes = append(t.boxes, b)
	return b
}

// CopyBox registers a shallow copy of [id], with a new ID.
// The children slice and the variant payloads are cloned, so that
// the copy shares no mutable state with the original.
func (t *Tree) CopyBox(id ID) *Box {
	src := t.boxes[id]
	out := *src
	out.ID = ID(len(t.boxes))
	out.Children = append([]ID(nil), src.Children...)
	out.positioned = false
	if src.Block != nil {
		bl := *src.Block
		out.Block = &bl
	}
	if src.Inline != nil {
		in := *src.Inline
		out.Inline = &in
	}
	if src.Text != nil {
		tx := *src.Text
		out.Text = &tx
	}
	if src.Replaced != nil {
		re := *src.Replaced
		out.Replaced = &re
	}
	if src.View != nil {
		vi := *src.View
		out.View = &vi
	}
	t.boxes = append(t.boxes, &out)
	return &out
}

// Warn emits a diagnostic about [id], which may be [None].
func (t *Tree) Warn(kind logger.Kind, id ID, format string, args ...interface{}) {
	ev := logger.Event{Kind: kind, Box: int(id), Message: fmt.Sprintf(format, args...), Run: t.Run}
	if b := t.Get(id); b != nil && b.Element != nil {
		ev.Tag = b.Element.Tag()
	}
	t.Diagnostics.Emit(ev)
}

// ActiveChildren returns the children in the active range.
func (b *Box) ActiveChildren() []ID { return b.Children[b.StartChild:b.EndChild] }

// AddSubBox appends [child] to [parent], updating the child references.
// For the viewport, the box of the document root element is recorded :
// a second claim is reported and ignored.
func (t *Tree) AddSubBox(parent, child ID) {
	p, c := t.boxes[parent], t.boxes[child]
	p.Children = append(p.Children, child)
	p.EndChild = len(p.Children)
	t.adoptParent(c, p)

	if p.View != nil && c.Element != nil && c.Element == p.View.RootNode {
		if p.View.RootBox != None {
			t.Warn(logger.DuplicateRoot, child, "another root box %s in addition to previous %s",
				c, t.boxes[p.View.RootBox])
			return
		}
		c.IsRoot = true
		p.View.RootBox = child
	}
}

// AdoptChildren makes [b] the parent of its active children.
func (t *Tree) AdoptChildren(b *Box) {
	for _, id := range b.ActiveChildren() {
		t.adoptParent(t.boxes[id], b)
	}
}

// adoptParent sets the references of [c], child of [p].
func (t *Tree) adoptParent(c, p *Box) {
	c.Parent = p.ID
	c.Viewport = p.Viewport
	if p.Kind == ViewportKind {
		c.Viewport = p.ID
	}

	clipOf := func(b *Box) ID {
		if b.Kind == ViewportKind || (b.Block != nil && b.Block.Overflow) {
			return b.ID
		}
		return b.ClipBlock
	}

	if c.Block != nil && c.Block.Position == Fixed {
		c.ContainingBlock = c.Viewport
		c.ClipBlock = c.Viewport
		return
	}
	if c.Block != nil && c.Block.Position == Absolute {
		cb := p
		for cb.Kind != ViewportKind && !(cb.Block != nil && cb.Block.Position != Static) {
			if cb.Parent == None {
				break
			}
			cb = t.boxes[cb.Parent]
		}
		c.ContainingBlock = cb.ID
		c.ClipBlock = clipOf(cb)
		return
	}

	if p.Block != nil {
		c.ContainingBlock = p.ID
	} else {
		c.ContainingBlock = p.ContainingBlock
	}
	c.ClipBlock = clipOf(p)
}

func (b *Box) String() string {
	if b.Element == nil {
		return fmt.Sprintf("%s#%d", b.Kind, b.ID)
	}
	if b.Text != nil {
		return fmt.Sprintf("%s#%d %q", b.Kind, b.ID, b.Text.Fragment())
	}
	return fmt.Sprintf("%s#%d %s", b.Kind, b.ID, b.Element)
}
