package boxes

import (
	"strings"

	pa "github.com/benoitkugler/cssflow/css/parser"
	pr "github.com/benoitkugler/cssflow/css/properties"
	"github.com/benoitkugler/cssflow/html/tree"
	"github.com/benoitkugler/cssflow/logger"
	"github.com/benoitkugler/cssflow/text"
)

// Build creates the box tree for the styled document [root], inside
// a viewport of the given initial size.
// Diagnostics are sent to [sink], or [logger.Default] if nil.
func Build(root *tree.Element, fonts text.FontConfiguration, width, height Fl, sink logger.Sink) *Tree {
	logger.ProgressLogger.Info("Step 3 - Creating formatting structure")

	t := NewTree(sink)
	vpStyle := pr.Properties{pr.PDisplay: pr.String("block")}
	vp := t.NewBox(ViewportKind, nil, vpStyle)
	t.Viewport = vp.ID
	vp.Viewport = vp.ID
	vp.IsBlock = true
	vp.Block.ContainsBlocks = true
	vp.View.Width, vp.View.Height = width, height
	vp.View.RootNode = root
	vp.Ctx = text.NewContext(fonts, vpStyle)

	bd := builder{tree: t, fonts: fonts}
	for _, id := range bd.element(root, nil) {
		t.AddSubBox(vp.ID, id)
	}
	t.adoptSubtree(vp)
	return t
}

// adoptSubtree updates the references of the descendants of [b], top-down.
func (t *Tree) adoptSubtree(b *Box) {
	for _, id := range b.Children {
		c := t.boxes[id]
		t.adoptParent(c, b)
		t.adoptSubtree(c)
	}
}

type builder struct {
	tree  *Tree
	fonts text.FontConfiguration
	order int
}

func (bd *builder) newBox(kind Kind, element *tree.Element, style pr.ElementStyle) *Box {
	b := bd.tree.NewBox(kind, element, style)
	b.Order = bd.order
	bd.order++
	return b
}

// element returns the boxes generated by [e] : none for
// elements not displayed, one otherwise.
func (bd *builder) element(e *tree.Element, parentCtx *text.Context) []ID {
	if e.IsText() {
		if b := bd.textBox(e, e.Text(), parentCtx); b != nil {
			return []ID{b.ID}
		}
		return nil
	}

	style := e.Style
	display := style.GetDisplay()
	if display == "none" {
		return nil
	}
	ctx := text.NewContext(bd.fonts, style)

	if handler, ok := htmlHandlers[e.Tag()]; ok {
		if b := handler(bd, e, ctx); b != nil {
			return []ID{b.ID}
		}
		return nil
	}

	var b *Box
	switch display {
	case "inline":
		b = bd.newBox(InlineKind, e, style)
		b.Inline.VAlign = parseVerticalAlign(style.GetVerticalAlign())
	case "inline-block":
		b = bd.newBox(BlockKind, e, style)
		b.Block.InlineBlock = true
		b.Block.VAlign = parseVerticalAlign(style.GetVerticalAlign())
	default:
		switch display {
		case "block", "list-item", "flow-root":
		default:
			bd.tree.Warn(logger.UnsupportedValue, None, "display: %s is laid out as a block for %s", display, e)
		}
		b = bd.newBox(BlockKind, e, style)
		b.IsBlock = true
	}
	b.Ctx = ctx
	bd.loadStyle(b)

	var children []ID
	for _, c := range e.Children {
		children = append(children, bd.element(c, ctx)...)
	}
	bd.setChildren(b, children)
	return []ID{b.ID}
}

// loadStyle stores the keywords of the style used by the layout.
func (bd *builder) loadStyle(b *Box) {
	style := b.Style
	b.Visible = style.GetVisibility() != "hidden" && style.GetVisibility() != "collapse"
	if !b.Anonymous {
		b.Background = pa.RGBA(style.GetBackgroundColor())
	}
	if b.Block == nil {
		return
	}
	switch style.GetPosition() {
	case "relative":
		b.Block.Position = Relative
	case "absolute":
		b.Block.Position = Absolute
	case "fixed":
		b.Block.Position = Fixed
	}
	b.Block.Float = parseFloatSide(style.GetFloat())
	b.Block.Clear = parseFloatSide(style.GetClear())
	b.Block.Overflow = style.GetOverflow() != "visible"
}

func parseFloatSide(s pr.String) FloatSide {
	switch s {
	case "left":
		return FloatLeft
	case "right":
		return FloatRight
	case "both":
		return FloatBoth
	default:
		return FloatNone
	}
}

func parseVerticalAlign(v pr.DimOrS) VerticalAlign {
	if v.S != "" {
		return VerticalAlign{Keyword: v.S}
	}
	return VerticalAlign{Length: v}
}

// setChildren installs [children] in [b], wrapping the runs of
// inline-level boxes mixed with block-level ones in anonymous blocks.
// An inline box containing blocks is turned into a block.
func (bd *builder) setChildren(b *Box, children []ID) {
	t := bd.tree
	hasBlocks := false
	for _, id := range children {
		if t.boxes[id].IsBlock {
			hasBlocks = true
			break
		}
	}

	if hasBlocks && b.Kind == InlineKind {
		b.Kind = BlockKind
		b.IsBlock = true
		b.Inline = nil
		b.Block = newBlockFields()
		bd.loadStyle(b)
	}

	if hasBlocks {
		var (
			wrapped []ID
			run     []ID
		)
		flush := func() {
			if len(run) == 0 {
				return
			}
			if !bd.isWhitespaceRun(run) {
				anon := bd.newBox(BlockKind, b.Element, AnonymousStyle(b.Style))
				anon.Anonymous = true
				anon.IsBlock = true
				anon.Ctx = b.Ctx
				bd.loadStyle(anon)
				anon.Children = run
				anon.EndChild = len(run)
				anon.IsEmpty = bd.allEmpty(run)
				wrapped = append(wrapped, anon.ID)
			}
			run = nil
		}
		for _, id := range children {
			if t.boxes[id].IsBlock {
				flush()
				wrapped = append(wrapped, id)
			} else {
				run = append(run, id)
			}
		}
		flush()
		children = wrapped
	}

	b.Children = children
	b.StartChild, b.EndChild = 0, len(children)
	if b.Block != nil {
		b.Block.ContainsBlocks = hasBlocks
	}
	b.IsEmpty = bd.allEmpty(children)
}

func (bd *builder) isWhitespaceRun(run []ID) bool {
	for _, id := range run {
		c := bd.tree.boxes[id]
		if c.Kind != TextKind || !c.IsEmpty {
			return false
		}
	}
	return true
}

func (bd *builder) allEmpty(children []ID) bool {
	for _, id := range children {
		if !bd.tree.boxes[id].IsEmpty {
			return false
		}
	}
	return true
}

// AnonymousStyle returns the style of an anonymous box
// generated inside an element with style [parent] : only the inherited
// properties are kept.
func AnonymousStyle(parent pr.ElementStyle) pr.Properties {
	out := pr.Properties{pr.PDisplay: pr.String("block")}
	for key := range pr.Inherited {
		out[key] = parent.Get(key)
	}
	return out
}

func (bd *builder) textBox(e *tree.Element, content string, ctx *text.Context) *Box {
	ws := parseWhiteSpace(e.Style.GetWhiteSpace())
	content = collapseWhiteSpace(content, ws)
	if content == "" {
		return nil
	}
	b := bd.newBox(TextKind, e, e.Style)
	b.Ctx = ctx
	b.Visible = e.Style.GetVisibility() == "visible"
	b.Text.Text = content
	b.Text.End = len(content)
	b.Text.WhiteSpace = ws
	b.IsEmpty = ws.Collapses() && strings.TrimSpace(content) == ""
	return b
}

func parseWhiteSpace(s pr.String) WhiteSpace {
	switch s {
	case "nowrap":
		return NoWrap
	case "pre":
		return Pre
	case "pre-wrap":
		return PreWrap
	case "pre-line":
		return PreLine
	default:
		return Normal
	}
}

func isCollapsible(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\f'
}

// collapseWhiteSpace applies the first step of the white space
// processing : sequences of spaces are merged when [ws] says so.
// Spaces at the boundaries of the text are handled during layout.
func collapseWhiteSpace(s string, ws WhiteSpace) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	switch ws {
	case Pre, PreWrap:
		return strings.ReplaceAll(s, "\t", "        ")
	case PreLine:
		lines := strings.Split(s, "\n")
		for i, line := range lines {
			lines[i] = collapseWhiteSpace(line, Normal)
			if i > 0 {
				lines[i] = strings.TrimLeft(lines[i], " ")
			}
			if i < len(lines)-1 {
				lines[i] = strings.TrimRight(lines[i], " ")
			}
		}
		return strings.Join(lines, "\n")
	}
	var b strings.Builder
	inSpace := false
	for _, r := range s {
		if isCollapsible(r) {
			if !inSpace {
				b.WriteByte(' ')
			}
			inSpace = true
			continue
		}
		inSpace = false
		b.WriteRune(r)
	}
	return b.String()
}
