package boxes

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/cases"
)

// tagMatcher compares tag names, ignoring case if required.
type tagMatcher struct {
	name string
	fold *cases.Caser
}

func newTagMatcher(name string, caseSensitive bool) tagMatcher {
	if caseSensitive {
		return tagMatcher{name: name}
	}
	fold := cases.Fold()
	return tagMatcher{name: fold.String(name), fold: &fold}
}

func (m tagMatcher) match(tag string) bool {
	if m.fold != nil {
		tag = m.fold.String(tag)
	}
	return tag == m.name
}

// isElementBox is true for the boxes generated by an element,
// as opposed to the viewport, text and anonymous boxes.
func (b *Box) isElementBox() bool {
	return b.Element != nil && !b.Anonymous && b.Kind != TextKind && b.Kind != ViewportKind
}

// rootBox returns the root box of the viewport, or nil
func (t *Tree) rootBox() *Box {
	vp := t.Get(t.Viewport)
	if vp == nil || vp.View == nil {
		return nil
	}
	return t.Get(vp.View.RootBox)
}

// findElementBox returns the first box, in depth first order,
// from [b], for which [pred] is true.
func (t *Tree) findElementBox(b *Box, pred func(*Box) bool) *Box {
	if b.isElementBox() && pred(b) {
		return b
	}
	for _, id := range b.ActiveChildren() {
		if out := t.findElementBox(t.boxes[id], pred); out != nil {
			return out
		}
	}
	return nil
}

// ElementBoxByName returns the first element box with the tag [name],
// or nil if there is none.
func (t *Tree) ElementBoxByName(name string, caseSensitive bool) *Box {
	root := t.rootBox()
	if root == nil {
		return nil
	}
	m := newTagMatcher(name, caseSensitive)
	return t.findElementBox(root, func(b *Box) bool { return m.match(b.Element.Tag()) })
}

// ElementBoxesByName returns all the element boxes with the tag [name],
// nested ones included, in document order.
func (t *Tree) ElementBoxesByName(name string, caseSensitive bool) []*Box {
	root := t.rootBox()
	if root == nil {
		return nil
	}
	m := newTagMatcher(name, caseSensitive)
	var (
		out  []*Box
		walk func(b *Box)
	)
	walk = func(b *Box) {
		if b.isElementBox() && m.match(b.Element.Tag()) {
			out = append(out, b)
		}
		for _, id := range b.ActiveChildren() {
			walk(t.boxes[id])
		}
	}
	walk(root)
	return out
}

// ElementBoxByNode returns the first box generated by [node], or nil.
func (t *Tree) ElementBoxByNode(node *html.Node) *Box {
	root := t.rootBox()
	if root == nil {
		return nil
	}
	return t.findElementBox(root, func(b *Box) bool { return b.Element.Node == node })
}

// Text returns the concatenation of the text contained in [id].
func (t *Tree) Text(id ID) string {
	var sb strings.Builder
	t.writeText(&sb, t.boxes[id])
	return sb.String()
}

func (t *Tree) writeText(sb *strings.Builder, b *Box) {
	if b.Text != nil {
		sb.WriteString(b.Text.Fragment())
		return
	}
	for _, id := range b.ActiveChildren() {
		t.writeText(sb, t.boxes[id])
	}
}

// Walk calls [fn] for [id] and its active descendants, in tree order.
// The descendants of a box are skipped if [fn] returns false.
func (t *Tree) Walk(id ID, fn func(b *Box) bool) {
	b := t.boxes[id]
	if !fn(b) {
		return
	}
	for _, c := range b.ActiveChildren() {
		t.Walk(c, fn)
	}
}

// Dump writes a description of the tree, with one box per line.
func (t *Tree) Dump(w io.Writer) {
	var dump func(b *Box, indent int)
	dump = func(b *Box, indent int) {
		fmt.Fprintf(w, "%s%s %s", strings.Repeat("  ", indent), b, b.Bounds)
		if b.positioned {
			fmt.Fprintf(w, " abs=%s", b.absBounds)
		}
		if !b.Displayed {
			fmt.Fprint(w, " (hidden)")
		}
		fmt.Fprintln(w)
		for _, id := range b.ActiveChildren() {
			dump(t.boxes[id], indent+1)
		}
	}
	if vp := t.Get(t.Viewport); vp != nil {
		dump(vp, 0)
	}
}
