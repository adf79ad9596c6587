package boxes

import (
	"strconv"
	"strings"

	pr "github.com/benoitkugler/cssflow/css/properties"
	"github.com/benoitkugler/cssflow/html/tree"
	"github.com/benoitkugler/cssflow/text"
)

type handlerFunction = func(bd *builder, element *tree.Element, ctx *text.Context) *Box

// htmlHandlers map a tag name to a callback creating the box needed.
var htmlHandlers = map[string]handlerFunction{
	"img":    handleImg,
	"embed":  handleReplaced,
	"object": handleReplaced,
	"iframe": handleReplaced,
	"video":  handleReplaced,
	"canvas": handleReplaced,
	"svg":    handleReplaced,
}

// intrinsicSize reads the width and height attributes, which are
// the only size information available since images are not loaded.
func intrinsicSize(element *tree.Element) (Size, bool) {
	parse := func(name string) (Fl, bool) {
		v, ok := element.Attr(name)
		if !ok {
			return 0, false
		}
		f, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(v), "px"), 32)
		if err != nil || f < 0 {
			return 0, false
		}
		return Fl(f), true
	}
	w, okW := parse("width")
	h, okH := parse("height")
	return Size{w, h}, okW || okH
}

// Wrap an element in a replaced box.
//
// That box is either block-level or inline-level, depending on what the
// element should be.
func makeReplacedBox(bd *builder, element *tree.Element, ctx *text.Context, size Size) *Box {
	b := bd.newBox(ReplacedKind, element, element.Style)
	b.IsBlock = element.Style.GetDisplay() != "inline" && element.Style.GetDisplay() != "inline-block"
	b.Ctx = ctx
	b.Replaced.Intrinsic = size
	b.Replaced.VAlign = parseVerticalAlign(element.Style.GetVerticalAlign())
	bd.loadStyle(b)
	return b
}

// Handle <img> elements, return either a replaced box or the alt-text.
// See: http://www.w3.org/TR/html5/embedded-content-1.html#the-img-element
func handleImg(bd *builder, element *tree.Element, ctx *text.Context) *Box {
	size, hasSize := intrinsicSize(element)
	if alt, _ := element.Attr("alt"); alt != "" && !hasSize && !hasSizingStyle(element.Style) {
		// the image is never loaded : without size, the alt-text is more useful
		return altText(bd, element, ctx, alt)
	}
	return makeReplacedBox(bd, element, ctx, size)
}

func hasSizingStyle(style pr.ElementStyle) bool {
	return !style.GetWidth().IsAuto() || !style.GetHeight().IsAuto()
}

// altText returns an inline box containing [alt].
func altText(bd *builder, element *tree.Element, ctx *text.Context, alt string) *Box {
	b := bd.newBox(InlineKind, element, element.Style)
	b.Ctx = ctx
	b.Inline.VAlign = parseVerticalAlign(element.Style.GetVerticalAlign())
	bd.loadStyle(b)
	var children []ID
	if tb := bd.textBox(element, alt, ctx); tb != nil {
		children = append(children, tb.ID)
	}
	bd.setChildren(b, children)
	return b
}

// Handle <embed>, <object> and similar elements : their content is
// never loaded, so they are only boxes with the size given by the document.
func handleReplaced(bd *builder, element *tree.Element, ctx *text.Context) *Box {
	size, _ := intrinsicSize(element)
	return makeReplacedBox(bd, element, ctx, size)
}
