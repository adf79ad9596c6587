package tree

import (
	"sort"
	"strconv"
	"strings"

	pa "github.com/benoitkugler/cssflow/css/parser"
	pr "github.com/benoitkugler/cssflow/css/properties"
	"github.com/benoitkugler/cssflow/css/validation"
	"github.com/benoitkugler/cssflow/logger"
	"golang.org/x/net/html"
)

// Return the precedence for a declaration.
// Precedence values have no meaning unless compared to each other.
// See http://www.w3.org/TR/CSS21/cascade.html#cascading-order
const (
	precedenceUA uint8 = iota + 1
	precedencePresentationalHints
	precedenceAuthor
	precedenceAuthorImportant
)

type match struct {
	precedence  uint8
	specificity [3]uint8
	order       int
	props       pr.Properties
}

type cascadedStyle = pr.Properties

// Style returns the styled tree of the document, rooted at the <html> element.
// The style sheets are applied in order : the user agent style sheet,
// the given [author] style sheets, then the <style> elements of the document,
// and the style attributes.
func (h *HTML) Style(author ...CSS) *Element {
	logger.ProgressLogger.Info("Step 2 - Computing styles")
	sheets := append([]CSS{}, author...)
	for _, text := range findStyleElements(h.Root) {
		sheets = append(sheets, NewCSS([]byte(text)))
	}
	sf := styleFor{ua: h.UAStyleSheet, author: sheets}
	return sf.build(h.Root, nil, nil)
}

type styleFor struct {
	ua     CSS
	author []CSS

	rootFontSize pr.Float
}

func findStyleElements(root *html.Node) (out []string) {
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "style" {
			var b strings.Builder
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				if c.Type == html.TextNode {
					b.WriteString(c.Data)
				}
			}
			out = append(out, b.String())
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return out
}

func (sf *styleFor) build(node *html.Node, parent *Element, parentStyle pr.Properties) *Element {
	out := &Element{Node: node, Parent: parent}
	if node.Type == html.TextNode {
		out.Style = parentStyle
		return out
	}
	out.Style = sf.compute(sf.cascade(node), parentStyle, parent == nil)
	for c := node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode && c.Type != html.TextNode {
			continue
		}
		out.Children = append(out.Children, sf.build(c, out, out.Style))
	}
	return out
}

// cascade collects the declarations applying to [node], sorted by precedence.
func (sf *styleFor) cascade(node *html.Node) cascadedStyle {
	var matches []match
	addSheet := func(sheet CSS, normal, important uint8) {
		for _, rule := range sheet.rules {
			if !rule.selector.match(node) {
				continue
			}
			matches = append(matches, match{normal, rule.selector.specificity, len(matches), rule.normal})
			if len(rule.important) != 0 {
				matches = append(matches, match{important, rule.selector.specificity, len(matches), rule.important})
			}
		}
	}
	addSheet(sf.ua, precedenceUA, precedenceUA)
	if hints := presentationalHints(node); len(hints) != 0 {
		matches = append(matches, match{precedencePresentationalHints, [3]uint8{}, len(matches), hints})
	}
	for _, sheet := range sf.author {
		addSheet(sheet, precedenceAuthor, precedenceAuthorImportant)
	}
	for _, attr := range node.Attr {
		if attr.Key == "style" {
			normal, important := validation.Validate(pa.ParseDeclarationListString(attr.Val))
			// style attributes have the highest specificity
			matches = append(matches,
				match{precedenceAuthor, [3]uint8{255, 255, 255}, len(matches), normal},
				match{precedenceAuthorImportant, [3]uint8{255, 255, 255}, len(matches) + 1, important},
			)
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		mi, mj := matches[i], matches[j]
		if mi.precedence != mj.precedence {
			return mi.precedence < mj.precedence
		}
		if mi.specificity != mj.specificity {
			return lessSpecificity(mi.specificity, mj.specificity)
		}
		return mi.order < mj.order
	})

	out := cascadedStyle{}
	for _, m := range matches {
		out.UpdateWith(m.props)
	}
	return out
}

func lessSpecificity(a, b [3]uint8) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// presentationalHints maps the size attributes of replaced elements to CSS.
func presentationalHints(node *html.Node) pr.Properties {
	switch node.Data {
	case "img", "embed", "object", "iframe", "video", "canvas", "input", "textarea":
	default:
		return nil
	}
	out := pr.Properties{}
	for _, attr := range node.Attr {
		var key pr.KnownProp
		switch attr.Key {
		case "width":
			key = pr.PWidth
		case "height":
			key = pr.PHeight
		default:
			continue
		}
		v := strings.TrimSpace(attr.Val)
		unit := pr.Px
		if strings.HasSuffix(v, "%") {
			unit, v = pr.Perc, strings.TrimSuffix(v, "%")
		}
		f, err := strconv.ParseFloat(strings.TrimSuffix(v, "px"), 32)
		if err != nil || f < 0 {
			continue
		}
		out[key] = pr.NewDim(pr.Float(f), unit).ToValue()
	}
	return out
}

func isInherit(v pr.CssProperty) bool {
	d, ok := v.(pr.DimOrS)
	return ok && d.S == validation.Inherit
}

// compute resolves inheritance, font sizes and relative line heights,
// and applies the display fix-ups of CSS 2.1 section 9.7.
func (sf *styleFor) compute(cascaded cascadedStyle, parentStyle pr.Properties, isRoot bool) pr.Properties {
	computed := make(pr.Properties, pr.NbProperties)
	for key := pr.KnownProp(1); key < pr.NbProperties; key++ {
		value, ok := cascaded[key]
		switch {
		case ok && isInherit(value):
			if parentStyle != nil {
				value = parentStyle.Get(key)
			} else {
				value = pr.InitialValues[key]
			}
		case ok:
		case pr.Inherited[key] && parentStyle != nil:
			value = parentStyle.Get(key)
		default:
			value = pr.InitialValues[key]
		}
		computed[key] = value
	}

	parentFontSize := pr.Float(16)
	if parentStyle != nil {
		parentFontSize = parentStyle.GetFontSize().Value
	}
	fontSize := sf.fontSize(computed.GetFontSize(), parentFontSize, isRoot)
	computed[pr.PFontSize] = pr.NewDim(fontSize, pr.Px).ToValue()
	if isRoot {
		sf.rootFontSize = fontSize
	}

	// line-height lengths are computed, numbers are inherited as such
	if _, set := cascaded[pr.PLineHeight]; set {
		if lh := computed.GetLineHeight(); lh.S == "" && lh.Unit != pr.Scalar {
			dec := pr.Decoder{EmSize: fontSize, ExSize: fontSize / 2, RootEm: sf.rootFontSize}
			computed[pr.PLineHeight] = pr.NewDim(dec.Dimension(lh.Dimension, fontSize), pr.Px).ToValue()
		}
	}

	// a transparent border color stands for currentColor
	color := computed.GetColor()
	for side := pr.STop; side <= pr.SLeft; side++ {
		if c := computed.GetBorderColor(side); c == (pr.Color{}) {
			computed[side.BorderColor()] = color
		}
	}

	// http://www.w3.org/TR/CSS21/visuren.html#dis-pos-flo
	display := computed.GetDisplay()
	if display != "none" {
		position, float := computed.GetPosition(), computed.GetFloat()
		if position == "absolute" || position == "fixed" {
			computed[pr.PFloat] = pr.String("none")
			display = blockify(display)
		} else if float != "none" || isRoot {
			display = blockify(display)
		}
		computed[pr.PDisplay] = display
	}
	return computed
}

func blockify(display pr.String) pr.String {
	switch display {
	case "inline", "inline-block", "table-row", "table-cell", "table-row-group",
		"table-header-group", "table-footer-group", "table-caption", "table-column", "table-column-group":
		return "block"
	}
	return display
}

func (sf *styleFor) fontSize(v pr.DimOrS, parent pr.Float, isRoot bool) pr.Float {
	if v.S != "" {
		if f, ok := pr.FontSizeKeywords[v.S]; ok {
			return f
		}
		switch v.S {
		case "larger":
			return parent * 1.2
		case "smaller":
			return parent / 1.2
		}
		return parent
	}
	rootEm := sf.rootFontSize
	if isRoot {
		rootEm = parent
	}
	dec := pr.Decoder{EmSize: parent, ExSize: parent / 2, RootEm: rootEm}
	return dec.Dimension(v.Dimension, parent)
}
