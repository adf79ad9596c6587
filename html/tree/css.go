package tree

import (
	"strings"

	"github.com/benoitkugler/cssflow/css/parser"
	pr "github.com/benoitkugler/cssflow/css/properties"
	"github.com/benoitkugler/cssflow/css/validation"
	"github.com/benoitkugler/cssflow/logger"
	"golang.org/x/net/html"
)

// CSS is a parsed style sheet, restricted to the selectors
// supported by the engine : type, universal, class and id selectors,
// combined with the descendant combinator.
type CSS struct {
	rules []rule
}

type compound struct {
	tag     string // empty for *
	id      string
	classes []string
}

// selector is a chain of compounds separated by descendant combinators,
// the last one being the subject
type selector struct {
	chain       []compound
	specificity [3]uint8
}

type rule struct {
	selector  selector
	normal    pr.Properties
	important pr.Properties
}

// NewCSS parses a style sheet. Unsupported selectors and
// declarations are skipped.
func NewCSS(data []byte) CSS {
	var out CSS
	for _, qr := range parser.ParseStylesheet(data, logger.WarningLogger.Desugar()) {
		normal, important := validation.Validate(qr.Declarations)
		for _, s := range qr.Selectors {
			sel, ok := parseSelector(s)
			if !ok {
				logger.WarningLogger.Debugf("Ignored unsupported selector %q", s)
				continue
			}
			out.rules = append(out.rules, rule{selector: sel, normal: normal, important: important})
		}
	}
	return out
}

// IsNone returns true for an empty style sheet.
func (c CSS) IsNone() bool { return len(c.rules) == 0 }

func parseSelector(s string) (selector, bool) {
	var out selector
	for _, part := range strings.Fields(s) {
		comp, ok := parseCompound(part)
		if !ok {
			return out, false
		}
		if comp.id != "" {
			out.specificity[0]++
		}
		out.specificity[1] += uint8(len(comp.classes))
		if comp.tag != "" {
			out.specificity[2]++
		}
		out.chain = append(out.chain, comp)
	}
	return out, len(out.chain) != 0
}

func parseCompound(s string) (compound, bool) {
	var out compound
	// split on . and #, keeping the delimiter
	start, kind := 0, byte(0)
	flush := func(end int) bool {
		name := strings.ToLower(s[start:end])
		switch kind {
		case 0:
			if name != "*" {
				out.tag = name
			}
		case '.':
			if name == "" {
				return false
			}
			out.classes = append(out.classes, s[start:end])
		case '#':
			if name == "" {
				return false
			}
			out.id = s[start:end]
		}
		return true
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '.' || c == '#':
			if !flush(i) {
				return out, false
			}
			start, kind = i+1, c
		case c == '-' || c == '_' || c == '*' ||
			c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9':
		default: // attributes, pseudo classes, child combinators...
			return out, false
		}
	}
	return out, flush(len(s))
}

func hasClass(node *html.Node, class string) bool {
	for _, attr := range node.Attr {
		if attr.Key == "class" {
			for _, c := range strings.Fields(attr.Val) {
				if c == class {
					return true
				}
			}
		}
	}
	return false
}

func (c compound) match(node *html.Node) bool {
	if node.Type != html.ElementNode {
		return false
	}
	if c.tag != "" && c.tag != node.Data {
		return false
	}
	if c.id != "" {
		found := false
		for _, attr := range node.Attr {
			if attr.Key == "id" && attr.Val == c.id {
				found = true
			}
		}
		if !found {
			return false
		}
	}
	for _, class := range c.classes {
		if !hasClass(node, class) {
			return false
		}
	}
	return true
}

func (s selector) match(node *html.Node) bool {
	last := len(s.chain) - 1
	if !s.chain[last].match(node) {
		return false
	}
	// match the ancestors, greedily
	i := last - 1
	for anc := node.Parent; anc != nil && i >= 0; anc = anc.Parent {
		if s.chain[i].match(anc) {
			i--
		}
	}
	return i < 0
}
