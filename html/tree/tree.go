// Package tree builds the styled element tree consumed by the layout :
// the HTML document parsed by x/net/html, where each element carries its
// computed style.
package tree

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"strings"

	pr "github.com/benoitkugler/cssflow/css/properties"
	"github.com/benoitkugler/cssflow/logger"
	"golang.org/x/net/html"
)

//go:embed default.css
var defaultCSS []byte

// UAStyleSheet is the default style sheet for HTML documents.
var UAStyleSheet = NewCSS(defaultCSS)

// HTML represents an HTML document parsed by net/html.
type HTML struct {
	Root *html.Node // the <html> element

	// UAStyleSheet is applied before the document style sheets.
	// It may be replaced or emptied before calling [HTML.Style].
	UAStyleSheet CSS
}

// NewHTML parses an HTML document.
func NewHTML(r io.Reader) (*HTML, error) {
	logger.ProgressLogger.Info("Step 1 - Parsing HTML")
	root, err := html.ParseWithOptions(r, html.ParseOptionEnableScripting(false))
	if err != nil {
		return nil, fmt.Errorf("invalid html input: %w", err)
	}
	var out HTML
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out.Root = c
			break
		}
	}
	if out.Root == nil {
		return nil, fmt.Errorf("invalid html input: missing root element")
	}
	out.UAStyleSheet = UAStyleSheet
	return &out, nil
}

// NewHTMLString is a convenience wrapper around [NewHTML].
func NewHTMLString(content string) (*HTML, error) {
	return NewHTML(strings.NewReader(content))
}

// Element is a node of the styled tree : an element or a text node.
type Element struct {
	Node     *html.Node
	Style    pr.Properties
	Parent   *Element
	Children []*Element
}

// IsText returns true for text nodes.
func (e *Element) IsText() bool { return e.Node.Type == html.TextNode }

// Text returns the content of a text node, or an empty string.
func (e *Element) Text() string {
	if e.IsText() {
		return e.Node.Data
	}
	return ""
}

// Tag returns the (lower case) tag of an element, or an empty string for text nodes.
func (e *Element) Tag() string {
	if e.Node.Type == html.ElementNode {
		return e.Node.Data
	}
	return ""
}

// Attr returns the value of the attribute [name].
func (e *Element) Attr(name string) (string, bool) {
	for _, attr := range e.Node.Attr {
		if attr.Key == name {
			return attr.Val, true
		}
	}
	return "", false
}

// String returns a short description of the element, for debugging.
func (e *Element) String() string {
	if e.IsText() {
		return fmt.Sprintf("%q", e.Text())
	}
	var b bytes.Buffer
	b.WriteString("<" + e.Tag())
	if id, ok := e.Attr("id"); ok {
		b.WriteString(" id=" + id)
	}
	b.WriteString(">")
	return b.String()
}
