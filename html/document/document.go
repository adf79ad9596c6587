// Package document is the high level entry point of the engine :
// it lays out an HTML document and paints the resulting box tree
// on a [backend.Canvas].
package document

import (
	"fmt"
	"io"

	bo "github.com/benoitkugler/cssflow/html/boxes"
	"github.com/benoitkugler/cssflow/html/layout"
	"github.com/benoitkugler/cssflow/html/tree"
	"github.com/benoitkugler/cssflow/logger"
	"github.com/benoitkugler/cssflow/text"
	"github.com/benoitkugler/cssflow/utils"
)

type Fl = utils.Fl

// Options configures the rendering of a document.
type Options struct {
	// Width and Height are the initial size of the viewport,
	// which grows to enclose its content.
	Width, Height Fl

	// Fonts defaults to [text.BasicFonts].
	Fonts text.FontConfiguration

	// Stylesheets are applied after the default HTML style sheet.
	Stylesheets []tree.CSS

	// NoDefaultStyle disables the default HTML style sheet.
	NoDefaultStyle bool

	// Diagnostics receives the non fatal layout issues.
	// It defaults to [logger.Default].
	Diagnostics logger.Sink
}

// Document is a laid out document, ready to be painted.
type Document struct {
	Tree *bo.Tree
}

// Render styles [doc], builds its box tree and lays it out.
func Render(doc *tree.HTML, opts Options) *Document {
	if opts.Fonts == nil {
		opts.Fonts = text.BasicFonts{}
	}
	if opts.NoDefaultStyle {
		doc.UAStyleSheet = tree.CSS{}
	}
	root := doc.Style(opts.Stylesheets...)
	boxes := bo.Build(root, opts.Fonts, opts.Width, opts.Height, opts.Diagnostics)
	layout.Layout(boxes)
	return &Document{Tree: boxes}
}

// RenderHTML parses the HTML content read from [r] and renders it.
func RenderHTML(r io.Reader, opts Options) (*Document, error) {
	doc, err := tree.NewHTML(r)
	if err != nil {
		return nil, fmt.Errorf("rendering document: %w", err)
	}
	return Render(doc, opts), nil
}

// Size returns the final size of the viewport.
func (d *Document) Size() (width, height Fl) {
	vp := d.Tree.Box(d.Tree.Viewport)
	return vp.View.Width, vp.View.Height
}

// Dump writes the positioned box tree, one box per line.
func (d *Document) Dump(w io.Writer) { d.Tree.Dump(w) }
