// Package tracer provides a function to dump the current layout tree,
// which may be used in debug mode.
package tracer

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/benoitkugler/cssflow/css/properties"
	"github.com/benoitkugler/cssflow/html/boxes"
	"github.com/benoitkugler/cssflow/utils"
)

type Tracer struct {
	out io.Writer
}

// NewTracer panics if an error occurs.
func NewTracer(outFile string) Tracer {
	f, err := os.Create(outFile)
	if err != nil {
		panic(err)
	}

	return Tracer{out: f}
}

// NewTracerWriter returns a tracer writing to [w].
func NewTracerWriter(w io.Writer) Tracer { return Tracer{out: w} }

func FormatMaybeFloat(v properties.MaybeFloat) string {
	if v, ok := v.(properties.Float); ok {
		return FormatFloat(utils.Fl(v))
	}
	return fmt.Sprintf("%v", v)
}

func FormatFloat(v utils.Fl) string {
	return strconv.FormatFloat(float64(utils.RoundPrec(v, 1)), 'g', -1, 32)
}

func (t Tracer) Dump(format string, args ...interface{}) {
	fmt.Fprintf(t.out, format+"\n", args...)
}

// DumpTree writes the bounds of [id] and its active descendants,
// the text boxes being followed by their content.
func (t Tracer) DumpTree(tree *boxes.Tree, id boxes.ID, context string) {
	fmt.Fprintln(t.out, context)

	var printer func(b *boxes.Box, indent int)
	printer = func(b *boxes.Box, indent int) {
		fmt.Fprint(t.out, strings.Repeat(" ", indent))
		fmt.Fprintf(t.out, "%s: %s %s %s %s\n", b,
			FormatFloat(b.Bounds.X),
			FormatFloat(b.Bounds.Y),
			FormatFloat(b.Bounds.Width),
			FormatFloat(b.Bounds.Height),
		)
		if b.Text != nil {
			fmt.Fprintln(t.out, strings.Repeat(" ", indent), strconv.Quote(b.Text.Fragment()))
		}

		for _, child := range b.ActiveChildren() {
			printer(tree.Box(child), indent+1)
		}
	}

	printer(tree.Box(id), 0)

	fmt.Fprintln(t.out)
}
