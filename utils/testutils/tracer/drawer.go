package tracer

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/benoitkugler/cssflow/backend"
	"github.com/benoitkugler/cssflow/css/parser"
	"github.com/benoitkugler/cssflow/text"
	"github.com/benoitkugler/cssflow/utils"
)

// implements a logging backend, used for debugging and tests

var _ backend.Canvas = &Drawer{}

// Drawer prints the graphic operations it receives, and
// records them in [Drawer.Ops].
type Drawer struct {
	out io.Writer

	width, height fl
	clip          utils.Rect
	color         parser.RGBA

	// Ops stores one line per operation, without indentation.
	Ops []string
}

// NewDrawerNoOp only records the operations, on a surface of the given size.
func NewDrawerNoOp(width, height fl) *Drawer {
	return &Drawer{out: io.Discard, width: width, height: height, clip: utils.Rect{Width: width, Height: height}}
}

// NewDrawerFile panics if an error occurs.
func NewDrawerFile(outFile string, width, height fl) *Drawer {
	f, err := os.Create(outFile)
	if err != nil {
		panic(err)
	}
	dr := NewDrawerNoOp(width, height)
	dr.out = f
	return dr
}

type fl = backend.Fl

func (dr *Drawer) printf(f string, args ...interface{}) {
	line := fmt.Sprintf(f, args...)
	dr.Ops = append(dr.Ops, line)
	fmt.Fprintln(dr.out, line)
}

// Filter returns the recorded operations starting with [prefix].
func (dr *Drawer) Filter(prefix string) []string {
	var out []string
	for _, op := range dr.Ops {
		if strings.HasPrefix(op, prefix) {
			out = append(out, op)
		}
	}
	return out
}

func (dr *Drawer) GetRectangle() (left, top, right, bottom fl) {
	return 0, 0, dr.width, dr.height
}

func (dr *Drawer) GetClip() utils.Rect { return dr.clip }

func (dr *Drawer) SetClip(r utils.Rect) {
	dr.clip = r
	dr.printf("SetClip : %.2f %.2f %.2f %.2f", r.X, r.Y, r.Width, r.Height)
}

func (dr *Drawer) SetFont(face text.Face) {
	dr.printf("SetFont : %.2f %.2f", face.Ascent(), face.Descent())
}

func (dr *Drawer) SetColorRgba(color parser.RGBA, stroke bool) {
	dr.color = color
	if stroke {
		dr.printf("SetColorRgba : stroke %.2f %.2f %.2f %.2f", color.R, color.G, color.B, color.A)
	} else {
		dr.printf("SetColorRgba : fill %.2f %.2f %.2f %.2f", color.R, color.G, color.B, color.A)
	}
}

func (dr *Drawer) SetLineWidth(width fl) {
	dr.printf("SetLineWidth : %.2f", width)
}

func (dr *Drawer) Rectangle(x, y, width, height fl) {
	dr.printf("Rectangle : %.2f %.2f %.2f %.2f", x, y, width, height)
}

func (dr *Drawer) Paint(op backend.PaintOp) {
	dr.printf("Paint : %s", op)
}

func (dr *Drawer) DrawText(s string, x, y fl) {
	dr.printf("DrawText : %q %.2f %.2f", s, x, y)
}
