// Transform a "before layout" box tree into an "after layout" tree,
// by breaking inline boxes across lines, resolving the box model
// and determining the position and dimension of each box.
//
// The layout runs as explicit sequential phases over the whole tree :
// size loading, margin collapsing, flow layout and absolute positioning.
// Box geometry is stored in the boxes themselves (see package boxes),
// ready to be painted by the higher level `document` package.
package layout

import (
	"fmt"
	"os"
	"path/filepath"

	bo "github.com/benoitkugler/cssflow/html/boxes"
	"github.com/benoitkugler/cssflow/logger"
	"github.com/benoitkugler/cssflow/utils"
	"github.com/benoitkugler/cssflow/utils/testutils/tracer"
)

// if true, dump the box tree after each phase
const traceMode = false

var traceLogger tracer.Tracer // used only when traceMode is true

func init() {
	if traceMode {
		traceLogger = tracer.NewTracer(filepath.Join(os.TempDir(), "trace_go.txt"))
	}
}

type (
	Fl  = utils.Fl
	Box = bo.Box
)

// layoutContext stores the state shared by the layout passes.
type layoutContext struct {
	tree   *bo.Tree
	rootEm Fl // font size of the root element

	// the block formatting context of the box being laid out
	state flowState

	// absolutely positioned boxes, waiting for the layout
	// of their containing block
	absolutes map[bo.ID][]bo.ID
}

func newLayoutContext(tree *bo.Tree) *layoutContext {
	lc := &layoutContext{
		tree:      tree,
		rootEm:    16,
		state:     flowState{floats: new(floatContext)},
		absolutes: make(map[bo.ID][]bo.ID),
	}
	vp := tree.Box(tree.Viewport)
	if root := tree.Get(vp.View.RootBox); root != nil && root.Ctx != nil {
		lc.rootEm = root.Ctx.FontSize
	}
	return lc
}

// Layout lays out the whole tree, in place.
//
// The phases are run in order : size loading (top-down), margin collapsing,
// flow layout, then the absolute positioning pass, which also grows the viewport
// so that it encloses its content.
func Layout(tree *bo.Tree) {
	logger.ProgressLogger.Info("Step 4 - Laying out boxes")

	lc := newLayoutContext(tree)
	vp := tree.Box(tree.Viewport)

	lc.loadBackgroundFromContents(vp)
	lc.loadSubtree(vp.ID)
	lc.computeEfficientMargins(vp.ID)
	if traceMode {
		traceLogger.DumpTree(tree, vp.ID, "after size loading")
	}

	lc.doLayout(vp.ID, vp.View.Width, true, true)
	if traceMode {
		traceLogger.DumpTree(tree, vp.ID, "after flow layout")
	}

	logger.ProgressLogger.Info("Step 5 - Computing absolute positions")
	lc.updateBounds(vp)
	if traceMode {
		traceLogger.DumpTree(tree, vp.ID, "after absolute positions")
	}
}

// loadSubtree is the size loading pass : it is top-down
// so that containing blocks are loaded before their content.
func (lc *layoutContext) loadSubtree(id bo.ID) {
	b := lc.tree.Box(id)
	b.Displayed = true
	lc.loadSizes(id, false)
	for _, c := range b.ActiveChildren() {
		lc.loadSubtree(c)
	}
}

func (lc *layoutContext) warn(kind logger.Kind, id bo.ID, format string, args ...interface{}) {
	if traceMode {
		traceLogger.Dump("warning %s: %s", kind, fmt.Sprintf(format, args...))
	}
	lc.tree.Warn(kind, id, format, args...)
}
