package layout

import (
	pa "github.com/benoitkugler/cssflow/css/parser"
	pr "github.com/benoitkugler/cssflow/css/properties"
	bo "github.com/benoitkugler/cssflow/html/boxes"
	"github.com/benoitkugler/cssflow/utils"
)

// The viewport is the root of the box tree : a block
// sized to the output surface, growing to fit its content.

type viewportFlow struct{ blockFlow }

func (viewportFlow) loadSizes(_ *layoutContext, b *Box, _ bool) {
	view := b.View
	b.Margin, b.EMargin, b.Border, b.Padding = bo.Sides{}, bo.Sides{}, bo.Sides{}, bo.Sides{}
	b.Content = bo.Size{Width: view.Width, Height: view.Height}
	b.Block.Width, b.Block.Height = pr.Float(view.Width), pr.Float(view.Height)
	b.Block.MarginLeft, b.Block.MarginRight = pr.Float(0), pr.Float(0)
	b.SetPosition(0, 0)
}

func (viewportFlow) computeEfficientMargins(_ *layoutContext, b *Box) { b.EMargin = bo.Sides{} }

func (viewportFlow) marginsAdjoin(*layoutContext, *Box) bool { return false }

// updateBounds computes the absolute positions of the whole tree,
// then enlarges the viewport so that it contains every box
// it clips.
func (lc *layoutContext) updateBounds(vp *Box) {
	vp.View.MaxX, vp.View.MaxY = 0, 0
	lc.absolutePositions(vp.ID)

	view := vp.View
	if view.MaxX > view.Width || view.MaxY > view.Height {
		view.Width = utils.MaxF(view.Width, view.MaxX)
		view.Height = utils.MaxF(view.Height, view.MaxY)
		lc.loadSizes(vp.ID, true)
		vp.SetSize(vp.TotalWidth(), vp.TotalHeight())
		vp.SetAbsBounds(vp.Bounds)
	}
}

// loadBackgroundFromContents makes the viewport adopt the background
// of the root box or, if it is transparent, of the body box.
// The background is removed from its source, so that it is drawn once.
func (lc *layoutContext) loadBackgroundFromContents(vp *Box) {
	root := lc.tree.Get(vp.View.RootBox)
	if root == nil {
		return
	}
	src := root
	if src.Background.IsTransparent() {
		src = nil
		for _, id := range root.ActiveChildren() {
			if c := lc.tree.Box(id); c.Element != nil && !c.Anonymous && c.Element.Tag() == "body" {
				src = c
				break
			}
		}
	}
	if src == nil || src.Background.IsTransparent() {
		return
	}
	vp.Background = src.Background
	src.Background = pa.RGBA{}
}
