package layout

import (
	pr "github.com/benoitkugler/cssflow/css/properties"
	bo "github.com/benoitkugler/cssflow/html/boxes"
	"github.com/benoitkugler/cssflow/logger"
	"github.com/benoitkugler/cssflow/utils"
)

// ---------------------- Absolutely positioned boxes management. ----------------

// layoutAbsolutes lays out the absolutely positioned boxes
// whose containing block is [cb], once its size is known.
// Their bounds are relative to the padding box of [cb].
func (lc *layoutContext) layoutAbsolutes(cb *Box) {
	ids := lc.absolutes[cb.ID]
	delete(lc.absolutes, cb.ID)

	padding := cb.PaddingSize()
	for _, id := range ids {
		c := lc.tree.Box(id)
		lc.loadSizes(id, false)
		lc.computeEfficientMargins(id)
		lc.doLayout(id, padding.Width, true, true)

		bf := c.Block
		var x, y Fl
		bf.StaticX, bf.StaticY = false, false
		switch {
		case !pr.IsAuto(bf.Left):
			x = fl(bf.Left)
		case !pr.IsAuto(bf.Right):
			x = padding.Width - fl(bf.Right) - c.TotalWidth()
		default:
			bf.StaticX = true
		}
		switch {
		case !pr.IsAuto(bf.Top):
			y = fl(bf.Top)
		case !pr.IsAuto(bf.Bottom):
			y = padding.Height - fl(bf.Bottom) - c.TotalHeight()
		default:
			bf.StaticY = true
		}
		c.SetPosition(x, y)
	}
}

// absolutePositions computes the absolute bounds of [id] and its descendants,
// from the relative bounds set by the layout, restricting them to
// their clip block. Running it twice gives the same result.
// The maximum extents of the boxes clipped by the viewport are recorded.
func (lc *layoutContext) absolutePositions(id bo.ID) {
	t := lc.tree
	b := t.Box(id)
	if !b.Displayed {
		return
	}

	if b.Kind == bo.ViewportKind {
		b.SetAbsBounds(b.Bounds)
	} else {
		b.SetAbsBounds(lc.absoluteBounds(b))

		clip := t.Box(b.ClipBlock)
		if clip.Kind != bo.ViewportKind {
			if !b.ClipAbsoluteBounds(clip.ClipRegion()) {
				lc.warn(logger.ClippedOut, id, "%s is entirely clipped by %s", b, clip)
				return
			}
		} else if vp := t.Box(b.Viewport); vp.View != nil {
			border := b.AbsoluteBorderBounds()
			vp.View.MaxX = utils.MaxF(vp.View.MaxX, border.MaxX())
			vp.View.MaxY = utils.MaxF(vp.View.MaxY, border.MaxY())
		}
	}

	for _, c := range b.ActiveChildren() {
		lc.absolutePositions(c)
	}
}

// absoluteBounds returns the absolute margin box of [b], whose
// parent and containing block are already positioned.
func (lc *layoutContext) absoluteBounds(b *Box) utils.Rect {
	t := lc.tree
	r := b.Bounds
	parent := t.Box(b.Parent)
	bf := b.Block
	if bf != nil && bf.Position.IsPositioned() {
		origin := t.Box(b.ContainingBlock).AbsolutePaddingBounds()
		r.X += origin.X
		r.Y += origin.Y
		if bf.StaticX {
			r.X = parent.AbsContentX() + bf.StaticPosition.X
		}
		if bf.StaticY {
			r.Y = parent.AbsContentY() + bf.StaticPosition.Y
		}
		return r
	}

	r.X += parent.AbsContentX()
	r.Y += parent.AbsContentY()
	if bf != nil && bf.Position == bo.Relative {
		if !pr.IsAuto(bf.Left) {
			r.X += fl(bf.Left)
		} else if !pr.IsAuto(bf.Right) {
			r.X -= fl(bf.Right)
		}
		if !pr.IsAuto(bf.Top) {
			r.Y += fl(bf.Top)
		} else if !pr.IsAuto(bf.Bottom) {
			r.Y -= fl(bf.Bottom)
		}
	}
	return r
}

// isVisible is true if [id] is visible and not entirely clipped
// by one of its clip blocks. The viewport is always visible.
func (lc *layoutContext) isVisible(id bo.ID) bool {
	b := lc.tree.Box(id)
	if b.Kind == bo.ViewportKind {
		return true
	}
	if !b.Visible || !b.Displayed {
		return false
	}
	clip := lc.tree.Box(b.ClipBlock)
	return b.AbsBounds().Intersects(clip.AbsBounds()) && lc.isVisible(clip.ID)
}

// IsVisible reports whether the box [id] of the laid out [tree] should be drawn.
func IsVisible(tree *bo.Tree, id bo.ID) bool {
	lc := layoutContext{tree: tree}
	return lc.isVisible(id)
}
