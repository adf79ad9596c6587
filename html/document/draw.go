package document

import (
	"github.com/benoitkugler/cssflow/backend"
	pa "github.com/benoitkugler/cssflow/css/parser"
	pr "github.com/benoitkugler/cssflow/css/properties"
	bo "github.com/benoitkugler/cssflow/html/boxes"
	"github.com/benoitkugler/cssflow/html/layout"
	"github.com/benoitkugler/cssflow/logger"
	"github.com/benoitkugler/cssflow/utils"
)

// The boxes are painted in three stages, so that the floats
// are drawn above the backgrounds of the flow, and below its text.

type drawStage uint8

const (
	stageAll      drawStage = iota // the box and its whole content
	stageNonFloat                  // the boxes outside of floats
	stageFloat                     // the floats, with their content
)

type drawMode uint8

const (
	modeBoth drawMode = iota
	modeForeground
	modeBackground
)

type drawContext struct {
	tree   *bo.Tree
	canvas backend.Canvas
}

// Draw paints the document on [canvas], whose origin
// is the top left corner of the viewport.
func (d *Document) Draw(canvas backend.Canvas) {
	logger.ProgressLogger.Info("Step 6 - Drawing")

	vp := d.Tree.Box(d.Tree.Viewport)
	backend.FillRectangle(canvas, vp.AbsBounds(), vp.Background)

	dc := drawContext{tree: d.Tree, canvas: canvas}
	dc.draw(vp.ID, stageNonFloat, modeBackground)
	dc.draw(vp.ID, stageFloat, modeBoth)
	dc.draw(vp.ID, stageNonFloat, modeForeground)
}

func isFloating(b *bo.Box) bool { return b.Block != nil && b.Block.Float != bo.FloatNone }

// draw paints [id] and its descendants, for the given stage.
func (dc drawContext) draw(id bo.ID, stage drawStage, mode drawMode) {
	b := dc.tree.Box(id)
	if !b.Displayed {
		return
	}
	if b.Kind == bo.ViewportKind {
		for _, c := range b.ActiveChildren() {
			dc.draw(c, stage, mode)
		}
		return
	}

	own := true // the box itself is painted in this stage
	if isFloating(b) {
		switch stage {
		case stageNonFloat:
			return
		case stageFloat:
			stage, mode = stageAll, modeBoth
		}
	} else if stage == stageFloat {
		own = false
	}

	old := dc.canvas.GetClip()
	dc.canvas.SetClip(old.Intersect(dc.tree.Box(b.ClipBlock).ClipRegion()))

	if own && layout.IsVisible(dc.tree, id) {
		if mode != modeForeground {
			dc.drawBackground(b)
		}
		if mode != modeBackground {
			dc.drawContent(b)
		}
	}
	for _, c := range b.ActiveChildren() {
		dc.draw(c, stage, mode)
	}

	dc.canvas.SetClip(old)
}

// drawBackground paints the background color below the border box,
// then the borders.
func (dc drawContext) drawBackground(b *bo.Box) {
	if b.Kind == bo.TextKind {
		return
	}
	border := b.AbsoluteBorderBounds()
	backend.FillRectangle(dc.canvas, border, b.Background)

	padding := b.AbsolutePaddingBounds()
	sides := [4]utils.Rect{
		pr.STop:    {X: border.X, Y: border.Y, Width: border.Width, Height: b.Border.Top},
		pr.SRight:  {X: padding.MaxX(), Y: border.Y, Width: b.Border.Right, Height: border.Height},
		pr.SBottom: {X: border.X, Y: padding.MaxY(), Width: border.Width, Height: b.Border.Bottom},
		pr.SLeft:   {X: border.X, Y: border.Y, Width: b.Border.Left, Height: border.Height},
	}
	for side, r := range sides {
		s := pr.Side(side)
		switch b.Style.GetBorderStyle(s) {
		case "none", "hidden":
			continue
		}
		backend.FillRectangle(dc.canvas, r, pa.RGBA(b.Style.GetBorderColor(s)))
	}
}

// drawContent paints the text and the placeholders of replaced boxes.
func (dc drawContext) drawContent(b *bo.Box) {
	switch b.Kind {
	case bo.TextKind:
		s := b.Text.Shown()
		if s == "" {
			return
		}
		abs := b.AbsBounds()
		b.Ctx.UpdateGraphics(dc.canvas)
		dc.canvas.DrawText(s, abs.X, abs.Y+b.Ctx.BaselineOffset())
	case bo.ReplacedKind:
		// the content is never loaded : only its frame is shown
		r := b.AbsoluteContentBounds()
		if r.Empty() {
			return
		}
		dc.canvas.SetColorRgba(b.Ctx.Color, true)
		dc.canvas.SetLineWidth(1)
		dc.canvas.Rectangle(r.X, r.Y, r.Width, r.Height)
		dc.canvas.Paint(backend.Stroke)
	}
}
