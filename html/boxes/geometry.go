package boxes

import "github.com/benoitkugler/cssflow/utils"

// The mutators below are reserved to the layout passes.

func (b *Box) SetPosition(x, y Fl) {
	b.Bounds.X = x
	b.Bounds.Y = y
}

func (b *Box) SetSize(w, h Fl) {
	b.Bounds.Width = w
	b.Bounds.Height = h
}

func (b *Box) MoveRight(dx Fl) { b.Bounds.X += dx }

func (b *Box) MoveDown(dy Fl) { b.Bounds.Y += dy }

// verticalMargins returns the margins included in the bounds :
// none for inline boxes, the collapsed ones for blocks.
func (b *Box) verticalMargins() (top, bottom Fl) {
	switch b.Kind {
	case InlineKind, TextKind, ViewportKind:
		return 0, 0
	case BlockKind:
		return b.EMargin.Top, b.EMargin.Bottom
	case ReplacedKind:
		if b.IsBlock {
			return b.EMargin.Top, b.EMargin.Bottom
		}
		return b.Margin.Top, b.Margin.Bottom
	default:
		return b.Margin.Top, b.Margin.Bottom
	}
}

// TotalWidth returns the width of the margin box.
func (b *Box) TotalWidth() Fl {
	return b.Margin.Horizontal() + b.Border.Horizontal() + b.Padding.Horizontal() + b.Content.Width
}

// TotalHeight returns the height of the margin box, without
// the vertical margins for inline boxes (they have no effect),
// and with the collapsed margins for blocks.
func (b *Box) TotalHeight() Fl {
	top, bottom := b.verticalMargins()
	return top + b.Border.Vertical() + b.Padding.Vertical() + b.Content.Height + bottom
}

// BorderHeight returns the height of the border box.
func (b *Box) BorderHeight() Fl {
	return b.Border.Vertical() + b.Padding.Vertical() + b.Content.Height
}

// ContentX returns the offset of the content box in the bounds.
func (b *Box) ContentX() Fl { return b.Margin.Left + b.Border.Left + b.Padding.Left }

// ContentY returns the offset of the content box in the bounds.
func (b *Box) ContentY() Fl {
	top, _ := b.verticalMargins()
	return top + b.Border.Top + b.Padding.Top
}

// ContentBounds returns the content box, in the coordinates of [Box.Bounds].
func (b *Box) ContentBounds() utils.Rect {
	return utils.Rect{
		X: b.Bounds.X + b.ContentX(), Y: b.Bounds.Y + b.ContentY(),
		Width: b.Content.Width, Height: b.Content.Height,
	}
}

// paddingOffset returns the offset of the padding box in the bounds.
func (b *Box) paddingOffset() (x, y Fl) {
	top, _ := b.verticalMargins()
	return b.Margin.Left + b.Border.Left, top + b.Border.Top
}

// PaddingSize returns the size of the padding box.
func (b *Box) PaddingSize() Size {
	return Size{b.Content.Width + b.Padding.Horizontal(), b.Content.Height + b.Padding.Vertical()}
}

// SetAbsBounds is called by the absolute positioning pass.
func (b *Box) SetAbsBounds(r utils.Rect) {
	b.absBounds = r
	b.clipped = r
	b.positioned = true
}

// Positioned returns true once the absolute positioning pass has visited the box.
func (b *Box) Positioned() bool { return b.positioned }

// AbsBounds returns the absolute margin box.
// It panics if the absolute positioning pass has not run.
func (b *Box) AbsBounds() utils.Rect {
	if !b.positioned {
		panic("boxes: absolute bounds of " + b.String() + " used before the absolute positioning pass")
	}
	return b.absBounds
}

// ClippedBounds returns the absolute bounds, restricted to the clip region
// set by [Box.ClipAbsoluteBounds].
func (b *Box) ClippedBounds() utils.Rect {
	_ = b.AbsBounds()
	return b.clipped
}

// ClipAbsoluteBounds restricts the absolute bounds to [clip].
// If they do not intersect, the box is not displayed anymore, until the next layout.
// It returns false in this case.
func (b *Box) ClipAbsoluteBounds(clip utils.Rect) bool {
	abs := b.AbsBounds()
	if !abs.Intersects(clip) {
		b.Displayed = false
		return false
	}
	b.clipped = abs.Intersect(clip)
	return true
}

func (b *Box) AbsContentX() Fl { return b.AbsBounds().X + b.ContentX() }

func (b *Box) AbsContentY() Fl { return b.AbsBounds().Y + b.ContentY() }

// AbsoluteContentBounds returns the absolute content box.
func (b *Box) AbsoluteContentBounds() utils.Rect {
	return utils.Rect{X: b.AbsContentX(), Y: b.AbsContentY(), Width: b.Content.Width, Height: b.Content.Height}
}

// AbsolutePaddingBounds returns the absolute padding box.
func (b *Box) AbsolutePaddingBounds() utils.Rect {
	x, y := b.paddingOffset()
	abs, size := b.AbsBounds(), b.PaddingSize()
	return utils.Rect{X: abs.X + x, Y: abs.Y + y, Width: size.Width, Height: size.Height}
}

// AbsoluteBorderBounds returns the absolute border box.
func (b *Box) AbsoluteBorderBounds() utils.Rect {
	r := b.AbsolutePaddingBounds()
	r.X -= b.Border.Left
	r.Y -= b.Border.Top
	r.Width += b.Border.Horizontal()
	r.Height += b.Border.Vertical()
	return r
}

// ClipRegion returns the region the descendants clipped by [b] are
// restricted to : its padding box, itself restricted by the clip of [b].
func (b *Box) ClipRegion() utils.Rect {
	return b.AbsolutePaddingBounds().Intersect(b.ClippedBounds())
}
