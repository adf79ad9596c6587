package text

import (
	"testing"

	pa "github.com/benoitkugler/cssflow/css/parser"
	pr "github.com/benoitkugler/cssflow/css/properties"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicFont(t *testing.T) {
	face := BasicFonts{}.Face(20)
	assert.Equal(t, Fl(11), face.Ascent())
	assert.Equal(t, Fl(2), face.Descent())
	assert.Equal(t, Fl(7*5), face.StringWidth("hello"))
}

func TestGoRegular(t *testing.T) {
	fc, err := NewGoRegular()
	require.NoError(t, err)

	small, big := fc.Face(10), fc.Face(20)
	assert.Greater(t, small.Ascent(), Fl(0))
	assert.Greater(t, big.StringWidth("abc"), small.StringWidth("abc"))
	assert.InDelta(t, 2*small.StringWidth("abc"), big.StringWidth("abc"), 1)
	// cached
	assert.Equal(t, small, fc.Face(10))

	// glyf outlines
	assert.False(t, fc.Info.CFF)
}

func TestInvalidFont(t *testing.T) {
	_, err := NewOpenTypeFonts([]byte("not a font"))
	assert.Error(t, err)

	_, err = inspectFont([]byte("OTTO"))
	assert.Error(t, err)
}

func TestFixedFonts(t *testing.T) {
	face := DefaultFixedFonts.Face(10)
	assert.Equal(t, Fl(30), face.StringWidth("abc"))
	assert.Equal(t, Fl(30), face.StringWidth("été"))
	assert.Equal(t, Fl(7.5), face.Ascent())
}

type recorder struct {
	face  Face
	color pa.RGBA
}

func (r *recorder) SetFont(face Face)                       { r.face = face }
func (r *recorder) SetColorRgba(color pa.RGBA, stroke bool) { r.color = color }

func TestContext(t *testing.T) {
	style := pr.Properties{
		pr.PFontSize:   pr.NewDim(20, pr.Px).ToValue(),
		pr.PLineHeight: pr.NewDim(1.5, pr.Scalar).ToValue(),
		pr.PColor:      pr.Color{R: 1, A: 1},
	}
	ctx := NewContext(DefaultFixedFonts, style)
	assert.Equal(t, Fl(20), ctx.EmSize())
	assert.Equal(t, Fl(30), ctx.LineHeight)
	assert.Equal(t, Fl(20), ctx.FontHeight())
	assert.Equal(t, Fl(15), ctx.BaselineOffset())

	style[pr.PLineHeight] = pr.DimOrS{S: "normal"}
	ctx = NewContext(DefaultFixedFonts, style)
	assert.InDelta(t, 24, ctx.LineHeight, 1e-4)

	var rec recorder
	ctx.UpdateGraphics(&rec)
	assert.Equal(t, ctx.Face, rec.face)
	assert.Equal(t, pa.RGBA{R: 1, A: 1}, rec.color)
}
