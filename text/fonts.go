// Package text provides the font metrics used by the layout,
// on top of golang.org/x/image/font.
package text

import (
	"bytes"
	"fmt"
	"sync"
	"unicode/utf8"

	"github.com/benoitkugler/cssflow/utils"
	"github.com/benoitkugler/textlayout/fonts/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

type Fl = utils.Fl

// Face exposes the metrics of a font at a given size, as numeric facts.
type Face interface {
	Ascent() Fl
	Descent() Fl
	XHeight() Fl
	// StringWidth returns the advance of [s], in pixels.
	StringWidth(s string) Fl
}

// FontConfiguration selects a [Face] for a font size (in pixels).
type FontConfiguration interface {
	Face(size Fl) Face
}

// Drawable is implemented by faces backed by a real glyph source,
// which drawing backends may use to render text.
type Drawable interface {
	FontFace() font.Face
}

func fromFixed(v fixed.Int26_6) Fl { return Fl(v) / 64 }

// xFace wraps a font.Face
type xFace struct {
	face    font.Face
	metrics font.Metrics
}

func newXFace(face font.Face) xFace {
	return xFace{face: face, metrics: face.Metrics()}
}

func (f xFace) Ascent() Fl  { return fromFixed(f.metrics.Ascent) }
func (f xFace) Descent() Fl { return fromFixed(f.metrics.Descent) }

func (f xFace) XHeight() Fl {
	if f.metrics.XHeight > 0 {
		return fromFixed(f.metrics.XHeight)
	}
	return f.Ascent() / 2
}

func (f xFace) StringWidth(s string) Fl { return fromFixed(font.MeasureString(f.face, s)) }

func (f xFace) FontFace() font.Face { return f.face }

// FontInfo describes the tables of a font file.
type FontInfo struct {
	// CFF is true for OpenType fonts with PostScript outlines.
	CFF bool
	// Ligatures is true if the font provides standard ligatures.
	Ligatures bool
}

// inspectFont reads the header and layout tables of a font file.
func inspectFont(src []byte) (FontInfo, error) {
	ft, err := truetype.Parse(bytes.NewReader(src))
	if err != nil {
		return FontInfo{}, err
	}
	gsub := ft.LayoutTables().GSUB
	_, liga := gsub.FindFeatureIndex(truetype.MustNewTag("liga"))
	return FontInfo{CFF: ft.Type == truetype.TypeOpenType, Ligatures: liga}, nil
}

// OpenTypeFonts scales an OpenType font, caching one face per size.
type OpenTypeFonts struct {
	Info FontInfo

	font *opentype.Font

	mu    sync.Mutex
	faces map[Fl]xFace
}

// NewOpenTypeFonts parses the given font file content.
func NewOpenTypeFonts(src []byte) (*OpenTypeFonts, error) {
	f, err := opentype.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("parsing font: %w", err)
	}
	info, err := inspectFont(src)
	if err != nil {
		return nil, fmt.Errorf("reading font tables: %w", err)
	}
	return &OpenTypeFonts{Info: info, font: f, faces: make(map[Fl]xFace)}, nil
}

// NewGoRegular uses the Go Regular font, embedded in x/image.
func NewGoRegular() (*OpenTypeFonts, error) { return NewOpenTypeFonts(goregular.TTF) }

func (fc *OpenTypeFonts) Face(size Fl) Face {
	fc.mu.Lock()
	defer fc.mu.Unlock()

	if face, ok := fc.faces[size]; ok {
		return face
	}
	face, err := opentype.NewFace(fc.font, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72, // so that one point is one pixel
		Hinting: font.HintingNone,
	})
	if err != nil { // only happens for invalid sizes
		return BasicFonts{}.Face(size)
	}
	out := newXFace(face)
	fc.faces[size] = out
	return out
}

// BasicFonts always returns the 7x13 bitmap font, whatever the size.
type BasicFonts struct{}

func (BasicFonts) Face(Fl) Face { return newXFace(basicfont.Face7x13) }

// FixedFonts provides synthetic metrics, proportional to the font size,
// where every character has the same advance.
// It is mainly useful to write layout tests.
type FixedFonts struct {
	Advance, Ascent, Descent Fl // ratios of the font size
}

// DefaultFixedFonts gives, for a 16px font, 16px advances, an ascent of 12px and a descent of 4px.
var DefaultFixedFonts = FixedFonts{Advance: 1, Ascent: 0.75, Descent: 0.25}

func (ff FixedFonts) Face(size Fl) Face {
	return FixedFace{Advance: ff.Advance * size, Asc: ff.Ascent * size, Desc: ff.Descent * size}
}

// FixedFace is a synthetic monospace face.
type FixedFace struct {
	Advance, Asc, Desc Fl
}

func (f FixedFace) Ascent() Fl              { return f.Asc }
func (f FixedFace) Descent() Fl             { return f.Desc }
func (f FixedFace) XHeight() Fl             { return f.Asc / 2 }
func (f FixedFace) StringWidth(s string) Fl { return Fl(utf8.RuneCountInString(s)) * f.Advance }
