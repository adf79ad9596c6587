package parser

import (
	"strconv"
	"strings"
)

// RGBA is a color with components in [0, 1].
type RGBA struct {
	R, G, B, A Fl
}

// IsTransparent returns true for a fully transparent color.
func (c RGBA) IsTransparent() bool { return c.A == 0 }

// RGBA8 returns the components scaled to [0, 255].
func (c RGBA) RGBA8() (r, g, b, a uint8) {
	conv := func(v Fl) uint8 {
		if v <= 0 {
			return 0
		}
		if v >= 1 {
			return 255
		}
		return uint8(v*255 + 0.5)
	}
	return conv(c.R), conv(c.G), conv(c.B), conv(c.A)
}

var colorKeywords = map[string]RGBA{
	"transparent": {},
	"black":       {0, 0, 0, 1},
	"silver":      {192. / 255, 192. / 255, 192. / 255, 1},
	"gray":        {128. / 255, 128. / 255, 128. / 255, 1},
	"grey":        {128. / 255, 128. / 255, 128. / 255, 1},
	"white":       {1, 1, 1, 1},
	"maroon":      {128. / 255, 0, 0, 1},
	"red":         {1, 0, 0, 1},
	"purple":      {128. / 255, 0, 128. / 255, 1},
	"fuchsia":     {1, 0, 1, 1},
	"green":       {0, 128. / 255, 0, 1},
	"lime":        {0, 1, 0, 1},
	"olive":       {128. / 255, 128. / 255, 0, 1},
	"yellow":      {1, 1, 0, 1},
	"navy":        {0, 0, 128. / 255, 1},
	"blue":        {0, 0, 1, 1},
	"teal":        {0, 128. / 255, 128. / 255, 1},
	"aqua":        {0, 1, 1, 1},
	"orange":      {1, 165. / 255, 0, 1},
}

// ParseColor parses a color keyword, a hash or a rgb()/rgba() function.
// [values] are the significant tokens of a declaration value.
// The number of tokens consumed is returned, 0 meaning an invalid color.
func ParseColor(values []Token) (RGBA, int) {
	if len(values) == 0 {
		return RGBA{}, 0
	}
	switch tk := values[0]; tk.Kind {
	case Ident:
		c, ok := colorKeywords[tk.Value]
		if !ok {
			return RGBA{}, 0
		}
		return c, 1
	case Hash:
		c, ok := parseHash(tk.Value)
		if !ok {
			return RGBA{}, 0
		}
		return c, 1
	case Function:
		if tk.Value != "rgb" && tk.Value != "rgba" {
			return RGBA{}, 0
		}
		var (
			comps [4]Fl
			n     int
		)
		comps[3] = 1
		for i, arg := range values[1:] {
			switch arg.Kind {
			case Comma:
			case Number, Percentage:
				if n >= 4 {
					return RGBA{}, 0
				}
				v := arg.Num
				if n < 3 {
					if arg.Kind == Percentage {
						v = v / 100
					} else {
						v = v / 255
					}
				} else if arg.Kind == Percentage {
					v = v / 100
				}
				comps[n] = v
				n++
			case CloseParen:
				if n < 3 {
					return RGBA{}, 0
				}
				return RGBA{comps[0], comps[1], comps[2], comps[3]}, i + 2
			default:
				return RGBA{}, 0
			}
		}
	}
	return RGBA{}, 0
}

func parseHash(s string) (RGBA, bool) {
	s = strings.ToLower(s)
	switch len(s) {
	case 3, 4:
		var expanded strings.Builder
		for _, r := range s {
			expanded.WriteRune(r)
			expanded.WriteRune(r)
		}
		s = expanded.String()
	case 6, 8:
	default:
		return RGBA{}, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGBA{}, false
	}
	if len(s) == 6 {
		v = v<<8 | 0xff
	}
	return RGBA{
		R: Fl(v>>24&0xff) / 255,
		G: Fl(v>>16&0xff) / 255,
		B: Fl(v>>8&0xff) / 255,
		A: Fl(v&0xff) / 255,
	}, true
}
