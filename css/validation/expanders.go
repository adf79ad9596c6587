package validation

import (
	pa "github.com/benoitkugler/cssflow/css/parser"
	pr "github.com/benoitkugler/cssflow/css/properties"
)

type expander func(values []pa.Token) (pr.Properties, bool)

var expanders = map[string]expander{
	"margin":        expandFourSides(pr.Side.Margin),
	"padding":       expandFourSides(pr.Side.Padding),
	"border-width":  expandFourSides(pr.Side.BorderWidth),
	"border-style":  expandFourSides(pr.Side.BorderStyle),
	"border-color":  expandFourSides(pr.Side.BorderColor),
	"border":        expandBorder(pr.STop, pr.SRight, pr.SBottom, pr.SLeft),
	"border-top":    expandBorder(pr.STop),
	"border-right":  expandBorder(pr.SRight),
	"border-bottom": expandBorder(pr.SBottom),
	"border-left":   expandBorder(pr.SLeft),
	"background":    expandBackground,
}

// Expand properties setting a token for the four sides of a box.
func expandFourSides(prop func(pr.Side) pr.KnownProp) expander {
	return func(values []pa.Token) (pr.Properties, bool) {
		// one token per side, colors functions are not supported here
		var sides [4]pa.Token
		switch len(values) {
		case 1:
			sides = [4]pa.Token{values[0], values[0], values[0], values[0]}
		case 2:
			sides = [4]pa.Token{values[0], values[1], values[0], values[1]} // (bottom, left) defaults to (top, right)
		case 3:
			sides = [4]pa.Token{values[0], values[1], values[2], values[1]} // left defaults to right
		case 4:
			sides = [4]pa.Token{values[0], values[1], values[2], values[3]}
		default:
			return nil, false
		}
		out := make(pr.Properties, 4)
		for i, tk := range sides {
			key := prop(pr.Side(i))
			v, ok := validateOne(key, []pa.Token{tk})
			if !ok {
				return nil, false
			}
			out[key] = v
		}
		return out, true
	}
}

// Expand the "border" like shorthands : width, style and color in any order.
func expandBorder(sides ...pr.Side) expander {
	return func(values []pa.Token) (pr.Properties, bool) {
		var (
			width pr.CssProperty = pr.DimOrS{S: "medium"}
			style pr.CssProperty = pr.String("none")
			color pr.CssProperty = pr.Color{}
		)
		for len(values) > 0 {
			if c, n := pa.ParseColor(values); n != 0 {
				color = pr.Color(c)
				values = values[n:]
				continue
			}
			if v, ok := validateOne(pr.PBorderTopStyle, values[:1]); ok {
				style = v
			} else if v, ok := validateOne(pr.PBorderTopWidth, values[:1]); ok {
				width = v
			} else {
				return nil, false
			}
			values = values[1:]
		}
		out := make(pr.Properties, 3*len(sides))
		for _, side := range sides {
			out[side.BorderWidth()] = width
			out[side.BorderStyle()] = style
			out[side.BorderColor()] = color
		}
		return out, true
	}
}

// only the color of the background is supported
func expandBackground(values []pa.Token) (pr.Properties, bool) {
	for i := range values {
		if c, n := pa.ParseColor(values[i:]); n != 0 {
			return pr.Properties{pr.PBackgroundColor: pr.Color(c)}, true
		}
	}
	if len(values) == 1 && values[0].Kind == pa.Ident && values[0].Value == "none" {
		return pr.Properties{pr.PBackgroundColor: pr.Color{}}, true
	}
	return nil, false
}
