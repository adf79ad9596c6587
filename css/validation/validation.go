// Package validation converts parsed declarations into typed properties,
// expanding the shorthands and dropping invalid values.
package validation

import (
	pa "github.com/benoitkugler/cssflow/css/parser"
	pr "github.com/benoitkugler/cssflow/css/properties"
	"github.com/benoitkugler/cssflow/logger"
	"github.com/benoitkugler/cssflow/utils"
)

// Inherit is stored for the "inherit" keyword; it is resolved
// when computing the style.
const Inherit = "inherit"

var keywords = map[pr.KnownProp]utils.Set{
	pr.PDisplay:    utils.NewSet("inline", "block", "inline-block", "list-item", "none", "table", "table-row", "table-cell", "table-row-group", "table-header-group", "table-footer-group", "table-caption", "table-column", "table-column-group", "flow-root"),
	pr.PPosition:   utils.NewSet("static", "relative", "absolute", "fixed"),
	pr.PFloat:      utils.NewSet("none", "left", "right"),
	pr.PClear:      utils.NewSet("none", "left", "right", "both"),
	pr.POverflow:   utils.NewSet("visible", "hidden", "scroll", "auto"),
	pr.PVisibility: utils.NewSet("visible", "hidden", "collapse"),
	pr.PWhiteSpace: utils.NewSet("normal", "pre", "nowrap", "pre-wrap", "pre-line"),
}

var borderStyles = utils.NewSet("none", "hidden", "dotted", "dashed", "solid", "double", "groove", "ridge", "inset", "outset")

var verticalAligns = utils.NewSet("baseline", "sub", "super", "top", "text-top", "middle", "bottom", "text-bottom")

// Validate converts declarations, returning separately the normal
// and the !important ones. Invalid declarations are logged and skipped.
func Validate(decls []pa.Declaration) (normal, important pr.Properties) {
	normal, important = pr.Properties{}, pr.Properties{}
	for _, decl := range decls {
		props, ok := validate(decl)
		if !ok {
			logger.WarningLogger.Warnf("Ignored `%s: %v`, invalid or unsupported declaration.", decl.Name, decl.Value)
			continue
		}
		if decl.Important {
			important.UpdateWith(props)
		} else {
			normal.UpdateWith(props)
		}
	}
	return normal, important
}

func isInherit(values []pa.Token) bool {
	return len(values) == 1 && values[0].Kind == pa.Ident && values[0].Value == Inherit
}

func validate(decl pa.Declaration) (pr.Properties, bool) {
	values := decl.Value
	if expander, ok := expanders[decl.Name]; ok {
		if isInherit(values) {
			return nil, false
		}
		return expander(values)
	}
	prop, ok := pr.PropsFromNames[decl.Name]
	if !ok {
		return nil, false
	}
	if isInherit(values) {
		return pr.Properties{prop: pr.DimOrS{S: Inherit}}, true
	}
	v, ok := validateOne(prop, values)
	if !ok {
		return nil, false
	}
	return pr.Properties{prop: v}, true
}

func validateOne(prop pr.KnownProp, values []pa.Token) (pr.CssProperty, bool) {
	if set, ok := keywords[prop]; ok {
		if len(values) == 1 && values[0].Kind == pa.Ident && set.Has(values[0].Value) {
			return pr.String(values[0].Value), true
		}
		return nil, false
	}
	switch prop {
	case pr.PColor, pr.PBackgroundColor,
		pr.PBorderTopColor, pr.PBorderRightColor, pr.PBorderBottomColor, pr.PBorderLeftColor:
		c, n := pa.ParseColor(values)
		if n == 0 || n != len(values) {
			return nil, false
		}
		return pr.Color(c), true
	case pr.PBorderTopStyle, pr.PBorderRightStyle, pr.PBorderBottomStyle, pr.PBorderLeftStyle:
		if len(values) == 1 && values[0].Kind == pa.Ident && borderStyles.Has(values[0].Value) {
			return pr.String(values[0].Value), true
		}
	case pr.PBorderTopWidth, pr.PBorderRightWidth, pr.PBorderBottomWidth, pr.PBorderLeftWidth:
		if len(values) == 1 {
			return borderWidth(values[0])
		}
	case pr.PWidth, pr.PHeight, pr.PTop, pr.PRight, pr.PBottom, pr.PLeft:
		if len(values) == 1 {
			return lengthPercOr(values[0], prop == pr.PTop || prop == pr.PRight || prop == pr.PBottom || prop == pr.PLeft, "auto")
		}
	case pr.PMaxWidth, pr.PMaxHeight:
		if len(values) == 1 {
			return lengthPercOr(values[0], false, "none")
		}
	case pr.PMinWidth, pr.PMinHeight, pr.PPaddingTop, pr.PPaddingRight, pr.PPaddingBottom, pr.PPaddingLeft:
		if len(values) == 1 {
			return lengthPercOr(values[0], false)
		}
	case pr.PMarginTop, pr.PMarginRight, pr.PMarginBottom, pr.PMarginLeft:
		if len(values) == 1 {
			return lengthPercOr(values[0], true, "auto")
		}
	case pr.PVerticalAlign:
		if len(values) == 1 {
			if tk := values[0]; tk.Kind == pa.Ident && verticalAligns.Has(tk.Value) {
				return pr.DimOrS{S: tk.Value}, true
			}
			return lengthPercOr(values[0], true)
		}
	case pr.PLineHeight:
		if len(values) == 1 {
			tk := values[0]
			if tk.Kind == pa.Number && tk.Num >= 0 {
				return pr.NewDim(pr.Float(tk.Num), pr.Scalar).ToValue(), true
			}
			return lengthPercOr(tk, false, "normal")
		}
	case pr.PFontSize:
		if len(values) == 1 {
			tk := values[0]
			if tk.Kind == pa.Ident {
				if _, ok := pr.FontSizeKeywords[tk.Value]; ok || tk.Value == "larger" || tk.Value == "smaller" {
					return pr.DimOrS{S: tk.Value}, true
				}
				return nil, false
			}
			return lengthPercOr(tk, false)
		}
	}
	return nil, false
}

// length returns a length or a percentage
func length(tk pa.Token, negative bool) (pr.Dimension, bool) {
	var out pr.Dimension
	switch tk.Kind {
	case pa.Number:
		if tk.Num != 0 {
			return out, false
		}
		out = pr.ZeroPixels
	case pa.Percentage:
		out = pr.NewDim(pr.Float(tk.Num), pr.Perc)
	case pa.Dimension:
		unit := pr.UnitFromString(tk.Unit)
		if unit == 0 {
			return out, false
		}
		out = pr.NewDim(pr.Float(tk.Num), unit)
	default:
		return out, false
	}
	if !negative && out.Value < 0 {
		return out, false
	}
	return out, true
}

func lengthPercOr(tk pa.Token, negative bool, keywords ...string) (pr.CssProperty, bool) {
	if tk.Kind == pa.Ident && utils.IsIn(keywords, tk.Value) {
		return pr.DimOrS{S: tk.Value}, true
	}
	d, ok := length(tk, negative)
	if !ok {
		return nil, false
	}
	return d.ToValue(), true
}

func borderWidth(tk pa.Token) (pr.CssProperty, bool) {
	if tk.Kind == pa.Ident {
		if _, ok := pr.BorderWidthKeywords[tk.Value]; ok {
			return pr.DimOrS{S: tk.Value}, true
		}
		return nil, false
	}
	d, ok := length(tk, false)
	if !ok || d.Unit == pr.Perc {
		return nil, false
	}
	return d.ToValue(), true
}
