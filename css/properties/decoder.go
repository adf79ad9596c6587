package properties

// Decoder turns computed lengths into pixels, given the font
// metrics of the element they apply to.
type Decoder struct {
	EmSize Float // font size of the element
	ExSize Float // x-height of the element font
	RootEm Float // font size of the root element
}

// Length resolves [term] against [base] (used for percentages).
// An empty term resolves to [def]; an "auto" term, or [isAuto] set,
// resolves to [autoVal], which is often [AutoF].
func (d Decoder) Length(term DimOrS, isAuto bool, def, autoVal MaybeFloat, base Float) MaybeFloat {
	if isAuto || term.IsAuto() {
		return autoVal
	}
	if term.IsNone() || term.S != "" {
		return def
	}
	return d.Dimension(term.Dimension, base)
}

// Dimension converts [dim] to pixels, resolving percentages against [base].
func (d Decoder) Dimension(dim Dimension, base Float) Float {
	switch dim.Unit {
	case Perc:
		return dim.Value * base / 100
	case Em:
		return dim.Value * d.EmSize
	case Ex:
		return dim.Value * d.ExSize
	case Rem:
		return dim.Value * d.RootEm
	case Scalar, 0:
		return dim.Value
	default:
		return dim.Value * LengthsToPixels[dim.Unit]
	}
}

// BorderWidth resolves a border-width, which is zero when
// the corresponding [style] is none or hidden.
func (d Decoder) BorderWidth(term DimOrS, style String) Float {
	if style == "none" || style == "hidden" || style == "" {
		return 0
	}
	if w, ok := BorderWidthKeywords[term.S]; ok {
		return w
	}
	return d.Length(term, false, Float(0), Float(0), 0).V()
}

// MaxLength resolves a max-width or max-height, "none" being
// returned as [AutoF].
func (d Decoder) MaxLength(term DimOrS, base MaybeFloat) MaybeFloat {
	if term.S == "none" || term.IsNone() {
		return AutoF
	}
	if term.Unit == Perc && IsAuto(base) {
		return AutoF
	}
	return d.Dimension(term.Dimension, base.V())
}
