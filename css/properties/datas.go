package properties

const ( // zero field corresponds to null content
	Scalar Unit = iota + 1 // means no unit, but a valid value
	Perc                   // percentage (%)
	Ex
	Em
	Rem
	Px
	Pt
	Pc
	In
	Cm
	Mm
	Q
)

var unitNames = [...]string{
	Scalar: "", Perc: "%", Ex: "ex", Em: "em", Rem: "rem", Px: "px",
	Pt: "pt", Pc: "pc", In: "in", Cm: "cm", Mm: "mm", Q: "q",
}

func (u Unit) String() string {
	if int(u) < len(unitNames) {
		return unitNames[u]
	}
	return "<invalid unit>"
}

// UnitFromString returns 0 for unknown units.
func UnitFromString(s string) Unit {
	for u, name := range unitNames {
		if u > int(Perc) && name == s {
			return Unit(u)
		}
	}
	return 0
}

var (
	ZeroPixels = Dimension{Unit: Px}

	// How many CSS pixels is one <unit>?
	// http://www.w3.org/TR/CSS21/syndata.html#length-units
	LengthsToPixels = map[Unit]Float{
		Px: 1,
		Pt: 1. / 0.75,
		Pc: 16.,             // LengthsToPixels["pt"] * 12
		In: 96.,             // LengthsToPixels["pt"] * 72
		Cm: 96. / 2.54,      // LengthsToPixels["in"] / 2.54
		Mm: 96. / 25.4,      // LengthsToPixels["in"] / 25.4
		Q:  96. / 25.4 / 4., // LengthsToPixels[Mm] / 4
	}

	// Value in pixels of font-size for <absolute-size> keywords: 12pt (16px) for
	// medium, and scaling factors given in CSS3 for others:
	// http://www.w3.org/TR/css3-fonts/#font-size-prop
	FontSizeKeywords = map[string]Float{
		"xx-small": 3. / 5. * 16,
		"x-small":  3. / 4. * 16,
		"small":    8. / 9. * 16,
		"medium":   16,
		"large":    6. / 5. * 16,
		"x-large":  3. / 2. * 16,
		"xx-large": 2. * 16,
	}

	// http://www.w3.org/TR/CSS21/propidx.html
	InitialValues = Properties{
		PDisplay:       String("inline"),
		PPosition:      String("static"),
		PFloat:         String("none"),
		PClear:         String("none"),
		POverflow:      String("visible"),
		PVisibility:    String("visible"),
		PWhiteSpace:    String("normal"),
		PVerticalAlign: DimOrS{S: "baseline"},

		PWidth:     DimOrS{S: "auto"},
		PHeight:    DimOrS{S: "auto"},
		PMinWidth:  ZeroPixels.ToValue(),
		PMinHeight: ZeroPixels.ToValue(),
		PMaxWidth:  DimOrS{S: "none"},
		PMaxHeight: DimOrS{S: "none"},

		PTop:    DimOrS{S: "auto"},
		PRight:  DimOrS{S: "auto"},
		PBottom: DimOrS{S: "auto"},
		PLeft:   DimOrS{S: "auto"},

		PMarginTop:    ZeroPixels.ToValue(),
		PMarginRight:  ZeroPixels.ToValue(),
		PMarginBottom: ZeroPixels.ToValue(),
		PMarginLeft:   ZeroPixels.ToValue(),

		PPaddingTop:    ZeroPixels.ToValue(),
		PPaddingRight:  ZeroPixels.ToValue(),
		PPaddingBottom: ZeroPixels.ToValue(),
		PPaddingLeft:   ZeroPixels.ToValue(),

		PBorderTopWidth:    DimOrS{S: "medium"},
		PBorderRightWidth:  DimOrS{S: "medium"},
		PBorderBottomWidth: DimOrS{S: "medium"},
		PBorderLeftWidth:   DimOrS{S: "medium"},

		PBorderTopStyle:    String("none"),
		PBorderRightStyle:  String("none"),
		PBorderBottomStyle: String("none"),
		PBorderLeftStyle:   String("none"),

		// a transparent border color means currentColor
		PBorderTopColor:    Color{},
		PBorderRightColor:  Color{},
		PBorderBottomColor: Color{},
		PBorderLeftColor:   Color{},

		PBackgroundColor: Color{},
		PColor:           Color{A: 1},
		PFontSize:        DimOrS{Dimension: Dimension{Value: 16, Unit: Px}},
		PLineHeight:      DimOrS{S: "normal"},
	}

	// Inherited are the properties whose computed value is inherited
	// by default.
	// http://www.w3.org/TR/CSS21/propidx.html
	Inherited = map[KnownProp]bool{
		PColor:      true,
		PFontSize:   true,
		PLineHeight: true,
		PVisibility: true,
		PWhiteSpace: true,
	}

	// BorderWidthKeywords maps the border-width keywords to pixels.
	BorderWidthKeywords = map[string]Float{
		"thin":   1,
		"medium": 3,
		"thick":  5,
	}
)
