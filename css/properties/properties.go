package properties

const (
	_ KnownProp = iota
	PDisplay
	PPosition
	PFloat
	PClear
	POverflow
	PVisibility
	PWhiteSpace
	PVerticalAlign

	PWidth
	PHeight
	PMinWidth
	PMinHeight
	PMaxWidth
	PMaxHeight

	PTop
	PRight
	PBottom
	PLeft

	// the following properties are grouped by side,
	// in the [top, right, bottom, left] order,
	// so that, if side in an index (0, 1, 2 or 3),
	// the property is a PMarginTop + side * 5
	// DO NOT CHANGE the order
	PMarginTop
	PPaddingTop
	PBorderTopWidth
	PBorderTopStyle
	PBorderTopColor

	PMarginRight
	PPaddingRight
	PBorderRightWidth
	PBorderRightStyle
	PBorderRightColor

	PMarginBottom
	PPaddingBottom
	PBorderBottomWidth
	PBorderBottomStyle
	PBorderBottomColor

	PMarginLeft
	PPaddingLeft
	PBorderLeftWidth
	PBorderLeftStyle
	PBorderLeftColor

	PBackgroundColor
	PColor
	PFontSize
	PLineHeight

	NbProperties
)

// Side is an index in [top, right, bottom, left]
type Side uint8

const (
	STop Side = iota
	SRight
	SBottom
	SLeft
)

// Margin returns the margin property for this side.
func (s Side) Margin() KnownProp { return PMarginTop + KnownProp(s)*5 }

// Padding returns the padding property for this side.
func (s Side) Padding() KnownProp { return PPaddingTop + KnownProp(s)*5 }

// BorderWidth returns the border-width property for this side.
func (s Side) BorderWidth() KnownProp { return PBorderTopWidth + KnownProp(s)*5 }

// BorderStyle returns the border-style property for this side.
func (s Side) BorderStyle() KnownProp { return PBorderTopStyle + KnownProp(s)*5 }

// BorderColor returns the border-color property for this side.
func (s Side) BorderColor() KnownProp { return PBorderTopColor + KnownProp(s)*5 }

var propsNames = [...]string{
	PDisplay:       "display",
	PPosition:      "position",
	PFloat:         "float",
	PClear:         "clear",
	POverflow:      "overflow",
	PVisibility:    "visibility",
	PWhiteSpace:    "white-space",
	PVerticalAlign: "vertical-align",

	PWidth:     "width",
	PHeight:    "height",
	PMinWidth:  "min-width",
	PMinHeight: "min-height",
	PMaxWidth:  "max-width",
	PMaxHeight: "max-height",

	PTop:    "top",
	PRight:  "right",
	PBottom: "bottom",
	PLeft:   "left",

	PMarginTop:      "margin-top",
	PPaddingTop:     "padding-top",
	PBorderTopWidth: "border-top-width",
	PBorderTopStyle: "border-top-style",
	PBorderTopColor: "border-top-color",

	PMarginRight:      "margin-right",
	PPaddingRight:     "padding-right",
	PBorderRightWidth: "border-right-width",
	PBorderRightStyle: "border-right-style",
	PBorderRightColor: "border-right-color",

	PMarginBottom:      "margin-bottom",
	PPaddingBottom:     "padding-bottom",
	PBorderBottomWidth: "border-bottom-width",
	PBorderBottomStyle: "border-bottom-style",
	PBorderBottomColor: "border-bottom-color",

	PMarginLeft:      "margin-left",
	PPaddingLeft:     "padding-left",
	PBorderLeftWidth: "border-left-width",
	PBorderLeftStyle: "border-left-style",
	PBorderLeftColor: "border-left-color",

	PBackgroundColor: "background-color",
	PColor:           "color",
	PFontSize:        "font-size",
	PLineHeight:      "line-height",
}

// PropsFromNames maps property names to their [KnownProp] value.
var PropsFromNames = map[string]KnownProp{}

func init() {
	for i, v := range propsNames {
		if v != "" {
			PropsFromNames[v] = KnownProp(i)
		}
	}
}
