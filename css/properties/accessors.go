package properties

// StyleAccessor provides typed access to the properties used
// by the layout.
type StyleAccessor interface {
	GetDisplay() String
	GetPosition() String
	GetFloat() String
	GetClear() String
	GetOverflow() String
	GetVisibility() String
	GetWhiteSpace() String
	GetVerticalAlign() DimOrS

	GetWidth() DimOrS
	GetHeight() DimOrS
	GetMinWidth() DimOrS
	GetMinHeight() DimOrS
	GetMaxWidth() DimOrS
	GetMaxHeight() DimOrS

	GetTop() DimOrS
	GetRight() DimOrS
	GetBottom() DimOrS
	GetLeft() DimOrS

	GetMargin(Side) DimOrS
	GetPadding(Side) DimOrS
	GetBorderWidth(Side) DimOrS
	GetBorderStyle(Side) String
	GetBorderColor(Side) Color

	GetBackgroundColor() Color
	GetColor() Color
	GetFontSize() DimOrS
	GetLineHeight() DimOrS
}

var _ StyleAccessor = Properties(nil)

func (s Properties) str(p KnownProp) String {
	v, _ := s.Get(p).(String)
	return v
}

func (s Properties) dim(p KnownProp) DimOrS {
	v, _ := s.Get(p).(DimOrS)
	return v
}

func (s Properties) color(p KnownProp) Color {
	v, _ := s.Get(p).(Color)
	return v
}

func (s Properties) GetDisplay() String       { return s.str(PDisplay) }
func (s Properties) GetPosition() String      { return s.str(PPosition) }
func (s Properties) GetFloat() String         { return s.str(PFloat) }
func (s Properties) GetClear() String         { return s.str(PClear) }
func (s Properties) GetOverflow() String      { return s.str(POverflow) }
func (s Properties) GetVisibility() String    { return s.str(PVisibility) }
func (s Properties) GetWhiteSpace() String    { return s.str(PWhiteSpace) }
func (s Properties) GetVerticalAlign() DimOrS { return s.dim(PVerticalAlign) }

func (s Properties) GetWidth() DimOrS     { return s.dim(PWidth) }
func (s Properties) GetHeight() DimOrS    { return s.dim(PHeight) }
func (s Properties) GetMinWidth() DimOrS  { return s.dim(PMinWidth) }
func (s Properties) GetMinHeight() DimOrS { return s.dim(PMinHeight) }
func (s Properties) GetMaxWidth() DimOrS  { return s.dim(PMaxWidth) }
func (s Properties) GetMaxHeight() DimOrS { return s.dim(PMaxHeight) }

func (s Properties) GetTop() DimOrS    { return s.dim(PTop) }
func (s Properties) GetRight() DimOrS  { return s.dim(PRight) }
func (s Properties) GetBottom() DimOrS { return s.dim(PBottom) }
func (s Properties) GetLeft() DimOrS   { return s.dim(PLeft) }

func (s Properties) GetMargin(side Side) DimOrS      { return s.dim(side.Margin()) }
func (s Properties) GetPadding(side Side) DimOrS     { return s.dim(side.Padding()) }
func (s Properties) GetBorderWidth(side Side) DimOrS { return s.dim(side.BorderWidth()) }
func (s Properties) GetBorderStyle(side Side) String { return s.str(side.BorderStyle()) }
func (s Properties) GetBorderColor(side Side) Color  { return s.color(side.BorderColor()) }

func (s Properties) GetBackgroundColor() Color { return s.color(PBackgroundColor) }
func (s Properties) GetColor() Color           { return s.color(PColor) }
func (s Properties) GetFontSize() DimOrS       { return s.dim(PFontSize) }
func (s Properties) GetLineHeight() DimOrS     { return s.dim(PLineHeight) }
