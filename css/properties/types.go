package properties

import (
	"fmt"

	pa "github.com/benoitkugler/cssflow/css/parser"
)

type Float Fl

// MaybeFloat is either a Float or [AutoF]
type MaybeFloat interface {
	V() Float
}

func (f Float) V() Float { return f }

type auto struct{}

func (auto) V() Float { return 0 }

func (auto) String() string { return "auto" }

// AutoF is the AUTO sentinel of used lengths : a value
// to be derived from the context, distinct from any pixel value.
var AutoF MaybeFloat = auto{}

// IsAuto returns true for the [AutoF] sentinel.
func IsAuto(v MaybeFloat) bool { return v == AutoF }

// Unit is the unit of a [Dimension].
type Unit uint8

// Dimension without unit is interpreted as float
type Dimension struct {
	Value Float
	Unit  Unit
}

func NewDim(v Float, u Unit) Dimension { return Dimension{v, u} }

func (d Dimension) String() string {
	return fmt.Sprintf("<%g %s>", d.Value, d.Unit)
}

func (d Dimension) ToValue() DimOrS { return DimOrS{Dimension: d} }

// DimOrS is either a keyword, like "auto" or "normal", or a dimension.
type DimOrS struct {
	S string
	Dimension
}

func (ds DimOrS) String() string {
	if ds.S != "" {
		return ds.S
	}
	return ds.Dimension.String()
}

func (v DimOrS) IsNone() bool {
	return v == DimOrS{}
}

// IsAuto is true for the "auto" keyword.
func (v DimOrS) IsAuto() bool { return v.S == "auto" }

// String is a keyword value.
type String string

// Color is a computed color.
type Color pa.RGBA

func (c Color) IsTransparent() bool { return c.A == 0 }
