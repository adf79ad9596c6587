package properties

import (
	"testing"

	tu "github.com/benoitkugler/cssflow/utils/testutils"
)

func TestDecoderLength(t *testing.T) {
	dec := Decoder{EmSize: 16, ExSize: 8, RootEm: 10}

	tu.AssertEqual(t, dec.Length(DimOrS{S: "auto"}, false, Float(0), AutoF, 200), AutoF)
	tu.AssertEqual(t, dec.Length(DimOrS{}, false, Float(3), AutoF, 200), MaybeFloat(Float(3)))
	tu.AssertEqual(t, dec.Length(NewDim(50, Perc).ToValue(), false, Float(0), AutoF, 200), MaybeFloat(Float(100)))
	tu.AssertEqual(t, dec.Length(NewDim(2, Em).ToValue(), false, Float(0), AutoF, 200), MaybeFloat(Float(32)))
	tu.AssertEqual(t, dec.Length(NewDim(2, Rem).ToValue(), false, Float(0), AutoF, 200), MaybeFloat(Float(20)))
	tu.AssertEqual(t, dec.Length(NewDim(1, In).ToValue(), false, Float(0), AutoF, 200), MaybeFloat(Float(96)))
	// isAuto wins over the declared value
	tu.AssertEqual(t, dec.Length(NewDim(10, Px).ToValue(), true, Float(0), Float(7), 200), MaybeFloat(Float(7)))
}

func TestDecoderBorderWidth(t *testing.T) {
	var dec Decoder
	tu.AssertEqual(t, dec.BorderWidth(DimOrS{S: "medium"}, "none"), Float(0))
	tu.AssertEqual(t, dec.BorderWidth(DimOrS{S: "thick"}, "solid"), Float(5))
	tu.AssertEqual(t, dec.BorderWidth(NewDim(2, Px).ToValue(), "solid"), Float(2))
}

func TestMaxLength(t *testing.T) {
	var dec Decoder
	tu.AssertEqual(t, dec.MaxLength(DimOrS{S: "none"}, Float(100)), AutoF)
	tu.AssertEqual(t, dec.MaxLength(NewDim(50, Perc).ToValue(), AutoF), AutoF)
	tu.AssertEqual(t, dec.MaxLength(NewDim(50, Perc).ToValue(), Float(100)), MaybeFloat(Float(50)))
}
