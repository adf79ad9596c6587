package validation

import (
	"testing"

	pa "github.com/benoitkugler/cssflow/css/parser"
	pr "github.com/benoitkugler/cssflow/css/properties"
	tu "github.com/benoitkugler/cssflow/utils/testutils"
)

func expand(t *testing.T, css string) (normal, important pr.Properties) {
	t.Helper()
	return Validate(pa.ParseDeclarationListString(css))
}

func TestExpandFourSides(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	normal, _ := expand(t, "margin: 1px 2em; padding: 1px 2px 3px")
	tu.AssertEqual(t, normal[pr.PMarginTop], pr.CssProperty(pr.NewDim(1, pr.Px).ToValue()))
	tu.AssertEqual(t, normal[pr.PMarginRight], pr.CssProperty(pr.NewDim(2, pr.Em).ToValue()))
	tu.AssertEqual(t, normal[pr.PMarginBottom], pr.CssProperty(pr.NewDim(1, pr.Px).ToValue()))
	tu.AssertEqual(t, normal[pr.PMarginLeft], pr.CssProperty(pr.NewDim(2, pr.Em).ToValue()))
	tu.AssertEqual(t, normal[pr.PPaddingLeft], pr.CssProperty(pr.NewDim(2, pr.Px).ToValue()))
	tu.AssertEqual(t, normal[pr.PPaddingBottom], pr.CssProperty(pr.NewDim(3, pr.Px).ToValue()))
}

func TestExpandBorder(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	normal, important := expand(t, "border: 2px solid red; border-left: none !important")
	tu.AssertEqual(t, normal[pr.PBorderTopWidth], pr.CssProperty(pr.NewDim(2, pr.Px).ToValue()))
	tu.AssertEqual(t, normal[pr.PBorderBottomStyle], pr.CssProperty(pr.String("solid")))
	tu.AssertEqual(t, normal[pr.PBorderRightColor], pr.CssProperty(pr.Color{R: 1, A: 1}))
	tu.AssertEqual(t, important[pr.PBorderLeftStyle], pr.CssProperty(pr.String("none")))
}

func TestInvalid(t *testing.T) {
	logs := tu.CaptureLogs()
	normal, _ := expand(t, "width: -2px; display: grid; foo: bar; padding: 1px 2px 3px 4px 5px; height: 12px")
	if len(logs.Logs()) != 4 {
		t.Fatal("expected 4 warnings")
	}
	tu.AssertEqual(t, len(normal), 1)
	tu.AssertEqual(t, normal[pr.PHeight], pr.CssProperty(pr.NewDim(12, pr.Px).ToValue()))
}

func TestKeywords(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	normal, _ := expand(t, "vertical-align: super; line-height: 1.5; font-size: larger; max-width: none; color: inherit")
	tu.AssertEqual(t, normal[pr.PVerticalAlign], pr.CssProperty(pr.DimOrS{S: "super"}))
	tu.AssertEqual(t, normal[pr.PLineHeight], pr.CssProperty(pr.NewDim(1.5, pr.Scalar).ToValue()))
	tu.AssertEqual(t, normal[pr.PFontSize], pr.CssProperty(pr.DimOrS{S: "larger"}))
	tu.AssertEqual(t, normal[pr.PMaxWidth], pr.CssProperty(pr.DimOrS{S: "none"}))
}
