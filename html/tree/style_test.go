package tree

import (
	"testing"

	pr "github.com/benoitkugler/cssflow/css/properties"
	tu "github.com/benoitkugler/cssflow/utils/testutils"
	"github.com/stretchr/testify/require"
)

func styled(t *testing.T, content string) *Element {
	t.Helper()
	doc, err := NewHTMLString(content)
	require.NoError(t, err)
	return doc.Style()
}

// find returns the first element with the given tag, in document order
func find(root *Element, tag string) *Element {
	if root.Tag() == tag {
		return root
	}
	for _, c := range root.Children {
		if out := find(c, tag); out != nil {
			return out
		}
	}
	return nil
}

func TestDefaultStyleSheet(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	root := styled(t, `<p>Hello <span>world</span></p><h1>Title</h1>`)
	tu.AssertEqual(t, root.Tag(), "html")
	tu.AssertEqual(t, root.Style.GetDisplay(), pr.String("block"))

	head := find(root, "head")
	tu.AssertEqual(t, head.Style.GetDisplay(), pr.String("none"))

	body := find(root, "body")
	tu.AssertEqual(t, body.Style.GetMargin(pr.SLeft), pr.NewDim(8, pr.Px).ToValue())

	h1 := find(root, "h1")
	tu.AssertEqual(t, h1.Style.GetFontSize(), pr.NewDim(32, pr.Px).ToValue())
	// em lengths are resolved at layout time
	tu.AssertEqual(t, h1.Style.GetMargin(pr.STop), pr.NewDim(0.67, pr.Em).ToValue())

	span := find(root, "span")
	tu.AssertEqual(t, span.Style.GetDisplay(), pr.String("inline"))
	tu.AssertEqual(t, span.Children[0].IsText(), true)
	tu.AssertEqual(t, span.Children[0].Text(), "world")
}

func TestCascade(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	root := styled(t, `
	<style>
		div p { color: red }
		p { color: blue; font-size: 10px }
		.big { font-size: 2em }
		#main { color: green !important }
	</style>
	<div><p class="big" id="main" style="color: black">A</p><p>B</p></div>
	<p style="float: left; display: inline">C</p>`)

	body := find(root, "body")
	div := find(root, "div")
	p1, p2 := div.Children[0], div.Children[1]

	tu.AssertEqual(t, p1.Style.GetColor(), pr.Color{G: 128. / 255, A: 1})
	tu.AssertEqual(t, p1.Style.GetFontSize(), pr.NewDim(32, pr.Px).ToValue())
	// more specific selector wins
	tu.AssertEqual(t, p2.Style.GetColor(), pr.Color{R: 1, A: 1})
	tu.AssertEqual(t, p2.Style.GetFontSize(), pr.NewDim(10, pr.Px).ToValue())

	var floated *Element
	for _, c := range body.Children {
		if c.Tag() == "p" {
			floated = c
		}
	}
	// floats are blockified
	tu.AssertEqual(t, floated.Style.GetDisplay(), pr.String("block"))
}

func TestInheritance(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	root := styled(t, `<div style="font-size: 20px; line-height: 2em; white-space: pre; width: 10px">
		<span style="width: inherit">a</span></div>`)
	span := find(root, "span")
	tu.AssertEqual(t, span.Style.GetFontSize(), pr.NewDim(20, pr.Px).ToValue())
	tu.AssertEqual(t, span.Style.GetLineHeight(), pr.NewDim(40, pr.Px).ToValue())
	tu.AssertEqual(t, span.Style.GetWhiteSpace(), pr.String("pre"))
	tu.AssertEqual(t, span.Style.GetWidth(), pr.NewDim(10, pr.Px).ToValue())
	// border colors default to the color
	tu.AssertEqual(t, span.Style.GetBorderColor(pr.SLeft), span.Style.GetColor())
}

func TestPresentationalHints(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	root := styled(t, `<img width=30 height="20px"><img width=30 style="width: 10px">`)
	body := find(root, "body")
	tu.AssertEqual(t, body.Children[0].Style.GetWidth(), pr.NewDim(30, pr.Px).ToValue())
	tu.AssertEqual(t, body.Children[0].Style.GetHeight(), pr.NewDim(20, pr.Px).ToValue())
	tu.AssertEqual(t, body.Children[1].Style.GetWidth(), pr.NewDim(10, pr.Px).ToValue())
}

func TestNewCSS(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	tu.AssertEqual(t, NewCSS(nil).IsNone(), true)

	sheet := NewCSS([]byte(`p { margin: 4px 2px } .x, #y { padding-left: 3px }`))
	tu.AssertEqual(t, sheet.IsNone(), false)

	doc, err := NewHTMLString(`<p class="x">A</p>`)
	require.NoError(t, err)
	p := find(doc.Style(sheet), "p")
	// shorthands are expanded when the sheet is parsed
	tu.AssertEqual(t, p.Style.GetMargin(pr.STop), pr.NewDim(4, pr.Px).ToValue())
	tu.AssertEqual(t, p.Style.GetMargin(pr.SLeft), pr.NewDim(2, pr.Px).ToValue())
	tu.AssertEqual(t, p.Style.GetPadding(pr.SLeft), pr.NewDim(3, pr.Px).ToValue())
}
