package document

import (
	"bytes"
	"strings"
	"testing"

	bo "github.com/benoitkugler/cssflow/html/boxes"
	"github.com/benoitkugler/cssflow/logger"
	"github.com/benoitkugler/cssflow/text"
	tu "github.com/benoitkugler/cssflow/utils/testutils"
	"github.com/benoitkugler/cssflow/utils/testutils/tracer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const smallText = `<style>body { margin: 0; font-size: 10px; line-height: 1 }</style>`

func render(t *testing.T, content string) (*Document, *logger.Collector) {
	t.Helper()

	sink := new(logger.Collector)
	doc, err := RenderHTML(strings.NewReader(content), Options{
		Width: 400, Height: 300,
		Fonts:       text.DefaultFixedFonts,
		Diagnostics: sink,
	})
	require.NoError(t, err)
	return doc, sink
}

func draw(t *testing.T, content string) *tracer.Drawer {
	t.Helper()

	doc, _ := render(t, content)
	w, h := doc.Size()
	dr := tracer.NewDrawerNoOp(w, h)
	doc.Draw(dr)
	return dr
}

func index(ops []string, op string) int {
	for i, o := range ops {
		if o == op {
			return i
		}
	}
	return -1
}

func TestRender(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	doc, sink := render(t, `<p>Hello</p><div style="width: 600px; height: 10px"></div>`)
	assert.Empty(t, sink.Events)
	w, h := doc.Size()
	assert.Equal(t, Fl(608), w)
	assert.Equal(t, Fl(300), h)

	var buf bytes.Buffer
	doc.Dump(&buf)
	assert.Contains(t, buf.String(), "Hello")

	// without the default style sheet, every element is inline
	doc, err := RenderHTML(strings.NewReader(`<p>Hello</p>`), Options{Width: 100, Height: 100, NoDefaultStyle: true, Diagnostics: sink})
	require.NoError(t, err)
	p := doc.Tree.ElementBoxByName("p", true)
	require.NotNil(t, p)
	assert.Equal(t, bo.InlineKind, p.Kind)
}

func TestDrawStages(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	dr := draw(t, smallText+`
		<div style="background-color: red; height: 20px">ab</div>
		<div style="float: left; background-color: blue; width: 10px; height: 10px">c</div>`)

	red := index(dr.Ops, "Rectangle : 0.00 0.00 400.00 20.00")
	blue := index(dr.Ops, "Rectangle : 0.00 20.00 10.00 10.00")
	floatText := index(dr.Ops, `DrawText : "c" 0.00 27.50`)
	flowText := index(dr.Ops, `DrawText : "ab" 0.00 7.50`)
	require.True(t, red >= 0 && blue >= 0 && floatText >= 0 && flowText >= 0, "%v", dr.Ops)

	// backgrounds of the flow, floats, then the foreground of the flow
	assert.Less(t, red, blue)
	assert.Less(t, blue, floatText)
	assert.Less(t, floatText, flowText)

	// each text is drawn once
	assert.Len(t, dr.Filter("DrawText"), 2)
	assert.Equal(t, "SetColorRgba : fill 0.00 0.00 0.00 1.00", dr.Ops[flowText-1])
}

func TestDrawViewportBackground(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	dr := draw(t, `<body style="background-color: lime">`)
	require.NotEmpty(t, dr.Ops)
	tu.AssertEqual(t, dr.Ops[:3], []string{
		"SetColorRgba : fill 0.00 1.00 0.00 1.00",
		"Rectangle : 0.00 0.00 400.00 300.00",
		"Paint : Fill",
	})
	// the body background is drawn once, by the viewport
	assert.Len(t, dr.Filter("Rectangle"), 1)
}

func TestDrawBorders(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	dr := draw(t, smallText+`<div style="border: 2px solid red; border-left-style: none; width: 10px; height: 10px"></div>`)
	tu.AssertEqual(t, dr.Filter("Rectangle"), []string{
		"Rectangle : 0.00 0.00 12.00 2.00",
		"Rectangle : 10.00 0.00 2.00 14.00",
		"Rectangle : 0.00 12.00 12.00 2.00",
	})
}

func TestDrawClip(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	dr := draw(t, smallText+`
		<div style="overflow: hidden; width: 50px; height: 50px">
			<p style="margin: 0">abcdefgh</p>
			<div style="position: relative; top: 100px; height: 10px; background-color: green"></div>
		</div>`)

	text := index(dr.Ops, `DrawText : "abcdefgh" 0.00 7.50`)
	require.True(t, text > 0, "%v", dr.Ops)
	// the clip of the text is the overflow box
	var clip string
	for _, op := range dr.Ops[:text] {
		if strings.HasPrefix(op, "SetClip") {
			clip = op
		}
	}
	assert.Equal(t, "SetClip : 0.00 0.00 50.00 50.00", clip)
	// and is restored afterwards
	assert.Equal(t, "SetClip : 0.00 0.00 400.00 300.00", dr.Ops[len(dr.Ops)-1])

	// the clipped out box is not drawn
	assert.Empty(t, dr.Filter("Rectangle"))
}

func TestDrawVisibility(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	dr := draw(t, smallText+`<div style="visibility: hidden; background-color: red">
		a <span style="visibility: visible">b</span></div>`)
	assert.Empty(t, dr.Filter("Rectangle"))
	tu.AssertEqual(t, dr.Filter("DrawText"), []string{`DrawText : "b" 20.00 7.50`})
}

func TestDrawReplaced(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	dr := draw(t, smallText+`<p style="margin: 0; color: blue"><img width=20 height=10 style="padding: 1px"></p>`)
	i := index(dr.Ops, "Rectangle : 1.00 1.00 20.00 10.00")
	require.True(t, i > 1, "%v", dr.Ops)
	assert.Equal(t, "SetColorRgba : stroke 0.00 0.00 1.00 1.00", dr.Ops[i-2])
	assert.Equal(t, "Paint : Stroke", dr.Ops[i+1])
}
