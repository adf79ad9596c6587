package layout

import (
	"testing"

	tu "github.com/benoitkugler/cssflow/utils/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Tests for blocks layout.

func TestBlockWidths(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	tr, _ := renderSized(t, `
      <style>
        body { margin: 0 }
        div { margin: 10px }
        p { padding: 2px; border-width: 1px; border-style: solid; margin: 0 }
      </style>
      <div>
        <p></p>
        <p style="width: 50px"></p>
      </div>
      <div>
        <p style="margin: 0 10px 0 20px"></p>
        <p style="width: 50px; margin-left: 20px; margin-right: auto"></p>
        <p style="width: 50px; margin-left: auto; margin-right: 20px"></p>
        <p style="width: 50px; margin: auto"></p>

        <p style="margin-left: 20px; margin-right: auto"></p>
        <p style="margin-left: auto; margin-right: 20px"></p>
        <p style="margin: auto"></p>

        <p style="width: 200px; margin: auto"></p>

        <p style="min-width: 200px; margin: auto"></p>
        <p style="max-width: 50px; margin: auto"></p>
        <p style="min-width: 50px; margin: auto"></p>

        <p style="width: 70%"></p>
      </div>
    `, 120, 300)

	divs := tr.ElementBoxesByName("div", true)
	require.Len(t, divs, 2)
	for _, div := range divs {
		assert.Equal(t, Fl(10), div.Margin.Left)
		assert.Equal(t, Fl(100), div.Content.Width)
	}

	var paragraphs []*Box
	for _, div := range divs {
		paragraphs = append(paragraphs, children(tr, div)...)
	}
	for _, p := range paragraphs {
		assert.Equal(t, "p", p.Element.Tag())
		assert.Equal(t, Fl(2), p.Padding.Left)
		assert.Equal(t, Fl(1), p.Border.Left)
	}

	type widths struct{ Width, MarginLeft Fl }
	var got []widths
	for _, p := range paragraphs {
		got = append(got, widths{p.Content.Width, p.Margin.Left})
	}
	tu.AssertEqual(t, got, []widths{
		{94, 0},
		{50, 0},
		{64, 20},
		{50, 20},
		{50, 24},
		{50, 22},
		{74, 20},
		{74, 0},
		{94, 0},
		{200, 0},
		{200, 0},
		{50, 22},
		{94, 0},
		{70, 0},
	})

	// the width equation holds for every paragraph
	for _, p := range paragraphs {
		assert.InDelta(t, 100, p.TotalWidth(), 1e-4)
	}
}

func TestBlockHeights(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	tr, _ := render(t, `<style>body { margin: 0 } div { margin: 0 }</style>
		<div id="fixed" style="height: 100px">
			<div style="height: 30%"></div>
			<div style="min-height: 25px"></div>
			<div style="height: 50px; max-height: 10px"></div>
		</div>
		<div id="auto"><div style="height: 20%; padding: 4px"></div></div>`)

	divs := tr.ElementBoxesByName("div", true)
	require.Len(t, divs, 6)
	heights := make([]Fl, len(divs))
	for i, d := range divs {
		heights[i] = d.Content.Height
	}
	// a percentage of an auto height is auto
	tu.AssertEqual(t, heights, []Fl{100, 30, 25, 10, 8, 0})
}

func TestMarginCollapsingValues(t *testing.T) {
	for _, test := range []struct {
		margins  []Fl
		expected Fl
	}{
		{[]Fl{10, -4}, 6},
		{[]Fl{-10, -4}, -10},
		{[]Fl{10, 4}, 10},
		{[]Fl{-3, 7, -8, 2}, -1},
		{nil, 0},
	} {
		assert.Equal(t, test.expected, collapseMargin(test.margins), test.margins)
	}
}

// borderTop returns the absolute position of the top of the border box of [b].
func borderTop(b *Box) Fl { return b.AbsoluteBorderBounds().Y }

func TestSiblingMargins(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	for _, test := range []struct {
		bottom, top string
		expected    Fl
	}{
		{"20px", "30px", 40},
		{"10px", "-4px", 16},
		{"-10px", "-4px", 0},
		{"10px", "4px", 20},
	} {
		tr, _ := render(t, `<style>body { margin: 0 } div { height: 10px }</style>
			<div style="margin-bottom: `+test.bottom+`"></div><div style="margin-top: `+test.top+`"></div>`)
		divs := tr.ElementBoxesByName("div", true)
		require.Len(t, divs, 2)
		assert.Equal(t, Fl(0), borderTop(divs[0]))
		assert.Equal(t, test.expected, borderTop(divs[1]), test)
	}
}

func TestParentChildMargins(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	tr, _ := render(t, `<style>body { margin: 0 }</style>
		<div id="outer" style="margin-top: 10px">
			<div style="margin-top: 20px; height: 10px"></div>
		</div>
		<div style="margin-top: 10px; border-top: 1px solid">
			<div style="margin-top: 20px; height: 10px"></div>
		</div>`)
	divs := tr.ElementBoxesByName("div", true)
	require.Len(t, divs, 4)

	// the margins of the first child collapse with the parent ones
	outer, inner := divs[0], divs[1]
	assert.Equal(t, Fl(20), borderTop(outer))
	assert.Equal(t, Fl(20), borderTop(inner))
	assert.Equal(t, Fl(10), outer.Content.Height)

	// a border separates the margins
	outer, inner = divs[2], divs[3]
	assert.Equal(t, Fl(40), borderTop(outer))
	assert.Equal(t, Fl(61), borderTop(inner))
	assert.Equal(t, Fl(30), outer.Content.Height)
}

func TestCollapseThrough(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	tr, _ := render(t, `<style>body { margin: 0 }</style>
		<div style="margin-bottom: 10px; height: 10px"></div>
		<div style="margin-top: 15px; margin-bottom: 5px"></div>
		<div style="margin-top: 20px; height: 10px"></div>`)
	divs := tr.ElementBoxesByName("div", true)
	require.Len(t, divs, 3)

	assert.Equal(t, Fl(30), borderTop(divs[2]))
	assert.Equal(t, Fl(0), divs[1].Bounds.Height)

	body := byTag(t, tr, "body")
	assert.Equal(t, Fl(40), body.Content.Height)
}

func TestBFCMargins(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	// the margins of a block formatting context root
	// do not collapse with its children
	tr, _ := render(t, `<style>body { margin: 0 }</style>
		<div style="overflow: hidden; margin-top: 10px">
			<div style="margin-top: 20px; height: 10px"></div>
		</div>`)
	divs := tr.ElementBoxesByName("div", true)
	require.Len(t, divs, 2)
	assert.Equal(t, Fl(10), borderTop(divs[0]))
	assert.Equal(t, Fl(30), borderTop(divs[1]))
	assert.Equal(t, Fl(30), divs[0].Content.Height)
}

func TestViewportGrowth(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	tr, _ := renderSized(t, `<style>body { margin: 0 }</style>
		<div style="width: 500px; height: 900px"></div>`, 400, 400)
	vp := tr.Box(tr.Viewport)
	assert.Equal(t, Fl(500), vp.View.Width)
	assert.Equal(t, Fl(900), vp.View.Height)
	assert.Equal(t, Fl(500), vp.Bounds.Width)
	assert.Equal(t, Fl(900), vp.Bounds.Height)
	tu.AssertEqual(t, vp.AbsBounds(), vp.Bounds)

	// content smaller than the viewport does not shrink it
	tr, _ = renderSized(t, `<div style="width: 50px; height: 50px"></div>`, 400, 400)
	vp = tr.Box(tr.Viewport)
	assert.Equal(t, Fl(400), vp.Bounds.Width)
	assert.Equal(t, Fl(400), vp.Bounds.Height)
}
