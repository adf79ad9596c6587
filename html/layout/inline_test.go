package layout

import (
	"strings"
	"testing"

	bo "github.com/benoitkugler/cssflow/html/boxes"
	tu "github.com/benoitkugler/cssflow/utils/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Tests for inline layout and line breaking.

const smallText = `<style>body { margin: 0; font-size: 10px; line-height: 1 } p { margin: 0 }</style>`

func TestInlineSplitAtomic(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	tr, _ := build(t, `<span><img width=30 height=10><img width=30 height=10><img width=30 height=10></span>`, 400, 300)
	lc := prepare(tr)
	span := byTag(t, tr, "span")

	res := lc.doLayout(span.ID, 70, true, true)
	require.Equal(t, PlacedWithContinuation, res.Kind)
	assert.Len(t, span.ActiveChildren(), 2)
	assert.Equal(t, Fl(60), span.Content.Width)

	rest := tr.Box(res.Rest)
	assert.True(t, rest.Splitted)
	assert.Len(t, rest.ActiveChildren(), 1)
	assert.Equal(t, rest.ID, tr.Box(rest.ActiveChildren()[0]).Parent)

	res = lc.doLayout(rest.ID, 100, true, true)
	assert.Equal(t, Placed, res.Kind)

	// the continuation is laid out as a lone image would be
	trSingle, _ := build(t, `<span><img width=30 height=10></span>`, 400, 300)
	lcSingle := prepare(trSingle)
	single := byTag(t, trSingle, "span")
	assert.Equal(t, Placed, lcSingle.doLayout(single.ID, 100, true, true).Kind)

	tu.AssertEqual(t, rest.Content, single.Content)
	tu.AssertEqual(t, rest.Bounds, single.Bounds)
	tu.AssertEqual(t, rest.Inline.Line, single.Inline.Line)
	img, singleImg := tr.Box(rest.ActiveChildren()[0]), trSingle.Box(single.ActiveChildren()[0])
	tu.AssertEqual(t, img.Bounds, singleImg.Bounds)
}

func TestInlineDidNotFit(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	tr, _ := build(t, `<span><img width=30 height=10></span>`, 400, 300)
	lc := prepare(tr)
	span := byTag(t, tr, "span")
	before := append([]bo.ID(nil), span.Children...)

	assert.Equal(t, DidNotFit, lc.doLayout(span.ID, 20, false, false).Kind)
	// the box is unchanged
	assert.Equal(t, before, span.ActiveChildren())
	// unless it is forced
	assert.Equal(t, Placed, lc.doLayout(span.ID, 20, true, false).Kind)
	assert.Equal(t, Fl(30), span.Content.Width)
}

func TestSplitRoundTrip(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	const content = smallText + `<p><span>aaa <b>bbb ccc</b> ddd</span></p>`
	tr, _ := build(t, content, 400, 300)
	lc := prepare(tr)
	span := byTag(t, tr, "span")
	whole := tr.Text(span.ID)
	require.Equal(t, "aaa bbb ccc ddd", whole)

	var pieces []string
	id := span.ID
	for i := 0; i < 10; i++ {
		res := lc.doLayout(id, 50, true, true)
		pieces = append(pieces, tr.Text(id))
		if res.Kind == Placed {
			break
		}
		require.Equal(t, PlacedWithContinuation, res.Kind)
		id = res.Rest
	}
	assert.Greater(t, len(pieces), 2)
	assert.Equal(t, whole, strings.Join(pieces, ""))
	for _, p := range pieces {
		assert.NotEmpty(t, p)
	}

	// a wide enough line places everything at once
	tr, _ = build(t, content, 400, 300)
	lc = prepare(tr)
	span = byTag(t, tr, "span")
	assert.Equal(t, Placed, lc.doLayout(span.ID, 1000, true, true).Kind)
	assert.Equal(t, whole, tr.Text(span.ID))
	assert.Equal(t, Fl(150), span.Content.Width)
}

// shown returns the text drawn by the text boxes of [b]
func shown(tr *bo.Tree, b *Box) []string {
	var out []string
	tr.Walk(b.ID, func(c *Box) bool {
		if c.Text != nil {
			out = append(out, c.Text.Shown())
		}
		return true
	})
	return out
}

func TestLineBreaking(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	tr, _ := render(t, smallText+`<p style="width: 50px">aaa bbb ccc</p>`)
	p := byTag(t, tr, "p")
	lines := children(tr, p)
	require.Len(t, lines, 3)
	tu.AssertEqual(t, shown(tr, p), []string{"aaa", "bbb", "ccc"})
	for i, line := range lines {
		assert.Equal(t, Fl(0), line.Bounds.X)
		assert.Equal(t, Fl(10*i), line.Bounds.Y)
		assert.Equal(t, Fl(30), line.Bounds.Width)
	}
	assert.Equal(t, Fl(30), p.Content.Height)
}

func TestLongWordOverflows(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	tr, _ := render(t, smallText+`<p style="width: 20px">abcdef gh</p>`)
	p := byTag(t, tr, "p")
	tu.AssertEqual(t, shown(tr, p), []string{"abcdef", "gh"})
	assert.Equal(t, Fl(60), children(tr, p)[0].Bounds.Width)
	assert.Equal(t, Fl(20), p.Content.Height)
}

func TestPreformatted(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	tr, _ := render(t, smallText+`<pre>ab  c
d</pre><div style="white-space: nowrap; width: 20px">aa bb</div>`)
	pre := byTag(t, tr, "pre")
	tu.AssertEqual(t, shown(tr, pre), []string{"ab  c", "d"})
	assert.Equal(t, Fl(20), pre.Content.Height)

	div := byTag(t, tr, "div")
	tu.AssertEqual(t, shown(tr, div), []string{"aa bb"})
	assert.Equal(t, Fl(10), div.Content.Height)
}

func TestWhitespaceCollapsingAcrossBoxes(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	tr, _ := render(t, smallText+`<p>a <span> b</span></p>`)
	span := byTag(t, tr, "span")
	tu.AssertEqual(t, shown(tr, span), []string{"b"})
	assert.Equal(t, Fl(20), span.Bounds.X)
	assert.Equal(t, Fl(10), span.Content.Width)
}

func TestLineAvoidsFloats(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	tr, _ := render(t, smallText+`<div style="float: left; width: 50px; height: 15px"></div><p style="width: 100px">aaa bbb ccc ddd eee</p>`)
	p := byTag(t, tr, "p")
	lines := children(tr, p)
	require.Len(t, lines, 4)
	// the first lines are shortened by the float
	assert.Equal(t, Fl(50), lines[0].Bounds.X)
	assert.Equal(t, Fl(50), lines[1].Bounds.X)
	assert.Equal(t, Fl(10), lines[1].Bounds.Y)
	for _, line := range lines[2:] {
		assert.Equal(t, Fl(0), line.Bounds.X)
	}
}

func TestVerticalAlign(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	tr, _ := render(t, smallText+`<p>a<img width=10 height=20>b</p>`)
	p := byTag(t, tr, "p")
	items := children(tr, p)
	require.Len(t, items, 3)
	// the image sits on the baseline
	assert.Equal(t, Fl(0), items[1].Bounds.Y)
	assert.Equal(t, Fl(12.5), items[0].Bounds.Y)
	assert.Equal(t, Fl(12.5), items[2].Bounds.Y)
	assert.Equal(t, Fl(22.5), p.Content.Height)

	tr, _ = render(t, smallText+`<p>a<img width=10 height=10 style="vertical-align: sub"></p>`)
	p = byTag(t, tr, "p")
	items = children(tr, p)
	require.Len(t, items, 2)
	assert.Equal(t, Fl(0), items[0].Bounds.Y)
	assert.InDelta(t, 0.5, items[1].Bounds.Y, 1e-4)
	assert.InDelta(t, 10.5, p.Content.Height, 1e-4)

	tr, _ = render(t, smallText+`<p>a<img width=10 height=30 style="vertical-align: top"></p>`)
	p = byTag(t, tr, "p")
	items = children(tr, p)
	require.Len(t, items, 2)
	assert.Equal(t, Fl(0), items[0].Bounds.Y)
	assert.Equal(t, Fl(0), items[1].Bounds.Y)
	assert.Equal(t, Fl(30), p.Content.Height)
}

func TestInlineBlockShrinkToFit(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	tr, _ := render(t, smallText+`<p>x<span style="display: inline-block; padding: 2px">ab cd</span></p>`)
	span := byTag(t, tr, "span")
	assert.Equal(t, bo.BlockKind, span.Kind)
	assert.Equal(t, Fl(50), span.Content.Width)
	assert.Equal(t, Fl(10), span.Bounds.X)
	assert.Equal(t, Fl(54), span.Bounds.Width)

	// narrower than the content : the words are wrapped
	tr, _ = render(t, smallText+`<div style="width: 30px"><span style="display: inline-block">ab cd</span></div>`)
	span = byTag(t, tr, "span")
	assert.Equal(t, Fl(30), span.Content.Width)
	assert.Equal(t, Fl(20), span.Content.Height)
}

func TestInlineContentHeight(t *testing.T) {
	defer tu.CaptureLogs().AssertNoLogs(t)

	for _, test := range []struct {
		lineHeight          string
		halfLead, offset    Fl
		spanY, textY, lineH Fl
	}{
		// the line is as tall as the content box
		{"normal", 0, 1, 1, 0, 12},
		// the content box overflows the line, centered on it
		{"1", 1, -1, -1, 1, 10},
	} {
		tr, _ := render(t, `<style>body { margin: 0; font-size: 10px; line-height: `+test.lineHeight+` } p { margin: 0 }</style>
			<p><span>aaa</span></p>`)
		p := byTag(t, tr, "p")
		span := byTag(t, tr, "span")
		items := children(tr, span)
		require.Len(t, items, 1)
		text := items[0]

		assert.InDelta(t, 12, span.Content.Height, 1e-4, test.lineHeight)
		assert.InDelta(t, test.halfLead, span.Inline.HalfLead, 1e-4, test.lineHeight)
		assert.InDelta(t, test.offset, span.Inline.LineboxOffset, 1e-4, test.lineHeight)
		assert.InDelta(t, test.spanY, span.Bounds.Y, 1e-4, test.lineHeight)
		assert.InDelta(t, test.textY, text.Bounds.Y, 1e-4, test.lineHeight)
		assert.InDelta(t, test.lineH, p.Content.Height, 1e-4, test.lineHeight)
		// the glyphs are centered in the line
		assert.InDelta(t, (test.lineH-10)/2, text.AbsBounds().Y, 1e-4, test.lineHeight)
	}
}
