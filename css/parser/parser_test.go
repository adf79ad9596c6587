package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeclarationList(t *testing.T) {
	decls := ParseDeclarationListString("margin: 10px auto; width:50%; color: red !important")
	require.Len(t, decls, 3)

	assert.Equal(t, "margin", decls[0].Name)
	require.Len(t, decls[0].Value, 2)
	assert.Equal(t, Token{Kind: Dimension, Num: 10, Unit: "px", Value: "10px"}, decls[0].Value[0])
	assert.Equal(t, Ident, decls[0].Value[1].Kind)
	assert.Equal(t, "auto", decls[0].Value[1].Value)

	assert.Equal(t, Percentage, decls[1].Value[0].Kind)
	assert.Equal(t, Fl(50), decls[1].Value[0].Num)

	assert.True(t, decls[2].Important)
	assert.Len(t, decls[2].Value, 1)
}

func TestStylesheet(t *testing.T) {
	rules := ParseStylesheet([]byte(`
		h1, h2 { margin-top: 1em }
		@media print { p { color: blue } }
		p { display: block; }
	`), nil)
	require.Len(t, rules, 2)
	assert.Equal(t, []string{"h1", "h2"}, rules[0].Selectors)
	assert.Equal(t, "margin-top", rules[0].Declarations[0].Name)
	assert.Equal(t, []string{"p"}, rules[1].Selectors)
}

func TestParseColor(t *testing.T) {
	for _, test := range []struct {
		css      string
		expected RGBA
	}{
		{"red", RGBA{1, 0, 0, 1}},
		{"#00f", RGBA{0, 0, 1, 1}},
		{"#ffffff", RGBA{1, 1, 1, 1}},
		{"rgb(255, 0, 0)", RGBA{1, 0, 0, 1}},
		{"rgba(0, 0, 0, 0.5)", RGBA{0, 0, 0, 0.5}},
		{"transparent", RGBA{}},
	} {
		decls := ParseDeclarationListString("color: " + test.css)
		require.Len(t, decls, 1)
		c, n := ParseColor(decls[0].Value)
		assert.Equal(t, len(decls[0].Value), n, test.css)
		assert.InDelta(t, test.expected.R, c.R, 1e-3, test.css)
		assert.InDelta(t, test.expected.G, c.G, 1e-3, test.css)
		assert.InDelta(t, test.expected.B, c.B, 1e-3, test.css)
		assert.InDelta(t, test.expected.A, c.A, 1e-3, test.css)
	}

	_, n := ParseColor([]Token{{Kind: Ident, Value: "notacolor"}})
	assert.Zero(t, n)
}
