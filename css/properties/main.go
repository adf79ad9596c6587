// This package defines the types needed to handle the CSS properties
// used by the layout engine.
// Properties are stored already computed : inheritance and relative
// font sizes are resolved when building the style of an element, so that
// layout only has to resolve percentages and "auto".
package properties

import (
	"github.com/benoitkugler/cssflow/utils"
)

type Fl = utils.Fl

// CssProperty is the final form of a css input, a.k.a. the computed value.
type CssProperty interface {
	isCssProperty()
}

func (DimOrS) isCssProperty() {}
func (String) isCssProperty() {}
func (Color) isCssProperty()  {}
func (Float) isCssProperty()  {}

// KnownProp efficiently encode a known CSS property
type KnownProp uint8

func (p KnownProp) String() string { return propsNames[p] }

// Properties is a general container for computed properties.
//
// In addition to the generic acces, a "type safe" way is provided through the
// GetXXX methods. Missing keys resolve to the initial value of the property.
type Properties map[KnownProp]CssProperty

// Copy return a shallow copy.
func (p Properties) Copy() Properties {
	out := make(Properties, len(p))
	for name, v := range p {
		out[name] = v
	}
	return out
}

// UpdateWith merge the entries from `other` to `p`.
func (p Properties) UpdateWith(other Properties) {
	for k, v := range other {
		p[k] = v
	}
}

// Get returns the value for [key], defaulting to its initial value.
func (p Properties) Get(key KnownProp) CssProperty {
	if v, ok := p[key]; ok {
		return v
	}
	return InitialValues[key]
}

// ElementStyle is the resolved property lookup of one element.
type ElementStyle interface {
	StyleAccessor

	// Get is the generic method to access an arbitrary property.
	// Type accessors should be used when possible.
	Get(key KnownProp) CssProperty
}

var _ ElementStyle = Properties(nil)
