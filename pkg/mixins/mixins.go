// Package mixins defines the reusable attribute bundles shared by drawable
// models: fill, line, and text styling. Groups of styling attributes almost
// always travel together (a model exposing a fill color wants a fill alpha
// too), so models compose these bundles via property.Include instead of
// redeclaring each attribute.
//
// Every attribute name, default, and accepted value shape here is mirrored
// byte for byte by the companion client-side runtime.
package mixins

import (
	"github.com/alexisbeaulieu97/vizprops/pkg/enums"
	"github.com/alexisbeaulieu97/vizprops/pkg/property"
)

// Fill bundles the attributes for rendering filled regions.
var Fill = property.MustBundle("fill",
	property.MustDeclaration("color", property.Color(), "gray",
		"A color to use to fill the %s with. Accepts a named CSS color, a #RRGGBB or #RRGGBBAA hex string, a 3-tuple of integers in [0, 255], or a 4-tuple adding an alpha in [0, 1]."),
	property.MustDeclaration("alpha", property.NumberIn(0, 1), 1.0,
		"An alpha value to use to fill the %s with, between 0 (transparent) and 1 (opaque)."),
)

// Line bundles the attributes for stroking paths.
var Line = property.MustBundle("line",
	property.MustDeclaration("color", property.Color(), "black",
		"A color to use to stroke the %s with. Accepts a named CSS color, a #RRGGBB or #RRGGBBAA hex string, a 3-tuple of integers in [0, 255], or a 4-tuple adding an alpha in [0, 1]."),
	property.MustDeclaration("width", property.Number(), 1,
		"Stroke width of the %s in units of pixels."),
	property.MustDeclaration("alpha", property.NumberIn(0, 1), 1.0,
		"An alpha value to use to stroke the %s with, between 0 (transparent) and 1 (opaque)."),
	property.MustDeclaration("join", property.Enum(enums.LineJoin), "miter",
		"How path segments of the %s should be joined together: miter, round, or bevel."),
	property.MustDeclaration("cap", property.Enum(enums.LineCap), "butt",
		"How path segments of the %s should be terminated: butt, round, or square."),
	property.MustDeclaration("dash", property.Dash(), "",
		"How the %s should be dashed: a preset name or a sequence of on/off pixel run lengths. An empty sequence draws a solid line."),
	property.MustDeclaration("dash_offset", property.Int(), 0,
		"The distance in pixels into the dash pattern that the %s stroke should start from."),
)

// Text bundles the attributes for rendering text.
var Text = property.MustBundle("text",
	property.MustDeclaration("font", property.String(), "helvetica",
		"Name of a font to use for rendering the %s, e.g. times or helvetica."),
	property.MustDeclaration("font_size", property.FontSize(), "12pt",
		"Font size for the %s as a <number><unit> string, e.g. 12pt."),
	property.MustDeclaration("font_style", property.Enum(enums.FontStyle), "normal",
		"A style to use for rendering the %s: normal, italic, or bold."),
	property.MustDeclaration("color", property.Color(), "#444444",
		"A color to use to fill the %s with. Accepts a named CSS color, a #RRGGBB or #RRGGBBAA hex string, a 3-tuple of integers in [0, 255], or a 4-tuple adding an alpha in [0, 1]."),
	property.MustDeclaration("alpha", property.NumberIn(0, 1), 1.0,
		"An alpha value to use to fill the %s with, between 0 (transparent) and 1 (opaque)."),
	property.MustDeclaration("align", property.Enum(enums.TextAlign), "left",
		"Horizontal anchor point to use when rendering the %s: left, right, or center."),
	property.MustDeclaration("baseline", property.Enum(enums.TextBaseline), "bottom",
		"Vertical anchor point to use when rendering the %s: top, middle, bottom, alphabetic, hanging, or ideographic."),
)

// All returns the fixed bundles in a stable order.
func All() []property.Bundle {
	return []property.Bundle{Fill, Line, Text}
}

// ByCategory looks up a fixed bundle by its category label.
func ByCategory(category string) (property.Bundle, bool) {
	for _, b := range All() {
		if b.Category() == category {
			return b, true
		}
	}
	return property.Bundle{}, false
}
