// Package colors defines the color value type accepted by color specs and
// the parsing rules for its literal shapes: CSS color names, 6 or 8 digit
// hex strings, and integer component tuples.
package colors

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBA is a resolved color: byte channels plus a floating point alpha in
// [0, 1]. The zero value is transparent black.
type RGBA struct {
	R, G, B uint8
	A       float64
}

var hexPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

// New builds an RGBA from integer channels and an alpha, rejecting any
// component outside its documented range. Out-of-range components are errors,
// never clamped.
func New(r, g, b int, a float64) (RGBA, error) {
	for _, c := range [3]int{r, g, b} {
		if c < 0 || c > 255 {
			return RGBA{}, fmt.Errorf("color channel %d outside [0, 255]", c)
		}
	}
	if a < 0 || a > 1 {
		return RGBA{}, fmt.Errorf("alpha %v outside [0, 1]", a)
	}
	return RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: a}, nil
}

// RGB builds a fully opaque RGBA from integer channels.
func RGB(r, g, b int) (RGBA, error) {
	return New(r, g, b, 1)
}

// Hex renders the color as a lowercase hex string, with an alpha pair only
// when the color is not fully opaque.
func (c RGBA) Hex() string {
	if c.A == 1 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, uint8(c.A*255+0.5))
}

// Colorful converts to a go-colorful color, dropping alpha.
func (c RGBA) Colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// Lightness returns the CIE Lab lightness of the color in [0, 1], used to
// choose readable foreground text over a color swatch.
func (c RGBA) Lightness() float64 {
	l, _, _ := c.Colorful().Lab()
	return l
}

// IsHex reports whether s has the #RRGGBB or #RRGGBBAA shape.
func IsHex(s string) bool {
	return hexPattern.MatchString(s)
}

// ParseHex parses a 6 or 8 digit hex color string.
func ParseHex(s string) (RGBA, error) {
	if !hexPattern.MatchString(s) {
		return RGBA{}, fmt.Errorf("malformed hex color %q", s)
	}
	base, err := colorful.Hex(s[:7])
	if err != nil {
		return RGBA{}, fmt.Errorf("malformed hex color %q: %w", s, err)
	}
	r, g, b := base.RGB255()
	alpha := 1.0
	if len(s) == 9 {
		var a uint8
		if _, err := fmt.Sscanf(s[7:], "%02x", &a); err != nil {
			return RGBA{}, fmt.Errorf("malformed hex alpha in %q: %w", s, err)
		}
		alpha = float64(a) / 255
	}
	return RGBA{R: r, G: g, B: b, A: alpha}, nil
}

// Named looks up a CSS color name. Lookup is exact: no case folding.
func Named(name string) (RGBA, bool) {
	c, ok := cssColors[name]
	return c, ok
}

// IsNamed reports whether name is in the CSS named color table.
func IsNamed(name string) bool {
	_, ok := cssColors[name]
	return ok
}

// Parse resolves a string to a color: a CSS name first, then a hex string.
// Strings matching neither shape are errors here; the field-reference
// fallback for bare strings belongs to the color spec, not this package.
func Parse(s string) (RGBA, error) {
	if c, ok := cssColors[s]; ok {
		return c, nil
	}
	if hexPattern.MatchString(s) {
		return ParseHex(s)
	}
	return RGBA{}, fmt.Errorf("unknown color %q", s)
}

// Names returns the CSS color names in sorted order.
func Names() []string {
	names := make([]string, 0, len(cssColors))
	for name := range cssColors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
