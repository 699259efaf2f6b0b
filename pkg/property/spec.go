package property

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/vizprops/pkg/colors"
	"github.com/alexisbeaulieu97/vizprops/pkg/enums"
)

// Spec governs what shapes of value an attribute accepts and how raw input
// resolves into a Value. Validation is pure and deterministic; a rejected
// input is never coerced or clamped.
type Spec interface {
	// Kind names the spec for error reporting, e.g. "ColorSpec".
	Kind() string
	// Validate resolves raw input into a Value or rejects it.
	Validate(input any) (Value, error)
}

var (
	fontSizePattern = regexp.MustCompile(`^[0-9]+(?:\.[0-9]+)?(?:%|em|ex|ch|ic|rem|vw|vh|vi|vb|vmin|vmax|cm|mm|q|in|pc|pt|px)$`)
	dashRunPattern  = regexp.MustCompile(`^[0-9]+(?:[\s,]+[0-9]+)*$`)
)

// DashPresets maps the named dash presets to their on/off pixel run lengths.
// The table is fixed and never mutated.
var DashPresets = map[string][]int{
	"solid":   {},
	"dashed":  {6},
	"dotted":  {2, 4},
	"dotdash": {2, 4, 6, 4},
	"dashdot": {6, 4, 2, 4},
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint:
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	case uint64:
		return int(n), true
	default:
		return 0, false
	}
}

// unwrap splits input into an already-built Value (field or expr reference)
// and the raw literal payload to validate.
func unwrap(input any) (Value, any, bool) {
	v, ok := input.(Value)
	if !ok {
		return Value{}, input, false
	}
	if v.kind == KindLiteral {
		return Value{}, v.lit, false
	}
	return v, nil, true
}

type stringSpec struct{}

// String builds a plain string spec. Field and transform references are
// rejected.
func String() Spec { return stringSpec{} }

func (stringSpec) Kind() string { return "String" }

func (stringSpec) Validate(input any) (Value, error) {
	ref, raw, isRef := unwrap(input)
	if isRef {
		return Value{}, fmt.Errorf("%s reference not allowed for a plain string", ref.kind)
	}
	s, ok := raw.(string)
	if !ok {
		return Value{}, fmt.Errorf("expected string, got %T", raw)
	}
	return Lit(s), nil
}

type intSpec struct{}

// Int builds a plain integer spec.
func Int() Spec { return intSpec{} }

func (intSpec) Kind() string { return "Int" }

func (intSpec) Validate(input any) (Value, error) {
	ref, raw, isRef := unwrap(input)
	if isRef {
		return Value{}, fmt.Errorf("%s reference not allowed for a plain int", ref.kind)
	}
	n, ok := asInt(raw)
	if !ok {
		return Value{}, fmt.Errorf("expected integer, got %T", raw)
	}
	return Lit(n), nil
}

type floatSpec struct{}

// Float builds a plain float spec. Integer input is widened to float64.
func Float() Spec { return floatSpec{} }

func (floatSpec) Kind() string { return "Float" }

func (floatSpec) Validate(input any) (Value, error) {
	ref, raw, isRef := unwrap(input)
	if isRef {
		return Value{}, fmt.Errorf("%s reference not allowed for a plain float", ref.kind)
	}
	f, ok := asFloat(raw)
	if !ok {
		return Value{}, fmt.Errorf("expected number, got %T", raw)
	}
	return Lit(f), nil
}

type numberSpec struct {
	lo, hi *float64
}

// Number builds a numeric spec accepting a literal number, a field
// reference, or a transform reference. A bare string is taken as a field
// name.
func Number() Spec { return numberSpec{} }

// NumberIn is Number restricted to the closed interval [lo, hi]. Out-of-range
// literals are rejected, never clamped.
func NumberIn(lo, hi float64) Spec { return numberSpec{lo: &lo, hi: &hi} }

func (numberSpec) Kind() string { return "NumberSpec" }

func (s numberSpec) Validate(input any) (Value, error) {
	ref, raw, isRef := unwrap(input)
	if isRef {
		return ref, nil
	}
	if name, ok := raw.(string); ok {
		return Field(name), nil
	}
	f, ok := asFloat(raw)
	if !ok {
		return Value{}, fmt.Errorf("expected number, field or expr, got %T", raw)
	}
	if s.lo != nil && (f < *s.lo || f > *s.hi) {
		return Value{}, fmt.Errorf("%v outside [%v, %v]", f, *s.lo, *s.hi)
	}
	return Lit(f), nil
}

type colorSpec struct{}

// Color builds a color spec. Literals may be a CSS color name, a #RRGGBB or
// #RRGGBBAA hex string, a 3-tuple of ints in [0, 255], a 4-tuple adding an
// alpha in [0, 1], or a colors.RGBA. Any other bare string resolves to a
// field reference; named colors and hex strings always win over the field
// interpretation.
func Color() Spec { return colorSpec{} }

func (colorSpec) Kind() string { return "ColorSpec" }

func (colorSpec) Validate(input any) (Value, error) {
	ref, raw, isRef := unwrap(input)
	if isRef {
		return ref, nil
	}
	switch c := raw.(type) {
	case nil:
		return Lit(nil), nil
	case colors.RGBA:
		if c.A < 0 || c.A > 1 {
			return Value{}, fmt.Errorf("alpha %v outside [0, 1]", c.A)
		}
		return Lit(c), nil
	case string:
		if colors.IsNamed(c) {
			return Lit(c), nil
		}
		if colors.IsHex(c) {
			if _, err := colors.ParseHex(c); err != nil {
				return Value{}, err
			}
			return Lit(c), nil
		}
		return Field(c), nil
	case [3]int:
		if err := checkChannels(c[:]...); err != nil {
			return Value{}, err
		}
		return Lit(c), nil
	case []int:
		if len(c) != 3 {
			return Value{}, fmt.Errorf("color tuple needs 3 integer components, got %d", len(c))
		}
		if err := checkChannels(c...); err != nil {
			return Value{}, err
		}
		return Lit(c), nil
	case []any:
		if len(c) != 3 && len(c) != 4 {
			return Value{}, fmt.Errorf("color tuple needs 3 or 4 components, got %d", len(c))
		}
		for i := 0; i < 3; i++ {
			n, ok := asInt(c[i])
			if !ok {
				return Value{}, fmt.Errorf("color channel %v is not an integer", c[i])
			}
			if err := checkChannels(n); err != nil {
				return Value{}, err
			}
		}
		if len(c) == 4 {
			a, ok := asFloat(c[3])
			if !ok {
				return Value{}, fmt.Errorf("alpha %v is not a number", c[3])
			}
			if a < 0 || a > 1 {
				return Value{}, fmt.Errorf("alpha %v outside [0, 1]", a)
			}
		}
		return Lit(c), nil
	default:
		return Value{}, fmt.Errorf("expected color, field or expr, got %T", raw)
	}
}

func checkChannels(channels ...int) error {
	for _, c := range channels {
		if c < 0 || c > 255 {
			return fmt.Errorf("color channel %d outside [0, 255]", c)
		}
	}
	return nil
}

type fontSizeSpec struct{}

// FontSize builds a font size spec. A literal must be a string of the form
// "<number><unit>" with a CSS length unit, e.g. "12pt". Field and transform
// references must be built explicitly; a malformed size string is rejected,
// not reinterpreted.
func FontSize() Spec { return fontSizeSpec{} }

func (fontSizeSpec) Kind() string { return "FontSizeSpec" }

func (fontSizeSpec) Validate(input any) (Value, error) {
	ref, raw, isRef := unwrap(input)
	if isRef {
		return ref, nil
	}
	s, ok := raw.(string)
	if !ok {
		return Value{}, fmt.Errorf("expected font size string, field or expr, got %T", raw)
	}
	if !fontSizePattern.MatchString(s) {
		return Value{}, fmt.Errorf("%q is not a <number><unit> font size", s)
	}
	return Lit(s), nil
}

type dashSpec struct{}

// Dash builds a dash pattern spec. A literal is a preset name (solid, dashed,
// dotted, dotdash, dashdot), a sequence of non-negative integer run lengths,
// or a space- or comma-delimited digit string normalized to the sequence
// form. The empty sequence means a solid line. No field or transform
// indirection.
func Dash() Spec { return dashSpec{} }

func (dashSpec) Kind() string { return "DashPattern" }

func (dashSpec) Validate(input any) (Value, error) {
	ref, raw, isRef := unwrap(input)
	if isRef {
		return Value{}, fmt.Errorf("%s reference not allowed for a dash pattern", ref.kind)
	}
	switch d := raw.(type) {
	case string:
		if d == "" {
			return Lit([]int{}), nil
		}
		if _, ok := DashPresets[d]; ok {
			return Lit(d), nil
		}
		if !dashRunPattern.MatchString(d) {
			return Value{}, fmt.Errorf("%q is neither a dash preset nor a run-length string", d)
		}
		fields := strings.FieldsFunc(d, func(r rune) bool { return r == ' ' || r == ',' || r == '\t' })
		runs := make([]int, 0, len(fields))
		for _, f := range fields {
			n, err := strconv.Atoi(f)
			if err != nil {
				return Value{}, fmt.Errorf("dash run %q is not an integer", f)
			}
			runs = append(runs, n)
		}
		return Lit(runs), nil
	case []int:
		for _, n := range d {
			if n < 0 {
				return Value{}, fmt.Errorf("dash run %d is negative", n)
			}
		}
		return Lit(d), nil
	default:
		return Value{}, fmt.Errorf("expected dash preset or run lengths, got %T", raw)
	}
}

type enumSpec struct {
	enum enums.Enumeration
}

// Enum builds a spec constrained to one enumeration's closed member set.
// Matching is exact and case-sensitive; values from a structurally equal but
// distinct enumeration do not validate.
func Enum(e enums.Enumeration) Spec { return enumSpec{enum: e} }

func (s enumSpec) Kind() string { return fmt.Sprintf("Enum(%s)", s.enum.Name()) }

func (s enumSpec) Validate(input any) (Value, error) {
	ref, raw, isRef := unwrap(input)
	if isRef {
		return Value{}, fmt.Errorf("%s reference not allowed for an enum", ref.kind)
	}
	v, ok := raw.(string)
	if !ok {
		return Value{}, fmt.Errorf("expected one of %v, got %T", s.enum.Members(), raw)
	}
	if !s.enum.Contains(v) {
		return Value{}, fmt.Errorf("%q is not one of %v", v, s.enum.Members())
	}
	return Lit(v), nil
}
