// Package property implements typed, validated styling attributes: polymorphic
// value specs, an attribute container, reusable declaration bundles, and the
// definition-time inclusion mechanism that expands a bundle into a target
// container's namespace.
//
// Spec-suffixed kinds (Color, Number, FontSize) accept three value variants:
// a concrete literal, a per-record field reference, or a named transform
// expression. Plain kinds (String, Int, Float, Dash, Enum) accept literals
// only.
//
// Note one deliberate, surprising rule inherited from the mirrored runtime: a
// bare string handed to a color spec that is neither a CSS color name nor a
// hex string resolves to a field reference, not an error. A typo'd color name
// therefore becomes a per-record column lookup. Named colors and hex strings
// always win over the field interpretation.
package property

import "fmt"

// ValueKind identifies the active variant of a Value.
type ValueKind int

const (
	// KindLiteral marks a concrete, immediately usable value.
	KindLiteral ValueKind = iota
	// KindField marks a per-record field reference resolved at render time.
	KindField
	// KindExpr marks a named external transform computed per record.
	KindExpr
)

func (k ValueKind) String() string {
	switch k {
	case KindLiteral:
		return "literal"
	case KindField:
		return "field"
	case KindExpr:
		return "expr"
	default:
		return fmt.Sprintf("ValueKind(%d)", int(k))
	}
}

// Value is the tagged union stored for every attribute: exactly one variant
// is active. The zero value is a literal nil.
type Value struct {
	kind ValueKind
	lit  any
	ref  string
}

// Lit wraps a concrete literal value.
func Lit(v any) Value {
	return Value{kind: KindLiteral, lit: v}
}

// Field builds a per-record field reference.
func Field(name string) Value {
	return Value{kind: KindField, ref: name}
}

// Expr builds a reference to a named external transform.
func Expr(name string) Value {
	return Value{kind: KindExpr, ref: name}
}

// Kind reports the active variant.
func (v Value) Kind() ValueKind {
	return v.kind
}

// Literal returns the literal payload; nil unless Kind is KindLiteral.
func (v Value) Literal() any {
	if v.kind != KindLiteral {
		return nil
	}
	return v.lit
}

// Ref returns the referenced field or transform name; empty for literals.
func (v Value) Ref() string {
	return v.ref
}

func (v Value) String() string {
	switch v.kind {
	case KindField:
		return fmt.Sprintf("field(%s)", v.ref)
	case KindExpr:
		return fmt.Sprintf("expr(%s)", v.ref)
	default:
		return fmt.Sprintf("%v", v.lit)
	}
}

// clone returns an independent copy of the value. Slice literals are copied
// so containers never share mutable state with a bundle or with each other.
func (v Value) clone() Value {
	if v.kind == KindLiteral {
		if seq, ok := v.lit.([]int); ok {
			v.lit = append([]int(nil), seq...)
		}
	}
	return v
}
