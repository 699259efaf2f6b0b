// Package enums provides nominal closed-set string enumerations used to
// constrain styling attribute values.
//
// Each enumeration is a distinct kind: two enumerations with identical member
// sets do not cross-validate, so a value accepted for one is not implicitly
// acceptable for another.
package enums

// Enumeration is a fixed, ordered set of string members identified by name.
type Enumeration struct {
	name    string
	members []string
	index   map[string]struct{}
}

// New constructs an enumeration over the given members. Member order is
// preserved; the first member is the conventional default.
func New(name string, members ...string) Enumeration {
	index := make(map[string]struct{}, len(members))
	for _, m := range members {
		index[m] = struct{}{}
	}
	return Enumeration{name: name, members: members, index: index}
}

// Name returns the enumeration's kind name.
func (e Enumeration) Name() string {
	return e.name
}

// Members returns the ordered member set. The result is a copy; mutating it
// does not affect the enumeration.
func (e Enumeration) Members() []string {
	return append([]string(nil), e.members...)
}

// Contains reports whether value is a member. Matching is exact: no case
// folding, no aliasing.
func (e Enumeration) Contains(value string) bool {
	_, ok := e.index[value]
	return ok
}

// Default returns the first member, or the empty string for an empty
// enumeration.
func (e Enumeration) Default() string {
	if len(e.members) == 0 {
		return ""
	}
	return e.members[0]
}

// Styling enumerations mirrored byte for byte by the client-side runtime.
var (
	// LineJoin controls how path segments are joined together.
	LineJoin = New("LineJoin", "miter", "round", "bevel")

	// LineCap controls how path segments are terminated.
	LineCap = New("LineCap", "butt", "round", "square")

	// FontStyle selects the rendering style for text.
	FontStyle = New("FontStyle", "normal", "italic", "bold")

	// TextAlign is the horizontal anchor point for rendered text.
	TextAlign = New("TextAlign", "left", "right", "center")

	// TextBaseline is the vertical anchor point for rendered text.
	TextBaseline = New("TextBaseline", "top", "middle", "bottom", "alphabetic", "hanging", "ideographic")
)
