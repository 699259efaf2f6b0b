package property

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/vizprops/pkg/colors"
	"github.com/alexisbeaulieu97/vizprops/pkg/enums"
)

func TestColorSpecLiteralShapes(t *testing.T) {
	t.Parallel()

	spec := Color()

	cases := []struct {
		name  string
		input any
	}{
		{name: "named", input: "gray"},
		{name: "hex six", input: "#FF0000"},
		{name: "hex eight", input: "#44444444"},
		{name: "three tuple", input: []int{10, 20, 30}},
		{name: "four tuple", input: []any{10, 20, 30, 0.5}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			v, err := spec.Validate(tc.input)
			require.NoError(t, err)
			require.Equal(t, KindLiteral, v.Kind())
			require.Equal(t, tc.input, v.Literal(), "canonical input must round-trip unchanged")

			again, err := spec.Validate(v)
			require.NoError(t, err)
			require.Equal(t, v, again)
		})
	}
}

func TestColorSpecRejectsOutOfRange(t *testing.T) {
	t.Parallel()

	spec := Color()

	cases := []struct {
		name  string
		input any
	}{
		{name: "channel above 255", input: []int{256, 0, 0}},
		{name: "negative channel", input: []int{0, -1, 0}},
		{name: "four tuple channel", input: []any{300, 0, 0, 0.5}},
		{name: "alpha above 1", input: []any{0, 0, 0, 1.5}},
		{name: "negative alpha", input: []any{0, 0, 0, -0.5}},
		{name: "two components", input: []int{1, 2}},
		{name: "five components", input: []any{1, 2, 3, 0.5, 9}},
		{name: "rgba struct bad alpha", input: colors.RGBA{A: 2}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := spec.Validate(tc.input)
			require.Error(t, err)
		})
	}
}

func TestColorSpecStringPrecedence(t *testing.T) {
	t.Parallel()

	spec := Color()

	// Named colors and hex strings always resolve to literals, even if a
	// data source happens to have a column of the same name.
	for _, s := range []string{"green", "indigo", "#ff0000", "#FF0000AA"} {
		v, err := spec.Validate(s)
		require.NoError(t, err)
		require.Equal(t, KindLiteral, v.Kind(), "input %q", s)
	}

	// Anything else is a per-record field reference, including typos.
	for _, s := range []string{"grene", "pressure", "Gray", "fill_col"} {
		v, err := spec.Validate(s)
		require.NoError(t, err)
		require.Equal(t, KindField, v.Kind(), "input %q", s)
		require.Equal(t, s, v.Ref())
	}
}

func TestColorSpecReferences(t *testing.T) {
	t.Parallel()

	spec := Color()

	v, err := spec.Validate(Field("depth"))
	require.NoError(t, err)
	require.Equal(t, KindField, v.Kind())
	require.Equal(t, "depth", v.Ref())

	v, err = spec.Validate(Expr("shade"))
	require.NoError(t, err)
	require.Equal(t, KindExpr, v.Kind())
	require.Equal(t, "shade", v.Ref())
}

func TestNumberSpec(t *testing.T) {
	t.Parallel()

	v, err := Number().Validate(2)
	require.NoError(t, err)
	require.Equal(t, 2.0, v.Literal())

	v, err = Number().Validate("radius")
	require.NoError(t, err)
	require.Equal(t, KindField, v.Kind())

	v, err = Number().Validate(Expr("scaled"))
	require.NoError(t, err)
	require.Equal(t, KindExpr, v.Kind())

	_, err = Number().Validate([]int{1})
	require.Error(t, err)
}

func TestNumberSpecDomain(t *testing.T) {
	t.Parallel()

	alpha := NumberIn(0, 1)

	v, err := alpha.Validate(0.5)
	require.NoError(t, err)
	require.Equal(t, 0.5, v.Literal())

	for _, bad := range []float64{-0.1, 1.5, 2} {
		_, err := alpha.Validate(bad)
		require.Error(t, err, "value %v must be rejected, not clamped", bad)
	}
}

func TestFontSizeSpec(t *testing.T) {
	t.Parallel()

	spec := FontSize()

	for _, good := range []string{"12pt", "10px", "1.5em", "80%", "2vmin"} {
		v, err := spec.Validate(good)
		require.NoError(t, err, "input %q", good)
		require.Equal(t, Lit(good), v)
	}

	for _, bad := range []string{"12", "12xyz", "pt", "12 pt", "12PT"} {
		_, err := spec.Validate(bad)
		require.Error(t, err, "input %q", bad)
	}

	v, err := spec.Validate(Field("size_col"))
	require.NoError(t, err)
	require.Equal(t, KindField, v.Kind())
}

func TestDashSpec(t *testing.T) {
	t.Parallel()

	spec := Dash()

	v, err := spec.Validate("4 2")
	require.NoError(t, err)
	require.Equal(t, []int{4, 2}, v.Literal())

	v, err = spec.Validate("4,2")
	require.NoError(t, err)
	require.Equal(t, []int{4, 2}, v.Literal())

	v, err = spec.Validate([]int{4, 2})
	require.NoError(t, err)
	require.Equal(t, []int{4, 2}, v.Literal(), "canonical sequence must round-trip unchanged")

	v, err = spec.Validate("")
	require.NoError(t, err)
	require.Equal(t, []int{}, v.Literal())

	v, err = spec.Validate("dotted")
	require.NoError(t, err)
	require.Equal(t, "dotted", v.Literal())

	_, err = spec.Validate([]int{-1, 2})
	require.Error(t, err)

	_, err = spec.Validate("dashy")
	require.Error(t, err)

	_, err = spec.Validate(Field("pattern"))
	require.Error(t, err, "dash patterns allow no field indirection")
}

func TestEnumSpec(t *testing.T) {
	t.Parallel()

	spec := Enum(enums.LineJoin)

	for _, good := range []string{"miter", "round", "bevel"} {
		v, err := spec.Validate(good)
		require.NoError(t, err)
		require.Equal(t, Lit(good), v)
	}

	for _, bad := range []any{"MITER", "beveled", "", 3} {
		_, err := spec.Validate(bad)
		require.Error(t, err, "input %v", bad)
	}

	_, err := spec.Validate(Field("join_col"))
	require.Error(t, err, "enums allow no field indirection")
}

func TestEnumSpecNominal(t *testing.T) {
	t.Parallel()

	// Two kinds sharing a member ("round") validate independently.
	join := Enum(enums.LineJoin)
	lineCap := Enum(enums.LineCap)

	_, err := join.Validate("butt")
	require.Error(t, err)
	_, err = lineCap.Validate("miter")
	require.Error(t, err)

	require.NotEqual(t, join.Kind(), lineCap.Kind())
}

func TestPlainSpecsRejectReferences(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		spec Spec
	}{
		{name: "string", spec: String()},
		{name: "int", spec: Int()},
		{name: "float", spec: Float()},
		{name: "dash", spec: Dash()},
		{name: "enum", spec: Enum(enums.FontStyle)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := tc.spec.Validate(Field("col"))
			require.Error(t, err)
			_, err = tc.spec.Validate(Expr("fn"))
			require.Error(t, err)
		})
	}
}

func TestIntSpec(t *testing.T) {
	t.Parallel()

	v, err := Int().Validate(3)
	require.NoError(t, err)
	require.Equal(t, 3, v.Literal())

	v, err = Int().Validate(int64(7))
	require.NoError(t, err)
	require.Equal(t, 7, v.Literal())

	_, err = Int().Validate(3.5)
	require.Error(t, err)
	_, err = Int().Validate("3")
	require.Error(t, err)
}
