package mixins

import (
	"testing"

	"github.com/stretchr/testify/require"

	vperrors "github.com/alexisbeaulieu97/vizprops/pkg/errors"
	"github.com/alexisbeaulieu97/vizprops/pkg/property"
)

func baseNames(b property.Bundle) []string {
	var names []string
	for _, d := range b.Declarations() {
		names = append(names, d.Name)
	}
	return names
}

func TestBundleContents(t *testing.T) {
	t.Parallel()

	require.Equal(t, []string{"color", "alpha"}, baseNames(Fill))
	require.Equal(t, []string{"color", "width", "alpha", "join", "cap", "dash", "dash_offset"}, baseNames(Line))
	require.Equal(t, []string{"font", "font_size", "font_style", "color", "alpha", "align", "baseline"}, baseNames(Text))
}

func TestBundleDefaults(t *testing.T) {
	t.Parallel()

	cases := []struct {
		bundle property.Bundle
		attr   string
		want   property.Value
	}{
		{bundle: Fill, attr: "color", want: property.Lit("gray")},
		{bundle: Fill, attr: "alpha", want: property.Lit(1.0)},
		{bundle: Line, attr: "color", want: property.Lit("black")},
		{bundle: Line, attr: "width", want: property.Lit(1.0)},
		{bundle: Line, attr: "join", want: property.Lit("miter")},
		{bundle: Line, attr: "cap", want: property.Lit("butt")},
		{bundle: Line, attr: "dash", want: property.Lit([]int{})},
		{bundle: Line, attr: "dash_offset", want: property.Lit(0)},
		{bundle: Text, attr: "font", want: property.Lit("helvetica")},
		{bundle: Text, attr: "font_size", want: property.Lit("12pt")},
		{bundle: Text, attr: "font_style", want: property.Lit("normal")},
		{bundle: Text, attr: "color", want: property.Lit("#444444")},
		{bundle: Text, attr: "align", want: property.Lit("left")},
		{bundle: Text, attr: "baseline", want: property.Lit("bottom")},
	}

	for _, tc := range cases {
		t.Run(tc.bundle.Category()+"_"+tc.attr, func(t *testing.T) {
			t.Parallel()
			for _, d := range tc.bundle.Declarations() {
				if d.Name == tc.attr {
					require.Equal(t, tc.want, d.Default)
					return
				}
			}
			t.Fatalf("attribute %q not found in bundle %q", tc.attr, tc.bundle.Category())
		})
	}
}

func TestFillIncludePrefixed(t *testing.T) {
	t.Parallel()

	target := property.NewContainer()
	require.NoError(t, property.Include(Fill, target))
	require.Equal(t, []string{"fill_color", "fill_alpha"}, target.Names())
}

func TestFillIncludeBare(t *testing.T) {
	t.Parallel()

	target := property.NewContainer()
	require.NoError(t, property.Include(Fill, target, property.WithoutPrefix()))
	require.Equal(t, []string{"color", "alpha"}, target.Names())
}

func TestFillAndLineBareCollision(t *testing.T) {
	t.Parallel()

	target := property.NewContainer()
	require.NoError(t, property.Include(Fill, target, property.WithoutPrefix()))

	err := property.Include(Line, target, property.WithoutPrefix())
	require.Error(t, err)
	var declErr *vperrors.DeclarationError
	require.ErrorAs(t, err, &declErr)
	require.Contains(t, declErr.Message, `bundle "fill"`)
	require.Contains(t, declErr.Message, `bundle "line"`)
}

func TestLineEndToEnd(t *testing.T) {
	t.Parallel()

	glyph := property.NewContainer()
	require.NoError(t, property.Include(Line, glyph))

	require.NoError(t, glyph.Set("line_dash_offset", 3))
	v, ok := glyph.Get("line_dash_offset")
	require.True(t, ok)
	require.True(t, glyph.IsSet("line_dash_offset"))
	require.Equal(t, 3, v.Literal(), "integer values are stored as integers")

	err := glyph.Set("line_join", "octagon")
	require.Error(t, err)
	var valErr *vperrors.ValidationError
	require.ErrorAs(t, err, &valErr)
	require.Equal(t, "line_join", valErr.Attr)

	require.NoError(t, glyph.Set("line_dash", "4 2"))
	v, _ = glyph.Get("line_dash")
	require.Equal(t, []int{4, 2}, v.Literal())

	require.NoError(t, glyph.Set("line_color", "depth_col"))
	v, _ = glyph.Get("line_color")
	require.Equal(t, property.KindField, v.Kind())
}

func TestHelpPlaceholders(t *testing.T) {
	t.Parallel()

	// Every help string carries at most one placeholder; the bundle itself
	// never substitutes it.
	for _, bundle := range All() {
		for _, d := range bundle.Declarations() {
			count := 0
			for i := 0; i+1 < len(d.Help); i++ {
				if d.Help[i] == '%' && d.Help[i+1] == 's' {
					count++
				}
			}
			require.LessOrEqual(t, count, 1, "%s/%s", bundle.Category(), d.Name)
		}
	}
}

func TestByCategory(t *testing.T) {
	t.Parallel()

	for _, category := range []string{"fill", "line", "text"} {
		b, ok := ByCategory(category)
		require.True(t, ok)
		require.Equal(t, category, b.Category())
	}

	_, ok := ByCategory("glyph")
	require.False(t, ok)
}
