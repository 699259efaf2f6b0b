package property

import (
	"testing"

	"github.com/stretchr/testify/require"

	vperrors "github.com/alexisbeaulieu97/vizprops/pkg/errors"
	"github.com/alexisbeaulieu97/vizprops/pkg/enums"
)

func TestNewDeclarationValidatesDefault(t *testing.T) {
	t.Parallel()

	d, err := NewDeclaration("alpha", NumberIn(0, 1), 1.0, "An alpha for the %s.")
	require.NoError(t, err)
	require.Equal(t, Lit(1.0), d.Default)

	_, err = NewDeclaration("alpha", NumberIn(0, 1), 2.0, "")
	require.Error(t, err, "a misconfigured default must fail at definition time")
	var declErr *vperrors.DeclarationError
	require.ErrorAs(t, err, &declErr)
	require.Equal(t, "alpha", declErr.Attr)

	_, err = NewDeclaration("join", Enum(enums.LineJoin), "octagon", "")
	require.Error(t, err, "unknown enum member in a default must fail fast")
}

func TestNewDeclarationPlaceholderCount(t *testing.T) {
	t.Parallel()

	_, err := NewDeclaration("color", Color(), "gray", "A %s color for the %s.")
	require.Error(t, err)

	_, err = NewDeclaration("color", Color(), "gray", "No placeholder at all.")
	require.NoError(t, err)
}

func TestContainerDeclareAndSet(t *testing.T) {
	t.Parallel()

	c := NewContainer()
	require.NoError(t, c.Declare(MustDeclaration("width", Number(), 1, "")))
	require.NoError(t, c.Declare(MustDeclaration("join", Enum(enums.LineJoin), "miter", "")))

	v, ok := c.Get("width")
	require.True(t, ok)
	require.Equal(t, Lit(1.0), v, "unset attributes expose their default")
	require.False(t, c.IsSet("width"))

	require.NoError(t, c.Set("width", 2.5))
	require.True(t, c.IsSet("width"))
	v, _ = c.Get("width")
	require.Equal(t, Lit(2.5), v)

	err := c.Set("join", "octagon")
	require.Error(t, err)
	var valErr *vperrors.ValidationError
	require.ErrorAs(t, err, &valErr)
	require.Equal(t, "join", valErr.Attr)
	require.Equal(t, "Enum(LineJoin)", valErr.Kind)
	require.Equal(t, "octagon", valErr.Value)

	err = c.Set("missing", 1)
	require.Error(t, err)

	c.Unset("width")
	require.False(t, c.IsSet("width"))
	v, _ = c.Get("width")
	require.Equal(t, Lit(1.0), v)
}

func TestContainerRedefinitionReplaces(t *testing.T) {
	t.Parallel()

	c := NewContainer()
	require.NoError(t, c.Declare(MustDeclaration("color", Color(), "gray", "")))
	require.NoError(t, c.Declare(MustDeclaration("width", Number(), 1, "")))
	require.NoError(t, c.Declare(MustDeclaration("color", Color(), "black", "")))

	require.Equal(t, []string{"color", "width"}, c.Names(), "redefinition replaces, never duplicates")
	d, ok := c.Lookup("color")
	require.True(t, ok)
	require.Equal(t, Lit("black"), d.Default)
}

func TestContainerDeclarationsOrdered(t *testing.T) {
	t.Parallel()

	c := NewContainer()
	names := []string{"zeta", "alpha", "mid"}
	for _, name := range names {
		require.NoError(t, c.Declare(MustDeclaration(name, String(), "", "")))
	}

	decls := c.Declarations()
	require.Len(t, decls, len(names))
	for i, d := range decls {
		require.Equal(t, names[i], d.Name)
	}
}
