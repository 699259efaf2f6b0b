package enums

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestContains(t *testing.T) {
	t.Parallel()

	for _, member := range []string{"miter", "round", "bevel"} {
		require.True(t, LineJoin.Contains(member))
	}
	require.False(t, LineJoin.Contains("MITER"), "matching must be case-sensitive")
	require.False(t, LineJoin.Contains("beveled"))
	require.False(t, LineJoin.Contains(""))
}

func TestMembersOrdered(t *testing.T) {
	t.Parallel()

	require.Equal(t, []string{"miter", "round", "bevel"}, LineJoin.Members())
	require.Equal(t, []string{"butt", "round", "square"}, LineCap.Members())
	require.Equal(t, []string{"top", "middle", "bottom", "alphabetic", "hanging", "ideographic"}, TextBaseline.Members())

	members := LineJoin.Members()
	members[0] = "mutated"
	require.Equal(t, []string{"miter", "round", "bevel"}, LineJoin.Members(), "Members must return a copy")
}

func TestDefault(t *testing.T) {
	t.Parallel()

	require.Equal(t, "miter", LineJoin.Default())
	require.Equal(t, "normal", FontStyle.Default())
	require.Equal(t, "", New("Empty").Default())
}

func TestNominalKinds(t *testing.T) {
	t.Parallel()

	// Same member set, different kinds: they share membership checks but
	// remain distinct enumerations.
	a := New("A", "x", "y")
	b := New("B", "x", "y")
	require.NotEqual(t, a.Name(), b.Name())
	require.Equal(t, a.Members(), b.Members())
}
