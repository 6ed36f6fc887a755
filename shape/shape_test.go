package shape_test

import (
	"testing"

	"github.com/mmaroti/uasat-go/core"
	"github.com/mmaroti/uasat-go/shape"
	"github.com/stretchr/testify/require"
)

func TestFromDimsAndExtent(t *testing.T) {
	s, err := shape.FromDims([]int{2, 3, 4})
	require.NoError(t, err)
	require.Equal(t, 3, s.Rank())
	require.Equal(t, 24, s.Extent())
	require.Equal(t, []int{2, 3, 4}, s.Dims())
}

func TestEmptyShapeExtentIsOne(t *testing.T) {
	require.Equal(t, 1, shape.Empty().Extent())
	require.Equal(t, 0, shape.Empty().Rank())
}

func TestConsRejectsNonPositive(t *testing.T) {
	_, err := shape.Cons(0, shape.Empty())
	require.Error(t, err)
	require.True(t, core.IsKind(err, core.InvalidShape))
}

func TestHeadTailDrop(t *testing.T) {
	s, err := shape.FromDims([]int{5, 6, 7})
	require.NoError(t, err)
	head, err := s.Head()
	require.NoError(t, err)
	require.Equal(t, 5, head)
	require.Equal(t, []int{6, 7}, s.Tail().Dims())
	require.Equal(t, []int{7}, s.Drop(2).Dims())
}

func TestHeadOfEmptyFails(t *testing.T) {
	_, err := shape.Empty().Head()
	require.Error(t, err)
	require.True(t, core.IsKind(err, core.ShapeMismatch))
}

func TestPrefixOfAndEqual(t *testing.T) {
	a, _ := shape.FromDims([]int{2, 3})
	b, _ := shape.FromDims([]int{2, 3, 4})
	require.True(t, a.PrefixOf(b))
	require.False(t, b.PrefixOf(a))
	c, _ := shape.FromDims([]int{2, 3})
	require.True(t, a.Equal(c))
	require.False(t, a.Equal(b))
}

func TestSharedTailStructure(t *testing.T) {
	tail, err := shape.FromDims([]int{3, 4})
	require.NoError(t, err)
	a, err := shape.Cons(2, tail)
	require.NoError(t, err)
	b, err := shape.Cons(5, tail)
	require.NoError(t, err)
	require.Equal(t, []int{3, 4}, a.Tail().Dims())
	require.Equal(t, []int{3, 4}, b.Tail().Dims())
	require.Equal(t, 24, a.Extent())
	require.Equal(t, 60, b.Extent())
}

func TestString(t *testing.T) {
	s, _ := shape.FromDims([]int{2, 3})
	require.Equal(t, "(2, 3)", s.String())
}
