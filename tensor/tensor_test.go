package tensor_test

import (
	"testing"

	"github.com/mmaroti/uasat-go/boolalg"
	"github.com/mmaroti/uasat-go/core"
	"github.com/mmaroti/uasat-go/satsolver"
	"github.com/mmaroti/uasat-go/shape"
	"github.com/mmaroti/uasat-go/tensor"
	"github.com/stretchr/testify/require"
)

func sh(t *testing.T, dims ...int) shape.Shape {
	t.Helper()
	s, err := shape.FromDims(dims)
	require.NoError(t, err)
	return s
}

func TestConstantAndElementwise(t *testing.T) {
	s2 := sh(t, 2, 2)
	a := tensor.Constant(s2, true)
	b := tensor.Constant(s2, false)
	and, err := a.And(b)
	require.NoError(t, err)
	for _, l := range and.Storage() {
		require.Equal(t, core.False, l)
	}
	or, err := a.Or(b)
	require.NoError(t, err)
	for _, l := range or.Storage() {
		require.Equal(t, core.True, l)
	}
}

func TestElementwiseShapeMismatch(t *testing.T) {
	a := tensor.Constant(sh(t, 2, 2), true)
	b := tensor.Constant(sh(t, 3), true)
	_, err := a.And(b)
	require.Error(t, err)
	require.True(t, core.IsKind(err, core.ShapeMismatch))
}

func TestDiagonalAndPolymerTranspose(t *testing.T) {
	d, err := tensor.Diagonal(3)
	require.NoError(t, err)
	transposed, err := d.Polymer(sh(t, 3, 3), []int{1, 0})
	require.NoError(t, err)
	equ, err := d.Equ(transposed)
	require.NoError(t, err)
	all, err := equ.Reshape(2, sh(t, 9))
	require.NoError(t, err)
	foldedAll, err := all.FoldAll()
	require.NoError(t, err)
	scalar, err := foldedAll.GetScalar()
	require.NoError(t, err)
	require.Equal(t, core.True, scalar, "diagonal is its own transpose")
}

func TestPolymerTransposeAsymmetric(t *testing.T) {
	lt, err := tensor.LessThan(3)
	require.NoError(t, err)
	transposed, err := lt.Polymer(sh(t, 3, 3), []int{1, 0})
	require.NoError(t, err)
	// transposed(i,j) holds iff the original held at (j,i): i > j.
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			orig := lt.Storage()[i+j*3]
			trans := transposed.Storage()[i+j*3]
			require.Equal(t, lessThanLit(i, j), orig, "lt(%d,%d)", i, j)
			require.Equal(t, lessThanLit(j, i), trans, "transposed(%d,%d)", i, j)
		}
	}
}

func lessThanLit(a, b int) core.Literal {
	if a < b {
		return core.True
	}
	return core.False
}

func TestReshapeExtentMismatch(t *testing.T) {
	a := tensor.Constant(sh(t, 2, 3), true)
	_, err := a.Reshape(2, sh(t, 5))
	require.Error(t, err)
	require.True(t, core.IsKind(err, core.ShapeMismatch))
}

func TestSlicesStackRoundTrip(t *testing.T) {
	lt, err := tensor.LessThan(4)
	require.NoError(t, err)
	slices, err := lt.Slices()
	require.NoError(t, err)
	require.Len(t, slices, 4)
	restacked, err := tensor.Stack(slices)
	require.NoError(t, err)
	require.Equal(t, lt.Storage(), restacked.Storage())
}

func TestFoldOneOnOneHot(t *testing.T) {
	bits := []tensor.Tensor{
		tensor.Constant(shape.Empty(), false),
		tensor.Constant(shape.Empty(), true),
		tensor.Constant(shape.Empty(), false),
	}
	oneHot, err := tensor.Stack(bits)
	require.NoError(t, err)
	one, err := oneHot.FoldOne()
	require.NoError(t, err)
	scalar, err := one.GetScalar()
	require.NoError(t, err)
	require.Equal(t, core.True, scalar)
}

func TestGetScalarRequiresExtentOne(t *testing.T) {
	a := tensor.Constant(sh(t, 2), true)
	_, err := a.GetScalar()
	require.Error(t, err)
	require.True(t, core.IsKind(err, core.NotScalar))
}

func TestTseitinSoundnessThroughTensor(t *testing.T) {
	s, err := satsolver.NewSolver("minisat")
	require.NoError(t, err)
	l := boolalg.NewSolverLogic(s)
	x := tensor.Variable(l, sh(t, 2), true, false)
	slices, err := x.Slices()
	require.NoError(t, err)
	conj, err := slices[0].And(slices[1])
	require.NoError(t, err)
	scalar, err := conj.GetScalar()
	require.NoError(t, err)

	s.AddClause([]core.Literal{scalar})
	require.True(t, s.Solve())
	solved, err := x.GetSolution(s)
	require.NoError(t, err)
	for _, v := range solved.Storage() {
		require.Equal(t, core.True, v)
	}
}
