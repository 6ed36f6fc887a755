package domain_test

import (
	"testing"

	"github.com/mmaroti/uasat-go/boolalg"
	"github.com/mmaroti/uasat-go/core"
	"github.com/mmaroti/uasat-go/domain"
	"github.com/mmaroti/uasat-go/satsolver"
	"github.com/mmaroti/uasat-go/tensor"
	"github.com/stretchr/testify/require"
)

func TestProjectionIsContained(t *testing.T) {
	c, err := domain.NewOperations(3)
	require.NoError(t, err)
	proj, err := c.Projection(2, 1)
	require.NoError(t, err)
	contains, err := c.Contains(2, proj)
	require.NoError(t, err)
	scalar, err := contains.GetScalar()
	require.NoError(t, err)
	require.Equal(t, core.True, scalar)
}

func TestComposeIdentityWithConstantIsConstant(t *testing.T) {
	// proj0 is the arity-1 identity (y,x) |-> y==x. Substituting its one
	// argument with the 0-ary constant operation "k" (a one-hot row of
	// Diagonal(size)) must yield that same constant back unchanged.
	const size = 4
	c, err := domain.NewOperations(size)
	require.NoError(t, err)

	proj0, err := c.Projection(1, 0)
	require.NoError(t, err)

	diag, err := tensor.Diagonal(size)
	require.NoError(t, err)
	rows, err := diag.Slices()
	require.NoError(t, err)
	constK := rows[2] // the 0-ary operation that always returns 2

	args, err := tensor.Stack([]tensor.Tensor{constK})
	require.NoError(t, err)
	result, err := c.Compose(1, proj0, 0, args)
	require.NoError(t, err)

	eq, err := result.Equ(constK)
	require.NoError(t, err)
	allEq, err := eq.FoldAll()
	require.NoError(t, err)
	scalar, err := allEq.GetScalar()
	require.NoError(t, err)
	require.Equal(t, core.True, scalar)
}

func TestOperationsContainsUnderSolver(t *testing.T) {
	s, err := satsolver.NewSolver("minisat")
	require.NoError(t, err)
	l := boolalg.NewSolverLogic(s)

	c, err := domain.NewOperations(2)
	require.NoError(t, err)
	sh, err := c.Shape(1)
	require.NoError(t, err)
	op := tensor.Variable(l, sh, true, false)
	contains, err := c.Contains(1, op)
	require.NoError(t, err)
	scalar, err := contains.GetScalar()
	require.NoError(t, err)
	s.AddClause([]core.Literal{scalar})
	require.True(t, s.Solve())
}
