package satsolver_test

import (
	"testing"

	"github.com/mmaroti/uasat-go/core"
	"github.com/mmaroti/uasat-go/satsolver"
	"github.com/stretchr/testify/require"
)

func TestUnknownBackend(t *testing.T) {
	_, err := satsolver.NewSolver("cadical")
	require.Error(t, err)
	require.True(t, core.IsKind(err, core.BackendUnavailable))
}

func TestTrivialUnsat(t *testing.T) {
	for _, backend := range []string{"minisat", "minisatsimp"} {
		s, err := satsolver.NewSolver(backend)
		require.NoError(t, err)
		x := s.NewVar(true, false)
		s.AddClause([]core.Literal{x})
		ok := s.AddClause([]core.Literal{core.Not(x)})
		require.False(t, ok, backend)
		require.False(t, s.Solve(), backend)
	}
}

func TestSatisfiableAndModel(t *testing.T) {
	s, err := satsolver.NewSolver("minisat")
	require.NoError(t, err)
	x := s.NewVar(true, false)
	y := s.NewVar(true, false)
	// (x or y) and (not x or y) and (x or not y) forces x == y == true.
	s.AddClause([]core.Literal{x, y})
	s.AddClause([]core.Literal{core.Not(x), y})
	s.AddClause([]core.Literal{x, core.Not(y)})
	require.True(t, s.Solve())
	require.Equal(t, core.True, s.ModelValue(x))
	require.Equal(t, core.True, s.ModelValue(y))
}

func TestClearResetsVarsAndClauses(t *testing.T) {
	s, err := satsolver.NewSolver("minisat")
	require.NoError(t, err)
	x := s.NewVar(true, false)
	y := s.NewVar(true, false)
	s.AddClause([]core.Literal{x, y})
	s.AddClause([]core.Literal{core.Not(x)})
	require.True(t, s.Solve())
	require.Equal(t, core.True, s.ModelValue(y))

	s.Clear()
	require.Equal(t, 1, s.NVars())
	require.Equal(t, 1, s.NClauses())

	// The reserved TRUE literal is re-seeded; freshly minted variables
	// start renumbering from 2, independent of the discarded x and y.
	z := s.NewVar(true, false)
	require.Equal(t, core.Literal(2), z)
	s.AddClause([]core.Literal{core.Not(z)})
	require.True(t, s.Solve())
	require.Equal(t, core.False, s.ModelValue(z))
}

func TestEliminatePreservesSatisfiability(t *testing.T) {
	s, err := satsolver.NewSolver("minisatsimp")
	require.NoError(t, err)
	x := s.NewVar(true, false)
	y := s.NewVar(true, false)
	z := s.NewVar(true, false)
	s.SetFrozen(z, true)
	s.AddClause([]core.Literal{x, y})
	s.AddClause([]core.Literal{core.Not(x), z})
	s.AddClause([]core.Literal{core.Not(y), z})
	require.True(t, s.Solve())
	require.Equal(t, core.True, s.ModelValue(z))
}

func TestNVarsAndNClauses(t *testing.T) {
	s, err := satsolver.NewSolver("minisat")
	require.NoError(t, err)
	x := s.NewVar(true, false)
	y := s.NewVar(true, false)
	s.AddClause([]core.Literal{x, y})
	// NVars counts the reserved TRUE literal's variable too.
	require.Equal(t, 3, s.NVars())
	require.Equal(t, 1, s.NClauses())
}
