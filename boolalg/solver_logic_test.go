package boolalg_test

import (
	"testing"

	"github.com/mmaroti/uasat-go/boolalg"
	"github.com/mmaroti/uasat-go/core"
	"github.com/mmaroti/uasat-go/satsolver"
	"github.com/stretchr/testify/require"
)

func newSolverLogic(t *testing.T) (*boolalg.SolverLogic, satsolver.Solver) {
	t.Helper()
	s, err := satsolver.NewSolver("minisat")
	require.NoError(t, err)
	return boolalg.NewSolverLogic(s), s
}

func TestSolverLogicAndTseitinSoundness(t *testing.T) {
	l, s := newSolverLogic(t)
	x := l.NewLiteral(true, false)
	y := l.NewLiteral(true, false)
	c, err := l.And(x, y)
	require.NoError(t, err)

	s.AddClause([]core.Literal{c})
	require.True(t, s.Solve())
	require.Equal(t, core.True, s.ModelValue(x))
	require.Equal(t, core.True, s.ModelValue(y))
}

func TestSolverLogicClearResetsCache(t *testing.T) {
	l, s := newSolverLogic(t)
	x := l.NewLiteral(true, false)
	y := l.NewLiteral(true, false)
	_, err := l.And(x, y)
	require.NoError(t, err)

	l.Clear()
	require.Equal(t, 1, s.NVars())

	nx := l.NewLiteral(true, false)
	ny := l.NewLiteral(true, false)
	c, err := l.And(nx, ny)
	require.NoError(t, err)

	s.AddClause([]core.Literal{c})
	s.AddClause([]core.Literal{nx})
	require.True(t, s.Solve())
	require.Equal(t, core.True, s.ModelValue(ny))
}

func TestSolverLogicPeepholeShortCircuits(t *testing.T) {
	l, _ := newSolverLogic(t)
	x := l.NewLiteral(true, false)
	nvarsBefore := l.Solver().NVars()

	same, err := l.And(x, x)
	require.NoError(t, err)
	require.Equal(t, x, same)

	compl, err := l.And(x, core.Not(x))
	require.NoError(t, err)
	require.Equal(t, core.False, compl)

	require.Equal(t, nvarsBefore, l.Solver().NVars(), "peephole short-circuits must not allocate")
}

func TestSolverLogicCacheReusesAuxVar(t *testing.T) {
	l, _ := newSolverLogic(t)
	x := l.NewLiteral(true, false)
	y := l.NewLiteral(true, false)

	c1, err := l.And(x, y)
	require.NoError(t, err)
	c2, err := l.And(y, x)
	require.NoError(t, err)
	require.Equal(t, c1, c2)
}

func TestSolverLogicXorTruthTable(t *testing.T) {
	l, s := newSolverLogic(t)
	x := l.NewLiteral(true, false)
	y := l.NewLiteral(true, false)
	c, err := l.Add(x, y)
	require.NoError(t, err)

	s.AddClause([]core.Literal{x})
	s.AddClause([]core.Literal{y})
	require.True(t, s.Solve())
	require.Equal(t, core.False, s.ModelValue(c))
}

func TestSolverLogicFoldOneExactlyOne(t *testing.T) {
	l, s := newSolverLogic(t)
	bits := make([]core.Literal, 5)
	for i := range bits {
		bits[i] = l.NewLiteral(true, false)
	}
	one, err := l.FoldOne(bits)
	require.NoError(t, err)
	s.AddClause([]core.Literal{one})

	count := 0
	for s.Solve() {
		count++
		trueCount := 0
		clause := make([]core.Literal, 0, len(bits))
		for _, b := range bits {
			v := s.ModelValue(b)
			if v == core.True {
				trueCount++
				clause = append(clause, core.Not(b))
			} else {
				clause = append(clause, b)
			}
		}
		require.Equal(t, 1, trueCount)
		s.AddClause(clause)
		if count > len(bits) {
			t.Fatalf("enumerated more models than bits: %d", count)
		}
	}
	require.Equal(t, len(bits), count)
}

func TestSolverLogicJoinMismatch(t *testing.T) {
	l1, _ := newSolverLogic(t)
	l2, _ := newSolverLogic(t)
	_, err := l1.Join(l2)
	require.Error(t, err)
	require.True(t, core.IsKind(err, core.LogicMismatch))
}
