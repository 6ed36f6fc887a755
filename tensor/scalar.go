package tensor

import (
	"github.com/mmaroti/uasat-go/boolalg"
	"github.com/mmaroti/uasat-go/core"
	"github.com/mmaroti/uasat-go/satsolver"
)

// GetScalar returns the sole literal of an extent-1 tensor. Fails
// NotScalar otherwise.
func (t Tensor) GetScalar() (core.Literal, error) {
	if t.shape.Extent() != 1 {
		return core.Undef, core.NewError(core.NotScalar, "Tensor.GetScalar", "tensor extent is not 1")
	}
	return t.storage[0], nil
}

// GetSolution requires self to be bound to solver and returns a
// Boolean-logic tensor of the same shape holding solver's model value
// for each entry.
func (t Tensor) GetSolution(solver satsolver.Solver) (Tensor, error) {
	sl, ok := t.logic.(*boolalg.SolverLogic)
	if !ok || sl.Solver() != solver {
		return Tensor{}, core.NewError(core.LogicMismatch, "Tensor.GetSolution",
			"tensor is not bound to the given solver")
	}
	storage := make([]core.Literal, len(t.storage))
	for i, l := range t.storage {
		storage[i] = solver.ModelValue(l)
	}
	return Tensor{logic: boolalg.Boolean, shape: t.shape, storage: storage}, nil
}

// ExtendClause appends every literal of self's storage to out, used to
// build the blocking clause that excludes the current model during
// enumeration.
func (t Tensor) ExtendClause(out []core.Literal) []core.Literal {
	return append(out, t.storage...)
}
