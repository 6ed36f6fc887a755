// Package domain holds the illustrative consumers built entirely on
// top of boolalg/shape/tensor: abstract sets and groups, the symmetric
// group, binary bit-vector addition, and the clone of all operations
// on a finite set. None of these allocate anything the tensor layer
// doesn't already expose; they exist to exercise it the way a user of
// the algebra would.
package domain

import (
	"github.com/mmaroti/uasat-go/boolalg"
	"github.com/mmaroti/uasat-go/core"
	"github.com/mmaroti/uasat-go/satsolver"
	"github.com/mmaroti/uasat-go/shape"
	"github.com/mmaroti/uasat-go/tensor"
)

// Set is the membership contract every domain helper built on a single
// shape satisfies: elements are tensors of Shape(), and Contains tells
// whether a candidate tensor is one of them.
type Set interface {
	Shape() shape.Shape
	Contains(elem tensor.Tensor) (tensor.Tensor, error)
}

// AbstractSet wraps a shape and a membership predicate supplied by the
// caller, for ad hoc sets that don't warrant their own type.
type AbstractSet struct {
	sh       shape.Shape
	contains func(tensor.Tensor) (tensor.Tensor, error)
}

// NewAbstractSet builds a Set from an explicit membership predicate.
func NewAbstractSet(sh shape.Shape, contains func(tensor.Tensor) (tensor.Tensor, error)) *AbstractSet {
	return &AbstractSet{sh: sh, contains: contains}
}

func (s *AbstractSet) Shape() shape.Shape { return s.sh }

func (s *AbstractSet) Contains(elem tensor.Tensor) (tensor.Tensor, error) {
	return s.contains(elem)
}

// Equals tests whether elem1 and elem2 denote the same element: they
// are equal iff every entry of their elementwise equivalence holds, so
// it is the logical equivalence flattened and and-reduced to a scalar.
func Equals(sh shape.Shape, elem1, elem2 tensor.Tensor) (tensor.Tensor, error) {
	eq, err := elem1.Equ(elem2)
	if err != nil {
		return tensor.Tensor{}, err
	}
	flat, err := shape.FromDims([]int{sh.Extent()})
	if err != nil {
		return tensor.Tensor{}, err
	}
	reshaped, err := eq.Reshape(sh.Rank(), flat)
	if err != nil {
		return tensor.Tensor{}, err
	}
	return reshaped.FoldAll()
}

// newEnumerationSolver allocates a fresh solver and logic dedicated to
// one enumeration loop: enumeration never shares variables with the
// caller's own Solver.
func newEnumerationSolver(backend string) (*boolalg.SolverLogic, error) {
	s, err := satsolver.NewSolver(backend)
	if err != nil {
		return nil, err
	}
	return boolalg.NewSolverLogic(s), nil
}

// blockModel appends the clause that excludes elem's current model from
// every subsequent solve: at least one of elem's literals must disagree
// with the value model assigned it. Because model's entries are the
// Boolean constants TRUE/FALSE, logic_add(elem, model) peephole-resolves
// to plain literals without allocating any new variable.
func blockModel(solver satsolver.Solver, elem, model tensor.Tensor) error {
	diff, err := elem.Add(model)
	if err != nil {
		return err
	}
	solver.AddClause(diff.ExtendClause(nil))
	return nil
}

// FindElements enumerates every element of set by repeated solve and
// blocking-clause exclusion, stacking the models found along a new
// leading axis. Terminates when the enumeration solver reports unsat.
func FindElements(set Set, backend string) (tensor.Tensor, error) {
	logic, err := newEnumerationSolver(backend)
	if err != nil {
		return tensor.Tensor{}, err
	}
	solver := logic.Solver()
	elem := tensor.Variable(logic, set.Shape(), true, false)
	containsT, err := set.Contains(elem)
	if err != nil {
		return tensor.Tensor{}, err
	}
	scalar, err := containsT.GetScalar()
	if err != nil {
		return tensor.Tensor{}, err
	}
	solver.AddClause([]core.Literal{scalar})

	var elems []tensor.Tensor
	for solver.Solve() {
		model, err := elem.GetSolution(solver)
		if err != nil {
			return tensor.Tensor{}, err
		}
		elems = append(elems, model)
		if err := blockModel(solver, elem, model); err != nil {
			return tensor.Tensor{}, err
		}
	}
	if len(elems) == 0 {
		// Shape forbids a zero extent along any axis, so an empty
		// enumeration has no Tensor representation; return the zero
		// value and let the caller treat it as "no elements".
		return tensor.Tensor{}, nil
	}
	return tensor.Stack(elems)
}

// FindCardinality counts set's elements the same way FindElements
// enumerates them, without materializing the models into a tensor.
func FindCardinality(set Set, backend string) (int, error) {
	logic, err := newEnumerationSolver(backend)
	if err != nil {
		return 0, err
	}
	solver := logic.Solver()
	elem := tensor.Variable(logic, set.Shape(), true, false)
	containsT, err := set.Contains(elem)
	if err != nil {
		return 0, err
	}
	scalar, err := containsT.GetScalar()
	if err != nil {
		return 0, err
	}
	solver.AddClause([]core.Literal{scalar})

	count := 0
	for solver.Solve() {
		count++
		model, err := elem.GetSolution(solver)
		if err != nil {
			return 0, err
		}
		if err := blockModel(solver, elem, model); err != nil {
			return 0, err
		}
	}
	return count, nil
}
