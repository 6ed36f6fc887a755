package domain

import (
	"fmt"

	"github.com/mmaroti/uasat-go/boolalg"
	"github.com/mmaroti/uasat-go/core"
	"github.com/mmaroti/uasat-go/satsolver"
	"github.com/mmaroti/uasat-go/tensor"
)

// Group is an AbstractSet with the group operations layered on top.
// Implementations are expressed purely through tensor/boolalg, so they
// run identically over the Boolean evaluator or a Solver encoding.
type Group interface {
	Set
	Equals(elem1, elem2 tensor.Tensor) (tensor.Tensor, error)
	Identity() (tensor.Tensor, error)
	Inverse(elem tensor.Tensor) (tensor.Tensor, error)
	Product(elem1, elem2 tensor.Tensor) (tensor.Tensor, error)
}

// AxiomReport is the outcome of TestAxioms: each field is true when the
// corresponding axiom held for every element of the group's shape, and
// Counterexamples carries the flattened bits of the first violation
// found for a failing field, for diagnostics.
type AxiomReport struct {
	ClosedUnderInverse bool
	ClosedUnderProduct bool
	LeftIdentity       bool
	LeftInverse        bool
	Associative        bool

	Counterexamples map[string][]bool
}

// OK reports whether every axiom held with no counter-example.
func (r *AxiomReport) OK() bool {
	return r.ClosedUnderInverse && r.ClosedUnderProduct &&
		r.LeftIdentity && r.LeftInverse && r.Associative
}

func flattenModel(t tensor.Tensor) []bool {
	storage := t.Storage()
	out := make([]bool, len(storage))
	for i, l := range storage {
		out[i] = l == core.True
	}
	return out
}

// negatedImplication builds the scalar "not (premise -> conclusion)"
// literal used by every
// axiom query below: each check asserts the negation of a universally
// quantified implication and looks for a satisfying (i.e. violating)
// assignment of the free element variables.
func negatedImplication(premise, conclusion tensor.Tensor) (core.Literal, error) {
	impl, err := premise.Leq(conclusion)
	if err != nil {
		return core.Undef, err
	}
	return impl.Not().GetScalar()
}

// TestAxioms checks closure under inverse and product, left identity,
// left inverse, and associativity, each as an independent SAT query
// over g's own Solver-backed shape: if the query is satisfiable, the
// model is a counter-example to the axiom and the corresponding field
// of the report is false. One Solver is reused across the five checks,
// Clear()'d between them so each query starts from an empty clause
// database over freshly numbered variables.
func TestAxioms(g Group, backend string) (*AxiomReport, error) {
	backendSolver, err := satsolver.NewSolver(backend)
	if err != nil {
		return nil, err
	}
	logic := boolalg.NewSolverLogic(backendSolver)
	report := &AxiomReport{
		ClosedUnderInverse: true, ClosedUnderProduct: true,
		LeftIdentity: true, LeftInverse: true, Associative: true,
	}

	check := func(name string, build func() (core.Literal, []tensor.Tensor, error)) error {
		logic.Clear()
		lit, vars, err := build()
		if err != nil {
			return err
		}
		backendSolver.AddClause([]core.Literal{lit})
		if backendSolver.Solve() {
			setAxiomFailed(report, name)
			if report.Counterexamples == nil {
				report.Counterexamples = make(map[string][]bool)
			}
			for i, v := range vars {
				model, err := v.GetSolution(backendSolver)
				if err != nil {
					return err
				}
				key := name
				if len(vars) > 1 {
					key = fmt.Sprintf("%s[%d]", name, i)
				}
				report.Counterexamples[key] = flattenModel(model)
			}
		}
		return nil
	}

	if err := check("closed_under_inverse", func() (core.Literal, []tensor.Tensor, error) {
		elem := tensor.Variable(logic, g.Shape(), true, false)
		inv, err := g.Inverse(elem)
		if err != nil {
			return 0, nil, err
		}
		c1, err := g.Contains(elem)
		if err != nil {
			return 0, nil, err
		}
		c2, err := g.Contains(inv)
		if err != nil {
			return 0, nil, err
		}
		lit, err := negatedImplication(c1, c2)
		return lit, []tensor.Tensor{elem}, err
	}); err != nil {
		return nil, err
	}

	if err := check("closed_under_product", func() (core.Literal, []tensor.Tensor, error) {
		e1 := tensor.Variable(logic, g.Shape(), true, false)
		e2 := tensor.Variable(logic, g.Shape(), true, false)
		prod, err := g.Product(e1, e2)
		if err != nil {
			return 0, nil, err
		}
		c1, err := g.Contains(e1)
		if err != nil {
			return 0, nil, err
		}
		c2, err := g.Contains(e2)
		if err != nil {
			return 0, nil, err
		}
		both, err := c1.And(c2)
		if err != nil {
			return 0, nil, err
		}
		cp, err := g.Contains(prod)
		if err != nil {
			return 0, nil, err
		}
		lit, err := negatedImplication(both, cp)
		return lit, []tensor.Tensor{e1, e2}, err
	}); err != nil {
		return nil, err
	}

	if err := check("left_identity", func() (core.Literal, []tensor.Tensor, error) {
		elem := tensor.Variable(logic, g.Shape(), true, false)
		id, err := g.Identity()
		if err != nil {
			return 0, nil, err
		}
		prod, err := g.Product(id, elem)
		if err != nil {
			return 0, nil, err
		}
		eq, err := g.Equals(prod, elem)
		if err != nil {
			return 0, nil, err
		}
		c, err := g.Contains(elem)
		if err != nil {
			return 0, nil, err
		}
		lit, err := negatedImplication(c, eq)
		return lit, []tensor.Tensor{elem}, err
	}); err != nil {
		return nil, err
	}

	if err := check("left_inverse", func() (core.Literal, []tensor.Tensor, error) {
		elem := tensor.Variable(logic, g.Shape(), true, false)
		inv, err := g.Inverse(elem)
		if err != nil {
			return 0, nil, err
		}
		prod, err := g.Product(inv, elem)
		if err != nil {
			return 0, nil, err
		}
		id, err := g.Identity()
		if err != nil {
			return 0, nil, err
		}
		eq, err := g.Equals(prod, id)
		if err != nil {
			return 0, nil, err
		}
		c, err := g.Contains(elem)
		if err != nil {
			return 0, nil, err
		}
		lit, err := negatedImplication(c, eq)
		return lit, []tensor.Tensor{elem}, err
	}); err != nil {
		return nil, err
	}

	if err := check("associative", func() (core.Literal, []tensor.Tensor, error) {
		e1 := tensor.Variable(logic, g.Shape(), true, false)
		e2 := tensor.Variable(logic, g.Shape(), true, false)
		e3 := tensor.Variable(logic, g.Shape(), true, false)
		p12, err := g.Product(e1, e2)
		if err != nil {
			return 0, nil, err
		}
		left, err := g.Product(p12, e3)
		if err != nil {
			return 0, nil, err
		}
		p23, err := g.Product(e2, e3)
		if err != nil {
			return 0, nil, err
		}
		right, err := g.Product(e1, p23)
		if err != nil {
			return 0, nil, err
		}
		eq, err := g.Equals(left, right)
		if err != nil {
			return 0, nil, err
		}
		c1, err := g.Contains(e1)
		if err != nil {
			return 0, nil, err
		}
		c2, err := g.Contains(e2)
		if err != nil {
			return 0, nil, err
		}
		c3, err := g.Contains(e3)
		if err != nil {
			return 0, nil, err
		}
		all, err := c1.And(c2)
		if err != nil {
			return 0, nil, err
		}
		if all, err = all.And(c3); err != nil {
			return 0, nil, err
		}
		lit, err := negatedImplication(all, eq)
		return lit, []tensor.Tensor{e1, e2, e3}, err
	}); err != nil {
		return nil, err
	}

	return report, nil
}

func setAxiomFailed(r *AxiomReport, name string) {
	switch name {
	case "closed_under_inverse":
		r.ClosedUnderInverse = false
	case "closed_under_product":
		r.ClosedUnderProduct = false
	case "left_identity":
		r.LeftIdentity = false
	case "left_inverse":
		r.LeftInverse = false
	case "associative":
		r.Associative = false
	}
}
