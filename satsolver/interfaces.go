// Package satsolver implements the CDCL backend that the logic layer
// encodes Tseitin clauses into. It exposes exactly the operations the
// algebra needs: allocate variables, add clauses incrementally, solve,
// and read back the model.
package satsolver

import "github.com/mmaroti/uasat-go/core"

// Solver is the external contract every backend profile implements. A
// Solver is not safe for concurrent use; callers serialize access to a
// single instance the same way they serialize access to a single Logic.
type Solver interface {
	// NewVar allocates a fresh variable and returns its positive literal.
	// decision marks whether the heuristic may branch on it directly
	// (false for a Tseitin auxiliary the solver should only ever derive
	// by propagation); polarity is the phase-saving seed for its first
	// decision.
	NewVar(decision, polarity bool) core.Literal

	// AddClause asserts the disjunction of lits and returns the sticky
	// solvable flag: once a clause makes the database unsatisfiable at
	// level 0, it returns false forever after, and further clauses are
	// accepted without effect.
	AddClause(lits []core.Literal) bool

	// Solve runs CDCL search over the clause database asserted so far
	// and reports satisfiability.
	Solve() bool

	// ModelValue reports the truth value the last satisfying Solve gave
	// lit, as a literal: True, False, or Undef if lit's variable was
	// never assigned (eliminated, or irrelevant to every clause). Adding a
	// unit clause after the Solve backtracks to level 0, after which only
	// level-0 values remain.
	ModelValue(lit core.Literal) core.Literal

	// SetFrozen protects a variable from being eliminated by Eliminate,
	// because the caller still intends to query or assert clauses over
	// it directly after simplification.
	SetFrozen(v core.Literal, frozen bool)

	// Eliminate runs bounded variable elimination and other preprocessing
	// over the current clause database; turnOffElim disables it on this
	// and every future call, leaving the database untouched. A no-op on
	// backends that don't simplify.
	Eliminate(turnOffElim bool)

	// Clear discards every variable and clause accumulated so far and
	// re-seeds the reserved TRUE literal, so NVars/NClauses return to
	// their just-constructed values. Literals minted before the call are
	// no longer valid to pass to this Solver afterward.
	Clear()

	// NVars reports the number of variables allocated so far.
	NVars() int

	// NClauses reports the number of asserted (non-learnt) clauses.
	NClauses() int
}

// NewSolver returns a fresh Solver for the named backend profile.
// "minisat" is a plain watched-literal CDCL solver; "minisatsimp" adds
// bounded variable elimination preprocessing, run before the first Solve
// and on Eliminate, with decision variables frozen at allocation. Any other
// name is a core.BackendUnavailable error.
func NewSolver(backend string) (Solver, error) {
	switch backend {
	case "minisat":
		return newCDCL(false), nil
	case "minisatsimp":
		return newCDCL(true), nil
	default:
		return nil, core.NewError(core.BackendUnavailable, "satsolver.NewSolver",
			"unknown backend "+backend)
	}
}
