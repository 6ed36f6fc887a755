package satsolver

import "github.com/mmaroti/uasat-go/core"

// clause is a learnt or asserted disjunction. lits[0] and lits[1] are the
// two watched literals; unit clauses and the empty clause never reach the
// watch lists.
type clause struct {
	lits   []core.Literal
	learnt bool
	// activity is not updated by search, and learnt clauses are never
	// removed from the database.
	activity float64
}

// watcher records that clause c is watched on one of its first two
// literals; blocker is the other watched literal, cached so propagation
// can often skip dereferencing c entirely.
type watcher struct {
	c       *clause
	blocker core.Literal
}

// varState is the per-variable search state: current assignment (as a
// literal, or core.Undef if unassigned), the decision level it was
// assigned at, the clause that implied it (nil for a decision), and
// whether it is protected from variable elimination.
type varState struct {
	value  core.Literal
	level  int
	reason *clause
	frozen bool
	// polarity is the value this variable was last assigned, used as the
	// phase-saving hint for its next decision.
	polarity bool
	// decision is false for Tseitin auxiliary variables: the heuristic
	// never branches on them, only propagation ever assigns them.
	decision   bool
	eliminated bool
}

// litIndex maps a literal to a dense array index, storing positive and
// negative literals of variable v at 2*(v-1) and 2*(v-1)+1.
func litIndex(l core.Literal) int {
	v := int(l.Var()) - 1
	if l > 0 {
		return 2 * v
	}
	return 2*v + 1
}
