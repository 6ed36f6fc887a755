package satsolver

import "github.com/mmaroti/uasat-go/core"

// cdclSolver is a watched-literal CDCL solver over core.Literal. It
// backs both the "minisat" and "minisatsimp" profiles; simplify gates
// bounded variable elimination (before the first Solve and on Eliminate)
// and the freezing of decision variables in NewVar.
type cdclSolver struct {
	vars        []varState
	clauses     []*clause
	units       []core.Literal
	watches     map[int][]watcher
	trail       []core.Literal
	trailLim    []int
	qhead       int
	heur        *vsids
	simplify    bool
	elimRan     bool
	elimDisabled bool
	ok          bool
}

func newCDCL(simplify bool) *cdclSolver {
	s := &cdclSolver{
		watches:  make(map[int][]watcher),
		heur:     newVSIDS(),
		simplify: simplify,
		ok:       true,
	}
	s.seedReservedTrue()
	return s
}

// seedReservedTrue allocates variable 1 and asserts it as the unit
// clause {+1}, so core.True and core.False are ordinary literals of it
// from the very first user NewVar call onward. Re-run by Clear.
func (s *cdclSolver) seedReservedTrue() {
	s.vars = append(s.vars, varState{})
	s.heur.grow(len(s.vars))
	s.units = append(s.units, core.True)
	s.assign(core.True, 0, nil)
}

// NewVar allocates a variable. On "minisatsimp" a decision variable is
// frozen at allocation, so variable elimination never removes it.
func (s *cdclSolver) NewVar(decision, polarity bool) core.Literal {
	s.vars = append(s.vars, varState{decision: decision, polarity: polarity, frozen: s.simplify && decision})
	s.heur.grow(len(s.vars))
	return core.Literal(len(s.vars))
}

// attach installs a clause's watches, or records it as a unit / detects
// an immediate level-0 conflict.
func (s *cdclSolver) attach(lits []core.Literal) {
	if !s.ok {
		return
	}
	out := lits[:0:0]
	for _, l := range lits {
		if s.litValue(l) != core.False || s.vars[l.Var()-1].level > 0 {
			out = append(out, l)
		}
	}
	if len(out) == 0 {
		s.ok = false
		return
	}
	if len(out) == 1 {
		s.backtrack(0)
		l := out[0]
		s.units = append(s.units, l)
		if s.litValue(l) == core.False {
			s.ok = false
			return
		}
		if s.litValue(l) == core.Undef {
			s.assign(l, 0, nil)
			if confl := s.propagate(); confl != nil {
				s.ok = false
			}
		}
		return
	}
	c := &clause{lits: out}
	s.clauses = append(s.clauses, c)
	s.watches[litIndex(out[0])] = append(s.watches[litIndex(out[0])], watcher{c, out[1]})
	s.watches[litIndex(out[1])] = append(s.watches[litIndex(out[1])], watcher{c, out[0]})
}

// AddClause asserts lits and returns the sticky solvable flag.
func (s *cdclSolver) AddClause(lits []core.Literal) bool {
	cp := make([]core.Literal, len(lits))
	copy(cp, lits)
	s.attach(cp)
	return s.ok
}

// Solve runs CDCL search with Luby-scaled restarts until the asserted
// clauses are shown satisfiable or unsatisfiable. On "minisatsimp" the
// first call runs Eliminate before searching, per the backend contract.
func (s *cdclSolver) Solve() bool {
	if !s.ok {
		return false
	}
	if s.simplify && !s.elimRan && !s.elimDisabled {
		s.eliminateVars()
		s.elimRan = true
	}
	if !s.ok {
		return false
	}
	restartBase := 100
	restartIdx := 1
	for {
		budget := restartBase * luby(restartIdx)
		sat, conflict := s.search(budget)
		if conflict {
			s.ok = false
			return false
		}
		if sat {
			return true
		}
		restartIdx++
	}
}

// search runs propagate/decide/analyze until it exhausts its conflict
// budget (returns false, false to trigger a restart), proves
// unsatisfiability (false, true), or finds a full satisfying assignment
// (true, false).
func (s *cdclSolver) search(budget int) (sat bool, unsat bool) {
	s.backtrack(0)
	conflicts := 0
	for {
		confl := s.propagate()
		if confl != nil {
			if s.level() == 0 {
				return false, true
			}
			conflicts++
			s.heur.decayAll()
			learnt, backLevel := s.analyze(confl)
			s.backtrack(backLevel)
			if len(learnt) == 1 {
				s.assign(learnt[0], 0, nil)
			} else {
				lc := &clause{lits: learnt, learnt: true}
				s.clauses = append(s.clauses, lc)
				s.watches[litIndex(learnt[0])] = append(s.watches[litIndex(learnt[0])], watcher{lc, learnt[1]})
				s.watches[litIndex(learnt[1])] = append(s.watches[litIndex(learnt[1])], watcher{lc, learnt[0]})
				s.assign(learnt[0], backLevel, lc)
			}
			if conflicts >= budget {
				s.backtrack(0)
				return false, false
			}
			continue
		}

		next := s.heur.choose(s.vars)
		if next == core.Undef {
			return true, false
		}
		if !s.vars[next-1].polarity {
			next = core.Not(next)
		}
		s.trailLim = append(s.trailLim, len(s.trail))
		s.assign(next, s.level(), nil)
	}
}

func (s *cdclSolver) ModelValue(lit core.Literal) core.Literal {
	v := int(lit.Var())
	if v < 1 || v > len(s.vars) {
		return core.Undef
	}
	vs := &s.vars[v-1]
	if vs.value == core.Undef {
		return core.Undef
	}
	if vs.value == lit {
		return core.True
	}
	return core.False
}

func (s *cdclSolver) SetFrozen(v core.Literal, frozen bool) {
	i := int(v.Var())
	if i < 1 || i > len(s.vars) {
		return
	}
	s.vars[i-1].frozen = frozen
}

// Eliminate runs bounded variable elimination when the backend profile
// requests it; see preprocessor.go. It is a no-op on "minisat".
// turnOffElim disables it for every future call, including the implicit
// run at the first Solve.
func (s *cdclSolver) Eliminate(turnOffElim bool) {
	if turnOffElim {
		s.elimDisabled = true
		return
	}
	if !s.simplify || s.elimDisabled {
		return
	}
	s.eliminateVars()
	s.elimRan = true
}

// Clear discards every variable and clause this solver has accumulated
// and rebuilds it from scratch: NVars and NClauses drop back to the
// reserved TRUE literal and its unit clause, and every literal minted
// before the call is no longer valid to pass to this Solver.
func (s *cdclSolver) Clear() {
	s.vars = nil
	s.clauses = nil
	s.units = nil
	s.watches = make(map[int][]watcher)
	s.trail = nil
	s.trailLim = nil
	s.qhead = 0
	s.heur = newVSIDS()
	s.elimRan = false
	s.elimDisabled = false
	s.ok = true
	s.seedReservedTrue()
}

func (s *cdclSolver) NVars() int {
	return len(s.vars)
}

func (s *cdclSolver) NClauses() int {
	n := 0
	for _, c := range s.clauses {
		if !c.learnt {
			n++
		}
	}
	return n
}
