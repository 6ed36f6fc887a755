package satsolver

import "github.com/mmaroti/uasat-go/core"

// level returns the current decision level: the number of decisions
// made since the last backtrack to level 0.
func (s *cdclSolver) level() int {
	return len(s.trailLim)
}

func (s *cdclSolver) litValue(l core.Literal) core.Literal {
	vs := &s.vars[l.Var()-1]
	if vs.value == core.Undef {
		return core.Undef
	}
	if vs.value == l {
		return core.True
	}
	return core.False
}

// assign records l as true at the given decision level, with reason nil
// for a decision or the propagating clause for an implication.
func (s *cdclSolver) assign(l core.Literal, level int, reason *clause) {
	vs := &s.vars[l.Var()-1]
	vs.value = l
	vs.level = level
	vs.reason = reason
	vs.polarity = l > 0
	s.trail = append(s.trail, l)
}

// unassign clears variable v's value, restoring it to Undef so it can
// be decided or propagated again.
func (s *cdclSolver) unassign(v int) {
	vs := &s.vars[v-1]
	vs.value = core.Undef
	vs.reason = nil
}

// backtrack undoes every assignment made at a decision level beyond
// level, reinstating them as candidates for the heuristic.
func (s *cdclSolver) backtrack(level int) {
	if s.level() <= level {
		return
	}
	target := s.trailLim[level]
	for i := len(s.trail) - 1; i >= target; i-- {
		s.unassign(int(s.trail[i].Var()))
	}
	s.trail = s.trail[:target]
	s.trailLim = s.trailLim[:level]
	s.qhead = len(s.trail)
}

// propagate runs unit propagation via the two-watched-literal scheme
// until fixpoint, returning the clause that went empty, or nil if the
// queue drained without conflict.
func (s *cdclSolver) propagate() *clause {
	for s.qhead < len(s.trail) {
		p := s.trail[s.qhead]
		s.qhead++
		falseLit := core.Not(p)
		idx := litIndex(falseLit)
		ws := s.watches[idx]
		keep := ws[:0]
		for i := 0; i < len(ws); i++ {
			w := ws[i]
			if s.litValue(w.blocker) == core.True {
				keep = append(keep, w)
				continue
			}
			c := w.c
			if c.lits[0] == falseLit {
				c.lits[0], c.lits[1] = c.lits[1], c.lits[0]
			}
			first := c.lits[0]
			if first != w.blocker && s.litValue(first) == core.True {
				keep = append(keep, watcher{c, first})
				continue
			}
			foundNew := false
			for k := 2; k < len(c.lits); k++ {
				if s.litValue(c.lits[k]) != core.False {
					c.lits[1], c.lits[k] = c.lits[k], c.lits[1]
					nidx := litIndex(c.lits[1])
					s.watches[nidx] = append(s.watches[nidx], watcher{c, first})
					foundNew = true
					break
				}
			}
			if foundNew {
				continue
			}
			keep = append(keep, watcher{c, first})
			if s.litValue(first) == core.False {
				s.watches[idx] = append(keep, ws[i+1:]...)
				s.qhead = len(s.trail)
				return c
			}
			s.assign(first, s.level(), c)
		}
		s.watches[idx] = keep
	}
	return nil
}

// analyze walks the implication graph from a conflicting clause back to
// its first unique implication point, producing a learnt clause whose
// first literal is the asserting UIP literal and whose second literal
// (if any) is at the backtrack level to jump to.
func (s *cdclSolver) analyze(confl *clause) ([]core.Literal, int) {
	seen := make([]bool, len(s.vars))
	learnt := []core.Literal{core.Undef}
	idx := len(s.trail) - 1
	pathC := 0
	var p core.Literal
	c := confl
	for {
		for _, q := range c.lits {
			if q == p {
				continue
			}
			v := int(q.Var())
			if seen[v-1] {
				continue
			}
			vs := &s.vars[v-1]
			if vs.level == 0 {
				continue
			}
			seen[v-1] = true
			s.heur.bump(v - 1)
			if vs.level == s.level() {
				pathC++
			} else {
				learnt = append(learnt, q)
			}
		}
		for !seen[int(s.trail[idx].Var())-1] {
			idx--
		}
		p = s.trail[idx]
		seen[int(p.Var())-1] = false
		pathC--
		idx--
		if pathC == 0 {
			break
		}
		c = s.vars[int(p.Var())-1].reason
	}
	learnt[0] = core.Not(p)

	level := 0
	if len(learnt) > 1 {
		maxI := 1
		for i := 2; i < len(learnt); i++ {
			if s.vars[int(learnt[i].Var())-1].level > s.vars[int(learnt[maxI].Var())-1].level {
				maxI = i
			}
		}
		learnt[1], learnt[maxI] = learnt[maxI], learnt[1]
		level = s.vars[int(learnt[1].Var())-1].level
	}
	return learnt, level
}
