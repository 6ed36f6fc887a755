package satsolver

import "github.com/mmaroti/uasat-go/core"

// eliminateVars performs bounded variable elimination: for each
// unfrozen variable not appearing in any learnt clause, it replaces the
// clauses mentioning that variable with their pairwise resolvents,
// provided doing so does not increase the clause count. This is the
// "minisatsimp" profile's preprocessing pass; it runs before the first
// Solve and on each Eliminate call, never interleaved with search.
func (s *cdclSolver) eliminateVars() {
	inLearnt := make(map[int]bool)
	for _, c := range s.clauses {
		if !c.learnt {
			continue
		}
		for _, l := range c.lits {
			inLearnt[int(l.Var())] = true
		}
	}

	for v := 1; v <= len(s.vars); v++ {
		vs := &s.vars[v-1]
		if vs.frozen || vs.eliminated || inLearnt[v] || vs.value != core.Undef {
			continue
		}
		var cs []*clause
		for _, c := range s.clauses {
			if !c.learnt && (clauseHas(c, core.Literal(v)) || clauseHas(c, core.Literal(-v))) {
				cs = append(cs, c)
			}
		}
		if len(cs) == 0 {
			continue
		}
		var pos, neg []*clause
		for _, c := range cs {
			if clauseHas(c, core.Literal(v)) {
				pos = append(pos, c)
			} else {
				neg = append(neg, c)
			}
		}
		if len(pos) == 0 || len(neg) == 0 {
			// Pure literal: every clause agrees on v's polarity, so v can
			// be fixed without resolving anything.
			val := core.Literal(v)
			if len(pos) == 0 {
				val = core.Not(val)
			}
			s.assign(val, 0, nil)
			vs.eliminated = true
			s.removeClauses(cs)
			continue
		}
		if len(pos)*len(neg) > len(pos)+len(neg) {
			continue
		}
		var resolvents [][]core.Literal
		for _, cp := range pos {
			for _, cn := range neg {
				r, tautology := resolve(cp, cn, v)
				if tautology {
					continue
				}
				resolvents = append(resolvents, r)
			}
		}
		s.removeClauses(cs)
		vs.eliminated = true
		for _, r := range resolvents {
			s.attach(r)
		}
	}
}

func clauseHas(c *clause, v core.Literal) bool {
	for _, l := range c.lits {
		if l == v {
			return true
		}
	}
	return false
}

// resolve computes the resolvent of two clauses on variable v, dropping
// the clause and reporting tautology if it would contain both a literal
// and its negation.
func resolve(a, b *clause, v int) ([]core.Literal, bool) {
	seen := make(map[core.Literal]bool)
	var out []core.Literal
	add := func(l core.Literal) bool {
		if int(l.Var()) == v {
			return true
		}
		if seen[core.Not(l)] {
			return false
		}
		if !seen[l] {
			seen[l] = true
			out = append(out, l)
		}
		return true
	}
	for _, l := range a.lits {
		if !add(l) {
			return nil, true
		}
	}
	for _, l := range b.lits {
		if !add(l) {
			return nil, true
		}
	}
	return out, false
}

// removeClauses deletes cs from the clause database and their watches.
func (s *cdclSolver) removeClauses(cs []*clause) {
	dead := make(map[*clause]bool, len(cs))
	for _, c := range cs {
		dead[c] = true
	}
	kept := s.clauses[:0]
	for _, c := range s.clauses {
		if !dead[c] {
			kept = append(kept, c)
		}
	}
	s.clauses = kept
	for lit, ws := range s.watches {
		filtered := ws[:0]
		for _, w := range ws {
			if !dead[w.c] {
				filtered = append(filtered, w)
			}
		}
		s.watches[lit] = filtered
	}
}
