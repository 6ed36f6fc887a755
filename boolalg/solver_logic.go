package boolalg

import (
	"github.com/mmaroti/uasat-go/core"
	"github.com/mmaroti/uasat-go/satsolver"
)

// gateOp tags which gate a cache entry memoizes.
type gateOp int

const (
	opAnd gateOp = iota
	opXor
	opMaj
)

type cacheKey struct {
	op      gateOp
	a, b, c core.Literal
}

// SolverLogic is the Tseitin encoder: every non-trivial gate first
// tries the peephole short-circuits from the Boolean truth table, then
// a hash-cons cache of already-encoded (op, operands) tuples, and only
// on a genuine miss allocates a fresh non-decision auxiliary variable
// and emits the defining clauses.
type SolverLogic struct {
	solver satsolver.Solver
	cache  map[cacheKey]core.Literal
}

// NewSolverLogic wraps a satsolver.Solver as a Logic.
func NewSolverLogic(s satsolver.Solver) *SolverLogic {
	return &SolverLogic{solver: s, cache: make(map[cacheKey]core.Literal)}
}

// Solver returns the backend this logic encodes into.
func (l *SolverLogic) Solver() satsolver.Solver {
	return l.solver
}

// Clear resets the underlying solver and discards every cached gate
// encoding: the auxiliary variables a stale cache entry would point to
// no longer exist once the solver's variable count is reset.
func (l *SolverLogic) Clear() {
	l.solver.Clear()
	l.cache = make(map[cacheKey]core.Literal)
}

// NewLiteral allocates a fresh variable through the underlying solver,
// for Tensor's variable constructor.
func (l *SolverLogic) NewLiteral(decision, polarity bool) core.Literal {
	return l.solver.NewVar(decision, polarity)
}

func (l *SolverLogic) validate(op string, x core.Literal) error {
	if x == core.Undef {
		return core.NewError(core.InvalidLiteral, op, "literal 0 is not allowed")
	}
	if int(x.Var()) > l.solver.NVars() {
		return core.NewError(core.InvalidLiteral, op, "literal outside the solver's allocated range")
	}
	return nil
}

func (l *SolverLogic) Not(x core.Literal) core.Literal {
	return core.Not(x)
}

func sorted2(a, b core.Literal) (core.Literal, core.Literal) {
	if a <= b {
		return a, b
	}
	return b, a
}

func (l *SolverLogic) And(a, b core.Literal) (core.Literal, error) {
	if err := l.validate("SolverLogic.And", a); err != nil {
		return core.Undef, err
	}
	if err := l.validate("SolverLogic.And", b); err != nil {
		return core.Undef, err
	}
	switch {
	case a == core.False || b == core.False:
		return core.False, nil
	case a == core.True:
		return b, nil
	case b == core.True:
		return a, nil
	case a == b:
		return a, nil
	case a == core.Not(b):
		return core.False, nil
	}
	lo, hi := sorted2(a, b)
	key := cacheKey{op: opAnd, a: lo, b: hi}
	if c, ok := l.cache[key]; ok {
		return c, nil
	}
	c := l.solver.NewVar(false, false)
	l.solver.AddClause([]core.Literal{a, core.Not(c)})
	l.solver.AddClause([]core.Literal{b, core.Not(c)})
	l.solver.AddClause([]core.Literal{core.Not(a), core.Not(b), c})
	l.cache[key] = c
	return c, nil
}

func (l *SolverLogic) Add(a, b core.Literal) (core.Literal, error) {
	if err := l.validate("SolverLogic.Add", a); err != nil {
		return core.Undef, err
	}
	if err := l.validate("SolverLogic.Add", b); err != nil {
		return core.Undef, err
	}
	switch {
	case a == b:
		return core.False, nil
	case a == core.Not(b):
		return core.True, nil
	case a == core.False:
		return b, nil
	case a == core.True:
		return core.Not(b), nil
	case b == core.False:
		return a, nil
	case b == core.True:
		return core.Not(a), nil
	}
	lo, hi := sorted2(a, b)
	key := cacheKey{op: opXor, a: lo, b: hi}
	if c, ok := l.cache[key]; ok {
		return c, nil
	}
	c := l.solver.NewVar(false, false)
	l.solver.AddClause([]core.Literal{a, b, core.Not(c)})
	l.solver.AddClause([]core.Literal{core.Not(a), b, c})
	l.solver.AddClause([]core.Literal{a, core.Not(b), c})
	l.solver.AddClause([]core.Literal{core.Not(a), core.Not(b), core.Not(c)})
	l.cache[key] = c
	return c, nil
}

func (l *SolverLogic) Maj(a, b, c core.Literal) (core.Literal, error) {
	if err := l.validate("SolverLogic.Maj", a); err != nil {
		return core.Undef, err
	}
	if err := l.validate("SolverLogic.Maj", b); err != nil {
		return core.Undef, err
	}
	if err := l.validate("SolverLogic.Maj", c); err != nil {
		return core.Undef, err
	}
	switch {
	case a == core.True:
		return l.Or(b, c)
	case a == core.False:
		return l.And(b, c)
	case b == core.True:
		return l.Or(a, c)
	case b == core.False:
		return l.And(a, c)
	case c == core.True:
		return l.Or(a, b)
	case c == core.False:
		return l.And(a, b)
	case a == b:
		return a, nil
	case a == core.Not(b):
		return c, nil
	case a == c:
		return a, nil
	case a == core.Not(c):
		return b, nil
	case b == c:
		return b, nil
	case b == core.Not(c):
		return a, nil
	}
	lits := [3]core.Literal{a, b, c}
	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			if lits[i] > lits[j] {
				lits[i], lits[j] = lits[j], lits[i]
			}
		}
	}
	key := cacheKey{op: opMaj, a: lits[0], b: lits[1], c: lits[2]}
	if d, ok := l.cache[key]; ok {
		return d, nil
	}
	d := l.solver.NewVar(false, false)
	l.solver.AddClause([]core.Literal{core.Not(a), core.Not(b), d})
	l.solver.AddClause([]core.Literal{core.Not(a), core.Not(c), d})
	l.solver.AddClause([]core.Literal{core.Not(b), core.Not(c), d})
	l.solver.AddClause([]core.Literal{a, b, core.Not(d)})
	l.solver.AddClause([]core.Literal{a, c, core.Not(d)})
	l.solver.AddClause([]core.Literal{b, c, core.Not(d)})
	l.cache[key] = d
	return d, nil
}

// Or, Leq, Equ and Iff are defined by identity rather than allocated
// directly, per the derivation fixed for every variant.
func (l *SolverLogic) Or(a, b core.Literal) (core.Literal, error) {
	r, err := l.And(core.Not(a), core.Not(b))
	if err != nil {
		return core.Undef, err
	}
	return core.Not(r), nil
}

func (l *SolverLogic) Leq(a, b core.Literal) (core.Literal, error) {
	r, err := l.And(a, core.Not(b))
	if err != nil {
		return core.Undef, err
	}
	return core.Not(r), nil
}

func (l *SolverLogic) Equ(a, b core.Literal) (core.Literal, error) {
	return l.Add(a, core.Not(b))
}

func (l *SolverLogic) Iff(a, b, c core.Literal) (core.Literal, error) {
	ab, err := l.And(a, b)
	if err != nil {
		return core.Undef, err
	}
	nac, err := l.And(core.Not(a), c)
	if err != nil {
		return core.Undef, err
	}
	return l.Or(ab, nac)
}

func (l *SolverLogic) FullAdder(a, b, cin core.Literal) (core.Literal, core.Literal, error) {
	s1, err := l.Add(a, b)
	if err != nil {
		return core.Undef, core.Undef, err
	}
	sum, err := l.Add(s1, cin)
	if err != nil {
		return core.Undef, core.Undef, err
	}
	cout, err := l.Maj(a, b, cin)
	if err != nil {
		return core.Undef, core.Undef, err
	}
	return sum, cout, nil
}

func (l *SolverLogic) FoldAll(xs []core.Literal) (core.Literal, error) {
	for _, x := range xs {
		if err := l.validate("SolverLogic.FoldAll", x); err != nil {
			return core.Undef, err
		}
	}
	norm, forced := normalize(xs, core.True, core.False)
	if forced {
		return core.False, nil
	}
	if len(norm) == 0 {
		return core.True, nil
	}
	if len(norm) == 1 {
		return norm[0], nil
	}
	d := l.solver.NewVar(false, false)
	for _, x := range norm {
		l.solver.AddClause([]core.Literal{x, core.Not(d)})
	}
	big := make([]core.Literal, 0, len(norm)+1)
	for _, x := range norm {
		big = append(big, core.Not(x))
	}
	big = append(big, d)
	l.solver.AddClause(big)
	return d, nil
}

func (l *SolverLogic) FoldAny(xs []core.Literal) (core.Literal, error) {
	for _, x := range xs {
		if err := l.validate("SolverLogic.FoldAny", x); err != nil {
			return core.Undef, err
		}
	}
	norm, forced := normalize(xs, core.False, core.True)
	if forced {
		return core.True, nil
	}
	if len(norm) == 0 {
		return core.False, nil
	}
	if len(norm) == 1 {
		return norm[0], nil
	}
	d := l.solver.NewVar(false, false)
	for _, x := range norm {
		l.solver.AddClause([]core.Literal{core.Not(x), d})
	}
	big := make([]core.Literal, 0, len(norm)+1)
	big = append(big, norm...)
	big = append(big, core.Not(d))
	l.solver.AddClause(big)
	return d, nil
}

func (l *SolverLogic) FoldSum(xs []core.Literal) (core.Literal, error) {
	acc := core.False
	for _, x := range xs {
		var err error
		if acc, err = l.Add(acc, x); err != nil {
			return core.Undef, err
		}
	}
	return acc, nil
}

func (l *SolverLogic) FoldOne(xs []core.Literal) (core.Literal, error) {
	min1, min2 := core.False, core.False
	for _, x := range xs {
		if err := l.validate("SolverLogic.FoldOne", x); err != nil {
			return core.Undef, err
		}
		and1, err := l.And(min1, x)
		if err != nil {
			return core.Undef, err
		}
		if min2, err = l.Or(min2, and1); err != nil {
			return core.Undef, err
		}
		if min1, err = l.Or(min1, x); err != nil {
			return core.Undef, err
		}
	}
	return l.And(min1, core.Not(min2))
}

func (l *SolverLogic) Join(other Logic) (Logic, error) {
	if other.IsBoolean() {
		return l, nil
	}
	if os, ok := other.(*SolverLogic); ok && os == l {
		return l, nil
	}
	return nil, core.NewError(core.LogicMismatch, "Logic.Join", "cannot combine two distinct Solver logics")
}

func (l *SolverLogic) IsBoolean() bool {
	return false
}
