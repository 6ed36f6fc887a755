// Package boolalg implements the Logic abstraction: a uniform gate
// interface with two concrete variants, a stateless Boolean evaluator
// and a Solver-backed Tseitin encoder, unified so tensor expressions
// can be written once and run under either.
package boolalg

import "github.com/mmaroti/uasat-go/core"

// Logic is the gate interface every variant implements. Every method
// that can fail returns a *core.Error; Not never fails, matching the
// pure, total negation of the underlying literal encoding.
type Logic interface {
	Not(l core.Literal) core.Literal

	And(a, b core.Literal) (core.Literal, error)
	Or(a, b core.Literal) (core.Literal, error)
	Add(a, b core.Literal) (core.Literal, error) // xor
	Leq(a, b core.Literal) (core.Literal, error)
	Equ(a, b core.Literal) (core.Literal, error)
	Maj(a, b, c core.Literal) (core.Literal, error)
	Iff(a, b, c core.Literal) (core.Literal, error)
	FullAdder(a, b, cin core.Literal) (sum, cout core.Literal, err error)

	FoldAll(xs []core.Literal) (core.Literal, error)
	FoldAny(xs []core.Literal) (core.Literal, error)
	FoldSum(xs []core.Literal) (core.Literal, error)
	FoldOne(xs []core.Literal) (core.Literal, error)

	// Join returns the logic that results from combining a tensor bound
	// to this logic with one bound to other: the non-Boolean variant if
	// exactly one side is Boolean, this logic if the two are the same
	// Solver instance, or a LogicMismatch error.
	Join(other Logic) (Logic, error)

	// IsBoolean reports whether this is the stateless Boolean evaluator.
	IsBoolean() bool
}

// normalize filters xs for a fold over identity/absorbing constants,
// deduplicating literals and short-circuiting as soon as the absorbing
// value is forced (either literally present, or because a literal and
// its negation both appear, which is equivalent for fold_all/fold_any).
func normalize(xs []core.Literal, identity, absorbing core.Literal) (out []core.Literal, forced bool) {
	seen := make(map[core.Literal]bool, len(xs))
	for _, x := range xs {
		if x == identity {
			continue
		}
		if x == absorbing {
			return nil, true
		}
		if seen[core.Not(x)] {
			return nil, true
		}
		if !seen[x] {
			seen[x] = true
			out = append(out, x)
		}
	}
	return out, false
}
