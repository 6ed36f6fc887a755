package boolalg

import "github.com/mmaroti/uasat-go/core"

// boolean is the stateless two-valued evaluator. It has no fields
// because its only state is the literal values it's handed; every
// method is a pure function of its arguments.
type boolean struct{}

// Boolean is the singleton Boolean evaluator logic.
var Boolean Logic = boolean{}

// NewBoolean returns the Boolean evaluator logic.
func NewBoolean() Logic {
	return boolean{}
}

func validateBoolLit(op string, l core.Literal) error {
	if l != core.True && l != core.False {
		return core.NewError(core.InvalidLiteral, op, "Boolean logic requires a literal in {-1,+1}")
	}
	return nil
}

func toBool(l core.Literal) bool {
	return l == core.True
}

func fromBool(b bool) core.Literal {
	if b {
		return core.True
	}
	return core.False
}

func (boolean) Not(l core.Literal) core.Literal {
	return core.Not(l)
}

func (b boolean) And(a, c core.Literal) (core.Literal, error) {
	if err := validateBoolLit("Boolean.And", a); err != nil {
		return core.Undef, err
	}
	if err := validateBoolLit("Boolean.And", c); err != nil {
		return core.Undef, err
	}
	return fromBool(toBool(a) && toBool(c)), nil
}

func (b boolean) Or(a, c core.Literal) (core.Literal, error) {
	if err := validateBoolLit("Boolean.Or", a); err != nil {
		return core.Undef, err
	}
	if err := validateBoolLit("Boolean.Or", c); err != nil {
		return core.Undef, err
	}
	return fromBool(toBool(a) || toBool(c)), nil
}

func (b boolean) Add(a, c core.Literal) (core.Literal, error) {
	if err := validateBoolLit("Boolean.Add", a); err != nil {
		return core.Undef, err
	}
	if err := validateBoolLit("Boolean.Add", c); err != nil {
		return core.Undef, err
	}
	return fromBool(toBool(a) != toBool(c)), nil
}

func (b boolean) Leq(a, c core.Literal) (core.Literal, error) {
	if err := validateBoolLit("Boolean.Leq", a); err != nil {
		return core.Undef, err
	}
	if err := validateBoolLit("Boolean.Leq", c); err != nil {
		return core.Undef, err
	}
	return fromBool(!toBool(a) || toBool(c)), nil
}

func (b boolean) Equ(a, c core.Literal) (core.Literal, error) {
	if err := validateBoolLit("Boolean.Equ", a); err != nil {
		return core.Undef, err
	}
	if err := validateBoolLit("Boolean.Equ", c); err != nil {
		return core.Undef, err
	}
	return fromBool(toBool(a) == toBool(c)), nil
}

func (b boolean) Maj(a, c, d core.Literal) (core.Literal, error) {
	for _, l := range [3]core.Literal{a, c, d} {
		if err := validateBoolLit("Boolean.Maj", l); err != nil {
			return core.Undef, err
		}
	}
	votes := 0
	for _, l := range [3]core.Literal{a, c, d} {
		if toBool(l) {
			votes++
		}
	}
	return fromBool(votes >= 2), nil
}

func (b boolean) Iff(a, c, d core.Literal) (core.Literal, error) {
	for _, l := range [3]core.Literal{a, c, d} {
		if err := validateBoolLit("Boolean.Iff", l); err != nil {
			return core.Undef, err
		}
	}
	if toBool(a) {
		return c, nil
	}
	return d, nil
}

func (b boolean) FullAdder(a, c, cin core.Literal) (core.Literal, core.Literal, error) {
	sum, err := b.Add(a, c)
	if err != nil {
		return core.Undef, core.Undef, err
	}
	sum, err = b.Add(sum, cin)
	if err != nil {
		return core.Undef, core.Undef, err
	}
	cout, err := b.Maj(a, c, cin)
	if err != nil {
		return core.Undef, core.Undef, err
	}
	return sum, cout, nil
}

func (b boolean) FoldAll(xs []core.Literal) (core.Literal, error) {
	acc := core.True
	for _, x := range xs {
		var err error
		if acc, err = b.And(acc, x); err != nil {
			return core.Undef, err
		}
	}
	return acc, nil
}

func (b boolean) FoldAny(xs []core.Literal) (core.Literal, error) {
	acc := core.False
	for _, x := range xs {
		var err error
		if acc, err = b.Or(acc, x); err != nil {
			return core.Undef, err
		}
	}
	return acc, nil
}

func (b boolean) FoldSum(xs []core.Literal) (core.Literal, error) {
	acc := core.False
	for _, x := range xs {
		var err error
		if acc, err = b.Add(acc, x); err != nil {
			return core.Undef, err
		}
	}
	return acc, nil
}

func (b boolean) FoldOne(xs []core.Literal) (core.Literal, error) {
	min1, min2 := core.False, core.False
	for _, x := range xs {
		if err := validateBoolLit("Boolean.FoldOne", x); err != nil {
			return core.Undef, err
		}
		and1, err := b.And(min1, x)
		if err != nil {
			return core.Undef, err
		}
		if min2, err = b.Or(min2, and1); err != nil {
			return core.Undef, err
		}
		if min1, err = b.Or(min1, x); err != nil {
			return core.Undef, err
		}
	}
	return b.And(min1, b.Not(min2))
}

func (b boolean) Join(other Logic) (Logic, error) {
	if other.IsBoolean() {
		return b, nil
	}
	return other, nil
}

func (boolean) IsBoolean() bool {
	return true
}
