package tensor

import (
	"github.com/mmaroti/uasat-go/boolalg"
	"github.com/mmaroti/uasat-go/core"
)

// Not negates every entry. It never fails: negation is total over any
// literal encoding.
func (t Tensor) Not() Tensor {
	storage := make([]core.Literal, len(t.storage))
	for i, l := range t.storage {
		storage[i] = t.logic.Not(l)
	}
	return Tensor{logic: t.logic, shape: t.shape, storage: storage}
}

func (t Tensor) binary(op string, u Tensor, gate func(l boolalg.Logic, a, b core.Literal) (core.Literal, error)) (Tensor, error) {
	if !t.shape.Equal(u.shape) {
		return Tensor{}, core.NewError(core.ShapeMismatch, op, "operand shapes differ")
	}
	logic, err := t.logic.Join(u.logic)
	if err != nil {
		return Tensor{}, err
	}
	storage := make([]core.Literal, len(t.storage))
	for i := range storage {
		v, err := gate(logic, t.storage[i], u.storage[i])
		if err != nil {
			return Tensor{}, err
		}
		storage[i] = v
	}
	return Tensor{logic: logic, shape: t.shape, storage: storage}, nil
}

// And broadcasts the logic's and gate elementwise. Fails ShapeMismatch
// if the two tensors' shapes differ.
func (t Tensor) And(u Tensor) (Tensor, error) {
	return t.binary("Tensor.And", u, boolalg.Logic.And)
}

// Or broadcasts the logic's or gate elementwise.
func (t Tensor) Or(u Tensor) (Tensor, error) {
	return t.binary("Tensor.Or", u, boolalg.Logic.Or)
}

// Add broadcasts the logic's xor gate elementwise.
func (t Tensor) Add(u Tensor) (Tensor, error) {
	return t.binary("Tensor.Add", u, boolalg.Logic.Add)
}

// Leq broadcasts the logic's implication gate elementwise.
func (t Tensor) Leq(u Tensor) (Tensor, error) {
	return t.binary("Tensor.Leq", u, boolalg.Logic.Leq)
}

// Equ broadcasts the logic's equivalence gate elementwise.
func (t Tensor) Equ(u Tensor) (Tensor, error) {
	return t.binary("Tensor.Equ", u, boolalg.Logic.Equ)
}

func (t Tensor) ternary(op string, u, v Tensor, gate func(l boolalg.Logic, a, b, c core.Literal) (core.Literal, error)) (Tensor, error) {
	if !t.shape.Equal(u.shape) || !t.shape.Equal(v.shape) {
		return Tensor{}, core.NewError(core.ShapeMismatch, op, "operand shapes differ")
	}
	logic, err := t.logic.Join(u.logic)
	if err != nil {
		return Tensor{}, err
	}
	if logic, err = logic.Join(v.logic); err != nil {
		return Tensor{}, err
	}
	storage := make([]core.Literal, len(t.storage))
	for i := range storage {
		r, err := gate(logic, t.storage[i], u.storage[i], v.storage[i])
		if err != nil {
			return Tensor{}, err
		}
		storage[i] = r
	}
	return Tensor{logic: logic, shape: t.shape, storage: storage}, nil
}

// Maj broadcasts the logic's majority gate elementwise over three
// equally-shaped tensors.
func (t Tensor) Maj(u, v Tensor) (Tensor, error) {
	return t.ternary("Tensor.Maj", u, v, boolalg.Logic.Maj)
}

// Iff broadcasts the logic's if-then-else gate elementwise: self
// selects between u (then) and v (else).
func (t Tensor) Iff(u, v Tensor) (Tensor, error) {
	return t.ternary("Tensor.Iff", u, v, boolalg.Logic.Iff)
}
