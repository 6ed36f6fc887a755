package domain

import (
	"github.com/mmaroti/uasat-go/core"
	"github.com/mmaroti/uasat-go/shape"
	"github.com/mmaroti/uasat-go/tensor"
)

// BinaryNumAddition is the group of n-bit binary numbers under addition
// modulo 2^n: elements are rank-1 tensors of n bits, least-significant
// bit first, and every bitstring is a valid element since overflow
// simply wraps.
type BinaryNumAddition struct {
	n  int
	sh shape.Shape
}

// NewBinaryNumAddition builds the group of n-bit numbers. Fails
// InvalidShape if n is not positive.
func NewBinaryNumAddition(n int) (*BinaryNumAddition, error) {
	sh, err := shape.FromDims([]int{n})
	if err != nil {
		return nil, err
	}
	return &BinaryNumAddition{n: n, sh: sh}, nil
}

func (g *BinaryNumAddition) Shape() shape.Shape { return g.sh }

func (g *BinaryNumAddition) Equals(elem1, elem2 tensor.Tensor) (tensor.Tensor, error) {
	return Equals(g.sh, elem1, elem2)
}

// Contains always holds: every n-bit string is a number.
func (g *BinaryNumAddition) Contains(elem tensor.Tensor) (tensor.Tensor, error) {
	return tensor.Constant(shape.Empty(), true), nil
}

func (g *BinaryNumAddition) Identity() (tensor.Tensor, error) {
	return tensor.Constant(g.sh, false), nil
}

// Product is ripple-carry addition: a full adder chains across the
// bit slices least-significant first, the final carry falling off the
// top and being discarded, matching addition modulo 2^n.
func (g *BinaryNumAddition) Product(elem1, elem2 tensor.Tensor) (tensor.Tensor, error) {
	return g.add(elem1, elem2, core.False)
}

// Inverse is two's complement: bitwise negation followed by adding one.
func (g *BinaryNumAddition) Inverse(elem tensor.Tensor) (tensor.Tensor, error) {
	return g.Increment(elem.Not(), core.True)
}

// Increment adds a single bit (flag) into x via ripple-carry, letting
// callers build two's complement out of the same adder chain used by
// Product.
func (g *BinaryNumAddition) Increment(x tensor.Tensor, flag core.Literal) (tensor.Tensor, error) {
	bits, err := x.Slices()
	if err != nil {
		return tensor.Tensor{}, err
	}
	logic := x.Logic()
	out := make([]tensor.Tensor, len(bits))
	carry := flag
	for i, bit := range bits {
		lit, err := bit.GetScalar()
		if err != nil {
			return tensor.Tensor{}, err
		}
		sum, cout, err := logic.FullAdder(lit, core.False, carry)
		if err != nil {
			return tensor.Tensor{}, err
		}
		out[i] = tensor.ConstantLit(logic, bit.Shape(), sum)
		carry = cout
	}
	return tensor.Stack(out)
}

// Weight counts elem's set bits by repeatedly incrementing a zero
// accumulator by each bit in turn, reusing the same adder chain rather
// than a bespoke counting network.
func (g *BinaryNumAddition) Weight(elem tensor.Tensor) (tensor.Tensor, error) {
	acc := tensor.ConstantLit(elem.Logic(), elem.Shape(), core.False)
	bits, err := elem.Slices()
	if err != nil {
		return tensor.Tensor{}, err
	}
	for _, bit := range bits {
		lit, err := bit.GetScalar()
		if err != nil {
			return tensor.Tensor{}, err
		}
		if acc, err = g.Increment(acc, lit); err != nil {
			return tensor.Tensor{}, err
		}
	}
	return acc, nil
}

func (g *BinaryNumAddition) add(elem1, elem2 tensor.Tensor, carryIn core.Literal) (tensor.Tensor, error) {
	bits1, err := elem1.Slices()
	if err != nil {
		return tensor.Tensor{}, err
	}
	bits2, err := elem2.Slices()
	if err != nil {
		return tensor.Tensor{}, err
	}
	logic, err := elem1.Logic().Join(elem2.Logic())
	if err != nil {
		return tensor.Tensor{}, err
	}

	out := make([]tensor.Tensor, len(bits1))
	carry := carryIn
	for i := range bits1 {
		a, err := bits1[i].GetScalar()
		if err != nil {
			return tensor.Tensor{}, err
		}
		b, err := bits2[i].GetScalar()
		if err != nil {
			return tensor.Tensor{}, err
		}
		sum, cout, err := logic.FullAdder(a, b, carry)
		if err != nil {
			return tensor.Tensor{}, err
		}
		out[i] = tensor.ConstantLit(logic, bits1[i].Shape(), sum)
		carry = cout
	}
	return tensor.Stack(out)
}
