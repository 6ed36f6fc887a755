package tensor

import (
	"github.com/mmaroti/uasat-go/boolalg"
	"github.com/mmaroti/uasat-go/core"
	"github.com/mmaroti/uasat-go/shape"
)

// Variable allocates extent(sh) fresh variables from the solver backing
// l and arranges them into a Tensor of shape sh.
func Variable(l *boolalg.SolverLogic, sh shape.Shape, decision, polarity bool) Tensor {
	storage := make([]core.Literal, sh.Extent())
	for i := range storage {
		storage[i] = l.NewLiteral(decision, polarity)
	}
	return Tensor{logic: l, shape: sh, storage: storage}
}

// Constant builds a Boolean-logic tensor of shape sh whose every entry
// is TRUE (if val) or FALSE.
func Constant(sh shape.Shape, val bool) Tensor {
	lit := core.False
	if val {
		lit = core.True
	}
	return ConstantLit(boolalg.Boolean, sh, lit)
}

// ConstantLit broadcasts a single literal over a tensor of shape sh
// bound to l.
func ConstantLit(l boolalg.Logic, sh shape.Shape, lit core.Literal) Tensor {
	storage := make([]core.Literal, sh.Extent())
	for i := range storage {
		storage[i] = lit
	}
	return Tensor{logic: l, shape: sh, storage: storage}
}

// Diagonal returns the Boolean-logic (n,n) tensor that is TRUE exactly
// where the two coordinates are equal.
func Diagonal(n int) (Tensor, error) {
	sh, err := shape.FromDims([]int{n, n})
	if err != nil {
		return Tensor{}, err
	}
	storage := make([]core.Literal, sh.Extent())
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			storage[i+j*n] = core.False
			if i == j {
				storage[i+j*n] = core.True
			}
		}
	}
	return Tensor{logic: boolalg.Boolean, shape: sh, storage: storage}, nil
}

// LessThan returns the Boolean-logic (n,n) tensor that is TRUE exactly
// where the leading coordinate is less than the trailing one.
func LessThan(n int) (Tensor, error) {
	sh, err := shape.FromDims([]int{n, n})
	if err != nil {
		return Tensor{}, err
	}
	storage := make([]core.Literal, sh.Extent())
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			storage[i+j*n] = core.False
			if i < j {
				storage[i+j*n] = core.True
			}
		}
	}
	return Tensor{logic: boolalg.Boolean, shape: sh, storage: storage}, nil
}
