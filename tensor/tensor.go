// Package tensor implements the shaped-array layer that broadcasts
// Logic gates over literal storage and provides the reshape, permute,
// stack and fold primitives used to build algebraic expressions.
package tensor

import (
	"github.com/mmaroti/uasat-go/boolalg"
	"github.com/mmaroti/uasat-go/core"
	"github.com/mmaroti/uasat-go/shape"
)

// Tensor is a triple of a Logic, a Shape, and a flat literal storage
// laid out first-axis-fastest. Tensors are values: every operation
// that changes shape or content returns a new Tensor; the storage slice
// is never mutated in place once returned to a caller.
type Tensor struct {
	logic   boolalg.Logic
	shape   shape.Shape
	storage []core.Literal
}

// Logic returns the logic this tensor is bound to.
func (t Tensor) Logic() boolalg.Logic {
	return t.logic
}

// Shape returns the tensor's shape.
func (t Tensor) Shape() shape.Shape {
	return t.shape
}

// Storage returns the tensor's flat literal storage. Callers must treat
// the returned slice as read-only.
func (t Tensor) Storage() []core.Literal {
	return t.storage
}
