// Package shape implements the immutable, structurally shared cons-list
// shape used by every Tensor: an ordered sequence of positive
// dimensions with a cached extent at each node.
package shape

import (
	"strconv"
	"strings"

	"github.com/mmaroti/uasat-go/core"
)

// node is one cell of the cons-list. ext caches dim * tail's extent so
// Extent is O(1) regardless of rank.
type node struct {
	dim  int
	ext  int
	tail *node
}

// Shape is an ordered sequence of positive dimensions (d0, ..., d_{r-1}).
// The zero value is the empty (rank-0) shape, with extent 1. Shapes are
// immutable: every operation returns a new Shape sharing the unaffected
// suffix of the original's node chain.
type Shape struct {
	n *node
}

// Empty returns the rank-0 shape.
func Empty() Shape {
	return Shape{}
}

// Cons prepends dim as the new leading axis of tail. Fails InvalidShape
// if dim is not positive or the resulting extent overflows.
func Cons(dim int, tail Shape) (Shape, error) {
	if dim < 1 {
		return Shape{}, core.NewError(core.InvalidShape, "shape.Cons", "dimension must be positive")
	}
	tailExt := tail.Extent()
	ext := dim * tailExt
	if tailExt != 0 && ext/tailExt != dim {
		return Shape{}, core.NewError(core.InvalidShape, "shape.Cons", "extent overflows")
	}
	return Shape{n: &node{dim: dim, ext: ext, tail: tail.n}}, nil
}

// FromDims builds a Shape from a flat dimension list, d[0] being the
// fastest-varying (leading) axis.
func FromDims(dims []int) (Shape, error) {
	s := Empty()
	for i := len(dims) - 1; i >= 0; i-- {
		var err error
		if s, err = Cons(dims[i], s); err != nil {
			return Shape{}, err
		}
	}
	return s, nil
}

// Rank returns the number of axes.
func (s Shape) Rank() int {
	n := 0
	for c := s.n; c != nil; c = c.tail {
		n++
	}
	return n
}

// Extent returns the product of every dimension (1 for the empty shape).
func (s Shape) Extent() int {
	if s.n == nil {
		return 1
	}
	return s.n.ext
}

// Head returns the leading dimension. Fails ShapeMismatch on the empty
// shape.
func (s Shape) Head() (int, error) {
	if s.n == nil {
		return 0, core.NewError(core.ShapeMismatch, "Shape.Head", "empty shape has no leading axis")
	}
	return s.n.dim, nil
}

// Tail drops the leading axis, returning the remaining shape unchanged
// (shared, not copied). Returns the empty shape if s is already empty.
func (s Shape) Tail() Shape {
	if s.n == nil {
		return Shape{}
	}
	return Shape{n: s.n.tail}
}

// Drop removes the leading k axes.
func (s Shape) Drop(k int) Shape {
	c := s.n
	for ; k > 0 && c != nil; k-- {
		c = c.tail
	}
	return Shape{n: c}
}

// Dims returns the shape's dimensions as a flat slice, d[0] being the
// leading axis.
func (s Shape) Dims() []int {
	out := make([]int, s.Rank())
	c := s.n
	for i := range out {
		out[i] = c.dim
		c = c.tail
	}
	return out
}

// PrefixOf reports whether s's dimensions match other's first Rank(s)
// axes.
func (s Shape) PrefixOf(other Shape) bool {
	if s.Rank() > other.Rank() {
		return false
	}
	a, b := s.n, other.n
	for a != nil {
		if a.dim != b.dim {
			return false
		}
		a, b = a.tail, b.tail
	}
	return true
}

// Equal reports whether two shapes have the same dimensions in order.
func (s Shape) Equal(other Shape) bool {
	return s.Rank() == other.Rank() && s.PrefixOf(other)
}

// String renders the shape as "(d0, d1, ...)".
func (s Shape) String() string {
	dims := s.Dims()
	parts := make([]string, len(dims))
	for i, d := range dims {
		parts[i] = strconv.Itoa(d)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
