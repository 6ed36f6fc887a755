package domain

import (
	"github.com/mmaroti/uasat-go/core"
	"github.com/mmaroti/uasat-go/shape"
	"github.com/mmaroti/uasat-go/tensor"
)

// Operations is the clone of every finitary operation on a finite set:
// an operation of arity k is represented as a (size,)^(k+1) relation,
// axis 0 holding the output and axes 1..k the arguments, constrained to
// be a function of its arguments.
type Operations struct {
	size int
}

// NewOperations builds the clone over a set of the given size. Fails
// InvalidShape if size is not positive.
func NewOperations(size int) (*Operations, error) {
	if size <= 0 {
		return nil, core.NewError(core.InvalidShape, "domain.NewOperations", "size must be positive")
	}
	return &Operations{size: size}, nil
}

// Shape returns the (size,)^(arity+1) shape operations of the given
// arity are tensors of.
func (c *Operations) Shape(arity int) (shape.Shape, error) {
	dims := make([]int, arity+1)
	for i := range dims {
		dims[i] = c.size
	}
	return shape.FromDims(dims)
}

// Contains holds iff elem assigns exactly one output per combination of
// its arity arguments: fold_one collapses the output axis to a per-
// combination flag, and fold_all, applied once per argument axis,
// requires that flag to hold everywhere.
func (c *Operations) Contains(arity int, elem tensor.Tensor) (tensor.Tensor, error) {
	result, err := elem.FoldOne()
	if err != nil {
		return tensor.Tensor{}, err
	}
	for i := 0; i < arity; i++ {
		if result, err = result.FoldAll(); err != nil {
			return tensor.Tensor{}, err
		}
	}
	return result, nil
}

// Projection returns the arity-ary operation that returns its index-th
// argument unchanged: Diagonal(size) relates output to that one
// argument, placed by Polymer into Shape(arity) so every other argument
// axis is a broadcast axis.
func (c *Operations) Projection(arity, index int) (tensor.Tensor, error) {
	diag, err := tensor.Diagonal(c.size)
	if err != nil {
		return tensor.Tensor{}, err
	}
	sh, err := c.Shape(arity)
	if err != nil {
		return tensor.Tensor{}, err
	}
	return diag.Polymer(sh, []int{0, 1 + index})
}

// Compose substitutes the arity1 arguments of fn with the arity1
// arity2-ary operations stacked in args, yielding an arity2-ary
// operation: result(y, x...) holds iff some tuple z of intermediate
// values satisfies fn(y, z...) and args[i](z[i], x...) for every i. The
// combined relation is built over a shared (size,)^(1+arity1+arity2)
// space by placing fn and each slice of args via Polymer, and-ing them
// together, and existentially folding away the z axes.
func (c *Operations) Compose(arity1 int, fn tensor.Tensor, arity2 int, args tensor.Tensor) (tensor.Tensor, error) {
	totalRank := 1 + arity1 + arity2
	dims := make([]int, totalRank)
	for i := range dims {
		dims[i] = c.size
	}
	full, err := shape.FromDims(dims)
	if err != nil {
		return tensor.Tensor{}, err
	}

	funcMapping := make([]int, arity1+1)
	for i := range funcMapping {
		funcMapping[i] = i
	}
	acc, err := fn.Polymer(full, funcMapping)
	if err != nil {
		return tensor.Tensor{}, err
	}

	if arity1 > 0 {
		argSlices, err := args.Slices()
		if err != nil {
			return tensor.Tensor{}, err
		}
		for i, arg := range argSlices {
			argMapping := make([]int, arity2+1)
			argMapping[0] = 1 + i
			for j := 0; j < arity2; j++ {
				argMapping[1+j] = 1 + arity1 + j
			}
			placed, err := arg.Polymer(full, argMapping)
			if err != nil {
				return tensor.Tensor{}, err
			}
			if acc, err = acc.And(placed); err != nil {
				return tensor.Tensor{}, err
			}
		}
	}

	selection := make([]bool, totalRank)
	for i := 1; i <= arity1; i++ {
		selection[i] = true
	}
	return acc.FoldAnySelect(selection)
}
