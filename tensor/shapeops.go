package tensor

import (
	"github.com/mmaroti/uasat-go/core"
	"github.com/mmaroti/uasat-go/shape"
)

// Polymer is the fundamental permute/broadcast primitive. mapping must
// have length rank(self); mapping[i] names the axis of newShape that
// source axis i projects onto, and newShape's dimension there must
// equal shape[i]. Distinct source axes may share a target axis (this
// extracts a diagonal); target axes absent from mapping are broadcast.
func (t Tensor) Polymer(newShape shape.Shape, mapping []int) (Tensor, error) {
	selfDims := t.shape.Dims()
	if len(mapping) != len(selfDims) {
		return Tensor{}, core.NewError(core.ShapeMismatch, "Tensor.Polymer",
			"mapping length must equal the tensor's rank")
	}
	newDims := newShape.Dims()
	for i, target := range mapping {
		if target < 0 || target >= len(newDims) {
			return Tensor{}, core.NewError(core.ShapeMismatch, "Tensor.Polymer",
				"mapping entry targets an axis outside newShape")
		}
		if newDims[target] != selfDims[i] {
			return Tensor{}, core.NewError(core.ShapeMismatch, "Tensor.Polymer",
				"mapped axes must agree in extent")
		}
	}

	inStrides := stridesOf(selfDims)
	outStrides := stridesOf(newDims)
	outExt := newShape.Extent()
	storage := make([]core.Literal, outExt)
	outCoords := make([]int, len(newDims))
	for lin := 0; lin < outExt; lin++ {
		decompose(lin, outStrides, outCoords)
		inLinear := 0
		for i, target := range mapping {
			inLinear += outCoords[target] * inStrides[i]
		}
		storage[lin] = t.storage[inLinear]
	}
	return Tensor{logic: t.logic, shape: newShape, storage: storage}, nil
}

// Reshape replaces the leading `rank` axes of self with dims, keeping
// the trailing axes (and their underlying Shape nodes) unchanged. It is
// a pure storage rename: the storage is copied as is, every literal
// keeping its linear position.
func (t Tensor) Reshape(rank int, dims shape.Shape) (Tensor, error) {
	selfDims := t.shape.Dims()
	if rank < 0 || rank > len(selfDims) {
		return Tensor{}, core.NewError(core.ShapeMismatch, "Tensor.Reshape",
			"rank exceeds the tensor's own rank")
	}
	prefixExt := 1
	for _, d := range selfDims[:rank] {
		prefixExt *= d
	}
	if prefixExt != dims.Extent() {
		return Tensor{}, core.NewError(core.ShapeMismatch, "Tensor.Reshape",
			"replacement dims must have the same extent as the dropped prefix")
	}

	trailing := t.shape.Drop(rank)
	newDims := dims.Dims()
	result := trailing
	for i := len(newDims) - 1; i >= 0; i-- {
		var err error
		if result, err = shape.Cons(newDims[i], result); err != nil {
			return Tensor{}, err
		}
	}
	storage := make([]core.Literal, len(t.storage))
	copy(storage, t.storage)
	return Tensor{logic: t.logic, shape: result, storage: storage}, nil
}

// Slices splits self along axis 0 into d0 tensors of shape shape[1:].
// Because storage is first-axis-fastest, slice k holds
// { storage[i*d0+k] : 0 <= i < extent/d0 }.
func (t Tensor) Slices() ([]Tensor, error) {
	dims := t.shape.Dims()
	if len(dims) == 0 {
		return nil, core.NewError(core.ShapeMismatch, "Tensor.Slices", "cannot slice a rank-0 tensor")
	}
	d0 := dims[0]
	trailing := t.shape.Tail()
	sliceExt := trailing.Extent()
	out := make([]Tensor, d0)
	for k := 0; k < d0; k++ {
		storage := make([]core.Literal, sliceExt)
		for i := 0; i < sliceExt; i++ {
			storage[i] = t.storage[i*d0+k]
		}
		out[k] = Tensor{logic: t.logic, shape: trailing, storage: storage}
	}
	return out, nil
}

// Stack inverts Slices: every input must share shape and compatible
// logic; the result has shape (len(ts), ...) with element (k,i) equal
// to element i of ts[k].
func Stack(ts []Tensor) (Tensor, error) {
	if len(ts) == 0 {
		return Tensor{}, core.NewError(core.ShapeMismatch, "tensor.Stack", "cannot stack zero tensors")
	}
	sh := ts[0].shape
	logic := ts[0].logic
	for _, t := range ts[1:] {
		if !t.shape.Equal(sh) {
			return Tensor{}, core.NewError(core.ShapeMismatch, "tensor.Stack", "all slices must share shape")
		}
		joined, err := logic.Join(t.logic)
		if err != nil {
			return Tensor{}, err
		}
		logic = joined
	}

	d0 := len(ts)
	newDims := append([]int{d0}, sh.Dims()...)
	newShape, err := shape.FromDims(newDims)
	if err != nil {
		return Tensor{}, err
	}
	sliceExt := sh.Extent()
	storage := make([]core.Literal, newShape.Extent())
	for k, t := range ts {
		for i := 0; i < sliceExt; i++ {
			storage[i*d0+k] = t.storage[i]
		}
	}
	return Tensor{logic: logic, shape: newShape, storage: storage}, nil
}
