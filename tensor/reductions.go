package tensor

import (
	"github.com/mmaroti/uasat-go/boolalg"
	"github.com/mmaroti/uasat-go/core"
	"github.com/mmaroti/uasat-go/shape"
)

func (t Tensor) fold(op string, reduce func(l boolalg.Logic, xs []core.Literal) (core.Literal, error)) (Tensor, error) {
	dims := t.shape.Dims()
	if len(dims) == 0 {
		return Tensor{}, core.NewError(core.ShapeMismatch, op, "cannot fold a rank-0 tensor")
	}
	d0 := dims[0]
	trailing := t.shape.Tail()
	sliceExt := trailing.Extent()
	storage := make([]core.Literal, sliceExt)
	xs := make([]core.Literal, d0)
	for i := 0; i < sliceExt; i++ {
		for k := 0; k < d0; k++ {
			xs[k] = t.storage[i*d0+k]
		}
		v, err := reduce(t.logic, xs)
		if err != nil {
			return Tensor{}, err
		}
		storage[i] = v
	}
	return Tensor{logic: t.logic, shape: trailing, storage: storage}, nil
}

// FoldAll reduces axis 0 with the logic's and-reduction.
func (t Tensor) FoldAll() (Tensor, error) {
	return t.fold("Tensor.FoldAll", boolalg.Logic.FoldAll)
}

// FoldAny reduces axis 0 with the logic's or-reduction.
func (t Tensor) FoldAny() (Tensor, error) {
	return t.fold("Tensor.FoldAny", boolalg.Logic.FoldAny)
}

// FoldSum reduces axis 0 with the logic's xor-reduction.
func (t Tensor) FoldSum() (Tensor, error) {
	return t.fold("Tensor.FoldSum", boolalg.Logic.FoldSum)
}

// FoldOne reduces axis 0 with the logic's exactly-one reduction.
func (t Tensor) FoldOne() (Tensor, error) {
	return t.fold("Tensor.FoldOne", boolalg.Logic.FoldOne)
}

// FoldAllSelect reduces with the logic's and-reduction over the axes
// selection marks true, one output cell per combination of the
// remaining axes. selection must have length rank(self).
func (t Tensor) FoldAllSelect(selection []bool) (Tensor, error) {
	return t.foldSelect("Tensor.FoldAllSelect", selection, boolalg.Logic.FoldAll)
}

// FoldAnySelect is FoldAllSelect's or-reduction counterpart.
func (t Tensor) FoldAnySelect(selection []bool) (Tensor, error) {
	return t.foldSelect("Tensor.FoldAnySelect", selection, boolalg.Logic.FoldAny)
}

func (t Tensor) foldSelect(op string, selection []bool, reduce func(l boolalg.Logic, xs []core.Literal) (core.Literal, error)) (Tensor, error) {
	dims := t.shape.Dims()
	if len(selection) != len(dims) {
		return Tensor{}, core.NewError(core.ShapeMismatch, op, "selection length must equal the tensor's rank")
	}
	var selAxes, keepAxes []int
	for i, sel := range selection {
		if sel {
			selAxes = append(selAxes, i)
		} else {
			keepAxes = append(keepAxes, i)
		}
	}
	strides := stridesOf(dims)

	keepDims := make([]int, len(keepAxes))
	for i, a := range keepAxes {
		keepDims[i] = dims[a]
	}
	keepStrides := stridesOf(keepDims)
	outExt := 1
	for _, d := range keepDims {
		outExt *= d
	}

	selDims := make([]int, len(selAxes))
	for i, a := range selAxes {
		selDims[i] = dims[a]
	}
	selStrides := stridesOf(selDims)
	selCount := 1
	for _, d := range selDims {
		selCount *= d
	}

	storage := make([]core.Literal, outExt)
	outCoords := make([]int, len(keepAxes))
	selCoords := make([]int, len(selAxes))
	fullCoord := make([]int, len(dims))
	xs := make([]core.Literal, selCount)

	for outLin := 0; outLin < outExt; outLin++ {
		decompose(outLin, keepStrides, outCoords)
		for i, a := range keepAxes {
			fullCoord[a] = outCoords[i]
		}
		for selLin := 0; selLin < selCount; selLin++ {
			decompose(selLin, selStrides, selCoords)
			for i, a := range selAxes {
				fullCoord[a] = selCoords[i]
			}
			inLinear := 0
			for i, c := range fullCoord {
				inLinear += c * strides[i]
			}
			xs[selLin] = t.storage[inLinear]
		}
		v, err := reduce(t.logic, xs)
		if err != nil {
			return Tensor{}, err
		}
		storage[outLin] = v
	}

	outShape, err := shape.FromDims(keepDims)
	if err != nil {
		return Tensor{}, err
	}
	return Tensor{logic: t.logic, shape: outShape, storage: storage}, nil
}
