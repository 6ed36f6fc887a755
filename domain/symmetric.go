package domain

import (
	"github.com/mmaroti/uasat-go/shape"
	"github.com/mmaroti/uasat-go/tensor"
)

// SymmetricGroup is the group of permutations of {0, ..., size-1},
// represented as (size, size) 0/1 matrices: row i, column j holds TRUE
// iff the permutation sends i to j.
type SymmetricGroup struct {
	size int
	sh   shape.Shape
}

// NewSymmetricGroup builds the symmetric group on size points. Fails
// InvalidShape if size is not positive.
func NewSymmetricGroup(size int) (*SymmetricGroup, error) {
	sh, err := shape.FromDims([]int{size, size})
	if err != nil {
		return nil, err
	}
	return &SymmetricGroup{size: size, sh: sh}, nil
}

func (g *SymmetricGroup) Shape() shape.Shape { return g.sh }

func (g *SymmetricGroup) Equals(elem1, elem2 tensor.Tensor) (tensor.Tensor, error) {
	return Equals(g.sh, elem1, elem2)
}

// Contains holds iff elem has exactly one TRUE entry in each column
// (every point has exactly one preimage) and at least one TRUE entry in
// each row (every point is sent somewhere), which on a finite set makes
// it a permutation matrix: fold_one folds axis 0 down to one entry per
// column, fold_all then requires every column to pass; the inverse, via
// Polymer transpose, turns rows into columns for the fold_any check.
func (g *SymmetricGroup) Contains(elem tensor.Tensor) (tensor.Tensor, error) {
	oneEach, err := elem.FoldOne()
	if err != nil {
		return tensor.Tensor{}, err
	}
	functional, err := oneEach.FoldAll()
	if err != nil {
		return tensor.Tensor{}, err
	}
	inv, err := g.Inverse(elem)
	if err != nil {
		return tensor.Tensor{}, err
	}
	anyEach, err := inv.FoldAny()
	if err != nil {
		return tensor.Tensor{}, err
	}
	surjective, err := anyEach.FoldAll()
	if err != nil {
		return tensor.Tensor{}, err
	}
	return functional.And(surjective)
}

func (g *SymmetricGroup) Identity() (tensor.Tensor, error) {
	return tensor.Diagonal(g.size)
}

// Inverse is the transpose: swapping the two axes of a permutation
// matrix swaps which coordinate is "from" and which is "to".
func (g *SymmetricGroup) Inverse(perm tensor.Tensor) (tensor.Tensor, error) {
	return perm.Polymer(g.sh, []int{1, 0})
}

// Product is relational composition: (perm1 . perm2)[i,k] holds iff
// there is a middle point j with perm1[i,j] and perm2[j,k]. Both
// operands are broadcast into a shared (size,size,size) space via
// Polymer, and-ed pointwise, then the middle axis is existentially
// folded away with FoldAny.
func (g *SymmetricGroup) Product(perm1, perm2 tensor.Tensor) (tensor.Tensor, error) {
	cube, err := shape.FromDims([]int{g.size, g.size, g.size})
	if err != nil {
		return tensor.Tensor{}, err
	}
	lhs, err := perm1.Polymer(cube, []int{0, 1})
	if err != nil {
		return tensor.Tensor{}, err
	}
	rhs, err := perm2.Polymer(cube, []int{1, 2})
	if err != nil {
		return tensor.Tensor{}, err
	}
	mid, err := lhs.And(rhs)
	if err != nil {
		return tensor.Tensor{}, err
	}
	return mid.FoldAnySelect([]bool{false, true, false})
}

// Even holds iff perm's inversion count is even: the number of
// pairs (i,j) with i<j whose images come out reversed. rel1[i,k] holds
// iff some point past i maps to k; rel2[i,k] holds iff i maps past k;
// both are built by broadcasting lessthan and perm into a shared cube
// and existentially folding away the witness axis. Their conjunction,
// flattened and xor-reduced, is TRUE iff the inversion count is odd;
// Even returns its negation.
func (g *SymmetricGroup) Even(perm tensor.Tensor) (tensor.Tensor, error) {
	less, err := tensor.LessThan(g.size)
	if err != nil {
		return tensor.Tensor{}, err
	}
	cube, err := shape.FromDims([]int{g.size, g.size, g.size})
	if err != nil {
		return tensor.Tensor{}, err
	}

	lessLeft, err := less.Polymer(cube, []int{1, 0})
	if err != nil {
		return tensor.Tensor{}, err
	}
	permLeft, err := perm.Polymer(cube, []int{0, 2})
	if err != nil {
		return tensor.Tensor{}, err
	}
	rel1Cube, err := lessLeft.And(permLeft)
	if err != nil {
		return tensor.Tensor{}, err
	}
	rel1, err := rel1Cube.FoldAny()
	if err != nil {
		return tensor.Tensor{}, err
	}

	lessRight, err := less.Polymer(cube, []int{2, 0})
	if err != nil {
		return tensor.Tensor{}, err
	}
	permRight, err := perm.Polymer(cube, []int{1, 0})
	if err != nil {
		return tensor.Tensor{}, err
	}
	rel2Cube, err := lessRight.And(permRight)
	if err != nil {
		return tensor.Tensor{}, err
	}
	rel2, err := rel2Cube.FoldAny()
	if err != nil {
		return tensor.Tensor{}, err
	}

	rel, err := rel1.And(rel2)
	if err != nil {
		return tensor.Tensor{}, err
	}
	flat, err := shape.FromDims([]int{g.size * g.size})
	if err != nil {
		return tensor.Tensor{}, err
	}
	reshaped, err := rel.Reshape(2, flat)
	if err != nil {
		return tensor.Tensor{}, err
	}
	parity, err := reshaped.FoldSum()
	if err != nil {
		return tensor.Tensor{}, err
	}
	return parity.Not(), nil
}
