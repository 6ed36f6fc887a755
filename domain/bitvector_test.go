package domain_test

import (
	"testing"

	"github.com/mmaroti/uasat-go/boolalg"
	"github.com/mmaroti/uasat-go/core"
	"github.com/mmaroti/uasat-go/domain"
	"github.com/mmaroti/uasat-go/shape"
	"github.com/mmaroti/uasat-go/tensor"
	"github.com/stretchr/testify/require"
)

func TestBinaryNumAdditionCardinality(t *testing.T) {
	g, err := domain.NewBinaryNumAddition(5)
	require.NoError(t, err)
	n, err := domain.FindCardinality(g, "minisat")
	require.NoError(t, err)
	require.Equal(t, 32, n)
}

func TestBinaryNumAdditionAxioms(t *testing.T) {
	g, err := domain.NewBinaryNumAddition(4)
	require.NoError(t, err)
	report, err := domain.TestAxioms(g, "minisat")
	require.NoError(t, err)
	require.True(t, report.OK(), "%+v", report)
}

// litBits builds a Boolean-logic rank-1 tensor of n bits, least
// significant bit first, holding value's binary expansion.
func litBits(t *testing.T, n, value int) tensor.Tensor {
	t.Helper()
	bits := make([]tensor.Tensor, n)
	for i := 0; i < n; i++ {
		lit := core.False
		if (value>>i)&1 == 1 {
			lit = core.True
		}
		bits[i] = tensor.ConstantLit(boolalg.Boolean, shape.Empty(), lit)
	}
	x, err := tensor.Stack(bits)
	require.NoError(t, err)
	return x
}

func TestBinaryNumAdditionWeight(t *testing.T) {
	const n = 5
	g, err := domain.NewBinaryNumAddition(n)
	require.NoError(t, err)

	x := litBits(t, n, 7)
	w, err := g.Weight(x)
	require.NoError(t, err)
	require.Equal(t, litBits(t, n, 3).Storage(), w.Storage())
}

func TestBinaryNumAdditionProductAndInverse(t *testing.T) {
	const n = 4
	g, err := domain.NewBinaryNumAddition(n)
	require.NoError(t, err)

	a := litBits(t, n, 5)
	b := litBits(t, n, 11)
	sum, err := g.Product(a, b)
	require.NoError(t, err)
	require.Equal(t, litBits(t, n, (5+11)%16).Storage(), sum.Storage())

	inv, err := g.Inverse(a)
	require.NoError(t, err)
	backToId, err := g.Product(a, inv)
	require.NoError(t, err)
	id, err := g.Identity()
	require.NoError(t, err)
	require.Equal(t, id.Storage(), backToId.Storage())
}
