package domain_test

import (
	"testing"

	"github.com/mmaroti/uasat-go/domain"
	"github.com/stretchr/testify/require"
)

func TestSymmetricGroupAxioms(t *testing.T) {
	g, err := domain.NewSymmetricGroup(4)
	require.NoError(t, err)
	report, err := domain.TestAxioms(g, "minisat")
	require.NoError(t, err)
	require.True(t, report.OK(), "%+v", report)
}

func TestSymmetricGroupCardinality(t *testing.T) {
	g, err := domain.NewSymmetricGroup(4)
	require.NoError(t, err)
	n, err := domain.FindCardinality(g, "minisat")
	require.NoError(t, err)
	require.Equal(t, 24, n)
}

func TestSymmetricGroupSmallCardinalities(t *testing.T) {
	for size, want := range map[int]int{1: 1, 2: 2, 3: 6} {
		g, err := domain.NewSymmetricGroup(size)
		require.NoError(t, err)
		n, err := domain.FindCardinality(g, "minisat")
		require.NoError(t, err, "size=%d", size)
		require.Equal(t, want, n, "size=%d", size)
	}
}
