// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zdd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

// powerSetSpec accepts every subset of n items: both branches are always
// available, and there is no state to track.
type powerSetSpec struct{ n int }

func (powerSetSpec) StateSize() int { return 0 }
func (s powerSetSpec) Root(_ []byte) int {
	if s.n == 0 {
		return -1 // the power set of zero items is {∅}, i.e. accept immediately
	}
	return s.n
}
func (powerSetSpec) Child(_ []byte, level, _ int) int {
	if level == 1 {
		return -1
	}
	return level - 1
}

// chainSpec accepts exactly one set: the set of all n items (branch 0 is
// always rejected).
type chainSpec struct{ n int }

func (chainSpec) StateSize() int      { return 0 }
func (s chainSpec) Root(_ []byte) int { return s.n }
func (chainSpec) Child(_ []byte, level, branch int) int {
	if branch == 0 {
		return 0
	}
	if level == 1 {
		return -1
	}
	return level - 1
}

func buildReduced(t *testing.T, spec Spec) *DD {
	u, err := NewBuilder(spec).Build()
	require.NoError(t, err)
	return Reduce(u)
}

func TestPowerSetCardinality(t *testing.T) {
	for n := 0; n <= 6; n++ {
		dd := buildReduced(t, powerSetSpec{n: n})
		want := int64(1) << n
		require.Equal(t, want, Cardinality(dd).Int64(), "n=%d", n)
	}
}

func TestChainCardinalityIsOne(t *testing.T) {
	dd := buildReduced(t, chainSpec{n: 5})
	require.Equal(t, int64(1), Cardinality(dd).Int64())
}

func TestChainEnumeratesExactlyAllItems(t *testing.T) {
	dd := buildReduced(t, chainSpec{n: 4})
	var paths [][]int
	err := EnumeratePaths(dd, func(selected []int) error {
		paths = append(paths, append([]int(nil), selected...))
		return nil
	})
	require.NoError(t, err)
	require.Len(t, paths, 1)
	require.ElementsMatch(t, []int{1, 2, 3, 4}, paths[0])
}

func TestPowerSetEnumeratesTwoToTheN(t *testing.T) {
	dd := buildReduced(t, powerSetSpec{n: 4})
	count := 0
	err := EnumeratePaths(dd, func(_ []int) error {
		count++
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, 16, count)
}

func TestReduceIsIdempotent(t *testing.T) {
	u, err := NewBuilder(powerSetSpec{n: 5}).Build()
	require.NoError(t, err)
	dd := Reduce(u)
	nodeCount := dd.NodeCount()

	// Re-running Reduce on an Unreduced view of dd's own table must not
	// change the node count: the diagram is already canonical.
	again := Reduce(&Unreduced{dd.table})
	require.Equal(t, nodeCount, again.NodeCount())
	require.Equal(t, dd.Root, again.Root)
}

func TestPowerSetChainHasNNodes(t *testing.T) {
	dd := buildReduced(t, powerSetSpec{n: 5})
	require.Equal(t, 5, dd.NodeCount())
}

func TestChainHasNNodesWithForcedLo(t *testing.T) {
	dd := buildReduced(t, chainSpec{n: 4})
	require.Equal(t, 4, dd.NodeCount())
	for level := 1; level <= 4; level++ {
		require.Len(t, dd.Levels[level], 1)
		require.True(t, dd.Levels[level][0].Lo.IsBot())
	}
}

func TestSapporoDumpRoundTrip(t *testing.T) {
	dd := buildReduced(t, powerSetSpec{n: 4})

	var buf bytes.Buffer
	require.NoError(t, DumpSapporo(&buf, dd))

	back, err := ParseSapporo(&buf, "roundtrip")
	require.NoError(t, err)
	require.Equal(t, Cardinality(dd).String(), Cardinality(back).String())
	require.Equal(t, dd.NodeCount(), back.NodeCount())
}

func TestDumpDOTProducesValidHeader(t *testing.T) {
	dd := buildReduced(t, chainSpec{n: 3})
	var buf bytes.Buffer
	require.NoError(t, DumpDOT(&buf, dd))
	require.Contains(t, buf.String(), "digraph zdd {")
}

func TestDumpMatrixMatchesEnumeration(t *testing.T) {
	dd := buildReduced(t, powerSetSpec{n: 3})
	var buf bytes.Buffer
	require.NoError(t, DumpMatrix(&buf, dd))
	require.Contains(t, buf.String(), "3 8\n")
}

func TestBuilderRejectsBadChildLevel(t *testing.T) {
	_, err := NewBuilder(badSpec{}).Build()
	require.Error(t, err)
}

type badSpec struct{}

func (badSpec) StateSize() int        { return 0 }
func (badSpec) Root(_ []byte) int     { return 3 }
func (badSpec) Child(_ []byte, level, _ int) int {
	return level // must be strictly less than level: invalid
}
