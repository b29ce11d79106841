package core_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/parlath/core"
)

// randomAdjacency builds a reproducible multigraph with loops.
func randomAdjacency(t *testing.T, n, m int, seed int64) *core.AdjacencyGraph {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	g := core.NewAdjacencyGraph(n)
	for i := 0; i < m; i++ {
		require.NoError(t, g.AddWeightedEdge(rng.Intn(n), rng.Intn(n), float32(rng.Intn(10))))
	}

	return g
}

func TestToCSR_Invariants(t *testing.T) {
	g := randomAdjacency(t, 50, 400, 1)
	want := make([][]int, 50)
	for u := range want {
		want[u], _ = g.Neighbors(u)
	}

	csr := g.ToCSR()
	require.NoError(t, csr.Validate())
	assert.Equal(t, 50, csr.NumVertices())
	assert.Equal(t, 400, csr.NumEdges())

	off := csr.Offsets()
	require.Len(t, off, 51)
	assert.Equal(t, 0, off[0])
	assert.Equal(t, 400, off[50])
	for u := 0; u < 50; u++ {
		assert.LessOrEqual(t, off[u], off[u+1])
		// order and multiplicity preserved per vertex
		assert.Equal(t, len(want[u]), csr.OutDegree(u))
		if len(want[u]) > 0 {
			assert.Equal(t, want[u], csr.Neighbors(u))
		}
	}
}

func TestToCSR_Empty(t *testing.T) {
	csr := core.NewAdjacencyGraph(4).ToCSR()
	require.NoError(t, csr.Validate())
	assert.Equal(t, []int{0, 0, 0, 0, 0}, csr.Offsets())
	assert.Empty(t, csr.Neighbors(2))
	assert.Equal(t, 0, csr.MaxOutDegree())
}

func TestToWeightedCSR_Aligned(t *testing.T) {
	g, err := core.FromWeightedEdgeList(3, []core.WeightedEdge{
		{From: 0, To: 1, Weight: 1}, {From: 1, To: 2, Weight: 2}, {From: 0, To: 2, Weight: 4},
	})
	require.NoError(t, err)

	w := g.ToWeightedCSR()
	require.NoError(t, w.Validate())
	assert.Equal(t, []int{1, 2}, w.Neighbors(0))
	assert.Equal(t, []float32{1, 4}, w.NeighborWeights(0))
	assert.Equal(t, float32(4), w.MaxWeight())
	assert.Equal(t, w.NumEdges(), w.Unweighted().NumEdges())
}

func TestNewCSR_Validation(t *testing.T) {
	cases := []struct {
		name    string
		offsets []int
		edges   []int
	}{
		{"empty offsets", nil, nil},
		{"nonzero start", []int{1, 1}, []int{0}},
		{"decreasing", []int{0, 2, 1}, []int{0, 1}},
		{"tail mismatch", []int{0, 1, 1}, []int{0, 1}},
		{"target out of range", []int{0, 1, 1}, []int{2}},
		{"negative target", []int{0, 1, 1}, []int{-1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := core.NewCSR(tc.offsets, tc.edges)
			assert.ErrorIs(t, err, core.ErrMalformedCSR)
		})
	}

	g, err := core.NewCSR([]int{0, 1, 2}, []int{1, 0})
	require.NoError(t, err)
	assert.Equal(t, 2, g.NumEdges())
}

func TestNewWeightedCSR_Validation(t *testing.T) {
	_, err := core.NewWeightedCSR([]int{0, 1, 1}, []int{1}, nil)
	assert.ErrorIs(t, err, core.ErrMalformedCSR)

	_, err = core.NewWeightedCSR([]int{0, 1, 1}, []int{1}, []float32{-2})
	assert.ErrorIs(t, err, core.ErrNegativeWeight)

	w, err := core.NewWeightedCSR([]int{0, 1, 1}, []int{1}, []float32{2})
	require.NoError(t, err)
	assert.Equal(t, []float32{2}, w.Weights())
}

func TestTranspose_RoundTrip(t *testing.T) {
	csr := randomAdjacency(t, 40, 300, 7).ToCSR()
	rev := csr.Transpose()
	require.NoError(t, rev.Validate())
	assert.Equal(t, csr.NumEdges(), rev.NumEdges())

	in := csr.InDegrees()
	for v := 0; v < csr.NumVertices(); v++ {
		assert.Equal(t, in[v], rev.OutDegree(v))
	}

	// transpose of transpose sorts each list; compare as multisets
	back := rev.Transpose()
	for u := 0; u < csr.NumVertices(); u++ {
		got := append([]int(nil), back.Neighbors(u)...)
		want := append([]int(nil), csr.Neighbors(u)...)
		assert.ElementsMatch(t, want, got, "vertex %d", u)
	}
}

func TestWeightedTranspose_CarriesWeights(t *testing.T) {
	g, err := core.FromWeightedEdgeList(3, []core.WeightedEdge{
		{From: 0, To: 2, Weight: 5}, {From: 1, To: 2, Weight: 3},
	})
	require.NoError(t, err)

	rev := g.ToWeightedCSR().Transpose()
	if diff := cmp.Diff([]int{0, 1}, rev.Neighbors(2)); diff != "" {
		t.Errorf("in-neighbors mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []float32{5, 3}, rev.NeighborWeights(2))
}
