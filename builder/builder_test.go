package builder_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/parlath/builder"
	"github.com/katalvlaran/parlath/core"
)

func neighbors(t *testing.T, g *core.AdjacencyGraph, u int) []int {
	t.Helper()
	nb, err := g.Neighbors(u)
	require.NoError(t, err)

	return nb
}

// TestBuilders_Functional checks counts and a sample of edges per topology.
func TestBuilders_Functional(t *testing.T) {
	tests := []struct {
		name  string
		ctor  builder.Constructor
		wantV int
		wantE int
		check func(t *testing.T, g *core.AdjacencyGraph)
	}{
		{
			name: "Path(4)", ctor: builder.Path(4), wantV: 4, wantE: 3,
			check: func(t *testing.T, g *core.AdjacencyGraph) {
				assert.Equal(t, []int{1}, neighbors(t, g, 0))
				assert.Empty(t, neighbors(t, g, 3))
			},
		},
		{
			name: "Cycle(5)", ctor: builder.Cycle(5), wantV: 5, wantE: 5,
			check: func(t *testing.T, g *core.AdjacencyGraph) {
				assert.Equal(t, []int{0}, neighbors(t, g, 4))
			},
		},
		{
			name: "Star(3)", ctor: builder.Star(3), wantV: 4, wantE: 3,
			check: func(t *testing.T, g *core.AdjacencyGraph) {
				assert.Empty(t, neighbors(t, g, 0))
				for leaf := 1; leaf <= 3; leaf++ {
					assert.Equal(t, []int{0}, neighbors(t, g, leaf))
				}
			},
		},
		{
			name: "OutStar(3)", ctor: builder.OutStar(3), wantV: 4, wantE: 3,
			check: func(t *testing.T, g *core.AdjacencyGraph) {
				assert.Equal(t, []int{1, 2, 3}, neighbors(t, g, 0))
			},
		},
		{
			name: "Grid(2,3)", ctor: builder.Grid(2, 3), wantV: 6, wantE: 14,
			check: func(t *testing.T, g *core.AdjacencyGraph) {
				assert.ElementsMatch(t, []int{1, 3}, neighbors(t, g, 0))
				assert.ElementsMatch(t, []int{0, 2, 4}, neighbors(t, g, 1))
			},
		},
		{
			name: "Complete(4)", ctor: builder.Complete(4), wantV: 4, wantE: 12,
			check: func(t *testing.T, g *core.AdjacencyGraph) {
				assert.Equal(t, []int{0, 1, 3}, neighbors(t, g, 2))
			},
		},
		{name: "Isolated(3)", ctor: builder.Isolated(3), wantV: 3, wantE: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.NumVertices())
			assert.Equal(t, tc.wantE, g.NumEdges())
			assert.Equal(t, tc.wantV, tc.ctor.Size())
			if tc.check != nil {
				tc.check(t, g)
			}
		})
	}
}

func TestBuildGraph_DisjointBlocks(t *testing.T) {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithUndirected()}, nil,
		builder.Path(3), builder.Path(2), builder.Isolated(1),
	)
	require.NoError(t, err)
	assert.Equal(t, 6, g.NumVertices())
	// 2 + 1 undirected edges, mirrored
	assert.Equal(t, 6, g.NumEdges())
	assert.ElementsMatch(t, []int{0, 2}, neighbors(t, g, 1))
	assert.Equal(t, []int{4}, neighbors(t, g, 3))
	assert.Empty(t, neighbors(t, g, 5))
}

func TestUndirectedGridAndComplete_NoDoubleMirror(t *testing.T) {
	g, err := builder.BuildGraph([]core.GraphOption{core.WithUndirected()}, nil, builder.Grid(2, 2))
	require.NoError(t, err)
	assert.Equal(t, 8, g.NumEdges())

	g, err = builder.BuildGraph([]core.GraphOption{core.WithUndirected()}, nil, builder.Complete(3))
	require.NoError(t, err)
	assert.Equal(t, 6, g.NumEdges())
}

func TestBuilders_Errors(t *testing.T) {
	cases := map[string]builder.Constructor{
		"Path(1)":           builder.Path(1),
		"Cycle(2)":          builder.Cycle(2),
		"Star(0)":           builder.Star(0),
		"Grid(0,3)":         builder.Grid(0, 3),
		"Complete(0)":       builder.Complete(0),
		"Isolated(0)":       builder.Isolated(0),
		"RandomGraph(0,1)":  builder.RandomGraph(0, 1),
		"RandomGraph(3,-1)": builder.RandomGraph(3, -1),
		"PowerLaw(1)":       builder.PowerLaw(1),
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := builder.BuildGraph(nil, nil, c)
			assert.ErrorIs(t, err, builder.ErrTooFewVertices)
		})
	}

	_, err := builder.BuildGraph(nil, nil, builder.Constructor{})
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestStochastic_NeedRand(t *testing.T) {
	_, err := builder.GenerateRandomGraph(10, 2)
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
	_, err = builder.GeneratePowerLawGraph(10)
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
}

func snapshot(t *testing.T, g *core.AdjacencyGraph) [][]int {
	out := make([][]int, g.NumVertices())
	for u := range out {
		out[u] = neighbors(t, g, u)
	}

	return out
}

func TestRandomGraph_DeterministicAndDegree(t *testing.T) {
	a, err := builder.GenerateRandomGraph(500, 6, builder.WithSeed(9))
	require.NoError(t, err)
	b, err := builder.GenerateRandomGraph(500, 6, builder.WithSeed(9))
	require.NoError(t, err)
	assert.Equal(t, snapshot(t, a), snapshot(t, b))
	assert.Equal(t, 500*6, a.NumEdges())

	for u := 0; u < 500; u++ {
		assert.NotContains(t, neighbors(t, a, u), u, "self-loop at %d", u)
	}
}

func TestRandomGraph_SingleVertex(t *testing.T) {
	g, err := builder.GenerateRandomGraph(1, 3, builder.WithSeed(1))
	require.NoError(t, err)
	assert.Zero(t, g.NumEdges())

	g, err = builder.GenerateRandomGraph(1, 3, builder.WithSeed(1), builder.WithSelfLoops())
	require.NoError(t, err)
	assert.Equal(t, 3, g.NumEdges())
}

// TestPowerLaw_Skew checks the in-degree distribution is heavy-tailed: the
// busiest hub collects far more than the average in-degree.
func TestPowerLaw_Skew(t *testing.T) {
	g, err := builder.GeneratePowerLawGraph(5000, builder.WithSeed(3), builder.WithAttachment(3))
	require.NoError(t, err)
	csr := g.ToCSR()

	in := csr.InDegrees()
	sort.Sort(sort.Reverse(sort.IntSlice(in)))
	avg := float64(csr.NumEdges()) / float64(csr.NumVertices())
	assert.Greater(t, float64(in[0]), 10*avg)

	// every vertex but the first points to min(m, u) distinct older vertices
	for u := 1; u < csr.NumVertices(); u++ {
		nb := csr.Neighbors(u)
		want := 3
		if u < want {
			want = u
		}
		require.Len(t, nb, want)
		seen := map[int]bool{}
		for _, v := range nb {
			assert.Less(t, v, u)
			assert.False(t, seen[v])
			seen[v] = true
		}
	}
}

func TestWeightFn_Applied(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithRand(rand.New(rand.NewSource(1))), builder.WithWeightFn(builder.IntegerWeightFn(1, 5))},
		builder.Path(10))
	require.NoError(t, err)
	require.True(t, g.Weighted())

	w := g.ToWeightedCSR()
	for _, x := range w.Weights() {
		assert.GreaterOrEqual(t, x, float32(1))
		assert.LessOrEqual(t, x, float32(5))
		assert.Equal(t, float32(int(x)), x)
	}
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.WithAttachment(0) })
	assert.Panics(t, func() { builder.ConstantWeightFn(-1) })
	assert.Panics(t, func() { builder.UniformWeightFn(3, 1) })
	assert.Panics(t, func() { builder.IntegerWeightFn(-1, 1) })
}

func TestWeightFns(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	assert.Equal(t, float32(2.5), builder.ConstantWeightFn(2.5)(rng))
	assert.Equal(t, builder.DefaultEdgeWeight, builder.UniformWeightFn(1, 9)(nil))
	assert.Equal(t, float32(4), builder.UniformWeightFn(4, 4)(rng))
	for i := 0; i < 100; i++ {
		x := builder.UniformWeightFn(0.5, 2)(rng)
		assert.True(t, x >= 0.5 && x < 2, "got %v", x)
	}
}
