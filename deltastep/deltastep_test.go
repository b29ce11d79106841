package deltastep_test

import (
	"context"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/parlath/balance"
	"github.com/katalvlaran/parlath/builder"
	"github.com/katalvlaran/parlath/core"
	"github.com/katalvlaran/parlath/deltastep"
	"github.com/katalvlaran/parlath/dijkstra"
	"github.com/katalvlaran/parlath/parallel"
)

var inf = float32(math.Inf(1))

func weighted(t *testing.T, n int, edges []core.WeightedEdge) *core.WeightedCSRGraph {
	t.Helper()
	g, err := core.FromWeightedEdgeList(n, edges)
	require.NoError(t, err)

	return g.ToWeightedCSR()
}

func TestDeltaStepping_Errors(t *testing.T) {
	g := weighted(t, 2, []core.WeightedEdge{{From: 0, To: 1, Weight: 1}})

	_, err := deltastep.DeltaStepping(nil, 0, 1)
	assert.ErrorIs(t, err, deltastep.ErrNilGraph)
	_, err = deltastep.DeltaStepping(g, 5, 1)
	assert.ErrorIs(t, err, deltastep.ErrVertexNotFound)
	for _, d := range []float32{0, -1, float32(math.NaN()), inf} {
		_, err = deltastep.DeltaStepping(g, 0, d)
		assert.ErrorIs(t, err, deltastep.ErrBadDelta, "delta=%v", d)
	}
	_, err = deltastep.DeltaStepping(g, 0, 1, deltastep.WithWorkers(-1))
	assert.ErrorIs(t, err, deltastep.ErrOptionViolation)
}

// TestDeltaStepping_ShortcutBeatsDirect covers 0→1(1), 1→2(2), 0→2(4).
func TestDeltaStepping_ShortcutBeatsDirect(t *testing.T) {
	g := weighted(t, 3, []core.WeightedEdge{
		{From: 0, To: 1, Weight: 1}, {From: 1, To: 2, Weight: 2}, {From: 0, To: 2, Weight: 4},
	})
	for _, delta := range []float32{0.5, 1, 2, 3, 10} {
		dist, err := deltastep.DeltaStepping(g, 0, delta)
		require.NoError(t, err)
		assert.Equal(t, []float32{0, 1, 3}, dist, "delta=%v", delta)
	}
}

func TestDeltaStepping_UnreachableAndIsolated(t *testing.T) {
	g := weighted(t, 4, []core.WeightedEdge{{From: 0, To: 1, Weight: 2}, {From: 2, To: 3, Weight: 1}})
	dist, err := deltastep.DeltaStepping(g, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 2, inf, inf}, dist)

	dist, err = deltastep.DeltaStepping(g, 3, 1)
	require.NoError(t, err)
	assert.Equal(t, []float32{inf, inf, inf, 0}, dist)
}

func TestDeltaStepping_ZeroWeightsAndLoops(t *testing.T) {
	g := weighted(t, 4, []core.WeightedEdge{
		{From: 0, To: 0, Weight: 0}, {From: 0, To: 1, Weight: 0}, {From: 1, To: 2, Weight: 0},
		{From: 2, To: 1, Weight: 0}, {From: 2, To: 3, Weight: 7},
	})
	dist, err := deltastep.DeltaStepping(g, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 0, 0, 7}, dist)
}

// TestDeltaStepping_MatchesDijkstra checks agreement with the sequential
// reference on random and power-law graphs across a range of Δ.
func TestDeltaStepping_MatchesDijkstra(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-2)
	for _, seed := range []int64{1, 2, 3} {
		rg, err := builder.GenerateRandomGraph(1500, 5,
			builder.WithSeed(seed), builder.WithWeightFn(builder.UniformWeightFn(0.1, 10)))
		require.NoError(t, err)
		pg, err := builder.GeneratePowerLawGraph(1500,
			builder.WithSeed(seed), builder.WithWeightFn(builder.UniformWeightFn(0, 5)))
		require.NoError(t, err)

		for name, g := range map[string]*core.WeightedCSRGraph{"random": rg.ToWeightedCSR(), "powerlaw": pg.ToWeightedCSR()} {
			want, _, err := dijkstra.Dijkstra(g, 0)
			require.NoError(t, err)
			for _, delta := range []float32{0.05, 0.5, 1, 3, 100, deltastep.SuggestDelta(g)} {
				got, err := deltastep.DeltaStepping(g, 0, delta, deltastep.WithWorkers(4), deltastep.WithGrain(8))
				require.NoError(t, err)
				if diff := cmp.Diff(want, got, approx); diff != "" {
					t.Fatalf("%s seed=%d delta=%v (-dijkstra +delta):\n%s", name, seed, delta, diff)
				}
			}
		}
	}
}

// TestDeltaStepping_IntegerWeightsExact uses integer weights so both solvers
// produce bit-identical sums.
func TestDeltaStepping_IntegerWeightsExact(t *testing.T) {
	ag, err := builder.GenerateRandomGraph(800, 4,
		builder.WithSeed(17), builder.WithWeightFn(builder.IntegerWeightFn(0, 9)))
	require.NoError(t, err)
	g := ag.ToWeightedCSR()

	want, _, err := dijkstra.Dijkstra(g, 3)
	require.NoError(t, err)
	for _, sched := range []parallel.Schedule{parallel.Static, parallel.Dynamic} {
		got, err := deltastep.DeltaStepping(g, 3, 2, deltastep.WithSchedule(sched))
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestDeltaStepping_StatsAndMonitor(t *testing.T) {
	g := weighted(t, 4, []core.WeightedEdge{
		{From: 0, To: 1, Weight: 1}, {From: 0, To: 2, Weight: 10}, {From: 1, To: 3, Weight: 1},
	})
	var st deltastep.Stats
	mon := balance.NewMonitor(2)
	dist, err := deltastep.DeltaStepping(g, 0, 2,
		deltastep.WithStats(&st), deltastep.WithMonitor(mon), deltastep.WithWorkers(2))
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 1, 10, 2}, dist)

	assert.Equal(t, int64(2), st.LightRelaxations)
	assert.Equal(t, int64(1), st.HeavyRelaxations)
	assert.Equal(t, int64(3), st.Improvements)
	assert.Equal(t, 3, st.Buckets) // buckets 0, 1 and 5
	assert.Positive(t, st.LightPhases)
	assert.Positive(t, st.HeavyPhases)
	assert.Equal(t, int64(3), mon.Total())
}

func TestDeltaStepping_ContextCancelled(t *testing.T) {
	g := weighted(t, 2, []core.WeightedEdge{{From: 0, To: 1, Weight: 1}})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := deltastep.DeltaStepping(g, 0, 1, deltastep.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSuggestDelta(t *testing.T) {
	assert.Equal(t, float32(1), deltastep.SuggestDelta(nil))
	assert.Equal(t, float32(1), deltastep.SuggestDelta(weighted(t, 3, nil)))

	g := weighted(t, 2, []core.WeightedEdge{{From: 0, To: 1, Weight: 8}, {From: 1, To: 0, Weight: 2}})
	// maxW=8, avg degree=1
	assert.Equal(t, float32(8), deltastep.SuggestDelta(g))
}
