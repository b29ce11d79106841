package deltastep_test

import (
	"testing"

	"github.com/katalvlaran/parlath/builder"
	"github.com/katalvlaran/parlath/core"
	"github.com/katalvlaran/parlath/deltastep"
	"github.com/katalvlaran/parlath/dijkstra"
)

func benchGraph(b *testing.B) *core.WeightedCSRGraph {
	b.Helper()
	g, err := builder.GenerateRandomGraph(100_000, 8,
		builder.WithSeed(42), builder.WithWeightFn(builder.UniformWeightFn(0.1, 10)))
	if err != nil {
		b.Fatal(err)
	}

	return g.ToWeightedCSR()
}

func BenchmarkDijkstra(b *testing.B) {
	g := benchGraph(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = dijkstra.Dijkstra(g, 0)
	}
}

func BenchmarkDeltaStepping(b *testing.B) {
	g := benchGraph(b)
	delta := deltastep.SuggestDelta(g)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = deltastep.DeltaStepping(g, 0, delta)
	}
}
