package components_test

import (
	"testing"

	"github.com/katalvlaran/parlath/builder"
	"github.com/katalvlaran/parlath/components"
)

func BenchmarkConnectedComponents(b *testing.B) {
	g, err := builder.GenerateRandomGraph(200_000, 2, builder.WithSeed(42))
	if err != nil {
		b.Fatal(err)
	}
	csr := g.ToCSR()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = components.ConnectedComponents(csr)
	}
}
