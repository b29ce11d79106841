package parallel_test

import (
	"testing"

	"github.com/katalvlaran/parlath/parallel"
)

func benchFor(b *testing.B, sched parallel.Schedule) {
	data := make([]float64, 1<<20)
	cfg := parallel.Config{Schedule: sched}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		parallel.For(len(data), cfg, func(_, lo, hi int) {
			for j := lo; j < hi; j++ {
				data[j] = data[j]*0.5 + 1
			}
		})
	}
}

func BenchmarkFor_Static(b *testing.B)  { benchFor(b, parallel.Static) }
func BenchmarkFor_Dynamic(b *testing.B) { benchFor(b, parallel.Dynamic) }
