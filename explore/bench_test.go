package explore_test

import (
	"testing"

	"github.com/adrianroos/advent-of-code-2022/explore"
)

// BenchmarkExplore_Sample measures the ten-valve network at horizon 30.
func BenchmarkExplore_Sample(b *testing.B) {
	tbl := sampleTable(b)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = explore.Explore(tbl, "AA", 30)
	}
}

// BenchmarkExplore_SampleLIFO measures the same search with a stack frontier,
// which re-expands keys more often under DedupKeepBest.
func BenchmarkExplore_SampleLIFO(b *testing.B) {
	tbl := sampleTable(b)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = explore.Explore(tbl, "AA", 30, explore.WithFrontier(explore.FrontierLIFO))
	}
}

// BenchmarkExplore_FirstSeen measures the expand-once policy.
func BenchmarkExplore_FirstSeen(b *testing.B) {
	tbl := sampleTable(b)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = explore.Explore(tbl, "AA", 30, explore.WithDedup(explore.DedupFirstSeen))
	}
}
