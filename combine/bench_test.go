package combine_test

import (
	"math/rand"
	"testing"

	"github.com/adrianroos/advent-of-code-2022/combine"
	"github.com/adrianroos/advent-of-code-2022/nodetable"
)

// BenchmarkCombineDisjoint_Full12 pairs every mask of a 12-bit universe.
func BenchmarkCombineDisjoint_Full12(b *testing.B) {
	const bits = 12
	rng := rand.New(rand.NewSource(1))
	table := make(map[nodetable.Mask]int64, 1<<bits)
	for m := 0; m < 1<<bits; m++ {
		table[nodetable.Mask(m)] = rng.Int63n(3000)
	}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = combine.CombineDisjoint(table)
	}
}
