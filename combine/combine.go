package combine

import (
	"errors"
	"sort"

	"golang.org/x/exp/constraints"

	"github.com/adrianroos/advent-of-code-2022/nodetable"
)

// Sentinel errors for CombineDisjoint.
var (
	// ErrEmptyTable is returned when there is nothing to combine.
	ErrEmptyTable = errors.New("combine: empty table")

	// ErrNoDisjointPair is returned when every pair of masks overlaps, which
	// can only happen for a table without the empty mask.
	ErrNoDisjointPair = errors.New("combine: no disjoint pair")
)

// Pair is the winning combination: the two agents' masks and their summed value.
type Pair[V constraints.Integer] struct {
	A, B  nodetable.Mask
	Value V
}

// CombineDisjoint returns the best pair of non-overlapping masks in table.
// The self-pair is considered whenever a mask does not overlap itself, i.e.
// only for the empty mask. Returns ErrEmptyTable when table has no entries and
// ErrNoDisjointPair when every pair overlaps.
func CombineDisjoint[V constraints.Integer](table map[nodetable.Mask]V) (Pair[V], error) {
	if len(table) == 0 {
		return Pair[V]{}, ErrEmptyTable
	}

	masks := make([]nodetable.Mask, 0, len(table))
	for m := range table {
		masks = append(masks, m)
	}
	sort.Slice(masks, func(i, j int) bool { return masks[i] < masks[j] })

	var (
		best  Pair[V]
		found bool
	)
	// Pairs are symmetric, so j starts at i; i == j covers the self-pair.
	for i, a := range masks {
		va := table[a]
		for _, b := range masks[i:] {
			if a.Overlaps(b) {
				continue
			}
			if sum := va + table[b]; !found || sum > best.Value {
				best = Pair[V]{A: a, B: b, Value: sum}
				found = true
			}
		}
	}
	if !found {
		return Pair[V]{}, ErrNoDisjointPair
	}

	return best, nil
}

// BruteForce is the unoptimised reference for CombineDisjoint: it tries every
// ordered pair in map order and returns only the value.
func BruteForce[V constraints.Integer](table map[nodetable.Mask]V) (V, error) {
	if len(table) == 0 {
		return 0, ErrEmptyTable
	}
	var (
		best  V
		found bool
	)
	for a, va := range table {
		for b, vb := range table {
			if a&b != 0 {
				continue
			}
			if !found || va+vb > best {
				best, found = va+vb, true
			}
		}
	}
	if !found {
		return 0, ErrNoDisjointPair
	}
	return best, nil
}
