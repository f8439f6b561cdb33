// Package combine merges the per-mask results of a single-agent search into
// the best outcome for two agents working on disjoint sets of nodes.
//
// What
//
//	Given table: Mask → best value, CombineDisjoint returns
//
//	    max { table[a] + table[b] : a & b == 0 }
//
//	over all ordered pairs, including a == b when that mask is empty. Only
//	overlap disqualifies a pair; identity never does, so an empty-mask-only
//	table combines to table[0] + table[0].
//
// Why
//
//	Two agents that each run the same bounded search cannot both collect
//	the same node. Running the search once with the shortened horizon and
//	pairing disjoint masks gives the two-agent optimum without a joint
//	state space.
//
// Complexity
//
//	Time O(M²) for M distinct masks, memory O(M). M ≤ 2^bits, which is small
//	for the intended inputs.
//
// Determinism
//
//	Masks are visited in ascending order and ties keep the first pair found,
//	so the reported Pair is reproducible.
package combine
