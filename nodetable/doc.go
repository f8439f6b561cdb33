// Package nodetable defines the read-only node universe searched by the
// explore package: named nodes carrying a non-negative weight and an ordered
// adjacency list, each mapped to a stable integer index and, when its weight
// is positive, to a dense bit of a 64-bit activation Mask.
//
// What
//
//   - Builder collects nodes in declaration order and validates them once.
//   - Table is the immutable result: index ↔ name lookups, weights,
//     adjacency, activation bits and Mask helpers.
//   - Mask is a compact set of activated nodes.
//
// Why
//
//	Search engines that memoize on (node, activated-set, time) need the
//	activated set to be a small comparable value. Only positive-weight nodes
//	receive a bit, so pass-through nodes never consume mask width.
//
// Invariants
//
//   - Every adjacency target names an existing node (ErrUnknownNeighbor).
//   - The start node declared with WithStart has index 0.
//   - Bits are assigned densely 0..Activatable()-1 in index order.
//   - A zero-weight node has Bit == -1 and can never appear in a Mask.
//   - Activatable() never exceeds the configured mask width (ErrMaskOverflow).
//     The check runs once in Build, never during a search.
//
// Usage
//
//	b := nodetable.NewBuilder(nodetable.WithStart("AA"))
//	_ = b.AddNode("AA", 0, "BB", "CC")
//	_ = b.AddNode("BB", 13, "AA")
//	_ = b.AddNode("CC", 2, "AA")
//	t, err := b.Build()
//
// Errors
//
//   - ErrEmptyName, ErrNegativeWeight, ErrDuplicateNode from AddNode.
//   - ErrUnknownNeighbor, ErrStartNotFound, ErrMaskOverflow,
//     ErrOptionViolation from Build.
package nodetable
