// Package explore performs a bounded, exhaustive state-space search over a
// nodetable.Table and reports, for every activation Mask reached, the best
// accumulated value seen with that mask.
//
// What
//
//	A state is (node, mask, elapsed) plus the value accumulated so far. From
//	each state the search offers two kinds of Transition:
//	  - Move{To}: walk to an adjacent node, elapsed+1, value unchanged.
//	  - Activate: collect the current node once, elapsed+1, mask gains the
//	    node's bit, value += weight * (horizon - 1 - elapsed).
//	Activation is offered only for positive-weight nodes whose bit is unset,
//	so a zero-weight node never appears in any produced Mask.
//
//	States with elapsed >= horizon are recorded but not expanded. Every
//	produced state, the seed included, updates
//	ResultTable[mask] = max(ResultTable[mask], value).
//
// Dedup
//
//	The dedup key is (node, mask, elapsed). Value is not part of the key, so
//	two paths reaching the same key with different values are reconciled by
//	the policy:
//	  - DedupKeepBest (default) tracks the best value per key and re-expands a
//	    key when it arrives with a strictly higher value. The result is exact
//	    and independent of frontier order.
//	  - DedupFirstSeen expands each key at most once, whatever value arrives
//	    later. Its table can undercount masks whose optimum is only reachable
//	    through a key that was first expanded with a lower value.
//
// Frontier
//
//	FrontierFIFO (breadth-first, default) or FrontierLIFO (stack). With
//	DedupKeepBest both produce the same ResultTable. FIFO pops states in
//	non-decreasing elapsed order, so re-expansions are rare.
//
// Termination
//
//	Every transition advances elapsed by one, and expansion stops at the
//	horizon, so the state space (V · 2^bits · (horizon+1)) is finite and no
//	state can repeat along a path.
//
// Usage
//
//	res, err := explore.Explore(t, "AA", 30)
//	mask, best := res.Table.Best()
//
//	res, err = explore.Explore(t, "AA", 26,
//	    explore.WithContext(ctx),
//	    explore.WithFrontier(explore.FrontierLIFO),
//	    explore.WithOnExpand(func(s explore.State) error { return nil }),
//	)
//
// Errors
//
//   - ErrTableNil        if the table pointer is nil.
//   - ErrStartNotFound   if the start name is not in the table.
//   - ErrOptionViolation for unknown policies or orders.
//   - ctx.Err() when the context is cancelled (checked once per pop).
//   - Wrapped errors returned by the OnExpand hook.
//
// A horizon <= 0 is not an error: only the seed is produced and the table is
// {0: 0}. A start with no neighbors is not an error either.
package explore
