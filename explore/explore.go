// Package explore runs a bounded state-space search over a nodetable.Table.
package explore

import (
	"context"
	"fmt"

	"github.com/adrianroos/advent-of-code-2022/nodetable"
)

// walker encapsulates mutable search state. It is owned by a single Explore
// call and discarded on return.
type walker struct {
	table    *nodetable.Table
	horizon  int
	opts     Options
	ctx      context.Context
	frontier []State
	best     map[Key]int64    // DedupKeepBest: best value pushed per key
	expanded map[Key]struct{} // DedupFirstSeen: keys already expanded
	scratch  []Transition
	res      *Result
}

// Explore searches t from the named start node up to horizon and returns,
// for every Mask reached, the best accumulated value seen with that mask.
//
// Steps:
//  1. Seed the frontier with (start, 0, 0) at value 0.
//  2. Pop a state; skip it if the dedup policy says it was already handled.
//  3. Do not expand states with elapsed >= horizon.
//  4. Produce every Transition from Expand; each produced state updates the
//     ResultTable before it is deduplicated.
//
// Returns ErrTableNil or ErrStartNotFound for invalid input,
// ErrOptionViolation for bad options, ctx.Err() on cancellation, or a
// wrapped OnExpand error.
func Explore(t *nodetable.Table, start string, horizon int, opts ...Option) (*Result, error) {
	if t == nil {
		return nil, ErrTableNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	startIdx, ok := t.Index(start)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrStartNotFound, start)
	}

	w := &walker{
		table:   t,
		horizon: horizon,
		opts:    o,
		ctx:     o.Ctx,
		res:     &Result{Table: make(ResultTable)},
	}
	switch o.Dedup {
	case DedupFirstSeen:
		w.expanded = make(map[Key]struct{})
	default:
		w.best = make(map[Key]int64)
	}

	o.Logger.Debug("explore started",
		"start", start,
		"horizon", horizon,
		"nodes", t.Len(),
		"activatable", t.Activatable(),
		"dedup", o.Dedup.String(),
		"frontier", o.Frontier.String(),
	)

	w.produce(State{Node: startIdx})
	if err := w.loop(); err != nil {
		return nil, err
	}

	o.Logger.Debug("explore finished",
		"masks", len(w.res.Table),
		"produced", w.res.Stats.Produced,
		"expanded", w.res.Stats.Expanded,
		"skipped", w.res.Stats.Skipped,
		"peak_frontier", w.res.Stats.PeakFrontier,
	)
	return w.res, nil
}

// loop processes the frontier until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.frontier) > 0 {
		// cancellation check (once per pop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		s := w.pop()
		if !w.admit(s) {
			w.res.Stats.Skipped++
			continue
		}
		if s.Elapsed >= w.horizon {
			continue
		}
		if err := w.opts.OnExpand(s); err != nil {
			return fmt.Errorf("explore: OnExpand error at node %q elapsed %d: %w", w.table.Name(s.Node), s.Elapsed, err)
		}
		w.res.Stats.Expanded++

		w.scratch = Expand(w.table, w.horizon, s, w.scratch[:0])
		for _, tr := range w.scratch {
			w.produce(Apply(w.table, w.horizon, s, tr))
		}
	}
	return nil
}

// produce records s in the ResultTable and queues it for expansion unless
// DedupKeepBest already holds an equal or better value for its key.
func (w *walker) produce(s State) {
	w.res.Stats.Produced++
	if v, ok := w.res.Table[s.Mask]; !ok || s.Value > v {
		w.res.Table[s.Mask] = s.Value
	}

	if w.best != nil {
		k := s.Key()
		if v, ok := w.best[k]; ok && v >= s.Value {
			w.res.Stats.Skipped++
			return
		}
		w.best[k] = s.Value
	}

	w.frontier = append(w.frontier, s)
	if n := len(w.frontier); n > w.res.Stats.PeakFrontier {
		w.res.Stats.PeakFrontier = n
	}
}

// pop removes the next state according to the frontier order.
func (w *walker) pop() State {
	if w.opts.Frontier == FrontierLIFO {
		last := len(w.frontier) - 1
		s := w.frontier[last]
		w.frontier = w.frontier[:last]
		return s
	}
	s := w.frontier[0]
	w.frontier = w.frontier[1:]
	return s
}

// admit applies the dedup policy at pop time and reports whether s should
// be considered for expansion.
func (w *walker) admit(s State) bool {
	k := s.Key()
	if w.expanded != nil {
		if _, seen := w.expanded[k]; seen {
			return false
		}
		w.expanded[k] = struct{}{}
		return true
	}
	// a higher value for this key was pushed after s
	return s.Value >= w.best[k]
}
