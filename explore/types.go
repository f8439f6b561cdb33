package explore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/adrianroos/advent-of-code-2022/nodetable"
)

// Sentinel errors for Explore.
var (
	// ErrTableNil is returned if a nil table pointer is passed.
	ErrTableNil = errors.New("explore: table is nil")

	// ErrStartNotFound is returned when the start name is absent from the table.
	ErrStartNotFound = errors.New("explore: start node not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("explore: invalid option supplied")
)

// DedupPolicy selects how states sharing a (node, mask, elapsed) key are reconciled.
type DedupPolicy uint8

const (
	// DedupKeepBest re-expands a key whenever it is reached with a higher value.
	DedupKeepBest DedupPolicy = iota

	// DedupFirstSeen expands a key at most once.
	DedupFirstSeen
)

// String returns the policy's configuration name.
func (p DedupPolicy) String() string {
	switch p {
	case DedupKeepBest:
		return "keep-best"
	case DedupFirstSeen:
		return "first-seen"
	default:
		return fmt.Sprintf("DedupPolicy(%d)", uint8(p))
	}
}

// ParseDedupPolicy maps a configuration name to a DedupPolicy.
func ParseDedupPolicy(s string) (DedupPolicy, error) {
	switch s {
	case "", "keep-best":
		return DedupKeepBest, nil
	case "first-seen":
		return DedupFirstSeen, nil
	}
	return 0, fmt.Errorf("%w: unknown dedup policy %q", ErrOptionViolation, s)
}

// FrontierOrder selects which pending state is popped next.
type FrontierOrder uint8

const (
	// FrontierFIFO pops the oldest state (breadth-first).
	FrontierFIFO FrontierOrder = iota

	// FrontierLIFO pops the newest state (depth-first).
	FrontierLIFO
)

// String returns the order's configuration name.
func (o FrontierOrder) String() string {
	switch o {
	case FrontierFIFO:
		return "fifo"
	case FrontierLIFO:
		return "lifo"
	default:
		return fmt.Sprintf("FrontierOrder(%d)", uint8(o))
	}
}

// ParseFrontierOrder maps a configuration name to a FrontierOrder.
func ParseFrontierOrder(s string) (FrontierOrder, error) {
	switch s {
	case "", "fifo":
		return FrontierFIFO, nil
	case "lifo":
		return FrontierLIFO, nil
	}
	return 0, fmt.Errorf("%w: unknown frontier order %q", ErrOptionViolation, s)
}

// Option configures Explore via functional arguments.
// If an Option is invalid it is recorded internally and surfaced as
// ErrOptionViolation when Explore is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Dedup selects the duplicate-key policy.
	Dedup DedupPolicy

	// Frontier selects the pop order.
	Frontier FrontierOrder

	// OnExpand is called before a state is expanded. If it returns an error,
	// the search aborts and propagates that error.
	OnExpand func(s State) error

	// Logger receives start and finish records at debug level.
	Logger *slog.Logger

	err error
}

// DefaultOptions returns Options with background context, DedupKeepBest,
// FrontierFIFO, a no-op hook and the default slog logger.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Dedup:    DedupKeepBest,
		Frontier: FrontierFIFO,
		OnExpand: func(State) error { return nil },
		Logger:   slog.Default(),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithDedup selects the duplicate-key policy.
func WithDedup(p DedupPolicy) Option {
	return func(o *Options) {
		if p > DedupFirstSeen {
			o.err = fmt.Errorf("%w: dedup policy %d", ErrOptionViolation, p)
			return
		}
		o.Dedup = p
	}
}

// WithFrontier selects the frontier pop order.
func WithFrontier(f FrontierOrder) Option {
	return func(o *Options) {
		if f > FrontierLIFO {
			o.err = fmt.Errorf("%w: frontier order %d", ErrOptionViolation, f)
			return
		}
		o.Frontier = f
	}
}

// WithOnExpand registers a callback run before each expansion.
func WithOnExpand(fn func(s State) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithLogger sets the logger used for search summaries.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Key is the dedup key of a State.
type Key struct {
	Node    nodetable.Node
	Mask    nodetable.Mask
	Elapsed int
}

// State is a point of the search: a Key plus the value accumulated on the
// path that produced it.
type State struct {
	Node    nodetable.Node
	Mask    nodetable.Mask
	Elapsed int
	Value   int64
}

// Key projects s onto its dedup key.
func (s State) Key() Key {
	return Key{Node: s.Node, Mask: s.Mask, Elapsed: s.Elapsed}
}

// ResultTable maps every reached Mask to the best value observed with it.
type ResultTable map[nodetable.Mask]int64

// Best returns the highest value in r and its mask. Ties resolve to the
// numerically smallest mask. An empty table yields (0, 0).
func (r ResultTable) Best() (nodetable.Mask, int64) {
	var (
		bestMask  nodetable.Mask
		bestValue int64
		found     bool
	)
	for m, v := range r {
		if !found || v > bestValue || (v == bestValue && m < bestMask) {
			bestMask, bestValue, found = m, v, true
		}
	}
	return bestMask, bestValue
}

// Masks returns the keys of r in ascending order.
func (r ResultTable) Masks() []nodetable.Mask {
	masks := make([]nodetable.Mask, 0, len(r))
	for m := range r {
		masks = append(masks, m)
	}
	sort.Slice(masks, func(i, j int) bool { return masks[i] < masks[j] })
	return masks
}

// Stats counts the work done by a search.
type Stats struct {
	// Produced is the number of states generated, the seed included.
	Produced int

	// Expanded is the number of states whose transitions were enumerated.
	Expanded int

	// Skipped is the number of states discarded as duplicates or stale entries.
	Skipped int

	// PeakFrontier is the largest number of states pending at once.
	PeakFrontier int
}

// Result holds the outcome of a search.
type Result struct {
	Table ResultTable
	Stats Stats
}
