package nodetable

import (
	"fmt"
)

// Option configures a Builder.
// Invalid options are recorded and surfaced as ErrOptionViolation by Build.
type Option func(*Builder)

// WithStart reserves index 0 for the named node.
func WithStart(name string) Option {
	return func(b *Builder) {
		b.start = name
	}
}

// WithMaskWidth limits the number of mask bits available to activatable nodes.
//
//	1 <= bits <= 64: use bits
//	otherwise:       ErrOptionViolation
func WithMaskWidth(bits int) Option {
	return func(b *Builder) {
		if bits < 1 || bits > MaxMaskWidth {
			b.err = fmt.Errorf("%w: mask width must be in [1,%d] (got %d)", ErrOptionViolation, MaxMaskWidth, bits)
			return
		}
		b.width = bits
	}
}

// declaration is a node as written by the caller, before names are resolved.
type declaration struct {
	name     string
	weight   int64
	adjacent []string
}

// Builder accumulates node declarations and produces a validated Table.
// A Builder is not safe for concurrent use.
type Builder struct {
	decls []declaration
	seen  map[string]struct{}
	start string
	width int
	err   error
}

// NewBuilder returns an empty Builder with a 64-bit mask width.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		seen:  make(map[string]struct{}),
		width: MaxMaskWidth,
	}
	for _, opt := range opts {
		opt(b)
	}

	return b
}

// AddNode declares a node with its weight and the names of its neighbors.
// Neighbors may be declared later; they are resolved by Build.
func (b *Builder) AddNode(name string, weight int64, adjacent ...string) error {
	if name == "" {
		return ErrEmptyName
	}
	if weight < 0 {
		return fmt.Errorf("%w: %q has weight %d", ErrNegativeWeight, name, weight)
	}
	if _, dup := b.seen[name]; dup {
		return fmt.Errorf("%w: %q", ErrDuplicateNode, name)
	}
	b.seen[name] = struct{}{}
	adj := make([]string, len(adjacent))
	copy(adj, adjacent)
	b.decls = append(b.decls, declaration{name: name, weight: weight, adjacent: adj})

	return nil
}

// Build resolves every declaration into a Table.
//
// Steps:
//  1. Order nodes: the start node (if any) first, the rest in declaration order.
//  2. Assign dense mask bits to positive-weight nodes, failing fast with
//     ErrMaskOverflow when they outnumber the mask width.
//  3. Resolve adjacency names to indices (ErrUnknownNeighbor).
//
// Complexity: O(V + E).
func (b *Builder) Build() (*Table, error) {
	if b.err != nil {
		return nil, b.err
	}

	order := make([]declaration, 0, len(b.decls))
	if b.start != "" {
		if _, ok := b.seen[b.start]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrStartNotFound, b.start)
		}
		for _, d := range b.decls {
			if d.name == b.start {
				order = append(order, d)
				break
			}
		}
	}
	for _, d := range b.decls {
		if d.name != b.start {
			order = append(order, d)
		}
	}

	t := &Table{
		nodes: make([]NodeInfo, len(order)),
		index: make(map[string]Node, len(order)),
	}
	for i, d := range order {
		t.index[d.name] = i
		bit := -1
		if d.weight > 0 {
			if t.activatable == b.width {
				return nil, fmt.Errorf("%w: %q would need bit %d of %d", ErrMaskOverflow, d.name, t.activatable, b.width)
			}
			bit = t.activatable
			t.activatable++
		}
		t.nodes[i] = NodeInfo{Name: d.name, Weight: d.weight, Bit: bit}
	}
	for i, d := range order {
		adj := make([]Node, 0, len(d.adjacent))
		for _, nb := range d.adjacent {
			j, ok := t.index[nb]
			if !ok {
				return nil, fmt.Errorf("%w: %q lists %q", ErrUnknownNeighbor, d.name, nb)
			}
			adj = append(adj, j)
		}
		t.nodes[i].Adjacent = adj
	}

	return t, nil
}
