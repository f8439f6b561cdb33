package nodetable

import (
	"fmt"
)

// Table is the immutable node universe produced by Builder.Build.
// All methods are safe for concurrent use because a Table is never mutated.
type Table struct {
	nodes       []NodeInfo
	index       map[string]Node
	activatable int
}

// Len returns the number of nodes.
func (t *Table) Len() int {
	return len(t.nodes)
}

// Activatable returns the number of nodes that own a mask bit.
func (t *Table) Activatable() int {
	return t.activatable
}

// Index returns the index of the named node.
func (t *Table) Index(name string) (Node, bool) {
	i, ok := t.index[name]
	return i, ok
}

// Node returns the full description of node i. Adjacent must not be modified.
func (t *Table) Node(i Node) NodeInfo {
	return t.nodes[i]
}

// Name returns the name of node i.
func (t *Table) Name(i Node) string {
	return t.nodes[i].Name
}

// Weight returns the weight of node i.
func (t *Table) Weight(i Node) int64 {
	return t.nodes[i].Weight
}

// Adjacent returns the neighbors of node i. The slice must not be modified.
func (t *Table) Adjacent(i Node) []Node {
	return t.nodes[i].Adjacent
}

// Bit returns the mask bit of node i; ok is false for zero-weight nodes.
func (t *Table) Bit(i Node) (bit int, ok bool) {
	b := t.nodes[i].Bit
	return b, b >= 0
}

// MaskOf builds the Mask containing the named nodes.
// It fails for unknown names and for nodes that cannot be activated.
func (t *Table) MaskOf(names ...string) (Mask, error) {
	var m Mask
	for _, name := range names {
		i, ok := t.index[name]
		if !ok {
			return 0, fmt.Errorf("nodetable: unknown node %q", name)
		}
		bit, ok := t.Bit(i)
		if !ok {
			return 0, fmt.Errorf("nodetable: node %q has zero weight and no mask bit", name)
		}
		m = m.With(bit)
	}

	return m, nil
}

// Names lists the nodes whose bits are set in m, in index order.
func (t *Table) Names(m Mask) []string {
	names := make([]string, 0, m.Len())
	for _, n := range t.nodes {
		if n.Bit >= 0 && m.Has(n.Bit) {
			names = append(names, n.Name)
		}
	}

	return names
}

// Reachable returns the number of nodes reachable from start (start included)
// and how many of them are activatable. Used for diagnostics only; an
// unreachable node is never an error.
func (t *Table) Reachable(start Node) (nodes, activatable int) {
	if start < 0 || start >= len(t.nodes) {
		return 0, 0
	}
	visited := make([]bool, len(t.nodes))
	visited[start] = true
	queue := []Node{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		nodes++
		if t.nodes[cur].Bit >= 0 {
			activatable++
		}
		for _, nb := range t.nodes[cur].Adjacent {
			if !visited[nb] {
				visited[nb] = true
				queue = append(queue, nb)
			}
		}
	}

	return nodes, activatable
}
