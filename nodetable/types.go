package nodetable

import (
	"errors"
	"math/bits"
)

// Sentinel errors for table construction and lookup.
var (
	// ErrEmptyName is returned when a node is declared without a name.
	ErrEmptyName = errors.New("nodetable: node name is empty")

	// ErrNegativeWeight is returned for a weight below zero.
	ErrNegativeWeight = errors.New("nodetable: negative weight")

	// ErrDuplicateNode is returned when the same name is declared twice.
	ErrDuplicateNode = errors.New("nodetable: duplicate node")

	// ErrUnknownNeighbor is returned when an adjacency target is not a declared node.
	ErrUnknownNeighbor = errors.New("nodetable: unknown neighbor")

	// ErrStartNotFound is returned when the WithStart node was never declared.
	ErrStartNotFound = errors.New("nodetable: start node not found")

	// ErrMaskOverflow is returned when there are more activatable nodes than mask bits.
	ErrMaskOverflow = errors.New("nodetable: too many activatable nodes for mask width")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("nodetable: invalid option supplied")
)

// MaxMaskWidth is the number of bits available in a Mask.
const MaxMaskWidth = 64

// Node is the integer index of a node inside its Table.
type Node = int

// Mask is a set of activated nodes: bit i is set when the node whose Bit is i
// has been activated.
type Mask uint64

// Has reports whether bit is set.
func (m Mask) Has(bit int) bool {
	return m>>uint(bit)&1 == 1
}

// With returns m with bit set.
func (m Mask) With(bit int) Mask {
	return m | 1<<uint(bit)
}

// Overlaps reports whether m and o share any set bit.
func (m Mask) Overlaps(o Mask) bool {
	return m&o != 0
}

// Len returns the number of set bits.
func (m Mask) Len() int {
	return bits.OnesCount64(uint64(m))
}

// NodeInfo describes a single node of the universe.
type NodeInfo struct {
	// Name is the external identifier, e.g. "AA".
	Name string

	// Weight is the value gained per remaining time step when the node is activated.
	Weight int64

	// Adjacent lists the nodes reachable in one time step, in declaration order.
	Adjacent []Node

	// Bit is the node's Mask bit, or -1 when Weight is zero.
	Bit int
}

// Activatable reports whether the node can ever be activated.
func (n NodeInfo) Activatable() bool {
	return n.Bit >= 0
}
