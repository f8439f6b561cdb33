package explore

import (
	"fmt"

	"github.com/adrianroos/advent-of-code-2022/nodetable"
)

// TransitionKind tags the variant held by a Transition.
type TransitionKind uint8

const (
	// MoveKind walks to an adjacent node.
	MoveKind TransitionKind = iota

	// ActivateKind collects the current node.
	ActivateKind
)

// Transition is one legal step out of a State: either Move{To} or Activate.
// To is meaningful only for MoveKind.
type Transition struct {
	Kind TransitionKind
	To   nodetable.Node
}

// Move returns a transition to node to.
func Move(to nodetable.Node) Transition {
	return Transition{Kind: MoveKind, To: to}
}

// Activate returns the activation transition.
func Activate() Transition {
	return Transition{Kind: ActivateKind}
}

// String renders the transition for logs and test failures.
func (tr Transition) String() string {
	if tr.Kind == ActivateKind {
		return "Activate"
	}
	return fmt.Sprintf("Move(%d)", tr.To)
}

// Expand appends to dst every transition legal from s under horizon and
// returns the extended slice. States at or past the horizon have none.
//
// Moves come first, in adjacency order, followed by Activate when the current
// node has positive weight and its bit is not yet set in s.Mask.
func Expand(t *nodetable.Table, horizon int, s State, dst []Transition) []Transition {
	if s.Elapsed >= horizon {
		return dst
	}
	for _, nb := range t.Adjacent(s.Node) {
		dst = append(dst, Move(nb))
	}
	if bit, ok := t.Bit(s.Node); ok && !s.Mask.Has(bit) {
		dst = append(dst, Activate())
	}
	return dst
}

// Apply returns the state reached from s by tr. The transition must have
// been produced by Expand for the same table, horizon and state.
func Apply(t *nodetable.Table, horizon int, s State, tr Transition) State {
	switch tr.Kind {
	case ActivateKind:
		bit, _ := t.Bit(s.Node)
		remaining := int64(horizon - 1 - s.Elapsed)
		return State{
			Node:    s.Node,
			Mask:    s.Mask.With(bit),
			Elapsed: s.Elapsed + 1,
			Value:   s.Value + t.Weight(s.Node)*remaining,
		}
	default:
		return State{
			Node:    tr.To,
			Mask:    s.Mask,
			Elapsed: s.Elapsed + 1,
			Value:   s.Value,
		}
	}
}
