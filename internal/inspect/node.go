package inspect

// Display caps. Every build obeys all three regardless of the shape of the
// source value, so construction terminates even for infinite sequences and
// self-referential structures.
const (
	// MaxDepth is the maximum distance, in hops, from the root to any node.
	MaxDepth = 5
	// MaxText is the maximum length, in runes, of a node's value text.
	MaxText = 10000
	// MaxElements is the maximum number of children of a sequence node.
	MaxElements = 10000
)

const nullText = "<null>"

// Node is one entry of a display tree. A Node with no children is a leaf.
//
// Nodes are created once by a build and never mutated afterwards; ownership
// transfers entirely to the caller on return and no Node is shared across
// separate builds. The tree mirrors the structure reachable from the source
// value at call time, not the live object graph, so cycles in the value cannot
// produce cycles in the tree.
type Node struct {
	// Label is the name shown before the value, empty when absent.
	Label string
	// Value is the display text for the node itself.
	Value string
	// Message and SourceLine are set only on roots produced by CreateError.
	// SourceLine is 0 when no stack frame could be attributed to script code.
	Message    string
	SourceLine int
	// Children are ordered; nil for leaves.
	Children []*Node
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// Subscribe registers fn for change notification. Nodes are immutable once
// built, so no event is ever delivered and no reference to fn is retained;
// the returned cancel is a no-op. The method exists for binding layers that
// require an observable surface on everything they display; a short-lived
// inspection tree must not be kept alive by a long-lived subscriber.
func (n *Node) Subscribe(fn func(*Node)) (cancel func()) {
	_ = fn
	return func() {}
}
