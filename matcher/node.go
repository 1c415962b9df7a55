// Package matcher implements the compiled predicate tree: leaf operators,
// composite combinators, the field/literal-wrapper pair, the array-record
// duality matcher, and the priority-ordered compiler that turns a query
// document into an evaluable Node.
package matcher

import (
	"github.com/mongoryhq/mongory-go/value"
)

// Node is one evaluable unit of a compiled matcher tree. A tree is
// immutable once Compile returns: there is no mutation point left after
// construction (the array-record delegate, unlike the original C
// implementation, is always built eagerly), so a compiled Node is safe to
// evaluate from multiple goroutines concurrently.
type Node interface {
	// Name identifies the node for explain/trace text, e.g. "$eq" or
	// "Field".
	Name() string

	// Condition is the Value this node was compiled from.
	Condition() *value.Value

	// Match evaluates the node against a record. It never fails; ill-typed
	// or missing data simply does not match (except where an operator's own
	// semantics invert that, e.g. $ne and $nin).
	Match(record *value.Value) bool

	// Priority orders siblings for short-circuiting; lower runs first.
	Priority() float64

	// Traverse walks this node and its children in pre-order, starting at
	// depth 0. visit returning false prunes the subtree.
	Traverse(visit Visitor)

	// traverseAt is Traverse's internal counterpart, letting a parent
	// recurse into a child at the correct depth. Unexported because only
	// sibling node implementations in this package need to call it.
	traverseAt(depth int, visit Visitor)

	// childNodes returns this node's immediate children, nil for a leaf.
	// Unexported; used by explain.go to draw accurate box-art connectors
	// without relying on Visitor/depth bookkeeping alone.
	childNodes() []Node
}

// Visitor is called once per node during a Traverse, with depth counted
// from the traversal's root. Returning false skips the node's children.
type Visitor func(n Node, depth int) bool

// tracedNode is implemented by nodes whose Match needs a Recorder to build
// trace output; see trace.go. Every node type in this package implements
// it alongside its own Match, which evaluates without recording.
type tracedNode interface {
	matchTraced(record *value.Value, rec *Recorder) bool
}

func matchWithRecorder(n Node, record *value.Value, rec *Recorder) bool {
	if tn, ok := n.(tracedNode); ok {
		return tn.matchTraced(record, rec)
	}
	return n.Match(record)
}

// traverseNode is the shared pre-order walk every concrete node type's
// Traverse/traverseAt delegates to, with self passed explicitly since a
// method on an embedded base struct cannot recover the outer concrete type
// on its own.
func traverseNode(self Node, children []Node, depth int, visit Visitor) {
	if !visit(self, depth) {
		return
	}
	for _, c := range children {
		c.traverseAt(depth+1, visit)
	}
}
