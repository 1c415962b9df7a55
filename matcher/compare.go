package matcher

import "github.com/mongoryhq/mongory-go/value"

// compareNode implements $eq, $ne, $gt, $gte, $lt, $lte: a single
// condition value compared against the record via Value.Compare, each
// operator picking a different Ordering (or set of Orderings) to accept.
// Grounded on compare_matcher.c's generic factory pattern, where every
// comparison operator is the same struct parameterized by a match_func.
type compareNode struct {
	base
	accept func(value.Ordering) bool
}

func (n *compareNode) Match(record *value.Value) bool {
	return n.accept(record.Compare(n.condition))
}

func (n *compareNode) matchTraced(record *value.Value, rec *Recorder) bool {
	matched := n.Match(record)
	rec.record(n, record, matched, nil)
	return matched
}

func (n *compareNode) Traverse(visit Visitor)               { n.traverseAt(0, visit) }
func (n *compareNode) traverseAt(depth int, visit Visitor)   { traverseNode(n, nil, depth, visit) }
func (n *compareNode) childNodes() []Node                    { return nil }

func newCompareNode(name string, priority float64, condition *value.Value, accept func(value.Ordering) bool) Node {
	return &compareNode{base: base{name: name, condition: condition, priority: priority}, accept: accept}
}

func newEqNode(condition *value.Value) Node {
	return newCompareNode("$eq", priorityEq, condition, func(o value.Ordering) bool { return o == value.Equal })
}

func newNeNode(condition *value.Value) Node {
	return newCompareNode("$ne", priorityNe, condition, func(o value.Ordering) bool { return o != value.Equal })
}

func newGtNode(condition *value.Value) Node {
	return newCompareNode("$gt", priorityGt, condition, func(o value.Ordering) bool { return o == value.Greater })
}

func newGteNode(condition *value.Value) Node {
	return newCompareNode("$gte", priorityGte, condition, func(o value.Ordering) bool { return o == value.Greater || o == value.Equal })
}

func newLtNode(condition *value.Value) Node {
	return newCompareNode("$lt", priorityLt, condition, func(o value.Ordering) bool { return o == value.Less })
}

func newLteNode(condition *value.Value) Node {
	return newCompareNode("$lte", priorityLte, condition, func(o value.Ordering) bool { return o == value.Less || o == value.Equal })
}
