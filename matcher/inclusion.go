package matcher

import "github.com/mongoryhq/mongory-go/value"

// inclusionNode implements $in/$nin, grounded on inclusion_matcher.c: a
// scalar record value matches if it is Equal to any element of the
// condition array; an array record value matches if any of its elements is
// Equal to any condition element (an intersection test). $nin negates.
type inclusionNode struct {
	base
	negate bool
}

func (n *inclusionNode) Match(record *value.Value) bool {
	set := n.condition.Array()
	var found bool
	if record.Kind == value.KindArray {
		record.Array().Each(func(_ int, v *value.Value) {
			if !found && set.Includes(v) {
				found = true
			}
		})
	} else {
		found = set.Includes(record)
	}
	if n.negate {
		return !found
	}
	return found
}

func (n *inclusionNode) matchTraced(record *value.Value, rec *Recorder) bool {
	matched := n.Match(record)
	rec.record(n, record, matched, nil)
	return matched
}

func (n *inclusionNode) Traverse(visit Visitor)             { n.traverseAt(0, visit) }
func (n *inclusionNode) traverseAt(depth int, visit Visitor) { traverseNode(n, nil, depth, visit) }
func (n *inclusionNode) childNodes() []Node                  { return nil }

// newInNode/newNinNode validate that condition is an Array, per
// inclusion_matcher.c's mongory_matcher_validate_array_condition.
func newInNode(condition *value.Value) (Node, *value.Error) {
	return newInclusionNode("$in", condition, false)
}

func newNinNode(condition *value.Value) (Node, *value.Error) {
	return newInclusionNode("$nin", condition, true)
}

func newInclusionNode(name string, condition *value.Value, negate bool) (Node, *value.Error) {
	if condition.Kind != value.KindArray {
		return nil, value.NewError(value.KindInvalidType, "%s condition must be an array", name)
	}
	priority := inclusionPriority(condition.Array().Len())
	return &inclusionNode{base: base{name: name, condition: condition, priority: priority}, negate: negate}, nil
}
