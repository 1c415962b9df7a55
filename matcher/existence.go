package matcher

import "github.com/mongoryhq/mongory-go/value"

// existsNode implements $exists: a plain boolean-equality test between the
// condition and whether the record is present (not absent). Absence is
// signaled by value.Missing(), which the field matcher hands down for a
// missing key or index; an explicit null value still counts as present.
type existsNode struct {
	base
}

func (n *existsNode) Match(record *value.Value) bool {
	want := n.condition.Bool()
	return want == !record.IsMissing()
}

func (n *existsNode) matchTraced(record *value.Value, rec *Recorder) bool {
	matched := n.Match(record)
	rec.record(n, record, matched, nil)
	return matched
}

func (n *existsNode) Traverse(visit Visitor)             { n.traverseAt(0, visit) }
func (n *existsNode) traverseAt(depth int, visit Visitor) { traverseNode(n, nil, depth, visit) }
func (n *existsNode) childNodes() []Node                  { return nil }

// newExistsNode validates that condition is a Bool, per
// existance_matcher.c's mongory_matcher_validate_bool_condition.
func newExistsNode(condition *value.Value) (Node, *value.Error) {
	if condition.Kind != value.KindBool {
		return nil, value.NewError(value.KindInvalidArgument, "$exists condition must be a bool")
	}
	return &existsNode{base: base{name: "$exists", condition: condition, priority: priorityExists}}, nil
}

// presentNode implements $present's ten-variant truthiness matrix, grounded
// on existance_matcher.c: presence means "meaningfully non-empty" rather
// than merely non-null, with a Bool record specially matched against its
// own value instead of a generic presence check.
type presentNode struct {
	base
}

func (n *presentNode) Match(record *value.Value) bool {
	want := n.condition.Bool()
	return presentTruthy(record) == want
}

// presentTruthy implements the matrix: Null is never present; Array/Map are
// present only if non-empty; String is present only if non-empty; Bool is
// present as itself (true is present, false is not); every other non-null
// scalar (Int, Double, Regex, Pointer) is present.
func presentTruthy(record *value.Value) bool {
	switch record.Kind {
	case value.KindNull:
		return false
	case value.KindArray:
		return record.Array().Len() > 0
	case value.KindMap:
		return record.Map().Len() > 0
	case value.KindString:
		return record.Str() != ""
	case value.KindBool:
		return record.Bool()
	default:
		return true
	}
}

func (n *presentNode) matchTraced(record *value.Value, rec *Recorder) bool {
	matched := n.Match(record)
	rec.record(n, record, matched, nil)
	return matched
}

func (n *presentNode) Traverse(visit Visitor)             { n.traverseAt(0, visit) }
func (n *presentNode) traverseAt(depth int, visit Visitor) { traverseNode(n, nil, depth, visit) }
func (n *presentNode) childNodes() []Node                  { return nil }

// newPresentNode validates that condition is a Bool, the same guard
// newExistsNode applies.
func newPresentNode(condition *value.Value) (Node, *value.Error) {
	if condition.Kind != value.KindBool {
		return nil, value.NewError(value.KindInvalidArgument, "$present condition must be a bool")
	}
	return &presentNode{base: base{name: "$present", condition: condition, priority: priorityPresent}}, nil
}
