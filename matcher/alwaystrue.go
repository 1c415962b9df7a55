package matcher

import "github.com/mongoryhq/mongory-go/value"

// alwaysNode is the constant leaf base_matcher.c provides two variants of:
// "Always True" (the empty-query compile result) and "Always False".
type alwaysNode struct {
	base
	result bool
}

func (n *alwaysNode) Match(record *value.Value) bool { return n.result }

func (n *alwaysNode) matchTraced(record *value.Value, rec *Recorder) bool {
	rec.record(n, record, n.result, nil)
	return n.result
}

func (n *alwaysNode) Traverse(visit Visitor)             { n.traverseAt(0, visit) }
func (n *alwaysNode) traverseAt(depth int, visit Visitor) { traverseNode(n, nil, depth, visit) }
func (n *alwaysNode) childNodes() []Node                  { return nil }

func newAlwaysTrueNode() Node {
	return &alwaysNode{base: base{name: "Always True", condition: value.Null(), priority: priorityEq}, result: true}
}

func newAlwaysFalseNode() Node {
	return &alwaysNode{base: base{name: "Always False", condition: value.Null(), priority: priorityEq}, result: false}
}
