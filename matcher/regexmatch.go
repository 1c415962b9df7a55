package matcher

import (
	"github.com/mongoryhq/mongory-go/registry"
	"github.com/mongoryhq/mongory-go/value"
)

// regexNode implements $regex by delegating entirely to the registered
// regex adapter (registry.RegexMatch), exactly as external_matcher.c does:
// mongory-go never compiles or runs a pattern itself, so a host can swap in
// any regex engine (stdlib regexp, RE2, PCRE via cgo) behind the same
// interface.
type regexNode struct {
	base
}

func (n *regexNode) Match(record *value.Value) bool {
	return registry.RegexMatch(n.condition, record)
}

func (n *regexNode) matchTraced(record *value.Value, rec *Recorder) bool {
	matched := n.Match(record)
	rec.record(n, record, matched, nil)
	return matched
}

func (n *regexNode) Traverse(visit Visitor)             { n.traverseAt(0, visit) }
func (n *regexNode) traverseAt(depth int, visit Visitor) { traverseNode(n, nil, depth, visit) }
func (n *regexNode) childNodes() []Node                  { return nil }

func newRegexNode(condition *value.Value) (Node, *value.Error) {
	if condition.Kind != value.KindRegex && condition.Kind != value.KindString {
		return nil, value.NewError(value.KindInvalidType, "$regex condition must be a regex or string")
	}
	return &regexNode{base: base{name: "$regex", condition: condition, priority: priorityRegex}}, nil
}

// customNode is the external/custom-matcher adapter: a host registers a
// lookup+build pair via registry.SetCustomMatcherHooks, and any "$op" key
// Compile does not recognize as a built-in is offered to that pair before
// being treated as an unknown operator error.
type customNode struct {
	base
	delegate registry.Node
}

func (n *customNode) Match(record *value.Value) bool {
	return n.delegate.Match(record)
}

func (n *customNode) matchTraced(record *value.Value, rec *Recorder) bool {
	matched := n.Match(record)
	rec.record(n, record, matched, nil)
	return matched
}

func (n *customNode) Traverse(visit Visitor)             { n.traverseAt(0, visit) }
func (n *customNode) traverseAt(depth int, visit Visitor) { traverseNode(n, nil, depth, visit) }
func (n *customNode) childNodes() []Node                  { return nil }

func tryCustomNode(name string, pool *value.Pool, condition *value.Value, externCtx any) (Node, *value.Error) {
	lookup, build := registry.CustomMatcherLookupFunc()
	if lookup == nil || build == nil || !lookup(name) {
		return nil, nil
	}
	delegate, err := build(name, pool, condition, externCtx)
	if err != nil {
		return nil, err
	}
	return &customNode{base: base{name: name, condition: condition, priority: priorityCustom}, delegate: delegate}, nil
}
