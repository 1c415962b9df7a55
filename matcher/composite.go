package matcher

import "github.com/mongoryhq/mongory-go/value"

// compositeKind distinguishes the five combinators built from this one
// struct, matching composite_matcher.h's shared mongory_composite_matcher
// base for $and/$or/$elemMatch/$every/table-condition.
type compositeKind int

const (
	compositeAnd compositeKind = iota
	compositeOr
	compositeElemMatch
	compositeEvery
	compositeCondition // the implicit AND of a multi-key table condition
)

type compositeNode struct {
	base
	kind     compositeKind
	children []Node
}

// Match implements the short-circuiting semantics: $and/table-condition
// requires every child to match the record directly and stops at the first
// miss; $or requires at least one match and stops at the first hit;
// $elemMatch requires the record to be an array with at least one element
// that satisfies every child; $every requires the record to be an array
// whose every element satisfies every child, and is false on an empty
// array (the preserved non-vacuous-truth choice).
func (n *compositeNode) Match(record *value.Value) bool {
	switch n.kind {
	case compositeAnd, compositeCondition:
		for _, c := range n.children {
			if !c.Match(record) {
				return false
			}
		}
		return true
	case compositeOr:
		for _, c := range n.children {
			if c.Match(record) {
				return true
			}
		}
		return false
	case compositeElemMatch:
		if record.Kind != value.KindArray {
			return false
		}
		found := false
		record.Array().Each(func(_ int, elem *value.Value) {
			if found {
				return
			}
			found = n.allChildrenMatch(elem)
		})
		return found
	case compositeEvery:
		if record.Kind != value.KindArray || record.Array().Len() == 0 {
			return false
		}
		allMatch := true
		record.Array().Each(func(_ int, elem *value.Value) {
			if !allMatch {
				return
			}
			if !n.allChildrenMatch(elem) {
				allMatch = false
			}
		})
		return allMatch
	default:
		return false
	}
}

func (n *compositeNode) allChildrenMatch(record *value.Value) bool {
	for _, c := range n.children {
		if !c.Match(record) {
			return false
		}
	}
	return true
}

func (n *compositeNode) matchTraced(record *value.Value, rec *Recorder) bool {
	sub := rec.child()
	var matched bool
	switch n.kind {
	case compositeAnd, compositeCondition:
		matched = true
		for _, c := range n.children {
			if !matchWithRecorder(c, record, sub) {
				matched = false
				break
			}
		}
	case compositeOr:
		matched = false
		for _, c := range n.children {
			if matchWithRecorder(c, record, sub) {
				matched = true
				break
			}
		}
	case compositeElemMatch:
		matched = false
		if record.Kind == value.KindArray {
			record.Array().Each(func(_ int, elem *value.Value) {
				if matched {
					return
				}
				elemOK := true
				for _, c := range n.children {
					if !matchWithRecorder(c, elem, sub) {
						elemOK = false
					}
				}
				if elemOK {
					matched = true
				}
			})
		}
	case compositeEvery:
		matched = record.Kind == value.KindArray && record.Array().Len() > 0
		if record.Kind == value.KindArray {
			record.Array().Each(func(_ int, elem *value.Value) {
				for _, c := range n.children {
					if !matchWithRecorder(c, elem, sub) {
						matched = false
					}
				}
			})
		}
	}
	rec.record(n, record, matched, sub)
	return matched
}

func (n *compositeNode) Traverse(visit Visitor) { n.traverseAt(0, visit) }
func (n *compositeNode) traverseAt(depth int, visit Visitor) {
	traverseNode(n, n.children, depth, visit)
}
func (n *compositeNode) childNodes() []Node { return n.children }

func newAndNode(children []Node) Node {
	sortChildren(children)
	return &compositeNode{base: base{name: "$and", priority: sumPriority(compositeBaseAndOr, children)}, kind: compositeAnd, children: children}
}

func newOrNode(children []Node) Node {
	sortChildren(children)
	return &compositeNode{base: base{name: "$or", priority: sumPriority(compositeBaseAndOr, children)}, kind: compositeOr, children: children}
}

func newElemMatchNode(children []Node) Node {
	sortChildren(children)
	return &compositeNode{base: base{name: "$elemMatch", priority: sumPriority(compositeBaseElemMatch, children)}, kind: compositeElemMatch, children: children}
}

func newEveryNode(children []Node) Node {
	sortChildren(children)
	return &compositeNode{base: base{name: "$every", priority: sumPriority(compositeBaseEvery, children)}, kind: compositeEvery, children: children}
}

func newConditionNode(children []Node) Node {
	sortChildren(children)
	return &compositeNode{base: base{name: "$condition", priority: sumPriority(compositeBaseAndOr, children)}, kind: compositeCondition, children: children}
}

// notNode is $not: the negation of a single delegate built by
// literalDelegate. It has no separate array-record path, so an array
// record is handed to the delegate as a whole.
type notNode struct {
	base
	delegate Node
}

func (n *notNode) Match(record *value.Value) bool { return !n.delegate.Match(record) }

func (n *notNode) matchTraced(record *value.Value, rec *Recorder) bool {
	sub := rec.child()
	matched := !matchWithRecorder(n.delegate, record, sub)
	rec.record(n, record, matched, sub)
	return matched
}

func (n *notNode) Traverse(visit Visitor) { n.traverseAt(0, visit) }
func (n *notNode) traverseAt(depth int, visit Visitor) {
	traverseNode(n, []Node{n.delegate}, depth, visit)
}
func (n *notNode) childNodes() []Node { return []Node{n.delegate} }

func newNotNode(condition *value.Value, delegate Node) Node {
	return &notNode{base: base{name: "$not", condition: condition, priority: wrapperPriority(delegate)}, delegate: delegate}
}

// sizeNode is $size: re-expresses the record's array length as an Int and
// re-applies its delegate literal match to that length.
type sizeNode struct {
	base
	delegate Node
}

func (n *sizeNode) Match(record *value.Value) bool {
	if record.Kind != value.KindArray {
		return false
	}
	return n.delegate.Match(value.Int(int64(record.Array().Len())))
}

func (n *sizeNode) matchTraced(record *value.Value, rec *Recorder) bool {
	if record.Kind != value.KindArray {
		rec.record(n, record, false, nil)
		return false
	}
	sub := rec.child()
	countValue := value.Int(int64(record.Array().Len()))
	matched := matchWithRecorder(n.delegate, countValue, sub)
	rec.record(n, record, matched, sub)
	return matched
}

func (n *sizeNode) Traverse(visit Visitor) { n.traverseAt(0, visit) }
func (n *sizeNode) traverseAt(depth int, visit Visitor) {
	traverseNode(n, []Node{n.delegate}, depth, visit)
}
func (n *sizeNode) childNodes() []Node { return []Node{n.delegate} }

func newSizeNode(condition *value.Value, delegate Node) Node {
	return &sizeNode{base: base{name: "$size", condition: condition, priority: wrapperPriority(delegate)}, delegate: delegate}
}
