package matcher

import (
	"strconv"

	"github.com/mongoryhq/mongory-go/registry"
	"github.com/mongoryhq/mongory-go/value"
)

// fieldNode looks a key up on the record (a Map key or, for an Array
// record, a possibly-negative numeric index) and matches the resolved value
// against this field's condition. It extends the literal wrapper directly
// (delegate for a non-array field value, arrayRecord for the array-duality
// path) rather than nesting a separate node for it, per spec §3's "Field
// node extends Literal-wrapper": explain's view of a Field is then its own
// condition text, not an extra layer of wrapper scaffolding, and its
// priority is 1 + (the wrapper's own child priority) rather than 2 + it.
// Grounded on mongory_matcher_field_match/mongory_matcher_field_new in
// literal_matcher.c.
type fieldNode struct {
	base
	fieldName   string
	delegate    Node
	arrayRecord Node
}

func (n *fieldNode) Match(record *value.Value) bool {
	return n.matchValue(lookupField(record, n.fieldName))
}

func (n *fieldNode) matchValue(fieldValue *value.Value) bool {
	if fieldValue.Kind == value.KindArray {
		return n.arrayRecord.Match(fieldValue)
	}
	return n.delegate.Match(fieldValue)
}

func (n *fieldNode) matchTraced(record *value.Value, rec *Recorder) bool {
	sub := rec.child()
	fieldValue := lookupField(record, n.fieldName)
	var matched bool
	if fieldValue.Kind == value.KindArray {
		matched = matchWithRecorder(n.arrayRecord, fieldValue, sub)
	} else {
		matched = matchWithRecorder(n.delegate, fieldValue, sub)
	}
	rec.record(n, fieldValue, matched, sub)
	return matched
}

// Traverse/childNodes present Field as a leaf: its Condition().String() text
// already describes everything beneath it, so explain doesn't descend into
// the delegate/arrayRecord scaffolding (trace does, via matchTraced above,
// since it needs the actual sub-decisions, not just their text summary).
func (n *fieldNode) Traverse(visit Visitor)             { n.traverseAt(0, visit) }
func (n *fieldNode) traverseAt(depth int, visit Visitor) { traverseNode(n, nil, depth, visit) }
func (n *fieldNode) childNodes() []Node                  { return nil }

// newFieldNode builds a Field over name, compiling its delegate and
// arrayRecord eagerly the same way the literal wrapper did.
func newFieldNode(pool *value.Pool, name string, condition *value.Value, externCtx any) (Node, *value.Error) {
	delegate, err := literalDelegate(pool, condition, externCtx)
	if err != nil {
		return nil, err
	}
	arrayRecord, err := newArrayRecordNode(pool, condition, externCtx)
	if err != nil {
		return nil, err
	}
	return &fieldNode{
		base:        base{name: "Field", condition: condition, priority: wrapperPriority(delegate)},
		fieldName:   name,
		delegate:    delegate,
		arrayRecord: arrayRecord,
	}, nil
}

// lookupField resolves key against record: a Map lookup by string key, or
// an Array lookup by parsed integer index (supporting a negative index
// counting from the end, e.g. "-1" is the last element). A missing key,
// an unparseable or out-of-range index, or any other record shape resolves
// to value.Missing(). A Pointer result is passed through the registered shallow-convert
// hook, the same post-lookup step field_match applies in the original.
func lookupField(record *value.Value, key string) *value.Value {
	var resolved *value.Value
	switch record.Kind {
	case value.KindMap:
		v, ok := record.Map().Get(key)
		if !ok {
			return value.Missing()
		}
		resolved = v
	case value.KindArray:
		idx, ok := parseArrayIndex(key, record.Array().Len())
		if !ok {
			return value.Missing()
		}
		resolved = record.Array().Get(idx)
	default:
		return value.Missing()
	}
	if resolved.Kind == value.KindPointer {
		return registry.ShallowConvert(resolved.Ptr())
	}
	return resolved
}

// parseArrayIndex parses key as an integer index, allowing a negative value
// to count back from length. It rejects empty or partially-numeric strings
// (mirroring mongory_try_parse_int's strtol-based validation) and indices
// that fall outside [0, length).
func parseArrayIndex(key string, length int) (int, bool) {
	if key == "" {
		return 0, false
	}
	n, err := strconv.Atoi(key)
	if err != nil {
		return 0, false
	}
	if n < 0 {
		n += length
	}
	if n < 0 || n >= length {
		return 0, false
	}
	return n, true
}
