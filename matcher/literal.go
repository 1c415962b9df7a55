package matcher

import "github.com/mongoryhq/mongory-go/value"

// literalDelegate dispatches on the condition's shape: a Map is a nested
// operator/field condition compiled the normal way, a Regex goes straight
// to $regex, an explicit Null becomes "equals null or does not exist", and
// everything else is a plain $eq. Grounded on
// mongory_matcher_literal_delegate in literal_matcher.c. This is the
// non-array half of the literal wrapper spec §3 has Field extend directly,
// rather than nest as its own node; see field.go.
func literalDelegate(pool *value.Pool, condition *value.Value, externCtx any) (Node, *value.Error) {
	switch condition.Kind {
	case value.KindMap:
		return compileConditionMap(pool, condition, externCtx)
	case value.KindRegex:
		return newRegexNode(condition)
	case value.KindNull:
		return newNullNode(condition), nil
	default:
		return newEqNode(condition), nil
	}
}

// newNullNode builds $eq:null OR $exists:false, grounded on
// mongory_matcher_null_new. The $exists:false condition is a hardcoded Bool
// literal, so its own validation can never fail.
func newNullNode(condition *value.Value) Node {
	eq := newEqNode(value.Null())
	notExists, _ := newExistsNode(value.Bool(false))
	return newOrNode([]Node{eq, notExists})
}
