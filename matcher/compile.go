package matcher

import (
	"strings"

	"github.com/mongoryhq/mongory-go/registry"
	"github.com/mongoryhq/mongory-go/value"
)

// Compile turns a query document into an evaluable Node. An empty map
// compiles to an always-true leaf; each key becomes either an operator leaf
// or composite ("$"-prefixed) or a field node (anything else); a single
// resulting child is returned directly rather than wrapped in an AND, so
// {"age": {"$gt": 18}} compiles to a bare Field node, not a one-child
// composite.
func Compile(pool *value.Pool, condition *value.Value, externCtx any) (Node, *value.Error) {
	if condition.Kind != value.KindMap {
		return nil, value.NewError(value.KindInvalidArgument, "query condition must be a map")
	}
	return compileConditionMap(pool, condition, externCtx)
}

func compileConditionMap(pool *value.Pool, condition *value.Value, externCtx any) (Node, *value.Error) {
	if condition.Kind != value.KindMap {
		return nil, value.NewError(value.KindInvalidType, "condition must be a map")
	}
	m := condition.Map()
	if m.Len() == 0 {
		return newAlwaysTrueNode(), nil
	}

	var children []Node
	var buildErr *value.Error
	m.Each(func(key string, val *value.Value) {
		if buildErr != nil {
			return
		}
		var node Node
		var err *value.Error
		if strings.HasPrefix(key, "$") {
			node, err = compileOperator(pool, key, val, externCtx)
		} else {
			node, err = compileField(pool, key, val, externCtx)
		}
		if err != nil {
			buildErr = err
			return
		}
		children = append(children, node)
	})
	if buildErr != nil {
		pool.Fail(buildErr)
		return nil, buildErr
	}

	if len(children) == 1 {
		return children[0], nil
	}
	return newConditionNode(children), nil
}

func compileField(pool *value.Pool, name string, condition *value.Value, externCtx any) (Node, *value.Error) {
	return newFieldNode(pool, name, condition, externCtx)
}

// compileChildren compiles each element of a condition array as its own
// condition map, used by $and/$or.
func compileChildren(pool *value.Pool, arr *value.Value, externCtx any) ([]Node, *value.Error) {
	if arr.Kind != value.KindArray {
		return nil, value.NewError(value.KindInvalidType, "operator condition must be an array of conditions")
	}
	var out []Node
	var buildErr *value.Error
	arr.Array().Each(func(_ int, v *value.Value) {
		if buildErr != nil {
			return
		}
		node, err := compileConditionMap(pool, v, externCtx)
		if err != nil {
			buildErr = err
			return
		}
		out = append(out, node)
	})
	if buildErr != nil {
		return nil, buildErr
	}
	return out, nil
}

func compileOperator(pool *value.Pool, key string, condition *value.Value, externCtx any) (Node, *value.Error) {
	switch key {
	case "$and":
		children, err := compileChildren(pool, condition, externCtx)
		if err != nil {
			return nil, err
		}
		// Flatten: every entry of every sub-map becomes a direct child.
		var flat []Node
		for _, c := range children {
			if cn, ok := c.(*compositeNode); ok && cn.kind == compositeCondition {
				flat = append(flat, cn.children...)
			} else {
				flat = append(flat, c)
			}
		}
		return newAndNode(flat), nil
	case "$or":
		children, err := compileChildren(pool, condition, externCtx)
		if err != nil {
			return nil, err
		}
		return newOrNode(children), nil
	case "$elemMatch":
		child, err := compileConditionMap(pool, condition, externCtx)
		if err != nil {
			return nil, err
		}
		return newElemMatchNode([]Node{child}), nil
	case "$every":
		child, err := compileConditionMap(pool, condition, externCtx)
		if err != nil {
			return nil, err
		}
		return newEveryNode([]Node{child}), nil
	case "$not":
		delegate, err := literalDelegate(pool, condition, externCtx)
		if err != nil {
			return nil, err
		}
		return newNotNode(condition, delegate), nil
	case "$size":
		delegate, err := literalDelegate(pool, condition, externCtx)
		if err != nil {
			return nil, err
		}
		return newSizeNode(condition, delegate), nil
	}

	if ctor, ok := registry.Lookup(key); ok {
		node, err := ctor(pool, condition, externCtx)
		if err != nil {
			return nil, err
		}
		return node.(Node), nil
	}

	if node, err := tryCustomNode(key, pool, condition, externCtx); node != nil || err != nil {
		return node, err
	}

	return nil, value.NewError(value.KindInvalidArgument, "unknown operator: %s", key)
}
