package matcher

import (
	"github.com/mongoryhq/mongory-go/registry"
	"github.com/mongoryhq/mongory-go/value"
)

// RegisterBuiltins installs every operator named in the registration
// list mongory_init builds in config.c. Composite operators
// ($and/$or/$not/$elemMatch/$every/$size) are handled directly by
// compile.go rather than through the registry, since they need to compile
// their own sub-conditions recursively instead of taking a single leaf
// condition value; only the registry-driven leaves are registered here.
func RegisterBuiltins() {
	registry.Register("$eq", wrapLeaf(func(_ *value.Pool, c *value.Value, _ any) (registry.Node, *value.Error) {
		return newEqNode(c), nil
	}))
	registry.Register("$ne", wrapLeaf(func(_ *value.Pool, c *value.Value, _ any) (registry.Node, *value.Error) {
		return newNeNode(c), nil
	}))
	registry.Register("$gt", wrapLeaf(func(_ *value.Pool, c *value.Value, _ any) (registry.Node, *value.Error) {
		return newGtNode(c), nil
	}))
	registry.Register("$gte", wrapLeaf(func(_ *value.Pool, c *value.Value, _ any) (registry.Node, *value.Error) {
		return newGteNode(c), nil
	}))
	registry.Register("$lt", wrapLeaf(func(_ *value.Pool, c *value.Value, _ any) (registry.Node, *value.Error) {
		return newLtNode(c), nil
	}))
	registry.Register("$lte", wrapLeaf(func(_ *value.Pool, c *value.Value, _ any) (registry.Node, *value.Error) {
		return newLteNode(c), nil
	}))
	registry.Register("$in", func(_ *value.Pool, c *value.Value, _ any) (registry.Node, *value.Error) {
		return newInNode(c)
	})
	registry.Register("$nin", func(_ *value.Pool, c *value.Value, _ any) (registry.Node, *value.Error) {
		return newNinNode(c)
	})
	registry.Register("$exists", func(_ *value.Pool, c *value.Value, _ any) (registry.Node, *value.Error) {
		return newExistsNode(c)
	})
	registry.Register("$present", func(_ *value.Pool, c *value.Value, _ any) (registry.Node, *value.Error) {
		return newPresentNode(c)
	})
	registry.Register("$regex", func(_ *value.Pool, c *value.Value, _ any) (registry.Node, *value.Error) {
		return newRegexNode(c)
	})
}

// wrapLeaf adapts a constructor that can't fail into registry.Constructor's
// (Node, *Error)-returning shape.
func wrapLeaf(fn func(pool *value.Pool, condition *value.Value, externCtx any) (registry.Node, *value.Error)) registry.Constructor {
	return fn
}
