// Package mongory is the embeddable entry point: compile a query document
// into a matcher tree once, then evaluate it against many records, with
// optional explain/trace output for debugging a match.
package mongory

import (
	"fmt"
	"io"
	"os"

	"github.com/mongoryhq/mongory-go/internal/ansicolor"
	"github.com/mongoryhq/mongory-go/matcher"
	"github.com/mongoryhq/mongory-go/registry"
	"github.com/mongoryhq/mongory-go/value"
)

// Init registers every built-in operator and sets trace coloring from
// whether stdout is a terminal, replacing any value a SetTraceColorful call
// made before Init; a SetTraceColorful call after Init is kept. Idempotent.
func Init() {
	if registry.Initialized() {
		return
	}
	matcher.RegisterBuiltins()
	registry.SetTraceColorful(ansicolor.IsTerminal(os.Stdout))
	registry.Init()
}

// Shutdown clears the registry, returning the package to its pre-Init
// state. Idempotent.
func Shutdown() {
	registry.Shutdown()
}

// Compile allocates a fresh arena and compiles query into an evaluable
// Node. externCtx is passed through unchanged to any custom matcher hooks
// the query's operators invoke.
func Compile(query *value.Value, externCtx any) (matcher.Node, *value.Error) {
	pool := value.NewPool()
	return matcher.Compile(pool, query, externCtx)
}

// Match evaluates a compiled Node against record.
func Match(n matcher.Node, record *value.Value) bool {
	return n.Match(record)
}

// Explain returns the compiled tree's static structure as indented text.
func Explain(n matcher.Node) string {
	return matcher.Explain(n)
}

// ExplainTo writes Explain's output to w.
func ExplainTo(w io.Writer, n matcher.Node) {
	fmt.Fprint(w, matcher.Explain(n))
}

// Trace evaluates n against record, printing a line-by-line trace of the
// decision to stdout (colorized per registry.TraceColorful), and returns
// the match result.
func Trace(n matcher.Node, record *value.Value) bool {
	matched, text := matcher.Trace(n, record, registry.TraceColorful())
	fmt.Print(text)
	return matched
}

// Re-exported adapter setters, so a host only ever imports this package.

func SetRegexMatcher(fn registry.RegexMatchFunc)     { registry.SetRegexMatcher(fn) }
func SetRegexStringifier(fn registry.RegexStringifyFunc) { registry.SetRegexStringifier(fn) }
func SetShallowConvert(fn value.ShallowConvertFunc)  { registry.SetShallowConvert(fn) }
func SetDeepConvert(fn value.DeepConvertFunc)        { registry.SetDeepConvert(fn) }
func SetRecover(fn value.RecoverFunc)                { registry.SetRecover(fn) }
func SetCustomMatcherHooks(lookup registry.CustomMatcherLookup, build registry.CustomMatcherBuild) {
	registry.SetCustomMatcherHooks(lookup, build)
}
func SetTraceColorful(colorful bool) { registry.SetTraceColorful(colorful) }
