// Package registry holds the process-wide operator table and the
// adapter hooks (regex engine, custom matcher, value converters, trace
// coloring) a host embeds mongory-go with. It generalizes
// foundations/config.c's bare global pointers with a sync.RWMutex, since
// an in-process Go library can be called from many goroutines where the
// original C core assumed a single thread.
package registry

import (
	"sync"

	"github.com/mongoryhq/mongory-go/value"
)

// Node is the minimal matcher-tree contract the registry needs to know
// about. It is declared here, rather than imported from package matcher, to
// avoid a cycle: matcher imports registry to look up operator constructors.
type Node interface {
	Match(record *value.Value) bool
	Priority() float64
}

// Constructor builds a Node from a condition Value. pool is the arena the
// resulting node (and any sub-nodes it allocates) should be tracked in.
// externCtx is opaque context a host passed through Compile, handed to
// custom matcher constructors unchanged.
type Constructor func(pool *value.Pool, condition *value.Value, externCtx any) (Node, *value.Error)

// RegexMatchFunc/RegexStringifyFunc take the full pattern Value, not just
// its RegexHandle, so a host adapter can compile a String-kind $regex
// condition on demand rather than only ever seeing a pre-compiled handle.
type RegexMatchFunc func(pattern *value.Value, subject *value.Value) bool
type RegexStringifyFunc func(pattern *value.Value) string

// CustomMatcherLookup reports whether name is a registered external
// operator; CustomMatcherBuild constructs it as a Node, whose own Match
// evaluates it. The pair composes the same way $regex composes with its
// adapter.
type CustomMatcherLookup func(name string) bool
type CustomMatcherBuild func(name string, pool *value.Pool, condition *value.Value, externCtx any) (Node, *value.Error)

type registryState struct {
	mu sync.RWMutex

	operators map[string]Constructor

	regexMatch      RegexMatchFunc
	regexStringify  RegexStringifyFunc

	shallowConvert value.ShallowConvertFunc
	deepConvert    value.DeepConvertFunc
	recover        value.RecoverFunc

	customLookup CustomMatcherLookup
	customBuild  CustomMatcherBuild

	traceColorful bool
	initialized   bool
}

var state = &registryState{
	operators:      map[string]Constructor{},
	regexMatch:     func(*value.Value, *value.Value) bool { return false },
	regexStringify: func(*value.Value) string { return "//" },
}

// Register installs (or replaces) the constructor for an operator name,
// e.g. "$eq". Safe for concurrent use.
func Register(name string, ctor Constructor) {
	state.mu.Lock()
	defer state.mu.Unlock()
	state.operators[name] = ctor
}

// Lookup returns the constructor registered for name, if any.
func Lookup(name string) (Constructor, bool) {
	state.mu.RLock()
	defer state.mu.RUnlock()
	ctor, ok := state.operators[name]
	return ctor, ok
}

func SetRegexMatcher(fn RegexMatchFunc) {
	state.mu.Lock()
	defer state.mu.Unlock()
	state.regexMatch = fn
}

func SetRegexStringifier(fn RegexStringifyFunc) {
	state.mu.Lock()
	defer state.mu.Unlock()
	state.regexStringify = fn
}

func RegexMatch(pattern *value.Value, subject *value.Value) bool {
	state.mu.RLock()
	defer state.mu.RUnlock()
	return state.regexMatch(pattern, subject)
}

func RegexStringify(pattern *value.Value) string {
	state.mu.RLock()
	defer state.mu.RUnlock()
	return state.regexStringify(pattern)
}

func SetShallowConvert(fn value.ShallowConvertFunc) {
	state.mu.Lock()
	defer state.mu.Unlock()
	state.shallowConvert = fn
}

func SetDeepConvert(fn value.DeepConvertFunc) {
	state.mu.Lock()
	defer state.mu.Unlock()
	state.deepConvert = fn
}

func SetRecover(fn value.RecoverFunc) {
	state.mu.Lock()
	defer state.mu.Unlock()
	state.recover = fn
}

// ShallowConvert applies the registered shallow-convert hook to ptr,
// returning ptr unchanged wrapped as a Pointer Value if no hook is set.
func ShallowConvert(ptr any) *value.Value {
	state.mu.RLock()
	fn := state.shallowConvert
	state.mu.RUnlock()
	if fn == nil {
		return value.Pointer(ptr)
	}
	return fn(ptr)
}

func SetCustomMatcherHooks(lookup CustomMatcherLookup, build CustomMatcherBuild) {
	state.mu.Lock()
	defer state.mu.Unlock()
	state.customLookup = lookup
	state.customBuild = build
}

func CustomMatcherLookupFunc() (CustomMatcherLookup, CustomMatcherBuild) {
	state.mu.RLock()
	defer state.mu.RUnlock()
	return state.customLookup, state.customBuild
}

func SetTraceColorful(colorful bool) {
	state.mu.Lock()
	defer state.mu.Unlock()
	state.traceColorful = colorful
}

func TraceColorful() bool {
	state.mu.RLock()
	defer state.mu.RUnlock()
	return state.traceColorful
}

func Initialized() bool {
	state.mu.RLock()
	defer state.mu.RUnlock()
	return state.initialized
}

func markInitialized(v bool) {
	state.mu.Lock()
	defer state.mu.Unlock()
	state.initialized = v
}
