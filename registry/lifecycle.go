package registry

import "github.com/mongoryhq/mongory-go/value"

// Init marks the registry ready for use. It is idempotent; calling it again
// is a no-op. Operator registration itself is performed by package matcher
// (via matcher.RegisterBuiltins, invoked from the root mongory package) to
// avoid an import cycle between registry and matcher.
func Init() {
	markInitialized(true)
}

// Shutdown clears every registered operator and adapter hook, returning the
// registry to its zero state. Idempotent.
func Shutdown() {
	state.mu.Lock()
	defer state.mu.Unlock()
	state.operators = map[string]Constructor{}
	state.regexMatch = func(*value.Value, *value.Value) bool { return false }
	state.regexStringify = func(*value.Value) string { return "//" }
	state.shallowConvert = nil
	state.deepConvert = nil
	state.recover = nil
	state.customLookup = nil
	state.customBuild = nil
	state.traceColorful = false
	state.initialized = false
}
