package mongory

import (
	"regexp"
	"sync"

	"github.com/mongoryhq/mongory-go/registry"
	"github.com/mongoryhq/mongory-go/value"
)

// stringPatternCache avoids recompiling the same String-kind $regex
// condition on every Match call; a Regex-kind condition is already compiled
// at construction time (via CompileRegex) and never touches this cache.
var stringPatternCache sync.Map // string -> *regexp.Regexp

// compiledPattern resolves pattern to a *regexp.Regexp regardless of
// whether it arrived as a pre-compiled Regex handle (CompileRegex) or as a
// plain String condition ({"$regex": "ab"}), which the original core always
// allowed and which the default RegexHandle-only wiring could never match.
func compiledPattern(pattern *value.Value) (*regexp.Regexp, bool) {
	switch pattern.Kind {
	case value.KindRegex:
		re, ok := pattern.RegexHandle().(*regexp.Regexp)
		return re, ok && re != nil
	case value.KindString:
		if cached, ok := stringPatternCache.Load(pattern.Str()); ok {
			return cached.(*regexp.Regexp), true
		}
		re, err := regexp.Compile(pattern.Str())
		if err != nil {
			return nil, false
		}
		stringPatternCache.Store(pattern.Str(), re)
		return re, true
	default:
		return nil, false
	}
}

// UseStdlibRegex wires the registry's regex adapter to Go's stdlib regexp
// package, matching either a pre-compiled Regex handle (CompileRegex) or a
// plain String pattern against a String record; a record of any other kind
// does not match. The default
// adapter (set in registry) always returns false and stringifies to "//",
// since the original core never assumes any particular regex engine is
// linked in; calling this opts a host into the obvious stdlib choice rather
// than leaving every caller to hand-roll the same wiring.
func UseStdlibRegex() {
	registry.SetRegexMatcher(func(pattern *value.Value, subject *value.Value) bool {
		re, ok := compiledPattern(pattern)
		if !ok {
			return false
		}
		if subject.Kind != value.KindString {
			return false
		}
		return re.MatchString(subject.Str())
	})
	registry.SetRegexStringifier(func(pattern *value.Value) string {
		re, ok := compiledPattern(pattern)
		if !ok {
			return "//"
		}
		return "/" + re.String() + "/"
	})
}

// CompileRegex compiles pattern with Go's regexp/syntax and wraps it as a
// regex-kind Value, ready to use as a $regex condition once UseStdlibRegex
// is active.
func CompileRegex(pattern string) (*value.Value, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return value.Regex(re), nil
}
