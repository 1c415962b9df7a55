package mongory

import (
	"testing"

	"github.com/mongoryhq/mongory-go/value"
)

func TestUseStdlibRegexMatchesCondition(t *testing.T) {
	Init()
	defer Shutdown()
	UseStdlibRegex()

	pattern, err := CompileRegex(`^a.+z$`)
	if err != nil {
		t.Fatalf("CompileRegex failed: %v", err)
	}

	q := mapOf("name", mapOf("$regex", pattern))
	n := mustCompile(t, q)

	if !n.Match(mapOf("name", value.String("abcz"))) {
		t.Error("expected \"abcz\" to match ^a.+z$")
	}
	if n.Match(mapOf("name", value.String("zzz"))) {
		t.Error("expected \"zzz\" not to match ^a.+z$")
	}
	if n.Match(mapOf("name", value.Int(5))) {
		t.Error("expected a non-string record not to match a regex condition")
	}
}

func TestCompileRegexRejectsInvalidPattern(t *testing.T) {
	if _, err := CompileRegex("("); err == nil {
		t.Error("expected an unbalanced pattern to fail to compile")
	}
}

func TestUseStdlibRegexMatchesStringCondition(t *testing.T) {
	Init()
	defer Shutdown()
	UseStdlibRegex()

	q := mapOf("name", mapOf("$regex", value.String(`^a.+z$`)))
	n := mustCompile(t, q)

	if !n.Match(mapOf("name", value.String("abcz"))) {
		t.Error("expected a plain string $regex pattern to still match \"abcz\"")
	}
	if n.Match(mapOf("name", value.String("zzz"))) {
		t.Error("expected a plain string $regex pattern not to match \"zzz\"")
	}
}
