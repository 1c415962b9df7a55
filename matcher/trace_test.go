package matcher

import (
	"strings"
	"testing"

	"github.com/mongoryhq/mongory-go/value"
)

func TestTraceReportsMatchedAndRecordText(t *testing.T) {
	n := newGtNode(value.Int(18))
	matched, text := Trace(n, value.Int(21), false)
	if !matched {
		t.Error("expected 21 > 18 to match")
	}
	if !strings.Contains(text, "Matched") {
		t.Errorf("expected trace text to mention Matched, got %q", text)
	}
	if !strings.Contains(text, "$gt") {
		t.Errorf("expected trace text to name the operator, got %q", text)
	}
}

func TestTraceReportsDismatch(t *testing.T) {
	n := newGtNode(value.Int(18))
	matched, text := Trace(n, value.Int(1), false)
	if matched {
		t.Error("expected 1 > 18 to be false")
	}
	if !strings.Contains(text, "Dismatch") {
		t.Errorf("expected trace text to mention Dismatch, got %q", text)
	}
}

func TestTraceNestsChildEntriesUnderParent(t *testing.T) {
	RegisterBuiltins()
	pool := value.NewPool()
	cond := value.NewMap()
	cond.Set("$gt", value.Int(3))
	cond.Set("$lt", value.Int(10))
	n, err := Compile(pool, value.FromMap(mp("xs", mp2("$elemMatch", value.FromMap(cond)))), nil)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	_, text := Trace(n, value.FromMap(mp("xs", value.FromArray(value.NewArray(value.Int(5))))), false)
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) < 3 {
		t.Fatalf("expected multiple nested trace lines, got %d: %q", len(lines), text)
	}
	if !strings.HasPrefix(lines[1], "  ") {
		t.Errorf("expected the second line to be indented as a child, got %q", lines[1])
	}
}

func TestFieldTraceMessageUsesFieldName(t *testing.T) {
	RegisterBuiltins()
	pool := value.NewPool()
	n, err := Compile(pool, value.FromMap(mp("age", mp2("$gt", value.Int(18)))), nil)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	_, text := Trace(n, value.FromMap(mp("age", value.Int(21))), false)
	if !strings.Contains(text, "field: \"age\"") {
		t.Errorf("expected trace text to reference the field name, got %q", text)
	}
}
