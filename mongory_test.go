package mongory

import (
	"testing"

	"github.com/mongoryhq/mongory-go/matcher"
	"github.com/mongoryhq/mongory-go/value"
)

func mustCompile(t *testing.T, q *value.Value) interface{ Match(*value.Value) bool } {
	t.Helper()
	n, err := Compile(q, nil)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	return n
}

func mapOf(pairs ...any) *value.Value {
	m := value.NewMap()
	for i := 0; i+1 < len(pairs); i += 2 {
		key := pairs[i].(string)
		val := pairs[i+1].(*value.Value)
		m.Set(key, val)
	}
	return value.FromMap(m)
}

func arr(vs ...*value.Value) *value.Value {
	return value.FromArray(value.NewArray(vs...))
}

func TestScenarioGt(t *testing.T) {
	Init()
	q := mapOf("age", mapOf("$gt", value.Int(18)))
	n := mustCompile(t, q)

	if !n.Match(mapOf("age", value.Int(21))) {
		t.Error("expected age 21 to match $gt 18")
	}
	if n.Match(mapOf("age", value.Int(17))) {
		t.Error("expected age 17 not to match $gt 18")
	}
	if n.Match(value.FromMap(value.NewMap())) {
		t.Error("expected missing age not to match $gt 18")
	}
}

func TestScenarioOr(t *testing.T) {
	Init()
	q := mapOf("$or", arr(mapOf("a", value.Int(1)), mapOf("b", value.Int(2))))
	n := mustCompile(t, q)

	if !n.Match(mapOf("a", value.Int(1), "b", value.Int(99))) {
		t.Error("expected a==1 branch to match")
	}
	if n.Match(mapOf("a", value.Int(99), "b", value.Int(99))) {
		t.Error("expected neither branch to match")
	}
}

func TestScenarioInclusionArrayDuality(t *testing.T) {
	Init()
	q := mapOf("tags", mapOf("$in", arr(value.String("x"), value.String("y"))))
	n := mustCompile(t, q)

	if !n.Match(mapOf("tags", arr(value.String("y"), value.String("z")))) {
		t.Error("expected array/array intersection to match")
	}
	if !n.Match(mapOf("tags", value.String("x"))) {
		t.Error("expected scalar-in-set to match")
	}
	if n.Match(mapOf("tags", value.String("q"))) {
		t.Error("expected non-member scalar not to match")
	}
}

func TestScenarioElemMatch(t *testing.T) {
	Init()
	q := mapOf("xs", mapOf("$elemMatch", mapOf("$gt", value.Int(3), "$lt", value.Int(10))))
	n := mustCompile(t, q)

	if !n.Match(mapOf("xs", arr(value.Int(1), value.Int(2), value.Int(5), value.Int(20)))) {
		t.Error("expected an element in (3,10) to match")
	}
	if n.Match(mapOf("xs", arr(value.Int(1), value.Int(2), value.Int(20)))) {
		t.Error("expected no element in (3,10) to not match")
	}
	if n.Match(mapOf("xs", arr())) {
		t.Error("expected $elemMatch on empty array not to match")
	}
}

func TestScenarioNullField(t *testing.T) {
	Init()
	q := mapOf("name", value.Null())
	n := mustCompile(t, q)

	if !n.Match(mapOf("name", value.Null())) {
		t.Error("expected explicit null field to match")
	}
	if !n.Match(value.FromMap(value.NewMap())) {
		t.Error("expected missing field to match null condition")
	}
	if n.Match(mapOf("name", value.String("a"))) {
		t.Error("expected non-null field not to match null condition")
	}
}

func TestScenarioSize(t *testing.T) {
	Init()
	q := mapOf("items", mapOf("$size", mapOf("$gte", value.Int(2))))
	n := mustCompile(t, q)

	if !n.Match(mapOf("items", arr(value.Int(1), value.Int(2), value.Int(3)))) {
		t.Error("expected array of length 3 to match $size $gte 2")
	}
	if n.Match(mapOf("items", arr(value.Int(1)))) {
		t.Error("expected array of length 1 not to match $size $gte 2")
	}
	if n.Match(mapOf("items", value.String("no"))) {
		t.Error("expected a non-array record not to match $size")
	}
}

func TestEveryOnEmptyArrayIsFalse(t *testing.T) {
	Init()
	q := mapOf("xs", mapOf("$every", mapOf("$gt", value.Int(0))))
	n := mustCompile(t, q)

	if n.Match(mapOf("xs", arr())) {
		t.Error("expected $every on an empty array to be false, not vacuously true")
	}
	if !n.Match(mapOf("xs", arr(value.Int(1), value.Int(2)))) {
		t.Error("expected $every to match when all elements satisfy the child")
	}
	if n.Match(mapOf("xs", arr(value.Int(1), value.Int(-2)))) {
		t.Error("expected $every to fail when one element doesn't satisfy the child")
	}
}

func TestIdempotence(t *testing.T) {
	Init()
	q := mapOf("age", mapOf("$gte", value.Int(18)))
	n := mustCompile(t, q)
	record := mapOf("age", value.Int(20))

	first := n.Match(record)
	second := n.Match(record)
	if first != second {
		t.Error("expected repeated Match calls to be idempotent")
	}
}

func TestExplainAndTrace(t *testing.T) {
	Init()
	q := mapOf("age", mapOf("$gt", value.Int(18)))
	n, err := Compile(q, nil)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	explained := Explain(n)
	if explained == "" {
		t.Error("expected non-empty explain output")
	}

	matched, trace := matcher.Trace(n, mapOf("age", value.Int(21)), false)
	if !matched {
		t.Error("expected traced match to be true")
	}
	if trace == "" {
		t.Error("expected non-empty trace output")
	}
}
