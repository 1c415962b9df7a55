package matcher

import (
	"testing"

	"github.com/mongoryhq/mongory-go/value"
)

func TestExistsMatchesPresenceNotEmptiness(t *testing.T) {
	n, err := newExistsNode(value.Bool(true))
	if err != nil {
		t.Fatalf("newExistsNode failed: %v", err)
	}
	if !n.Match(value.Int(0)) {
		t.Error("expected $exists:true to match a zero value, since it's still present")
	}
	if !n.Match(value.Null()) {
		t.Error("expected $exists:true to match an explicit null, which is present")
	}
	if n.Match(value.Missing()) {
		t.Error("expected $exists:true not to match an absent (Missing) field")
	}

	nFalse, err := newExistsNode(value.Bool(false))
	if err != nil {
		t.Fatalf("newExistsNode failed: %v", err)
	}
	if !nFalse.Match(value.Missing()) {
		t.Error("expected $exists:false to match an absent field")
	}
	if nFalse.Match(value.Int(0)) {
		t.Error("expected $exists:false not to match a present field")
	}
	if nFalse.Match(value.Null()) {
		t.Error("expected $exists:false not to match an explicit null, which is present")
	}
}

func TestNewExistsNodeRejectsNonBoolCondition(t *testing.T) {
	if _, err := newExistsNode(value.Int(1)); err == nil {
		t.Error("expected a non-bool $exists condition to fail compilation")
	} else if err.Kind != value.KindInvalidArgument {
		t.Errorf("expected KindInvalidArgument, got %v", err.Kind)
	}
}

func TestPresentTruthyMatrix(t *testing.T) {
	cases := []struct {
		name string
		v    *value.Value
		want bool
	}{
		{"null", value.Null(), false},
		{"empty array", value.FromArray(value.NewArray()), false},
		{"non-empty array", value.FromArray(value.NewArray(value.Int(1))), true},
		{"empty map", value.FromMap(value.NewMap()), false},
		{"empty string", value.String(""), false},
		{"non-empty string", value.String("x"), true},
		{"false", value.Bool(false), false},
		{"true", value.Bool(true), true},
		{"zero int", value.Int(0), true},
		{"double", value.Double(1.5), true},
	}
	for _, tc := range cases {
		if got := presentTruthy(tc.v); got != tc.want {
			t.Errorf("presentTruthy(%s) = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestPresentNodeUsesMatrix(t *testing.T) {
	n, err := newPresentNode(value.Bool(true))
	if err != nil {
		t.Fatalf("newPresentNode failed: %v", err)
	}
	if n.Match(value.String("")) {
		t.Error("expected $present:true not to match an empty string")
	}
	if !n.Match(value.String("x")) {
		t.Error("expected $present:true to match a non-empty string")
	}

	nFalse, err := newPresentNode(value.Bool(false))
	if err != nil {
		t.Fatalf("newPresentNode failed: %v", err)
	}
	if !nFalse.Match(value.FromArray(value.NewArray())) {
		t.Error("expected $present:false to match an empty array")
	}
}

func TestNewPresentNodeRejectsNonBoolCondition(t *testing.T) {
	if _, err := newPresentNode(value.String("x")); err == nil {
		t.Error("expected a non-bool $present condition to fail compilation")
	} else if err.Kind != value.KindInvalidArgument {
		t.Errorf("expected KindInvalidArgument, got %v", err.Kind)
	}
}
