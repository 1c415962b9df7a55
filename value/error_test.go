package value

import (
	"errors"
	"testing"
)

func TestNewErrorFormatsMessage(t *testing.T) {
	err := NewError(KindInvalidArgument, "bad value: %d", 42)
	if err.Kind != KindInvalidArgument {
		t.Errorf("Kind = %v, want KindInvalidArgument", err.Kind)
	}
	if err.Message != "bad value: 42" {
		t.Errorf("Message = %q, want %q", err.Message, "bad value: 42")
	}
}

func TestErrorSatisfiesGoErrorInterface(t *testing.T) {
	var err error = NewError(KindParse, "oops")
	if err.Error() == "" {
		t.Error("expected Error() to render a non-empty message")
	}
	var target *Error
	if !errors.As(err, &target) {
		t.Error("expected errors.As to unwrap back to *value.Error")
	}
}

func TestErrorKindString(t *testing.T) {
	if KindInvalidType.String() != "invalid_type" {
		t.Errorf("String() = %q, want %q", KindInvalidType.String(), "invalid_type")
	}
}
