package ansicolor

import (
	"os"
	"strings"
	"testing"
)

func TestGreenWrapsAndResets(t *testing.T) {
	out := Green("ok")
	if !strings.Contains(out, "ok") {
		t.Errorf("Green(%q) = %q, expected it to contain the original text", "ok", out)
	}
	if !strings.HasSuffix(out, reset) {
		t.Errorf("Green(%q) = %q, expected it to end with the reset sequence", "ok", out)
	}
}

func TestRedWrapsAndResets(t *testing.T) {
	out := Red("bad")
	if !strings.Contains(out, "bad") {
		t.Errorf("Red(%q) = %q, expected it to contain the original text", "bad", out)
	}
	if !strings.HasSuffix(out, reset) {
		t.Errorf("Red(%q) = %q, expected it to end with the reset sequence", "bad", out)
	}
}

func TestIsTerminalNilIsFalse(t *testing.T) {
	if IsTerminal(nil) {
		t.Error("expected a nil file not to be reported as a terminal")
	}
}

func TestIsTerminalOnRegularFileIsFalse(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "ansicolor")
	if err != nil {
		t.Fatalf("CreateTemp failed: %v", err)
	}
	defer f.Close()
	if IsTerminal(f) {
		t.Error("expected a regular file not to be reported as a terminal")
	}
}
