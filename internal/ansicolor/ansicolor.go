// Package ansicolor wraps trace output in ANSI escape codes and decides,
// the way cmd/graft's main.go does via mattn/go-isatty, whether a given
// output stream is a terminal that should receive them at all.
package ansicolor

import (
	"os"

	"github.com/mattn/go-isatty"
)

const (
	reset = "\033[0m"
	green = "\033[32m"
	red   = "\033[31m"
)

// IsTerminal reports whether f is an interactive terminal, the same check
// cmd/graft/main.go runs before deciding shouldEnableColor.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Green wraps s in the green escape sequence used for a matched trace line.
func Green(s string) string {
	return green + s + reset
}

// Red wraps s in the red escape sequence used for a dismatched trace line.
func Red(s string) string {
	return red + s + reset
}
