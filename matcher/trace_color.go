package matcher

import "github.com/mongoryhq/mongory-go/internal/ansicolor"

// colorizeOutcome wraps a trace outcome word in green (Matched) or red
// (Dismatch), the two colors original's trace output ever used.
func colorizeOutcome(outcome string, matched bool) string {
	if matched {
		return ansicolor.Green(outcome)
	}
	return ansicolor.Red(outcome)
}
