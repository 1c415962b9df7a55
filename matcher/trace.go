package matcher

import (
	"fmt"
	"strings"

	"github.com/mongoryhq/mongory-go/value"
)

// Entry is one line of trace output: a node's name/condition/outcome at a
// given tree depth.
type Entry struct {
	Depth   int
	Message string
}

// Recorder accumulates trace Entries for a single traced evaluation. It is
// threaded through matchTraced as an explicit parameter instead of the
// original implementation's function-pointer swap plus a second
// level-grouping pass: every node appends its own entry, then splices in
// whatever its children recorded, producing pre-order output with no
// second sorting pass needed.
type Recorder struct {
	depth    int
	colorful bool
	entries  []Entry
}

// NewRecorder starts a fresh trace at depth 0.
func NewRecorder(colorful bool) *Recorder {
	return &Recorder{colorful: colorful}
}

// child returns a Recorder one level deeper, or nil if r is nil (tracing
// disabled), so callers can pass it straight into a child's matchTraced
// without a nil check at every call site.
func (r *Recorder) child() *Recorder {
	if r == nil {
		return nil
	}
	return &Recorder{depth: r.depth + 1, colorful: r.colorful}
}

// record appends this node's own line, with any already-collected child
// entries spliced in immediately after it, preserving pre-order.
func (r *Recorder) record(n Node, subject *value.Value, matched bool, sub *Recorder) {
	if r == nil {
		return
	}
	r.entries = append(r.entries, Entry{Depth: r.depth, Message: formatTraceMessage(n, subject, matched, r.colorful)})
	if sub != nil {
		r.entries = append(r.entries, sub.entries...)
	}
}

func formatTraceMessage(n Node, subject *value.Value, matched bool, colorful bool) string {
	outcome := "Dismatch"
	if matched {
		outcome = "Matched"
	}
	if colorful {
		outcome = colorizeOutcome(outcome, matched)
	}

	var desc string
	if f, ok := n.(*fieldNode); ok {
		desc = fmt.Sprintf("field: %q, to match: %s", f.fieldName, f.Condition().String())
	} else {
		desc = fmt.Sprintf("%s: %s", n.Name(), n.Condition().String())
	}

	return fmt.Sprintf("%s, %s, record: %s", outcome, desc, subject.String())
}

// Render formats the accumulated entries as a pre-order listing, one line
// per entry, indented by two spaces per depth level (no box-drawing
// connectors, unlike Explain), for trace output after an evaluation has run.
func (r *Recorder) Render() string {
	if r == nil {
		return ""
	}
	var b strings.Builder
	for _, e := range r.entries {
		b.WriteString(strings.Repeat("  ", e.Depth))
		b.WriteString(e.Message)
		b.WriteByte('\n')
	}
	return b.String()
}

// Trace runs one evaluation of n against record, returning the match result
// and the rendered trace text.
func Trace(n Node, record *value.Value, colorful bool) (bool, string) {
	rec := NewRecorder(colorful)
	matched := matchWithRecorder(n, record, rec)
	return matched, rec.Render()
}
