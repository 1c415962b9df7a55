package matcher

import (
	"fmt"
	"strings"
)

// Explain renders a compiled tree's static structure as a pre-order,
// box-drawing listing, the same text shape matcher.c's explain facility
// produces by traversing with a callback instead of evaluating anything.
func Explain(n Node) string {
	var b strings.Builder
	b.WriteString(explainText(n))
	b.WriteByte('\n')
	explainChildren(&b, n, "")
	return b.String()
}

func explainChildren(b *strings.Builder, n Node, prefix string) {
	children := n.childNodes()
	for i, c := range children {
		last := i == len(children)-1
		connector, nextPrefix := "├─ ", prefix+"│  "
		if last {
			connector, nextPrefix = "└─ ", prefix+"   "
		}
		b.WriteString(prefix)
		b.WriteString(connector)
		b.WriteString(explainText(c))
		b.WriteByte('\n')
		explainChildren(b, c, nextPrefix)
	}
}

func explainText(n Node) string {
	if f, ok := n.(*fieldNode); ok {
		return fmt.Sprintf("Field: %q, to match: %s", f.fieldName, f.Condition().String())
	}
	return fmt.Sprintf("%s: %s", n.Name(), n.Condition().String())
}
