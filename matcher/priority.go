package matcher

import (
	"math"
	"sort"
)

// Fixed leaf priorities, exactly as the priority table specifies.
const (
	priorityEq     = 1.0
	priorityNe     = 1.0
	priorityGt     = 2.0
	priorityGte    = 2.0
	priorityLt     = 2.0
	priorityLte    = 2.0
	priorityExists = 2.0
	priorityPresent = 2.0
	priorityRegex  = 20.0
	priorityCustom = 20.0

	compositeBaseElemMatch = 3.0
	compositeBaseEvery     = 3.0
	compositeBaseAndOr     = 2.0
)

// inclusionPriority implements 1 + log_1.5(|set|+1) for $in/$nin.
func inclusionPriority(setSize int) float64 {
	return 1 + logBase(float64(setSize+1), 1.5)
}

func logBase(x, base float64) float64 {
	return math.Log(x) / math.Log(base)
}

// wrapperPriority implements 1 + child.priority for Field/$not/$size.
func wrapperPriority(child Node) float64 {
	return 1 + child.Priority()
}

// sumPriority implements base + sum(children priorities) for
// $and/$or/table-condition (base 2.0) and $elemMatch/$every (base 3.0).
func sumPriority(base float64, children []Node) float64 {
	total := base
	for _, c := range children {
		total += c.Priority()
	}
	return total
}

// sortChildren sorts children ascending by priority, using a stable sort so
// ties preserve original insertion order, per the tie-break invariant.
func sortChildren(children []Node) {
	sort.SliceStable(children, func(i, j int) bool {
		return children[i].Priority() < children[j].Priority()
	})
}
