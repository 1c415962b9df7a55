package matcher

import "github.com/mongoryhq/mongory-go/value"

// base carries the fields every node variant shares (name, condition,
// priority) and the Name/Condition/Priority methods, the same role
// base_matcher.c's mongory_matcher_base plays for every C matcher struct.
// Embedders still implement Match/Traverse/traverseAt themselves, since
// those differ by shape (leaf vs composite vs wrapper).
type base struct {
	name      string
	condition *value.Value
	priority  float64
}

func (b *base) Name() string            { return b.name }
func (b *base) Condition() *value.Value { return b.condition }
func (b *base) Priority() float64       { return b.priority }
