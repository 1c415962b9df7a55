package value

// Pool is the per-compiled-tree arena: a single handle threaded through
// every matcher constructor exactly like the C core's mongory_memory_pool
// parameter. Go's GC makes literal bump allocation unnecessary, so Pool
// exists for three reasons instead: it gives Compile one object to pass
// down through every constructor, it offers the single Reset call the
// lifecycle in spec needs ("destruction is collective"), and it carries
// the construction error slot the original embeds on the arena itself.
type Pool struct {
	tracked []*Value
	err     *Error
}

func NewPool() *Pool {
	return &Pool{}
}

// Track registers v as allocated within this pool's lifetime. Tracking is
// bookkeeping only; v remains reachable for as long as something else in
// the tree still references it.
func (p *Pool) Track(v *Value) *Value {
	p.tracked = append(p.tracked, v)
	return v
}

// Reset drops every tracked value, letting the garbage collector reclaim
// them in one step, mirroring the arena's collective release.
func (p *Pool) Reset() {
	p.tracked = nil
	p.err = nil
}

// Fail records the first construction error seen while building a tree out
// of this pool. Subsequent failures do not overwrite an earlier one.
func (p *Pool) Fail(err *Error) {
	if p.err == nil {
		p.err = err
	}
}

func (p *Pool) Error() *Error { return p.err }

func (p *Pool) Failed() bool { return p.err != nil }
