package stats

import (
	"fmt"
	"io"
	"sync"

	"github.com/joshuapare/statkit/stats/layout"
)

// Registry owns the counter tree of one model and the arena layout shared
// by all of its instances. Registries are independent: a host may run
// several side by side, and instances never cross between them.
type Registry struct {
	layout *layout.Layout
	root   *Node

	// stats lists every counter in declaration order, across all nodes.
	stats []Stat

	// pool recycles arena buffers between measurement intervals.
	// Buffers are re-zeroed on reuse.
	pool sync.Pool
}

// New creates an empty registry. A nil opts selects DefaultOptions.
func New(opts *Options) *Registry {
	if opts == nil {
		opts = DefaultOptions()
	}
	r := &Registry{
		layout: layout.New(opts.Capacity),
	}
	r.root = &Node{reg: r}
	r.pool.New = func() any {
		// Only reached after sealing, so Size() is final.
		b := make([]byte, r.layout.Size())
		return &b
	}
	return r
}

// Root returns the unnamed root node.
func (r *Registry) Root() *Node {
	return r.root
}

// NewNode registers a top-level node, equivalent to Root().NewChild(name).
func (r *Registry) NewNode(name string) *Node {
	return r.root.NewChild(name)
}

// Reserve claims size bytes of every future instance and returns their
// offset. Built-in counters reserve through their constructors; custom
// Stat implementations call this directly before Node.AddLeaf.
//
// Reserve panics when the registry is sealed or the capacity is exceeded;
// both are setup-phase faults that must not be absorbed.
func (r *Registry) Reserve(size int) int {
	off, err := r.layout.Reserve(size)
	if err != nil {
		panic(fmt.Errorf("stats: reserve %d bytes: %w", size, err))
	}
	return off
}

// Seal freezes the layout ahead of the first instance. Optional: the first
// NewInstance seals implicitly. Idempotent.
func (r *Registry) Seal() {
	r.layout.Seal()
}

// Sealed reports whether registration has been frozen.
func (r *Registry) Sealed() bool {
	return r.layout.Sealed()
}

// Size returns the arena size in bytes: final once sealed, otherwise the
// bytes reserved so far.
func (r *Registry) Size() int {
	return r.layout.Size()
}

// Capacity returns the configured arena capacity in bytes.
func (r *Registry) Capacity() int {
	return r.layout.Capacity()
}

// NumStats returns the number of registered counters.
func (r *Registry) NumStats() int {
	return len(r.stats)
}

// NewInstance returns a zero-filled instance sized exactly to the layout,
// sealing the registry on first use. Instances may reuse recycled buffers.
func (r *Registry) NewInstance() *Instance {
	r.layout.Seal()
	b := *(r.pool.Get().(*[]byte))
	clear(b)
	return &Instance{reg: r, data: b}
}

// Recycle returns an instance's buffer to the registry for reuse by a
// later NewInstance. The instance must not be used afterwards; typed
// access panics with ErrInstanceSize. Recycling nil or an already-recycled
// instance is a no-op.
func (r *Registry) Recycle(inst *Instance) {
	if inst == nil || inst.data == nil {
		return
	}
	if inst.reg != r {
		panic(fmt.Errorf("%w: cannot recycle", ErrForeignInstance))
	}
	b := inst.data
	inst.data = nil
	r.pool.Put(&b)
}

// SetCurrent binds inst as the current instance for the whole tree,
// equivalent to Root().SetCurrent(inst). Passing nil clears the binding.
func (r *Registry) SetCurrent(inst *Instance) {
	r.root.SetCurrent(inst)
}

// RenderText writes the whole tree for inst in the text dump format.
func (r *Registry) RenderText(w io.Writer, inst *Instance) error {
	return r.root.RenderText(w, inst)
}

// RenderStructured emits the whole tree for inst to em.
func (r *Registry) RenderStructured(em Emitter, inst *Instance) {
	r.root.RenderStructured(em, inst)
}

// Accumulate folds src's counters into dst elementwise across the whole
// tree. src is left untouched.
func (r *Registry) Accumulate(dst, src *Instance) {
	r.root.Accumulate(dst, src)
}

// Lookup resolves a dot-separated path from the root. The empty path
// returns the root; an unknown path returns nil.
func (r *Registry) Lookup(path string) *Node {
	return r.root.Lookup(path)
}

// arena validates inst for use with r and returns its backing buffer.
func (r *Registry) arena(inst *Instance) []byte {
	switch {
	case inst == nil:
		panic(fmt.Errorf("%w: nil instance", ErrUnbound))
	case inst.reg != r:
		panic(fmt.Errorf("%w", ErrForeignInstance))
	case len(inst.data) < r.layout.Size():
		panic(fmt.Errorf("%w: have %d bytes, layout needs %d",
			ErrInstanceSize, len(inst.data), r.layout.Size()))
	}
	return inst.data
}
