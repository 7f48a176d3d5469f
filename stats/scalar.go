package stats

import (
	"fmt"
	"io"

	"github.com/joshuapare/statkit/internal/buf"
)

// Compile-time check that Scalar implements the counter contract.
var _ Stat = (*Scalar[uint64])(nil)

// Scalar is a single fixed-width counter. The zero value is not usable;
// declare scalars with NewScalar during setup.
//
// Mutating methods (Inc, Dec, Add, Set) and readers without an explicit
// instance operate on the owning node's current instance and panic with
// ErrUnbound when none is bound. In returns a view over an explicit
// instance instead, leaving bindings untouched.
type Scalar[T Fixed] struct {
	node   *Node
	name   string
	offset int
}

// NewScalar declares a scalar counter of kind T under n, reserving its
// byte range in registration order.
//
// Panics with ErrBadName, ErrDupName, ErrSealed, or ErrCapacity; all are
// setup-phase faults.
func NewScalar[T Fixed](n *Node, name string) *Scalar[T] {
	n.checkAttach(name)
	s := &Scalar[T]{
		node:   n,
		name:   name,
		offset: n.reg.Reserve(buf.SizeOf[T]()),
	}
	n.attach(s)
	return s
}

// Name returns the counter's name within its node.
func (s *Scalar[T]) Name() string {
	return s.name
}

// Node returns the node the counter is attached to.
func (s *Scalar[T]) Node() *Node {
	return s.node
}

// Info describes the counter's shape and arena range.
func (s *Scalar[T]) Info() StatInfo {
	return StatInfo{
		Path:   joinPath(s.node.Path(), s.name),
		Name:   s.name,
		Kind:   KindScalar,
		Elem:   elemKindOf[T](),
		Elems:  1,
		Offset: s.offset,
		Size:   buf.SizeOf[T](),
	}
}

// Inc adds one to the counter in the current instance and returns the new
// value.
func (s *Scalar[T]) Inc() T {
	return buf.Add(s.current(), s.offset, T(1))
}

// Dec subtracts one from the counter in the current instance and returns
// the new value. Unsigned kinds wrap below zero.
func (s *Scalar[T]) Dec() T {
	b := s.current()
	v := buf.Load[T](b, s.offset) - 1
	buf.Store(b, s.offset, v)
	return v
}

// Add adds d to the counter in the current instance and returns the new
// value.
func (s *Scalar[T]) Add(d T) T {
	return buf.Add(s.current(), s.offset, d)
}

// Set stores v as the counter's value in the current instance.
func (s *Scalar[T]) Set(v T) {
	buf.Store(s.current(), s.offset, v)
}

// Value returns the counter's value in the current instance.
func (s *Scalar[T]) Value() T {
	return buf.Load[T](s.current(), s.offset)
}

// Plus returns the counter's current value plus v, without mutating.
// Counter-vs-counter arithmetic composes through Value:
//
//	total := hits.Plus(misses.Value())
func (s *Scalar[T]) Plus(v T) T {
	return s.Value() + v
}

// Minus returns the counter's current value minus v, without mutating.
func (s *Scalar[T]) Minus(v T) T {
	return s.Value() - v
}

// Times returns the counter's current value times v, without mutating.
func (s *Scalar[T]) Times(v T) T {
	return s.Value() * v
}

// DividedBy returns the counter's current value divided by v, without
// mutating. Division follows T's native semantics, including the runtime
// panic on integer division by zero.
func (s *Scalar[T]) DividedBy(v T) T {
	return s.Value() / v
}

// In returns a view of the counter inside inst, bypassing the node's
// current-instance binding. The view stays valid for the lifetime of inst.
func (s *Scalar[T]) In(inst *Instance) Cell[T] {
	return Cell[T]{data: s.node.reg.arena(inst), offset: s.offset}
}

// RenderText writes "<name>: <value>\n" using inst's value.
func (s *Scalar[T]) RenderText(w io.Writer, inst *Instance) error {
	_, err := fmt.Fprintf(w, "%s: %v\n", s.name, s.get(inst))
	return err
}

// RenderStructured emits the counter as a key plus scalar value for inst.
func (s *Scalar[T]) RenderStructured(em Emitter, inst *Instance) {
	em.Key(s.name)
	em.Value(s.get(inst))
}

// Accumulate adds the counter's value in src into dst. Native overflow
// semantics apply; there is no saturation.
func (s *Scalar[T]) Accumulate(dst, src *Instance) {
	buf.Add(s.node.reg.arena(dst), s.offset, s.get(src))
}

func (s *Scalar[T]) get(inst *Instance) T {
	return buf.Load[T](s.node.reg.arena(inst), s.offset)
}

// current resolves the owning node's current instance to an arena, or
// panics with ErrUnbound naming the counter.
func (s *Scalar[T]) current() []byte {
	inst := s.node.Current()
	if inst == nil {
		panic(fmt.Errorf("%w: counter %q", ErrUnbound, joinPath(s.node.Path(), s.name)))
	}
	return s.node.reg.arena(inst)
}

// Cell is a scalar counter evaluated against one explicit instance.
// Cells are plain values; copying one copies the reference, not the
// counter.
type Cell[T Fixed] struct {
	data   []byte
	offset int
}

// Get returns the counter's value in the viewed instance.
func (c Cell[T]) Get() T {
	return buf.Load[T](c.data, c.offset)
}

// Set stores v as the counter's value in the viewed instance.
func (c Cell[T]) Set(v T) {
	buf.Store(c.data, c.offset, v)
}

// Add adds d to the counter in the viewed instance and returns the new
// value.
func (c Cell[T]) Add(d T) T {
	return buf.Add(c.data, c.offset, d)
}

// Inc adds one to the counter in the viewed instance and returns the new
// value.
func (c Cell[T]) Inc() T {
	return buf.Add(c.data, c.offset, T(1))
}
