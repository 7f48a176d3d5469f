package stats

import (
	"fmt"
	"io"

	"github.com/joshuapare/statkit/internal/buf"
)

// Compile-time check that Array implements the counter contract.
var _ Stat = (*Array[uint64])(nil)

// Array is a fixed-length vector counter: size elements of kind T stored
// back to back. Typical uses are histograms and per-way or per-port
// tallies. Declare arrays with NewArray during setup.
//
// Element access is bounds-checked and panics with ErrRange outside
// [0, Len()); indexes never wrap.
type Array[T Fixed] struct {
	node   *Node
	name   string
	offset int
	length int
}

// NewArray declares an array counter of size elements of kind T under n,
// reserving SizeOf(T)*size bytes in registration order.
//
// Panics with ErrBadSize for size < 1 and otherwise like NewScalar.
func NewArray[T Fixed](n *Node, name string, size int) *Array[T] {
	n.checkAttach(name)
	total, ok := buf.MulOverflowSafe(buf.SizeOf[T](), size)
	if size < 1 || !ok {
		panic(fmt.Errorf("%w: array %q size %d", ErrBadSize, name, size))
	}
	a := &Array[T]{
		node:   n,
		name:   name,
		offset: n.reg.Reserve(total),
		length: size,
	}
	n.attach(a)
	return a
}

// Name returns the counter's name within its node.
func (a *Array[T]) Name() string {
	return a.name
}

// Node returns the node the counter is attached to.
func (a *Array[T]) Node() *Node {
	return a.node
}

// Len returns the number of elements.
func (a *Array[T]) Len() int {
	return a.length
}

// Info describes the counter's shape and arena range.
func (a *Array[T]) Info() StatInfo {
	return StatInfo{
		Path:   joinPath(a.node.Path(), a.name),
		Name:   a.name,
		Kind:   KindArray,
		Elem:   elemKindOf[T](),
		Elems:  a.length,
		Offset: a.offset,
		Size:   a.length * buf.SizeOf[T](),
	}
}

// At returns element i in the current instance.
func (a *Array[T]) At(i int) T {
	a.check(i)
	return buf.Load[T](a.current(), a.elemOffset(i))
}

// SetAt stores v as element i in the current instance.
func (a *Array[T]) SetAt(i int, v T) {
	a.check(i)
	buf.Store(a.current(), a.elemOffset(i), v)
}

// AddAt adds d to element i in the current instance and returns the new
// value.
func (a *Array[T]) AddAt(i int, d T) T {
	a.check(i)
	return buf.Add(a.current(), a.elemOffset(i), d)
}

// In returns a view of the whole array inside inst, bypassing the node's
// current-instance binding.
func (a *Array[T]) In(inst *Instance) Vector[T] {
	return Vector[T]{
		data:   a.node.reg.arena(inst),
		offset: a.offset,
		length: a.length,
	}
}

// RenderText writes "<name>: <v0> <v1> ... <vN-1> \n" using inst's values,
// one space after every element.
func (a *Array[T]) RenderText(w io.Writer, inst *Instance) error {
	b := a.node.reg.arena(inst)
	if _, err := fmt.Fprintf(w, "%s:", a.name); err != nil {
		return err
	}
	for i := 0; i < a.length; i++ {
		if _, err := fmt.Fprintf(w, " %v", buf.Load[T](b, a.elemOffset(i))); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, " \n")
	return err
}

// RenderStructured emits the counter as a key plus a flow-style sequence
// of its elements for inst.
func (a *Array[T]) RenderStructured(em Emitter, inst *Instance) {
	b := a.node.reg.arena(inst)
	em.Key(a.name)
	em.BeginSequence()
	for i := 0; i < a.length; i++ {
		em.Value(buf.Load[T](b, a.elemOffset(i)))
	}
	em.EndSequence()
}

// Accumulate adds the counter's elements in src into dst elementwise.
func (a *Array[T]) Accumulate(dst, src *Instance) {
	db := a.node.reg.arena(dst)
	sb := a.node.reg.arena(src)
	for i := 0; i < a.length; i++ {
		off := a.elemOffset(i)
		buf.Add(db, off, buf.Load[T](sb, off))
	}
}

func (a *Array[T]) elemOffset(i int) int {
	return a.offset + i*buf.SizeOf[T]()
}

func (a *Array[T]) check(i int) {
	if i < 0 || i >= a.length {
		panic(fmt.Errorf("%w: index %d, length %d on %q",
			ErrRange, i, a.length, joinPath(a.node.Path(), a.name)))
	}
}

// current resolves the owning node's current instance to an arena, or
// panics with ErrUnbound naming the counter.
func (a *Array[T]) current() []byte {
	inst := a.node.Current()
	if inst == nil {
		panic(fmt.Errorf("%w: counter %q", ErrUnbound, joinPath(a.node.Path(), a.name)))
	}
	return a.node.reg.arena(inst)
}

// Vector is an array counter evaluated against one explicit instance.
// Like Cell, vectors are plain values referencing the instance's arena.
type Vector[T Fixed] struct {
	data   []byte
	offset int
	length int
}

// Len returns the number of elements.
func (v Vector[T]) Len() int {
	return v.length
}

// Get returns element i in the viewed instance.
func (v Vector[T]) Get(i int) T {
	v.check(i)
	return buf.Load[T](v.data, v.offset+i*buf.SizeOf[T]())
}

// Set stores val as element i in the viewed instance.
func (v Vector[T]) Set(i int, val T) {
	v.check(i)
	buf.Store(v.data, v.offset+i*buf.SizeOf[T](), val)
}

// Add adds d to element i in the viewed instance and returns the new
// value.
func (v Vector[T]) Add(i int, d T) T {
	v.check(i)
	return buf.Add(v.data, v.offset+i*buf.SizeOf[T](), d)
}

// Values returns a decoded copy of all elements.
func (v Vector[T]) Values() []T {
	out := make([]T, v.length)
	for i := range out {
		out[i] = buf.Load[T](v.data, v.offset+i*buf.SizeOf[T]())
	}
	return out
}

func (v Vector[T]) check(i int) {
	if i < 0 || i >= v.length {
		panic(fmt.Errorf("%w: index %d, length %d", ErrRange, i, v.length))
	}
}
