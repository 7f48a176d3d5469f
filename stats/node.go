package stats

import (
	"fmt"
	"io"
	"strings"
)

// textIndent is the per-level indentation of the text dump format.
const textIndent = "  "

// Node is one namespace in the counter tree. Nodes group related counters
// and child namespaces, carry an optional current-instance binding for
// their subtree, and render as one mapping in structured output.
type Node struct {
	reg      *Registry
	name     string
	parent   *Node
	children []*Node
	leaves   []Stat

	// names guards the shared key namespace of children and counters.
	names map[string]struct{}

	// current is the node-local binding; nil inherits from the parent chain.
	current *Instance
}

// NewChild registers a child namespace under n. Children are created in
// place and never reattached.
//
// Panics with ErrBadName for empty or dotted names, ErrDupName when the
// name is already taken by a sibling, and ErrSealed after the registry has
// sealed.
func (n *Node) NewChild(name string) *Node {
	n.checkAttach(name)
	child := &Node{reg: n.reg, name: name, parent: n}
	n.claimName(name)
	n.children = append(n.children, child)
	return child
}

// AddLeaf attaches a counter to n. The built-in constructors (NewScalar,
// NewArray) attach internally; custom Stat implementations reserve their
// arena bytes with Registry.Reserve first, then attach here.
func (n *Node) AddLeaf(s Stat) {
	n.checkAttach(s.Name())
	n.attach(s)
}

// attach records s under n. Callers have already passed checkAttach, so a
// constructor can reserve arena bytes between validation and attachment
// without leaving a half-registered counter behind on failure.
func (n *Node) attach(s Stat) {
	n.claimName(s.Name())
	n.leaves = append(n.leaves, s)
	n.reg.stats = append(n.reg.stats, s)
}

// Name returns the node's name. The root's name is empty.
func (n *Node) Name() string {
	return n.name
}

// Parent returns the parent node, or nil for the root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Registry returns the registry the node belongs to.
func (n *Node) Registry() *Registry {
	return n.reg
}

// Path returns the node's dot-separated path from the root. The root's
// path is the empty string.
func (n *Node) Path() string {
	if n.parent == nil {
		return ""
	}
	return joinPath(n.parent.Path(), n.name)
}

// Children returns the child namespaces in attachment order.
func (n *Node) Children() []*Node {
	return append([]*Node(nil), n.children...)
}

// Leaves returns the node's counters in attachment order.
func (n *Node) Leaves() []Stat {
	return append([]Stat(nil), n.leaves...)
}

// SetCurrent binds inst as the current instance for this node's subtree.
// Descendants inherit the binding unless they carry their own; passing nil
// clears the local binding. Resolution happens at use time, so rebinding a
// parent takes effect for the whole subtree immediately.
func (n *Node) SetCurrent(inst *Instance) {
	if inst != nil && inst.reg != n.reg {
		panic(fmt.Errorf("%w: cannot bind", ErrForeignInstance))
	}
	n.current = inst
}

// Current resolves the instance this node's counters mutate: the nearest
// binding on the path from n to the root, or nil when nothing is bound.
func (n *Node) Current() *Instance {
	for cur := n; cur != nil; cur = cur.parent {
		if cur.current != nil {
			return cur.current
		}
	}
	return nil
}

// Lookup resolves a dot-separated path relative to n. The empty path
// returns n itself; an unknown path returns nil.
func (n *Node) Lookup(path string) *Node {
	if path == "" {
		return n
	}
	cur := n
	for _, seg := range strings.Split(path, ".") {
		cur = cur.child(seg)
		if cur == nil {
			return nil
		}
	}
	return cur
}

// Walk visits n and every descendant, parents before children, siblings in
// attachment order.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.children {
		c.Walk(fn)
	}
}

// RenderText writes the subtree rooted at n in the text dump format: one
// "<name>: <value>" line per counter, one "<name>:" header per child
// namespace, each level indented by two more spaces. The rendered node
// itself contributes no header, so dumping a leaf-bearing node yields just
// its counter lines.
func (n *Node) RenderText(w io.Writer, inst *Instance) error {
	n.reg.arena(inst)
	return n.renderText(w, inst, "")
}

func (n *Node) renderText(w io.Writer, inst *Instance, pad string) error {
	for _, leaf := range n.leaves {
		if _, err := io.WriteString(w, pad); err != nil {
			return err
		}
		if err := leaf.RenderText(w, inst); err != nil {
			return err
		}
	}
	for _, child := range n.children {
		if _, err := fmt.Fprintf(w, "%s%s:\n", pad, child.name); err != nil {
			return err
		}
		if err := child.renderText(w, inst, pad+textIndent); err != nil {
			return err
		}
	}
	return nil
}

// RenderStructured emits the subtree rooted at n as one mapping: counter
// entries first, then one nested mapping per child, in attachment order.
func (n *Node) RenderStructured(em Emitter, inst *Instance) {
	n.reg.arena(inst)
	n.renderStructured(em, inst)
}

func (n *Node) renderStructured(em Emitter, inst *Instance) {
	em.BeginMapping()
	for _, leaf := range n.leaves {
		leaf.RenderStructured(em, inst)
	}
	for _, child := range n.children {
		em.Key(child.name)
		child.renderStructured(em, inst)
	}
	em.EndMapping()
}

// Accumulate folds src's counters into dst for the subtree rooted at n.
// src is left untouched; repeated application keeps compounding.
func (n *Node) Accumulate(dst, src *Instance) {
	n.reg.arena(dst)
	n.reg.arena(src)
	n.accumulate(dst, src)
}

func (n *Node) accumulate(dst, src *Instance) {
	for _, leaf := range n.leaves {
		leaf.Accumulate(dst, src)
	}
	for _, child := range n.children {
		child.accumulate(dst, src)
	}
}

func (n *Node) child(name string) *Node {
	for _, c := range n.children {
		if c.name == name {
			return c
		}
	}
	return nil
}

func (n *Node) checkAttach(name string) {
	if n.reg.Sealed() {
		panic(fmt.Errorf("stats: add %q: %w", name, ErrSealed))
	}
	if name == "" || strings.Contains(name, ".") {
		panic(fmt.Errorf("%w: %q", ErrBadName, name))
	}
	if _, ok := n.names[name]; ok {
		panic(fmt.Errorf("%w: %q under %q", ErrDupName, name, n.Path()))
	}
}

func (n *Node) claimName(name string) {
	if n.names == nil {
		n.names = make(map[string]struct{})
	}
	n.names[name] = struct{}{}
}

func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}
