package stats

import "io"

// Stat is the contract every counter kind implements. Built-in kinds are
// Scalar and Array; custom kinds reserve their arena bytes through
// Registry.Reserve and attach through Node.AddLeaf.
//
// A Stat is declared once during setup and then evaluated against many
// instances. Rendering and accumulation always take the instance
// explicitly, so one declaration serves every snapshot.
type Stat interface {
	// Name returns the counter's name within its node.
	Name() string

	// Node returns the namespace node the counter is attached to.
	Node() *Node

	// Info describes the counter's shape and arena range.
	Info() StatInfo

	// RenderText writes the counter's text dump line for inst.
	RenderText(w io.Writer, inst *Instance) error

	// RenderStructured emits the counter as a key plus value for inst.
	RenderStructured(em Emitter, inst *Instance)

	// Accumulate adds the counter's value(s) in src into dst elementwise.
	Accumulate(dst, src *Instance)
}
