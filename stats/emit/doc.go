// Package emit provides structured emitters for statistics dumps.
//
// Emitters receive the event stream produced by RenderStructured and
// build a complete document from it:
//
//   - YAML renders a block-style mapping per namespace node with array
//     counters as flow-style sequences, the traditional simulator dump
//     format.
//   - JSON renders one JSON object, preserving attachment order (a plain
//     map marshal would re-sort keys).
//
// Both emitters buffer the whole document and write it out at the end:
//
//	em := emit.NewYAML()
//	reg.RenderStructured(em, inst)
//	if err := em.WriteTo(os.Stdout); err != nil {
//	    return err
//	}
//
// Emitters are single-use; allocate a fresh one per dump. Events must be
// well nested, and every key must be followed by exactly one value or one
// sequence. Violations are programming errors and panic.
package emit
