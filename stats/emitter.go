package stats

// Emitter receives the structured form of a dump as a flat event stream.
// Namespace nodes arrive as mappings, counters as keys followed by either
// one scalar value or one sequence of values. Sequences hold counter
// elements and are rendered flow-style by emitters that distinguish styles.
//
// The emit package provides YAML and JSON emitters; hosts with their own
// output format implement this interface instead.
type Emitter interface {
	// BeginMapping opens a mapping. The stream's outermost container is
	// always a mapping (the rendered node itself).
	BeginMapping()

	// EndMapping closes the innermost open mapping.
	EndMapping()

	// Key emits a mapping key. The next event supplies its value.
	Key(name string)

	// Value emits one numeric scalar, either as a mapping value or as a
	// sequence element.
	Value(v any)

	// BeginSequence opens a flow-style sequence of scalars.
	BeginSequence()

	// EndSequence closes the innermost open sequence.
	EndSequence()
}
