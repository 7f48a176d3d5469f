// Package stats provides a hierarchical statistics registry for simulator
// hosts: named counter trees declared once at startup, with values stored
// in flat byte arenas that can be snapshotted, swapped, and merged without
// touching the tree.
//
// # Overview
//
// A Registry owns two things: a tree of named nodes with counter leaves,
// and an arena layout that assigns every counter a fixed byte range. The
// tree is the schema; an Instance is one arena filled with values. Many
// instances share one schema, which is how a simulator keeps separate
// user/kernel tallies, per-phase snapshots, and a running total while
// updating all of them through the same declared counters.
//
// # Declaring Counters
//
// Declaration happens during single-threaded setup, before the first
// instance exists:
//
//	reg := stats.New(nil)
//
//	cache := reg.NewNode("cache")
//	hits := stats.NewScalar[uint64](cache, "hits")
//	misses := stats.NewScalar[uint64](cache, "misses")
//	latency := stats.NewArray[uint32](cache, "latency", 16)
//
// Constructors reserve arena bytes eagerly, in registration order, with no
// alignment padding. Names must be non-empty, must not contain ".", and
// must be unique among the siblings of a node (child namespaces and
// counters share one key namespace because both render as mapping keys).
//
// # Instances and Sealing
//
// The first NewInstance call seals the layout; registering anything after
// that panics with ErrSealed. Sealing is what makes every instance the
// same size forever, so a counter can never read past the end of an arena
// created earlier.
//
//	inst := reg.NewInstance() // zero-filled, seals the registry
//
// Instances can be cloned, reset, accumulated into one another, and
// recycled back to the registry when a measurement interval ends.
//
// # Current-Instance Binding
//
// Counters mutate the instance bound to their node. Bindings resolve at
// use time by walking from the owning node toward the root, so binding the
// root switches the whole tree at once while a node-local binding
// overrides it for one subtree:
//
//	reg.SetCurrent(user)        // whole tree writes to user
//	cache.Node().SetCurrent(io) // except the cache subtree
//	hits.Inc()
//
// Mutating a counter with no binding anywhere on its ancestor chain panics
// with ErrUnbound; counters never write into a silently allocated arena.
// The In method sidesteps binding entirely by returning a view tied to an
// explicit instance:
//
//	hits.In(kernel).Add(3)
//
// # Rendering and Merging
//
// RenderText writes the line-oriented dump format; RenderStructured feeds
// an Emitter (see the emit package for YAML and JSON emitters). Both visit
// counters in registration order, so output is deterministic. Accumulate
// adds one instance's counters into another elementwise, which is how
// per-phase snapshots fold into lifetime totals.
//
// # Error Handling
//
// Registration and access faults are programming or configuration errors
// and panic with an error wrapping one of the package sentinels
// (ErrCapacity, ErrSealed, ErrDupName, ErrUnbound, ErrRange, ...), so a
// recover boundary can still classify them with errors.Is. Operations that
// can fail in normal operation (rendering to a writer) return errors.
//
// # Thread Safety
//
// The registry performs no locking. Declaration and sealing are setup-phase
// and single-threaded. After sealing, distinct instances may be mutated
// from distinct goroutines, but concurrent access to one instance, or
// rebinding a node while its counters are in use, requires external
// synchronization.
package stats
