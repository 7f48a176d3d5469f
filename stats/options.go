package stats

import "github.com/joshuapare/statkit/stats/layout"

// DefaultCapacity is the default arena capacity in bytes.
const DefaultCapacity = layout.DefaultCapacity

// Options configures a Registry.
type Options struct {
	// Capacity is the arena size in bytes shared by every instance of the
	// registry. Registration fails hard once counters outgrow it; pick a
	// capacity with headroom for the whole model.
	// Default: DefaultCapacity
	Capacity int
}

// DefaultOptions returns the recommended options for a new registry.
func DefaultOptions() *Options {
	return &Options{
		Capacity: DefaultCapacity,
	}
}
