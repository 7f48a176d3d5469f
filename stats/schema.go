package stats

import (
	"fmt"
	"sort"
)

// Schema returns a StatInfo for every registered counter, in declaration
// order. Declaration order is also arena order for counters declared
// through the built-in constructors.
func (r *Registry) Schema() []StatInfo {
	infos := make([]StatInfo, len(r.stats))
	for i, s := range r.stats {
		infos[i] = s.Info()
	}
	return infos
}

// VerifyLayout checks the arena layout invariant: the byte ranges of all
// registered counters are pairwise disjoint and tile [0, Size()) exactly,
// with no gaps. A nil result means every instance byte belongs to exactly
// one counter.
//
// The invariant holds by construction for counters declared through
// NewScalar and NewArray; VerifyLayout exists to validate registries that
// mix in custom Stat implementations, and as a test oracle.
func (r *Registry) VerifyLayout() error {
	infos := r.Schema()
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Offset < infos[j].Offset
	})

	end := 0
	for _, info := range infos {
		if info.Size < 1 {
			return fmt.Errorf("stats: counter %q has size %d", info.Path, info.Size)
		}
		switch {
		case info.Offset > end:
			return fmt.Errorf("stats: %d-byte gap before counter %q at offset %d",
				info.Offset-end, info.Path, info.Offset)
		case info.Offset < end:
			return fmt.Errorf("stats: counter %q at offset %d overlaps the previous range ending at %d",
				info.Path, info.Offset, end)
		}
		end = info.Offset + info.Size
	}

	if end != r.layout.Size() {
		return fmt.Errorf("stats: counters end at %d but the layout reserved %d bytes",
			end, r.layout.Size())
	}
	return nil
}
