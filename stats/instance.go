package stats

// Instance is one snapshot arena: a flat byte buffer holding the value of
// every registered counter at the offsets fixed by the registry's layout.
// Instances are cheap; a simulator typically keeps one per context (user,
// kernel, total) plus short-lived interval snapshots.
type Instance struct {
	reg  *Registry
	data []byte
}

// Registry returns the registry the instance belongs to.
func (inst *Instance) Registry() *Registry {
	return inst.reg
}

// Size returns the arena size in bytes.
func (inst *Instance) Size() int {
	return len(inst.data)
}

// Bytes returns the live backing arena. The slice aliases the instance:
// writes to it bypass the typed accessors. Intended for checksumming and
// bulk I/O, not for counter updates.
func (inst *Instance) Bytes() []byte {
	return inst.data
}

// Reset zeroes every counter in the instance.
func (inst *Instance) Reset() {
	clear(inst.data)
}

// Clone returns a new instance holding a copy of inst's counters.
func (inst *Instance) Clone() *Instance {
	inst.reg.arena(inst)
	dup := inst.reg.NewInstance()
	copy(dup.data, inst.data)
	return dup
}

// Accumulate folds src's counters into inst across the whole tree.
func (inst *Instance) Accumulate(src *Instance) {
	inst.reg.Accumulate(inst, src)
}
