package stats

// Fixed is the closed set of fixed-width numeric kinds a counter can hold.
// Plain int and uint are excluded: their width is platform-dependent, and
// an arena offset must mean the same bytes on every platform.
type Fixed interface {
	uint8 | uint16 | uint32 | uint64 |
		int8 | int16 | int32 | int64 |
		float32 | float64
}
