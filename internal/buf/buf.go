// Package buf provides endian-safe typed access to flat counter arenas.
package buf

import (
	"encoding/binary"
	"math"
)

// Fixed is the closed set of fixed-width numeric kinds an arena can hold.
// Plain int and uint are excluded: their width is platform-dependent, and
// an arena offset must mean the same bytes on every platform.
type Fixed interface {
	uint8 | uint16 | uint32 | uint64 |
		int8 | int16 | int32 | int64 |
		float32 | float64
}

// SizeOf returns the encoded size of T in bytes.
func SizeOf[T Fixed]() int {
	var zero T
	switch any(zero).(type) {
	case uint8, int8:
		return 1
	case uint16, int16:
		return 2
	case uint32, int32, float32:
		return 4
	default: // uint64, int64, float64
		return 8
	}
}

// Load reads the little-endian value of type T starting at off.
// Out-of-range offsets panic; short buffers never yield fabricated zeros.
func Load[T Fixed](b []byte, off int) T {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return T(b[off])
	case uint16:
		return T(binary.LittleEndian.Uint16(b[off:]))
	case uint32:
		return T(binary.LittleEndian.Uint32(b[off:]))
	case uint64:
		return T(binary.LittleEndian.Uint64(b[off:]))
	case int8:
		return T(int8(b[off]))
	case int16:
		return T(int16(binary.LittleEndian.Uint16(b[off:])))
	case int32:
		return T(int32(binary.LittleEndian.Uint32(b[off:])))
	case int64:
		return T(int64(binary.LittleEndian.Uint64(b[off:])))
	case float32:
		return T(math.Float32frombits(binary.LittleEndian.Uint32(b[off:])))
	default: // float64
		return T(math.Float64frombits(binary.LittleEndian.Uint64(b[off:])))
	}
}

// Store writes v little-endian starting at off.
func Store[T Fixed](b []byte, off int, v T) {
	switch x := any(v).(type) {
	case uint8:
		b[off] = x
	case uint16:
		binary.LittleEndian.PutUint16(b[off:], x)
	case uint32:
		binary.LittleEndian.PutUint32(b[off:], x)
	case uint64:
		binary.LittleEndian.PutUint64(b[off:], x)
	case int8:
		b[off] = uint8(x)
	case int16:
		binary.LittleEndian.PutUint16(b[off:], uint16(x))
	case int32:
		binary.LittleEndian.PutUint32(b[off:], uint32(x))
	case int64:
		binary.LittleEndian.PutUint64(b[off:], uint64(x))
	case float32:
		binary.LittleEndian.PutUint32(b[off:], math.Float32bits(x))
	case float64:
		binary.LittleEndian.PutUint64(b[off:], math.Float64bits(x))
	}
}

// Add adds d to the value at off and returns the new value. Integer kinds
// wrap on overflow and float kinds follow IEEE 754; there is no saturation.
func Add[T Fixed](b []byte, off int, d T) T {
	v := Load[T](b, off) + d
	Store(b, off, v)
	return v
}

// MulOverflowSafe multiplies a and b, returning ok = false when the result
// would overflow int. This guards count * elementSize scaling before a
// reservation is attempted.
func MulOverflowSafe(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > 0 && b > 0 {
		if a > math.MaxInt/b {
			return 0, false
		}
	}
	if a < 0 && b < 0 {
		if a < math.MaxInt/b {
			return 0, false
		}
	}
	if a > 0 && b < 0 {
		if b < math.MinInt/a {
			return 0, false
		}
	}
	if a < 0 && b > 0 {
		if a < math.MinInt/b {
			return 0, false
		}
	}
	return a * b, true
}
