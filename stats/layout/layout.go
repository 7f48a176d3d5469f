package layout

import "fmt"

// DefaultCapacity is the arena size used when no explicit capacity is given.
// 10KB of counters is generous for a simulator model; hosts with bigger
// models configure a larger capacity up front.
const DefaultCapacity = 10 * 1024

// Layout hands out byte offsets inside a fixed-capacity arena using a
// bump cursor. It tracks only the cursor position, never the contents:
// arenas are allocated and owned elsewhere.
//
// Key characteristics:
//   - O(1) reservation: pure bump cursor, no free lists, no indexes
//   - Gap-free: offsets are assigned back to back in registration order
//   - Append-only: no deallocation, no reuse, no resize
type Layout struct {
	capacity     int
	cursor       int
	reservations int
	sealed       bool
}

// New creates a Layout with the given capacity in bytes.
// A capacity <= 0 selects DefaultCapacity.
func New(capacity int) *Layout {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Layout{capacity: capacity}
}

// Reserve claims size bytes and returns the offset of the claimed range.
// The cursor advances by exactly size; a failed reservation leaves it
// untouched.
func (l *Layout) Reserve(size int) (int, error) {
	if size <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrBadSize, size)
	}
	if l.sealed {
		return 0, fmt.Errorf("%w: cannot reserve %d bytes", ErrSealed, size)
	}
	// Compare against the remaining space so a huge size cannot overflow
	// the cursor arithmetic.
	if size > l.capacity-l.cursor {
		return 0, fmt.Errorf("%w: need %d bytes at offset %d, capacity %d",
			ErrCapacity, size, l.cursor, l.capacity)
	}

	off := l.cursor
	l.cursor += size
	l.reservations++
	return off, nil
}

// Seal freezes the layout. Idempotent.
func (l *Layout) Seal() {
	l.sealed = true
}

// Sealed reports whether the layout has been sealed.
func (l *Layout) Sealed() bool {
	return l.sealed
}

// Size returns the number of bytes reserved so far. After Seal this is the
// exact arena size every instance must have.
func (l *Layout) Size() int {
	return l.cursor
}

// Capacity returns the configured capacity in bytes.
func (l *Layout) Capacity() int {
	return l.capacity
}

// Remaining returns the number of bytes still available for reservation.
func (l *Layout) Remaining() int {
	return l.capacity - l.cursor
}

// Reservations returns how many successful reservations have been made.
func (l *Layout) Reservations() int {
	return l.reservations
}
