// Package layout provides byte-offset reservation for statistics arenas.
//
// # Overview
//
// Every counter registered with a statistics registry owns a fixed byte
// range inside a flat arena that is shared by all snapshot instances. This
// package implements the reservation side of that contract: a monotonic
// bump cursor that hands out offsets in registration order, bounded by a
// fixed capacity, with no deallocation and no reuse.
//
// # Usage
//
//	l := layout.New(layout.DefaultCapacity)
//
//	off, err := l.Reserve(8) // first reservation, off == 0
//	if err != nil {
//	    return err
//	}
//
//	// ... register more counters ...
//
//	l.Seal() // freeze the layout before instances are created
//
// # Reservation Rules
//
// Reserve is append-only and gap-free: the offset returned for reservation
// N+1 is exactly the offset of reservation N plus its size. There is no
// alignment padding; counter kinds are fixed-width little-endian values
// that the accessors read and write byte-wise, so unaligned offsets are
// safe. Consequently the reserved ranges of a layout always tile the
// interval [0, Size()) exactly.
//
// Reserve fails with ErrCapacity when a reservation would exceed the
// configured capacity, with ErrSealed after Seal has been called, and with
// ErrBadSize for non-positive sizes. A failed reservation never moves the
// cursor.
//
// # Sealing
//
// Seal freezes the layout. Once sealed, Size() is final and arenas of
// exactly that many bytes are valid for the lifetime of the layout.
// Sealing is idempotent and cannot be undone.
//
// # Thread Safety
//
// Layout is not thread-safe. Reservation happens during single-threaded
// setup, before any arena exists.
package layout
