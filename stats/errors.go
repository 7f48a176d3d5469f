package stats

import (
	"errors"

	"github.com/joshuapare/statkit/stats/layout"
)

// Layout sentinels re-exported so callers classifying registration faults
// do not need to import the layout package.
var (
	// ErrCapacity indicates that a reservation would exceed the arena capacity.
	ErrCapacity = layout.ErrCapacity

	// ErrSealed indicates registration after the layout was sealed.
	ErrSealed = layout.ErrSealed

	// ErrBadSize indicates a non-positive reservation or array size.
	ErrBadSize = layout.ErrBadSize
)

var (
	// ErrUnbound indicates a current-instance operation with no instance
	// bound anywhere on the owning node's ancestor chain.
	ErrUnbound = errors.New("stats: no current instance bound")

	// ErrRange indicates an array access outside [0, Len()).
	ErrRange = errors.New("stats: array index out of range")

	// ErrBadName indicates an empty name or a name containing the path separator.
	ErrBadName = errors.New("stats: invalid name")

	// ErrDupName indicates a name already taken by a sibling node or counter.
	ErrDupName = errors.New("stats: duplicate name")

	// ErrForeignInstance indicates an instance that belongs to a different registry.
	ErrForeignInstance = errors.New("stats: instance belongs to a different registry")

	// ErrInstanceSize indicates an instance buffer smaller than the sealed
	// layout, typically an instance that was already recycled.
	ErrInstanceSize = errors.New("stats: instance buffer too small")
)
