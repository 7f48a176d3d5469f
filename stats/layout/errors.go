package layout

import "errors"

var (
	// ErrCapacity indicates that a reservation would exceed the layout's capacity.
	ErrCapacity = errors.New("layout: capacity exceeded")

	// ErrSealed indicates a reservation attempt on a sealed layout.
	ErrSealed = errors.New("layout: layout is sealed")

	// ErrBadSize indicates a non-positive reservation size.
	ErrBadSize = errors.New("layout: size must be positive")
)
