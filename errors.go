package cg

import "errors"

var (
	// ErrReleased is the panic value raised when a path handle is used or
	// released after its reference count has dropped to zero.
	ErrReleased = errors.New("cg: use of released path")

	// ErrNotInvertible is returned when a transform with a zero determinant
	// must be inverted.
	ErrNotInvertible = errors.New("cg: transform is not invertible")

	// ErrEmptyFont is returned when font data is empty.
	ErrEmptyFont = errors.New("cg: empty font data")

	// ErrInvalidSize is returned for non-positive raster or font sizes.
	ErrInvalidSize = errors.New("cg: invalid size")
)
