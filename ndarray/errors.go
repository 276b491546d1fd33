// SPDX-License-Identifier: MIT

package ndarray

import "errors"

// Sentinel errors for ndarray construction and access.
var (
	// ErrBadShape indicates a shape with no dimensions or a non-positive extent.
	ErrBadShape = errors.New("ndarray: invalid shape")

	// ErrAllocation indicates that the requested buffer cannot be allocated
	// because its element count or byte size overflows int.
	ErrAllocation = errors.New("ndarray: allocation failed")

	// ErrDataLength indicates that a source slice does not match the shape size.
	ErrDataLength = errors.New("ndarray: data length does not match shape")

	// ErrDimensionMismatch indicates operands of differing dimensionality.
	// Position arithmetic panics with this error; it is a programmer error.
	ErrDimensionMismatch = errors.New("ndarray: dimension mismatch")

	// ErrUnknownKind indicates an element kind name outside the supported set.
	ErrUnknownKind = errors.New("ndarray: unknown element kind")
)
