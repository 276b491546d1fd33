// SPDX-License-Identifier: MIT

package dispatch

import "errors"

// Sentinel errors for dispatch validation.
var (
	// ErrNilTensor indicates that an operand was nil.
	ErrNilTensor = errors.New("dispatch: nil array")

	// ErrUnsupportedKind indicates an element type outside int8 … uint64.
	ErrUnsupportedKind = errors.New("dispatch: unsupported element type")

	// ErrKindMismatch indicates operands with different element kinds.
	ErrKindMismatch = errors.New("dispatch: element type mismatch")

	// ErrDimensionMismatch indicates operands with different dimensionality.
	ErrDimensionMismatch = errors.New("dispatch: dimension mismatch")

	// ErrShapeMismatch indicates a marker image whose shape differs from the input.
	ErrShapeMismatch = errors.New("dispatch: shape mismatch")

	// ErrNegativeMarker indicates a negative value in a signed marker image.
	ErrNegativeMarker = errors.New("dispatch: negative marker value")
)
