// SPDX-License-Identifier: MIT

// Package dispatch is the type-erased entry point to ndmorph. It accepts
// ndarray.Tensor values, validates every precondition the generic
// operators assume, and selects the instantiation matching the runtime
// element Kind.
//
// Operations:
//
//	Erode(array, bc)                 -> same shape/kind as array
//	Dilate(array, bc)                -> same shape/kind as array
//	CWatershed(array, markers, bc)   -> same shape/kind as array
//	Label(array, bc)                 -> labels, component count
//
// Validation (all violations are reported together via go.uber.org/multierr):
//
//   - ErrNilTensor:         an operand is nil.
//   - ErrUnsupportedKind:   an operand is not one of the eight
//     *ndarray.Array[int8 … uint64] instantiations.
//   - ErrKindMismatch:      operands disagree on element kind.
//   - ErrDimensionMismatch: bc or markers differ from array in NDim.
//   - ErrShapeMismatch:     markers differ from array in shape.
//   - ErrNegativeMarker:    a signed marker image holds a negative value.
//
// Every returned error is prefixed with the operation name and matches its
// sentinels with errors.Is.
//
// Engine carries a logr.Logger; the package-level functions use an Engine
// with a discarding logger.
package dispatch
