// SPDX-License-Identifier: MIT

// Package ndarray provides the dense n-dimensional array that every
// operator in ndmorph reads from and writes into.
//
// What:
//
//   - Position: an ordered tuple of integer coordinates with
//     coordinatewise Add/Sub.
//   - Shape: per-dimension extents; strides are implicit and row-major.
//   - Array[T]: an owned, contiguous buffer of a single integer element
//     type plus its shape/stride descriptor.
//   - Kind: the runtime element-type tag (Int8 … Uint64) used by the
//     dispatch layer to select a generic instantiation.
//   - Tensor: the type-erased view shared by every *Array[T].
//
// Access modes:
//
//   - ValidPosition(pos) reports whether pos lies inside [0, extent_d)
//     for every dimension d. It never touches the buffer.
//   - At/Set read and write the element at a valid position. Passing an
//     invalid position is a programmer error and panics; gate with
//     ValidPosition first.
//   - Each walks the buffer in linear (row-major) order and exposes the
//     Position of every element, so flat scans can recover neighbour
//     coordinates.
//   - Neighbor(pos, delta) combines the two: it returns the linear index of
//     pos+delta and whether that position is valid, without allocating.
//
// Errors:
//
//   - ErrBadShape: zero dimensions or a non-positive extent.
//   - ErrAllocation: the element count (or its byte size) overflows int.
//   - ErrDataLength: FromSlice data length differs from the shape size.
//   - ErrDimensionMismatch: operands of different dimensionality; raised
//     as a panic by Position arithmetic.
//   - ErrUnknownKind: ParseKind got a name outside the closed Kind set.
//
// Complexity:
//
//   - New, FromSlice, Clone, Fill, Each: O(N) time, O(N) memory.
//   - ValidPosition, Index, At, Set, Neighbor: O(d) for d dimensions.
package ndarray
