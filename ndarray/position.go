// SPDX-License-Identifier: MIT

package ndarray

import (
	"fmt"
	"strconv"
	"strings"
)

// Position is an ordered tuple of coordinates, one per dimension.
type Position []int

// Add returns p+q coordinatewise.
// Panics with ErrDimensionMismatch if len(p) != len(q).
// Complexity: O(d).
func (p Position) Add(q Position) Position {
	return p.AddInto(make(Position, len(p)), q)
}

// AddInto writes p+q into dst and returns it. dst must have len(p)
// elements; it may alias p or q. Used by hot loops to avoid allocation.
// Complexity: O(d).
func (p Position) AddInto(dst, q Position) Position {
	mustSameDim("Add", p, q)
	mustSameDim("Add", p, dst)
	for i := range p {
		dst[i] = p[i] + q[i]
	}

	return dst
}

// Sub returns p-q coordinatewise.
// Panics with ErrDimensionMismatch if len(p) != len(q).
// Complexity: O(d).
func (p Position) Sub(q Position) Position {
	mustSameDim("Sub", p, q)
	out := make(Position, len(p))
	for i := range p {
		out[i] = p[i] - q[i]
	}

	return out
}

// Equal reports whether p and q have the same dimensionality and coordinates.
func (p Position) Equal(q Position) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}

	return true
}

// Clone returns an independent copy of p.
func (p Position) Clone() Position {
	out := make(Position, len(p))
	copy(out, p)

	return out
}

// String formats p as "(x0,x1,...)".
func (p Position) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, c := range p {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(c))
	}
	sb.WriteByte(')')

	return sb.String()
}

// mustSameDim panics when two positions disagree on dimensionality.
func mustSameDim(op string, p, q Position) {
	if len(p) != len(q) {
		panic(fmt.Errorf("Position.%s: %d vs %d dimensions: %w", op, len(p), len(q), ErrDimensionMismatch))
	}
}
