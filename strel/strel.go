// SPDX-License-Identifier: MIT

package strel

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/ndmorph/ndarray"
	"golang.org/x/exp/constraints"
)

// ErrBadDimension indicates a requested element dimensionality below 1.
var ErrBadDimension = errors.New("strel: dimension must be >= 1")

// Connectivity selects which cells of a 3^n element are active.
type Connectivity int

const (
	// ConnFace activates the center and its 2n face neighbours
	// (Conn4 in 2-D, 6-connectivity in 3-D).
	ConnFace Connectivity = iota
	// ConnFull activates all 3^n cells
	// (Conn8 in 2-D, 26-connectivity in 3-D).
	ConnFull
)

// String returns "cross" or "box".
func (c Connectivity) String() string {
	switch c {
	case ConnFace:
		return "cross"
	case ConnFull:
		return "box"
	default:
		return fmt.Sprintf("Connectivity(%d)", int(c))
	}
}

// ParseConnectivity maps "cross"/"face" and "box"/"full" to a Connectivity.
func ParseConnectivity(name string) (Connectivity, error) {
	switch name {
	case "cross", "face":
		return ConnFace, nil
	case "box", "full":
		return ConnFull, nil
	default:
		return 0, fmt.Errorf("strel: unknown connectivity %q", name)
	}
}

// Offset is one active cell of a structuring element, relative to its center.
type Offset[T constraints.Integer] struct {
	Delta  ndarray.Position // cell position minus center
	Weight T                // cell value; nonzero by construction
}

// Center returns the center of bc: extent_d/2 for each dimension d.
// Complexity: O(d).
func Center(bc ndarray.Tensor) ndarray.Position {
	shape := bc.Shape()
	center := make(ndarray.Position, len(shape))
	for d, ext := range shape {
		center[d] = ext / 2
	}

	return center
}

// Offsets returns the active cells of bc in row-major order, each reduced
// to cell-center. Cells with value zero are skipped.
// Complexity: O(|bc|·d).
func Offsets[T constraints.Integer](bc *ndarray.Array[T]) []Offset[T] {
	center := Center(bc)
	offsets := make([]Offset[T], 0, bc.Len())
	bc.Each(func(_ int, pos ndarray.Position, v T) {
		if v == 0 {
			return
		}
		offsets = append(offsets, Offset[T]{Delta: pos.Sub(center), Weight: v})
	})

	return offsets
}

// Deltas returns only the Delta of each active offset of bc.
func Deltas[T constraints.Integer](bc *ndarray.Array[T]) []ndarray.Position {
	offsets := Offsets(bc)
	out := make([]ndarray.Position, len(offsets))
	for i, o := range offsets {
		out[i] = o.Delta
	}

	return out
}

// Cross returns a 3^ndim element with the center and its face neighbours set to 1.
// Returns ErrBadDimension if ndim < 1.
func Cross[T constraints.Integer](ndim int) (*ndarray.Array[T], error) {
	return FromConnectivity[T](ndim, ConnFace)
}

// Box returns a 3^ndim element with every cell set to 1.
// Returns ErrBadDimension if ndim < 1.
func Box[T constraints.Integer](ndim int) (*ndarray.Array[T], error) {
	return FromConnectivity[T](ndim, ConnFull)
}

// FromConnectivity builds a 3^ndim element for conn.
// A cell is active under ConnFace when at most one coordinate differs
// from the center, and always under ConnFull.
// Complexity: O(3^ndim · ndim).
func FromConnectivity[T constraints.Integer](ndim int, conn Connectivity) (*ndarray.Array[T], error) {
	if ndim < 1 {
		return nil, fmt.Errorf("ndim=%d: %w", ndim, ErrBadDimension)
	}
	shape := make(ndarray.Shape, ndim)
	for d := range shape {
		shape[d] = 3
	}
	bc, err := ndarray.New[T](shape)
	if err != nil {
		return nil, err
	}
	bc.Each(func(i int, pos ndarray.Position, _ T) {
		if conn == ConnFull {
			bc.SetIndex(i, 1)
			return
		}
		off := 0
		for _, c := range pos {
			if c != 1 {
				off++
			}
		}
		if off <= 1 {
			bc.SetIndex(i, 1)
		}
	})

	return bc, nil
}

// ForKind builds the 3^ndim element for conn with element kind k, for
// callers that only know the kind at run time.
// Returns ErrBadDimension if ndim < 1 or ndarray.ErrUnknownKind for an
// invalid k.
func ForKind(k ndarray.Kind, ndim int, conn Connectivity) (ndarray.Tensor, error) {
	switch k {
	case ndarray.Int8:
		return tensor(FromConnectivity[int8](ndim, conn))
	case ndarray.Int16:
		return tensor(FromConnectivity[int16](ndim, conn))
	case ndarray.Int32:
		return tensor(FromConnectivity[int32](ndim, conn))
	case ndarray.Int64:
		return tensor(FromConnectivity[int64](ndim, conn))
	case ndarray.Uint8:
		return tensor(FromConnectivity[uint8](ndim, conn))
	case ndarray.Uint16:
		return tensor(FromConnectivity[uint16](ndim, conn))
	case ndarray.Uint32:
		return tensor(FromConnectivity[uint32](ndim, conn))
	case ndarray.Uint64:
		return tensor(FromConnectivity[uint64](ndim, conn))
	default:
		return nil, fmt.Errorf("strel for %s: %w", k, ndarray.ErrUnknownKind)
	}
}

// tensor erases a as an ndarray.Tensor, keeping a nil interface on error.
func tensor[T constraints.Integer](a *ndarray.Array[T], err error) (ndarray.Tensor, error) {
	if err != nil {
		return nil, err
	}

	return a, nil
}
