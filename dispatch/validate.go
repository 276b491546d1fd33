// SPDX-License-Identifier: MIT

package dispatch

import (
	"fmt"

	"github.com/katalvlaran/ndmorph/ndarray"
	"go.uber.org/multierr"
	"golang.org/x/exp/constraints"
)

// operand names a positional argument for error messages.
type operand struct {
	name string
	t    ndarray.Tensor
}

// supported reports whether t is one of the eight concrete Array types and
// not a nil pointer.
func supported(t ndarray.Tensor) (ok, isNil bool) {
	switch a := t.(type) {
	case *ndarray.Array[int8]:
		return true, a == nil
	case *ndarray.Array[int16]:
		return true, a == nil
	case *ndarray.Array[int32]:
		return true, a == nil
	case *ndarray.Array[int64]:
		return true, a == nil
	case *ndarray.Array[uint8]:
		return true, a == nil
	case *ndarray.Array[uint16]:
		return true, a == nil
	case *ndarray.Array[uint32]:
		return true, a == nil
	case *ndarray.Array[uint64]:
		return true, a == nil
	default:
		return false, t == nil
	}
}

// negativeAt returns the first linear index holding a negative value, or -1.
// Unsigned kinds always return -1.
func negativeAt(t ndarray.Tensor) int {
	switch a := t.(type) {
	case *ndarray.Array[int8]:
		return firstNegative(a)
	case *ndarray.Array[int16]:
		return firstNegative(a)
	case *ndarray.Array[int32]:
		return firstNegative(a)
	case *ndarray.Array[int64]:
		return firstNegative(a)
	default:
		return -1
	}
}

func firstNegative[T constraints.Signed](a *ndarray.Array[T]) int {
	for i := 0; i < a.Len(); i++ {
		if a.AtIndex(i) < 0 {
			return i
		}
	}

	return -1
}

// validate checks array against every other operand and returns all
// violations combined, or nil.
// Stage 1: nil and kind support per operand.
// Stage 2: kind and dimensionality agreement with array.
// Stage 3: marker shape and sign.
func validate(array operand, others []operand, markers *operand) error {
	var err error
	all := append([]operand{array}, others...)
	if markers != nil {
		all = append(all, *markers)
	}

	usable := true
	for _, o := range all {
		ok, isNil := supported(o.t)
		switch {
		case isNil:
			err = multierr.Append(err, fmt.Errorf("%s: %w", o.name, ErrNilTensor))
			usable = false
		case !ok:
			err = multierr.Append(err, fmt.Errorf("%s: %T: %w", o.name, o.t, ErrUnsupportedKind))
			usable = false
		}
	}
	if !usable {
		return err
	}

	rest := others
	if markers != nil {
		rest = append(append([]operand(nil), others...), *markers)
	}
	for _, o := range rest {
		if o.t.Kind() != array.t.Kind() {
			err = multierr.Append(err, fmt.Errorf("%s is %s, %s is %s: %w",
				o.name, o.t.Kind(), array.name, array.t.Kind(), ErrKindMismatch))
		}
		if o.t.NDim() != array.t.NDim() {
			err = multierr.Append(err, fmt.Errorf("%s has %d dimensions, %s has %d: %w",
				o.name, o.t.NDim(), array.name, array.t.NDim(), ErrDimensionMismatch))
		}
	}

	if markers != nil {
		if !markers.t.Shape().Equal(array.t.Shape()) {
			err = multierr.Append(err, fmt.Errorf("%s shape %v, %s shape %v: %w",
				markers.name, []int(markers.t.Shape()), array.name, []int(array.t.Shape()), ErrShapeMismatch))
		}
		if i := negativeAt(markers.t); i >= 0 {
			err = multierr.Append(err, fmt.Errorf("%s at index %d: %w", markers.name, i, ErrNegativeMarker))
		}
	}

	return err
}
