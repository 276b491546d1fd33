// SPDX-License-Identifier: MIT

package ndarray

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// ConvertTo returns a copy of t with its elements converted to kind k,
// following Convert's wrap rules. t is returned as-is when it already has
// kind k. Returns ErrUnknownKind for an invalid k or an unsupported t.
func ConvertTo(t Tensor, k Kind) (Tensor, error) {
	if t != nil && t.Kind() == k {
		return t, nil
	}
	switch k {
	case Int8:
		return convertFrom[int8](t)
	case Int16:
		return convertFrom[int16](t)
	case Int32:
		return convertFrom[int32](t)
	case Int64:
		return convertFrom[int64](t)
	case Uint8:
		return convertFrom[uint8](t)
	case Uint16:
		return convertFrom[uint16](t)
	case Uint32:
		return convertFrom[uint32](t)
	case Uint64:
		return convertFrom[uint64](t)
	default:
		return nil, fmt.Errorf("convert to %s: %w", k, ErrUnknownKind)
	}
}

func convertFrom[T constraints.Integer](t Tensor) (Tensor, error) {
	switch a := t.(type) {
	case *Array[int8]:
		return Convert[T](a), nil
	case *Array[int16]:
		return Convert[T](a), nil
	case *Array[int32]:
		return Convert[T](a), nil
	case *Array[int64]:
		return Convert[T](a), nil
	case *Array[uint8]:
		return Convert[T](a), nil
	case *Array[uint16]:
		return Convert[T](a), nil
	case *Array[uint32]:
		return Convert[T](a), nil
	case *Array[uint64]:
		return Convert[T](a), nil
	default:
		return nil, fmt.Errorf("convert %T: %w", t, ErrUnknownKind)
	}
}
