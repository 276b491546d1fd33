// SPDX-License-Identifier: MIT

package ndarray

import (
	"fmt"
	"strings"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Kind is the runtime element-type tag of an Array. The set is closed:
// signed and unsigned integers of 8, 16, 32 and 64 bits.
type Kind int

const (
	// Invalid is the zero Kind; no Array reports it.
	Invalid Kind = iota
	Int8
	Int16
	Int32
	Int64
	Uint8
	Uint16
	Uint32
	Uint64
)

var kindNames = [...]string{
	Invalid: "invalid",
	Int8:    "int8",
	Int16:   "int16",
	Int32:   "int32",
	Int64:   "int64",
	Uint8:   "uint8",
	Uint16:  "uint16",
	Uint32:  "uint32",
	Uint64:  "uint64",
}

// String returns the Go-style type name of k ("uint8", "int32", ...).
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return kindNames[k]
}

// Valid reports whether k is one of the eight supported kinds.
func (k Kind) Valid() bool { return k > Invalid && k <= Uint64 }

// Signed reports whether k is a signed integer kind.
func (k Kind) Signed() bool { return k >= Int8 && k <= Int64 }

// Bits returns the element width in bits, or 0 for an invalid kind.
func (k Kind) Bits() int {
	switch k {
	case Int8, Uint8:
		return 8
	case Int16, Uint16:
		return 16
	case Int32, Uint32:
		return 32
	case Int64, Uint64:
		return 64
	default:
		return 0
	}
}

// ParseKind maps a kind name (case-insensitive) back to its Kind.
// Returns a wrapped ErrUnknownKind for any other name.
func ParseKind(name string) (Kind, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for k := Int8; k <= Uint64; k++ {
		if kindNames[k] == n {
			return k, nil
		}
	}

	return Invalid, fmt.Errorf("%q: %w", name, ErrUnknownKind)
}

// KindOf returns the Kind for element type T. Platform-sized types
// (int, uint, uintptr) map to the fixed-width kind of their size.
func KindOf[T constraints.Integer]() Kind {
	var zero T
	signed := ^zero < zero
	switch unsafe.Sizeof(zero) {
	case 1:
		if signed {
			return Int8
		}
		return Uint8
	case 2:
		if signed {
			return Int16
		}
		return Uint16
	case 4:
		if signed {
			return Int32
		}
		return Uint32
	default:
		if signed {
			return Int64
		}
		return Uint64
	}
}

// MaxValue returns the largest value representable by T.
func MaxValue[T constraints.Integer]() T {
	var zero T
	ones := ^zero
	if ones > zero {
		return ones // unsigned: all bits set
	}
	bits := unsafe.Sizeof(zero) * 8

	return T(uint64(1)<<(bits-1) - 1)
}

// MinValue returns the smallest value representable by T.
func MinValue[T constraints.Integer]() T {
	var zero T
	if ^zero > zero {
		return zero
	}

	return ^MaxValue[T]()
}
