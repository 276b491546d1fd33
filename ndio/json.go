// SPDX-License-Identifier: MIT

package ndio

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/ndmorph/ndarray"
	"golang.org/x/exp/constraints"
)

// document is the JSON wire form of an array.
type document struct {
	Kind  string        `json:"kind"`
	Shape []int         `json:"shape"`
	Data  []json.Number `json:"data"`
}

// EncodeJSON writes t as a single JSON document followed by a newline.
func EncodeJSON(w io.Writer, t ndarray.Tensor) error {
	doc, err := toDocument(t)
	if err != nil {
		return err
	}

	return json.NewEncoder(w).Encode(doc)
}

// toDocument builds the wire form of t.
func toDocument(t ndarray.Tensor) (document, error) {
	nums, err := numbers(t)
	if err != nil {
		return document{}, err
	}

	return document{
		Kind:  t.Kind().String(),
		Shape: []int(t.Shape()),
		Data:  nums,
	}, nil
}

// DecodeJSON reads one JSON document from r and builds the array it describes.
// Unknown fields are rejected.
func DecodeJSON(r io.Reader) (ndarray.Tensor, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	dec.DisallowUnknownFields()
	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	kind, err := ndarray.ParseKind(doc.Kind)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	shape := ndarray.Shape(doc.Shape)

	switch kind {
	case ndarray.Int8:
		return fromNumbers[int8](shape, doc.Data)
	case ndarray.Int16:
		return fromNumbers[int16](shape, doc.Data)
	case ndarray.Int32:
		return fromNumbers[int32](shape, doc.Data)
	case ndarray.Int64:
		return fromNumbers[int64](shape, doc.Data)
	case ndarray.Uint8:
		return fromNumbers[uint8](shape, doc.Data)
	case ndarray.Uint16:
		return fromNumbers[uint16](shape, doc.Data)
	case ndarray.Uint32:
		return fromNumbers[uint32](shape, doc.Data)
	default:
		return fromNumbers[uint64](shape, doc.Data)
	}
}

// fromNumbers parses every number exactly into T and builds the array.
func fromNumbers[T constraints.Integer](shape ndarray.Shape, nums []json.Number) (ndarray.Tensor, error) {
	kind := ndarray.KindOf[T]()
	data := make([]T, len(nums))
	for i, n := range nums {
		if kind.Signed() {
			v, err := strconv.ParseInt(n.String(), 10, kind.Bits())
			if err != nil {
				return nil, fmt.Errorf("data[%d]=%s as %s: %w", i, n, kind, ErrValueRange)
			}
			data[i] = T(v)
			continue
		}
		v, err := strconv.ParseUint(n.String(), 10, kind.Bits())
		if err != nil {
			return nil, fmt.Errorf("data[%d]=%s as %s: %w", i, n, kind, ErrValueRange)
		}
		data[i] = T(v)
	}
	a, err := ndarray.FromSlice(shape, data)
	if err != nil {
		return nil, err
	}

	return a, nil
}

// numbers renders the elements of t as exact JSON numbers.
func numbers(t ndarray.Tensor) ([]json.Number, error) {
	switch a := t.(type) {
	case *ndarray.Array[int8]:
		return signedNumbers(a), nil
	case *ndarray.Array[int16]:
		return signedNumbers(a), nil
	case *ndarray.Array[int32]:
		return signedNumbers(a), nil
	case *ndarray.Array[int64]:
		return signedNumbers(a), nil
	case *ndarray.Array[uint8]:
		return unsignedNumbers(a), nil
	case *ndarray.Array[uint16]:
		return unsignedNumbers(a), nil
	case *ndarray.Array[uint32]:
		return unsignedNumbers(a), nil
	case *ndarray.Array[uint64]:
		return unsignedNumbers(a), nil
	default:
		return nil, fmt.Errorf("%T: %w", t, ErrUnsupportedFormat)
	}
}

func signedNumbers[T constraints.Signed](a *ndarray.Array[T]) []json.Number {
	out := make([]json.Number, a.Len())
	for i := range out {
		out[i] = json.Number(strconv.FormatInt(int64(a.AtIndex(i)), 10))
	}

	return out
}

func unsignedNumbers[T constraints.Unsigned](a *ndarray.Array[T]) []json.Number {
	out := make([]json.Number, a.Len())
	for i := range out {
		out[i] = json.Number(strconv.FormatUint(uint64(a.AtIndex(i)), 10))
	}

	return out
}
