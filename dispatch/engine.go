// SPDX-License-Identifier: MIT

package dispatch

import (
	"fmt"
	"time"

	"github.com/go-logr/logr"
	"github.com/katalvlaran/ndmorph/label"
	"github.com/katalvlaran/ndmorph/morph"
	"github.com/katalvlaran/ndmorph/ndarray"
	"github.com/katalvlaran/ndmorph/watershed"
	"golang.org/x/exp/constraints"
)

// Op identifies an operation for dispatch and logging.
type Op int

const (
	OpErode Op = iota
	OpDilate
	OpWatershed
	OpLabel
)

// String returns the lower-case operation name.
func (o Op) String() string {
	switch o {
	case OpErode:
		return "erode"
	case OpDilate:
		return "dilate"
	case OpWatershed:
		return "watershed"
	case OpLabel:
		return "label"
	default:
		return fmt.Sprintf("Op(%d)", int(o))
	}
}

// ParseOp maps an operation name back to its Op.
func ParseOp(name string) (Op, error) {
	for o := OpErode; o <= OpLabel; o++ {
		if o.String() == name {
			return o, nil
		}
	}
	if name == "cwatershed" {
		return OpWatershed, nil
	}

	return 0, fmt.Errorf("dispatch: unknown operation %q", name)
}

// Engine runs validated, type-erased operations.
type Engine struct {
	log logr.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the Engine's logger. Watershed calls inherit it.
func WithLogger(log logr.Logger) Option {
	return func(e *Engine) {
		e.log = log
	}
}

// New returns an Engine with a discarding logger unless overridden.
func New(opts ...Option) *Engine {
	e := &Engine{log: logr.Discard()}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

var std = New()

// Erode validates its operands and erodes array by bc.
func Erode(array, bc ndarray.Tensor) (ndarray.Tensor, error) { return std.Erode(array, bc) }

// Dilate validates its operands and dilates array by bc.
func Dilate(array, bc ndarray.Tensor) (ndarray.Tensor, error) { return std.Dilate(array, bc) }

// CWatershed validates its operands and floods array from markers through bc.
func CWatershed(array, markers, bc ndarray.Tensor, opts ...watershed.Option) (ndarray.Tensor, error) {
	return std.CWatershed(array, markers, bc, opts...)
}

// Label validates its operands and labels the components of array under bc.
func Label(array, bc ndarray.Tensor) (ndarray.Tensor, int, error) { return std.Label(array, bc) }

// Erode validates its operands and erodes array by bc.
func (e *Engine) Erode(array, bc ndarray.Tensor) (ndarray.Tensor, error) {
	res, _, err := e.run(OpErode, call{array: array, bc: bc})

	return res, err
}

// Dilate validates its operands and dilates array by bc.
func (e *Engine) Dilate(array, bc ndarray.Tensor) (ndarray.Tensor, error) {
	res, _, err := e.run(OpDilate, call{array: array, bc: bc})

	return res, err
}

// CWatershed validates its operands and floods array from markers through bc.
// The Engine's logger is applied before opts, so opts may override it.
func (e *Engine) CWatershed(array, markers, bc ndarray.Tensor, opts ...watershed.Option) (ndarray.Tensor, error) {
	wopts := append([]watershed.Option{watershed.WithLogger(e.log.WithName("watershed"))}, opts...)
	res, _, err := e.run(OpWatershed, call{array: array, markers: markers, bc: bc, wopts: wopts})

	return res, err
}

// Label validates its operands and labels the components of array under bc.
func (e *Engine) Label(array, bc ndarray.Tensor) (ndarray.Tensor, int, error) {
	return e.run(OpLabel, call{array: array, bc: bc})
}

// call bundles the operands of one operation.
type call struct {
	array   ndarray.Tensor
	markers ndarray.Tensor
	bc      ndarray.Tensor
	wopts   []watershed.Option
}

// run validates c, dispatches on the array's concrete type and logs the
// outcome at V(1). Errors are returned, not logged at error level.
func (e *Engine) run(op Op, c call) (ndarray.Tensor, int, error) {
	var markers *operand
	if op == OpWatershed {
		markers = &operand{name: "markers", t: c.markers}
	}
	if err := validate(operand{name: "array", t: c.array}, []operand{{name: "Bc", t: c.bc}}, markers); err != nil {
		err = fmt.Errorf("dispatch: %s: %w", op, err)
		e.log.V(1).Info("invalid operands", "op", op.String(), "error", err.Error())

		return nil, 0, err
	}

	start := time.Now()
	var (
		res ndarray.Tensor
		n   int
		err error
	)
	switch a := c.array.(type) {
	case *ndarray.Array[int8]:
		res, n, err = apply(op, a, c)
	case *ndarray.Array[int16]:
		res, n, err = apply(op, a, c)
	case *ndarray.Array[int32]:
		res, n, err = apply(op, a, c)
	case *ndarray.Array[int64]:
		res, n, err = apply(op, a, c)
	case *ndarray.Array[uint8]:
		res, n, err = apply(op, a, c)
	case *ndarray.Array[uint16]:
		res, n, err = apply(op, a, c)
	case *ndarray.Array[uint32]:
		res, n, err = apply(op, a, c)
	case *ndarray.Array[uint64]:
		res, n, err = apply(op, a, c)
	}
	if err != nil {
		err = fmt.Errorf("dispatch: %s: %w", op, err)
		e.log.V(1).Info("operation failed", "op", op.String(), "error", err.Error())

		return nil, 0, err
	}
	e.log.V(1).Info("operation complete",
		"op", op.String(),
		"kind", c.array.Kind().String(),
		"shape", []int(c.array.Shape()),
		"elapsed", time.Since(start),
	)

	return res, n, nil
}

// apply runs op on the instantiation for T. Operands were validated to
// share T, so the type assertions cannot fail.
func apply[T constraints.Integer](op Op, array *ndarray.Array[T], c call) (ndarray.Tensor, int, error) {
	bc := c.bc.(*ndarray.Array[T])
	var (
		res *ndarray.Array[T]
		n   int
		err error
	)
	switch op {
	case OpErode:
		res, err = morph.Erode(array, bc)
	case OpDilate:
		res, err = morph.Dilate(array, bc)
	case OpWatershed:
		res, err = watershed.CWatershed(array, c.markers.(*ndarray.Array[T]), bc, c.wopts...)
	case OpLabel:
		res, n, err = label.Label(array, bc)
	default:
		return nil, 0, fmt.Errorf("unknown operation %s", op)
	}
	if err != nil {
		return nil, 0, err
	}

	return res, n, nil
}
