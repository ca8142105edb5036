// SPDX-License-Identifier: MIT

package convert

import (
	"fmt"
	"math"
	"reflect"

	"github.com/katalvlaran/igraphgo/status"
)

// IsSequence reports whether v is a Go slice or array. Strings are atoms.
func IsSequence(v any) bool {
	if v == nil {
		return false
	}
	k := reflect.ValueOf(v).Kind()
	return k == reflect.Slice || k == reflect.Array
}

// Elements returns the elements of a slice or array as []any.
// The second result is false when v is not a sequence.
func Elements(v any) ([]any, bool) {
	switch x := v.(type) {
	case []any:
		return x, true
	case nil:
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

func notSequence(v any) error {
	return fmt.Errorf("%w: %T is not a sequence", status.ErrConversion, v)
}

// Ints coerces a sequence of integers (or integral floats) to []int64.
func Ints(v any) ([]int64, error) {
	switch x := v.(type) {
	case []int64:
		return append([]int64(nil), x...), nil
	case []int:
		out := make([]int64, len(x))
		for i, n := range x {
			out[i] = int64(n)
		}
		return out, nil
	case []int32:
		out := make([]int64, len(x))
		for i, n := range x {
			out[i] = int64(n)
		}
		return out, nil
	}
	elems, ok := Elements(v)
	if !ok {
		return nil, notSequence(v)
	}
	out := make([]int64, len(elems))
	for i, e := range elems {
		n, err := integer(e)
		if err != nil {
			return nil, fmt.Errorf("%w: element %d: %v", status.ErrConversion, i, err)
		}
		out[i] = n
	}
	return out, nil
}

// Indices coerces a sequence to non-negative native indices. A negative
// element fails with status.ErrIllegalArgument.
func Indices(v any) ([]int64, error) {
	ids, err := Ints(v)
	if err != nil {
		return nil, err
	}
	for i, id := range ids {
		if id < 0 {
			return nil, fmt.Errorf("%w: element %d: index %d is negative", status.ErrIllegalArgument, i, id)
		}
	}
	return ids, nil
}

func integer(e any) (int64, error) {
	rv := reflect.ValueOf(e)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if rv.Uint() > math.MaxInt64 {
			return 0, fmt.Errorf("%d overflows int64", rv.Uint())
		}
		return int64(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if f != math.Trunc(f) || math.IsInf(f, 0) || math.IsNaN(f) {
			return 0, fmt.Errorf("%v is not integral", f)
		}
		if f < -0x1p63 || f >= 0x1p63 {
			return 0, fmt.Errorf("%v overflows int64", f)
		}
		return int64(f), nil
	}
	return 0, fmt.Errorf("%T is not an integer", e)
}

// Reals coerces a sequence of numbers or booleans to []float64.
func Reals(v any) ([]float64, error) {
	switch x := v.(type) {
	case []float64:
		return append([]float64(nil), x...), nil
	case []int:
		out := make([]float64, len(x))
		for i, n := range x {
			out[i] = float64(n)
		}
		return out, nil
	}
	elems, ok := Elements(v)
	if !ok {
		return nil, notSequence(v)
	}
	out := make([]float64, len(elems))
	for i, e := range elems {
		if _, isBool := e.(bool); !isBool && !IsNumeric(e) {
			return nil, fmt.Errorf("%w: element %d: %T is not numeric", status.ErrConversion, i, e)
		}
		out[i] = Real(e)
	}
	return out, nil
}

// Bools coerces any sequence to []bool by truthiness.
func Bools(v any) ([]bool, error) {
	if x, ok := v.([]bool); ok {
		return append([]bool(nil), x...), nil
	}
	elems, ok := Elements(v)
	if !ok {
		return nil, notSequence(v)
	}
	out := make([]bool, len(elems))
	for i, e := range elems {
		out[i] = Bool(e)
	}
	return out, nil
}

// Strings coerces a sequence of strings, byte slices or fmt.Stringers.
func Strings(v any) ([]string, error) {
	if x, ok := v.([]string); ok {
		return append([]string(nil), x...), nil
	}
	elems, ok := Elements(v)
	if !ok {
		return nil, notSequence(v)
	}
	out := make([]string, len(elems))
	for i, e := range elems {
		switch s := e.(type) {
		case string, []byte, fmt.Stringer:
			out[i] = string(Bytes(s))
		default:
			return nil, fmt.Errorf("%w: element %d: %T is not a string", status.ErrConversion, i, e)
		}
	}
	return out, nil
}
