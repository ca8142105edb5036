// SPDX-License-Identifier: MIT

package convert

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/katalvlaran/igraphgo/status"
)

// Bool reports the truthiness of v.
func Bool(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case float64:
		return x != 0
	case float32:
		return x != 0
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Slice, reflect.Map, reflect.Array, reflect.Chan:
		return rv.Len() != 0
	case reflect.Pointer, reflect.Interface, reflect.Func:
		return !rv.IsNil()
	}
	return true
}

// Index converts v to a native vertex or edge index.
// Negative, fractional and non-numeric values fail with status.ErrIllegalArgument.
func Index(v any) (int64, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if n := rv.Int(); n >= 0 {
			return n, nil
		}
		return 0, fmt.Errorf("%w: index %d is negative", status.ErrIllegalArgument, rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if n := rv.Uint(); n <= math.MaxInt64 {
			return int64(n), nil
		}
		return 0, fmt.Errorf("%w: index %d overflows a native integer", status.ErrIllegalArgument, rv.Uint())
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if f >= 0 && f == math.Trunc(f) && f < 0x1p63 {
			return int64(f), nil
		}
		return 0, fmt.Errorf("%w: %v is not a non-negative integer", status.ErrIllegalArgument, f)
	}
	return 0, fmt.Errorf("%w: %T cannot be used as an index", status.ErrIllegalArgument, v)
}

// Real converts v to a native real. Values without a numeric reading become NaN.
func Real(v any) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case bool:
		if x {
			return 1
		}
		return 0
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return math.NaN()
		}
		return f
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	case reflect.Bool:
		if rv.Bool() {
			return 1
		}
		return 0
	case reflect.String:
		return Real(rv.String())
	}
	return math.NaN()
}

// Bytes renders v as a UTF-8 byte string. Invalid UTF-8 in strings and byte
// slices is replaced by U+FFFD; other values use their fmt representation.
func Bytes(v any) []byte {
	var s string
	switch x := v.(type) {
	case nil:
		return []byte{}
	case string:
		s = x
	case []byte:
		s = string(x)
	case fmt.Stringer:
		s = x.String()
	default:
		s = fmt.Sprint(x)
	}
	return []byte(strings.ToValidUTF8(s, "�"))
}

// IsNumeric reports whether v is a Go integer or floating-point value.
func IsNumeric(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
