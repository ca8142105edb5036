// SPDX-License-Identifier: MIT

package attr

import (
	"fmt"
	"math/bits"
	"reflect"
	"strings"

	"github.com/katalvlaran/igraphgo/convert"
)

// ValueList is a typed, contiguous sequence of attribute values.
//
// Exactly one backing buffer is active, chosen by the type tag:
// nums for Numeric, bools for Boolean, objs for String, Object and
// Unspecified. The active buffer's len is the capacity; positions
// [0, length) are live.
type ValueList struct {
	typ    Type
	nums   []float64
	bools  []bool
	objs   []any
	length int
	fixed  bool
}

// NewValueList builds a variable-length list from a sequence of values.
// With typ == Unspecified the tag is inferred from the first element and
// widened as further elements are stored.
func NewValueList(values any, typ Type) (*ValueList, error) {
	l := &ValueList{typ: typ}
	if values == nil {
		return l, nil
	}
	switch x := values.(type) {
	case []float64:
		if typ == Unspecified || typ == Numeric {
			l.typ = Numeric
			l.nums = append([]float64(nil), x...)
			l.length = len(x)
			return l, nil
		}
	case []bool:
		if typ == Unspecified || typ == Boolean {
			l.typ = Boolean
			l.bools = append([]bool(nil), x...)
			l.length = len(x)
			return l, nil
		}
	case *ValueList:
		c := x.clone()
		c.fixed = false
		if typ != Unspecified && typ != c.typ {
			c.retype(widen(c.typ, typ))
		}
		return c, nil
	}
	elems, ok := convert.Elements(values)
	if !ok {
		return nil, fmt.Errorf("%w: %T is not a sequence", ErrWrongType, values)
	}
	if l.typ == Unspecified && len(elems) > 0 {
		l.typ = TypeOf(elems[0])
	}
	l.grow(len(elems))
	for i, v := range elems {
		l.store(i, v)
	}
	return l, nil
}

// Filled returns a variable-length list of n copies of v.
func Filled(n int, v any) *ValueList {
	l := &ValueList{typ: TypeOf(v)}
	l.grow(n)
	for i := 0; i < n; i++ {
		l.store(i, v)
	}
	return l
}

// Len returns the logical length.
func (l *ValueList) Len() int { return l.length }

// Type returns the type tag.
func (l *ValueList) Type() Type { return l.typ }

// Fixed reports whether the length is immutable through user-facing operations.
func (l *ValueList) Fixed() bool { return l.fixed }

// Cap returns the capacity of the backing buffer.
func (l *ValueList) Cap() int {
	switch l.typ {
	case Numeric:
		return len(l.nums)
	case Boolean:
		return len(l.bools)
	}
	return len(l.objs)
}

// Value returns the value at position i.
func (l *ValueList) Value(i int) (any, error) {
	if i < 0 || i >= l.length {
		return nil, fmt.Errorf("position %d of %d: %w", i, l.length, ErrIndexOutOfRange)
	}
	return l.at(i), nil
}

// Values returns a copy of all live values.
func (l *ValueList) Values() []any {
	out := make([]any, l.length)
	for i := range out {
		out[i] = l.at(i)
	}
	return out
}

// Floats returns the live values as float64. Boolean lists convert to 0/1.
// The second result is false for String and Object lists.
func (l *ValueList) Floats() ([]float64, bool) {
	switch l.typ {
	case Numeric:
		return append([]float64(nil), l.nums[:l.length]...), true
	case Boolean:
		out := make([]float64, l.length)
		for i, b := range l.bools[:l.length] {
			if b {
				out[i] = 1
			}
		}
		return out, true
	case Unspecified:
		if l.length == 0 {
			return []float64{}, true
		}
	}
	return nil, false
}

// Bools returns the live values as bool. Numeric lists convert by truthiness.
// The second result is false for String and Object lists.
func (l *ValueList) Bools() ([]bool, bool) {
	switch l.typ {
	case Boolean:
		return append([]bool(nil), l.bools[:l.length]...), true
	case Numeric:
		out := make([]bool, l.length)
		for i, f := range l.nums[:l.length] {
			out[i] = f != 0
		}
		return out, true
	case Unspecified:
		if l.length == 0 {
			return []bool{}, true
		}
	}
	return nil, false
}

// Strings returns the live values of a String list.
// The second result is false for other types.
func (l *ValueList) Strings() ([]string, bool) {
	if l.typ != String && !(l.typ == Unspecified && l.length == 0) {
		return nil, false
	}
	out := make([]string, l.length)
	for i := range out {
		out[i], _ = l.objs[i].(string)
	}
	return out, true
}

// Clone returns a variable-length copy.
func (l *ValueList) Clone() *ValueList {
	c := l.clone()
	c.fixed = false
	return c
}

func (l *ValueList) clone() *ValueList {
	c := &ValueList{typ: l.typ, length: l.length, fixed: l.fixed}
	switch l.typ {
	case Numeric:
		c.nums = append([]float64(nil), l.nums[:l.length]...)
	case Boolean:
		c.bools = append([]bool(nil), l.bools[:l.length]...)
	default:
		c.objs = append([]any(nil), l.objs[:l.length]...)
	}
	return c
}

// Equal reports whether both lists hold equal values in the same order.
// Type tags are not compared, so a Numeric 1.0 equals a Numeric built from int 1.
func (l *ValueList) Equal(o *ValueList) bool {
	if l.length != o.length {
		return false
	}
	for i := 0; i < l.length; i++ {
		if !reflect.DeepEqual(l.at(i), o.at(i)) {
			return false
		}
	}
	return true
}

func (l *ValueList) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < l.length; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%#v", l.at(i))
	}
	b.WriteByte(']')
	return b.String()
}

func (l *ValueList) at(i int) any {
	switch l.typ {
	case Numeric:
		return l.nums[i]
	case Boolean:
		return l.bools[i]
	}
	return l.objs[i]
}

// store writes v at position i (i < length), widening the tag when needed.
func (l *ValueList) store(i int, v any) {
	t := TypeOf(v)
	next := widen(l.typ, t)
	if next != l.typ {
		l.retype(next)
	}
	switch l.typ {
	case Numeric:
		l.nums[i] = convert.Real(v)
	case Boolean:
		l.bools[i] = reflect.ValueOf(v).Bool()
	case String:
		if s, ok := v.(string); ok {
			l.objs[i] = s
		} else {
			l.objs[i] = reflect.ValueOf(v).String()
		}
	default:
		l.objs[i] = v
	}
}

// retype converts the backing buffer to the tag next. Only widening
// conversions are performed.
func (l *ValueList) retype(next Type) {
	if next == l.typ {
		return
	}
	capacity := l.Cap()
	switch {
	case next == Numeric && l.typ == Boolean:
		nums := make([]float64, capacity)
		for i := 0; i < l.length; i++ {
			if l.bools[i] {
				nums[i] = 1
			}
		}
		l.nums, l.bools = nums, nil
	case next == Numeric && l.typ == Unspecified:
		l.nums, l.objs = make([]float64, capacity), nil
	case next == Boolean && l.typ == Unspecified:
		l.bools, l.objs = make([]bool, capacity), nil
	case next == String && l.typ == Unspecified:
		objs := make([]any, capacity)
		for i := range objs {
			objs[i] = ""
		}
		l.objs = objs
	case next == Object && (l.typ == String || l.typ == Unspecified):
		// objs already holds the values
	case next == Object:
		objs := make([]any, capacity)
		for i := 0; i < l.length; i++ {
			objs[i] = l.at(i)
		}
		l.objs, l.nums, l.bools = objs, nil, nil
	}
	l.typ = next
}

// grow extends the list by k positions filled with the type default.
// The backing buffer doubles to the next power of two when it is too small.
func (l *ValueList) grow(k int) {
	if k <= 0 {
		return
	}
	if l.typ == Unspecified {
		l.typ = Object
	}
	need := l.length + k
	if need > l.Cap() {
		l.reserve(nextPow2(need))
	}
	def := l.typ.Default()
	for i := l.length; i < need; i++ {
		switch l.typ {
		case Numeric:
			l.nums[i] = 0
		case Boolean:
			l.bools[i] = false
		default:
			l.objs[i] = def
		}
	}
	l.length = need
}

func (l *ValueList) reserve(capacity int) {
	switch l.typ {
	case Numeric:
		buf := make([]float64, capacity)
		copy(buf, l.nums[:l.length])
		l.nums = buf
	case Boolean:
		buf := make([]bool, capacity)
		copy(buf, l.bools[:l.length])
		l.bools = buf
	default:
		buf := make([]any, capacity)
		copy(buf, l.objs[:l.length])
		l.objs = buf
	}
}

// truncate shrinks the logical length to n, clearing released object slots.
func (l *ValueList) truncate(n int) {
	if n >= l.length {
		return
	}
	if l.objs != nil {
		clear(l.objs[n:l.length])
	}
	l.length = n
}

// take gathers the values at idx into a new variable-length list of the same type.
func (l *ValueList) take(idx []int) *ValueList {
	out := &ValueList{typ: l.typ}
	out.reserve(len(idx))
	out.length = len(idx)
	for j, i := range idx {
		switch l.typ {
		case Numeric:
			out.nums[j] = l.nums[i]
		case Boolean:
			out.bools[j] = l.bools[i]
		default:
			out.objs[j] = l.objs[i]
		}
	}
	return out
}

func nextPow2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}
