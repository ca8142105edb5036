// SPDX-License-Identifier: MIT

package attr

import (
	"reflect"
	"strconv"

	"github.com/katalvlaran/igraphgo/convert"
)

// Type is the semantic type tag of an attribute. The values mirror
// igraph_attribute_type_t.
type Type uint8

const (
	// Unspecified is the tag of an empty list whose type is not known yet.
	Unspecified Type = 0
	// Numeric values are stored as float64.
	Numeric Type = 1
	// Boolean values are stored as bool.
	Boolean Type = 2
	// String values are stored as string.
	String Type = 3
	// Object values are stored as-is.
	Object Type = 127
)

func (t Type) String() string {
	switch t {
	case Unspecified:
		return "unspecified"
	case Numeric:
		return "numeric"
	case Boolean:
		return "boolean"
	case String:
		return "string"
	case Object:
		return "object"
	}
	return "type(" + strconv.Itoa(int(t)) + ")"
}

// TypeOf infers the tag of a single value. nil and composite values are Object.
func TypeOf(v any) Type {
	switch v.(type) {
	case bool:
		return Boolean
	case string:
		return String
	case float64, int:
		return Numeric
	case nil:
		return Object
	}
	if convert.IsNumeric(v) {
		return Numeric
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Bool:
		return Boolean
	case reflect.String:
		return String
	}
	return Object
}

// widen returns the narrowest tag able to hold values of both tags.
// Numeric absorbs Boolean; String mixed with anything else becomes Object.
func widen(cur, next Type) Type {
	switch {
	case cur == next:
		return cur
	case cur == Unspecified:
		return next
	case next == Unspecified:
		return cur
	case (cur == Numeric && next == Boolean) || (cur == Boolean && next == Numeric):
		return Numeric
	}
	return Object
}

// Default returns the value new positions of a list of this type are filled
// with: false, 0.0, "" or nil.
func (t Type) Default() any {
	switch t {
	case Numeric:
		return 0.0
	case Boolean:
		return false
	case String:
		return ""
	}
	return nil
}
