package internal

import (
	"fmt"
	"strconv"
)

type valueKind uint8

const (
	valNil valueKind = iota
	valBool
	valNumber
	valObject
)

func (k valueKind) String() string {
	switch k {
	case valNil:
		return "nil"
	case valBool:
		return "bool"
	case valNumber:
		return "number"
	case valObject:
		return "object"
	}
	return fmt.Sprintf("valueKind(%d)", uint8(k))
}

// Value is the runtime representation of every Lux value. Objects are
// referenced, never owned.
type Value struct {
	kind    valueKind
	boolean bool
	number  float64
	obj     *object
}

func nilValue() Value {
	return Value{kind: valNil}
}

func boolValue(b bool) Value {
	return Value{kind: valBool, boolean: b}
}

func numberValue(n float64) Value {
	return Value{kind: valNumber, number: n}
}

func objectValue(o *object) Value {
	return Value{kind: valObject, obj: o}
}

func (v Value) isNil() bool    { return v.kind == valNil }
func (v Value) isBool() bool   { return v.kind == valBool }
func (v Value) isNumber() bool { return v.kind == valNumber }
func (v Value) isObject() bool { return v.kind == valObject }

func (v Value) isString() bool {
	return v.kind == valObject && v.obj.kind == objString
}

func (v Value) asString() *luxString {
	return &v.obj.str
}

// isFalsey reports whether v is nil or false. Everything else is truthy.
func (v Value) isFalsey() bool {
	return v.kind == valNil || (v.kind == valBool && !v.boolean)
}

func (v Value) equals(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case valNil:
		return true
	case valBool:
		return v.boolean == other.boolean
	case valNumber:
		return v.number == other.number
	case valObject:
		return v.obj.equals(other.obj)
	}
	return false
}

func (v Value) String() string {
	switch v.kind {
	case valNil:
		return "nil"
	case valBool:
		return strconv.FormatBool(v.boolean)
	case valNumber:
		return formatNumber(v.number)
	case valObject:
		return v.obj.String()
	}
	return "<unknown>"
}

// formatNumber prints like C's %g: at most six significant digits.
func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'g', 6, 64)
}
