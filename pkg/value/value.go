package value

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Kind identifies the concrete type stored in a Value.
type Kind uint8

const (
	// KindNull is the absence of a value. The zero Value has this kind.
	KindNull Kind = iota
	// KindString holds a UTF-8 string.
	KindString
	// KindInt holds a signed 64-bit integer.
	KindInt
	// KindFloat holds a 64-bit floating-point number.
	KindFloat
	// KindBool holds a boolean.
	KindBool
	// KindList holds an ordered sequence of Values.
	KindList
	// KindMap holds string-keyed Values.
	KindMap
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Value is a dynamically typed attribute value. It is the single value
// representation used for node/edge attributes, entity metadata, and the
// serialized graph form.
//
// The zero Value is null. Values are compared structurally with [Value.Equal];
// lists and maps nest arbitrarily.
type Value struct {
	kind Kind
	str  string
	num  int64
	flt  float64
	bit  bool
	list []Value
	obj  map[string]Value
}

// NullVal returns the null Value.
func NullVal() Value { return Value{} }

// StringVal returns a string Value.
func StringVal(s string) Value { return Value{kind: KindString, str: s} }

// IntVal returns an integer Value.
func IntVal(i int64) Value { return Value{kind: KindInt, num: i} }

// FloatVal returns a float Value.
func FloatVal(f float64) Value { return Value{kind: KindFloat, flt: f} }

// BoolVal returns a boolean Value.
func BoolVal(b bool) Value { return Value{kind: KindBool, bit: b} }

// ListVal returns a list Value holding items in order.
func ListVal(items ...Value) Value {
	return Value{kind: KindList, list: items}
}

// MapVal returns a map Value. The map is used as-is, not copied.
func MapVal(m map[string]Value) Value {
	if m == nil {
		m = map[string]Value{}
	}
	return Value{kind: KindMap, obj: m}
}

// Kind reports the kind of the value.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the value is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsString returns the string payload and true when the kind is KindString.
func (v Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.str, true
}

// AsInt returns the integer payload and true when the kind is KindInt.
func (v Value) AsInt() (int64, bool) {
	if v.kind != KindInt {
		return 0, false
	}
	return v.num, true
}

// AsFloat returns the float payload and true when the kind is KindFloat.
func (v Value) AsFloat() (float64, bool) {
	if v.kind != KindFloat {
		return 0, false
	}
	return v.flt, true
}

// AsBool returns the boolean payload and true when the kind is KindBool.
func (v Value) AsBool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.bit, true
}

// AsList returns the list payload and true when the kind is KindList.
// The returned slice is the live backing slice, not a copy.
func (v Value) AsList() ([]Value, bool) {
	if v.kind != KindList {
		return nil, false
	}
	return v.list, true
}

// AsMap returns the map payload and true when the kind is KindMap.
// The returned map is the live backing map, not a copy.
func (v Value) AsMap() (map[string]Value, bool) {
	if v.kind != KindMap {
		return nil, false
	}
	return v.obj, true
}

// Equal reports structural equality. Int and Float never compare equal,
// even when numerically identical, so round-trip type fidelity is checkable.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindString:
		return v.str == o.str
	case KindInt:
		return v.num == o.num
	case KindFloat:
		return v.flt == o.flt
	case KindBool:
		return v.bit == o.bit
	case KindList:
		if len(v.list) != len(o.list) {
			return false
		}
		for i := range v.list {
			if !v.list[i].Equal(o.list[i]) {
				return false
			}
		}
		return true
	case KindMap:
		if len(v.obj) != len(o.obj) {
			return false
		}
		for k, vv := range v.obj {
			ov, ok := o.obj[k]
			if !ok || !vv.Equal(ov) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// String renders a compact debug representation. Map keys are sorted so the
// output is deterministic.
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindString:
		return strconv.Quote(v.str)
	case KindInt:
		return strconv.FormatInt(v.num, 10)
	case KindFloat:
		return strconv.FormatFloat(v.flt, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.bit)
	case KindList:
		parts := make([]string, len(v.list))
		for i, item := range v.list {
			parts[i] = item.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindMap:
		keys := make([]string, 0, len(v.obj))
		for k := range v.obj {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = strconv.Quote(k) + ": " + v.obj[k].String()
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return "invalid"
	}
}
