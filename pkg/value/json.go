package value

import (
	"encoding/json"
	"fmt"
)

// The JSON form is externally tagged so that Int and Float survive round
// trips unambiguously:
//
//	{"String": "hello"}  {"Int": 42}  {"Float": 3.5}  {"Bool": true}
//	"None"  {"List": [...]}  {"Dict": {...}}
//
// This matches the layout produced by earlier versions of the on-disk
// format, so existing files remain loadable.

// MarshalJSON encodes the value in its externally tagged JSON form.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNull:
		return json.Marshal("None")
	case KindString:
		return json.Marshal(map[string]string{"String": v.str})
	case KindInt:
		return json.Marshal(map[string]int64{"Int": v.num})
	case KindFloat:
		return json.Marshal(map[string]float64{"Float": v.flt})
	case KindBool:
		return json.Marshal(map[string]bool{"Bool": v.bit})
	case KindList:
		return json.Marshal(map[string][]Value{"List": v.list})
	case KindMap:
		return json.Marshal(map[string]map[string]Value{"Dict": v.obj})
	default:
		return nil, fmt.Errorf("marshal value: unknown kind %d", v.kind)
	}
}

// UnmarshalJSON decodes the externally tagged JSON form.
func (v *Value) UnmarshalJSON(data []byte) error {
	// Unit variant: "None" (plain JSON null is accepted as well).
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s != "None" {
			return fmt.Errorf("unmarshal value: unexpected string %q, want \"None\"", s)
		}
		*v = NullVal()
		return nil
	}
	if string(data) == "null" {
		*v = NullVal()
		return nil
	}

	var tagged map[string]json.RawMessage
	if err := json.Unmarshal(data, &tagged); err != nil {
		return fmt.Errorf("unmarshal value: %w", err)
	}
	if len(tagged) != 1 {
		return fmt.Errorf("unmarshal value: want exactly one variant tag, got %d", len(tagged))
	}

	for tag, raw := range tagged {
		switch tag {
		case "String":
			var payload string
			if err := json.Unmarshal(raw, &payload); err != nil {
				return fmt.Errorf("unmarshal String variant: %w", err)
			}
			*v = StringVal(payload)
		case "Int":
			var payload int64
			if err := json.Unmarshal(raw, &payload); err != nil {
				return fmt.Errorf("unmarshal Int variant: %w", err)
			}
			*v = IntVal(payload)
		case "Float":
			var payload float64
			if err := json.Unmarshal(raw, &payload); err != nil {
				return fmt.Errorf("unmarshal Float variant: %w", err)
			}
			*v = FloatVal(payload)
		case "Bool":
			var payload bool
			if err := json.Unmarshal(raw, &payload); err != nil {
				return fmt.Errorf("unmarshal Bool variant: %w", err)
			}
			*v = BoolVal(payload)
		case "List":
			var payload []Value
			if err := json.Unmarshal(raw, &payload); err != nil {
				return fmt.Errorf("unmarshal List variant: %w", err)
			}
			*v = Value{kind: KindList, list: payload}
		case "Dict":
			var payload map[string]Value
			if err := json.Unmarshal(raw, &payload); err != nil {
				return fmt.Errorf("unmarshal Dict variant: %w", err)
			}
			*v = MapVal(payload)
		default:
			return fmt.Errorf("unmarshal value: unknown variant tag %q", tag)
		}
	}
	return nil
}
