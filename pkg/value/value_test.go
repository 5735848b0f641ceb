package value

import "testing"

func TestKinds(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		kind Kind
	}{
		{"null", NullVal(), KindNull},
		{"string", StringVal("x"), KindString},
		{"int", IntVal(7), KindInt},
		{"float", FloatVal(3.5), KindFloat},
		{"bool", BoolVal(true), KindBool},
		{"list", ListVal(IntVal(1)), KindList},
		{"map", MapVal(map[string]Value{"k": IntVal(1)}), KindMap},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.v.Kind() != tt.kind {
				t.Errorf("Kind() = %v, want %v", tt.v.Kind(), tt.kind)
			}
		})
	}

	// The zero value is null
	var zero Value
	if !zero.IsNull() {
		t.Error("zero Value should be null")
	}
}

func TestAccessors(t *testing.T) {
	if s, ok := StringVal("hello").AsString(); !ok || s != "hello" {
		t.Errorf("AsString = %q, %v", s, ok)
	}
	if n, ok := IntVal(-3).AsInt(); !ok || n != -3 {
		t.Errorf("AsInt = %d, %v", n, ok)
	}
	if f, ok := FloatVal(2.25).AsFloat(); !ok || f != 2.25 {
		t.Errorf("AsFloat = %v, %v", f, ok)
	}
	if b, ok := BoolVal(true).AsBool(); !ok || !b {
		t.Errorf("AsBool = %v, %v", b, ok)
	}
	if items, ok := ListVal(IntVal(1), IntVal(2)).AsList(); !ok || len(items) != 2 {
		t.Errorf("AsList = %v, %v", items, ok)
	}
	if m, ok := MapVal(map[string]Value{"k": BoolVal(false)}).AsMap(); !ok || len(m) != 1 {
		t.Errorf("AsMap = %v, %v", m, ok)
	}

	// Accessors refuse mismatched kinds
	if _, ok := IntVal(1).AsString(); ok {
		t.Error("AsString on an int should report false")
	}
	if _, ok := StringVal("1").AsInt(); ok {
		t.Error("AsInt on a string should report false")
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"same string", StringVal("a"), StringVal("a"), true},
		{"different string", StringVal("a"), StringVal("b"), false},
		{"same int", IntVal(5), IntVal(5), true},
		{"int vs float never equal", IntVal(5), FloatVal(5.0), false},
		{"same float", FloatVal(1.5), FloatVal(1.5), true},
		{"null equals null", NullVal(), NullVal(), true},
		{"null vs bool", NullVal(), BoolVal(false), false},
		{"same list", ListVal(IntVal(1), StringVal("x")), ListVal(IntVal(1), StringVal("x")), true},
		{"list length differs", ListVal(IntVal(1)), ListVal(IntVal(1), IntVal(2)), false},
		{"list order matters", ListVal(IntVal(1), IntVal(2)), ListVal(IntVal(2), IntVal(1)), false},
		{
			"same map",
			MapVal(map[string]Value{"a": IntVal(1), "b": BoolVal(true)}),
			MapVal(map[string]Value{"b": BoolVal(true), "a": IntVal(1)}),
			true,
		},
		{
			"map key differs",
			MapVal(map[string]Value{"a": IntVal(1)}),
			MapVal(map[string]Value{"b": IntVal(1)}),
			false,
		},
		{
			"nested structures",
			MapVal(map[string]Value{"l": ListVal(MapVal(map[string]Value{"x": FloatVal(0.5)}))}),
			MapVal(map[string]Value{"l": ListVal(MapVal(map[string]Value{"x": FloatVal(0.5)}))}),
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal = %v, want %v", got, tt.want)
			}
			// Equality is symmetric
			if got := tt.b.Equal(tt.a); got != tt.want {
				t.Errorf("Equal (reversed) = %v, want %v", got, tt.want)
			}
		})
	}
}
