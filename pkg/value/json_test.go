package value

import (
	"encoding/json"
	"testing"
)

func TestMarshalTaggedForm(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"null", NullVal(), `"None"`},
		{"string", StringVal("hi"), `{"String":"hi"}`},
		{"int", IntVal(42), `{"Int":42}`},
		{"float", FloatVal(3.5), `{"Float":3.5}`},
		{"bool", BoolVal(true), `{"Bool":true}`},
		{"list", ListVal(IntVal(1), StringVal("x")), `{"List":[{"Int":1},{"String":"x"}]}`},
		{"dict", MapVal(map[string]Value{"k": BoolVal(false)}), `{"Dict":{"k":{"Bool":false}}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.v)
			if err != nil {
				t.Fatalf("Marshal error: %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("Marshal = %s, want %s", data, tt.want)
			}

			var back Value
			if err := json.Unmarshal(data, &back); err != nil {
				t.Fatalf("Unmarshal error: %v", err)
			}
			if !back.Equal(tt.v) {
				t.Errorf("round trip changed value: %v -> %v", tt.v, back)
			}
		})
	}
}

func TestUnmarshalAcceptsPlainNull(t *testing.T) {
	var v Value
	if err := json.Unmarshal([]byte(`null`), &v); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if !v.IsNull() {
		t.Errorf("plain null should decode to a null value, got %v", v)
	}
}

func TestUnmarshalIntFloatDistinct(t *testing.T) {
	// The tag decides the kind even when the number looks integral
	var v Value
	if err := json.Unmarshal([]byte(`{"Float":5}`), &v); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if v.Kind() != KindFloat {
		t.Errorf("tagged Float should decode as float, got %v", v.Kind())
	}
	if v.Equal(IntVal(5)) {
		t.Error("Float 5 must not equal Int 5")
	}
}

func TestUnmarshalRejectsMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unknown tag", `{"Complex":1}`},
		{"two tags", `{"Int":1,"Bool":true}`},
		{"empty object", `{}`},
		{"wrong unit string", `"Nothing"`},
		{"mistyped payload", `{"Int":"5"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v Value
			if err := json.Unmarshal([]byte(tt.input), &v); err == nil {
				t.Errorf("Unmarshal(%s) should fail", tt.input)
			}
		})
	}
}

func TestNestedRoundTrip(t *testing.T) {
	v := MapVal(map[string]Value{
		"name":   StringVal("deep"),
		"scores": ListVal(FloatVal(0.5), FloatVal(0.75)),
		"nested": MapVal(map[string]Value{
			"flag": BoolVal(true),
			"none": NullVal(),
		}),
	})

	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	var back Value
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if !back.Equal(v) {
		t.Errorf("nested round trip changed value:\n before %v\n after  %v", v, back)
	}
}
