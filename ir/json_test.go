package ir

import (
	"testing"
)

func TestJSONRoundTrip(t *testing.T) {
	// Inputs are in the compact form the encoder produces, so the decoded
	// tree must encode back to the input byte for byte.
	tests := []string{
		`null`,
		`true`,
		`false`,
		`0`,
		`-12`,
		`1.5`,
		`1.0`,
		`1e3`,
		`1E+2`,
		`123456789012345678901234567890`,
		`""`,
		`"hello"`,
		`"a\nb\tc"`,
		`"quote \" and backslash \\"`,
		`"héllo ☃"`,
		`[]`,
		`[1,2,3]`,
		`[1,"two",null,true,[],{}]`,
		`{}`,
		`{"a":1}`,
		`{"b":1,"a":2}`,
		`{"a":{"b":[1,{"c":null}]},"d":"x"}`,
		`{"a/b":1,"m~n":2}`,
	}
	for i, input := range tests {
		node, err := FromJSON([]byte(input))
		if err != nil {
			t.Errorf("test case %d: error decoding %q: %v", i, input, err)
			continue
		}
		out, err := ToJSON(node)
		if err != nil {
			t.Errorf("test case %d: error encoding %q: %v", i, input, err)
			continue
		}
		if string(out) != input {
			t.Errorf("test case %d: round trip %q -> %q", i, input, out)
		}
	}
}

func TestJSONFieldOrder(t *testing.T) {
	node, err := FromJSON([]byte(`{"z":1,"a":2,"m":3}`))
	if err != nil {
		t.Fatalf("error decoding: %v", err)
	}
	want := []string{"z", "a", "m"}
	if len(node.Fields) != len(want) {
		t.Fatalf("got %d fields, want %d", len(node.Fields), len(want))
	}
	for i, f := range want {
		if node.Fields[i] != f {
			t.Errorf("field %d = %q, want %q", i, node.Fields[i], f)
		}
	}
}

func TestJSONDuplicateFields(t *testing.T) {
	// Last value wins, at the first occurrence's position.
	node, err := FromJSON([]byte(`{"a":1,"b":2,"a":3}`))
	if err != nil {
		t.Fatalf("error decoding: %v", err)
	}
	out, err := ToJSON(node)
	if err != nil {
		t.Fatalf("error encoding: %v", err)
	}
	if want := `{"a":3,"b":2}`; string(out) != want {
		t.Errorf("got %s, want %s", out, want)
	}
}

func TestJSONNumberForms(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		isInt   bool
		isFloat bool
	}{
		{"integer", `42`, true, false},
		{"negative integer", `-7`, true, false},
		{"float", `1.25`, false, true},
		{"integral float literal", `1.0`, false, true},
		{"scientific", `1e3`, false, true},
		{"beyond int64", `123456789012345678901234567890`, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := FromJSON([]byte(tt.input))
			if err != nil {
				t.Fatalf("error decoding %q: %v", tt.input, err)
			}
			if node.Type != NumberType {
				t.Fatalf("type = %s, want %s", node.Type, NumberType)
			}
			if node.Number != tt.input {
				t.Errorf("literal = %q, want %q", node.Number, tt.input)
			}
			if (node.Int64 != nil) != tt.isInt {
				t.Errorf("Int64 set = %v, want %v", node.Int64 != nil, tt.isInt)
			}
			if (node.Float64 != nil) != tt.isFloat {
				t.Errorf("Float64 set = %v, want %v", node.Float64 != nil, tt.isFloat)
			}
		})
	}
}

func TestFromJSONErrors(t *testing.T) {
	tests := []string{
		``,
		`{`,
		`[1,]`,
		`{"a":}`,
		`1 2`,
		`{"a":1}trailing`,
		`nul`,
	}
	for i, input := range tests {
		if _, err := FromJSON([]byte(input)); err == nil {
			t.Errorf("test case %d: no error decoding %q", i, input)
		}
	}
}

func TestToJSONIndent(t *testing.T) {
	node, err := FromJSON([]byte(`{"a":[1,2]}`))
	if err != nil {
		t.Fatalf("error decoding: %v", err)
	}
	out, err := ToJSONIndent(node, "", "  ")
	if err != nil {
		t.Fatalf("error encoding: %v", err)
	}
	want := "{\n  \"a\": [\n    1,\n    2\n  ]\n}"
	if string(out) != want {
		t.Errorf("got %q, want %q", out, want)
	}
}
