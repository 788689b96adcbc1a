package ir

import (
	"testing"
)

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b *Node
		want bool
	}{
		// Scalars
		{"null == null", Null(), Null(), true},
		{"null != false", Null(), FromBool(false), false},
		{"true == true", FromBool(true), FromBool(true), true},
		{"true != false", FromBool(true), FromBool(false), false},
		{"string == string", FromString("a"), FromString("a"), true},
		{"string != string", FromString("a"), FromString("b"), false},
		{"string != number", FromString("1"), FromInt(1), false},

		// Numbers: equality spans int and float forms
		{"int == int", FromInt(1), FromInt(1), true},
		{"int != int", FromInt(1), FromInt(2), false},
		{"int == float", FromInt(1), FromFloat(1.0), true},
		{"float == int", FromFloat(2.0), FromInt(2), true},
		{"int != float", FromInt(1), FromFloat(1.5), false},
		{"literal int == int", FromNumber("1"), FromInt(1), true},
		{"literal float == int", FromNumber("1.0"), FromInt(1), true},
		{"literal sci == int", FromNumber("1e2"), FromInt(100), true},
		{"big literal == big literal", FromNumber("123456789012345678901234567890"), FromNumber("123456789012345678901234567890"), true},

		// Arrays: order matters
		{"empty arrays", FromSlice(nil), FromSlice(nil), true},
		{"equal arrays", FromSlice([]*Node{FromInt(1), FromInt(2)}), FromSlice([]*Node{FromInt(1), FromInt(2)}), true},
		{"reordered arrays", FromSlice([]*Node{FromInt(1), FromInt(2)}), FromSlice([]*Node{FromInt(2), FromInt(1)}), false},
		{"length mismatch", FromSlice([]*Node{FromInt(1)}), FromSlice([]*Node{FromInt(1), FromInt(2)}), false},

		// Objects: field order does not matter
		{"empty objects", Object(), Object(), true},
		{"reordered fields",
			Object().Set("a", FromInt(1)).Set("b", FromInt(2)),
			Object().Set("b", FromInt(2)).Set("a", FromInt(1)),
			true},
		{"value mismatch",
			Object().Set("a", FromInt(1)),
			Object().Set("a", FromInt(2)),
			false},
		{"key mismatch",
			Object().Set("a", FromInt(1)),
			Object().Set("b", FromInt(1)),
			false},
		{"field count mismatch",
			Object().Set("a", FromInt(1)),
			Object().Set("a", FromInt(1)).Set("b", FromInt(2)),
			false},
		{"object != array", Object(), FromSlice(nil), false},

		// Nesting
		{"nested equal",
			Object().Set("a", FromSlice([]*Node{Object().Set("b", FromFloat(1.0))})),
			Object().Set("a", FromSlice([]*Node{Object().Set("b", FromInt(1))})),
			true},
		{"nested unequal",
			Object().Set("a", FromSlice([]*Node{Object().Set("b", FromInt(1))})),
			Object().Set("a", FromSlice([]*Node{Object().Set("b", FromInt(2))})),
			false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
			if got := Equal(tt.b, tt.a); got != tt.want {
				t.Errorf("Equal() reversed = %v, want %v", got, tt.want)
			}
		})
	}
}
