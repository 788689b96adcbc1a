package ir

import (
	"testing"
)

func TestCloneIndependence(t *testing.T) {
	orig, err := FromJSON([]byte(`{"a":[1,2],"b":{"c":"x"}}`))
	if err != nil {
		t.Fatalf("error decoding: %v", err)
	}
	clone := orig.Clone()
	if !Equal(orig, clone) {
		t.Fatalf("clone differs from original")
	}

	clone.Set("b", FromString("changed"))
	Get(clone, "a").Values[0] = FromInt(99)
	*Get(clone, "a").Values[1].Int64 = 7

	want, err := FromJSON([]byte(`{"a":[1,2],"b":{"c":"x"}}`))
	if err != nil {
		t.Fatalf("error decoding: %v", err)
	}
	if !Equal(orig, want) {
		t.Errorf("original changed after mutating clone")
	}
}

func TestCloneTo(t *testing.T) {
	dst, err := FromJSON([]byte(`{"old":true}`))
	if err != nil {
		t.Fatalf("error decoding: %v", err)
	}
	keep := dst
	src := FromSlice([]*Node{FromInt(1), FromString("x")})
	got := src.CloneTo(dst)
	if got != dst {
		t.Errorf("CloneTo returned a different node")
	}
	if keep.Type != ArrayType {
		t.Errorf("destination type = %s, want %s", keep.Type, ArrayType)
	}
	if !Equal(keep, src) {
		t.Errorf("destination differs from source after CloneTo")
	}
	if len(keep.Fields) != 0 {
		t.Errorf("destination kept %d stale fields", len(keep.Fields))
	}

	// The copy must not alias the source.
	keep.Values[0] = FromInt(2)
	if v := src.Values[0]; v.Int64 == nil || *v.Int64 != 1 {
		t.Errorf("source changed after mutating destination")
	}
}

func TestObjectSetGetDelete(t *testing.T) {
	obj := Object()
	obj.Set("a", FromInt(1)).Set("b", FromInt(2)).Set("a", FromInt(3))

	if got := obj.Fields; len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("fields = %v, want [a b]", got)
	}
	if v := Get(obj, "a"); v == nil || *v.Int64 != 3 {
		t.Errorf("Get(a) = %v, want 3", v)
	}
	if v := Get(obj, "c"); v != nil {
		t.Errorf("Get(c) = %v, want nil", v)
	}
	if v := Get(FromInt(1), "a"); v != nil {
		t.Errorf("Get on scalar = %v, want nil", v)
	}

	if !obj.Delete("a") {
		t.Errorf("Delete(a) = false")
	}
	if obj.Delete("a") {
		t.Errorf("second Delete(a) = true")
	}
	if got := obj.Fields; len(got) != 1 || got[0] != "b" {
		t.Errorf("fields after delete = %v, want [b]", got)
	}
	if len(obj.Fields) != len(obj.Values) {
		t.Errorf("fields and values out of step: %d vs %d", len(obj.Fields), len(obj.Values))
	}
}

func TestFromMapSortsKeys(t *testing.T) {
	obj := FromMap(map[string]*Node{
		"z": FromInt(1),
		"a": FromInt(2),
		"m": FromInt(3),
	})
	want := []string{"a", "m", "z"}
	for i, f := range want {
		if obj.Fields[i] != f {
			t.Errorf("field %d = %q, want %q", i, obj.Fields[i], f)
		}
	}
	back := ToMap(obj)
	if len(back) != 3 || *back["z"].Int64 != 1 {
		t.Errorf("ToMap mismatch: %v", back)
	}
}

func TestFromNumber(t *testing.T) {
	tests := []struct {
		lit     string
		isInt   bool
		isFloat bool
	}{
		{"0", true, false},
		{"-5", true, false},
		{"9223372036854775807", true, false},
		{"9223372036854775808", false, true},
		{"0.5", false, true},
		{"1e10", false, true},
		{"123456789012345678901234567890123456789012345678901234567890e99999", false, false},
	}
	for i, tt := range tests {
		n := FromNumber(tt.lit)
		if n.Number != tt.lit {
			t.Errorf("test case %d: literal = %q, want %q", i, n.Number, tt.lit)
		}
		if (n.Int64 != nil) != tt.isInt {
			t.Errorf("test case %d: Int64 set = %v, want %v", i, n.Int64 != nil, tt.isInt)
		}
		if (n.Float64 != nil) != tt.isFloat {
			t.Errorf("test case %d: Float64 set = %v, want %v", i, n.Float64 != nil, tt.isFloat)
		}
	}
}
