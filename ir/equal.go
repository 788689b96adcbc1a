package ir

// Equal reports deep equality of two nodes. Object fields are compared
// without regard to order, arrays element-wise in order. Numbers compare
// by value across the integer and float forms, so 1 equals 1.0; numbers
// outside the 64-bit forms compare by their source literals.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case NullType:
		return true
	case BoolType:
		return a.Bool == b.Bool
	case StringType:
		return a.String == b.String
	case NumberType:
		return equalNumbers(a, b)
	case ArrayType:
		if len(a.Values) != len(b.Values) {
			return false
		}
		for i := range a.Values {
			if !Equal(a.Values[i], b.Values[i]) {
				return false
			}
		}
		return true
	case ObjectType:
		if len(a.Fields) != len(b.Fields) {
			return false
		}
		for i, f := range a.Fields {
			j := b.IndexOf(f)
			if j < 0 {
				return false
			}
			if !Equal(a.Values[i], b.Values[j]) {
				return false
			}
		}
		return true
	}
	return false
}

func equalNumbers(a, b *Node) bool {
	switch {
	case a.Int64 != nil && b.Int64 != nil:
		return *a.Int64 == *b.Int64
	case a.Int64 != nil && b.Float64 != nil:
		return float64(*a.Int64) == *b.Float64
	case a.Float64 != nil && b.Int64 != nil:
		return *a.Float64 == float64(*b.Int64)
	case a.Float64 != nil && b.Float64 != nil:
		return *a.Float64 == *b.Float64
	}
	return a.Number == b.Number
}
