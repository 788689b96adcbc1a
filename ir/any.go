package ir

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strconv"
)

// FromAny builds a node tree from the Go values encoding/json produces
// (nil, bool, string, json.Number, float64, map[string]any, []any), plus
// the common Go numeric types. Map keys are sorted.
func FromAny(v any) (*Node, error) {
	switch t := v.(type) {
	case nil:
		return Null(), nil
	case bool:
		return FromBool(t), nil
	case string:
		return FromString(t), nil
	case json.Number:
		return FromNumber(string(t)), nil
	case int:
		return FromInt(int64(t)), nil
	case int32:
		return FromInt(int64(t)), nil
	case int64:
		return FromInt(t), nil
	case uint:
		return FromNumber(strconv.FormatUint(uint64(t), 10)), nil
	case uint32:
		return FromInt(int64(t)), nil
	case uint64:
		return FromNumber(strconv.FormatUint(t, 10)), nil
	case float32:
		return FromFloat(float64(t)), nil
	case float64:
		return FromFloat(t), nil
	case []any:
		res := &Node{Type: ArrayType}
		res.Values = make([]*Node, len(t))
		for i, elt := range t {
			n, err := FromAny(elt)
			if err != nil {
				return nil, err
			}
			res.Values[i] = n
		}
		return res, nil
	case map[string]any:
		res := Object()
		for _, key := range slices.Sorted(maps.Keys(t)) {
			n, err := FromAny(t[key])
			if err != nil {
				return nil, err
			}
			res.Set(key, n)
		}
		return res, nil
	case *Node:
		return t, nil
	}
	return nil, fmt.Errorf("cannot represent %T", v)
}

// ToAny maps a node tree to plain Go values: nil, bool, string, int64,
// float64, json.Number for numbers outside the 64-bit forms, []any and
// map[string]any. Object field order is lost.
func ToAny(node *Node) (any, error) {
	if node == nil {
		return nil, fmt.Errorf("cannot represent nil node")
	}
	switch node.Type {
	case NullType:
		return nil, nil
	case BoolType:
		return node.Bool, nil
	case StringType:
		return node.String, nil
	case NumberType:
		switch {
		case node.Int64 != nil:
			return *node.Int64, nil
		case node.Float64 != nil:
			return *node.Float64, nil
		}
		return json.Number(node.Number), nil
	case ArrayType:
		res := make([]any, len(node.Values))
		for i, v := range node.Values {
			elt, err := ToAny(v)
			if err != nil {
				return nil, err
			}
			res[i] = elt
		}
		return res, nil
	case ObjectType:
		res := make(map[string]any, len(node.Fields))
		for i, f := range node.Fields {
			v, err := ToAny(node.Values[i])
			if err != nil {
				return nil, err
			}
			res[f] = v
		}
		return res, nil
	}
	return nil, fmt.Errorf("cannot represent node type %s", node.Type)
}
