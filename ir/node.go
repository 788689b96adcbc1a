package ir

import (
	"maps"
	"slices"
	"strconv"
)

// Node is one value in a document tree. The Type tag selects which of the
// remaining fields are meaningful; see the package documentation for the
// structure constraints.
type Node struct {
	Type   Type
	Fields []string
	Values []*Node

	String string
	Bool   bool

	// Number holds the source literal of a numeric value when one is
	// known (decoded documents keep it; constructed nodes leave it
	// empty). Int64 and Float64 hold the value when it is representable
	// in 64 bits.
	Number  string
	Int64   *int64
	Float64 *float64
}

// Clone returns a structurally independent deep copy of node.
func (node *Node) Clone() *Node {
	res := &Node{}
	return node.CloneTo(res)
}

// CloneTo deep-copies node into dst, overwriting dst's previous content,
// and returns dst. Cloning into an existing node is how a root value is
// replaced without invalidating the caller's reference.
func (node *Node) CloneTo(dst *Node) *Node {
	dst.Type = node.Type
	dst.String = node.String
	dst.Bool = node.Bool
	dst.Number = node.Number
	dst.Int64 = nil
	dst.Float64 = nil
	if node.Int64 != nil {
		i := *node.Int64
		dst.Int64 = &i
	}
	if node.Float64 != nil {
		f := *node.Float64
		dst.Float64 = &f
	}
	dst.Fields = nil
	dst.Values = nil
	if node.Fields != nil {
		dst.Fields = slices.Clone(node.Fields)
	}
	if node.Values != nil {
		dst.Values = make([]*Node, len(node.Values))
		for i, v := range node.Values {
			dst.Values[i] = v.Clone()
		}
	}
	return dst
}

func FromString(v string) *Node {
	return &Node{
		Type:   StringType,
		String: v,
	}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  NumberType,
		Int64: &v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: &f,
	}
}

// FromNumber builds a number node from a source literal, keeping the
// literal and filling the 64-bit forms when they can represent it.
func FromNumber(lit string) *Node {
	res := &Node{
		Type:   NumberType,
		Number: lit,
	}
	if i, err := strconv.ParseInt(lit, 10, 64); err == nil {
		res.Int64 = &i
		return res
	}
	if f, err := strconv.ParseFloat(lit, 64); err == nil {
		res.Float64 = &f
	}
	return res
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func Null() *Node {
	return &Node{Type: NullType}
}

// Object returns an empty object node; fields are appended with Set.
func Object() *Node {
	return &Node{Type: ObjectType}
}

// FromMap builds an object node from a Go map. Keys are sorted so the
// result is deterministic; use Object plus Set to control field order.
func FromMap(m map[string]*Node) *Node {
	res := &Node{Type: ObjectType}
	res.Fields = make([]string, 0, len(m))
	res.Values = make([]*Node, 0, len(m))
	for _, key := range slices.Sorted(maps.Keys(m)) {
		res.Fields = append(res.Fields, key)
		res.Values = append(res.Values, m[key])
	}
	return res
}

// ToMap returns the fields of an object node as a Go map, or nil if node
// is not an object. Field order is lost.
func ToMap(node *Node) map[string]*Node {
	if node.Type != ObjectType {
		return nil
	}
	res := make(map[string]*Node, len(node.Fields))
	for i, f := range node.Fields {
		res[f] = node.Values[i]
	}
	return res
}

func FromSlice(vals []*Node) *Node {
	res := &Node{Type: ArrayType}
	res.Values = make([]*Node, len(vals))
	copy(res.Values, vals)
	return res
}

// IndexOf returns the position of field in an object node, or -1.
func (node *Node) IndexOf(field string) int {
	for i, f := range node.Fields {
		if f == field {
			return i
		}
	}
	return -1
}

// Get returns the value of field in an object node, or nil when absent
// or when node is not an object.
func Get(node *Node, field string) *Node {
	if node.Type != ObjectType {
		return nil
	}
	if i := node.IndexOf(field); i >= 0 {
		return node.Values[i]
	}
	return nil
}

// Set replaces the value of field when present, otherwise appends the
// field, preserving insertion order.
func (node *Node) Set(field string, val *Node) *Node {
	if i := node.IndexOf(field); i >= 0 {
		node.Values[i] = val
		return node
	}
	node.Fields = append(node.Fields, field)
	node.Values = append(node.Values, val)
	return node
}

// Delete removes field from an object node, reporting whether it was
// present.
func (node *Node) Delete(field string) bool {
	i := node.IndexOf(field)
	if i < 0 {
		return false
	}
	node.Fields = append(node.Fields[:i], node.Fields[i+1:]...)
	node.Values = append(node.Values[:i], node.Values[i+1:]...)
	return true
}
