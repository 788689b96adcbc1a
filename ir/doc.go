// Package ir provides the intermediate representation (IR) for JSON documents.
//
// # Overview
//
// The IR package defines the core data structure for representing JSON
// documents as a tree of nodes. All documents (whether decoded from JSON
// or YAML text, created programmatically, or produced by applying a
// patch) are represented as ir.Node trees.
//
// The IR is a simple recursive tagged union: values are placed in fields
// of Node depending on the node type. It carries no position information
// from input documents, making it purely semantic, but it does preserve
// two things plain map-based decoding loses: object field order and the
// source literals of numbers.
//
// # Node Types
//
// The Type field indicates the node's type:
//
//   - NullType: null value
//   - BoolType: boolean (true/false)
//   - NumberType: numeric value (int64, float64, or literal)
//   - StringType: string value
//   - ArrayType: ordered list of nodes
//   - ObjectType: key-value pairs (fields and values)
//
// # Creating Nodes
//
// Use constructor functions to create nodes:
//
//	node := ir.FromString("hello")
//	num := ir.FromInt(42)
//	flag := ir.FromBool(true)
//	obj := ir.FromMap(map[string]*ir.Node{
//	    "key": ir.FromString("value"),
//	})
//	arr := ir.FromSlice([]*ir.Node{
//	    ir.FromInt(1),
//	    ir.FromInt(2),
//	})
//
// # IR Structure Constraints
//
// The IR has specific constraints that must be maintained:
//
// ## Objects
//
// For ObjectType nodes, Fields[i] is the key for the value at Values[i],
// so there will always be the same number of fields as values. A key
// appears at most once; Set maintains this.
//
// ## Numbers
//
// Number values are placed under:
//   - Int64: if it is an integer (64-bit signed)
//   - Float64: if it is a floating point number (64-bit IEEE float)
//   - Number: the source literal, kept by the decoders; it is the only
//     representation when neither Int64 nor Float64 can represent the
//     value
//
// # Equality
//
// Nodes are compared for deep equality with Equal. Object field order
// does not participate in equality; numeric equality spans the integer
// and float forms, so 1 equals 1.0.
//
// # JSON and YAML Interoperability
//
// Nodes convert to and from JSON text, YAML text, and plain Go values:
//
//	node, err := ir.FromJSON(data)
//	data, err := ir.ToJSON(node)
//	node, err := ir.FromYAML(data)
//	v, err := ir.ToAny(node)
//	node, err := ir.FromAny(v)
//
// The JSON forms round-trip field order and numeric literals; the YAML
// and Go-value forms do not.
//
// # Thread Safety
//
// Node structures are not thread-safe. If you need to access nodes from
// multiple goroutines, you must synchronize access yourself or clone
// nodes for each goroutine.
//
// # Related Packages
//
//   - github.com/signadot/jsonpatch/pointer - RFC 6901 addressing of IR nodes
//   - github.com/signadot/jsonpatch - RFC 6902 patch application and diff
package ir
