// Package jsonpatch implements RFC 6902 JSON patches over ir.Node
// document trees: parsing and applying them, generating them by
// diffing two documents, and inverting them.
package jsonpatch

import (
	"fmt"

	"github.com/signadot/jsonpatch/ir"
	"github.com/signadot/jsonpatch/pointer"
)

// Op names a patch operation kind.
type Op string

const (
	Add     Op = "add"
	Remove  Op = "remove"
	Replace Op = "replace"
	Move    Op = "move"
	Copy    Op = "copy"
	Test    Op = "test"
)

func (o Op) valid() bool {
	switch o {
	case Add, Remove, Replace, Move, Copy, Test:
		return true
	}
	return false
}

// Operation is a single patch step. Path is always set; From is set for
// move and copy, Value for add, replace and test. A Value of ir.Null()
// and an absent Value are different things: the latter never appears in
// a parsed add, replace or test.
type Operation struct {
	Op    Op
	Path  pointer.Pointer
	From  pointer.Pointer
	Value *ir.Node
}

func (op *Operation) String() string {
	if op.From != nil {
		return fmt.Sprintf("%s %s from %s", op.Op, op.Path, op.From)
	}
	return fmt.Sprintf("%s %s", op.Op, op.Path)
}

// Node renders the operation as its document form.
func (op *Operation) Node() *ir.Node {
	res := ir.Object()
	res.Set("op", ir.FromString(string(op.Op)))
	res.Set("path", ir.FromString(op.Path.String()))
	if op.From != nil {
		res.Set("from", ir.FromString(op.From.String()))
	}
	if op.Value != nil {
		res.Set("value", op.Value)
	}
	return res
}

// check validates the operation's shape. ParsePatch guarantees it;
// hand-built operations are checked when first applied.
func (op *Operation) check() error {
	switch op.Op {
	case Add, Replace, Test:
		if op.Value == nil {
			return fmt.Errorf("%s: missing value: %w", op.Op, ErrInvalidPatch)
		}
	case Move, Copy:
		if op.From == nil {
			return fmt.Errorf("%s: missing from: %w", op.Op, ErrInvalidPatch)
		}
	case Remove:
	default:
		return fmt.Errorf("unknown op %q: %w", op.Op, ErrInvalidPatch)
	}
	return nil
}

// Equal reports whether op and other denote the same operation. Values
// compare by deep equality.
func (op *Operation) Equal(other *Operation) bool {
	if op.Op != other.Op || !op.Path.Equal(other.Path) {
		return false
	}
	if (op.From != nil) != (other.From != nil) {
		return false
	}
	if op.From != nil && !op.From.Equal(other.From) {
		return false
	}
	if (op.Value != nil) != (other.Value != nil) {
		return false
	}
	return op.Value == nil || ir.Equal(op.Value, other.Value)
}

// Patch is an ordered sequence of operations.
type Patch []*Operation

// ParsePatch decodes the textual patch form: a JSON array of operation
// objects. Each operation's shape is validated here, so a malformed
// entry fails parsing rather than application. Unknown fields on an
// operation are ignored.
func ParsePatch(data []byte) (Patch, error) {
	node, err := ir.FromJSON(data)
	if err != nil {
		return nil, fmt.Errorf("cannot decode patch: %v: %w", err, ErrInvalidPatch)
	}
	return PatchFromNode(node)
}

// PatchFromNode converts the document form of a patch into a Patch,
// validating each operation's shape.
func PatchFromNode(node *ir.Node) (Patch, error) {
	if node.Type != ir.ArrayType {
		return nil, fmt.Errorf("patch document is %s, not %s: %w", node.Type, ir.ArrayType, ErrInvalidPatch)
	}
	res := make(Patch, 0, len(node.Values))
	for i, opNode := range node.Values {
		op, err := operationFromNode(opNode)
		if err != nil {
			return nil, fmt.Errorf("op %d: %w", i, err)
		}
		res = append(res, op)
	}
	return res, nil
}

func operationFromNode(node *ir.Node) (*Operation, error) {
	if node.Type != ir.ObjectType {
		return nil, fmt.Errorf("operation is %s, not %s: %w", node.Type, ir.ObjectType, ErrInvalidPatch)
	}
	kindNode := ir.Get(node, "op")
	if kindNode == nil || kindNode.Type != ir.StringType {
		return nil, fmt.Errorf("missing op field: %w", ErrInvalidPatch)
	}
	kind := Op(kindNode.String)
	if !kind.valid() {
		return nil, fmt.Errorf("unknown op %q: %w", kindNode.String, ErrInvalidPatch)
	}
	pathNode := ir.Get(node, "path")
	if pathNode == nil || pathNode.Type != ir.StringType {
		return nil, fmt.Errorf("%s: missing path field: %w", kind, ErrInvalidPatch)
	}
	path, err := pointer.Parse(pathNode.String)
	if err != nil {
		return nil, fmt.Errorf("%s: path: %w", kind, err)
	}
	op := &Operation{Op: kind, Path: path}
	switch kind {
	case Move, Copy:
		fromNode := ir.Get(node, "from")
		if fromNode == nil || fromNode.Type != ir.StringType {
			return nil, fmt.Errorf("%s: missing from field: %w", kind, ErrInvalidPatch)
		}
		op.From, err = pointer.Parse(fromNode.String)
		if err != nil {
			return nil, fmt.Errorf("%s: from: %w", kind, err)
		}
	case Add, Replace, Test:
		op.Value = ir.Get(node, "value")
		if op.Value == nil {
			return nil, fmt.Errorf("%s: missing value field: %w", kind, ErrInvalidPatch)
		}
	}
	return op, nil
}

// Node renders the patch as its document form: an array of operation
// objects sharing the operations' value nodes.
func (p Patch) Node() *ir.Node {
	res := &ir.Node{Type: ir.ArrayType}
	res.Values = make([]*ir.Node, 0, len(p))
	for _, op := range p {
		res.Values = append(res.Values, op.Node())
	}
	return res
}

// Encode renders the patch in its textual form.
func (p Patch) Encode() ([]byte, error) {
	return ir.ToJSON(p.Node())
}

// Equal reports operation-wise equality of two patches.
func (p Patch) Equal(other Patch) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if !p[i].Equal(other[i]) {
			return false
		}
	}
	return true
}

func (p Patch) MarshalJSON() ([]byte, error) {
	return p.Encode()
}

func (p *Patch) UnmarshalJSON(data []byte) error {
	res, err := ParsePatch(data)
	if err != nil {
		return err
	}
	*p = res
	return nil
}
