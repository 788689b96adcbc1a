package pointer

import (
	"fmt"

	"github.com/signadot/jsonpatch/ir"
)

// Resolve walks ptr from root and returns the addressed node. It never
// mutates. Failures wrap ErrNotFound when a well-formed token does not
// resolve (missing field, index out of bounds, descent into a scalar)
// and ErrInvalid when an array token is malformed or is the append
// marker.
func Resolve(root *ir.Node, ptr Pointer) (*ir.Node, error) {
	res := root
	for i, tok := range ptr {
		next, err := step(res, tok)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ptr[:i+1], err)
		}
		res = next
	}
	return res, nil
}

// ResolveParent resolves all but the last token of ptr and returns the
// containing node together with the final, unescaped token. The root
// pointer has no parent.
func ResolveParent(root *ir.Node, ptr Pointer) (*ir.Node, string, error) {
	if len(ptr) == 0 {
		return nil, "", fmt.Errorf("root pointer has no parent: %w", ErrInvalid)
	}
	parent, err := Resolve(root, ptr[:len(ptr)-1])
	if err != nil {
		return nil, "", err
	}
	last := ptr[len(ptr)-1]
	switch parent.Type {
	case ir.ObjectType, ir.ArrayType:
		return parent, last, nil
	}
	return nil, "", fmt.Errorf("%s: cannot descend into %s: %w", ptr, parent.Type, ErrNotFound)
}

func step(node *ir.Node, tok string) (*ir.Node, error) {
	switch node.Type {
	case ir.ObjectType:
		if v := ir.Get(node, tok); v != nil {
			return v, nil
		}
		return nil, fmt.Errorf("no field %q: %w", tok, ErrNotFound)
	case ir.ArrayType:
		if tok == Append {
			return nil, fmt.Errorf("append marker addresses no element: %w", ErrInvalid)
		}
		idx, err := Index(tok)
		if err != nil {
			return nil, err
		}
		if idx >= len(node.Values) {
			return nil, fmt.Errorf("index out of bounds %d (len %d): %w", idx, len(node.Values), ErrNotFound)
		}
		return node.Values[idx], nil
	}
	return nil, fmt.Errorf("cannot descend into %s: %w", node.Type, ErrNotFound)
}
