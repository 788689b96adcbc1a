package jsonpatch

import (
	"fmt"
	"slices"

	"github.com/signadot/jsonpatch/debug"
	"github.com/signadot/jsonpatch/ir"
	"github.com/signadot/jsonpatch/pointer"
)

// Decoder turns serialized document text into a node tree.
type Decoder func([]byte) (*ir.Node, error)

// Encoder renders a node tree as document text.
type Encoder func(*ir.Node) ([]byte, error)

type ApplyConfig struct {
	equal   func(a, b *ir.Node) bool
	decoder Decoder
	encoder Encoder
}
type ApplyOpt func(*ApplyConfig)

// ApplyEqual sets the equality used by test operations, for document
// models whose scalars compare differently than ir.Equal.
func ApplyEqual(eq func(a, b *ir.Node) bool) ApplyOpt {
	return func(c *ApplyConfig) { c.equal = eq }
}

// ApplyDecoder sets the document decoder used by ApplyBytes.
func ApplyDecoder(d Decoder) ApplyOpt {
	return func(c *ApplyConfig) { c.decoder = d }
}

// ApplyEncoder sets the document encoder used by ApplyBytes.
func ApplyEncoder(e Encoder) ApplyOpt {
	return func(c *ApplyConfig) { c.encoder = e }
}

func newApplyConfig(opts []ApplyOpt) *ApplyConfig {
	cfg := &ApplyConfig{
		equal:   ir.Equal,
		decoder: ir.FromJSON,
		encoder: ir.ToJSON,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Apply applies a patch to a deep copy of doc and returns the copy. The
// operations run in order; the first failure aborts the call, and doc
// itself is never touched. The error identifies the failing operation
// by its position and kind and wraps one of ErrConflict,
// ErrInvalidPatch, pointer.ErrInvalid or pointer.ErrNotFound.
func Apply(doc *ir.Node, patch Patch, opts ...ApplyOpt) (*ir.Node, error) {
	cfg := newApplyConfig(opts)
	res := doc.Clone()
	if err := applyAll(res, patch, cfg); err != nil {
		return nil, err
	}
	return res, nil
}

// ApplyInPlace applies a patch to doc itself and returns doc. On
// failure the document keeps the mutations of every operation before
// the failing one; callers who need the original intact on failure use
// Apply instead.
func ApplyInPlace(doc *ir.Node, patch Patch, opts ...ApplyOpt) (*ir.Node, error) {
	cfg := newApplyConfig(opts)
	if err := applyAll(doc, patch, cfg); err != nil {
		return doc, err
	}
	return doc, nil
}

// ApplyBytes decodes a document and a patch from their textual forms,
// applies the patch, and encodes the result. The codec defaults to
// JSON; see ApplyDecoder and ApplyEncoder.
func ApplyBytes(doc, patch []byte, opts ...ApplyOpt) ([]byte, error) {
	cfg := newApplyConfig(opts)
	node, err := cfg.decoder(doc)
	if err != nil {
		return nil, fmt.Errorf("cannot decode document: %w", err)
	}
	ops, err := ParsePatch(patch)
	if err != nil {
		return nil, err
	}
	if err := applyAll(node, ops, cfg); err != nil {
		return nil, err
	}
	return cfg.encoder(node)
}

func applyAll(doc *ir.Node, patch Patch, cfg *ApplyConfig) error {
	for i, op := range patch {
		if debug.Patch() {
			debug.Logf("apply %s\n", op)
		}
		if err := applyOp(doc, op, cfg); err != nil {
			return fmt.Errorf("op %d (%s): %w", i, op.Op, err)
		}
	}
	return nil
}

func applyOp(doc *ir.Node, op *Operation, cfg *ApplyConfig) error {
	if err := op.check(); err != nil {
		return err
	}
	switch op.Op {
	case Add:
		return addAt(doc, op.Path, op.Value.Clone())
	case Remove:
		_, err := removeAt(doc, op.Path)
		return err
	case Replace:
		return applyReplace(doc, op)
	case Move:
		return applyMove(doc, op)
	case Copy:
		return applyCopy(doc, op)
	}
	return applyTest(doc, op, cfg)
}

// addAt places val at ptr, taking ownership of val. Adding inserts into
// arrays, shifting later elements right, and overwrites existing object
// fields. The append marker and indexes up to the array length are the
// permitted array tokens.
func addAt(doc *ir.Node, ptr pointer.Pointer, val *ir.Node) error {
	if len(ptr) == 0 {
		*doc = *val
		return nil
	}
	parent, tok, err := pointer.ResolveParent(doc, ptr)
	if err != nil {
		return err
	}
	if parent.Type == ir.ObjectType {
		parent.Set(tok, val)
		return nil
	}
	if tok == pointer.Append {
		parent.Values = append(parent.Values, val)
		return nil
	}
	idx, err := pointer.Index(tok)
	if err != nil {
		return fmt.Errorf("%s: %w", ptr, err)
	}
	if idx > len(parent.Values) {
		return fmt.Errorf("%s: index out of bounds %d (len %d): %w",
			ptr, idx, len(parent.Values), pointer.ErrInvalid)
	}
	parent.Values = slices.Insert(parent.Values, idx, val)
	return nil
}

// removeAt deletes the node at ptr and returns it.
func removeAt(doc *ir.Node, ptr pointer.Pointer) (*ir.Node, error) {
	parent, tok, err := pointer.ResolveParent(doc, ptr)
	if err != nil {
		return nil, err
	}
	if parent.Type == ir.ObjectType {
		old := ir.Get(parent, tok)
		if old == nil {
			return nil, fmt.Errorf("%s: no field %q: %w", ptr, tok, pointer.ErrNotFound)
		}
		parent.Delete(tok)
		return old, nil
	}
	if tok == pointer.Append {
		return nil, fmt.Errorf("%s: append marker addresses no element: %w", ptr, pointer.ErrInvalid)
	}
	idx, err := pointer.Index(tok)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ptr, err)
	}
	if idx >= len(parent.Values) {
		return nil, fmt.Errorf("%s: index out of bounds %d (len %d): %w",
			ptr, idx, len(parent.Values), pointer.ErrNotFound)
	}
	old := parent.Values[idx]
	parent.Values = slices.Delete(parent.Values, idx, idx+1)
	return old, nil
}

func applyReplace(doc *ir.Node, op *Operation) error {
	val := op.Value.Clone()
	if len(op.Path) == 0 {
		*doc = *val
		return nil
	}
	parent, tok, err := pointer.ResolveParent(doc, op.Path)
	if err != nil {
		return err
	}
	if parent.Type == ir.ObjectType {
		if parent.IndexOf(tok) < 0 {
			return fmt.Errorf("%s: no field %q: %w", op.Path, tok, pointer.ErrNotFound)
		}
		parent.Set(tok, val)
		return nil
	}
	if tok == pointer.Append {
		return fmt.Errorf("%s: append marker addresses no element: %w", op.Path, pointer.ErrInvalid)
	}
	idx, err := pointer.Index(tok)
	if err != nil {
		return fmt.Errorf("%s: %w", op.Path, err)
	}
	if idx >= len(parent.Values) {
		return fmt.Errorf("%s: index out of bounds %d (len %d): %w",
			op.Path, idx, len(parent.Values), pointer.ErrNotFound)
	}
	parent.Values[idx] = val
	return nil
}

func applyMove(doc *ir.Node, op *Operation) error {
	if _, err := pointer.Resolve(doc, op.From); err != nil {
		return err
	}
	if op.From.Contains(op.Path) {
		return fmt.Errorf("cannot move %s into %s: %w", op.From, op.Path, ErrConflict)
	}
	val, err := removeAt(doc, op.From)
	if err != nil {
		return err
	}
	return addAt(doc, op.Path, val)
}

func applyCopy(doc *ir.Node, op *Operation) error {
	val, err := pointer.Resolve(doc, op.From)
	if err != nil {
		return err
	}
	return addAt(doc, op.Path, val.Clone())
}

func applyTest(doc *ir.Node, op *Operation, cfg *ApplyConfig) error {
	val, err := pointer.Resolve(doc, op.Path)
	if err != nil {
		return err
	}
	if !cfg.equal(val, op.Value) {
		return fmt.Errorf("test %s: values differ: %w", op.Path, ErrConflict)
	}
	return nil
}
