package jsonpatch

import (
	"fmt"
	"strconv"

	"github.com/signadot/jsonpatch/ir"
	"github.com/signadot/jsonpatch/pointer"
)

// Invert computes the patch undoing patch on doc: if applying patch to
// doc yields d2, applying the inverse to d2 yields a document
// deep-equal to doc. The inverse is built by replaying patch against a
// copy of doc, so Invert fails exactly where [Apply] would, and doc is
// never touched.
//
// Undoing a remove re-adds the field at the end of its object, so
// field order is restored only up to deep equality. A test operation
// is its own inverse and holds in both directions.
func Invert(doc *ir.Node, patch Patch, opts ...ApplyOpt) (Patch, error) {
	cfg := newApplyConfig(opts)
	work := doc.Clone()
	invs := make([][]*Operation, 0, len(patch))
	for i, op := range patch {
		inv, err := invertOp(work, op)
		if err != nil {
			return nil, fmt.Errorf("op %d (%s): %w", i, op.Op, err)
		}
		if err := applyOp(work, op, cfg); err != nil {
			return nil, fmt.Errorf("op %d (%s): %w", i, op.Op, err)
		}
		invs = append(invs, inv)
	}
	res := make(Patch, 0, len(patch))
	for i := len(invs) - 1; i >= 0; i-- {
		res = append(res, invs[i]...)
	}
	return res, nil
}

// invertOp computes the ops undoing op against doc, which still holds
// the state op will apply to.
func invertOp(doc *ir.Node, op *Operation) ([]*Operation, error) {
	if err := op.check(); err != nil {
		return nil, err
	}
	switch op.Op {
	case Test:
		return []*Operation{op}, nil
	case Replace:
		old, err := pointer.Resolve(doc, op.Path)
		if err != nil {
			return nil, err
		}
		return []*Operation{{Op: Replace, Path: op.Path, Value: old.Clone()}}, nil
	case Remove:
		old, err := pointer.Resolve(doc, op.Path)
		if err != nil {
			return nil, err
		}
		return []*Operation{{Op: Add, Path: op.Path, Value: old.Clone()}}, nil
	case Add, Copy:
		return invertAdd(doc, op.Path)
	}
	return invertMove(doc, op)
}

// invertAdd computes the ops undoing a value landing at ptr by an add
// or copy.
func invertAdd(doc *ir.Node, ptr pointer.Pointer) ([]*Operation, error) {
	if len(ptr) == 0 {
		return []*Operation{{Op: Replace, Path: pointer.Pointer{}, Value: doc.Clone()}}, nil
	}
	parent, tok, err := pointer.ResolveParent(doc, ptr)
	if err != nil {
		return nil, err
	}
	if parent.Type == ir.ObjectType {
		if old := ir.Get(parent, tok); old != nil {
			return []*Operation{{Op: Replace, Path: ptr, Value: old.Clone()}}, nil
		}
		return []*Operation{{Op: Remove, Path: ptr}}, nil
	}
	// an array add inserts, so its inverse removes the landing index
	if tok == pointer.Append {
		ptr = ptr[:len(ptr)-1].Child(strconv.Itoa(len(parent.Values)))
	}
	return []*Operation{{Op: Remove, Path: ptr}}, nil
}

func invertMove(doc *ir.Node, op *Operation) ([]*Operation, error) {
	if _, err := pointer.Resolve(doc, op.From); err != nil {
		return nil, err
	}
	if op.From.Contains(op.Path) {
		return nil, fmt.Errorf("cannot move %s into %s: %w", op.From, op.Path, ErrConflict)
	}
	if len(op.Path) == 0 {
		return []*Operation{{Op: Replace, Path: pointer.Pointer{}, Value: doc.Clone()}}, nil
	}
	// The landing slot's state is only known after the source leaves,
	// so simulate the removal on a scratch copy.
	tmp := doc.Clone()
	removed, err := removeAt(tmp, op.From)
	if err != nil {
		return nil, err
	}
	res, err := invertAdd(tmp, op.Path)
	if err != nil {
		return nil, err
	}
	return append(res, &Operation{Op: Add, Path: op.From, Value: removed.Clone()}), nil
}
