package jsonpatch

import (
	"fmt"
	"strconv"

	"github.com/signadot/jsonpatch/debug"
	"github.com/signadot/jsonpatch/ir"
	"github.com/signadot/jsonpatch/libdiff"
	"github.com/signadot/jsonpatch/pointer"
)

type DiffConfig struct {
	moves   bool
	decoder Decoder
	encoder Encoder
}
type DiffOpt func(*DiffConfig)

// DiffMoves turns on move recognition: a remove and an adjacent add of
// an equal value under the same parent merge into a single move
// operation. The merged patch produces the same document; recognition
// is best effort.
func DiffMoves(v bool) DiffOpt {
	return func(c *DiffConfig) { c.moves = v }
}

// DiffDecoder sets the document decoder used by DiffBytes.
func DiffDecoder(d Decoder) DiffOpt {
	return func(c *DiffConfig) { c.decoder = d }
}

// DiffEncoder sets the encoder DiffBytes renders the patch document
// with.
func DiffEncoder(e Encoder) DiffOpt {
	return func(c *DiffConfig) { c.encoder = e }
}

func newDiffConfig(opts []DiffOpt) *DiffConfig {
	cfg := &DiffConfig{
		decoder: ir.FromJSON,
		encoder: ir.ToJSON,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Diff produces a patch transforming src into dst: applying the result
// to src with [Apply] yields a document deep-equal to dst. If the
// documents are equal, Diff returns an empty patch.
//
//   - if the types of src and dst differ, or both are scalars with
//     different values, the result replaces the value at the current
//     address (a root-level change replaces at the empty address)
//
//   - for ObjectType, fields only in src are removed, fields only in
//     dst are added, and fields in both are diffed recursively; removes
//     and recursion follow src's field order, adds follow dst's
//
//   - for ArrayType, an edit script over deep element equality is
//     translated into operations whose indices account for the
//     operations emitted before them; a deleted element paired with an
//     inserted one at the same position becomes a replace, or a
//     recursive diff when both are containers of the same type
//
// Operation values are deep copies, so the patch does not alias dst.
// With [DiffMoves], paired remove/add operations of equal values merge
// into moves.
func Diff(src, dst *ir.Node, opts ...DiffOpt) Patch {
	cfg := newDiffConfig(opts)
	acc := &diffAcc{}
	doDiff(acc, pointer.Pointer{}, src, dst)
	if !cfg.moves || len(acc.ops) < 2 {
		return acc.ops
	}
	return movesPass(src, dst, acc)
}

// DiffBytes decodes two documents from their textual forms and returns
// the encoded patch transforming the first into the second. The
// document codec defaults to JSON; see DiffDecoder.
func DiffBytes(src, dst []byte, opts ...DiffOpt) ([]byte, error) {
	cfg := newDiffConfig(opts)
	a, err := cfg.decoder(src)
	if err != nil {
		return nil, fmt.Errorf("cannot decode source document: %w", err)
	}
	b, err := cfg.decoder(dst)
	if err != nil {
		return nil, fmt.Errorf("cannot decode destination document: %w", err)
	}
	return cfg.encoder(Diff(a, b, opts...).Node())
}

// diffAcc accumulates operations; removed runs parallel to ops holding
// the value each remove deletes, which move recognition needs.
type diffAcc struct {
	ops     Patch
	removed []*ir.Node
}

func (acc *diffAcc) add(ptr pointer.Pointer, val *ir.Node) {
	acc.ops = append(acc.ops, &Operation{Op: Add, Path: ptr, Value: val.Clone()})
	acc.removed = append(acc.removed, nil)
}

func (acc *diffAcc) remove(ptr pointer.Pointer, old *ir.Node) {
	acc.ops = append(acc.ops, &Operation{Op: Remove, Path: ptr})
	acc.removed = append(acc.removed, old)
}

func (acc *diffAcc) replace(ptr pointer.Pointer, val *ir.Node) {
	acc.ops = append(acc.ops, &Operation{Op: Replace, Path: ptr, Value: val.Clone()})
	acc.removed = append(acc.removed, nil)
}

func doDiff(acc *diffAcc, prefix pointer.Pointer, src, dst *ir.Node) {
	if debug.Diff() {
		debug.Logf("diff %s and %s at %q\n", src.Type, dst.Type, prefix.String())
	}
	if src.Type != dst.Type {
		acc.replace(prefix, dst)
		return
	}
	switch src.Type {
	case ir.ObjectType:
		diffObject(acc, prefix, src, dst)
	case ir.ArrayType:
		diffArray(acc, prefix, src, dst)
	default:
		if !ir.Equal(src, dst) {
			acc.replace(prefix, dst)
		}
	}
}

func diffObject(acc *diffAcc, prefix pointer.Pointer, src, dst *ir.Node) {
	for i, f := range src.Fields {
		dv := ir.Get(dst, f)
		if dv == nil {
			acc.remove(prefix.Child(f), src.Values[i])
			continue
		}
		doDiff(acc, prefix.Child(f), src.Values[i], dv)
	}
	for i, f := range dst.Fields {
		if src.IndexOf(f) < 0 {
			acc.add(prefix.Child(f), dst.Values[i])
		}
	}
}

// diffArray walks the edit script left to right, tracking the index the
// next surviving element will have once the operations emitted so far
// are applied. Replaces and recursion leave it in step; removes keep it
// still while adds advance it.
func diffArray(acc *diffAcc, prefix pointer.Pointer, src, dst *ir.Node) {
	runs := libdiff.Runs(src.Values, dst.Values)
	fi, ti, pos := 0, 0, 0
	for i := 0; i < len(runs); i++ {
		run := runs[i]
		switch run.Kind {
		case libdiff.Keep:
			fi += run.Count
			ti += run.Count
			pos += run.Count
		case libdiff.Insert:
			for n := 0; n < run.Count; n++ {
				acc.add(prefix.Child(strconv.Itoa(pos)), dst.Values[ti])
				ti++
				pos++
			}
		case libdiff.Delete:
			dels := run.Count
			ins := 0
			if i+1 < len(runs) && runs[i+1].Kind == libdiff.Insert {
				ins = runs[i+1].Count
				i++
			}
			pairs := min(dels, ins)
			for n := 0; n < pairs; n++ {
				s, d := src.Values[fi], dst.Values[ti]
				if s.Type == d.Type && !s.Type.IsLeaf() {
					doDiff(acc, prefix.Child(strconv.Itoa(pos)), s, d)
				} else {
					acc.replace(prefix.Child(strconv.Itoa(pos)), d)
				}
				fi++
				ti++
				pos++
			}
			for n := pairs; n < dels; n++ {
				acc.remove(prefix.Child(strconv.Itoa(pos)), src.Values[fi])
				fi++
			}
			for n := pairs; n < ins; n++ {
				acc.add(prefix.Child(strconv.Itoa(pos)), dst.Values[ti])
				ti++
				pos++
			}
		}
	}
}

// movesPass merges adjacent remove/add pairs into moves and verifies
// the result still produces dst, falling back to the unmerged patch
// when it does not.
func movesPass(src, dst *ir.Node, acc *diffAcc) Patch {
	res := make(Patch, 0, len(acc.ops))
	for i := 0; i < len(acc.ops); i++ {
		if i+1 < len(acc.ops) {
			if mv := mergeMove(acc.ops[i], acc.removed[i], acc.ops[i+1], acc.removed[i+1]); mv != nil {
				res = append(res, mv)
				i++
				continue
			}
		}
		res = append(res, acc.ops[i])
	}
	if len(res) == len(acc.ops) {
		return acc.ops
	}
	got, err := Apply(src, res)
	if err != nil || !ir.Equal(got, dst) {
		return acc.ops
	}
	return res
}

func mergeMove(a *Operation, removedA *ir.Node, b *Operation, removedB *ir.Node) *Operation {
	if !sameParent(a.Path, b.Path) || a.Path.Equal(b.Path) {
		return nil
	}
	if a.Op == Remove && b.Op == Add && removedA != nil && ir.Equal(removedA, b.Value) {
		// A move is exactly a remove followed by an add.
		return &Operation{Op: Move, From: a.Path, Path: b.Path}
	}
	if a.Op == Add && b.Op == Remove && removedB != nil && ir.Equal(removedB, a.Value) {
		from, path := b.Path, a.Path
		p, errP := pointer.Index(a.Path[len(a.Path)-1])
		q, errQ := pointer.Index(b.Path[len(b.Path)-1])
		switch {
		case errP == nil && errQ == nil:
			// The earlier add shifted array indexes at or past its own.
			parent := a.Path[:len(a.Path)-1]
			if q > p {
				from = parent.Child(strconv.Itoa(q - 1))
			} else {
				path = parent.Child(strconv.Itoa(p - 1))
			}
		case errP != nil && errQ != nil:
			// Object fields do not shift.
		default:
			return nil
		}
		if from.Equal(path) {
			return nil
		}
		return &Operation{Op: Move, From: from, Path: path}
	}
	return nil
}

func sameParent(a, b pointer.Pointer) bool {
	if len(a) != len(b) || len(a) == 0 {
		return false
	}
	return a[:len(a)-1].Equal(b[:len(b)-1])
}
