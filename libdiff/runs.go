package libdiff

import (
	"unicode/utf8"

	"github.com/signadot/jsonpatch/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Kind int

const (
	Keep Kind = iota
	Delete
	Insert
)

func (k Kind) String() string {
	switch k {
	case Keep:
		return "keep"
	case Delete:
		return "delete"
	case Insert:
		return "insert"
	}
	return "<unknown kind>"
}

// Run is one step of an edit script: Count elements kept, deleted from
// the source, or inserted from the destination.
type Run struct {
	Kind  Kind
	Count int
}

// Runs aligns two element sequences and returns the edit script
// transforming from into to. Elements are mapped to runes keyed by
// their canonical signature, so the underlying text diff computes a
// longest common subsequence over deep equality. Keep runs cover
// pairwise equal elements; deletions always precede insertions at the
// same point.
func Runs(from, to []*ir.Node) []Run {
	m := map[string]rune{}
	fromRunes := mapValues(m, from)
	toRunes := mapValues(m, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	res := make([]Run, 0, len(diffs))
	for i := range diffs {
		diff := &diffs[i]
		n := utf8.RuneCountInString(diff.Text)
		if n == 0 {
			continue
		}
		switch diff.Type {
		case diffpatch.DiffEqual:
			res = append(res, Run{Keep, n})
		case diffpatch.DiffDelete:
			res = append(res, Run{Delete, n})
		case diffpatch.DiffInsert:
			res = append(res, Run{Insert, n})
		}
	}
	return res
}

func mapValues(m map[string]rune, vals []*ir.Node) []rune {
	rs := make([]rune, len(vals))
	for i, v := range vals {
		sum := signature(v)
		r, ok := m[sum]
		if !ok {
			// skip the surrogate range, which cannot survive a
			// round trip through string
			r = rune(len(m))
			if r >= 0xD800 {
				r += 0x800
			}
			m[sum] = r
		}
		rs[i] = r
	}
	return rs
}
