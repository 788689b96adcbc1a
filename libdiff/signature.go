package libdiff

import (
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/signadot/jsonpatch/ir"
)

// signature renders a node in a canonical form: two nodes have the same
// signature exactly when ir.Equal holds. Object fields are sorted,
// integral floats take the integer form, and strings are quoted so
// nested structure cannot collide.
func signature(node *ir.Node) string {
	var b strings.Builder
	writeSignature(&b, node)
	return b.String()
}

func writeSignature(b *strings.Builder, node *ir.Node) {
	switch node.Type {
	case ir.NullType:
		b.WriteString("z")
	case ir.BoolType:
		b.WriteString("b:")
		b.WriteString(strconv.FormatBool(node.Bool))
	case ir.StringType:
		b.WriteString("s:")
		b.WriteString(strconv.Quote(node.String))
	case ir.NumberType:
		writeNumberSignature(b, node)
	case ir.ArrayType:
		b.WriteString("a[")
		for i, v := range node.Values {
			if i > 0 {
				b.WriteByte(',')
			}
			writeSignature(b, v)
		}
		b.WriteByte(']')
	case ir.ObjectType:
		idx := make([]int, len(node.Fields))
		for i := range idx {
			idx[i] = i
		}
		slices.SortFunc(idx, func(a, b int) int {
			return strings.Compare(node.Fields[a], node.Fields[b])
		})
		b.WriteString("o{")
		for i, fi := range idx {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Quote(node.Fields[fi]))
			b.WriteByte(':')
			writeSignature(b, node.Values[fi])
		}
		b.WriteByte('}')
	}
}

func writeNumberSignature(b *strings.Builder, node *ir.Node) {
	b.WriteString("n:")
	switch {
	case node.Int64 != nil:
		b.WriteString("i:")
		b.WriteString(strconv.FormatInt(*node.Int64, 10))
	case node.Float64 != nil:
		f := *node.Float64
		if f == math.Trunc(f) && f >= -float64(1<<63) && f < float64(1<<63) {
			b.WriteString("i:")
			b.WriteString(strconv.FormatInt(int64(f), 10))
			return
		}
		b.WriteString("f:")
		b.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
	default:
		b.WriteString("r:")
		b.WriteString(node.Number)
	}
}

