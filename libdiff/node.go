package libdiff

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/zconf/encode"
	"github.com/signadot/zconf/ir"
)

// Change is one structural difference between two trees. From is nil for
// insertions and To is nil for deletions.
type Change struct {
	Path     string
	Op       Op
	From, To *ir.Node
}

// Nodes returns the structural differences turning from into to, in path
// order. Maps are compared key by key. Arrays are aligned on a summary of
// their elements, so an insertion in the middle of an array is reported as
// one insertion; aligned containers are compared recursively.
func Nodes(from, to *ir.Node) []Change {
	return diffNode(nil, "$", from, to)
}

func diffNode(res []Change, path string, from, to *ir.Node) []Change {
	if ir.Equal(from, to) {
		return res
	}
	if from.Type() != to.Type() {
		return append(res, Change{Path: path, Op: Replace, From: from, To: to})
	}
	switch from.Type() {
	case ir.MapType:
		return diffMap(res, path, from, to)
	case ir.ArrayType:
		return diffArray(res, path, from, to)
	default:
		return append(res, Change{Path: path, Op: Replace, From: from, To: to})
	}
}

func diffMap(res []Change, path string, from, to *ir.Node) []Change {
	fm, _ := from.Map()
	tm, _ := to.Map()
	fKeys, tKeys := fm.Keys(), tm.Keys()
	i, j := 0, 0
	for i < len(fKeys) || j < len(tKeys) {
		switch {
		case j == len(tKeys) || (i < len(fKeys) && fKeys[i] < tKeys[j]):
			f, _ := fm.Get(fKeys[i])
			res = append(res, Change{Path: ir.FieldPath(path, fKeys[i]), Op: Delete, From: f})
			i++
		case i == len(fKeys) || tKeys[j] < fKeys[i]:
			t, _ := tm.Get(tKeys[j])
			res = append(res, Change{Path: ir.FieldPath(path, tKeys[j]), Op: Insert, To: t})
			j++
		default:
			f, _ := fm.Get(fKeys[i])
			t, _ := tm.Get(tKeys[j])
			res = diffNode(res, ir.FieldPath(path, fKeys[i]), f, t)
			i++
			j++
		}
	}
	return res
}

// diffArray diffs the sequences of element summaries. Equal summaries are
// compared recursively and a deletion directly followed by an insertion
// becomes a replacement.
func diffArray(res []Change, path string, from, to *ir.Node) []Change {
	fa, _ := from.Array()
	ta, _ := to.Array()
	m := map[string]rune{}
	fromRunes := summaries(m, fa)
	toRunes := summaries(m, ta)
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)

	// res[del:del+nDel] are deletions not yet paired with an insertion
	fi, ti, del, nDel := 0, 0, 0, 0
	for _, d := range diffs {
		n := len([]rune(d.Text))
		switch d.Type {
		case diffpatch.DiffDelete:
			if nDel == 0 {
				del = len(res)
			}
			nDel += n
			for range n {
				f, _ := fa.At(fi)
				res = append(res, Change{Path: ir.IndexPath(path, fi), Op: Delete, From: f})
				fi++
			}
		case diffpatch.DiffInsert:
			for range n {
				t, _ := ta.At(ti)
				if nDel > 0 {
					res[del].Op = Replace
					res[del].To = t
					del++
					nDel--
				} else {
					res = append(res, Change{Path: ir.IndexPath(path, ti), Op: Insert, To: t})
				}
				ti++
			}
			nDel = 0
		case diffpatch.DiffEqual:
			nDel = 0
			for range n {
				f, _ := fa.At(fi)
				t, _ := ta.At(ti)
				res = diffNode(res, ir.IndexPath(path, fi), f, t)
				fi++
				ti++
			}
		}
	}
	return res
}

func summaries(m map[string]rune, a *ir.Array) []rune {
	rs := make([]rune, 0, a.Len())
	for _, v := range a.All() {
		sum := summary(v)
		r, ok := m[sum]
		if !ok {
			r = rune(len(m))
			m[sum] = r
		}
		rs = append(rs, r)
	}
	return rs
}

// summary identifies scalars by value and containers by type only, so that
// changed containers align and are diffed recursively.
func summary(n *ir.Node) string {
	switch n.Type() {
	case ir.BoolType:
		v, _ := n.Bool()
		return "b-" + strconv.FormatBool(v)
	case ir.IntegerType:
		v, _ := n.Int()
		return "i-" + strconv.FormatInt(v, 10)
	case ir.DoubleType:
		v, _ := n.Float()
		return "f-" + encode.FormatDouble(v)
	case ir.StringType:
		v, _ := n.Str()
		return "s-" + v
	default:
		return n.Type().String()
	}
}

// WriteChanges writes one line per change: the op prefix, the path and the
// rendered values. Container values are rendered on following lines.
func WriteChanges(w io.Writer, changes []Change, colors bool) error {
	for _, c := range changes {
		var s string
		switch c.Op {
		case Insert:
			s = fmt.Sprintf("%s%s: %s", c.Op.Prefix(), c.Path, render(c.To))
		case Delete:
			s = fmt.Sprintf("%s%s: %s", c.Op.Prefix(), c.Path, render(c.From))
		default:
			s = fmt.Sprintf("%s%s: %s -> %s", c.Op.Prefix(), c.Path, render(c.From), render(c.To))
		}
		if colors {
			switch c.Op {
			case Insert:
				s = color.GreenString("%s", s)
			case Delete:
				s = color.RedString("%s", s)
			case Replace:
				s = color.YellowString("%s", s)
			}
		}
		if _, err := io.WriteString(w, s+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func render(n *ir.Node) string {
	if n.Type() == ir.EmptyType {
		return "<empty>"
	}
	return strings.ReplaceAll(encode.PrettyPrint(n), "\n", "\n    ")
}
