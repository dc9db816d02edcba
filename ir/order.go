package ir

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two nodes: 0 if a and b are equal,
// -1 if a < b and +1 if a > b.
//
// Nodes of different types order as Empty < Bool < number < String < Array
// < Map. Integers order before doubles; within each, values compare
// numerically with NaN lowest. Arrays and maps compare entry by entry, maps
// in key order, and a prefix orders first.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if ra, rb := rank(a.Type()), rank(b.Type()); ra != rb {
		return cmp.Compare(ra, rb)
	}
	return Visit(a, compareVisitor{other: b})
}

func rank(t Type) int {
	switch t {
	case EmptyType:
		return 0
	case BoolType:
		return 1
	case IntegerType:
		return 2
	case DoubleType:
		return 3
	case StringType:
		return 4
	case ArrayType:
		return 5
	case MapType:
		return 6
	}
	return 100
}

// compareVisitor compares its node with other, which has the same rank.
type compareVisitor struct {
	other *Node
}

func (c compareVisitor) Empty() int { return 0 }

func (c compareVisitor) Bool(v bool) int {
	switch {
	case v == c.other.b:
		return 0
	case !v:
		return -1
	default:
		return 1
	}
}

func (c compareVisitor) Integer(v int64) int  { return cmp.Compare(v, c.other.i) }
func (c compareVisitor) Double(v float64) int { return cmp.Compare(v, c.other.f) }
func (c compareVisitor) String(v string) int  { return strings.Compare(v, c.other.s) }

func (c compareVisitor) Map(m *Map, _ func(*Node) int) int {
	om := c.other.m
	keys, oKeys := m.Keys(), om.Keys()
	for i := range min(len(keys), len(oKeys)) {
		if r := strings.Compare(keys[i], oKeys[i]); r != 0 {
			return r
		}
		a, _ := m.Get(keys[i])
		b, _ := om.Get(oKeys[i])
		if r := Compare(a, b); r != 0 {
			return r
		}
	}
	return cmp.Compare(len(keys), len(oKeys))
}

func (c compareVisitor) Array(a *Array, _ func(*Node) int) int {
	oa := c.other.a
	for i := range min(a.Len(), oa.Len()) {
		if r := Compare(a.elems[i], oa.elems[i]); r != 0 {
			return r
		}
	}
	return cmp.Compare(a.Len(), oa.Len())
}
