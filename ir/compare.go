package ir

import "math"

// Equal reports whether a and b hold structurally equal values. Map entries
// are compared by key, arrays element by element. Two NaN doubles are
// equal.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	return Visit(a, equalVisitor{other: b})
}

type equalVisitor struct {
	other *Node
}

func (e equalVisitor) Empty() bool {
	return e.other.Type() == EmptyType
}

func (e equalVisitor) Bool(v bool) bool {
	return e.other.Type() == BoolType && e.other.b == v
}

func (e equalVisitor) Integer(v int64) bool {
	return e.other.Type() == IntegerType && e.other.i == v
}

func (e equalVisitor) Double(v float64) bool {
	if e.other.Type() != DoubleType {
		return false
	}
	o := e.other.f
	return o == v || (math.IsNaN(o) && math.IsNaN(v))
}

func (e equalVisitor) String(v string) bool {
	return e.other.Type() == StringType && e.other.s == v
}

// pairs of children are compared with Equal rather than recurse, which
// only carries one node.
func (e equalVisitor) Map(m *Map, _ func(*Node) bool) bool {
	if e.other.Type() != MapType {
		return false
	}
	om := e.other.m
	if m == om {
		return true
	}
	if m.Len() != om.Len() {
		return false
	}
	for k, child := range m.All() {
		oChild, ok := om.Get(k)
		if !ok || !Equal(child, oChild) {
			return false
		}
	}
	return true
}

func (e equalVisitor) Array(a *Array, _ func(*Node) bool) bool {
	if e.other.Type() != ArrayType {
		return false
	}
	oa := e.other.a
	if a == oa {
		return true
	}
	if a.Len() != oa.Len() {
		return false
	}
	for i, child := range a.All() {
		if !Equal(child, oa.elems[i]) {
			return false
		}
	}
	return true
}

// DeepCopy returns a tree equal to n that shares no node or container with
// it. A subtree reachable through several parents in n is copied once per
// parent.
func DeepCopy(n *Node) *Node {
	return Visit[*Node](n, copyVisitor{})
}

type copyVisitor struct{}

func (copyVisitor) Empty() *Node           { return Empty() }
func (copyVisitor) Bool(v bool) *Node      { return FromBool(v) }
func (copyVisitor) Integer(v int64) *Node  { return FromInt(v) }
func (copyVisitor) Double(v float64) *Node { return FromFloat(v) }
func (copyVisitor) String(v string) *Node  { return FromString(v) }

func (copyVisitor) Map(m *Map, recurse func(*Node) *Node) *Node {
	res := NewMap()
	for k, child := range m.All() {
		res.Set(k, recurse(child))
	}
	return New().SetMap(res)
}

func (copyVisitor) Array(a *Array, recurse func(*Node) *Node) *Node {
	res := &Array{elems: make([]*Node, 0, a.Len())}
	for _, child := range a.All() {
		res.Append(recurse(child))
	}
	return New().SetArray(res)
}
