package ir

import "fmt"

// Visitor has one handler per node type. Visit calls exactly one of them.
// Map and Array receive the container and a recurse function bound to the
// same visitor; Visit never descends on its own, so a handler that wants
// the children must call recurse on each of them.
//
// A type missing any handler does not implement Visitor, so incomplete
// traversals are rejected at compile time.
type Visitor[R any] interface {
	Empty() R
	Bool(bool) R
	Integer(int64) R
	Double(float64) R
	String(string) R
	Map(m *Map, recurse func(*Node) R) R
	Array(a *Array, recurse func(*Node) R) R
}

// Visit dispatches n to the handler of v matching its type. A nil node is
// dispatched as Empty.
//
// This is a function so that the result type can be generic: Go methods
// cannot introduce type parameters.
func Visit[R any](n *Node, v Visitor[R]) R {
	recurse := func(child *Node) R {
		return Visit(child, v)
	}
	switch n.Type() {
	case EmptyType:
		return v.Empty()
	case BoolType:
		return v.Bool(n.b)
	case IntegerType:
		return v.Integer(n.i)
	case DoubleType:
		return v.Double(n.f)
	case StringType:
		return v.String(n.s)
	case MapType:
		return v.Map(n.m, recurse)
	case ArrayType:
		return v.Array(n.a, recurse)
	}
	panic(fmt.Sprintf("ir: unknown node type %d", n.typ))
}
