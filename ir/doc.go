// Package ir provides the in-memory representation of configuration values.
//
// # Overview
//
// A configuration is a tree of *Node. Each node is a tagged union holding one
// of:
//
//   - EmptyType: no value
//   - BoolType: bool
//   - IntegerType: int64
//   - DoubleType: float64
//   - StringType: string
//   - MapType: *Map, string keys to child nodes, iterated in key order
//   - ArrayType: *Array, an ordered list of child nodes
//
// The tag and payload are only changed together, through the setters, so a
// node never holds a payload that disagrees with its Type.
//
// # Creating Nodes
//
//	node := ir.FromString("hello")
//	num := ir.From(42)
//	conf := ir.NewMapBuilder().
//	    SetAt("name", ir.FromString("zia")).
//	    SetSub("ports", ir.NewArrayBuilder().Push(ir.FromInt(80), ir.FromInt(443))).
//	    MustNode()
//
// # Reading Nodes
//
// Get reads a payload as a Go type and fails with ErrTypeMismatch when the
// type does not correspond to the tag. int reads an Integer and float32
// reads a Double, narrowing the stored value.
//
//	port, err := ir.Get[int](node)
//	child, err := conf.Key("name")   // ErrWrongShape, ErrKeyNotFound
//	elt, err := ports.Index(0)       // ErrWrongShape, ErrOutOfRange
//
// # Sharing
//
// Containers hold *Node, so one child may be stored under several parents:
//
//	shared := ir.FromInt(1)
//	a.Push(shared)
//	b.SetAt("x", shared)
//	shared.SetInt(2) // visible through a and b
//
// This is intended: a subtree can be built once and referenced from many
// places. Copying a Node value shares its container as well. DeepCopy
// produces an independent tree. Nothing in this package synchronizes
// access; callers sharing nodes between goroutines must add their own
// locking. Trees must not contain cycles.
//
// # Traversal
//
// Visit dispatches a node to one method of a Visitor[R]. Map and Array
// handlers receive a recurse function and decide themselves whether and how
// to descend. Equal, Compare, DeepCopy, Hash, ToFlat and the printer in
// package encode are all visitors.
//
// # Paths
//
// GetPath addresses a node below a root with paths such as $.a.b[0] or
// $.'dotted.key'. ParsePath reports malformed paths with ErrPath.
//
// # Boundary Values
//
// ToFlat and FromFlat convert to and from flat.Value, the value exchanged
// with collaborators. Non-Map roots are wrapped under DataKey by ToFlat.
//
// # Related Packages
//
//   - github.com/signadot/zconf/flat - boundary values
//   - github.com/signadot/zconf/encode - text rendering
package ir
