package ir

import (
	"maps"
	"slices"
)

// Node is a configuration value. It holds nothing, a bool, an int64, a
// float64, a string, a *Map or an *Array, and its Type always names the
// payload it holds.
//
// Map and Array payloads are held by pointer and their slots are *Node, so a
// subtree may be reachable from several parents. Mutating a node through one
// of those paths is visible through all of them. Copying a Node value
// (m := *n) copies the tag and scalar payload and shares any container;
// use DeepCopy for an independent tree.
//
// Nodes are not safe for concurrent use, and trees must be acyclic.
type Node struct {
	typ Type
	b   bool
	i   int64
	f   float64
	s   string
	m   *Map
	a   *Array
}

// New returns an Empty node.
func New() *Node {
	return &Node{}
}

func Empty() *Node {
	return &Node{}
}

func FromBool(v bool) *Node {
	return New().SetBool(v)
}

func FromInt(v int64) *Node {
	return New().SetInt(v)
}

func FromFloat(v float64) *Node {
	return New().SetFloat(v)
}

func FromString(v string) *Node {
	return New().SetString(v)
}

// FromMap returns a Map node holding the entries of yMap. Nil entries are
// stored as Empty nodes.
func FromMap(yMap map[string]*Node) *Node {
	m := NewMap()
	for _, key := range slices.Sorted(maps.Keys(yMap)) {
		m.Set(key, yMap[key])
	}
	return New().SetMap(m)
}

// FromSlice returns an Array node holding the elements of ySlice. Nil
// elements are stored as Empty nodes.
func FromSlice(ySlice []*Node) *Node {
	return New().SetArray(NewArray(ySlice...))
}

// Type returns the tag of n. A nil node reads as Empty.
func (n *Node) Type() Type {
	if n == nil {
		return EmptyType
	}
	return n.typ
}

func (n *Node) SetEmpty() *Node {
	*n = Node{}
	return n
}

func (n *Node) SetBool(v bool) *Node {
	*n = Node{typ: BoolType, b: v}
	return n
}

func (n *Node) SetInt(v int64) *Node {
	*n = Node{typ: IntegerType, i: v}
	return n
}

func (n *Node) SetFloat(v float64) *Node {
	*n = Node{typ: DoubleType, f: v}
	return n
}

func (n *Node) SetString(v string) *Node {
	*n = Node{typ: StringType, s: v}
	return n
}

// SetMap makes n a Map node. A nil m gives n a fresh empty map, otherwise n
// shares m with every other holder of it.
func (n *Node) SetMap(m *Map) *Node {
	if m == nil {
		m = NewMap()
	}
	*n = Node{typ: MapType, m: m}
	return n
}

// SetArray makes n an Array node. A nil a gives n a fresh empty array,
// otherwise n shares a with every other holder of it.
func (n *Node) SetArray(a *Array) *Node {
	if a == nil {
		a = NewArray()
	}
	*n = Node{typ: ArrayType, a: a}
	return n
}

func orEmpty(n *Node) *Node {
	if n == nil {
		return Empty()
	}
	return n
}
