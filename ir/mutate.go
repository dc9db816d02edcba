package ir

import "fmt"

// Push appends child to the array held by n.
func (n *Node) Push(child *Node) error {
	if n.Type() != ArrayType {
		return wrongShape("push", ArrayType, n.Type())
	}
	if child == nil {
		return fmt.Errorf("%w: push", ErrNilNode)
	}
	n.a.Append(child)
	return nil
}

// SetAt associates key with child in the map held by n. An existing
// association is replaced; the node it referred to is not modified.
func (n *Node) SetAt(key string, child *Node) error {
	if n.Type() != MapType {
		return wrongShape("set_at", MapType, n.Type())
	}
	if child == nil {
		return fmt.Errorf("%w: set_at %q", ErrNilNode, key)
	}
	n.m.Set(key, child)
	return nil
}

// Index returns the child at position i of the array held by n. The result
// is the stored node itself, not a copy.
func (n *Node) Index(i int) (*Node, error) {
	if n.Type() != ArrayType {
		return nil, wrongShape("index", ArrayType, n.Type())
	}
	return n.a.At(i)
}

// Key returns the child stored under key in the map held by n. The result
// is the stored node itself, not a copy.
func (n *Node) Key(key string) (*Node, error) {
	if n.Type() != MapType {
		return nil, wrongShape("key", MapType, n.Type())
	}
	child, ok := n.m.Get(key)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}
	return child, nil
}

// Len returns the number of children of a Map or Array node.
func (n *Node) Len() (int, error) {
	switch n.Type() {
	case MapType:
		return n.m.Len(), nil
	case ArrayType:
		return n.a.Len(), nil
	default:
		return 0, fmt.Errorf("%w: len of %s node", ErrWrongShape, n.Type())
	}
}

// Builder chains construction calls on a node. The first failing call is
// recorded and every later call is a no-op.
type Builder struct {
	node *Node
	err  error
}

func Build(n *Node) *Builder {
	return &Builder{node: n}
}

// NewMapBuilder starts a builder on a fresh empty Map node.
func NewMapBuilder() *Builder {
	return Build(New().SetMap(nil))
}

// NewArrayBuilder starts a builder on a fresh empty Array node.
func NewArrayBuilder() *Builder {
	return Build(New().SetArray(nil))
}

func (b *Builder) SetAt(key string, child *Node) *Builder {
	if b.err != nil {
		return b
	}
	b.err = b.node.SetAt(key, child)
	return b
}

func (b *Builder) Push(children ...*Node) *Builder {
	for _, child := range children {
		if b.err != nil {
			return b
		}
		b.err = b.node.Push(child)
	}
	return b
}

// SetSub stores the result of sub under key, or records its error.
func (b *Builder) SetSub(key string, sub *Builder) *Builder {
	if b.err != nil {
		return b
	}
	child, err := sub.Node()
	if err != nil {
		b.err = fmt.Errorf("%q: %w", key, err)
		return b
	}
	return b.SetAt(key, child)
}

// PushSub appends the result of sub, or records its error.
func (b *Builder) PushSub(sub *Builder) *Builder {
	if b.err != nil {
		return b
	}
	child, err := sub.Node()
	if err != nil {
		b.err = err
		return b
	}
	return b.Push(child)
}

func (b *Builder) Node() (*Node, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.node, nil
}

func (b *Builder) MustNode() *Node {
	n, err := b.Node()
	if err != nil {
		panic(err)
	}
	return n
}
