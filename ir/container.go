package ir

import (
	"fmt"
	"iter"
	"maps"
	"slices"
)

// Map is the payload of a Map node: unique string keys, each referring to
// a *Node. Iteration is in sorted key order. The zero value is an empty map
// ready to use.
type Map struct {
	entries map[string]*Node
}

func NewMap() *Map {
	return &Map{entries: map[string]*Node{}}
}

func (m *Map) Len() int {
	return len(m.entries)
}

func (m *Map) Get(key string) (*Node, bool) {
	n, ok := m.entries[key]
	return n, ok
}

// Set associates key with n, replacing any previous association. The node
// previously stored under key is left untouched. A nil n is stored as an
// Empty node.
func (m *Map) Set(key string, n *Node) {
	if m.entries == nil {
		m.entries = map[string]*Node{}
	}
	m.entries[key] = orEmpty(n)
}

func (m *Map) Delete(key string) {
	delete(m.entries, key)
}

func (m *Map) Keys() []string {
	return slices.Sorted(maps.Keys(m.entries))
}

func (m *Map) All() iter.Seq2[string, *Node] {
	return func(yield func(string, *Node) bool) {
		for _, k := range m.Keys() {
			if !yield(k, m.entries[k]) {
				return
			}
		}
	}
}

// Array is the payload of an Array node.
type Array struct {
	elems []*Node
}

// NewArray returns an array holding elems. Nil elements are stored as
// Empty nodes.
func NewArray(elems ...*Node) *Array {
	a := &Array{elems: make([]*Node, 0, len(elems))}
	a.Append(elems...)
	return a
}

func (a *Array) Len() int {
	return len(a.elems)
}

func (a *Array) At(i int) (*Node, error) {
	if i < 0 || i >= len(a.elems) {
		return nil, fmt.Errorf("%w: index %d (len %d)", ErrOutOfRange, i, len(a.elems))
	}
	return a.elems[i], nil
}

func (a *Array) Append(ns ...*Node) {
	for _, n := range ns {
		a.elems = append(a.elems, orEmpty(n))
	}
}

// Set replaces the element at index i.
func (a *Array) Set(i int, n *Node) error {
	if i < 0 || i >= len(a.elems) {
		return fmt.Errorf("%w: index %d (len %d)", ErrOutOfRange, i, len(a.elems))
	}
	a.elems[i] = orEmpty(n)
	return nil
}

func (a *Array) All() iter.Seq2[int, *Node] {
	return slices.All(a.elems)
}
