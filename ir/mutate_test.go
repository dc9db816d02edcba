package ir

import (
	"errors"
	"slices"
	"testing"
)

func TestPushIndex(t *testing.T) {
	arr := FromSlice(nil)
	for _, v := range []string{"a", "b"} {
		if err := arr.Push(FromString(v)); err != nil {
			t.Fatal(err)
		}
	}
	if l, _ := arr.Len(); l != 2 {
		t.Fatalf("len %d", l)
	}
	got, err := arr.Index(1)
	if err != nil {
		t.Fatal(err)
	}
	if s, _ := got.Str(); s != "b" {
		t.Errorf("index 1: %q", s)
	}
	if _, err := arr.Index(5); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("index 5: %v", err)
	}
	if _, err := arr.Index(-1); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("index -1: %v", err)
	}
}

func TestAliasing(t *testing.T) {
	child := FromInt(1)
	arr := FromSlice(nil)
	if err := arr.Push(child); err != nil {
		t.Fatal(err)
	}
	got, err := arr.Index(0)
	if err != nil {
		t.Fatal(err)
	}
	if got != child {
		t.Fatalf("Index returned a copy")
	}
	got.SetString("changed")
	if s, err := child.Str(); err != nil || s != "changed" {
		t.Errorf("mutation not visible through original: %q, %v", s, err)
	}

	// one child under two parents
	shared := FromMap(nil)
	a := FromMap(map[string]*Node{"x": shared})
	b := FromSlice([]*Node{shared})
	if err := shared.SetAt("k", FromBool(true)); err != nil {
		t.Fatal(err)
	}
	viaA, _ := a.GetPath("$.x.k")
	viaB, _ := b.GetPath("$[0].k")
	if viaA == nil || viaA != viaB {
		t.Errorf("shared child not visible through both parents")
	}
}

func TestSetAtKey(t *testing.T) {
	m := FromMap(nil)
	first := FromInt(1)
	if err := m.SetAt("a", first); err != nil {
		t.Fatal(err)
	}
	if err := m.SetAt("a", FromInt(2)); err != nil {
		t.Fatal(err)
	}
	got, err := m.Key("a")
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := got.Int(); v != 2 {
		t.Errorf("replaced value %d", v)
	}
	if v, _ := first.Int(); v != 1 {
		t.Errorf("replaced node was modified: %d", v)
	}
	if _, err := m.Key("missing"); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("missing key: %v", err)
	}
}

func TestWrongShape(t *testing.T) {
	scalar := FromString("s")
	empty := Empty()
	m := FromMap(nil)
	arr := FromSlice(nil)
	tests := []struct {
		name string
		err  error
	}{
		{"push scalar", scalar.Push(Empty())},
		{"push map", m.Push(Empty())},
		{"set_at array", arr.SetAt("k", Empty())},
		{"push empty", empty.Push(Empty())},
		{"set_at empty", empty.SetAt("k", Empty())},
		{"index map", func() error { _, err := m.Index(0); return err }()},
		{"key array", func() error { _, err := arr.Key("k"); return err }()},
		{"len scalar", func() error { _, err := scalar.Len(); return err }()},
	}
	for _, tt := range tests {
		if !errors.Is(tt.err, ErrWrongShape) {
			t.Errorf("%s: got %v, want ErrWrongShape", tt.name, tt.err)
		}
	}
	if s, _ := scalar.Str(); s != "s" {
		t.Errorf("scalar modified by failed push")
	}
	if empty.Type() != EmptyType {
		t.Errorf("empty node became %s after failed mutation", empty.Type())
	}
}

func TestNilChild(t *testing.T) {
	if err := FromSlice(nil).Push(nil); !errors.Is(err, ErrNilNode) {
		t.Errorf("push nil: %v", err)
	}
	if err := FromMap(nil).SetAt("k", nil); !errors.Is(err, ErrNilNode) {
		t.Errorf("set_at nil: %v", err)
	}
}

func TestMapKeysSorted(t *testing.T) {
	m := NewMap()
	for _, k := range []string{"c", "a", "b"} {
		m.Set(k, FromString(k))
	}
	if got := m.Keys(); !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Errorf("keys %v", got)
	}
	var seen []string
	for k := range m.All() {
		seen = append(seen, k)
	}
	if !slices.Equal(seen, []string{"a", "b", "c"}) {
		t.Errorf("iteration order %v", seen)
	}
	m.Delete("b")
	if _, ok := m.Get("b"); ok {
		t.Errorf("b survived delete")
	}
}

func TestArraySet(t *testing.T) {
	a := NewArray(FromInt(1))
	if err := a.Set(0, FromInt(2)); err != nil {
		t.Fatal(err)
	}
	if err := a.Set(1, FromInt(3)); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("got %v", err)
	}
}

func TestBuilder(t *testing.T) {
	n, err := NewMapBuilder().
		SetAt("name", FromString("svc")).
		SetSub("ports", NewArrayBuilder().Push(FromInt(80), FromInt(443))).
		Node()
	if err != nil {
		t.Fatal(err)
	}
	port, err := n.GetPath("$.ports[1]")
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := port.Int(); v != 443 {
		t.Errorf("port %d", v)
	}

	_, err = NewArrayBuilder().
		SetAt("k", Empty()).
		Push(FromInt(1)).
		Node()
	if !errors.Is(err, ErrWrongShape) {
		t.Errorf("builder error: %v", err)
	}

	_, err = NewMapBuilder().SetSub("x", Build(FromInt(1)).Push(Empty())).Node()
	if !errors.Is(err, ErrWrongShape) {
		t.Errorf("sub builder error: %v", err)
	}
}

func TestMustNodePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic")
		}
	}()
	Build(Empty()).Push(Empty()).MustNode()
}
