package ir

import (
	"errors"
	"math"
	"testing"
)

func TestGetSet(t *testing.T) {
	n := New()
	if n.Type() != EmptyType {
		t.Fatalf("new node has type %s", n.Type())
	}

	Set(n, true)
	if v, err := Get[bool](n); err != nil || !v {
		t.Errorf("bool: got %v, %v", v, err)
	}
	Set(n, 42)
	if v, err := Get[int](n); err != nil || v != 42 {
		t.Errorf("int: got %v, %v", v, err)
	}
	if v, err := Get[int64](n); err != nil || v != 42 {
		t.Errorf("int64: got %v, %v", v, err)
	}
	Set(n, uint8(7))
	if n.Type() != IntegerType {
		t.Errorf("uint8 stored as %s", n.Type())
	}
	Set(n, 2.5)
	if v, err := Get[float64](n); err != nil || v != 2.5 {
		t.Errorf("float64: got %v, %v", v, err)
	}
	if v, err := Get[float32](n); err != nil || v != 2.5 {
		t.Errorf("float32: got %v, %v", v, err)
	}
	Set(n, float32(0.25))
	if n.Type() != DoubleType {
		t.Errorf("float32 stored as %s", n.Type())
	}
	if v, err := Get[float32](n); err != nil || v != 0.25 {
		t.Errorf("float32 round trip: got %v, %v", v, err)
	}
	Set(n, "hello")
	if v, err := Get[string](n); err != nil || v != "hello" {
		t.Errorf("string: got %q, %v", v, err)
	}
	m := NewMap()
	Set(n, m)
	if v, err := Get[*Map](n); err != nil || v != m {
		t.Errorf("map: got %p, %v", v, err)
	}
	a := NewArray()
	Set(n, a)
	if v, err := Get[*Array](n); err != nil || v != a {
		t.Errorf("array: got %p, %v", v, err)
	}
	n.SetEmpty()
	if n.Type() != EmptyType {
		t.Errorf("SetEmpty left type %s", n.Type())
	}
}

func TestGetMismatch(t *testing.T) {
	tests := []struct {
		name string
		node *Node
		get  func(*Node) error
	}{
		{"int from string", FromString("x"), func(n *Node) error { _, err := Get[int](n); return err }},
		{"string from int", FromInt(1), func(n *Node) error { _, err := Get[string](n); return err }},
		{"double from int", FromInt(1), func(n *Node) error { _, err := Get[float64](n); return err }},
		{"int from double", FromFloat(1), func(n *Node) error { _, err := Get[int64](n); return err }},
		{"bool from empty", Empty(), func(n *Node) error { _, err := Get[bool](n); return err }},
		{"map from array", FromSlice(nil), func(n *Node) error { _, err := n.Map(); return err }},
		{"array from map", FromMap(nil), func(n *Node) error { _, err := n.Array(); return err }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := *tt.node
			err := tt.get(tt.node)
			if !errors.Is(err, ErrTypeMismatch) {
				t.Fatalf("got %v, want ErrTypeMismatch", err)
			}
			if *tt.node != before {
				t.Errorf("failed get modified node")
			}
		})
	}
}

func TestGetNil(t *testing.T) {
	if _, err := Get[int](nil); !errors.Is(err, ErrNilNode) {
		t.Errorf("got %v, want ErrNilNode", err)
	}
	var n *Node
	if n.Type() != EmptyType {
		t.Errorf("nil node type %s", n.Type())
	}
}

func TestSetReplacesPayload(t *testing.T) {
	n := FromMap(map[string]*Node{"a": FromInt(1)})
	n.SetString("x")
	if _, err := n.Map(); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("map payload survived SetString: %v", err)
	}
	if s, _ := n.Str(); s != "x" {
		t.Errorf("got %q", s)
	}
}

func TestSetNilContainers(t *testing.T) {
	n := New().SetMap(nil)
	if l, err := n.Len(); err != nil || l != 0 {
		t.Errorf("map len %d, %v", l, err)
	}
	n.SetArray(nil)
	if l, err := n.Len(); err != nil || l != 0 {
		t.Errorf("array len %d, %v", l, err)
	}
}

func TestFromMapNilEntries(t *testing.T) {
	n := FromMap(map[string]*Node{"a": nil})
	child, err := n.Key("a")
	if err != nil {
		t.Fatal(err)
	}
	if child == nil || child.Type() != EmptyType {
		t.Errorf("nil entry stored as %v", child)
	}
}

func TestTypeText(t *testing.T) {
	for _, typ := range Types() {
		d, err := typ.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Type
		if err := back.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if back != typ {
			t.Errorf("%s came back as %s", typ, back)
		}
	}
	var x Type
	if err := x.UnmarshalText([]byte("Object")); err == nil {
		t.Errorf("expected error for unknown type name")
	}
	if Type(99).String() != "<unknown type>" {
		t.Errorf("got %q", Type(99).String())
	}
}

func TestTruth(t *testing.T) {
	tests := []struct {
		node *Node
		want bool
	}{
		{nil, false},
		{Empty(), false},
		{FromBool(false), false},
		{FromBool(true), true},
		{FromInt(0), false},
		{FromInt(-1), true},
		{FromFloat(0), false},
		{FromFloat(math.NaN()), true},
		{FromString(""), false},
		{FromString("no"), true},
		{FromMap(nil), false},
		{FromMap(map[string]*Node{"a": Empty()}), true},
		{FromSlice(nil), false},
		{FromSlice([]*Node{Empty()}), true},
	}
	for i, tt := range tests {
		if got := Truth(tt.node); got != tt.want {
			t.Errorf("%d: Truth(%s) = %v", i, tt.node.Type(), got)
		}
	}
}
