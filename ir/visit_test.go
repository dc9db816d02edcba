package ir

import (
	"math"
	"strings"
	"testing"
)

// countVisitor counts leaves.
type countVisitor struct{}

func (countVisitor) Empty() int         { return 1 }
func (countVisitor) Bool(bool) int      { return 1 }
func (countVisitor) Integer(int64) int  { return 1 }
func (countVisitor) Double(float64) int { return 1 }
func (countVisitor) String(string) int  { return 1 }

func (countVisitor) Map(m *Map, recurse func(*Node) int) int {
	n := 0
	for _, child := range m.All() {
		n += recurse(child)
	}
	return n
}

func (countVisitor) Array(a *Array, recurse func(*Node) int) int {
	n := 0
	for _, child := range a.All() {
		n += recurse(child)
	}
	return n
}

type typeVisitor struct{}

func (typeVisitor) Empty() string                           { return "empty" }
func (typeVisitor) Bool(bool) string                        { return "bool" }
func (typeVisitor) Integer(int64) string                    { return "int" }
func (typeVisitor) Double(float64) string                   { return "double" }
func (typeVisitor) String(string) string                    { return "string" }
func (typeVisitor) Map(*Map, func(*Node) string) string     { return "map" }
func (typeVisitor) Array(*Array, func(*Node) string) string { return "array" }

func TestVisitDispatch(t *testing.T) {
	tests := []struct {
		node *Node
		want string
	}{
		{nil, "empty"},
		{Empty(), "empty"},
		{FromBool(true), "bool"},
		{FromInt(3), "int"},
		{FromFloat(math.Inf(1)), "double"},
		{FromString(""), "string"},
		{FromMap(nil), "map"},
		{FromSlice(nil), "array"},
	}
	for _, tt := range tests {
		if got := Visit[string](tt.node, typeVisitor{}); got != tt.want {
			t.Errorf("Visit(%s) = %q, want %q", tt.node.Type(), got, tt.want)
		}
	}
}

func TestVisitRecurse(t *testing.T) {
	n := NewMapBuilder().
		SetAt("a", FromInt(1)).
		SetSub("b", NewArrayBuilder().Push(FromBool(true), Empty(), FromSlice(nil))).
		SetAt("c", FromMap(nil)).
		MustNode()
	if got := Visit[int](n, countVisitor{}); got != 3 {
		t.Errorf("counted %d leaves, want 3", got)
	}
}

// pathVisitor shows a handler that does not recurse.
type pathVisitor struct{ typeVisitor }

func (pathVisitor) Map(m *Map, _ func(*Node) string) string {
	return "{" + strings.Join(m.Keys(), ",") + "}"
}

func TestVisitNoRecurse(t *testing.T) {
	n := FromMap(map[string]*Node{"b": FromMap(map[string]*Node{"z": Empty()}), "a": Empty()})
	if got := Visit[string](n, pathVisitor{}); got != "{a,b}" {
		t.Errorf("got %q", got)
	}
}
