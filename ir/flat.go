package ir

import (
	"fmt"

	"github.com/signadot/zconf/flat"
)

// DataKey is the key under which ToFlat stores a root that is not a Map.
const DataKey = "data"

// ToFlat converts n to a boundary value. A Map root becomes the object
// itself. Any other root, Array included, is wrapped as {"data": value};
// that wrapping is not undone by FromFlat, so only Map roots survive a
// ToFlat/FromFlat round trip unchanged.
//
// The boundary value has no sharing: a subtree reachable through several
// parents is converted once per parent.
func (n *Node) ToFlat() flat.Value {
	v := Visit[flat.Value](n, flatVisitor{})
	if n.Type() == MapType {
		return v
	}
	return flat.FromMap(map[string]flat.Value{DataKey: v})
}

// FromFlat builds a fresh tree from an object boundary value. The root is a
// Map node with one entry per object key. Values of any other kind fail
// with ErrWrongShape.
func FromFlat(v flat.Value) (*Node, error) {
	if v.Kind != flat.ObjectKind {
		return nil, fmt.Errorf("%w: boundary value must be an object, got %s", ErrWrongShape, v.Kind)
	}
	return fromFlat(v), nil
}

func fromFlat(v flat.Value) *Node {
	switch v.Kind {
	case flat.BoolKind:
		return FromBool(v.Bool)
	case flat.IntegerKind:
		return FromInt(v.Int)
	case flat.DoubleKind:
		return FromFloat(v.Float)
	case flat.StringKind:
		return FromString(v.String)
	case flat.ArrayKind:
		a := &Array{elems: make([]*Node, 0, len(v.Array))}
		for i := range v.Array {
			a.Append(fromFlat(v.Array[i]))
		}
		return New().SetArray(a)
	case flat.ObjectKind:
		m := NewMap()
		for k, ov := range v.Object {
			m.Set(k, fromFlat(ov))
		}
		return New().SetMap(m)
	default:
		return Empty()
	}
}

type flatVisitor struct{}

func (flatVisitor) Empty() flat.Value           { return flat.Null() }
func (flatVisitor) Bool(v bool) flat.Value      { return flat.FromBool(v) }
func (flatVisitor) Integer(v int64) flat.Value  { return flat.FromInt(v) }
func (flatVisitor) Double(v float64) flat.Value { return flat.FromFloat(v) }
func (flatVisitor) String(v string) flat.Value  { return flat.FromString(v) }

func (flatVisitor) Map(m *Map, recurse func(*Node) flat.Value) flat.Value {
	res := make(map[string]flat.Value, m.Len())
	for k, child := range m.All() {
		res[k] = recurse(child)
	}
	return flat.FromMap(res)
}

func (flatVisitor) Array(a *Array, recurse func(*Node) flat.Value) flat.Value {
	res := make([]flat.Value, 0, a.Len())
	for _, child := range a.All() {
		res = append(res, recurse(child))
	}
	return flat.FromSlice(res)
}
