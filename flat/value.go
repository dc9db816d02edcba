// Package flat defines the value exchanged with collaborators at the
// boundary of the configuration model.
//
// A Value has the same kinds as an ir.Node but plain value semantics: arrays
// and objects are Go slices and maps owned by the Value, with no notion of
// shared subtrees. The top level of a configuration is conventionally an
// object.
//
// # Usage
//
//	conf := flat.FromMap(map[string]flat.Value{
//	    "modules":      flat.FromSlice([]flat.Value{flat.FromString("gzip")}),
//	    "modules_path": flat.FromSlice([]flat.Value{flat.FromString(".")}),
//	})
//	node, err := ir.FromFlat(conf)
//
// # Related Packages
//
//   - github.com/signadot/zconf/ir - the configuration tree
//   - github.com/signadot/zconf/codec - JSON and YAML bytes to and from Values
package flat

import (
	"maps"
	"math"
	"slices"
)

type Value struct {
	Kind   Kind
	Bool   bool
	Int    int64
	Float  float64
	String string
	Array  []Value
	Object map[string]Value
}

func Null() Value {
	return Value{}
}

func FromBool(v bool) Value {
	return Value{Kind: BoolKind, Bool: v}
}

func FromInt(v int64) Value {
	return Value{Kind: IntegerKind, Int: v}
}

func FromFloat(v float64) Value {
	return Value{Kind: DoubleKind, Float: v}
}

func FromString(v string) Value {
	return Value{Kind: StringKind, String: v}
}

func FromSlice(vs []Value) Value {
	if vs == nil {
		vs = []Value{}
	}
	return Value{Kind: ArrayKind, Array: vs}
}

func FromMap(m map[string]Value) Value {
	if m == nil {
		m = map[string]Value{}
	}
	return Value{Kind: ObjectKind, Object: m}
}

// Keys returns the keys of an object in sorted order, or nil for any other
// kind.
func (v Value) Keys() []string {
	if v.Kind != ObjectKind {
		return nil
	}
	return slices.Sorted(maps.Keys(v.Object))
}

// Equal reports whether a and b are structurally equal. Object key order is
// not significant and two NaN doubles are equal.
func Equal(a, b Value) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case EmptyKind:
		return true
	case BoolKind:
		return a.Bool == b.Bool
	case IntegerKind:
		return a.Int == b.Int
	case DoubleKind:
		return a.Float == b.Float || (math.IsNaN(a.Float) && math.IsNaN(b.Float))
	case StringKind:
		return a.String == b.String
	case ArrayKind:
		return slices.EqualFunc(a.Array, b.Array, Equal)
	case ObjectKind:
		if len(a.Object) != len(b.Object) {
			return false
		}
		for k, av := range a.Object {
			bv, ok := b.Object[k]
			if !ok || !Equal(av, bv) {
				return false
			}
		}
		return true
	}
	return false
}

// Equal reports whether v and o are structurally equal. It makes Value
// usable with go-cmp.
func (v Value) Equal(o Value) bool {
	return Equal(v, o)
}
