package ir

import "fmt"

// Value lists the Go types a node's payload can be read as. int narrows an
// Integer and float32 narrows a Double; every other type must match the tag
// exactly.
type Value interface {
	bool | int | int64 | float32 | float64 | string | *Map | *Array
}

// Settable lists the Go types Set accepts. Integral types become Integer,
// floating point types become Double.
type Settable interface {
	bool | int | int8 | int16 | int32 | int64 | uint8 | uint16 | uint32 |
		float32 | float64 | string | *Map | *Array
}

// Get returns the payload of n as a T. It fails with ErrTypeMismatch when T
// does not correspond to the tag of n.
func Get[T Value](n *Node) (T, error) {
	var res T
	if n == nil {
		return res, fmt.Errorf("%w: get from nil node", ErrNilNode)
	}
	switch p := any(&res).(type) {
	case *bool:
		if n.typ != BoolType {
			return res, mismatch("bool", n.typ)
		}
		*p = n.b
	case *int:
		if n.typ != IntegerType {
			return res, mismatch("int", n.typ)
		}
		*p = int(n.i)
	case *int64:
		if n.typ != IntegerType {
			return res, mismatch("int64", n.typ)
		}
		*p = n.i
	case *float32:
		if n.typ != DoubleType {
			return res, mismatch("float32", n.typ)
		}
		*p = float32(n.f)
	case *float64:
		if n.typ != DoubleType {
			return res, mismatch("float64", n.typ)
		}
		*p = n.f
	case *string:
		if n.typ != StringType {
			return res, mismatch("string", n.typ)
		}
		*p = n.s
	case **Map:
		if n.typ != MapType {
			return res, mismatch("map", n.typ)
		}
		*p = n.m
	case **Array:
		if n.typ != ArrayType {
			return res, mismatch("array", n.typ)
		}
		*p = n.a
	}
	return res, nil
}

// Set assigns v to n, deriving the tag from the static type of v, and
// returns n.
func Set[T Settable](n *Node, v T) *Node {
	switch x := any(v).(type) {
	case bool:
		n.SetBool(x)
	case int:
		n.SetInt(int64(x))
	case int8:
		n.SetInt(int64(x))
	case int16:
		n.SetInt(int64(x))
	case int32:
		n.SetInt(int64(x))
	case int64:
		n.SetInt(x)
	case uint8:
		n.SetInt(int64(x))
	case uint16:
		n.SetInt(int64(x))
	case uint32:
		n.SetInt(int64(x))
	case float32:
		n.SetFloat(float64(x))
	case float64:
		n.SetFloat(x)
	case string:
		n.SetString(x)
	case *Map:
		n.SetMap(x)
	case *Array:
		n.SetArray(x)
	}
	return n
}

// From returns a new node holding v.
func From[T Settable](v T) *Node {
	return Set(New(), v)
}

func (n *Node) Bool() (bool, error) {
	return Get[bool](n)
}

func (n *Node) Int() (int64, error) {
	return Get[int64](n)
}

func (n *Node) Float() (float64, error) {
	return Get[float64](n)
}

func (n *Node) Str() (string, error) {
	return Get[string](n)
}

func (n *Node) Map() (*Map, error) {
	return Get[*Map](n)
}

func (n *Node) Array() (*Array, error) {
	return Get[*Array](n)
}
