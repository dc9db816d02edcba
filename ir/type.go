package ir

import "fmt"

// Type is the tag of a Node. The set is closed.
type Type int

const (
	EmptyType Type = iota
	BoolType
	IntegerType
	DoubleType
	StringType
	MapType
	ArrayType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		EmptyType:   "Empty",
		BoolType:    "Bool",
		IntegerType: "Integer",
		DoubleType:  "Double",
		StringType:  "String",
		MapType:     "Map",
		ArrayType:   "Array",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Empty":   EmptyType,
		"Bool":    BoolType,
		"Integer": IntegerType,
		"Double":  DoubleType,
		"String":  StringType,
		"Map":     MapType,
		"Array":   ArrayType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		EmptyType,
		BoolType,
		IntegerType,
		DoubleType,
		StringType,
		MapType,
		ArrayType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case MapType, ArrayType:
		return false
	default:
		return true
	}
}
