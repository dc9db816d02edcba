package flat

import "fmt"

type Kind int

const (
	EmptyKind Kind = iota
	BoolKind
	IntegerKind
	DoubleKind
	StringKind
	ArrayKind
	ObjectKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		EmptyKind:   "empty",
		BoolKind:    "bool",
		IntegerKind: "integer",
		DoubleKind:  "double",
		StringKind:  "string",
		ArrayKind:   "array",
		ObjectKind:  "object",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"empty":   EmptyKind,
		"bool":    BoolKind,
		"integer": IntegerKind,
		"double":  DoubleKind,
		"string":  StringKind,
		"array":   ArrayKind,
		"object":  ObjectKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}
