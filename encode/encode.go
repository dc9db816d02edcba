package encode

import (
	"bytes"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/signadot/zconf/ir"
)

type EncState struct {
	depth, indent int

	Color func(ir.Type, ColorAttr, string) string

	w   io.Writer
	err error
}

// Encode writes the text rendering of node to w. Nothing follows the
// closing bracket of the root: no trailing newline is written.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 4,
		w:      w,
	}
	for _, opt := range opts {
		opt(es)
	}
	return ir.Visit[error](node, (*encoder)(es))
}

// encoder is the ir.Visitor rendering nodes; Map and Array move the depth
// around their calls to recurse.
type encoder EncState

// PrettyPrint returns the text rendering of node.
//
// Scalars render as: Empty as nothing, booleans as true/false, integers in
// decimal, doubles in fixed-point notation, strings double quoted with Go
// escapes. A map renders as
//
//	{
//	    "key": value,
//	    "other": value
//	}
//
// with entries in key order and 4 spaces per depth; arrays use [ and ] and
// no keys. Empty containers render as {} and [].
func PrettyPrint(node *ir.Node) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf); err != nil {
		// writes to a bytes.Buffer do not fail
		panic(err)
	}
	return buf.String()
}

func (es *encoder) writeString(s string) {
	if es.err != nil {
		return
	}
	_, es.err = io.WriteString(es.w, s)
}

func (es *encoder) writeColor(t ir.Type, a ColorAttr, s string) {
	if es.Color != nil {
		s = es.Color(t, a, s)
	}
	es.writeString(s)
}

func (es *encoder) writeNL() {
	es.writeString("\n" + strings.Repeat(" ", es.indent*es.depth))
}

func (es *encoder) Empty() error {
	return es.err
}

func (es *encoder) Bool(v bool) error {
	es.writeColor(ir.BoolType, ValueColor, strconv.FormatBool(v))
	return es.err
}

func (es *encoder) Integer(v int64) error {
	es.writeColor(ir.IntegerType, ValueColor, strconv.FormatInt(v, 10))
	return es.err
}

func (es *encoder) Double(v float64) error {
	es.writeColor(ir.DoubleType, ValueColor, FormatDouble(v))
	return es.err
}

func (es *encoder) String(v string) error {
	es.writeColor(ir.StringType, ValueColor, strconv.Quote(v))
	return es.err
}

func (es *encoder) Map(m *ir.Map, recurse func(*ir.Node) error) error {
	n := m.Len()
	if n == 0 {
		es.writeColor(ir.MapType, SepColor, "{}")
		return es.err
	}
	es.writeColor(ir.MapType, SepColor, "{")
	es.depth++
	i := 0
	for k, child := range m.All() {
		es.writeNL()
		es.writeColor(ir.MapType, FieldColor, strconv.Quote(k))
		es.writeColor(ir.MapType, SepColor, ": ")
		if es.err != nil {
			return es.err
		}
		if err := recurse(child); err != nil {
			return err
		}
		if i < n-1 {
			es.writeColor(ir.MapType, SepColor, ",")
		}
		i++
	}
	es.depth--
	es.writeNL()
	es.writeColor(ir.MapType, SepColor, "}")
	return es.err
}

func (es *encoder) Array(a *ir.Array, recurse func(*ir.Node) error) error {
	n := a.Len()
	if n == 0 {
		es.writeColor(ir.ArrayType, SepColor, "[]")
		return es.err
	}
	es.writeColor(ir.ArrayType, SepColor, "[")
	es.depth++
	for i, child := range a.All() {
		es.writeNL()
		if es.err != nil {
			return es.err
		}
		if err := recurse(child); err != nil {
			return err
		}
		if i < n-1 {
			es.writeColor(ir.ArrayType, SepColor, ",")
		}
	}
	es.depth--
	es.writeNL()
	es.writeColor(ir.ArrayType, SepColor, "]")
	return es.err
}

// FormatDouble renders v in fixed-point notation with the fewest digits that
// read back as v. Integral values keep a ".0" so they do not read as
// integers.
func FormatDouble(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "+Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}
