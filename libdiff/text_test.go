package libdiff

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/zconf/ir"
)

func TestLines(t *testing.T) {
	from := "{\n    \"a\": 1,\n    \"b\": 2\n}"
	to := "{\n    \"a\": 1,\n    \"b\": 3\n}"
	got := Lines(from, to)
	want := []Line{
		{Equal, "{"},
		{Equal, "    \"a\": 1,"},
		{Delete, "    \"b\": 2"},
		{Insert, "    \"b\": 3"},
		{Equal, "}"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Lines mismatch (-want +got):\n%s", diff)
	}
	if !Differs(got) {
		t.Errorf("Differs = false")
	}
	if Differs(Lines(from, from)) {
		t.Errorf("identical texts differ")
	}
}

func TestWrite(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	lines := []Line{{Equal, "x"}, {Delete, "y"}, {Insert, "z"}}
	if err := Write(buf, lines, false); err != nil {
		t.Fatal(err)
	}
	want := "  x\n- y\n+ z\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestNodes(t *testing.T) {
	from := ir.NewMapBuilder().
		SetAt("keep", ir.FromInt(1)).
		SetAt("gone", ir.FromBool(true)).
		SetAt("changed", ir.FromString("a")).
		SetSub("list", ir.NewArrayBuilder().Push(ir.FromInt(1), ir.FromInt(2), ir.FromInt(3))).
		SetSub("nested", ir.NewMapBuilder().SetAt("x", ir.FromInt(1))).
		MustNode()
	to := ir.NewMapBuilder().
		SetAt("keep", ir.FromInt(1)).
		SetAt("changed", ir.FromFloat(1)).
		SetAt("new", ir.Empty()).
		SetSub("list", ir.NewArrayBuilder().Push(ir.FromInt(1), ir.FromInt(9), ir.FromInt(2), ir.FromInt(3))).
		SetSub("nested", ir.NewMapBuilder().SetAt("x", ir.FromInt(2))).
		MustNode()

	type change struct {
		Path string
		Op   Op
	}
	var got []change
	for _, c := range Nodes(from, to) {
		got = append(got, change{c.Path, c.Op})
	}
	want := []change{
		{"$.changed", Replace},
		{"$.gone", Delete},
		{"$.list[1]", Insert},
		{"$.nested.x", Replace},
		{"$.new", Insert},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Nodes mismatch (-want +got):\n%s", diff)
	}
	if len(Nodes(from, ir.DeepCopy(from))) != 0 {
		t.Errorf("copy differs from original")
	}
}

func TestNodesArrayReplace(t *testing.T) {
	from := ir.FromSlice([]*ir.Node{ir.FromString("a"), ir.FromString("b"), ir.FromString("c")})
	to := ir.FromSlice([]*ir.Node{ir.FromString("a"), ir.FromString("x"), ir.FromString("c")})
	changes := Nodes(from, to)
	if len(changes) != 1 {
		t.Fatalf("got %d changes: %+v", len(changes), changes)
	}
	c := changes[0]
	if c.Path != "$[1]" || c.Op != Replace {
		t.Errorf("got %s %s", c.Op.Prefix(), c.Path)
	}
	if s, _ := c.To.Str(); s != "x" {
		t.Errorf("replacement %q", s)
	}
}

func TestWriteChanges(t *testing.T) {
	changes := []Change{
		{Path: "$.a", Op: Insert, To: ir.FromInt(1)},
		{Path: "$.b", Op: Delete, From: ir.Empty()},
		{Path: "$.c", Op: Replace, From: ir.FromString("x"), To: ir.FromSlice([]*ir.Node{ir.FromBool(true)})},
	}
	buf := bytes.NewBuffer(nil)
	if err := WriteChanges(buf, changes, false); err != nil {
		t.Fatal(err)
	}
	want := "+ $.a: 1\n- $.b: <empty>\n~ $.c: \"x\" -> [\n        true\n    ]\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
