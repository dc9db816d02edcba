package ir

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Path addresses a node from a root: "$" is the root, ".field" or
// ".'quoted.field'" selects a map entry and "[i]" an array element.
type Path struct {
	Index *int
	Field *string
	Next  *Path
}

func (p *Path) String() string {
	return pathPrefix(p, nil)
}

func writeFrag(buf *bytes.Buffer, x *Path) {
	switch {
	case x.Field != nil:
		buf.WriteString("." + pathString(*x.Field))
	case x.Index != nil:
		fmt.Fprintf(buf, "[%d]", *x.Index)
	}
}

func ParsePath(p string) (*Path, error) {
	if len(p) == 0 || p[0] != '$' {
		return nil, fmt.Errorf("%w: path %q should start with '$'", ErrPath, p)
	}
	root := &Path{}
	if len(p) == 1 {
		return root, nil
	}
	if err := parseFrag(p[1:], root); err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrPath, p, err)
	}
	return root, nil
}

func parseFrag(frag string, parent *Path) error {
	if len(frag) == 0 {
		return nil
	}
	var rest string
	switch frag[0] {
	case '.':
		field, r, err := parseField(frag[1:])
		if err != nil {
			return err
		}
		parent.Field = &field
		rest = r
	case '[':
		i := strings.IndexByte(frag[1:], ']')
		if i == -1 {
			return fmt.Errorf("expected '[' <index> ']'")
		}
		index, err := strconv.ParseUint(frag[1:i+1], 10, 31)
		if err != nil {
			return err
		}
		idx := int(index)
		parent.Index = &idx
		rest = frag[i+2:]
	default:
		return fmt.Errorf("expected '.' or '['")
	}
	if len(rest) == 0 {
		return nil
	}
	next := &Path{}
	if err := parseFrag(rest, next); err != nil {
		return err
	}
	parent.Next = next
	return nil
}

func parseField(frag string) (field, rest string, err error) {
	if len(frag) == 0 {
		return "", "", fmt.Errorf("expected field at end of string")
	}
	if frag[0] != '\'' {
		i := strings.IndexAny(frag, ".[")
		if i == -1 {
			return frag, "", nil
		}
		if i == 0 {
			return "", "", fmt.Errorf("empty field")
		}
		return frag[:i], frag[i:], nil
	}
	escaped := false
	res := make([]byte, 0, len(frag))
	for i := 1; i < len(frag); i++ {
		c := frag[i]
		switch {
		case c == '\\' && !escaped:
			escaped = true
		case c == '\'' && !escaped:
			return string(res), frag[i+1:], nil
		default:
			escaped = false
			res = append(res, c)
		}
	}
	return "", "", fmt.Errorf("end of string scanning for \"'\"")
}

// FieldPath returns the path of map entry field below path.
func FieldPath(path, field string) string {
	return path + "." + pathString(field)
}

// IndexPath returns the path of array element i below path.
func IndexPath(path string, i int) string {
	return path + "[" + strconv.Itoa(i) + "]"
}

func pathString(f string) string {
	if f != "" && strings.IndexAny(f, "'.*$[]\\") == -1 {
		return f
	}
	r := strings.NewReplacer("\\", "\\\\", "'", "\\'")
	return "'" + r.Replace(f) + "'"
}

// GetPath returns the node addressed by path below n. The result is the
// stored node, not a copy. Lookups fail with the same errors as Key and
// Index.
func (n *Node) GetPath(path string) (*Node, error) {
	p, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	res := n
	for x := p; x != nil; x = x.Next {
		switch {
		case x.Field != nil:
			res, err = res.Key(*x.Field)
		case x.Index != nil:
			res, err = res.Index(*x.Index)
		default:
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", pathPrefix(p, x), err)
		}
	}
	return res, nil
}

// pathPrefix renders p up to and including upTo, or all of p when upTo is
// nil.
func pathPrefix(p, upTo *Path) string {
	buf := bytes.NewBuffer([]byte{'$'})
	for x := p; x != nil; x = x.Next {
		writeFrag(buf, x)
		if x == upTo {
			break
		}
	}
	return buf.String()
}
