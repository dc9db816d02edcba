// Package codec reads and writes boundary values as JSON or YAML documents
// and applies JSON patches to them.
//
// It is the file-format collaborator of the configuration model: package
// ir only ever sees flat.Value, never bytes.
package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/signadot/zconf/debug"
	"github.com/signadot/zconf/flat"
	"github.com/signadot/zconf/format"
)

var (
	ErrDecode = errors.New("decode error")
	ErrEncode = errors.New("encode error")
	ErrPatch  = errors.New("patch error")
)

// Decode parses one document. JSON numbers without a fraction or exponent
// decode as integers.
func Decode(data []byte, f format.Format) (flat.Value, error) {
	var (
		x   any
		err error
	)
	switch f {
	case format.JSONFormat:
		x, err = decodeJSON(data)
	case format.YAMLFormat:
		err = yaml.Unmarshal(data, &x)
	default:
		return flat.Value{}, fmt.Errorf("%w: %w: %d", ErrDecode, format.ErrBadFormat, f)
	}
	if err != nil {
		return flat.Value{}, fmt.Errorf("%w: %s: %w", ErrDecode, f, err)
	}
	v, err := flat.FromAny(x)
	if err != nil {
		return flat.Value{}, fmt.Errorf("%w: %s: %w", ErrDecode, f, err)
	}
	if debug.Codec() {
		debug.Logf("decoded %s document:\n%v", f, v)
	}
	return v, nil
}

func decodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var x any
	if err := dec.Decode(&x); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("trailing data after document")
	}
	return x, nil
}

// Encode writes v as a document in format f. Object keys are written in
// sorted order.
func Encode(v flat.Value, f format.Format) ([]byte, error) {
	x := flat.ToAny(v)
	var (
		d   []byte
		err error
	)
	switch f {
	case format.JSONFormat:
		d, err = json.MarshalIndent(x, "", "  ")
		if err == nil {
			d = append(d, '\n')
		}
	case format.YAMLFormat:
		d, err = yaml.Marshal(x)
	default:
		return nil, fmt.Errorf("%w: %w: %d", ErrEncode, format.ErrBadFormat, f)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrEncode, f, err)
	}
	return d, nil
}

// ReadAll decodes every document in r. YAML documents are separated by
// "---" lines; a JSON stream holds whitespace separated values.
func ReadAll(r io.Reader, f format.Format) ([]flat.Value, error) {
	in, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading: %w", err)
	}
	switch f {
	case format.JSONFormat:
		return readJSONStream(in)
	default:
		docs := splitYAML(in)
		res := make([]flat.Value, 0, len(docs))
		for i, doc := range docs {
			v, err := Decode(doc, f)
			if err != nil {
				return nil, fmt.Errorf("document %d: %w", i, err)
			}
			res = append(res, v)
		}
		return res, nil
	}
}

func readJSONStream(in []byte) ([]flat.Value, error) {
	dec := json.NewDecoder(bytes.NewReader(in))
	dec.UseNumber()
	var res []flat.Value
	for i := 0; ; i++ {
		var x any
		err := dec.Decode(&x)
		if err == io.EOF {
			return res, nil
		}
		if err != nil {
			return nil, fmt.Errorf("document %d: %w: json: %w", i, ErrDecode, err)
		}
		v, err := flat.FromAny(x)
		if err != nil {
			return nil, fmt.Errorf("document %d: %w: json: %w", i, ErrDecode, err)
		}
		res = append(res, v)
	}
}

func splitYAML(in []byte) [][]byte {
	in = bytes.TrimPrefix(in, []byte("---\n"))
	docs := bytes.Split(in, []byte("\n---\n"))
	res := docs[:0]
	for _, doc := range docs {
		if len(bytes.TrimSpace(doc)) == 0 {
			continue
		}
		res = append(res, doc)
	}
	return res
}
