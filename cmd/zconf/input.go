package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/zconf/codec"
	"github.com/signadot/zconf/flat"
	"github.com/signadot/zconf/ir"
)

// readFile decodes the documents of file, or of stdin when file is "-".
func readFile(cfg *MainConfig, stdin io.Reader, file string) ([]flat.Value, error) {
	r := stdin
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
		r = f
	}
	docs, err := codec.ReadAll(r, cfg.inFormat(file))
	if err != nil {
		return nil, fmt.Errorf("error processing %s: %w", file, err)
	}
	return docs, nil
}

func toNodes(docs []flat.Value) ([]*ir.Node, error) {
	res := make([]*ir.Node, len(docs))
	for i, doc := range docs {
		n, err := ir.FromFlat(doc)
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", i, err)
		}
		res[i] = n
	}
	return res, nil
}

// inputs returns the file arguments, defaulting to stdin.
func inputs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

func writeSep(w io.Writer) error {
	_, err := io.WriteString(w, "---\n")
	return err
}
