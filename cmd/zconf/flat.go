package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/signadot/zconf/codec"
	"github.com/signadot/zconf/format"
	"github.com/signadot/zconf/ir"
)

func flatCmd(cfg *FlatConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Flat.Parse(cc, args)
	if err != nil {
		cfg.Flat.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	out := cfg.outFormat()
	n := 0
	for _, file := range inputs(args) {
		docs, err := readFile(cfg.MainConfig, cc.In, file)
		if err != nil {
			return err
		}
		nodes, err := toNodes(docs)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		if err := writeFlat(cc.Out, nodes, out, n > 0); err != nil {
			return err
		}
		n += len(nodes)
	}
	return nil
}

// writeFlat converts nodes back to boundary values and writes them in
// format f.
func writeFlat(w io.Writer, nodes []*ir.Node, f format.Format, sep bool) error {
	for i, node := range nodes {
		if f.IsYAML() && (sep || i > 0) {
			if err := writeSep(w); err != nil {
				return err
			}
		}
		d, err := codec.Encode(node.ToFlat(), f)
		if err != nil {
			return fmt.Errorf("error encoding document %d: %w", i, err)
		}
		if _, err := w.Write(d); err != nil {
			return err
		}
	}
	return nil
}
