package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/signadot/zconf/encode"
	"github.com/signadot/zconf/ir"
)

func printCmd(cfg *PrintConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Print.Parse(cc, args)
	if err != nil {
		cfg.Print.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
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
		if err := printNodes(cfg.MainConfig, cc.Out, nodes, n > 0); err != nil {
			return err
		}
		n += len(nodes)
	}
	return nil
}

// printNodes pretty prints each node on its own lines, with "---" between
// documents. sep requests a separator before the first node as well.
func printNodes(cfg *MainConfig, w io.Writer, nodes []*ir.Node, sep bool) error {
	opts := cfg.encOpts(w)
	for i, node := range nodes {
		if sep || i > 0 {
			if err := writeSep(w); err != nil {
				return err
			}
		}
		if err := encode.Encode(node, w, opts...); err != nil {
			return fmt.Errorf("error encoding document %d: %w", i, err)
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}
