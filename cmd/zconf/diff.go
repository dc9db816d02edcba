package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/signadot/zconf/encode"
	"github.com/signadot/zconf/ir"
	"github.com/signadot/zconf/libdiff"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := firstNode(cfg.MainConfig, cc.In, args[0])
	if err != nil {
		return err
	}
	b, err := firstNode(cfg.MainConfig, cc.In, args[1])
	if err != nil {
		return err
	}
	var differs bool
	if cfg.Structural {
		differs, err = diffChanges(cfg.MainConfig, cc.Out, a, b)
	} else {
		differs, err = diffNodes(cfg.MainConfig, cc.Out, a, b)
	}
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func firstNode(cfg *MainConfig, stdin io.Reader, file string) (*ir.Node, error) {
	docs, err := readFile(cfg, stdin, file)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("%s: no document", file)
	}
	n, err := ir.FromFlat(docs[0])
	if err != nil {
		return nil, fmt.Errorf("error processing %s: %w", file, err)
	}
	return n, nil
}

// diffNodes writes the line diff of the pretty printed forms of a and b
// and reports whether they differ. Nothing is written for equal trees.
func diffNodes(cfg *MainConfig, w io.Writer, a, b *ir.Node) (bool, error) {
	if ir.Equal(a, b) {
		return false, nil
	}
	lines := libdiff.Lines(encode.PrettyPrint(a), encode.PrettyPrint(b))
	if !libdiff.Differs(lines) {
		return false, nil
	}
	if err := libdiff.Write(w, lines, cfg.useColor(w)); err != nil {
		return false, err
	}
	return true, nil
}

// diffChanges writes the structural changes from a to b, one per line.
func diffChanges(cfg *MainConfig, w io.Writer, a, b *ir.Node) (bool, error) {
	changes := libdiff.Nodes(a, b)
	if len(changes) == 0 {
		return false, nil
	}
	if err := libdiff.WriteChanges(w, changes, cfg.useColor(w)); err != nil {
		return false, err
	}
	return true, nil
}
