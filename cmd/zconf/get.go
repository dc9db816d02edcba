package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/signadot/zconf/ir"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, an object path", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid path \"\"", cli.ErrUsage)
	}
	if path[0] != '$' {
		path = "$" + path
	}
	if _, err := ir.ParsePath(path); err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	n := 0
	for _, file := range inputs(args[1:]) {
		docs, err := readFile(cfg.MainConfig, cc.In, file)
		if err != nil {
			return err
		}
		nodes, err := toNodes(docs)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		if err := getNodes(cfg.MainConfig, cc.Out, nodes, path, n > 0); err != nil {
			return fmt.Errorf("error getting %s from %s: %w", path, file, err)
		}
		n += len(nodes)
	}
	return nil
}

func getNodes(cfg *MainConfig, w io.Writer, nodes []*ir.Node, path string, sep bool) error {
	res := make([]*ir.Node, len(nodes))
	for i, node := range nodes {
		child, err := node.GetPath(path)
		if err != nil {
			return fmt.Errorf("document %d: %w", i, err)
		}
		res[i] = child
	}
	return printNodes(cfg, w, res, sep)
}
