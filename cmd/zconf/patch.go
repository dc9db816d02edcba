package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/signadot/zconf/codec"
	"github.com/signadot/zconf/flat"
	"github.com/signadot/zconf/format"
	"github.com/signadot/zconf/ir"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch file", cli.ErrUsage)
	}
	p, err := readPatch(args[0])
	if err != nil {
		return err
	}
	n := 0
	for _, file := range inputs(args[1:]) {
		docs, err := readFile(cfg.MainConfig, cc.In, file)
		if err != nil {
			return err
		}
		nodes := make([]*ir.Node, len(docs))
		for i, doc := range docs {
			node, err := patchDoc(doc, p, cfg.Merge)
			if err != nil {
				return fmt.Errorf("error patching %s document %d: %w", file, i, err)
			}
			nodes[i] = node
		}
		if err := printNodes(cfg.MainConfig, cc.Out, nodes, n > 0); err != nil {
			return err
		}
		n += len(nodes)
	}
	return nil
}

// readPatch returns the contents of a patch file as JSON. YAML patch files
// are converted.
func readPatch(file string) ([]byte, error) {
	d, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("could not read patch %q: %w", file, err)
	}
	if format.FromSuffix(file).IsJSON() {
		return d, nil
	}
	v, err := codec.Decode(d, format.YAMLFormat)
	if err != nil {
		return nil, fmt.Errorf("error decoding patch %s: %w", file, err)
	}
	return codec.Encode(v, format.JSONFormat)
}

func patchDoc(doc flat.Value, p []byte, merge bool) (*ir.Node, error) {
	var (
		res flat.Value
		err error
	)
	if merge {
		res, err = codec.MergePatch(doc, p)
	} else {
		res, err = codec.Patch(doc, p)
	}
	if err != nil {
		return nil, err
	}
	return ir.FromFlat(res)
}
