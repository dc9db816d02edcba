// Package module runs request processing modules configured from boundary
// values.
//
// A module receives its configuration as a flat.Value, the format shared
// with whatever loaded it. Modules embedding Base get that configuration
// converted to an *ir.Node once, at Config time, and read it with the
// typed accessors of package ir.
//
//	type greeter struct {
//	    module.Base
//	}
//
//	func (g *greeter) Exec(d *module.Duplex) error {
//	    msg, err := g.Conf().GetPath("$.greeting")
//	    if err != nil {
//	        return err
//	    }
//	    s, err := msg.Str()
//	    if err != nil {
//	        return err
//	    }
//	    d.Resp.SetStatus(200, "OK").SetBody(s)
//	    return nil
//	}
//
// Loading modules from shared objects and serving connections are left to
// the host program.
package module

import (
	"context"
	"errors"
	"fmt"

	"github.com/signadot/zconf/debug"
	"github.com/signadot/zconf/flat"
	"github.com/signadot/zconf/ir"
)

var ErrAborted = errors.New("module chain aborted")

type Module interface {
	Config(conf flat.Value) error
	Exec(d *Duplex) error
}

// Func adapts a function to a Module that ignores its configuration.
type Func func(d *Duplex) error

func (f Func) Config(flat.Value) error { return nil }
func (f Func) Exec(d *Duplex) error    { return f(d) }

// Base holds the configuration of a module as a tree. It implements the
// Config half of Module.
type Base struct {
	conf *ir.Node
}

func (b *Base) Config(conf flat.Value) error {
	n, err := ir.FromFlat(conf)
	if err != nil {
		return fmt.Errorf("error converting module config: %w", err)
	}
	if debug.Convert() {
		debug.Logf("module config:\n%v", n)
	}
	b.conf = n
	return nil
}

// Conf returns the configuration tree. Before Config it is an empty map.
func (b *Base) Conf() *ir.Node {
	if b.conf == nil {
		b.conf = ir.New().SetMap(nil)
	}
	return b.conf
}

// Enabled reports whether the configuration entry key exists and holds a
// true value in the sense of ir.Truth.
func (b *Base) Enabled(key string) bool {
	child, err := b.Conf().Key(key)
	if err != nil {
		return false
	}
	return ir.Truth(child)
}

// Chain runs modules in order over the same duplex.
type Chain struct {
	mods []Module
}

// NewChain configures every module with conf and returns a chain running
// them in the given order.
func NewChain(conf flat.Value, mods ...Module) (*Chain, error) {
	for i, m := range mods {
		if err := m.Config(conf); err != nil {
			return nil, fmt.Errorf("module %d (%T): %w", i, m, err)
		}
	}
	return &Chain{mods: mods}, nil
}

func (c *Chain) Len() int {
	return len(c.mods)
}

// Run executes each module on d, stopping at the first error. A done
// context stops the chain before the next module with ErrAborted.
func (c *Chain) Run(ctx context.Context, d *Duplex) error {
	for i, m := range c.mods {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("%w before module %d: %w", ErrAborted, i, err)
		}
		if debug.Module() {
			debug.Logf("exec module %d (%T) %v", i, m, d.Req)
		}
		if err := m.Exec(d); err != nil {
			return fmt.Errorf("module %d (%T): %w", i, m, err)
		}
	}
	return nil
}
