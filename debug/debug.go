// Package debug provides diagnostics toggled from the environment.
//
// Each toggle is read once at start up:
//
//	ZCONF_DEBUG_CONVERT  boundary conversions
//	ZCONF_DEBUG_CODEC    decoding, encoding and patching of documents
//	ZCONF_DEBUG_MODULE   module configuration and execution
//	ZCONF_DEBUG_CLI      command line processing
//
// Output goes to stderr.
package debug

import (
	"fmt"
	"io"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"

	"github.com/signadot/zconf/encode"
	"github.com/signadot/zconf/flat"
	"github.com/signadot/zconf/ir"
)

type debug struct {
	Convert bool `env:"CONVERT"`
	Codec   bool `env:"CODEC"`
	Module  bool `env:"MODULE"`
	CLI     bool `env:"CLI"`
}

var (
	d   = &debug{}
	log zerolog.Logger
)

func init() {
	if err := env.ParseWithOptions(d, env.Options{Prefix: "ZCONF_DEBUG_"}); err != nil {
		fmt.Fprintf(os.Stderr, "debug: ignoring environment: %v\n", err)
		d = &debug{}
	}
	SetOutput(os.Stderr)
}

// SetOutput redirects diagnostics to w.
func SetOutput(w io.Writer) {
	log = zerolog.New(zerolog.ConsoleWriter{
		Out:          w,
		NoColor:      true,
		PartsExclude: []string{zerolog.TimestampFieldName},
	})
}

func Convert() bool {
	return d.Convert
}

func Codec() bool {
	return d.Codec
}

func Module() bool {
	return d.Module
}

func CLI() bool {
	return d.CLI
}

// Logf logs a formatted message. *ir.Node and flat.Value arguments are
// rendered with encode.PrettyPrint.
func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case *ir.Node:
			args[i] = encode.PrettyPrint(x)
		case flat.Value:
			n, err := ir.FromFlat(flat.FromMap(map[string]flat.Value{ir.DataKey: x}))
			if err != nil {
				args[i] = fmt.Sprintf("[raw flat.Value] %v", x)
				continue
			}
			data, _ := n.Key(ir.DataKey)
			args[i] = encode.PrettyPrint(data)
		}
	}
	log.Debug().Msgf(msg, args...)
}
