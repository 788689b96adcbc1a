package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"

	"github.com/signadot/jsonpatch"
	"github.com/signadot/jsonpatch/ir"
)

type format int

const (
	jsonFormat format = iota
	yamlFormat
)

func parseFormat(v string) (format, error) {
	switch v {
	case "json", "j":
		return jsonFormat, nil
	case "yaml", "y":
		return yamlFormat, nil
	}
	return 0, fmt.Errorf("unknown format %q", v)
}

type MainConfig struct {
	J     bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y     bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`
	Color bool `cli:"name=color desc='color diff output'"`

	InFormat, OutFormat *format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := parseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) inFormat() format {
	f := jsonFormat
	if cfg.Y {
		f = yamlFormat
	}
	if cfg.InFormat != nil {
		f = *cfg.InFormat
	}
	return f
}

func (cfg *MainConfig) outFormat() format {
	f := jsonFormat
	if cfg.Y {
		f = yamlFormat
	}
	if cfg.OutFormat != nil {
		f = *cfg.OutFormat
	}
	return f
}

func (cfg *MainConfig) decoder() jsonpatch.Decoder {
	if cfg.inFormat() == yamlFormat {
		return ir.FromYAML
	}
	return ir.FromJSON
}

func (cfg *MainConfig) encoder() jsonpatch.Encoder {
	if cfg.outFormat() == yamlFormat {
		return ir.ToYAML
	}
	return encodeJSONDoc
}

func encodeJSONDoc(node *ir.Node) ([]byte, error) {
	d, err := ir.ToJSONIndent(node, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(d, '\n'), nil
}

func (cfg *MainConfig) colorOn(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type DiffConfig struct {
	*MainConfig
	Moves bool `cli:"name=moves desc='emit move operations for relocated values'"`

	Diff *cli.Command
}

type ApplyConfig struct {
	*MainConfig

	Apply *cli.Command
}

type InvertConfig struct {
	*MainConfig

	Invert *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}
