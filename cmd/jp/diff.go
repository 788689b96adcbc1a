package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"

	"github.com/signadot/jsonpatch"
	"github.com/signadot/jsonpatch/ir"
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
	dec := cfg.decoder()
	a, err := getDocFile(cc, args[0], dec)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := getDocFile(cc, args[1], dec)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	patch := jsonpatch.Diff(a, b, jsonpatch.DiffMoves(cfg.Moves))
	if len(patch) == 0 {
		return nil
	}
	if err := writePatch(cfg.MainConfig, cc.Out, patch); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

func writePatch(cfg *MainConfig, w io.Writer, patch jsonpatch.Patch) error {
	if !cfg.colorOn(w) || cfg.outFormat() == yamlFormat {
		d, err := cfg.encoder()(patch.Node())
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	}
	if _, err := io.WriteString(w, "[\n"); err != nil {
		return err
	}
	for i, op := range patch {
		d, err := ir.ToJSON(op.Node())
		if err != nil {
			return err
		}
		line := "  " + string(d)
		if i < len(patch)-1 {
			line += ","
		}
		colored := opColor(op.Op)(strings.Replace(line, "%", "%%", -1))
		if _, err := io.WriteString(w, colored+"\n"); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "]\n")
	return err
}

func opColor(kind jsonpatch.Op) func(string, ...any) string {
	switch kind {
	case jsonpatch.Add, jsonpatch.Copy:
		return color.GreenString
	case jsonpatch.Remove:
		return color.RedString
	case jsonpatch.Replace:
		return color.YellowString
	case jsonpatch.Move:
		return color.CyanString
	case jsonpatch.Test:
		return color.BlueString
	}
	return func(v string, _ ...any) string { return v }
}
