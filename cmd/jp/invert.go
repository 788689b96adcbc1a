package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/jsonpatch"
)

func invert(cfg *InvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Invert.Parse(cc, args)
	if err != nil {
		cfg.Invert.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: invert requires a patch and the document it applies to", cli.ErrUsage)
	}
	dec := cfg.decoder()
	patch, err := getPatchFile(cc, args[0], dec)
	if err != nil {
		return fmt.Errorf("error decoding patch %s: %w", args[0], err)
	}
	doc, err := getDocFile(cc, args[1], dec)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	inv, err := jsonpatch.Invert(doc, patch)
	if err != nil {
		return fmt.Errorf("error inverting against %s: %w", args[1], err)
	}
	d, err := cfg.encoder()(inv.Node())
	if err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	_, err = cc.Out.Write(d)
	return err
}
