package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/jsonpatch"
)

func apply(cfg *ApplyConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Apply.Parse(cc, args)
	if err != nil {
		cfg.Apply.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: apply requires a patch argument", cli.ErrUsage)
	}
	dec := cfg.decoder()
	patch, err := getPatchFile(cc, args[0], dec)
	if err != nil {
		return fmt.Errorf("error decoding patch %s: %w", args[0], err)
	}
	files := args[1:]
	if len(files) == 0 {
		files = []string{"-"}
	}
	enc := cfg.encoder()
	for i, file := range files {
		doc, err := getDocFile(cc, file, dec)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		res, err := jsonpatch.Apply(doc, patch)
		if err != nil {
			return fmt.Errorf("error patching %s: %w", file, err)
		}
		d, err := enc(res)
		if err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
		if i > 0 {
			if _, err := cc.Out.Write([]byte("---\n")); err != nil {
				return err
			}
		}
		if _, err := cc.Out.Write(d); err != nil {
			return err
		}
	}
	return nil
}
