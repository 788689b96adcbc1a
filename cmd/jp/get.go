package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/jsonpatch/pointer"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a JSON pointer", cli.ErrUsage)
	}
	ptr, err := pointer.Parse(args[0])
	if err != nil {
		return fmt.Errorf("%w: invalid pointer %q: %v", cli.ErrUsage, args[0], err)
	}
	files := args[1:]
	if len(files) == 0 {
		files = []string{"-"}
	}
	dec := cfg.decoder()
	enc := cfg.encoder()
	for i, file := range files {
		doc, err := getDocFile(cc, file, dec)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		val, err := pointer.Resolve(doc, ptr)
		if err != nil {
			return fmt.Errorf("error resolving %s in %s: %w", args[0], file, err)
		}
		d, err := enc(val)
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
