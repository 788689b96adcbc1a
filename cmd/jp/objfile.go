package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/signadot/jsonpatch"
	"github.com/signadot/jsonpatch/ir"
)

func readArg(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

func getDocFile(cc *cli.Context, path string, dec jsonpatch.Decoder) (*ir.Node, error) {
	d, err := readArg(cc, path)
	if err != nil {
		return nil, err
	}
	return dec(d)
}

func getPatchFile(cc *cli.Context, path string, dec jsonpatch.Decoder) (jsonpatch.Patch, error) {
	node, err := getDocFile(cc, path, dec)
	if err != nil {
		return nil, err
	}
	return jsonpatch.PatchFromNode(node)
}
