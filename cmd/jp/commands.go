package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}, {
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "jp").
		WithSynopsis("jp [opts] command [opts]").
		WithDescription("jp is a tool for diffing and patching documents with RFC 6902 patches.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return jpMain(cfg, cc, args)
		}).
		WithSubs(
			DiffCommand(cfg),
			ApplyCommand(cfg),
			InvertCommand(cfg),
			GetCommand(cfg))
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d", "di").
		WithOpts(opts...).
		WithSynopsis("diff [opts] a b").
		WithDescription("diff two documents, printing the patch transforming the first into the second").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func ApplyCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ApplyConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("apply").
		WithAliases("a", "ap").
		WithSynopsis("apply <patch> [files]").
		WithDescription("apply a patch to documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return apply(cfg, cc, args)
		})
	cfg.Apply = cmd
	return cmd
}

func InvertCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &InvertConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("invert").
		WithAliases("i", "inv").
		WithSynopsis("invert <patch> <doc>").
		WithDescription("print the patch undoing <patch> on <doc>").
		WithRun(func(cc *cli.Context, args []string) error {
			return invert(cfg, cc, args)
		})
	cfg.Invert = cmd
	return cmd
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("get").
		WithAliases("g", "ge").
		WithSynopsis("get <pointer> [files]").
		WithDescription("resolve a JSON pointer in documents and print the values").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}
