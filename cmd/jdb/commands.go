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
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "jdb").
		WithSynopsis("jdb [opts] command [opts]").
		WithDescription("jdb inspects and edits jawadb JSON store files.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return jdbMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			GetCommand(cfg),
			SetCommand(cfg),
			DelCommand(cfg),
			AppendCommand(cfg),
			DiffCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("view").
		WithAliases("v", "cat").
		WithSynopsis("view [files]").
		WithDescription("Pretty-print store files (default json, -y yaml).").
		WithRun(func(cc *cli.Context, args []string) error {
			return jdbView(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("get").
		WithSynopsis("get file key").
		WithDescription("Print the value stored under a top-level key.").
		WithRun(func(cc *cli.Context, args []string) error {
			return jdbGet(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func SetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("set").
		WithSynopsis("set [-s] file key value").
		WithDescription("Store a value under a top-level key and save.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return jdbSet(cfg, cc, args)
		})
	cfg.Set = cmd
	return cmd
}

func DelCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DelConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("del").
		WithAliases("rm").
		WithSynopsis("del file key").
		WithDescription("Delete a top-level key and save.").
		WithRun(func(cc *cli.Context, args []string) error {
			return jdbDel(cfg, cc, args)
		})
	cfg.Del = cmd
	return cmd
}

func AppendCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &AppendConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("append").
		WithAliases("push").
		WithSynopsis("append [-s] file value [values...]").
		WithDescription("Append values to a sequence-rooted store and save.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return jdbAppend(cfg, cc, args)
		})
	cfg.Append = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("diff").
		WithSynopsis("diff fileA fileB").
		WithDescription("Show a line diff of two store files in canonical form.").
		WithRun(func(cc *cli.Context, args []string) error {
			return jdbDiff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}
