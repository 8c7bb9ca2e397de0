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

	return cli.NewCommandAt(&cfg.Main, "brace").
		WithSynopsis("brace [opts] command [opts]").
		WithDescription("brace is a tool for rendering {path.to.value} templates.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return braceMain(cfg, cc, args)
		}).
		WithSubs(
			RenderCommand(cfg),
			TreeCommand(cfg),
			CheckCommand(cfg))
}

func RenderCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RenderConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, &cli.Opt{
		Name:        "t",
		Description: "template string argument",
		Type:        cli.NamedFuncOpt(cfg.templateOpt, "(template)"),
	})
	cmd := cli.NewCommand("render").
		WithAliases("r").
		WithSynopsis("render [-b bindfile] [-p patchfile] [-t template] [files]").
		WithDescription("render template files against a binding").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return render(cfg, cc, args)
		})
	cfg.Render = cmd
	return cmd
}

func TreeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TreeConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("tree").
		WithAliases("t").
		WithSynopsis("tree [files]").
		WithDescription("show the compiled segment tree of templates").
		WithRun(func(cc *cli.Context, args []string) error {
			return tree(cfg, cc, args)
		})
	cfg.Tree = cmd
	return cmd
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("check").
		WithAliases("c").
		WithSynopsis("check [-b bindfile] <template> <expected>").
		WithDescription("render a template and diff the output against an expected file").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
	cfg.Check = cmd
	return cmd
}
