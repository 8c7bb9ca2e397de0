package main

import (
	"fmt"
	"io"
	"os"

	"github.com/brace-format/brace"
	"github.com/brace-format/brace/ir"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
)

func render(cfg *RenderConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Render.Parse(cc, args)
	if err != nil {
		cfg.Render.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	binding, err := loadBinding(cc, cfg.Bind, cfg.Patch)
	if err != nil {
		return err
	}
	if cfg.TemplateSet {
		if len(args) != 0 {
			return fmt.Errorf("%w: -t and template files are exclusive", cli.ErrUsage)
		}
		return renderOne(cfg.MainConfig, cc, brace.Compile(cfg.Template), binding)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		d, err := readFile(cc, arg)
		if err != nil {
			return err
		}
		if err := renderOne(cfg.MainConfig, cc, brace.Compile(string(d)), binding); err != nil {
			return fmt.Errorf("error rendering %s: %w", arg, err)
		}
	}
	return nil
}

func renderOne(cfg *MainConfig, cc *cli.Context, segs brace.Segments, binding *ir.Node) error {
	out, warns, err := brace.Format(segs, binding)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(cc.Out, out); err != nil {
		return err
	}
	printWarnings(cfg, warns)
	return nil
}

func printWarnings(cfg *MainConfig, warns []brace.Warning) {
	if len(warns) == 0 {
		return
	}
	warnf := fmt.Sprintf
	if cfg.colorize(os.Stderr) {
		warnf = color.YellowString
	}
	for _, w := range warns {
		fmt.Fprintln(os.Stderr, warnf("warning: %s", w))
	}
}
