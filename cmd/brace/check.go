package main

import (
	"fmt"
	"io"

	"github.com/brace-format/brace"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: check requires 2 args, a template file and an expected output file", cli.ErrUsage)
	}
	tmpl, err := readFile(cc, args[0])
	if err != nil {
		return err
	}
	expected, err := readFile(cc, args[1])
	if err != nil {
		return err
	}
	binding, err := loadBinding(cc, cfg.Bind, cfg.Patch)
	if err != nil {
		return err
	}
	got, warns, err := brace.Format(brace.Compile(string(tmpl)), binding)
	if err != nil {
		return fmt.Errorf("error rendering %s: %w", args[0], err)
	}
	printWarnings(cfg.MainConfig, warns)
	want := string(expected)
	if got == want {
		return nil
	}
	if err := printDiff(cfg.MainConfig, cc.Out, want, got); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

func printDiff(cfg *MainConfig, w io.Writer, want, got string) error {
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(want, got, true)
	diffs = diffCfg.DiffCleanupSemantic(diffs)
	ins, del := diffMarkers(cfg, w)
	for i := range diffs {
		diff := &diffs[i]
		var err error
		switch diff.Type {
		case diffpatch.DiffEqual:
			_, err = io.WriteString(w, diff.Text)
		case diffpatch.DiffInsert:
			_, err = io.WriteString(w, ins(diff.Text))
		case diffpatch.DiffDelete:
			_, err = io.WriteString(w, del(diff.Text))
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func diffMarkers(cfg *MainConfig, w io.Writer) (ins, del func(string) string) {
	if !cfg.colorize(w) {
		return func(s string) string { return "{+" + s + "+}" },
			func(s string) string { return "[-" + s + "-]" }
	}
	insc := color.New(color.FgGreen).SprintFunc()
	delc := color.New(color.FgRed, color.CrossedOut).SprintFunc()
	return func(s string) string { return insc(s) },
		func(s string) string { return delc(s) }
}
