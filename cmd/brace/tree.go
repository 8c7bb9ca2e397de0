package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/brace-format/brace"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
)

func tree(cfg *TreeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tree.Parse(cc, args)
	if err != nil {
		cfg.Tree.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	lit, ph := treeColors(cfg.MainConfig, cc.Out)
	for i, arg := range args {
		d, err := readFile(cc, arg)
		if err != nil {
			return err
		}
		if i > 0 {
			if _, err := cc.Out.Write([]byte("---\n")); err != nil {
				return err
			}
		}
		printTree(cc.Out, brace.Compile(string(d)), 0, lit, ph)
	}
	return nil
}

func treeColors(cfg *MainConfig, w io.Writer) (lit, ph func(string, ...any) string) {
	if !cfg.colorize(w) {
		return fmt.Sprintf, fmt.Sprintf
	}
	return color.RGB(8, 196, 16).SprintfFunc(), color.RGB(196, 96, 16).SprintfFunc()
}

func printTree(w io.Writer, segs brace.Segments, depth int, lit, ph func(string, ...any) string) {
	indent := strings.Repeat("  ", depth)
	for _, seg := range segs {
		switch seg.Type {
		case brace.LiteralSegment:
			fmt.Fprintf(w, "%s%s\n", indent, lit("literal %q", seg.Text))
		case brace.PlaceholderSegment:
			fmt.Fprintf(w, "%s%s\n", indent, ph("placeholder"))
			printTree(w, seg.Children, depth+1, lit, ph)
		}
	}
}
