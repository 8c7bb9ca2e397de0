package main

import (
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='force colored output'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) colorize(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type RenderConfig struct {
	*MainConfig

	Bind  string `cli:"name=b aliases=bind desc='binding file (yaml or json)'"`
	Patch string `cli:"name=p aliases=patch desc='merge patch file applied to the binding'"`

	Template    string
	TemplateSet bool

	Render *cli.Command
}

// templateOpt records the -t argument. An empty template string is
// still a given template, distinct from the flag being absent.
func (cfg *RenderConfig) templateOpt(cc *cli.Context, a string) (any, error) {
	cfg.Template = a
	cfg.TemplateSet = true
	return nil, nil
}

type TreeConfig struct {
	*MainConfig

	Tree *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Bind  string `cli:"name=b aliases=bind desc='binding file (yaml or json)'"`
	Patch string `cli:"name=p aliases=patch desc='merge patch file applied to the binding'"`

	Check *cli.Command
}
