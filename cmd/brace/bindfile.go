package main

import (
	"fmt"
	"io"
	"os"

	"github.com/brace-format/brace/ir"
	"github.com/brace-format/brace/parse"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func readFile(cc *cli.Context, path string) ([]byte, error) {
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

// loadBinding reads the binding document, applies an optional merge
// patch, and decodes the result. Without a binding file the binding
// is an empty mapping.
func loadBinding(cc *cli.Context, bindPath, patchPath string) (*ir.Node, error) {
	bindJSON := []byte("{}")
	if bindPath != "" {
		d, err := readFile(cc, bindPath)
		if err != nil {
			return nil, err
		}
		bindJSON, err = yaml.YAMLToJSON(d)
		if err != nil {
			return nil, fmt.Errorf("error decoding binding %s: %w", bindPath, err)
		}
	}
	if patchPath != "" {
		d, err := readFile(cc, patchPath)
		if err != nil {
			return nil, err
		}
		patchJSON, err := yaml.YAMLToJSON(d)
		if err != nil {
			return nil, fmt.Errorf("error decoding patch %s: %w", patchPath, err)
		}
		bindJSON, err = jsonpatch.MergePatch(bindJSON, patchJSON)
		if err != nil {
			return nil, fmt.Errorf("error patching binding: %w", err)
		}
	}
	return parse.Binding(bindJSON)
}
