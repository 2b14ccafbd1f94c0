package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

var (
	// ErrDecode indicates the batch file is not valid HCL or does not match the schema.
	ErrDecode = errors.New("config: cannot decode batch file")
	// ErrDuplicatePuzzle indicates two puzzle blocks share a name.
	ErrDuplicatePuzzle = errors.New("config: duplicate puzzle name")
	// ErrNoInput indicates a puzzle block with an empty input path.
	ErrNoInput = errors.New("config: puzzle has no input")
	// ErrNegativeAnswer indicates an expected answer below zero.
	ErrNegativeAnswer = errors.New("config: expected answer cannot be negative")
)

// File is a decoded batch file.
type File struct {
	Puzzles []*Puzzle `hcl:"puzzle,block"`
}

// Puzzle is one grid to solve and its expected answers.
type Puzzle struct {
	Name     string `hcl:"name,label"`
	Input    string `hcl:"input"`
	Enclosed int    `hcl:"enclosed"`
	Farthest *int   `hcl:"farthest,optional"`
}

// Load parses and validates the batch file at path.
func Load(path string) (*File, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: resolve %s: %w", path, err)
	}
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCLFile(abs)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, path, diags)
	}
	return decode(f, path, filepath.Dir(abs))
}

// Parse decodes src as a batch file located in dir.
func Parse(src []byte, filename, dir string) (*File, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, filename, diags)
	}
	return decode(f, filename, dir)
}

func decode(f *hcl.File, name, dir string) (*File, error) {
	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"dir": cty.StringVal(dir),
		},
	}
	var out File
	if diags := gohcl.DecodeBody(f.Body, evalCtx, &out); diags.HasErrors() {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, name, diags)
	}

	seen := make(map[string]bool, len(out.Puzzles))
	for _, p := range out.Puzzles {
		if seen[p.Name] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicatePuzzle, p.Name)
		}
		seen[p.Name] = true

		if p.Input == "" {
			return nil, fmt.Errorf("%w: %q", ErrNoInput, p.Name)
		}
		if !filepath.IsAbs(p.Input) {
			p.Input = filepath.Join(dir, p.Input)
		}
		p.Input = filepath.Clean(p.Input)

		if p.Enclosed < 0 || (p.Farthest != nil && *p.Farthest < 0) {
			return nil, fmt.Errorf("%w: %q", ErrNegativeAnswer, p.Name)
		}
	}
	return &out, nil
}
