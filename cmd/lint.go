// Copyright 2026 The ReflexJS Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/binaek/cling"
	"github.com/dop251/goja/file"
	"github.com/dop251/goja/parser"
	"github.com/pkg/errors"
	"github.com/reflexjs/corelang/internal/diagnostic"
	"github.com/reflexjs/corelang/internal/estree/gojaconv"
	"github.com/reflexjs/corelang/internal/validator"
)

func addLintCmd(cli *cling.CLI) {
	cli.WithCommand(
		cling.NewCommand("lint", lintCmd).
			WithArgument(cling.NewStringCmdInput("file").
				WithDescription("ReflexJS source file to lint").
				AsArgument(),
			).
			WithFlag(cling.
				NewStringCmdInput("source-type").
				WithDefault("module").
				WithDescription(`Grammar to validate against: "module" or "script"`).
				AsFlag(),
			).
			WithFlag(cling.
				NewStringCmdInput("format").
				WithDefault("text").
				WithDescription(`Diagnostic output format: "text" or "json"`).
				AsFlag(),
			),
	)
}

type lintCmdArgs struct {
	File       string `cling-name:"file"`
	SourceType string `cling-name:"source-type"`
	Format     string `cling-name:"format"`
}

func lintCmd(ctx context.Context, args []string) error {
	input := lintCmdArgs{}
	if err := cling.Hydrate(ctx, args, &input); err != nil {
		return err
	}

	src, err := os.ReadFile(input.File)
	if err != nil {
		return errors.Wrap(err, "read source file")
	}

	fileSet := file.NewFileSet()
	prog, err := parser.ParseFile(fileSet, input.File, string(src), 0)
	if err != nil {
		return errors.Wrap(err, "parse source")
	}

	program := gojaconv.Convert(prog, fileSet, input.SourceType)

	var diagnostics []diagnostic.Diagnostic
	validator.Validate(program, func(d diagnostic.Diagnostic) {
		diagnostics = append(diagnostics, d)
	})

	if err := printDiagnostics(input.Format, input.File, diagnostics); err != nil {
		return err
	}
	if len(diagnostics) > 0 {
		return errors.Errorf("%d violation(s) found in %s", len(diagnostics), input.File)
	}
	return nil
}

func printDiagnostics(format, file string, diagnostics []diagnostic.Diagnostic) error {
	switch format {
	case "json":
		type jsonLocation struct {
			Line   int `json:"line"`
			Column int `json:"column"`
		}
		type jsonDiagnostic struct {
			Node     string            `json:"node"`
			Message  string            `json:"message"`
			Location jsonLocation      `json:"location"`
			Data     map[string]string `json:"data,omitempty"`
		}
		out := make([]jsonDiagnostic, 0, len(diagnostics))
		for _, d := range diagnostics {
			loc := d.Node.Loc()
			out = append(out, jsonDiagnostic{
				Node:     d.Node.Type(),
				Message:  validator.Render(d.Message, d.Data),
				Location: jsonLocation{Line: loc.Start.Line, Column: loc.Start.Column},
				Data:     d.Data,
			})
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	default:
		for _, d := range diagnostics {
			loc := d.Node.Loc()
			fmt.Printf("%s:%d:%d: %s\n", file, loc.Start.Line, loc.Start.Column, validator.Render(d.Message, d.Data))
		}
		return nil
	}
}
