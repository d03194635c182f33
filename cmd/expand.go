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
	"strings"

	"github.com/binaek/cling"
	"github.com/mitchellh/hashstructure/v2"
	"github.com/pkg/errors"
	"github.com/reflexjs/corelang/internal/config"
	"github.com/reflexjs/corelang/internal/dag"
	"github.com/reflexjs/corelang/internal/wat/directives"
	"github.com/reflexjs/corelang/internal/wat/loader"
	"github.com/reflexjs/corelang/internal/wat/printer"
)

func addExpandCmd(cli *cling.CLI) {
	cli.WithCommand(
		cling.NewCommand("expand", expandCmd).
			WithArgument(cling.NewStringCmdInput("file").
				WithDescription("WAT template entry point to expand").
				AsArgument(),
			).
			WithFlag(cling.
				NewStringCmdInput("vars").
				WithDefault("{}").
				WithDescription("JSON object of variables to expand against").
				AsFlag(),
			).
			WithFlag(cling.
				NewBoolCmdInput("graph").
				WithDefault(false).
				WithDescription("Print the resolved module import graph instead of expanded WAT").
				AsFlag(),
			),
	)
}

type expandCmdArgs struct {
	File  string `cling-name:"file"`
	Vars  string `cling-name:"vars"`
	Graph bool   `cling-name:"graph"`
}

// fsReader resolves WAT module paths against the OS filesystem.
type fsReader struct{}

func (fsReader) Read(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "read %s", path)
	}
	return string(b), nil
}

func expandCmd(ctx context.Context, args []string) error {
	input := expandCmdArgs{}
	if err := cling.Hydrate(ctx, args, &input); err != nil {
		return err
	}

	env := make(directives.Env)
	if cfg, err := config.Load(ctx, "."); err == nil {
		for k, v := range cfg.Templates.Vars {
			env[k] = v
		}
	} else if !errors.Is(err, config.ErrConfigNotFound) {
		return err
	}

	var rawVars map[string]any
	if err := json.Unmarshal([]byte(input.Vars), &rawVars); err != nil {
		return errors.Wrap(err, "parse --vars as JSON")
	}
	for k, v := range rawVars {
		env[k] = v
	}

	lctx := loader.NewContext(fsReader{})
	module, err := lctx.Load(input.File, env)
	if err != nil {
		return err
	}

	if input.Graph {
		return printGraph(lctx, input.File)
	}

	fmt.Println(printer.Print(lctx.Sources, module.Program))
	return nil
}

// pathNode adapts a plain module path string into the fmt.Stringer the
// generic dag package requires of its node type.
type pathNode string

func (p pathNode) String() string { return string(p) }

func printGraph(lctx *loader.Context, entry string) error {
	g := dag.New[pathNode]()
	for path := range lctx.Sources {
		g.AddNode(pathNode(path))
	}
	for parent, children := range lctx.Edges {
		for _, child := range children {
			if parent == child {
				continue
			}
			if err := g.AddEdge(pathNode(parent), pathNode(child)); err != nil {
				return err
			}
		}
	}
	sorted, err := g.TopoSort()
	if err != nil {
		return err
	}

	lines := make([]string, 0, len(sorted))
	for _, n := range sorted {
		lines = append(lines, string(n))
	}
	fmt.Println(strings.Join(lines, "\n"))

	hash, err := hashstructure.Hash(lines, hashstructure.FormatV2, nil)
	if err != nil {
		return errors.Wrap(err, "hash module graph")
	}
	fmt.Printf("# graph hash: %x\n", hash)
	return nil
}
