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

// Package loader resolves WAT template source files into expanded
// modules: it reads source through a pluggable Reader, parses and
// expands each one, detects import cycles, and caches the result of
// every non-parametric load.
package loader

import (
	"path/filepath"
	"strings"

	"github.com/mitchellh/hashstructure/v2"
	"github.com/pkg/errors"
	"github.com/reflexjs/corelang/internal/reflexerr"
	"github.com/reflexjs/corelang/internal/wat/ast"
	"github.com/reflexjs/corelang/internal/wat/directives"
	"github.com/reflexjs/corelang/internal/wat/parser"
)

// Reader resolves a module path to its source text, the one seam a
// caller must supply — a filesystem, an embedded FS, or a test fixture.
type Reader interface {
	Read(path string) (string, error)
}

// Module is one loaded, fully expanded source file plus whatever values
// its own directives published into the frame's exports table via
// @export, for importers to read back through Import.
type Module struct {
	Path    string
	Source  string
	Program *ast.Program
	Exports directives.Exports
}

// Context is the loader's per-tree state: the source map the printer
// later slices unmodified nodes from, the module cache, and the
// in-progress import stack cycle detection walks.
type Context struct {
	reader  Reader
	Sources map[string]string
	// Edges records, for every module that imported another, the set
	// of paths it imported — the import graph "reflex expand --graph"
	// renders after a load completes.
	Edges   map[string][]string
	modules map[string]*Module
	loading map[string]bool
	stack   []string
}

// NewContext creates a loader rooted at reader. Each Context owns its
// own module cache — concurrent top-level loads should use distinct
// Contexts.
func NewContext(reader Reader) *Context {
	return &Context{
		reader:  reader,
		Sources: make(map[string]string),
		Edges:   make(map[string][]string),
		modules: make(map[string]*Module),
		loading: make(map[string]bool),
	}
}

// Load resolves, parses and expands path against env. Parametric loads
// (env non-empty) are never cached, per the loader's contract that only
// a module loaded with no parameters is safe to share across importers.
func (c *Context) Load(path string, env directives.Env) (*Module, error) {
	parametric := len(env) > 0

	// Record the edge before any cache short-circuit: a module that two
	// different parents both import (a diamond) must show up under both
	// parents in Edges even though only the first Load actually parses it.
	if len(c.stack) > 0 {
		parent := c.stack[len(c.stack)-1]
		c.Edges[parent] = append(c.Edges[parent], path)
	}

	if !parametric {
		if m, ok := c.modules[path]; ok {
			return m, nil
		}
	}

	// The loading sentinel only ever guards non-parametric loads: a
	// parametric @import recursing into a path still on the stack (the
	// macro-recursion a directive-based template engine exists for, e.g.
	// decrementing a counter each call) is not a cycle, since each call
	// expands against its own fresh variables rather than sharing the
	// in-progress result the sentinel protects.
	if !parametric && c.loading[path] {
		parent := ""
		if len(c.stack) > 0 {
			parent = c.stack[len(c.stack)-1]
		}
		return nil, reflexerr.ErrCircularDependency(parent, path)
	}

	if path == "" {
		return nil, reflexerr.ErrInvalidSourcePath(path)
	}

	src, err := c.reader.Read(path)
	if err != nil {
		return nil, err
	}
	c.Sources[path] = src

	prog, err := parser.Parse(path, src)
	if err != nil {
		return nil, err
	}

	if !parametric {
		c.loading[path] = true
	}
	c.stack = append(c.stack, path)
	defer func() {
		c.stack = c.stack[:len(c.stack)-1]
		if !parametric {
			delete(c.loading, path)
		}
	}()

	exp := &directives.Exports{}
	childEnv := c.childScope(path, env, exp)
	expanded, err := directives.Expand(childEnv, prog, src)
	if err != nil {
		return nil, err
	}

	snapshot := make(directives.Exports, len(*exp))
	for k, v := range *exp {
		snapshot[k] = v
	}

	module := &Module{
		Path:    path,
		Source:  src,
		Program: expanded,
		Exports: snapshot,
	}
	if !parametric {
		c.modules[path] = module
	}
	return module, nil
}

// childScope creates the Env a freshly loaded module expands against:
// the caller's bindings, copied so the child can be extended without
// mutating the parent's scope, an Importer bound to this Context and to
// parentPath's directory so the module's own @import calls resolve
// relative paths the way spec's context.import does, and a fresh exports
// table every directive in this frame (and any child scope it creates
// via Env.Child, which copies the map but keeps this same pointer)
// shares by reference to publish values for an importer to read back.
func (c *Context) childScope(parentPath string, env directives.Env, exp *directives.Exports) directives.Env {
	base := env
	if base == nil {
		base = directives.Env{}
	}
	base = base.WithExports(exp)
	return base.WithImporter(func(path string, vars directives.Env) (directives.Value, error) {
		return c.Import(resolveImportPath(parentPath, path), vars)
	})
}

// resolveImportPath resolves a nested @import's path against the
// directory of the module that imported it. A path beginning with "/"
// is absolute and passes through unchanged.
func resolveImportPath(parentPath, path string) string {
	if strings.HasPrefix(path, "/") {
		return path
	}
	return filepath.Join(filepath.Dir(parentPath), path)
}

// ExportsHash returns a content hash of m's resolved Exports table,
// stable across repeated loads of the same non-parametric module — the
// cache-determinism check a caller can use to confirm the loader's
// cache is returning identical content, not merely the same pointer.
func ExportsHash(m *Module) (uint64, error) {
	h, err := hashstructure.Hash(m.Exports, hashstructure.FormatV2, nil)
	if err != nil {
		return 0, errors.Wrap(err, "hash module exports")
	}
	return h, nil
}

// Import loads path as a nested module of the currently loading one and
// returns its "default" export — the value the loaded module published
// under that name via (@export "default" ...), the mechanism directive
// bodies use to pull in another template file's computed bindings.
func (c *Context) Import(path string, env directives.Env) (directives.Value, error) {
	m, err := c.Load(path, env)
	if err != nil {
		return nil, err
	}
	v, ok := m.Exports["default"]
	if !ok {
		return nil, reflexerr.ErrMissingDefaultExport(path)
	}
	return v, nil
}
