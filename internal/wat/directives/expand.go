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

package directives

import (
	"strings"

	"github.com/reflexjs/corelang/internal/reflexerr"
	"github.com/reflexjs/corelang/internal/wat/ast"
)

// Directive rewrites one directive Instruction, given the arguments it
// was called with (trivia already stripped) and the Env it closes over.
// It returns the values the call expands to. Every registered directive
// returns exactly one; @block, @map, @iterate and @instruction return it
// as a nodeList that is spliced in place.
type Directive func(env Env, inst *ast.Instruction, args []ast.Node) ([]Value, error)

var registry = map[string]Directive{
	"@get":         getDirective,
	"@concat":      concatDirective,
	"@add":         addDirective,
	"@branch":      branchDirective,
	"@map":         mapDirective,
	"@iterate":     iterateDirective,
	"@block":       blockDirective,
	"@list":        listDirective,
	"@list_item":   listItemDirective,
	"@instruction": instructionDirective,
	"@reverse":     reverseDirective,
	"@import":      importDirective,
	"@export":      exportDirective,
}

// IsDirective reports whether name is a recognized "@"-headed macro
// form, as opposed to an ordinary WAT instruction name.
func IsDirective(name string) bool {
	return strings.HasPrefix(name, "@")
}

// Expand walks prog, replacing every directive Instruction with the
// plain WAT (or nested directive output, expanded in turn) it stands
// for. It returns a new Program; the input tree is never mutated, so a
// cached, non-parametric load can be expanded repeatedly against
// different environments without cross-contamination. src is prog's
// original source text, bound into env so a directive error can
// resolve a path:line:col location.
func Expand(env Env, prog *ast.Program, src string) (*ast.Program, error) {
	env = env.WithSource(src)
	stmts, err := expandAll(env, prog.Statements)
	if err != nil {
		return nil, err
	}
	return &ast.Program{Statements: stmts}, nil
}

func expandAll(env Env, nodes []ast.Node) ([]ast.Node, error) {
	var out []ast.Node
	for _, n := range nodes {
		expanded, err := expandNode(env, n)
		if err != nil {
			return nil, err
		}
		out = append(out, expanded...)
	}
	return out, nil
}

func expandNode(env Env, n ast.Node) ([]ast.Node, error) {
	inst, ok := n.(*ast.Instruction)
	if !ok {
		return []ast.Node{n}, nil
	}

	if IsDirective(inst.Name) {
		return expandDirective(env, inst)
	}

	elements, err := expandAll(env, inst.Elements)
	if err != nil {
		return nil, err
	}
	if sameNodes(elements, inst.Elements) {
		return []ast.Node{inst}, nil
	}
	return []ast.Node{ast.NewInstruction(inst.Name, elements)}, nil
}

func expandDirective(env Env, inst *ast.Instruction) ([]ast.Node, error) {
	directive, ok := registry[inst.Name]
	if !ok {
		return nil, reflexerr.ErrInvalidDirective(inst.Name, inst.Location(), env.source())
	}

	args := inst.Args()
	var operands []ast.Node
	if len(args) > 0 {
		operands = args[1:] // args[0] is the directive's own "@name" term
	}

	values, err := directive(env, inst, operands)
	if err != nil {
		return nil, err
	}

	var out []ast.Node
	for _, v := range values {
		switch t := v.(type) {
		case nodeList:
			out = append(out, []ast.Node(t)...)
		default:
			node, err := toNode(v)
			if err != nil {
				return nil, err
			}
			reexpanded, err := expandNode(env, node)
			if err != nil {
				return nil, err
			}
			out = append(out, reexpanded...)
		}
	}
	return out, nil
}

// nodeList lets a directive (@block, @instruction) hand back raw AST
// nodes directly, bypassing the scalar/Node coercion expandDirective
// otherwise applies to every returned Value.
type nodeList []ast.Node

func sameNodes(a, b []ast.Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
