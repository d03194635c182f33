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

	"github.com/pkg/errors"
	"github.com/reflexjs/corelang/internal/wat/ast"
)

// evalArg resolves one directive operand to a Value: a "$name" term
// looks up a binding in env, a nested directive call is evaluated in
// place, an ordinary instruction is expanded against env, and anything
// else passes through as a literal AST fragment.
func evalArg(env Env, n ast.Node) (Value, error) {
	if term, ok := n.(*ast.Term); ok && strings.HasPrefix(term.Source, "$") {
		name := term.Source[1:]
		v, ok := env[name]
		if !ok {
			return nil, errors.Errorf("undefined variable: %s", name)
		}
		return v, nil
	}

	if inst, ok := n.(*ast.Instruction); ok && IsDirective(inst.Name) {
		directive, ok := registry[inst.Name]
		if !ok {
			return nil, errors.Errorf("unknown directive: %s", inst.Name)
		}
		args := inst.Args()
		var operands []ast.Node
		if len(args) > 0 {
			operands = args[1:]
		}
		values, err := directive(env, inst, operands)
		if err != nil {
			return nil, err
		}
		switch len(values) {
		case 1:
			return values[0], nil
		default:
			return List(values), nil
		}
	}

	if inst, ok := n.(*ast.Instruction); ok {
		expanded, err := expandNode(env, inst)
		if err != nil {
			return nil, err
		}
		return expanded[0], nil
	}

	return n, nil
}

func evalArgs(env Env, nodes []ast.Node) ([]Value, error) {
	values := make([]Value, 0, len(nodes))
	for _, n := range nodes {
		v, err := evalArg(env, n)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}
