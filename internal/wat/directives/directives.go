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
	"github.com/reflexjs/corelang/internal/reflexerr"
	"github.com/reflexjs/corelang/internal/wat/ast"
)

// getDirective: (@get "name") looks up a bound variable by name and
// yields it as a single value.
func getDirective(env Env, inst *ast.Instruction, args []ast.Node) ([]Value, error) {
	if len(args) != 1 {
		return nil, reflexerr.ErrInvalidDirective(inst.Name, inst.Location(), env.source())
	}
	name, err := argText(env, args[0])
	if err != nil {
		return nil, err
	}
	v, ok := env[name]
	if !ok {
		return nil, errors.Errorf("undefined variable: %s", name)
	}
	return []Value{v}, nil
}

// concatDirective: (@concat a b c ...) renders each operand to text and
// joins them, yielding a single synthesized term.
func concatDirective(env Env, inst *ast.Instruction, args []ast.Node) ([]Value, error) {
	values, err := evalArgs(env, args)
	if err != nil {
		return nil, err
	}
	var b strings.Builder
	for _, v := range values {
		s, err := text(v)
		if err != nil {
			return nil, err
		}
		b.WriteString(s)
	}
	return []Value{b.String()}, nil
}

// addDirective: (@add a b ...) sums its operands numerically.
func addDirective(env Env, inst *ast.Instruction, args []ast.Node) ([]Value, error) {
	values, err := evalArgs(env, args)
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, reflexerr.ErrInvalidDirective(inst.Name, inst.Location(), env.source())
	}
	var sum float64
	for _, v := range values {
		n, err := toFloatValue(v)
		if err != nil {
			return nil, err
		}
		sum += n
	}
	return []Value{sum}, nil
}

func toFloatValue(v Value) (float64, error) {
	if n, ok := v.(ast.Node); ok {
		s, err := text(n)
		if err != nil {
			return 0, err
		}
		return toFloat(s)
	}
	return toFloat(v)
}

// branchDirective: (@branch cond then else) evaluates cond and expands
// to the then or else arm without ever evaluating the other.
func branchDirective(env Env, inst *ast.Instruction, args []ast.Node) ([]Value, error) {
	if len(args) != 3 {
		return nil, reflexerr.ErrInvalidDirective(inst.Name, inst.Location(), env.source())
	}
	cond, err := evalArg(env, args[0])
	if err != nil {
		return nil, err
	}
	if truthy(cond) {
		v, err := evalArg(env, args[1])
		if err != nil {
			return nil, err
		}
		return []Value{v}, nil
	}
	v, err := evalArg(env, args[2])
	if err != nil {
		return nil, err
	}
	return []Value{v}, nil
}

// mapDirective: (@map list $item body...) evaluates body once per
// element of list, binding item (the binder term with its "$" sigil
// stripped) to the element, and concatenates
// the resulting nodes — the template-engine analogue of a list
// comprehension.
func mapDirective(env Env, inst *ast.Instruction, args []ast.Node) ([]Value, error) {
	return iterateOver(env, inst, args)
}

// iterateDirective behaves like @map; it is the spelling used when the
// body is expanded purely for its side effect of emitting repeated WAT
// rather than producing a value a caller binds.
func iterateDirective(env Env, inst *ast.Instruction, args []ast.Node) ([]Value, error) {
	return iterateOver(env, inst, args)
}

func iterateOver(env Env, inst *ast.Instruction, args []ast.Node) ([]Value, error) {
	if len(args) < 2 {
		return nil, reflexerr.ErrInvalidDirective(inst.Name, inst.Location(), env.source())
	}
	source, err := evalArg(env, args[0])
	if err != nil {
		return nil, err
	}
	binder, ok := args[1].(*ast.Term)
	if !ok {
		return nil, reflexerr.ErrInvalidDirective(inst.Name, inst.Location(), env.source())
	}
	binderName := strings.TrimPrefix(binder.Source, "$")
	list, err := toList(source)
	if err != nil {
		return nil, reflexerr.ErrInvalidTransformationType(typeName(source))
	}

	body := args[2:]
	var out []Value
	for _, item := range list {
		child := env.Child(map[string]Value{binderName: item})
		values, err := evalArgs(child, body)
		if err != nil {
			return nil, err
		}
		out = append(out, values...)
	}
	return []Value{nodeListFromValues(out)}, nil
}

func typeName(v Value) string {
	switch v.(type) {
	case List:
		return "List"
	case ast.Node:
		return "Node"
	case string:
		return "string"
	case float64, int:
		return "number"
	case bool:
		return "bool"
	default:
		return "unknown"
	}
}

// blockDirective: (@block a b c ...) expands each operand and splices
// all resulting nodes into the enclosing position, yielding them as a
// single nodeList value (as @map and @iterate also do).
func blockDirective(env Env, inst *ast.Instruction, args []ast.Node) ([]Value, error) {
	values, err := evalArgs(env, args)
	if err != nil {
		return nil, err
	}
	return []Value{nodeListFromValues(values)}, nil
}

// nodeListFromValues coerces a Value slice to printable AST nodes,
// flattening any nested nodeList produced by @block or @map.
func nodeListFromValues(values []Value) nodeList {
	var out nodeList
	for _, v := range values {
		if nl, ok := v.(nodeList); ok {
			out = append(out, []ast.Node(nl)...)
			continue
		}
		n, err := toNode(v)
		if err != nil {
			// A value with no node representation (e.g. a raw List) is
			// dropped from printable output; callers needing it as data
			// must consume it through @get instead of splicing it.
			continue
		}
		out = append(out, n)
	}
	return out
}

// listDirective: (@list a b c ...) builds a List value out of its
// operands, for binding to a variable and ranging over with @map.
func listDirective(env Env, inst *ast.Instruction, args []ast.Node) ([]Value, error) {
	values, err := evalArgs(env, args)
	if err != nil {
		return nil, err
	}
	return []Value{List(values)}, nil
}

// listItemDirective: (@list_item value) is a transparent wrapper used
// to force an ambiguous operand (e.g. a bare number) to be treated as
// one list element rather than splatted, for symmetry with @list's
// variadic operand list.
func listItemDirective(env Env, inst *ast.Instruction, args []ast.Node) ([]Value, error) {
	if len(args) != 1 {
		return nil, reflexerr.ErrInvalidDirective(inst.Name, inst.Location(), env.source())
	}
	v, err := evalArg(env, args[0])
	if err != nil {
		return nil, err
	}
	return []Value{v}, nil
}

// instructionDirective: (@instruction name arg...) builds a fresh
// Instruction node with a computed name, for emitting WAT forms whose
// head is itself the product of expansion (e.g. "local.get" + index).
func instructionDirective(env Env, inst *ast.Instruction, args []ast.Node) ([]Value, error) {
	if len(args) == 0 {
		return nil, reflexerr.ErrInvalidDirective(inst.Name, inst.Location(), env.source())
	}
	name, err := argText(env, args[0])
	if err != nil {
		return nil, err
	}
	values, err := evalArgs(env, args[1:])
	if err != nil {
		return nil, err
	}

	elements := []ast.Node{ast.NewTerm(name)}
	for i, v := range values {
		if nl, ok := v.(nodeList); ok {
			if i > 0 || len(values) > 1 {
				elements = append(elements, ast.NewWhitespace(" "))
			}
			elements = append(elements, []ast.Node(nl)...)
			continue
		}
		elements = append(elements, ast.NewWhitespace(" "))
		n, err := toNode(v)
		if err != nil {
			return nil, err
		}
		elements = append(elements, n)
	}
	return []Value{nodeList{ast.NewInstruction(name, elements)}}, nil
}

// reverseDirective: (@reverse list) yields a new List with the source
// list's elements in the opposite order.
func reverseDirective(env Env, inst *ast.Instruction, args []ast.Node) ([]Value, error) {
	if len(args) != 1 {
		return nil, reflexerr.ErrInvalidDirective(inst.Name, inst.Location(), env.source())
	}
	v, err := evalArg(env, args[0])
	if err != nil {
		return nil, err
	}
	list, err := toList(v)
	if err != nil {
		return nil, reflexerr.ErrInvalidTransformationType(typeName(v))
	}
	reversed := make(List, len(list))
	for i, item := range list {
		reversed[len(list)-1-i] = item
	}
	return []Value{reversed}, nil
}

// importDirective: (@import "path" name value ...) loads another WAT
// module through the Importer the loader bound into env, passing any
// trailing name/value pairs as that module's fresh parameter scope,
// and yields the loaded module's default export.
func importDirective(env Env, inst *ast.Instruction, args []ast.Node) ([]Value, error) {
	if len(args) == 0 || len(args)%2 != 1 {
		return nil, reflexerr.ErrInvalidDirective(inst.Name, inst.Location(), env.source())
	}
	imp, ok := env.importer()
	if !ok {
		return nil, errors.Errorf("@import is not available in this context")
	}
	path, err := argText(env, args[0])
	if err != nil {
		return nil, err
	}

	vars := Env{}
	for i := 1; i < len(args); i += 2 {
		name, err := argText(env, args[i])
		if err != nil {
			return nil, err
		}
		v, err := evalArg(env, args[i+1])
		if err != nil {
			return nil, err
		}
		vars[name] = v
	}

	v, err := imp(path, vars)
	if err != nil {
		return nil, err
	}
	return []Value{v}, nil
}

// exportDirective: (@export "name" value) publishes value into the
// current load frame's exports table under name, for whatever module
// imports this one to read via context.import, and yields value itself
// so the form is transparent in the surrounding WAT output — the
// publication is a side effect, not a rewrite of what's here.
func exportDirective(env Env, inst *ast.Instruction, args []ast.Node) ([]Value, error) {
	if len(args) != 2 {
		return nil, reflexerr.ErrInvalidDirective(inst.Name, inst.Location(), env.source())
	}
	name, err := argText(env, args[0])
	if err != nil {
		return nil, err
	}
	v, err := evalArg(env, args[1])
	if err != nil {
		return nil, err
	}
	exp := env.exports()
	if exp == nil {
		return nil, errors.Errorf("@export is not available in this context")
	}
	(*exp)[name] = v
	return []Value{v}, nil
}

// argText resolves a single operand to a plain name string: a bare
// term or string literal, with any leading "$" sigil stripped so
// "name", "$name" and a bare name term all address the same binding.
func argText(env Env, n ast.Node) (string, error) {
	switch t := n.(type) {
	case *ast.Term:
		return strings.TrimPrefix(t.Source, "$"), nil
	case *ast.String:
		s, err := text(t)
		if err != nil {
			return "", err
		}
		return strings.TrimPrefix(s, "$"), nil
	default:
		return "", errors.Errorf("expected a name, received %T", n)
	}
}
