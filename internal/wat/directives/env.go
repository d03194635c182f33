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

// Package directives implements the WAT template engine's "@"-prefixed
// macro forms: directives read from a variable Env and rewrite an
// Instruction into the plain WAT it stands for, recursively, before the
// printer ever sees the tree.
package directives

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/reflexjs/corelang/internal/wat/ast"
)

// Value is a directive's notion of a bound variable: a single AST node,
// a scalar the directive machinery can coerce to one, or a List for
// @list / @map / @iterate to range over.
type Value interface{}

// List is a homogeneous or heterogeneous sequence of bound values,
// produced by @list and consumed by @map, @iterate and @reverse.
type List []Value

// Env is the variable scope a directive expands against. Child scopes
// (loop bodies, module parameters) are created by copying, never by
// mutating a parent's Env, so sibling expansions never see each other's
// bindings.
type Env map[string]Value

// Child returns a new Env with this Env's bindings plus overrides,
// leaving the receiver untouched.
func (e Env) Child(overrides map[string]Value) Env {
	child := make(Env, len(e)+len(overrides))
	for k, v := range e {
		child[k] = v
	}
	for k, v := range overrides {
		child[k] = v
	}
	return child
}

// importKey is the reserved Env entry @import invokes. It is set by
// loader.Context rather than read directly by template authors, so
// directives never has to import the loader package (which already
// imports directives to expand a module after loading it).
const importKey = "$$import"

// Importer resolves a module path plus a fresh set of variable
// bindings to that module's default export — context.import(path,
// variables) in spec terms.
type Importer func(path string, vars Env) (Value, error)

// WithImporter returns a copy of e with imp bound under the reserved
// import key, for @import to find via importer.
func (e Env) WithImporter(imp Importer) Env {
	child := e.Child(nil)
	child[importKey] = imp
	return child
}

func (e Env) importer() (Importer, bool) {
	v, ok := e[importKey]
	if !ok {
		return nil, false
	}
	imp, ok := v.(Importer)
	return imp, ok
}

// srcKey is the reserved Env entry carrying the source text being
// expanded, so a directive error can resolve a path:line:col location
// without every Directive signature threading src explicitly.
const srcKey = "$$src"

// WithSource returns a copy of e with src bound for location resolution
// in diagnostics raised while expanding against e.
func (e Env) WithSource(src string) Env {
	child := e.Child(nil)
	child[srcKey] = src
	return child
}

// source returns the src bound by WithSource, or "" if none was.
func (e Env) source() string {
	v, ok := e[srcKey]
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// Exports is a load frame's write-only-by-convention publication table:
// values a directive chooses to make available to whatever imported the
// module being expanded, distinct from — and never derived from — the
// frame's input variables.
type Exports map[string]Value

// exportsKey is the reserved Env entry holding the *Exports a frame's
// directives publish into. It is a pointer so every child scope Env.Child
// produces within the same load frame (map copies, not the pointer they
// hold) still shares one underlying table, matching the loader's "parent's
// exports table is shared by reference" child-scope rule.
const exportsKey = "$$exports"

// WithExports returns a copy of e with exp bound as the frame's shared
// exports table.
func (e Env) WithExports(exp *Exports) Env {
	child := e.Child(nil)
	child[exportsKey] = exp
	return child
}

// exports returns the *Exports bound by WithExports, or nil if none was.
func (e Env) exports() *Exports {
	v, ok := e[exportsKey]
	if !ok {
		return nil
	}
	exp, _ := v.(*Exports)
	return exp
}

// toNode coerces a Value to a single printable AST node: nodes pass
// through, strings and numbers become synthesized terms.
func toNode(v Value) (ast.Node, error) {
	switch t := v.(type) {
	case ast.Node:
		return t, nil
	case string:
		return ast.NewTerm(t), nil
	case float64:
		return ast.NewTerm(strconv.FormatFloat(t, 'g', -1, 64)), nil
	case int:
		return ast.NewTerm(strconv.Itoa(t)), nil
	case bool:
		return ast.NewTerm(strconv.FormatBool(t)), nil
	default:
		return nil, errors.Errorf("directive value of type %T has no node representation", v)
	}
}

// toList requires v to already be a List, the contract @map, @iterate
// and @reverse enforce on their source argument.
func toList(v Value) (List, error) {
	l, ok := v.(List)
	if !ok {
		return nil, errors.Errorf("expected list, received %T", v)
	}
	return l, nil
}

// toFloat coerces a Value to a number for @add.
func toFloat(v Value) (float64, error) {
	switch t := v.(type) {
	case float64:
		return t, nil
	case int:
		return float64(t), nil
	case string:
		f, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return 0, errors.Wrapf(err, "expected number, received %q", t)
		}
		return f, nil
	default:
		return 0, errors.Errorf("expected number, received %T", v)
	}
}

// text renders a Value's textual form for @concat, stripping quotes
// from AST string/term nodes rather than nesting their raw source.
func text(v Value) (string, error) {
	switch t := v.(type) {
	case *ast.Term:
		return t.Source, nil
	case *ast.String:
		if len(t.Source) >= 2 {
			return t.Source[1 : len(t.Source)-1], nil
		}
		return t.Source, nil
	case string:
		return t, nil
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64), nil
	case int:
		return strconv.Itoa(t), nil
	case bool:
		return strconv.FormatBool(t), nil
	default:
		return "", errors.Errorf("directive value of type %T has no textual form", v)
	}
}

// truthy implements @branch's condition test: nil, false, 0, "" and an
// empty List are all falsy; everything else is truthy.
func truthy(v Value) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case float64:
		return t != 0
	case int:
		return t != 0
	case string:
		return t != ""
	case List:
		return len(t) != 0
	default:
		return true
	}
}
