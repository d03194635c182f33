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

package validator

import "github.com/reflexjs/corelang/internal/estree"

func (v *validator) validateVariableDeclaration(decl *estree.VariableDeclaration) {
	if decl.Kind != "const" {
		v.unsupported(decl)
		return
	}
	for _, d := range decl.Declarations {
		if d.Init == nil {
			v.reportMsg(d, msgMissingVarInit, nil)
		} else {
			v.validateExpression(d.Init)
		}
		v.validateBindingTarget(d.Id)
	}
}

// validateBindingTarget enforces the declaration/parameter binding rules:
// Identifier, ObjectPattern, or ArrayPattern only.
func (v *validator) validateBindingTarget(n estree.Node) {
	switch t := n.(type) {
	case *estree.Identifier:
	case *estree.ObjectPattern:
		v.validateObjectPattern(t)
	case *estree.ArrayPattern:
		v.validateArrayPattern(t)
	default:
		v.unsupported(n)
	}
}

func (v *validator) validateObjectPattern(p *estree.ObjectPattern) {
	for _, prop := range p.Properties {
		switch pr := prop.(type) {
		case *estree.Property:
			v.validatePatternKey(pr.Key, pr.Computed)
			if _, ok := pr.Value.(*estree.Identifier); !ok {
				v.unsupported(pr.Value)
			}
		default:
			// RestElement and anything else are rejected.
			v.unsupported(prop)
		}
	}
}

func (v *validator) validateArrayPattern(p *estree.ArrayPattern) {
	for _, el := range p.Elements {
		if el == nil {
			continue // holes are tolerated
		}
		if _, ok := el.(*estree.Identifier); !ok {
			v.unsupported(el)
		}
	}
}

// validatePatternKey implements the static/computed key discipline shared
// by destructuring patterns. Static keys admit Identifier or
// string/number/boolean/null literals; computed keys admit that same
// literal set but never a bare Identifier.
func (v *validator) validatePatternKey(key estree.Node, computed bool) {
	if !computed {
		if _, ok := key.(*estree.Identifier); ok {
			return
		}
	}
	if lit, ok := key.(*estree.Literal); ok {
		switch lit.Kind {
		case estree.LiteralString, estree.LiteralNumber, estree.LiteralBoolean, estree.LiteralNull:
			return
		}
	}
	v.unsupported(key)
}
