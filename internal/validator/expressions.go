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

var arithmeticOps = map[string]bool{
	"+": true, "-": true, "*": true, "/": true, "%": true, "**": true,
	"<": true, "<=": true, ">": true, ">=": true,
	"==": true, "!=": true, "===": true, "!==": true, "in": true,
}

var unaryOps = map[string]bool{"-": true, "+": true, "!": true}

func (v *validator) validateExpression(n estree.Node) {
	if n == nil {
		return
	}
	switch e := n.(type) {
	case *estree.Identifier:
		// always legal on its own

	case *estree.Literal:
		switch e.Kind {
		case estree.LiteralString, estree.LiteralNumber, estree.LiteralBoolean,
			estree.LiteralNull, estree.LiteralUndefined:
		default:
			v.unsupported(n)
		}

	case *estree.TemplateLiteral:
		for _, sub := range e.Expressions {
			v.validateExpression(sub)
		}

	case *estree.TaggedTemplateExpression:
		if e.Quasi != nil {
			for _, sub := range e.Quasi.Expressions {
				v.validateExpression(sub)
			}
		}

	case *estree.UnaryExpression:
		if !unaryOps[e.Operator] {
			v.unsupported(n)
			return
		}
		v.validateExpression(e.Argument)

	case *estree.BinaryExpression:
		if !arithmeticOps[e.Operator] {
			v.unsupported(n)
			return
		}
		v.validateExpression(e.Left)
		v.validateExpression(e.Right)

	case *estree.LogicalExpression:
		if e.Operator != "||" && e.Operator != "&&" {
			v.unsupported(n)
			return
		}
		v.validateExpression(e.Left)
		v.validateExpression(e.Right)

	case *estree.ConditionalExpression:
		v.validateExpression(e.Test)
		v.validateExpression(e.Consequent)
		v.validateExpression(e.Alternate)

	case *estree.ArrowFunctionExpression:
		v.validateArrowFunction(e)

	case *estree.MemberExpression:
		if _, ok := e.Object.(*estree.Super); ok {
			v.unsupported(e.Object)
		} else {
			v.validateExpression(e.Object)
		}
		if _, ok := e.Property.(*estree.PrivateIdentifier); ok {
			v.unsupported(e.Property)
		} else if e.Computed {
			v.validateExpression(e.Property)
		}

	case *estree.CallExpression:
		if _, ok := e.Callee.(*estree.Super); ok {
			v.unsupported(e.Callee)
		} else {
			v.validateExpression(e.Callee)
		}
		for _, a := range e.Arguments {
			v.validateCallArgument(a)
		}

	case *estree.NewExpression:
		v.validateExpression(e.Callee)
		for _, a := range e.Arguments {
			if _, ok := a.(*estree.SpreadElement); ok {
				// Asymmetric with CallExpression: spread is rejected here.
				v.unsupported(a)
				continue
			}
			v.validateExpression(a)
		}

	case *estree.ObjectExpression:
		for _, p := range e.Properties {
			switch pr := p.(type) {
			case *estree.SpreadElement:
				v.validateExpression(pr.Argument)
			case *estree.Property:
				v.validateObjectProperty(pr)
			default:
				v.unsupported(p)
			}
		}

	case *estree.ArrayExpression:
		for _, el := range e.Elements {
			if el == nil {
				v.reportMsg(n, msgMissingArrayItem, nil)
				continue
			}
			if sp, ok := el.(*estree.SpreadElement); ok {
				v.validateExpression(sp.Argument)
				continue
			}
			v.validateExpression(el)
		}

	default:
		// ChainExpression, ClassExpression, FunctionExpression,
		// AssignmentExpression, AwaitExpression, ImportExpression,
		// MetaProperty, SequenceExpression, ThisExpression,
		// UpdateExpression, YieldExpression, and any non-expression
		// node reached by mistake.
		v.unsupported(n)
	}
}

func (v *validator) validateCallArgument(a estree.Node) {
	if sp, ok := a.(*estree.SpreadElement); ok {
		v.validateExpression(sp.Argument)
		return
	}
	v.validateExpression(a)
}

func (v *validator) validateArrowFunction(e *estree.ArrowFunctionExpression) {
	if e.Async || e.Generator {
		v.unsupported(e)
		return
	}
	for _, p := range e.Params {
		v.validateBindingTarget(p)
	}
	switch body := e.Body.(type) {
	case *estree.BlockStatement:
		v.validateBody(body.Body, e)
	default:
		v.validateExpression(body)
	}
}

func (v *validator) validateObjectProperty(pr *estree.Property) {
	if pr.Method || (pr.Kind != "" && pr.Kind != "init") {
		v.unsupported(pr)
		return
	}
	if !pr.Computed {
		switch k := pr.Key.(type) {
		case *estree.Identifier:
		case *estree.Literal:
			if k.Kind != estree.LiteralString && k.Kind != estree.LiteralNumber {
				v.unsupported(pr.Key)
			}
		default:
			v.unsupported(pr.Key)
		}
	} else {
		switch k := pr.Key.(type) {
		case *estree.Literal:
			switch k.Kind {
			case estree.LiteralString, estree.LiteralNumber, estree.LiteralBoolean, estree.LiteralNull:
			default:
				v.unsupported(pr.Key)
			}
		default:
			v.unsupported(pr.Key)
		}
	}
	v.validateExpression(pr.Value)
}
