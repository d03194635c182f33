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

// Package gojaconv adapts goja's ECMAScript parser into estree.Node
// trees, so the validator never has to parse JavaScript itself. goja
// positions source offsets with a file.Set rather than line/column
// pairs directly; Convert resolves them through the same Set the
// parser produced. Only the UnsupportedNode values built for shapes
// the adapter does not translate carry a resolved location; every
// other node it builds has a zero-value Loc.
package gojaconv

import (
	"github.com/dop251/goja/ast"
	"github.com/dop251/goja/file"
	"github.com/reflexjs/corelang/internal/estree"
)

// converter carries the position table needed to turn a goja file.Idx
// into a resolved estree.Position.
type converter struct {
	set *file.Set
}

// Convert turns a parsed goja Program into an estree.Program. sourceType
// is passed through verbatim — goja itself does not distinguish script
// from module source, so the caller (the CLI, or a test) decides which
// grammar to validate against.
func Convert(prog *ast.Program, set *file.Set, sourceType string) *estree.Program {
	c := &converter{set: set}
	body := make([]estree.Node, 0, len(prog.Body))
	for _, stmt := range prog.Body {
		body = append(body, c.statement(stmt))
	}
	return &estree.Program{
		SourceType: sourceType,
		Body:       body,
	}
}

func (c *converter) loc(from, to file.Idx) estree.SourceLocation {
	start := c.set.Position(from)
	end := c.set.Position(to)
	return estree.SourceLocation{
		Source: start.Filename,
		Start:  estree.Position{Line: start.Line, Column: start.Column, Offset: int(from) - 1},
		End:    estree.Position{Line: end.Line, Column: end.Column, Offset: int(to) - 1},
	}
}

// unsupported wraps any goja node shape this adapter does not yet
// translate. The validator rejects it the same way it would reject any
// other syntax form outside the accepted subset.
func (c *converter) unsupported(name string, from, to file.Idx) estree.Node {
	return estree.NewUnsupportedNode(name, c.loc(from, to))
}

func (c *converter) statement(s ast.Statement) estree.Node {
	switch n := s.(type) {
	case *ast.ExpressionStatement:
		return &estree.ExpressionStatement{Expression: c.expression(n.Expression.Expr)}
	case *ast.VariableStatement:
		return c.variableStatement(n)
	case *ast.LexicalDeclaration:
		decl := c.variableStatement(&ast.VariableStatement{List: n.List})
		decl.Kind = n.Token.String()
		return decl
	case *ast.ReturnStatement:
		var arg estree.Node
		if n.Argument != nil {
			arg = c.expression(n.Argument)
		}
		return &estree.ReturnStatement{Argument: arg}
	case *ast.ThrowStatement:
		return &estree.ThrowStatement{Argument: c.expression(n.Argument)}
	case *ast.BlockStatement:
		return c.blockStatement(n)
	case *ast.IfStatement:
		return c.ifStatement(n)
	case *ast.TryStatement:
		return c.tryStatement(n)
	case *ast.EmptyStatement:
		return &estree.EmptyStatement{}
	default:
		return c.unsupported("Statement", s.Idx0(), s.Idx1())
	}
}

func (c *converter) blockStatement(n *ast.BlockStatement) *estree.BlockStatement {
	body := make([]estree.Node, 0, len(n.List))
	for _, s := range n.List {
		body = append(body, c.statement(s))
	}
	return &estree.BlockStatement{Body: body}
}

func (c *converter) ifStatement(n *ast.IfStatement) *estree.IfStatement {
	out := &estree.IfStatement{
		Test:       c.expression(n.Test),
		Consequent: c.statement(n.Consequent),
	}
	if n.Alternate != nil {
		out.Alternate = c.statement(n.Alternate)
	}
	return out
}

func (c *converter) tryStatement(n *ast.TryStatement) *estree.TryStatement {
	out := &estree.TryStatement{Block: c.blockStatement(n.Body)}
	if n.Catch != nil {
		handler := &estree.CatchClause{Body: c.blockStatement(n.Catch.Body)}
		if n.Catch.Parameter != nil {
			handler.Param = c.bindingTarget(n.Catch.Parameter)
		}
		out.Handler = handler
	}
	if n.Finally != nil {
		out.Finalizer = c.blockStatement(n.Finally)
	}
	return out
}

func (c *converter) variableStatement(n *ast.VariableStatement) *estree.VariableDeclaration {
	decls := make([]*estree.VariableDeclarator, 0, len(n.List))
	for _, b := range n.List {
		d := &estree.VariableDeclarator{Id: c.bindingTarget(b.Target)}
		if b.Initializer != nil {
			d.Init = c.expression(b.Initializer)
		}
		decls = append(decls, d)
	}
	return &estree.VariableDeclaration{Kind: "var", Declarations: decls}
}

func (c *converter) bindingTarget(target ast.BindingTarget) estree.Node {
	switch n := target.(type) {
	case *ast.Identifier:
		return &estree.Identifier{Name: string(n.Name)}
	case *ast.ObjectPattern:
		props := make([]estree.Node, 0, len(n.Properties))
		for _, p := range n.Properties {
			switch kv := p.(type) {
			case *ast.PropertyShort:
				var value estree.Node = &estree.Identifier{Name: string(kv.Name.Name)}
				if kv.Initializer != nil {
					value = &estree.AssignmentPattern{Left: value, Right: c.expression(kv.Initializer)}
				}
				props = append(props, &estree.Property{
					Key:       &estree.Identifier{Name: string(kv.Name.Name)},
					Value:     value,
					Shorthand: true,
					Kind:      "init",
				})
			case *ast.PropertyKeyed:
				props = append(props, &estree.Property{Key: c.expression(kv.Key), Value: c.expression(kv.Value), Computed: kv.Computed, Kind: "init"})
			default:
				props = append(props, c.unsupported("Property", p.Idx0(), p.Idx1()))
			}
		}
		if n.Rest != nil {
			props = append(props, &estree.RestElement{Argument: c.expression(n.Rest)})
		}
		return &estree.ObjectPattern{Properties: props}
	case *ast.ArrayPattern:
		elems := make([]estree.Node, 0, len(n.Elements))
		for _, e := range n.Elements {
			if e == nil {
				elems = append(elems, nil)
				continue
			}
			elems = append(elems, c.bindingTarget(e))
		}
		if n.Rest != nil {
			elems = append(elems, &estree.RestElement{Argument: c.expression(n.Rest)})
		}
		return &estree.ArrayPattern{Elements: elems}
	default:
		return c.unsupported("BindingTarget", target.Idx0(), target.Idx1())
	}
}

func (c *converter) expression(e ast.Expression) estree.Node {
	switch n := e.(type) {
	case *ast.Identifier:
		return &estree.Identifier{Name: string(n.Name)}
	case *ast.NumberLiteral:
		return &estree.Literal{Kind: estree.LiteralNumber, Raw: n.Literal}
	case *ast.StringLiteral:
		return &estree.Literal{Kind: estree.LiteralString, Value: string(n.Value), Raw: n.Literal}
	case *ast.BooleanLiteral:
		return &estree.Literal{Kind: estree.LiteralBoolean, Value: n.Value}
	case *ast.NullLiteral:
		return &estree.Literal{Kind: estree.LiteralNull}
	case *ast.ArrayLiteral:
		elems := make([]estree.Node, 0, len(n.Value))
		for _, el := range n.Value {
			if el == nil {
				elems = append(elems, nil)
				continue
			}
			elems = append(elems, c.expression(el))
		}
		return &estree.ArrayExpression{Elements: elems}
	case *ast.ObjectLiteral:
		props := make([]estree.Node, 0, len(n.Value))
		for _, p := range n.Value {
			props = append(props, c.property(p))
		}
		return &estree.ObjectExpression{Properties: props}
	case *ast.UnaryExpression:
		return &estree.UnaryExpression{Operator: n.Operator.String(), Prefix: true, Argument: c.expression(n.Operand)}
	case *ast.BinaryExpression:
		if n.Operator.String() == "&&" || n.Operator.String() == "||" || n.Operator.String() == "??" {
			return &estree.LogicalExpression{Operator: n.Operator.String(), Left: c.expression(n.Left), Right: c.expression(n.Right)}
		}
		return &estree.BinaryExpression{Operator: n.Operator.String(), Left: c.expression(n.Left), Right: c.expression(n.Right)}
	case *ast.ConditionalExpression:
		return &estree.ConditionalExpression{
			Test:       c.expression(n.Test),
			Consequent: c.expression(n.Consequent),
			Alternate:  c.expression(n.Alternate),
		}
	case *ast.CallExpression:
		args := make([]estree.Node, 0, len(n.ArgumentList))
		for _, a := range n.ArgumentList {
			args = append(args, c.expression(a))
		}
		return &estree.CallExpression{Callee: c.expression(n.Callee), Arguments: args}
	case *ast.NewExpression:
		args := make([]estree.Node, 0, len(n.ArgumentList))
		for _, a := range n.ArgumentList {
			args = append(args, c.expression(a))
		}
		return &estree.NewExpression{Callee: c.expression(n.Callee), Arguments: args}
	case *ast.DotExpression:
		return &estree.MemberExpression{Object: c.expression(n.Left), Property: &estree.Identifier{Name: string(n.Identifier.Name)}}
	case *ast.BracketExpression:
		return &estree.MemberExpression{Object: c.expression(n.Left), Property: c.expression(n.Member), Computed: true}
	case *ast.ArrowFunctionLiteral:
		return c.arrowFunction(n)
	case *ast.SpreadExpression:
		return &estree.SpreadElement{Argument: c.expression(n.Expression)}
	default:
		return c.unsupported("Expression", e.Idx0(), e.Idx1())
	}
}

func (c *converter) arrowFunction(n *ast.ArrowFunctionLiteral) *estree.ArrowFunctionExpression {
	params := make([]estree.Node, 0, len(n.ParameterList.List))
	for _, p := range n.ParameterList.List {
		target := c.bindingTarget(p.Target)
		if p.Initializer != nil {
			target = &estree.AssignmentPattern{Left: target, Right: c.expression(p.Initializer)}
		}
		params = append(params, target)
	}
	if n.ParameterList.Rest != nil {
		params = append(params, &estree.RestElement{Argument: c.expression(n.ParameterList.Rest)})
	}

	out := &estree.ArrowFunctionExpression{Params: params, Async: n.Async}
	switch body := n.Body.(type) {
	case *ast.BlockStatement:
		out.Body = c.blockStatement(body)
	case ast.Expression:
		out.Body = c.expression(body)
	}
	return out
}

func (c *converter) property(p ast.Property) estree.Node {
	switch prop := p.(type) {
	case *ast.PropertyKeyed:
		key := c.expression(prop.Key)
		kind := "init"
		switch prop.Kind {
		case ast.PropertyKindGet:
			kind = "get"
		case ast.PropertyKindSet:
			kind = "set"
		}
		return &estree.Property{Key: key, Value: c.expression(prop.Value), Computed: prop.Computed, Kind: kind}
	case *ast.PropertyShort:
		ident := &estree.Identifier{Name: string(prop.Name.Name)}
		return &estree.Property{Key: ident, Value: ident, Shorthand: true, Kind: "init"}
	case *ast.SpreadElement:
		return &estree.SpreadElement{Argument: c.expression(prop.Expression)}
	default:
		return c.unsupported("Property", p.Idx0(), p.Idx1())
	}
}
