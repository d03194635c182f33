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

import (
	"testing"

	"github.com/reflexjs/corelang/internal/diagnostic"
	"github.com/reflexjs/corelang/internal/estree"
	"github.com/stretchr/testify/require"
)

func ident(name string) *estree.Identifier { return &estree.Identifier{Name: name} }

func numLit(raw string) *estree.Literal {
	return &estree.Literal{Kind: estree.LiteralNumber, Raw: raw}
}

func runValidate(program *estree.Program) []diagnostic.Diagnostic {
	var got []diagnostic.Diagnostic
	Validate(program, func(d diagnostic.Diagnostic) { got = append(got, d) })
	return got
}

func TestModuleWithDefaultExport(t *testing.T) {
	program := &estree.Program{
		SourceType: "module",
		Body: []estree.Node{
			&estree.VariableDeclaration{
				Kind: "const",
				Declarations: []*estree.VariableDeclarator{
					{Id: ident("x"), Init: numLit("1")},
				},
			},
			&estree.ExportDefaultDeclaration{Declaration: ident("x")},
		},
	}
	require.Empty(t, runValidate(program))
}

func TestScriptSingleExpression(t *testing.T) {
	program := &estree.Program{
		SourceType: "script",
		Body: []estree.Node{
			&estree.ExpressionStatement{
				Expression: &estree.BinaryExpression{Operator: "+", Left: numLit("1"), Right: numLit("2")},
			},
		},
	}
	require.Empty(t, runValidate(program))
}

func TestScriptMultipleExpressionsIsUnused(t *testing.T) {
	program := &estree.Program{
		SourceType: "script",
		Body: []estree.Node{
			&estree.ExpressionStatement{Expression: numLit("1")},
			&estree.ExpressionStatement{Expression: numLit("2")},
		},
	}
	got := runValidate(program)
	require.Len(t, got, 1)
	require.Equal(t, msgScriptUnusedStatements, got[0].Message)
}

func TestLetDeclarationIsUnsupported(t *testing.T) {
	program := &estree.Program{
		SourceType: "module",
		Body: []estree.Node{
			&estree.VariableDeclaration{
				Kind: "let",
				Declarations: []*estree.VariableDeclarator{
					{Id: ident("x"), Init: numLit("1")},
				},
			},
			&estree.ExportDefaultDeclaration{Declaration: ident("x")},
		},
	}
	got := runValidate(program)
	require.Len(t, got, 1)
	require.Equal(t, "Unsupported syntax: {{ node }}", got[0].Message)
	require.Equal(t, "VariableDeclaration", got[0].Data["node"])
}

func TestExportDefaultNonExpressionIsUnsupported(t *testing.T) {
	program := &estree.Program{
		SourceType: "module",
		Body: []estree.Node{
			&estree.ExportDefaultDeclaration{Declaration: &estree.ClassDeclaration{}},
		},
	}
	got := runValidate(program)
	require.Len(t, got, 1)
	require.Equal(t, "ExportDefaultDeclaration", got[0].Data["node"])
}

func TestArrowBodyWithoutReturnDoesNotReturnAValue(t *testing.T) {
	arrow := &estree.ArrowFunctionExpression{
		Body: &estree.BlockStatement{
			Body: []estree.Node{
				&estree.VariableDeclaration{
					Kind:         "const",
					Declarations: []*estree.VariableDeclarator{{Id: ident("x"), Init: numLit("1")}},
				},
			},
		},
	}
	program := &estree.Program{
		SourceType: "script",
		Body:       []estree.Node{&estree.ExpressionStatement{Expression: arrow}},
	}
	got := runValidate(program)
	require.Len(t, got, 1)
	require.Equal(t, msgBlockNoReturn, got[0].Message)
}

func TestNewExpressionRejectsSpreadButCallAllows(t *testing.T) {
	spreadArgs := &estree.NewExpression{
		Callee:    ident("Foo"),
		Arguments: []estree.Node{&estree.SpreadElement{Argument: ident("args")}},
	}
	callWithSpread := &estree.CallExpression{
		Callee:    ident("foo"),
		Arguments: []estree.Node{&estree.SpreadElement{Argument: ident("args")}},
	}
	program := &estree.Program{
		SourceType: "script",
		Body: []estree.Node{
			&estree.ExpressionStatement{Expression: spreadArgs},
		},
	}
	got := runValidate(program)
	require.Len(t, got, 1)
	require.Equal(t, "SpreadElement", got[0].Data["node"])

	program2 := &estree.Program{
		SourceType: "script",
		Body:       []estree.Node{&estree.ExpressionStatement{Expression: callWithSpread}},
	}
	require.Empty(t, runValidate(program2))
}

func TestArrayHoleIsMissingItem(t *testing.T) {
	arr := &estree.ArrayExpression{Elements: []estree.Node{numLit("1"), nil, numLit("3")}}
	program := &estree.Program{
		SourceType: "script",
		Body:       []estree.Node{&estree.ExpressionStatement{Expression: arr}},
	}
	got := runValidate(program)
	require.Len(t, got, 1)
	require.Equal(t, msgMissingArrayItem, got[0].Message)
}

func TestObjectGetterIsUnsupported(t *testing.T) {
	obj := &estree.ObjectExpression{
		Properties: []estree.Node{
			&estree.Property{Key: ident("x"), Kind: "get", Value: &estree.FunctionExpression{}},
		},
	}
	program := &estree.Program{
		SourceType: "script",
		Body:       []estree.Node{&estree.ExpressionStatement{Expression: obj}},
	}
	got := runValidate(program)
	require.Len(t, got, 1)
	require.Equal(t, "Property", got[0].Data["node"])
}

func TestElselessIfAbsorbsRemainderOfBlock(t *testing.T) {
	arrow := &estree.ArrowFunctionExpression{
		Body: &estree.BlockStatement{
			Body: []estree.Node{
				&estree.IfStatement{
					Test:       ident("cond"),
					Consequent: &estree.BlockStatement{Body: []estree.Node{&estree.ReturnStatement{Argument: numLit("1")}}},
				},
				&estree.ReturnStatement{Argument: numLit("2")},
			},
		},
	}
	program := &estree.Program{
		SourceType: "script",
		Body:       []estree.Node{&estree.ExpressionStatement{Expression: arrow}},
	}
	require.Empty(t, runValidate(program))
}

func TestTryWithoutCatchIsMissingCatchBlock(t *testing.T) {
	arrow := &estree.ArrowFunctionExpression{
		Body: &estree.BlockStatement{
			Body: []estree.Node{
				&estree.TryStatement{
					Block: &estree.BlockStatement{Body: []estree.Node{&estree.ReturnStatement{Argument: numLit("1")}}},
				},
			},
		},
	}
	program := &estree.Program{
		SourceType: "script",
		Body:       []estree.Node{&estree.ExpressionStatement{Expression: arrow}},
	}
	got := runValidate(program)
	require.Len(t, got, 1)
	require.Equal(t, msgMissingCatchBlock, got[0].Message)
}

func TestRender(t *testing.T) {
	require.Equal(t, "Unsupported syntax: Literal", Render(msgUnsupportedSyntax, map[string]string{"node": "Literal"}))
}
