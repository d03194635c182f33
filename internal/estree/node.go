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

// Package estree models the closed vocabulary of ESTree-shaped nodes the
// ReflexJS validator is allowed to see. It does not own parsing: a real
// ECMAScript parser (see gojaconv) produces these nodes from source text.
package estree

// Type is the discriminant carried by every node's "type" field.
type Type string

const (
	TProgram                    Type = "Program"
	TImportDeclaration          Type = "ImportDeclaration"
	TExportAllDeclaration       Type = "ExportAllDeclaration"
	TExportDefaultDeclaration   Type = "ExportDefaultDeclaration"
	TExportNamedDeclaration     Type = "ExportNamedDeclaration"
	TVariableDeclaration        Type = "VariableDeclaration"
	TVariableDeclarator         Type = "VariableDeclarator"
	TBlockStatement             Type = "BlockStatement"
	TExpressionStatement        Type = "ExpressionStatement"
	TIfStatement                Type = "IfStatement"
	TReturnStatement            Type = "ReturnStatement"
	TThrowStatement             Type = "ThrowStatement"
	TTryStatement               Type = "TryStatement"
	TCatchClause                Type = "CatchClause"
	TEmptyStatement             Type = "EmptyStatement"
	TSwitchStatement            Type = "SwitchStatement"
	TForStatement               Type = "ForStatement"
	TForInStatement             Type = "ForInStatement"
	TForOfStatement             Type = "ForOfStatement"
	TWhileStatement             Type = "WhileStatement"
	TDoWhileStatement           Type = "DoWhileStatement"
	TWithStatement              Type = "WithStatement"
	TLabeledStatement           Type = "LabeledStatement"
	TBreakStatement             Type = "BreakStatement"
	TContinueStatement          Type = "ContinueStatement"
	TDebuggerStatement          Type = "DebuggerStatement"
	TFunctionDeclaration        Type = "FunctionDeclaration"
	TClassDeclaration           Type = "ClassDeclaration"
	TIdentifier                 Type = "Identifier"
	TPrivateIdentifier          Type = "PrivateIdentifier"
	TLiteral                    Type = "Literal"
	TTemplateLiteral            Type = "TemplateLiteral"
	TTaggedTemplateExpression   Type = "TaggedTemplateExpression"
	TUnaryExpression            Type = "UnaryExpression"
	TUpdateExpression           Type = "UpdateExpression"
	TBinaryExpression           Type = "BinaryExpression"
	TLogicalExpression          Type = "LogicalExpression"
	TConditionalExpression      Type = "ConditionalExpression"
	TArrowFunctionExpression    Type = "ArrowFunctionExpression"
	TFunctionExpression         Type = "FunctionExpression"
	TClassExpression            Type = "ClassExpression"
	TCallExpression             Type = "CallExpression"
	TNewExpression              Type = "NewExpression"
	TMemberExpression           Type = "MemberExpression"
	TChainExpression            Type = "ChainExpression"
	TObjectExpression           Type = "ObjectExpression"
	TArrayExpression            Type = "ArrayExpression"
	TProperty                   Type = "Property"
	TSpreadElement              Type = "SpreadElement"
	TAssignmentExpression       Type = "AssignmentExpression"
	TAssignmentPattern          Type = "AssignmentPattern"
	TSequenceExpression         Type = "SequenceExpression"
	TThisExpression             Type = "ThisExpression"
	TSuper                      Type = "Super"
	TAwaitExpression            Type = "AwaitExpression"
	TYieldExpression            Type = "YieldExpression"
	TImportExpression           Type = "ImportExpression"
	TMetaProperty               Type = "MetaProperty"
	TObjectPattern              Type = "ObjectPattern"
	TArrayPattern               Type = "ArrayPattern"
	TRestElement                Type = "RestElement"
	TImportSpecifier            Type = "ImportSpecifier"
	TImportDefaultSpecifier     Type = "ImportDefaultSpecifier"
	TImportNamespaceSpecifier   Type = "ImportNamespaceSpecifier"
	TExportSpecifier            Type = "ExportSpecifier"

	// TUnsupported marks a node gojaconv could not translate into this
	// package's closed vocabulary. The validator rejects it exactly as
	// it would reject any other node type outside the accepted subset.
	TUnsupported Type = "Unsupported"
)

// Position mirrors the byte-offset / line-column pair a real parser
// attaches to every node. Zero value means "unknown" (e.g. for nodes
// synthesized in tests that don't care about location).
type Position struct {
	Line   int
	Column int
	Offset int
}

// SourceLocation is a node's span in its source file.
type SourceLocation struct {
	Source string
	Start  Position
	End    Position
}

// Node is the ESTree sum type. Every concrete node type below implements
// it. A switch over Type() is expected to be exhaustive; the validator's
// default arm is the enforcement point for "no silent acceptance" (spec §8).
type Node interface {
	Type() Type
	Loc() SourceLocation
}

// base is embedded by every concrete node to supply Loc().
type base struct {
	Location SourceLocation
}

func (b base) Loc() SourceLocation { return b.Location }
