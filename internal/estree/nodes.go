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

package estree

// Program is the root node. SourceType is either "module" or "script".
type Program struct {
	base
	SourceType string
	Body       []Node
}

func (*Program) Type() Type { return TProgram }

type ImportDeclaration struct {
	base
	Source Node
}

func (*ImportDeclaration) Type() Type { return TImportDeclaration }

type ExportAllDeclaration struct {
	base
	Source   Node
	Exported Node // nilable
}

func (*ExportAllDeclaration) Type() Type { return TExportAllDeclaration }

type ExportDefaultDeclaration struct {
	base
	Declaration Node
}

func (*ExportDefaultDeclaration) Type() Type { return TExportDefaultDeclaration }

type ExportNamedDeclaration struct {
	base
	Declaration Node // nilable
	Specifiers  []Node
	Source      Node // nilable
}

func (*ExportNamedDeclaration) Type() Type { return TExportNamedDeclaration }

type ExportSpecifier struct {
	base
	Local    Node
	Exported Node
}

func (*ExportSpecifier) Type() Type { return TExportSpecifier }

type ImportSpecifier struct{ base }

func (*ImportSpecifier) Type() Type { return TImportSpecifier }

type ImportDefaultSpecifier struct{ base }

func (*ImportDefaultSpecifier) Type() Type { return TImportDefaultSpecifier }

type ImportNamespaceSpecifier struct{ base }

func (*ImportNamespaceSpecifier) Type() Type { return TImportNamespaceSpecifier }

type VariableDeclaration struct {
	base
	Kind         string // "const" | "let" | "var"
	Declarations []*VariableDeclarator
}

func (*VariableDeclaration) Type() Type { return TVariableDeclaration }

type VariableDeclarator struct {
	base
	Id   Node
	Init Node // nilable
}

func (*VariableDeclarator) Type() Type { return TVariableDeclarator }

type BlockStatement struct {
	base
	Body []Node
}

func (*BlockStatement) Type() Type { return TBlockStatement }

type ExpressionStatement struct {
	base
	Expression Node
}

func (*ExpressionStatement) Type() Type { return TExpressionStatement }

type IfStatement struct {
	base
	Test       Node
	Consequent Node
	Alternate  Node // nilable
}

func (*IfStatement) Type() Type { return TIfStatement }

type ReturnStatement struct {
	base
	Argument Node // nilable
}

func (*ReturnStatement) Type() Type { return TReturnStatement }

type ThrowStatement struct {
	base
	Argument Node
}

func (*ThrowStatement) Type() Type { return TThrowStatement }

type CatchClause struct {
	base
	Param Node // nilable
	Body  *BlockStatement
}

func (*CatchClause) Type() Type { return TCatchClause }

type TryStatement struct {
	base
	Block     *BlockStatement
	Handler   *CatchClause // nilable
	Finalizer *BlockStatement // nilable
}

func (*TryStatement) Type() Type { return TTryStatement }

type EmptyStatement struct{ base }

func (*EmptyStatement) Type() Type { return TEmptyStatement }

// The following statement kinds are never legal ReflexJS; they exist so
// the classifier and validator can pattern-match exhaustively and reject
// them by name instead of falling through silently.

type SwitchStatement struct{ base }

func (*SwitchStatement) Type() Type { return TSwitchStatement }

type ForStatement struct{ base }

func (*ForStatement) Type() Type { return TForStatement }

type ForInStatement struct{ base }

func (*ForInStatement) Type() Type { return TForInStatement }

type ForOfStatement struct{ base }

func (*ForOfStatement) Type() Type { return TForOfStatement }

type WhileStatement struct{ base }

func (*WhileStatement) Type() Type { return TWhileStatement }

type DoWhileStatement struct{ base }

func (*DoWhileStatement) Type() Type { return TDoWhileStatement }

type WithStatement struct{ base }

func (*WithStatement) Type() Type { return TWithStatement }

type LabeledStatement struct{ base }

func (*LabeledStatement) Type() Type { return TLabeledStatement }

type BreakStatement struct{ base }

func (*BreakStatement) Type() Type { return TBreakStatement }

type ContinueStatement struct{ base }

func (*ContinueStatement) Type() Type { return TContinueStatement }

type DebuggerStatement struct{ base }

func (*DebuggerStatement) Type() Type { return TDebuggerStatement }

type FunctionDeclaration struct{ base }

func (*FunctionDeclaration) Type() Type { return TFunctionDeclaration }

type ClassDeclaration struct{ base }

func (*ClassDeclaration) Type() Type { return TClassDeclaration }

// --- expressions ---

type Identifier struct {
	base
	Name string
}

func (*Identifier) Type() Type { return TIdentifier }

type PrivateIdentifier struct {
	base
	Name string
}

func (*PrivateIdentifier) Type() Type { return TPrivateIdentifier }

// LiteralKind classifies the runtime type of a Literal's Value, since Go's
// interface{} doesn't distinguish "null" or "bigint" the way JS does.
type LiteralKind string

const (
	LiteralString    LiteralKind = "string"
	LiteralNumber    LiteralKind = "number"
	LiteralBoolean   LiteralKind = "boolean"
	LiteralNull      LiteralKind = "null"
	LiteralUndefined LiteralKind = "undefined"
	LiteralBigInt    LiteralKind = "bigint"
	LiteralRegExp    LiteralKind = "regexp"
)

type Literal struct {
	base
	Kind  LiteralKind
	Value any
	Raw   string
}

func (*Literal) Type() Type { return TLiteral }

type TemplateElement struct {
	base
	Raw    string
	Cooked string
	Tail   bool
}

func (*TemplateElement) Type() Type { return "TemplateElement" }

type TemplateLiteral struct {
	base
	Quasis      []*TemplateElement
	Expressions []Node
}

func (*TemplateLiteral) Type() Type { return TTemplateLiteral }

type TaggedTemplateExpression struct {
	base
	Tag   Node
	Quasi *TemplateLiteral
}

func (*TaggedTemplateExpression) Type() Type { return TTaggedTemplateExpression }

type UnaryExpression struct {
	base
	Operator string
	Argument Node
	Prefix   bool
}

func (*UnaryExpression) Type() Type { return TUnaryExpression }

type UpdateExpression struct{ base }

func (*UpdateExpression) Type() Type { return TUpdateExpression }

type BinaryExpression struct {
	base
	Operator string
	Left     Node
	Right    Node
}

func (*BinaryExpression) Type() Type { return TBinaryExpression }

type LogicalExpression struct {
	base
	Operator string
	Left     Node
	Right    Node
}

func (*LogicalExpression) Type() Type { return TLogicalExpression }

type ConditionalExpression struct {
	base
	Test       Node
	Consequent Node
	Alternate  Node
}

func (*ConditionalExpression) Type() Type { return TConditionalExpression }

type ArrowFunctionExpression struct {
	base
	Params    []Node
	Body      Node // Expression or *BlockStatement
	Async     bool
	Generator bool
}

func (*ArrowFunctionExpression) Type() Type { return TArrowFunctionExpression }

type FunctionExpression struct{ base }

func (*FunctionExpression) Type() Type { return TFunctionExpression }

type ClassExpression struct{ base }

func (*ClassExpression) Type() Type { return TClassExpression }

type CallExpression struct {
	base
	Callee    Node
	Arguments []Node
	Optional  bool
}

func (*CallExpression) Type() Type { return TCallExpression }

type NewExpression struct {
	base
	Callee    Node
	Arguments []Node
}

func (*NewExpression) Type() Type { return TNewExpression }

type MemberExpression struct {
	base
	Object   Node
	Property Node
	Computed bool
	Optional bool
}

func (*MemberExpression) Type() Type { return TMemberExpression }

type ChainExpression struct{ base }

func (*ChainExpression) Type() Type { return TChainExpression }

type ObjectExpression struct {
	base
	Properties []Node // *Property | *SpreadElement
}

func (*ObjectExpression) Type() Type { return TObjectExpression }

type ArrayExpression struct {
	base
	Elements []Node // nil entry == hole
}

func (*ArrayExpression) Type() Type { return TArrayExpression }

type Property struct {
	base
	Key       Node
	Value     Node
	Computed  bool
	Kind      string // "init" | "get" | "set"
	Method    bool
	Shorthand bool
}

func (*Property) Type() Type { return TProperty }

type SpreadElement struct {
	base
	Argument Node
}

func (*SpreadElement) Type() Type { return TSpreadElement }

type AssignmentExpression struct{ base }

func (*AssignmentExpression) Type() Type { return TAssignmentExpression }

type AssignmentPattern struct {
	base
	Left  Node
	Right Node
}

func (*AssignmentPattern) Type() Type { return TAssignmentPattern }

type SequenceExpression struct{ base }

func (*SequenceExpression) Type() Type { return TSequenceExpression }

type ThisExpression struct{ base }

func (*ThisExpression) Type() Type { return TThisExpression }

type Super struct{ base }

func (*Super) Type() Type { return TSuper }

type AwaitExpression struct{ base }

func (*AwaitExpression) Type() Type { return TAwaitExpression }

type YieldExpression struct{ base }

func (*YieldExpression) Type() Type { return TYieldExpression }

type ImportExpression struct{ base }

func (*ImportExpression) Type() Type { return TImportExpression }

type MetaProperty struct{ base }

func (*MetaProperty) Type() Type { return TMetaProperty }

// --- patterns ---

type ObjectPattern struct {
	base
	Properties []Node // *Property | *RestElement
}

func (*ObjectPattern) Type() Type { return TObjectPattern }

type ArrayPattern struct {
	base
	Elements []Node // nil entry == hole
}

func (*ArrayPattern) Type() Type { return TArrayPattern }

type RestElement struct {
	base
	Argument Node
}

func (*RestElement) Type() Type { return TRestElement }

// UnsupportedNode stands in for any source construct an upstream
// parser adapter (gojaconv) could not translate into this package's
// closed vocabulary. Kind names the adapter-side shape it gave up on
// ("Statement", "Expression", ...) for diagnostics; the validator
// itself never special-cases it — it is rejected exactly like any
// other node type outside the accepted subset.
type UnsupportedNode struct {
	base
	Kind string
}

func (*UnsupportedNode) Type() Type { return TUnsupported }

// NewUnsupportedNode constructs an UnsupportedNode carrying a resolved
// source location, the one node type an adapter outside this package
// needs to build with its location already attached.
func NewUnsupportedNode(kind string, loc SourceLocation) *UnsupportedNode {
	return &UnsupportedNode{base: base{Location: loc}, Kind: kind}
}
