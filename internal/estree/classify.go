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

// expressionTypes is the closed set of ESTree expression variants. It is
// the single source of truth for IsExpression; adding a new expression
// node means adding it here and nowhere else.
var expressionTypes = map[Type]bool{
	TIdentifier:               true,
	TLiteral:                  true,
	TTemplateLiteral:          true,
	TTaggedTemplateExpression: true,
	TUnaryExpression:          true,
	TUpdateExpression:         true,
	TBinaryExpression:         true,
	TLogicalExpression:        true,
	TConditionalExpression:    true,
	TArrowFunctionExpression:  true,
	TFunctionExpression:       true,
	TClassExpression:          true,
	TCallExpression:           true,
	TNewExpression:            true,
	TMemberExpression:         true,
	TChainExpression:          true,
	TObjectExpression:         true,
	TArrayExpression:          true,
	TSpreadElement:            true,
	TAssignmentExpression:     true,
	TSequenceExpression:       true,
	TThisExpression:           true,
	TSuper:                    true,
	TAwaitExpression:          true,
	TYieldExpression:          true,
	TImportExpression:         true,
	TMetaProperty:             true,
}

var patternTypes = map[Type]bool{
	TIdentifier:         true,
	TObjectPattern:      true,
	TArrayPattern:       true,
	TRestElement:        true,
	TAssignmentPattern:  true,
	TMemberExpression:   true,
}

// IsExpression reports whether node's Type tag is one of the closed
// ESTree expression variants. It is a pure function of node.Type().
func IsExpression(node Node) bool {
	if node == nil {
		return false
	}
	return expressionTypes[node.Type()]
}

// IsPattern reports whether node's Type tag is one of the binding-target
// pattern variants (the left-hand side of a declaration or parameter).
func IsPattern(node Node) bool {
	if node == nil {
		return false
	}
	return patternTypes[node.Type()]
}
