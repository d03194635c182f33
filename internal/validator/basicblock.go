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

// validateBody enforces the basic-block discipline over a function body
// (or an if/try arm): the sequence must end in exactly one tail
// statement that supplies the block's value. parent is the node the
// "does not return a value" diagnostic attaches to (the enclosing
// function, if statement, try statement or catch clause); the "unused
// statements" diagnostic for an extra tail statement goes on the tail.
func (v *validator) validateBody(stmts []estree.Node, parent estree.Node) {
	if len(stmts) == 0 {
		v.reportMsg(parent, msgBlockNoReturn, nil)
		return
	}

	// An else-less if implicitly consumes the remainder of the block as
	// its alternate branch.
	for i, s := range stmts {
		ifs, ok := s.(*estree.IfStatement)
		if !ok || ifs.Alternate != nil {
			continue
		}
		for _, before := range stmts[:i] {
			v.validateInterior(before, stmts[len(stmts)-1])
		}
		v.validateExpression(ifs.Test)
		v.validateBody(blockBody(ifs.Consequent), ifs)
		v.validateBody(stmts[i+1:], ifs)
		return
	}

	tail := stmts[len(stmts)-1]
	for _, s := range stmts[:len(stmts)-1] {
		v.validateInterior(s, tail)
	}
	v.validateTail(tail, parent)
}

// validateInterior validates a statement that is NOT the block's tail.
// tail is the block's actual final statement, the attachment point for
// the "multiple tail statements" diagnostic.
func (v *validator) validateInterior(s estree.Node, tail estree.Node) {
	switch n := s.(type) {
	case *estree.VariableDeclaration:
		v.validateVariableDeclaration(n)
	case *estree.EmptyStatement:
	case *estree.ExpressionStatement:
		v.reportMsg(s, msgBlockUnusedStatements, nil)
	case *estree.BlockStatement:
		v.reportMsg(s, msgBlockNestedBlocks, nil)
	case *estree.ReturnStatement, *estree.ThrowStatement, *estree.IfStatement, *estree.TryStatement:
		// A tail-kind statement that isn't actually the tail: the block
		// was supposed to end in exactly one of these.
		v.reportMsg(tail, msgBlockUnusedStatements, nil)
	default:
		v.unsupported(s)
	}
}

func (v *validator) validateTail(tail estree.Node, parent estree.Node) {
	switch n := tail.(type) {
	case *estree.ReturnStatement:
		if n.Argument == nil {
			v.reportMsg(n, msgMissingReturnValue, nil)
			return
		}
		v.validateExpression(n.Argument)
	case *estree.ThrowStatement:
		v.validateExpression(n.Argument)
	case *estree.IfStatement:
		v.validateExpression(n.Test)
		v.validateBody(blockBody(n.Consequent), n)
		if n.Alternate != nil {
			v.validateBody(blockBody(n.Alternate), n)
		}
	case *estree.TryStatement:
		v.validateTry(n)
	default:
		v.reportMsg(parent, msgBlockNoReturn, nil)
	}
}

func (v *validator) validateTry(n *estree.TryStatement) {
	if n.Finalizer != nil {
		v.unsupported(n)
	}
	if n.Handler == nil {
		v.reportMsg(n, msgMissingCatchBlock, nil)
	} else {
		if n.Handler.Param != nil {
			if _, ok := n.Handler.Param.(*estree.Identifier); !ok {
				v.unsupported(n.Handler.Param)
			}
		}
		v.validateBody(blockBody(n.Handler.Body), n.Handler)
	}
	v.validateBody(blockBody(n.Block), n)
	if n.Finalizer != nil {
		v.validateBody(blockBody(n.Finalizer), n)
	}
}

// blockBody returns a statement's list of child statements for basic-block
// purposes: a BlockStatement's Body, or the statement itself as a
// single-element slice when the grammar allows an unbraced arm.
func blockBody(n estree.Node) []estree.Node {
	if n == nil {
		return nil
	}
	if b, ok := n.(*estree.BlockStatement); ok {
		return b.Body
	}
	return []estree.Node{n}
}
