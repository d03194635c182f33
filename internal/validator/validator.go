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
	"github.com/reflexjs/corelang/internal/diagnostic"
	"github.com/reflexjs/corelang/internal/estree"
)

type validator struct {
	report diagnostic.Sink
}

func (v *validator) reportMsg(node estree.Node, message string, data map[string]string) {
	v.report(diagnostic.Diagnostic{Node: node, Message: message, Data: data})
}

func (v *validator) unsupported(node estree.Node) {
	v.reportMsg(node, msgUnsupportedSyntax, dataNode(node))
}

func (v *validator) validateProgram(p *estree.Program) {
	switch p.SourceType {
	case "script":
		v.validateScript(p)
	default:
		v.validateModule(p)
	}
}

func (v *validator) validateModule(p *estree.Program) {
	defaultExports := 0
	for _, s := range p.Body {
		switch n := s.(type) {
		case *estree.ImportDeclaration:
		case *estree.ExportAllDeclaration:
		case *estree.VariableDeclaration:
			v.validateVariableDeclaration(n)
		case *estree.ExportNamedDeclaration:
			if vd, ok := n.Declaration.(*estree.VariableDeclaration); ok {
				v.validateVariableDeclaration(vd)
			}
		case *estree.ExportDefaultDeclaration:
			defaultExports++
			v.validateExportDefault(n)
		default:
			v.reportMsg(s, msgUnexpectedTopLevel, nil)
		}
	}
	if defaultExports == 0 {
		v.reportMsg(p, msgMissingDefaultExport, nil)
	}
}

func (v *validator) validateExportDefault(n *estree.ExportDefaultDeclaration) {
	if !estree.IsExpression(n.Declaration) {
		v.unsupported(n)
		return
	}
	v.validateExpression(n.Declaration)
}

func (v *validator) validateScript(p *estree.Program) {
	exprStatements := 0
	for _, s := range p.Body {
		switch n := s.(type) {
		case *estree.ExpressionStatement:
			exprStatements++
			v.validateExpression(n.Expression)
		case *estree.ImportDeclaration:
		case *estree.ExportAllDeclaration:
		case *estree.VariableDeclaration:
			v.validateVariableDeclaration(n)
		case *estree.ExportNamedDeclaration:
			if vd, ok := n.Declaration.(*estree.VariableDeclaration); ok {
				v.validateVariableDeclaration(vd)
			}
		case *estree.ExportDefaultDeclaration:
			v.validateExportDefault(n)
		default:
			v.reportMsg(s, msgUnexpectedTopLevel, nil)
		}
	}
	switch {
	case exprStatements == 0:
		v.reportMsg(p, msgMissingTopLevelExpr, nil)
	case exprStatements > 1:
		v.reportMsg(p, msgScriptUnusedStatements, nil)
	}
}
