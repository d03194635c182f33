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

// Package validator decides whether an ESTree program is a legal ReflexJS
// program: every statement must either be a declaration, an
// import/export, or participate in producing a single expression value.
package validator

import (
	"github.com/reflexjs/corelang/internal/diagnostic"
	"github.com/reflexjs/corelang/internal/estree"
)

// Meta describes the rule, mirroring the ESLint plugin shape this
// validator is modeled on.
type Meta struct {
	Type        string
	Description string
}

// Context is what Create receives; Report is the sink every check call
// reports through. It never throws — the host decides severity.
type Context struct {
	Report diagnostic.Sink
}

// Visitor maps an ESTree node type name to the handler that validates a
// node of that shape — the same shape an ESLint rule's `create` return
// value has. The Visitor SyntaxRule builds has a single "Program" entry,
// which Validate invokes and which performs the whole walk.
type Visitor map[estree.Type]func(node estree.Node)

// Rule is the plugin-style surface: meta plus a factory for a visitor
// bound to one reporting context.
type Rule struct {
	Meta   Meta
	Create func(ctx *Context) Visitor
}

// SyntaxRule is the ReflexJS legality rule.
var SyntaxRule = Rule{
	Meta: Meta{
		Type:        "problem",
		Description: "disallow syntax outside the ReflexJS pure-expression subset",
	},
	Create: func(ctx *Context) Visitor {
		v := &validator{report: ctx.Report}
		return Visitor{
			estree.TProgram: func(n estree.Node) {
				v.validateProgram(n.(*estree.Program))
			},
		}
	},
}

// Validate runs SyntaxRule over program, invoking report once per
// offending node. It never panics and never stops early.
func Validate(program *estree.Program, report diagnostic.Sink) {
	ctx := &Context{Report: report}
	visitor := SyntaxRule.Create(ctx)
	visitor[estree.TProgram](program)
}
