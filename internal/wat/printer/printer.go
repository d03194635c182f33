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

// Package printer renders an ast.Program back to WAT text. Unmodified
// nodes are sliced verbatim from the originating source so that
// print(parse(s)) reproduces s byte for byte; modified or
// directive-synthesized nodes are formatted from their fields instead.
package printer

import (
	"strings"

	"github.com/reflexjs/corelang/internal/wat/ast"
)

// Sources resolves a node's Location.Path to the original file text it
// was parsed from, so the printer can slice unmodified nodes verbatim
// rather than trust any text cached on the node itself.
type Sources map[string]string

func Print(sources Sources, program *ast.Program) string {
	var b strings.Builder
	for _, n := range program.Statements {
		writeNode(&b, sources, n)
	}
	return b.String()
}

func writeNode(b *strings.Builder, sources Sources, n ast.Node) {
	switch v := n.(type) {
	case *ast.Instruction:
		writeInstruction(b, sources, v)
	case *ast.Term:
		writeLeaf(b, sources, v, v.Source)
	case *ast.String:
		writeLeaf(b, sources, v, v.Source)
	case *ast.Whitespace:
		writeLeaf(b, sources, v, v.Source)
	case *ast.Comment:
		writeLeaf(b, sources, v, v.Source)
	}
}

// writeLeaf emits a terminal node's text: sliced from the original
// source when unmodified, or the node's own synthesized field when it
// was produced or altered by directive expansion.
func writeLeaf(b *strings.Builder, sources Sources, n ast.Node, synthesized string) {
	if !n.Modified() {
		if src, ok := sources[n.Location().Path]; ok {
			loc := n.Location()
			b.WriteString(src[loc.Offset:loc.End()])
			return
		}
	}
	b.WriteString(synthesized)
}

func writeInstruction(b *strings.Builder, sources Sources, inst *ast.Instruction) {
	if !inst.Modified() {
		if src, ok := sources[inst.Location().Path]; ok {
			loc := inst.Location()
			b.WriteString(src[loc.Offset:loc.End()])
			return
		}
	}

	b.WriteByte('(')
	for i, el := range inst.Elements {
		if i > 0 {
			needsSpace(b, inst.Elements, i)
		}
		writeNode(b, sources, el)
	}
	b.WriteByte(')')
}

// needsSpace inserts a synthesized single space between two adjacent
// non-trivia elements that directive expansion spliced together
// without any whitespace node of its own, satisfying the printer's
// requirement that adjacent terms never fuse into one token.
func needsSpace(b *strings.Builder, elements []ast.Node, i int) {
	prev := elements[i-1]
	cur := elements[i]
	if isTrivia(prev) || isTrivia(cur) {
		return
	}
	b.WriteByte(' ')
}

func isTrivia(n ast.Node) bool {
	switch n.(type) {
	case *ast.Whitespace, *ast.Comment:
		return true
	default:
		return false
	}
}
