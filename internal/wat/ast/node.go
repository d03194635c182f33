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

// Package ast is the WAT template's s-expression tree: trivia (comments
// and whitespace) are first-class nodes alongside parens, strings and
// terms, so a tree parsed from source can print back byte-for-byte.
package ast

import "github.com/reflexjs/corelang/internal/wat/source"

// Node is any element of a parsed WAT template. Trivia nodes (Whitespace,
// Comment) satisfy Node like any other element — printers must not
// filter them out.
type Node interface {
	Location() source.Location
	// Modified reports whether this node's text must be synthesized by
	// a printer rather than sliced verbatim from the original source.
	// Directive expansion sets this true on every node it produces.
	Modified() bool
	SetModified(bool)
}

type base struct {
	Loc        source.Location
	IsModified bool
}

func (b *base) Location() source.Location { return b.Loc }
func (b *base) Modified() bool            { return b.IsModified }
func (b *base) SetModified(m bool)        { b.IsModified = m }

// Term is a bare atom: an identifier, keyword, number, or directive
// head such as "@get".
type Term struct {
	base
	Source string
}

func NewTerm(text string) *Term {
	return &Term{base: base{IsModified: true}, Source: text}
}

// String is a double-quoted string literal, Source including the quotes.
type String struct {
	base
	Source string
}

func NewString(value string) *String {
	return &String{base: base{IsModified: true}, Source: `"` + value + `"`}
}

// Comment is a ";; ..." line comment, Source including the terminator.
type Comment struct {
	base
	Source string
}

// Whitespace is a run of space/tab/newline bytes between elements.
type Whitespace struct {
	base
	Source string
}

func NewWhitespace(text string) *Whitespace {
	return &Whitespace{base: base{IsModified: true}, Source: text}
}

// Instruction is a parenthesized form: (name elements...). Trivia
// between elements lives in Elements alongside the meaningful children,
// so printing Elements in order reproduces the interior verbatim.
type Instruction struct {
	base
	Name     string
	Elements []Node
}

func NewInstruction(name string, elements []Node) *Instruction {
	return &Instruction{base: base{IsModified: true}, Name: name, Elements: elements}
}

// Args returns Elements with trivia (Whitespace, Comment) filtered out,
// the view directives operate over.
func (i *Instruction) Args() []Node {
	var out []Node
	for _, e := range i.Elements {
		switch e.(type) {
		case *Whitespace, *Comment:
			continue
		default:
			out = append(out, e)
		}
	}
	return out
}

// Program is a whole parsed source file: a sequence of top-level
// instructions and trivia.
type Program struct {
	base
	Statements []Node
}
