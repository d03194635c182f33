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

// Package parser turns a WAT template's token stream into an ast.Program,
// tracking an open-paren scope stack so a missing close paren is
// reported at end of file rather than silently truncating the tree.
package parser

import (
	"github.com/reflexjs/corelang/internal/reflexerr"
	"github.com/reflexjs/corelang/internal/wat/ast"
	"github.com/reflexjs/corelang/internal/wat/lexer"
	"github.com/reflexjs/corelang/internal/wat/source"
	"github.com/reflexjs/corelang/internal/wat/token"
)

type parser struct {
	path string
	src  string
	lex  *lexer.Lexer
	tok  token.Token
}

// Parse scans src in full and returns the resulting Program. A file with
// no instruction in it at all — empty, or containing only whitespace
// and comments — fails fast as an empty source file.
func Parse(path, src string) (*ast.Program, error) {
	p := &parser{path: path, src: src, lex: lexer.New(path, src)}
	if err := p.advance(); err != nil {
		return nil, err
	}

	var stmts []ast.Node
	sawInstruction := false
	for p.tok.Kind != token.EOF {
		n, err := p.parseElement()
		if err != nil {
			return nil, err
		}
		if _, ok := n.(*ast.Instruction); ok {
			sawInstruction = true
		}
		stmts = append(stmts, n)
	}
	if !sawInstruction {
		return nil, reflexerr.ErrEmptySourceFile()
	}
	return &ast.Program{Statements: stmts}, nil
}

func (p *parser) advance() error {
	tok, err := p.lex.Next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *parser) text(loc source.Location) string {
	return p.src[loc.Offset:loc.End()]
}

// parseElement parses exactly one top-level or nested element: an
// instruction, a term, a string, or a trivia node.
func (p *parser) parseElement() (ast.Node, error) {
	switch p.tok.Kind {
	case token.OpenParen:
		return p.parseInstruction()
	case token.CloseParen:
		return nil, reflexerr.ErrUnrecognizedToken(p.tok.Location, p.src)
	case token.Term:
		n := &ast.Term{Source: p.text(p.tok.Location)}
		n.Loc = p.tok.Location
		if err := p.advance(); err != nil {
			return nil, err
		}
		return n, nil
	case token.String:
		n := &ast.String{Source: p.text(p.tok.Location)}
		n.Loc = p.tok.Location
		if err := p.advance(); err != nil {
			return nil, err
		}
		return n, nil
	case token.Whitespace:
		n := &ast.Whitespace{Source: p.text(p.tok.Location)}
		n.Loc = p.tok.Location
		if err := p.advance(); err != nil {
			return nil, err
		}
		return n, nil
	case token.LineComment:
		n := &ast.Comment{Source: p.text(p.tok.Location)}
		n.Loc = p.tok.Location
		if err := p.advance(); err != nil {
			return nil, err
		}
		return n, nil
	default:
		return nil, reflexerr.ErrUnrecognizedToken(p.tok.Location, p.src)
	}
}

// parseInstruction parses a "(" ... ")" form. The first non-trivia
// element must be a Term supplying the instruction's name.
func (p *parser) parseInstruction() (ast.Node, error) {
	start := p.tok.Location
	if err := p.advance(); err != nil { // consume "("
		return nil, err
	}

	var elements []ast.Node
	var name string
	sawName := false

	for {
		if p.tok.Kind == token.EOF {
			return nil, reflexerr.ErrUnterminatedInstruction(start, p.src)
		}
		if p.tok.Kind == token.CloseParen {
			end := p.tok.Location
			if err := p.advance(); err != nil {
				return nil, err
			}
			if !sawName {
				return nil, reflexerr.ErrEmptyInstruction(start, p.src)
			}
			n := &ast.Instruction{Name: name, Elements: elements}
			n.Loc = source.Location{Path: p.path, Offset: start.Offset, Length: end.End() - start.Offset}
			return n, nil
		}

		el, err := p.parseElement()
		if err != nil {
			return nil, err
		}
		elements = append(elements, el)

		if !sawName {
			term, ok := el.(*ast.Term)
			if !ok {
				return nil, reflexerr.ErrInvalidInstruction(el.Location(), p.src)
			}
			name = term.Source
			sawName = true
		}
	}
}
