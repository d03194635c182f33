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

// Package lexer scans WAT template source into a flat token stream.
// Every byte of the input is accounted for by some token — parens,
// strings, terms, whitespace and line comments are all emitted, so the
// parser can rebuild the original text exactly from token locations.
package lexer

import (
	"github.com/reflexjs/corelang/internal/reflexerr"
	"github.com/reflexjs/corelang/internal/wat/source"
	"github.com/reflexjs/corelang/internal/wat/token"
)

// Lexer is a single-pass, left-to-right byte scanner over one source
// file. It holds no lookahead beyond what a single Next call consumes.
type Lexer struct {
	path string
	src  string
	pos  int
}

func New(path, src string) *Lexer {
	return &Lexer{path: path, src: src}
}

// Next returns the next token, or a token.EOF once the input is
// exhausted. It never returns both a zero-value token and a nil error.
func (l *Lexer) Next() (token.Token, error) {
	if l.pos >= len(l.src) {
		return token.Token{Kind: token.EOF, Location: source.Location{Path: l.path, Offset: l.pos}}, nil
	}

	start := l.pos
	switch c := l.src[l.pos]; {
	case c == '(':
		l.pos++
		return l.tok(token.OpenParen, start), nil
	case c == ')':
		l.pos++
		return l.tok(token.CloseParen, start), nil
	case c == '"':
		return l.readString(start)
	case c == ';' && l.peekAt(l.pos+1) == ';':
		l.readComment()
		return l.tok(token.LineComment, start), nil
	case isSpace(c):
		l.readWhitespace()
		return l.tok(token.Whitespace, start), nil
	default:
		l.readTerm()
		return l.tok(token.Term, start), nil
	}
}

func (l *Lexer) tok(kind token.Kind, start int) token.Token {
	return token.Token{Kind: kind, Location: source.Location{Path: l.path, Offset: start, Length: l.pos - start}}
}

func (l *Lexer) peekAt(i int) byte {
	if i >= len(l.src) {
		return 0
	}
	return l.src[i]
}

// readString consumes a double-quoted string literal, where a backslash
// consumes exactly one following byte regardless of its meaning. It
// fails fast on an unterminated literal.
func (l *Lexer) readString(start int) (token.Token, error) {
	l.pos++ // opening quote
	for l.pos < len(l.src) {
		switch l.src[l.pos] {
		case '\\':
			l.pos++
			if l.pos < len(l.src) {
				l.pos++
			}
		case '"':
			l.pos++
			return l.tok(token.String, start), nil
		default:
			l.pos++
		}
	}
	return token.Token{}, reflexerr.ErrUnterminatedString(source.Location{Path: l.path, Offset: start, Length: l.pos - start}, l.src)
}

// readComment consumes from a leading ";;" through the end of the line,
// inclusive of the terminating newline if present.
func (l *Lexer) readComment() {
	l.pos += 2
	for l.pos < len(l.src) && l.src[l.pos] != '\n' {
		l.pos++
	}
	if l.pos < len(l.src) {
		l.pos++
	}
}

func (l *Lexer) readWhitespace() {
	for l.pos < len(l.src) && isSpace(l.src[l.pos]) {
		l.pos++
	}
}

// readTerm consumes a maximal run of bytes that are not parens, quotes,
// whitespace, or the start of a ";;" comment. A lone ";" is ordinary
// term material.
func (l *Lexer) readTerm() {
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		if c == '(' || c == ')' || c == '"' || isSpace(c) {
			break
		}
		if c == ';' && l.peekAt(l.pos+1) == ';' {
			break
		}
		l.pos++
	}
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r':
		return true
	default:
		return false
	}
}
