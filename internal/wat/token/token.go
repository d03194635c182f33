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

// Package token defines the WAT lexer's token kinds. Tokens carry no
// text of their own — the parser slices the source using Location.
package token

import "github.com/reflexjs/corelang/internal/wat/source"

type Kind string

const (
	OpenParen   Kind = "OpenParen"
	CloseParen  Kind = "CloseParen"
	String      Kind = "String"
	Term        Kind = "Term"
	Whitespace  Kind = "Whitespace"
	LineComment Kind = "LineComment"
	EOF         Kind = "EOF"
)

type Token struct {
	Kind     Kind
	Location source.Location
}

func (t Token) String() string {
	return string(t.Kind) + "@" + source.FormatRange(t.Location)
}
