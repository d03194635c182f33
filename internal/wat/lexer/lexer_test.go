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

package lexer

import (
	"testing"

	"github.com/reflexjs/corelang/internal/wat/token"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, src string) []token.Token {
	t.Helper()
	l := New("t.wat", src)
	var toks []token.Token
	for {
		tok, err := l.Next()
		require.NoError(t, err)
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks
		}
	}
}

func TestLexerCoversEveryByte(t *testing.T) {
	src := `(module (@get "name") ;; comment
  (func))`
	toks := collect(t, src)
	var rebuilt string
	for _, tok := range toks {
		if tok.Kind == token.EOF {
			continue
		}
		rebuilt += src[tok.Location.Offset:tok.Location.End()]
	}
	require.Equal(t, src, rebuilt)
}

func TestLexerKinds(t *testing.T) {
	toks := collect(t, `(a "b")`)
	kinds := make([]token.Kind, 0, len(toks))
	for _, tok := range toks {
		kinds = append(kinds, tok.Kind)
	}
	require.Equal(t, []token.Kind{
		token.OpenParen, token.Term, token.Whitespace, token.String, token.CloseParen, token.EOF,
	}, kinds)
}

func TestLexerStringEscapes(t *testing.T) {
	toks := collect(t, `"a\"b"`)
	require.Equal(t, token.String, toks[0].Kind)
	require.Equal(t, 6, toks[0].Location.Length)
}

func TestLexerUnterminatedString(t *testing.T) {
	l := New("t.wat", `"abc`)
	_, err := l.Next()
	require.Error(t, err)
	require.Contains(t, err.Error(), "Unterminated string literal")
}

func TestLexerLineCommentConsumesThroughNewline(t *testing.T) {
	toks := collect(t, ";; hi\n(x)")
	require.Equal(t, token.LineComment, toks[0].Kind)
	require.Equal(t, 6, toks[0].Location.Length)
}

func TestLexerSemicolonIsOrdinaryTermByte(t *testing.T) {
	toks := collect(t, `a;b`)
	require.Equal(t, token.Term, toks[0].Kind)
	require.Equal(t, 3, toks[0].Location.Length)
}
