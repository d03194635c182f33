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

package parser

import (
	"errors"
	"testing"

	"github.com/reflexjs/corelang/internal/reflexerr"
	"github.com/reflexjs/corelang/internal/wat/ast"
	"github.com/stretchr/testify/require"
)

func TestParseSimpleInstruction(t *testing.T) {
	prog, err := Parse("t.wat", `(module (func $f))`)
	require.NoError(t, err)
	require.Len(t, prog.Statements, 1)
	top, ok := prog.Statements[0].(*ast.Instruction)
	require.True(t, ok)
	require.Equal(t, "module", top.Name)
}

func TestParseEmptyInstruction(t *testing.T) {
	_, err := Parse("t.wat", `()`)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Empty instruction")
}

func TestParseInvalidInstructionHead(t *testing.T) {
	_, err := Parse("t.wat", `("x")`)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Invalid instruction")
}

func TestParseUnterminatedInstruction(t *testing.T) {
	_, err := Parse("t.wat", `(module (func`)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Unterminated instruction")
	require.Contains(t, err.Error(), "t.wat:1:")

	var perr *reflexerr.ParseError
	require.True(t, errors.As(err, &perr))
	require.Equal(t, "t.wat", perr.Loc.Path)
}

func TestParseEmptySourceFile(t *testing.T) {
	_, err := Parse("t.wat", ``)
	require.Error(t, err)
	require.Equal(t, "Empty source file", err.Error())
}

func TestParseWhitespaceOnlySourceFailsEmptySourceFile(t *testing.T) {
	_, err := Parse("t.wat", `   `)
	require.Error(t, err)
	require.Equal(t, "Empty source file", err.Error())
}

func TestParsePreservesTrivia(t *testing.T) {
	src := `(module ;; comment
  (func))`
	prog, err := Parse("t.wat", src)
	require.NoError(t, err)
	top := prog.Statements[0].(*ast.Instruction)
	var sawComment bool
	for _, e := range top.Elements {
		if _, ok := e.(*ast.Comment); ok {
			sawComment = true
		}
	}
	require.True(t, sawComment)
}

func TestParseUnexpectedCloseParen(t *testing.T) {
	_, err := Parse("t.wat", `)`)
	require.Error(t, err)
}
