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

package printer

import (
	"testing"

	"github.com/reflexjs/corelang/internal/wat/ast"
	"github.com/reflexjs/corelang/internal/wat/parser"
	"github.com/stretchr/testify/require"
)

func TestRoundTripIsByteExact(t *testing.T) {
	srcs := []string{
		`(module (func $f (result i32) (i32.const 1)))`,
		"(module ;; comment\n  (func $f))",
		`(module (@get "name"))`,
		"(module\n  (func))",
	}
	for _, src := range srcs {
		prog, err := parser.Parse("t.wat", src)
		require.NoError(t, err)
		got := Print(Sources{"t.wat": src}, prog)
		require.Equal(t, src, got)
	}
}

func TestSynthesizedInstructionInsertsSeparatingSpace(t *testing.T) {
	inst := ast.NewInstruction("add", []ast.Node{ast.NewTerm("add"), ast.NewTerm("1"), ast.NewTerm("2")})
	prog := &ast.Program{Statements: []ast.Node{inst}}
	got := Print(Sources{}, prog)
	require.Equal(t, "(add 1 2)", got)
}
