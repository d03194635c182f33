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

package directives

import (
	"testing"

	"github.com/reflexjs/corelang/internal/wat/ast"
	"github.com/reflexjs/corelang/internal/wat/parser"
	"github.com/reflexjs/corelang/internal/wat/printer"
	"github.com/stretchr/testify/require"
)

func expandSrc(t *testing.T, env Env, src string) string {
	t.Helper()
	prog, err := parser.Parse("t.wat", src)
	require.NoError(t, err)
	expanded, err := Expand(env, prog, src)
	require.NoError(t, err)
	return printer.Print(printer.Sources{}, expanded)
}

func TestGetDirectiveSubstitutesBoundValue(t *testing.T) {
	got := expandSrc(t, Env{"ty": "i32"}, `(module (@get "ty"))`)
	require.Equal(t, "(module i32)", got)
}

func TestConcatDirectiveJoinsText(t *testing.T) {
	got := expandSrc(t, Env{}, `(module (@concat "foo" "_" "bar"))`)
	require.Equal(t, "(module foo_bar)", got)
}

func TestAddDirectiveSumsOperands(t *testing.T) {
	got := expandSrc(t, Env{}, `(module (@add 1 2 3))`)
	require.Equal(t, "(module 6)", got)
}

func TestBranchDirectivePicksConsequent(t *testing.T) {
	got := expandSrc(t, Env{"flag": true}, `(module (@branch (@get "flag") "yes" "no"))`)
	require.Equal(t, `(module "yes")`, got)
}

func TestBranchDirectivePicksAlternate(t *testing.T) {
	got := expandSrc(t, Env{"flag": false}, `(module (@branch (@get "flag") "yes" "no"))`)
	require.Equal(t, `(module "no")`, got)
}

func TestMapDirectiveExpandsPerItem(t *testing.T) {
	got := expandSrc(t, Env{"items": List{"a", "b", "c"}}, `(module (@map (@get "items") $x (@get "x")))`)
	require.Equal(t, "(module a b c)", got)
}

func TestReverseDirectiveFlipsOrder(t *testing.T) {
	env := Env{"items": List{"a", "b", "c"}}
	got := expandSrc(t, env, `(module (@map (@reverse (@get "items")) $x (@get "x")))`)
	require.Equal(t, "(module c b a)", got)
}

func TestUnknownDirectiveIsInvalid(t *testing.T) {
	src := `(module (@nope))`
	prog, err := parser.Parse("t.wat", src)
	require.NoError(t, err)
	_, err = Expand(Env{}, prog, src)
	require.Error(t, err)
}

func TestExpandLeavesOrdinaryInstructionsAlone(t *testing.T) {
	got := expandSrc(t, Env{}, `(module (func $f (result i32) (i32.const 1)))`)
	require.Equal(t, "(module (func $f (result i32) (i32.const 1)))", got)
}

func TestInstructionDirectiveBuildsNewForm(t *testing.T) {
	got := expandSrc(t, Env{}, `(module (@instruction "local.get" 0))`)
	require.Equal(t, "(module (local.get 0))", got)
}

func TestImportDirectiveRequiresAnImporter(t *testing.T) {
	src := `(module (@import "other.wat"))`
	prog, err := parser.Parse("t.wat", src)
	require.NoError(t, err)
	_, err = Expand(Env{}, prog, src)
	require.Error(t, err)
}

func TestImportDirectiveCallsBoundImporter(t *testing.T) {
	var gotPath string
	var gotVars Env
	env := Env{}.WithImporter(func(path string, vars Env) (Value, error) {
		gotPath = path
		gotVars = vars
		return "ok", nil
	})

	got := expandSrc(t, env, `(module (@import "other.wat" "n" 1))`)
	require.Equal(t, "(module ok)", got)
	require.Equal(t, "other.wat", gotPath)
	n, ok := gotVars["n"].(*ast.Term)
	require.True(t, ok)
	require.Equal(t, "1", n.Source)
}
