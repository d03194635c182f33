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

package validator

import (
	"strings"

	"github.com/reflexjs/corelang/internal/estree"
)

// Message templates, kept verbatim so a host can match on them; {{ node
// }} is interpolated from data["node"] by Render.
const (
	msgUnsupportedSyntax       = "Unsupported syntax: {{ node }}"
	msgUnexpectedTopLevel      = "Unexpected top-level statement"
	msgMissingTopLevelExpr     = "Missing top-level expression"
	msgScriptUnusedStatements  = "Script contains unused statements"
	msgMissingDefaultExport    = "Missing default module export"
	msgMissingVarInit          = "Missing variable initializer"
	msgMissingReturnValue      = "Missing return value"
	msgMissingCatchBlock       = "Missing catch block"
	msgMissingArrayItem        = "Missing array item"
	msgBlockUnusedStatements   = "Block contains unused statements"
	msgBlockNestedBlocks       = "Block contains nested blocks"
	msgBlockNoReturn           = "Block does not return a value"
)

// Render interpolates data into a message template for display.
func Render(message string, data map[string]string) string {
	if data == nil {
		return message
	}
	out := message
	for k, v := range data {
		out = strings.ReplaceAll(out, "{{ "+k+" }}", v)
	}
	return out
}

func dataNode(n estree.Node) map[string]string {
	return map[string]string{"node": string(n.Type())}
}
