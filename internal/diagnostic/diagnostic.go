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

// Package diagnostic holds the validator's accumulate-and-continue result
// type. Diagnostics are never errors: the validator never returns early
// because of one, it keeps walking so the caller sees the full set.
package diagnostic

import (
	"fmt"

	"github.com/reflexjs/corelang/internal/estree"
)

// Diagnostic is one rule violation, reported on the most specific
// offending node.
type Diagnostic struct {
	Node    estree.Node
	Message string
	Data    map[string]string
}

func (d Diagnostic) String() string {
	loc := d.Node.Loc()
	if loc.Source == "" {
		return fmt.Sprintf("%d:%d: %s", loc.Start.Line, loc.Start.Column, d.Message)
	}
	return fmt.Sprintf("%s:%d:%d: %s", loc.Source, loc.Start.Line, loc.Start.Column, d.Message)
}

// Sink receives one diagnostic at a time. Implementations must not panic
// and must not stop the validator from continuing to walk the tree.
type Sink func(d Diagnostic)

// Collector is a Sink that accumulates diagnostics in report order, for
// callers (tests, the `lint` command) that want the whole set at once
// rather than a streaming callback.
type Collector struct {
	Diagnostics []Diagnostic
}

func (c *Collector) Report(node estree.Node, message string, data map[string]string) {
	c.Diagnostics = append(c.Diagnostics, Diagnostic{Node: node, Message: message, Data: data})
}

func (c *Collector) Sink() Sink {
	return func(d Diagnostic) {
		c.Diagnostics = append(c.Diagnostics, d)
	}
}
