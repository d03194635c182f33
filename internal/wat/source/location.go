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

// Package source carries the byte-range location type shared by the WAT
// tokenizer, AST and printer, plus the line:column resolution every
// diagnostic formats through.
package source

import "fmt"

// Location is a byte range in one named source file.
type Location struct {
	Path   string
	Offset int
	Length int
}

// End returns one past the last byte covered by the location.
func (l Location) End() int { return l.Offset + l.Length }

// LineCol resolves a 0-based byte offset into src to a 1-based
// line:column pair. A "\r\n" pair counts as a single line break; a lone
// "\r" also breaks a line, matching common text-editor conventions.
func LineCol(src string, offset int) (line, col int) {
	line, col = 1, 1
	i := 0
	n := len(src)
	if offset > n {
		offset = n
	}
	for i < offset {
		switch src[i] {
		case '\n':
			line++
			col = 1
			i++
		case '\r':
			line++
			col = 1
			i++
			if i < offset && i < n && src[i] == '\n' {
				i++
			}
		default:
			col++
			i++
		}
	}
	return line, col
}

// Format renders "path:line:col" for the start of loc against src.
func Format(loc Location, src string) string {
	line, col := LineCol(src, loc.Offset)
	return fmt.Sprintf("%s:%d:%d", loc.Path, line, col)
}

// FormatRange renders "path@offset+length" for contexts with no source
// text to resolve against — Token's debug Stringer is the only
// remaining caller; every diagnostic message resolves a real
// line:column through Format instead.
func FormatRange(loc Location) string {
	return fmt.Sprintf("%s@%d+%d", loc.Path, loc.Offset, loc.Length)
}
