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

// Package reflexerr holds the typed, fail-fast errors raised by the WAT
// lexer, parser and loader. Unlike the validator's diagnostics, these
// always abort the current operation — the caller re-enters with
// corrected input.
package reflexerr

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/reflexjs/corelang/internal/wat/source"
)

// ParseError carries a resolved source location alongside the underlying
// message, per spec's "Parse failures raise ParseError carrying a
// resolved source location."
type ParseError struct {
	Loc     source.Location
	Src     string
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Message, source.Format(e.Loc, e.Src))
}

func newParseError(loc source.Location, src, message string) error {
	return &ParseError{Loc: loc, Src: src, Message: message}
}

func ErrUnterminatedString(loc source.Location, src string) error {
	return newParseError(loc, src, "Unterminated string literal")
}

func ErrEmptyInstruction(loc source.Location, src string) error {
	return newParseError(loc, src, "Empty instruction")
}

func ErrInvalidInstruction(loc source.Location, src string) error {
	return newParseError(loc, src, "Invalid instruction")
}

func ErrUnterminatedInstruction(loc source.Location, src string) error {
	return newParseError(loc, src, "Unterminated instruction")
}

func ErrEmptySourceFile() error {
	return errors.New("Empty source file")
}

func ErrUnrecognizedToken(loc source.Location, src string) error {
	return newParseError(loc, src, "Unrecognized token")
}

func ErrInvalidSourcePath(path string) error {
	return errors.Errorf("Invalid source path: %s", path)
}

func ErrUnexpectedNodeType(nodeType string) error {
	return errors.Errorf("Unexpected node type: %s", nodeType)
}

func ErrCircularDependency(parent, path string) error {
	return errors.Errorf("Encountered circular dependency in %s: %s", parent, path)
}

func ErrInvalidTransformationType(received string) error {
	return errors.Errorf("Invalid source transformation: expected Array, received %s", received)
}

func ErrInvalidTransformationEmpty() error {
	return errors.New("Invalid source transformation: missing root node")
}

func ErrInvalidTransformationArity(n int) error {
	return errors.Errorf("Invalid source transformation: expected 1 root node, received %d", n)
}

func ErrMissingDefaultExport(path string) error {
	return errors.Errorf("Missing default export: %s", path)
}

func ErrInvalidDirective(directive string, loc source.Location, src string) error {
	return errors.Errorf("Invalid %s directive: %s", directive, source.Format(loc, src))
}
