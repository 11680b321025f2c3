/*
 * UOSTEAM
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

/*
Package util contains utility definitions and functions shared by the lexer,
interpreter and engine packages: the runtime/parse error types and
locale-invariant numeric parsing helpers.
*/
package util

import (
	"errors"
	"fmt"

	"github.com/krotik/uosteam/ast"
)

/*
Runtime error sentinels. Use errors.Is(err, util.ErrUnknownCommand) etc to
classify a RuntimeError.
*/
var (
	ErrUnknownCommand    = errors.New("unknown command")
	ErrUnknownExpression = errors.New("unknown expression")
	ErrEmptyExpression   = errors.New("empty expression")
	ErrUnmatchedBlock    = errors.New("unmatched control-flow terminator")
	ErrArgCoercion       = errors.New("cannot coerce argument")
	ErrListNotFound      = errors.New("list not found")
	ErrTimerNotFound     = errors.New("timer not found")
	ErrArgsNotConsumed   = errors.New("command did not consume all available arguments")
	ErrForNotInteger     = errors.New("for requires an integer count")
	ErrNoActiveScript    = errors.New("no active script")
	ErrScriptRunning     = errors.New("a script is already active")
)

/*
RuntimeError is a runtime error raised while executing a script. It bundles
the offending AST node - possibly nil, e.g. for engine-level errors not tied
to a single statement - and a human-readable detail message.
*/
type RuntimeError struct {
	Type   error         // Sentinel error type, for errors.Is
	Detail string        // Human-readable detail
	Tree   *ast.Tree     // Tree the node belongs to (nil if Node is nil)
	Node   ast.NodeID    // Offending node, ast.NilNode if not applicable
}

/*
NewRuntimeError creates a new RuntimeError.
*/
func NewRuntimeError(t error, detail string, tree *ast.Tree, node ast.NodeID) *RuntimeError {
	return &RuntimeError{t, detail, tree, node}
}

/*
Error returns a human-readable string representation of this error.
*/
func (re *RuntimeError) Error() string {
	if re.Node != ast.NilNode && re.Tree != nil {
		return fmt.Sprintf("uosteam runtime error: %v (%v) at %v", re.Type, re.Detail, re.Tree.String(re.Node))
	}
	return fmt.Sprintf("uosteam runtime error: %v (%v)", re.Type, re.Detail)
}

/*
Unwrap exposes the sentinel so errors.Is/errors.As work as expected.
*/
func (re *RuntimeError) Unwrap() error {
	return re.Type
}

/*
ParseError is raised by the lexer when a line cannot be turned into a
statement. Unlike RuntimeError it carries a line number rather than an AST
node, since no AST exists yet at the point the error is raised.
*/
type ParseError struct {
	Line   int
	Source string
	Cause  error
}

/*
NewParseError creates a new ParseError.
*/
func NewParseError(line int, source string, cause error) *ParseError {
	return &ParseError{line, source, cause}
}

/*
Error returns a human-readable string representation of this error.
*/
func (pe *ParseError) Error() string {
	if pe.Line > 0 {
		return fmt.Sprintf("uosteam parse error on line %d (%q): %v", pe.Line, pe.Source, pe.Cause)
	}
	return fmt.Sprintf("uosteam parse error: %v: %v", pe.Source, pe.Cause)
}

/*
Unwrap exposes the underlying cause.
*/
func (pe *ParseError) Unwrap() error {
	return pe.Cause
}
