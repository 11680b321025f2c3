/*
 * UOSTEAM
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package util

import (
	"errors"
	"strings"
	"testing"

	"github.com/krotik/uosteam/ast"
)

func TestRuntimeError(t *testing.T) {

	tree := ast.NewTree()
	cmd := tree.New(ast.COMMAND, "msg hello")

	err := NewRuntimeError(ErrUnknownCommand, "msg", tree, cmd)

	if !strings.Contains(err.Error(), "unknown command") || !strings.Contains(err.Error(), "msg") {
		t.Error("Unexpected result:", err)
		return
	}

	if !errors.Is(err, ErrUnknownCommand) {
		t.Error("errors.Is should match the wrapped sentinel")
		return
	}

	if errors.Is(err, ErrUnknownExpression) {
		t.Error("errors.Is should not match an unrelated sentinel")
		return
	}

	bare := NewRuntimeError(ErrNoActiveScript, "tick called with nothing running", nil, ast.NilNode)

	if bare.Error() != "uosteam runtime error: no active script (tick called with nothing running)" {
		t.Error("Unexpected result:", bare.Error())
		return
	}
}

func TestParseError(t *testing.T) {

	pe := NewParseError(3, "if a == ", errEmpty())

	if pe.Error() != `uosteam parse error on line 3 ("if a == "): empty expression` {
		t.Error("Unexpected result:", pe.Error())
		return
	}

	if !errors.Is(pe, errEmptySentinel) {
		t.Error("errors.Is should match the wrapped cause")
		return
	}

	noLine := NewParseError(0, "lexer setup", errEmpty())

	if noLine.Error() != "uosteam parse error: lexer setup: empty expression" {
		t.Error("Unexpected result:", noLine.Error())
		return
	}
}

var errEmptySentinel = errors.New("empty expression")

func errEmpty() error {
	return errEmptySentinel
}
