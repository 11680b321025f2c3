/*
 * UOSTEAM
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package interpreter

import (
	"fmt"
	"testing"

	"github.com/krotik/uosteam/lexer"
)

/*
testHost is a minimal Host used to drive end-to-end scenarios without the
engine package: every command handler appends "cmd NAME a b c" to calls and
succeeds immediately.
*/
type testHost struct {
	calls    []string
	aliases  map[string]uint32
	lists    map[string][]interface{}
	commands map[string]CommandHandler
	exprs    map[string]ExpressionHandler
}

func newTestHost() *testHost {
	h := &testHost{
		aliases: map[string]uint32{},
		lists:   map[string][]interface{}{},
	}

	h.commands = map[string]CommandHandler{
		"msg": func(s *Script, name string, args []*Argument, quiet, force bool) (bool, error) {
			h.record("msg", args)
			return true, nil
		},
		"createlist": func(s *Script, name string, args []*Argument, quiet, force bool) (bool, error) {
			listName, err := args[0].AsString()
			if err != nil {
				return false, err
			}
			h.lists[listName] = nil
			return true, nil
		},
		"setalias": func(s *Script, name string, args []*Argument, quiet, force bool) (bool, error) {
			h.record("setalias", args)
			return true, nil
		},
	}

	h.exprs = map[string]ExpressionHandler{}

	return h
}

func (h *testHost) record(name string, args []*Argument) {
	line := "cmd " + name
	for _, a := range args {
		v, _ := a.AsString()
		line += " " + v
	}
	h.calls = append(h.calls, line)
}

func (h *testHost) CommandHandler(name string) (CommandHandler, bool) {
	c, ok := h.commands[name]
	return c, ok
}

func (h *testHost) ExpressionHandler(name string) (ExpressionHandler, bool) {
	e, ok := h.exprs[name]
	return e, ok
}

func (h *testHost) GetAlias(name string) (uint32, bool) {
	v, ok := h.aliases[name]
	return v, ok
}

func (h *testHost) ListLength(name string) (int, bool) {
	l, ok := h.lists[name]
	if !ok {
		return 0, false
	}
	return len(l), true
}

func (h *testHost) ListItem(name string, index int) (interface{}, bool) {
	l, ok := h.lists[name]
	if !ok || index < 0 || index >= len(l) {
		return nil, false
	}
	return l[index], true
}

func run(t *testing.T, src string, host *testHost) *Script {
	t.Helper()

	tree, root, err := lexer.Lex(splitLines(src))
	if err != nil {
		t.Fatalf("lex error: %v", err)
	}

	s := NewScript(tree, root, host)

	for i := 0; i < 1000 && !s.Stopped(); i++ {
		if err := s.ExecuteNext(); err != nil {
			t.Fatalf("tick error: %v", err)
		}
	}

	if !s.Stopped() {
		t.Fatal("script did not finish within the tick budget")
	}

	return s
}

func splitLines(src string) []string {
	var lines []string
	start := 0
	for i, r := range src {
		if r == '\n' {
			lines = append(lines, src[start:i])
			start = i + 1
		}
	}
	lines = append(lines, src[start:])
	return lines
}

func TestScenarioSimpleCommand(t *testing.T) {
	host := newTestHost()
	run(t, `msg 'Hello'`, host)

	if len(host.calls) != 1 || host.calls[0] != "cmd msg Hello" {
		t.Error("Unexpected calls:", host.calls)
	}
}

func TestScenarioIfElse(t *testing.T) {
	host := newTestHost()
	run(t, "if 1 == 1\n  msg a\nelse\n  msg b\nendif", host)

	if len(host.calls) != 1 || host.calls[0] != "cmd msg a" {
		t.Error("Unexpected calls:", host.calls)
	}
}

func TestScenarioFor(t *testing.T) {
	host := newTestHost()
	run(t, "for 3\n  msg x\nendfor", host)

	if len(host.calls) != 3 {
		t.Error("Unexpected calls:", host.calls)
	}
	for _, c := range host.calls {
		if c != "cmd msg x" {
			t.Error("Unexpected call:", c)
		}
	}
}

func TestScenarioForeachEmptyList(t *testing.T) {
	host := newTestHost()
	run(t, "createlist L\nforeach v in L\nmsg v\nendfor", host)

	if len(host.calls) != 0 {
		t.Error("Unexpected calls:", host.calls)
	}
}

func TestScenarioWhileBreak(t *testing.T) {
	host := newTestHost()
	run(t, "while 0 < 1\nmsg loop\nbreak\nendwhile", host)

	if len(host.calls) != 1 || host.calls[0] != "cmd msg loop" {
		t.Error("Unexpected calls:", host.calls)
	}
}

func TestScenarioQuietSetalias(t *testing.T) {
	host := newTestHost()

	tree, root, err := lexer.Lex([]string{`@setalias 'Logs' 'Found'`})
	if err != nil {
		t.Fatalf("lex error: %v", err)
	}

	stmt := tree.FirstChild(root)
	cmd := tree.FirstChild(stmt)

	if fmt.Sprint(tree.Tag(cmd)) != "COMMAND" || tree.Lexeme(cmd) != "setalias" {
		t.Fatal("Unexpected command node:", tree.String(cmd))
	}

	s := NewScript(tree, root, host)
	if !s.IsQuiet(cmd) {
		t.Error("Expected the quiet modifier to be set")
	}

	args := s.commandArgs(cmd)
	if len(args) != 2 {
		t.Fatalf("Expected 2 string arguments, got %d", len(args))
	}

	a0, _ := args[0].AsString()
	a1, _ := args[1].AsString()
	if a0 != "Logs" || a1 != "Found" {
		t.Error("Unexpected argument values:", a0, a1)
	}
}
