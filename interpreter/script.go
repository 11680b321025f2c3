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
	"github.com/krotik/uosteam/ast"
	"github.com/krotik/uosteam/scope"
	"github.com/krotik/uosteam/util"
)

/*
Script is an execution cursor over a lexed SCRIPT AST plus the scope chain
it has pushed so far. One Script advances at most one statement per call to
ExecuteNext; the engine package is responsible for calling it repeatedly.
*/
type Script struct {
	tree  *ast.Tree
	root  ast.NodeID
	host  Host
	cursor   ast.NodeID
	topScope *scope.Scope
}

/*
NewScript constructs a script cursor over root (a SCRIPT node), installing a
root scope anchored at the first statement and placing the cursor there.
host supplies command/expression handlers and alias/list lookups.
*/
func NewScript(tree *ast.Tree, root ast.NodeID, host Host) *Script {
	first := tree.FirstChild(root)
	return &Script{
		tree:     tree,
		root:     root,
		host:     host,
		cursor:   first,
		topScope: scope.New("root", first),
	}
}

/*
Tree returns the AST this script walks. Exposed for diagnostics and error
reporting.
*/
func (s *Script) Tree() *ast.Tree { return s.tree }

/*
Cursor returns the STATEMENT node the script will execute next, or
ast.NilNode if the script has stopped.
*/
func (s *Script) Cursor() ast.NodeID { return s.cursor }

/*
Stopped reports whether this script has run off the end of its program or
executed a stop statement.
*/
func (s *Script) Stopped() bool { return s.cursor == ast.NilNode }

/*
Scope returns the innermost active scope, for diagnostics.
*/
func (s *Script) Scope() *scope.Scope { return s.topScope }

/*
Resolve looks up name in the current scope chain, root-wards.
*/
func (s *Script) Resolve(name string) (interface{}, bool) {
	return s.topScope.GetValue(name)
}

/*
AdvancePast skips the current statement without executing it. Used by the
engine's TIMING_OUT handling when a timeout callback asks execution to
proceed past the statement it interrupted.
*/
func (s *Script) AdvancePast() {
	if !s.Stopped() {
		s.cursor = s.tree.Next(s.cursor)
	}
}

/*
ExecuteNext performs one tick: it dispatches on the tag of the current
statement's sole child and returns nil if the cursor advanced (or the
script stopped), leaving it unchanged on a stall (a command handler
returning false) so the next call retries the same statement.
*/
func (s *Script) ExecuteNext() error {
	if s.Stopped() {
		return util.NewRuntimeError(util.ErrNoActiveScript, "script has already finished", s.tree, ast.NilNode)
	}

	head := s.tree.FirstChild(s.cursor)

	switch s.tree.Tag(head) {
	case ast.COMMAND:
		return s.execCommand(head)
	case ast.IF:
		return s.execIf(head)
	case ast.ELSEIF, ast.ELSE:
		return s.execFallthroughToEndif()
	case ast.ENDIF:
		return s.execEndif()
	case ast.WHILE:
		return s.execWhile(head)
	case ast.ENDWHILE:
		return s.execEndwhile()
	case ast.FOR:
		return s.execFor(head)
	case ast.FOREACH:
		return s.execForeach(head)
	case ast.ENDFOR:
		return s.execEndfor()
	case ast.BREAK:
		return s.execBreak()
	case ast.CONTINUE:
		return s.execContinue()
	case ast.STOP:
		s.cursor = ast.NilNode
		return nil
	case ast.REPLAY:
		s.cursor = s.tree.FirstChild(s.root)
		return nil
	}

	return util.NewRuntimeError(util.ErrUnknownCommand, "unrecognised statement head", s.tree, head)
}

/*
execCommand resolves and invokes a COMMAND statement's handler. The cursor
advances only if the handler signals it consumed the statement.
*/
func (s *Script) execCommand(cmd ast.NodeID) error {
	handler, ok := s.host.CommandHandler(s.tree.Lexeme(cmd))
	if !ok {
		return util.NewRuntimeError(util.ErrUnknownCommand, s.tree.Lexeme(cmd), s.tree, cmd)
	}

	args := s.commandArgs(cmd)
	name := s.tree.Lexeme(cmd)
	quiet, force := s.IsQuiet(cmd), s.IsForce(cmd)

	advance, err := handler(s, name, args, quiet, force)
	if err != nil {
		return err
	}

	if advance {
		if unused := firstUnconsumed(args); unused != nil {
			return util.NewRuntimeError(util.ErrArgsNotConsumed, name, s.tree, unused.Node())
		}
		s.cursor = s.tree.Next(s.cursor)
	}

	return nil
}

/*
firstUnconsumed returns the first Argument whose value was never read by the
handler that just ran, or nil if every argument was consumed. Enforces
spec.md §4.4's "Command did not consume all available arguments" rule.
*/
func firstUnconsumed(args []*Argument) *Argument {
	for _, a := range args {
		if !a.Consumed() {
			return a
		}
	}
	return nil
}

/*
commandArgs collects the Argument vector for a COMMAND node: every child
that is not a QUIET/FORCE modifier, in source order.
*/
func (s *Script) commandArgs(cmd ast.NodeID) []*Argument {
	var args []*Argument
	for c := s.tree.FirstChild(cmd); c != ast.NilNode; c = s.tree.Next(c) {
		switch s.tree.Tag(c) {
		case ast.QUIET, ast.FORCE:
			continue
		}
		args = append(args, NewArgument(s, s.tree, c))
	}
	return args
}

/*
IsQuiet reports whether cmd carries the "@" quiet modifier.
*/
func (s *Script) IsQuiet(cmd ast.NodeID) bool {
	return s.hasModifier(cmd, ast.QUIET)
}

/*
IsForce reports whether cmd carries the "!" force modifier.
*/
func (s *Script) IsForce(cmd ast.NodeID) bool {
	return s.hasModifier(cmd, ast.FORCE)
}

func (s *Script) hasModifier(cmd ast.NodeID, tag ast.Tag) bool {
	for c := s.tree.FirstChild(cmd); c != ast.NilNode; c = s.tree.Next(c) {
		if s.tree.Tag(c) == tag {
			return true
		}
	}
	return false
}
