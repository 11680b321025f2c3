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

	"github.com/krotik/uosteam/ast"
	"github.com/krotik/uosteam/scope"
	"github.com/krotik/uosteam/util"
)

var ifOpeners = map[ast.Tag]bool{ast.IF: true}
var whileOpeners = map[ast.Tag]bool{ast.WHILE: true}
var forOpeners = map[ast.Tag]bool{ast.FOR: true, ast.FOREACH: true}

/*
iterVarName derives the hidden iterator variable name for a FOR/FOREACH
node from its own stable arena identity, per the design notes's instruction
to key iterators by node id rather than a hash of anything else.
*/
func iterVarName(loopHead ast.NodeID) string {
	return fmt.Sprintf("$iter#%d", int(loopHead))
}

/*
execIf implements the IF statement: push a scope anchored at the IF node,
evaluate its condition, and either fall through into the then-branch or
scan forward to the matching ELSEIF/ELSE/ENDIF.
*/
func (s *Script) execIf(ifNode ast.NodeID) error {
	ifStmt := s.cursor
	s.topScope = scope.NewChild("if", ifNode, s.topScope)

	cond, err := s.evalLogical(s.tree.FirstChild(ifNode))
	if err != nil {
		return err
	}

	if cond {
		s.cursor = s.tree.Next(ifStmt)
		return nil
	}

	return s.skipFalseBranch(ifStmt)
}

/*
skipFalseBranch scans forward from an IF (or a just-rejected ELSEIF) to the
next ELSEIF/ELSE/ENDIF at depth 0, entering whichever branch applies.
*/
func (s *Script) skipFalseBranch(from ast.NodeID) error {
	cur := from

	for {
		land, tag, err := scanForward(s.tree, s.tree.Next(cur), ifOpeners, ast.ENDIF,
			map[ast.Tag]bool{ast.ELSEIF: true, ast.ELSE: true})
		if err != nil {
			return err
		}

		switch tag {
		case ast.ENDIF:
			s.cursor = land
			return nil

		case ast.ELSE:
			s.cursor = s.tree.Next(land)
			return nil

		case ast.ELSEIF:
			head := s.tree.FirstChild(land)
			cond, err := s.evalLogical(s.tree.FirstChild(head))
			if err != nil {
				return err
			}
			if cond {
				s.cursor = s.tree.Next(land)
				return nil
			}
			cur = land
		}
	}
}

/*
execFallthroughToEndif handles reaching an ELSEIF/ELSE by normal forward
advance: the preceding branch just ran to completion, so skip the rest of
the if-chain.
*/
func (s *Script) execFallthroughToEndif() error {
	land, _, err := scanForward(s.tree, s.tree.Next(s.cursor), ifOpeners, ast.ENDIF, nil)
	if err != nil {
		return err
	}
	s.cursor = land
	return nil
}

/*
execEndif pops the scope the matching IF pushed and advances.
*/
func (s *Script) execEndif() error {
	s.topScope = s.topScope.Parent()
	s.cursor = s.tree.Next(s.cursor)
	return nil
}

/*
execWhile implements WHILE: a first visit (scope not yet anchored here)
pushes a new scope; every visit re-evaluates the condition.
*/
func (s *Script) execWhile(whileNode ast.NodeID) error {
	whileStmt := s.cursor

	if s.topScope.StartNode() != whileNode {
		s.topScope = scope.NewChild("while", whileNode, s.topScope)
	}

	cond, err := s.evalLogical(s.tree.FirstChild(whileNode))
	if err != nil {
		return err
	}

	if cond {
		s.cursor = s.tree.Next(whileStmt)
		return nil
	}

	land, _, err := scanForward(s.tree, s.tree.Next(whileStmt), whileOpeners, ast.ENDWHILE, nil)
	if err != nil {
		return err
	}
	s.topScope = s.topScope.Parent()
	s.cursor = s.tree.Next(land)
	return nil
}

/*
execEndwhile lands back on the opening WHILE so the next tick re-evaluates
the condition.
*/
func (s *Script) execEndwhile() error {
	open, err := scanBackward(s.tree, s.cursor, whileOpeners, ast.ENDWHILE)
	if err != nil {
		return err
	}
	s.cursor = open
	return nil
}

/*
execFor implements the integer-count "for N" loop.
*/
func (s *Script) execFor(forNode ast.NodeID) error {
	forStmt := s.cursor
	firstEntry := s.topScope.StartNode() != forNode

	if firstEntry {
		s.topScope = scope.NewChild("for", forNode, s.topScope)
	}

	countNode := s.tree.FirstChild(forNode)
	if s.tree.Tag(countNode) != ast.INTEGER {
		return util.NewRuntimeError(util.ErrForNotInteger, s.tree.Lexeme(countNode), s.tree, countNode)
	}

	n, err := NewArgument(s, s.tree, countNode).AsInt()
	if err != nil {
		return err
	}

	name := iterVarName(forNode)

	var i int64
	if firstEntry {
		i = 0
	} else {
		v, _ := s.topScope.GetValue(name)
		i = v.(int64) + 1
	}
	s.topScope.SetLocalValue(name, i)

	if i < n {
		s.cursor = s.tree.Next(forStmt)
		return nil
	}

	land, _, err := scanForward(s.tree, s.tree.Next(forStmt), forOpeners, ast.ENDFOR, nil)
	if err != nil {
		return err
	}
	s.topScope = s.topScope.Parent()
	s.cursor = s.tree.Next(land)
	return nil
}

/*
execForeach implements "foreach VAR in LIST", driven by the host's list
store.
*/
func (s *Script) execForeach(foreachNode ast.NodeID) error {
	foreachStmt := s.cursor
	firstEntry := s.topScope.StartNode() != foreachNode

	if firstEntry {
		s.topScope = scope.NewChild("foreach", foreachNode, s.topScope)
	}

	varNode := s.tree.FirstChild(foreachNode)
	listNode := s.tree.Next(varNode)
	varName := s.tree.Lexeme(varNode)
	listName := s.tree.Lexeme(listNode)

	length, ok := s.host.ListLength(listName)
	if !ok {
		return util.NewRuntimeError(util.ErrListNotFound, listName, s.tree, listNode)
	}

	name := iterVarName(foreachNode)

	var i int64
	if firstEntry {
		i = 0
	} else {
		v, _ := s.topScope.GetValue(name)
		i = v.(int64) + 1
	}
	s.topScope.SetLocalValue(name, i)

	if i < int64(length) {
		v, _ := s.host.ListItem(listName, int(i))
		s.topScope.SetLocalValue(varName, v)
		s.cursor = s.tree.Next(foreachStmt)
		return nil
	}

	s.topScope.UnsetLocal(varName)

	land, _, err := scanForward(s.tree, s.tree.Next(foreachStmt), forOpeners, ast.ENDFOR, nil)
	if err != nil {
		return err
	}
	s.topScope = s.topScope.Parent()
	s.cursor = s.tree.Next(land)
	return nil
}

/*
execEndfor walks backward to the matching FOR/FOREACH opener.
*/
func (s *Script) execEndfor() error {
	open, err := scanBackward(s.tree, s.cursor, forOpeners, ast.ENDFOR)
	if err != nil {
		return err
	}
	s.cursor = open
	return nil
}

/*
execBreak exits the innermost enclosing loop, landing one statement past
its closer and popping the scope that loop pushed, together with any
scopes opened inside its body (e.g. by an enclosing IF).
*/
func (s *Script) execBreak() error {
	end, err := scanToLoopEnd(s.tree, s.tree.Next(s.cursor))
	if err != nil {
		return err
	}
	open, err := scanToLoopStart(s.tree, s.cursor)
	if err != nil {
		return err
	}
	head := s.tree.FirstChild(open)
	for s.topScope.StartNode() != head && s.topScope.Parent() != nil {
		s.topScope = s.topScope.Parent()
	}
	if s.topScope.Parent() != nil {
		s.topScope = s.topScope.Parent()
	}
	s.cursor = s.tree.Next(end)
	return nil
}

/*
execContinue transfers control back to the innermost enclosing loop's
opener; the next tick re-evaluates it as a normal re-entry. Scopes opened
inside the loop body (e.g. by an enclosing IF) are popped first.
*/
func (s *Script) execContinue() error {
	open, err := scanToLoopStart(s.tree, s.cursor)
	if err != nil {
		return err
	}
	head := s.tree.FirstChild(open)
	for s.topScope.StartNode() != head && s.topScope.Parent() != nil {
		s.topScope = s.topScope.Parent()
	}
	s.cursor = open
	return nil
}

/*
scanForward walks STATEMENT siblings starting at start, treating any of
openers as a nested occurrence of the same family and closer as its
terminator. It stops and returns the first statement reached at nesting
depth 0 whose head tag is closer or is present in stopAt.
*/
func scanForward(tree *ast.Tree, start ast.NodeID, openers map[ast.Tag]bool, closer ast.Tag, stopAt map[ast.Tag]bool) (ast.NodeID, ast.Tag, error) {
	depth := 0

	for cur := start; cur != ast.NilNode; cur = tree.Next(cur) {
		tag := tree.Tag(tree.FirstChild(cur))

		if openers[tag] {
			depth++
			continue
		}

		if tag == closer {
			if depth == 0 {
				return cur, tag, nil
			}
			depth--
			continue
		}

		if depth == 0 && stopAt[tag] {
			return cur, tag, nil
		}
	}

	return ast.NilNode, 0, util.NewRuntimeError(util.ErrUnmatchedBlock, "no matching closer", tree, start)
}

/*
scanBackward is scanForward's mirror image, used by ENDWHILE/ENDFOR to find
their opener.
*/
func scanBackward(tree *ast.Tree, start ast.NodeID, openers map[ast.Tag]bool, closer ast.Tag) (ast.NodeID, error) {
	depth := 0

	for cur := tree.Prev(start); cur != ast.NilNode; cur = tree.Prev(cur) {
		tag := tree.Tag(tree.FirstChild(cur))

		if tag == closer {
			depth++
			continue
		}

		if openers[tag] {
			if depth == 0 {
				return cur, nil
			}
			depth--
		}
	}

	return ast.NilNode, util.NewRuntimeError(util.ErrUnmatchedBlock, "no matching opener", tree, start)
}

/*
scanToLoopEnd finds the closer (ENDWHILE or ENDFOR) of the innermost loop
enclosing start, skipping fully-nested IF blocks and fully-nested loops
along the way. Used by BREAK.
*/
func scanToLoopEnd(tree *ast.Tree, start ast.NodeID) (ast.NodeID, error) {
	ifDepth, whileDepth, forDepth := 0, 0, 0

	for cur := start; cur != ast.NilNode; cur = tree.Next(cur) {
		switch tree.Tag(tree.FirstChild(cur)) {
		case ast.IF:
			ifDepth++
		case ast.ENDIF:
			if ifDepth > 0 {
				ifDepth--
			}
		case ast.WHILE:
			whileDepth++
		case ast.ENDWHILE:
			if ifDepth == 0 && whileDepth == 0 {
				return cur, nil
			}
			if whileDepth > 0 {
				whileDepth--
			}
		case ast.FOR, ast.FOREACH:
			forDepth++
		case ast.ENDFOR:
			if ifDepth == 0 && forDepth == 0 {
				return cur, nil
			}
			if forDepth > 0 {
				forDepth--
			}
		}
	}

	return ast.NilNode, util.NewRuntimeError(util.ErrUnmatchedBlock, "break outside a loop", tree, start)
}

/*
scanToLoopStart is scanToLoopEnd's mirror image, used by CONTINUE to find
the innermost loop's opener.
*/
func scanToLoopStart(tree *ast.Tree, start ast.NodeID) (ast.NodeID, error) {
	ifDepth, whileDepth, forDepth := 0, 0, 0

	for cur := tree.Prev(start); cur != ast.NilNode; cur = tree.Prev(cur) {
		switch tree.Tag(tree.FirstChild(cur)) {
		case ast.ENDIF:
			ifDepth++
		case ast.IF:
			if ifDepth > 0 {
				ifDepth--
			}
		case ast.ENDWHILE:
			whileDepth++
		case ast.WHILE:
			if ifDepth == 0 && whileDepth == 0 {
				return cur, nil
			}
			if whileDepth > 0 {
				whileDepth--
			}
		case ast.ENDFOR:
			forDepth++
		case ast.FOR, ast.FOREACH:
			if ifDepth == 0 && forDepth == 0 {
				return cur, nil
			}
			if forDepth > 0 {
				forDepth--
			}
		}
	}

	return ast.NilNode, util.NewRuntimeError(util.ErrUnmatchedBlock, "continue outside a loop", tree, start)
}
