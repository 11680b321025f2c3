/*
 * UOSTEAM
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package lexer_test

import (
	"fmt"
	"strings"

	"github.com/krotik/uosteam/ast"
)

/*
reconstruct renders a lexed script back into source lines, one token per
lexeme. It exists only to drive the round-trip property test below: re-lexing
its output must reproduce a structurally equal AST. It is not a pretty-printer
and makes no attempt to be readable beyond that.
*/
func reconstruct(tree *ast.Tree, root ast.NodeID) []string {
	var lines []string
	for stmt := tree.FirstChild(root); stmt != ast.NilNode; stmt = tree.Next(stmt) {
		toks := reconstructStatement(tree, tree.FirstChild(stmt))
		lines = append(lines, strings.Join(toks, " "))
	}
	return lines
}

func reconstructStatement(tree *ast.Tree, head ast.NodeID) []string {
	switch tree.Tag(head) {
	case ast.IF:
		return append([]string{"if"}, reconstructExpr(tree, tree.FirstChild(head))...)
	case ast.ELSEIF:
		return append([]string{"elseif"}, reconstructExpr(tree, tree.FirstChild(head))...)
	case ast.WHILE:
		return append([]string{"while"}, reconstructExpr(tree, tree.FirstChild(head))...)
	case ast.FOR:
		return []string{"for", tree.Lexeme(tree.FirstChild(head))}
	case ast.FOREACH:
		children := tree.Children(head)
		return []string{"foreach", tree.Lexeme(children[0]), "in", tree.Lexeme(children[1])}
	case ast.ENDIF:
		return []string{"endif"}
	case ast.ENDWHILE:
		return []string{"endwhile"}
	case ast.ENDFOR:
		return []string{"endfor"}
	case ast.BREAK:
		return []string{"break"}
	case ast.CONTINUE:
		return []string{"continue"}
	case ast.STOP:
		return []string{"stop"}
	case ast.REPLAY:
		return []string{"replay"}
	case ast.ELSE:
		return []string{"else"}
	case ast.COMMAND:
		return reconstructCommand(tree, head)
	}
	panic(fmt.Sprintf("reconstruct: unexpected statement head %v", tree.Tag(head)))
}

func reconstructExpr(tree *ast.Tree, node ast.NodeID) []string {
	if tree.Tag(node) != ast.LOGICAL_EXPRESSION {
		return reconstructSub(tree, node)
	}

	children := tree.Children(node)
	toks := reconstructSub(tree, children[0])
	for i := 1; i+1 < len(children); i += 2 {
		toks = append(toks, tree.Lexeme(children[i]))
		toks = append(toks, reconstructSub(tree, children[i+1])...)
	}
	return toks
}

func reconstructSub(tree *ast.Tree, node ast.NodeID) []string {
	switch tree.Tag(node) {
	case ast.UNARY_EXPRESSION:
		children := tree.Children(node)
		idx := 0
		var toks []string
		if idx < len(children) && tree.Tag(children[idx]) == ast.NOT {
			toks = append(toks, "not")
			idx++
		}
		return append(toks, reconstructCommand(tree, children[idx])...)
	case ast.BINARY_EXPRESSION:
		children := tree.Children(node)
		toks := reconstructOperand(tree, children[0])
		toks = append(toks, tree.Lexeme(children[1]))
		return append(toks, reconstructOperand(tree, children[2])...)
	}
	panic(fmt.Sprintf("reconstruct: unexpected sub-expression %v", tree.Tag(node)))
}

func reconstructOperand(tree *ast.Tree, node ast.NodeID) []string {
	switch tree.Tag(node) {
	case ast.INTEGER, ast.DOUBLE:
		return []string{tree.Lexeme(node)}
	case ast.OPERAND:
		return reconstructCommand(tree, tree.FirstChild(node))
	}
	panic(fmt.Sprintf("reconstruct: unexpected operand %v", tree.Tag(node)))
}

func reconstructCommand(tree *ast.Tree, cmd ast.NodeID) []string {
	quiet, force := false, false
	var values []ast.NodeID

	for c := tree.FirstChild(cmd); c != ast.NilNode; c = tree.Next(c) {
		switch tree.Tag(c) {
		case ast.QUIET:
			quiet = true
		case ast.FORCE:
			force = true
		default:
			values = append(values, c)
		}
	}

	name := tree.Lexeme(cmd)
	if quiet {
		name = "@" + name
	}
	if force {
		name = name + "!"
	}

	toks := []string{name}
	for _, v := range values {
		toks = append(toks, quoteIfNeeded(tree.Lexeme(v)))
	}
	return toks
}

func quoteIfNeeded(lexeme string) string {
	if lexeme == "" || strings.ContainsAny(lexeme, " \t") {
		return "'" + lexeme + "'"
	}
	return lexeme
}
