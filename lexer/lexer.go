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
Package lexer turns UO Steam script source text into an AST. It is a
stateless function from lines of text to an ast.Tree rooted at a SCRIPT
node - there is no persistent lexer state or intermediate token channel;
each line is self-contained and produces at most one STATEMENT.
*/
package lexer

import (
	"fmt"
	"os"
	"strings"

	"github.com/krotik/common/fileutil"

	"github.com/krotik/uosteam/ast"
	"github.com/krotik/uosteam/util"
)

/*
zeroArgMarkers maps a case-folded keyword to the tag of the zero-argument
marker statement it introduces.
*/
var zeroArgMarkers = map[string]ast.Tag{
	"endif":    ast.ENDIF,
	"endwhile": ast.ENDWHILE,
	"endfor":   ast.ENDFOR,
	"break":    ast.BREAK,
	"continue": ast.CONTINUE,
	"stop":     ast.STOP,
	"replay":   ast.REPLAY,
	"else":     ast.ELSE,
}

/*
controlKeywords maps a case-folded keyword to the tag of the control node it
opens. if/elseif/while share the logical-expression tail grammar (see
parseConditionalHead); for takes a bare count (see parseForHead) and
foreach takes "VAR in LIST" (see parseForeachHead).
*/
var controlKeywords = map[string]ast.Tag{
	"if":      ast.IF,
	"elseif":  ast.ELSEIF,
	"while":   ast.WHILE,
	"for":     ast.FOR,
	"foreach": ast.FOREACH,
}

/*
Lex lexes a given set of source lines into a SCRIPT AST. Comment lines
(leading // or #, after trimming) and blank lines produce no statement.
*/
func Lex(lines []string) (*ast.Tree, ast.NodeID, error) {
	tree := ast.NewTree()
	root := tree.New(ast.SCRIPT, "")

	for lineNo, raw := range lines {
		line := strings.TrimSpace(raw)

		if line == "" || strings.HasPrefix(line, "//") || strings.HasPrefix(line, "#") {
			continue
		}

		toks := tokenize(line)
		if len(toks) == 0 {
			continue
		}

		stmt := tree.New(ast.STATEMENT, "")

		child, err := parseStatement(tree, toks)
		if err != nil {
			return nil, ast.NilNode, util.NewParseError(lineNo+1, line, err)
		}

		tree.AppendChild(stmt, child)
		tree.AppendChild(root, stmt)
	}

	return tree, root, nil
}

/*
LexFile reads a script from disk and lexes it. The file must exist; this
mirrors the teacher's fileutil.PathExists guard in its own file-driven
entry points.
*/
func LexFile(path string) (*ast.Tree, ast.NodeID, error) {
	if ok, err := fileutil.PathExists(path); err != nil || !ok {
		return nil, ast.NilNode, util.NewParseError(0, path, errNoSuchFile(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ast.NilNode, util.NewParseError(0, path, err)
	}

	return Lex(strings.Split(string(data), "\n"))
}

func errNoSuchFile(path string) error {
	return &fileNotFoundError{path}
}

type fileNotFoundError struct{ path string }

func (e *fileNotFoundError) Error() string {
	return fmt.Sprintf("script file does not exist: %v", e.path)
}

/*
parseStatement classifies and parses a single non-empty, non-comment line
into exactly one AST node - the sole child a STATEMENT is required to have.
*/
func parseStatement(t *ast.Tree, toks []string) (ast.NodeID, error) {
	head := strings.ToLower(toks[0])

	if tag, ok := controlKeywords[head]; ok {
		switch tag {
		case ast.FOR:
			return parseForHead(t, toks[1:])
		case ast.FOREACH:
			return parseForeachHead(t, toks[1:])
		default:
			return parseConditionalHead(t, tag, toks[1:])
		}
	}

	if tag, ok := zeroArgMarkers[head]; ok {
		if len(toks) > 1 {
			return ast.NilNode, errUnexpectedArgs(toks[0])
		}
		return t.New(tag, ""), nil
	}

	return parseCommand(t, toks)
}

/*
parseConditionalHead parses the "if/elseif/while <logical expression>" head:
push the control node, then parse the remainder as a logical expression
whose resulting node becomes the control node's sole child.
*/
func parseConditionalHead(t *ast.Tree, tag ast.Tag, rest []string) (ast.NodeID, error) {
	node := t.New(tag, "")

	if len(rest) == 0 {
		return ast.NilNode, errEmptyExpression()
	}

	expr, err := parseLogicalExpression(t, rest)
	if err != nil {
		return ast.NilNode, err
	}

	t.AppendChild(node, expr)

	return node, nil
}

/*
parseForHead parses "for N": the operand is a bare count, not a logical
expression. The lexer does not itself validate that the count is an
integer - classifyValue may produce STRING or SERIAL for a malformed
count, and the interpreter raises the runtime error described in the
engine's FOR semantics.
*/
func parseForHead(t *ast.Tree, rest []string) (ast.NodeID, error) {
	node := t.New(ast.FOR, "")

	if len(rest) != 1 {
		return ast.NilNode, errMalformedFor()
	}

	t.AppendChild(node, newValueNode(t, rest[0]))

	return node, nil
}

/*
parseForeachHead parses "foreach VAR in LIST".
*/
func parseForeachHead(t *ast.Tree, rest []string) (ast.NodeID, error) {
	node := t.New(ast.FOREACH, "")

	if len(rest) != 3 || !strings.EqualFold(rest[1], "in") {
		return ast.NilNode, errMalformedForeach()
	}

	t.AppendChild(node, t.New(ast.STRING, rest[0]))
	t.AppendChild(node, t.New(ast.STRING, rest[2]))

	return node, nil
}

/*
parseCommand parses a command statement: an optional leading '@' (QUIET)
and/or trailing '!' (FORCE) on the command lexeme, stripped before the
COMMAND node is emitted, followed by its value arguments.
*/
func parseCommand(t *ast.Tree, toks []string) (ast.NodeID, error) {
	name, quiet, force := stripModifiers(toks[0])

	cmd := t.New(ast.COMMAND, name)

	if quiet {
		t.AppendChild(cmd, t.New(ast.QUIET, ""))
	}
	if force {
		t.AppendChild(cmd, t.New(ast.FORCE, ""))
	}

	for _, tok := range toks[1:] {
		t.AppendChild(cmd, newValueNode(t, tok))
	}

	return cmd, nil
}

/*
stripModifiers splits a command lexeme into its bare name and the quiet
(leading @) / force (trailing !) modifier flags.
*/
func stripModifiers(tok string) (name string, quiet, force bool) {
	name = tok

	if strings.HasPrefix(name, "@") {
		quiet = true
		name = name[1:]
	}

	if strings.HasSuffix(name, "!") {
		force = true
		name = name[:len(name)-1]
	}

	return name, quiet, force
}
