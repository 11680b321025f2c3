/*
 * UOSTEAM
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package lexer

import (
	"strings"

	"github.com/krotik/uosteam/ast"
)

/*
comparisonTokens maps the surface spelling of a comparison operator to its
AST tag. "=" is accepted as an alias for "==".
*/
var comparisonTokens = map[string]ast.Tag{
	"==": ast.EQUAL,
	"=":  ast.EQUAL,
	"!=": ast.NOT_EQUAL,
	"<":  ast.LESS_THAN,
	"<=": ast.LESS_THAN_OR_EQUAL,
	">":  ast.GREATER_THAN,
	">=": ast.GREATER_THAN_OR_EQUAL,
}

/*
parseLogicalExpression parses the tail of an if/elseif/while statement.
There is no grouping in this grammar: and/or are scanned for at the top
level only. A single sub-expression is emitted directly; two or more are
folded into a LOGICAL_EXPRESSION whose children alternate
<sub-expr> AND|OR <sub-expr> ...
*/
func parseLogicalExpression(t *ast.Tree, toks []string) (ast.NodeID, error) {
	chunks, joins := splitLogical(toks)

	for _, c := range chunks {
		if len(c) == 0 {
			return ast.NilNode, errEmptySubExpression()
		}
	}

	subs := make([]ast.NodeID, len(chunks))
	for i, c := range chunks {
		n, err := parseSubExpression(t, c)
		if err != nil {
			return ast.NilNode, err
		}
		subs[i] = n
	}

	if len(subs) == 1 {
		return subs[0], nil
	}

	node := t.New(ast.LOGICAL_EXPRESSION, "")
	t.AppendChild(node, subs[0])

	for i, j := range joins {
		tag := ast.AND
		if strings.EqualFold(j, "or") {
			tag = ast.OR
		}
		t.AppendChild(node, t.New(tag, strings.ToLower(j)))
		t.AppendChild(node, subs[i+1])
	}

	return node, nil
}

/*
splitLogical splits toks at top-level "and"/"or" tokens, returning the
sub-expression chunks and, in order, the joining keywords between them.
*/
func splitLogical(toks []string) (chunks [][]string, joins []string) {
	start := 0

	for i, tok := range toks {
		if strings.EqualFold(tok, "and") || strings.EqualFold(tok, "or") {
			chunks = append(chunks, toks[start:i])
			joins = append(joins, tok)
			start = i + 1
		}
	}
	chunks = append(chunks, toks[start:])

	return chunks, joins
}

/*
parseSubExpression classifies and parses one and/or-delimited chunk. A
chunk containing a comparison operator token is BINARY; otherwise it is
UNARY. A chunk containing both a comparison operator and the word "not"
is a parse error.
*/
func parseSubExpression(t *ast.Tree, toks []string) (ast.NodeID, error) {
	opIdx := -1
	hasNot := false

	for i, tok := range toks {
		if _, ok := comparisonTokens[tok]; ok && opIdx == -1 {
			opIdx = i
		}
		if strings.EqualFold(tok, "not") {
			hasNot = true
		}
	}

	if opIdx >= 0 && hasNot {
		return ast.NilNode, errMixedNotAndComparison()
	}

	if opIdx >= 0 {
		return parseBinary(t, toks, opIdx)
	}

	return parseUnary(t, toks)
}

/*
parseBinary parses "<left> <op> <right>" into a BINARY_EXPRESSION with
three children: the left operand, the operator node, the right operand.
*/
func parseBinary(t *ast.Tree, toks []string, opIdx int) (ast.NodeID, error) {
	left, right := toks[:opIdx], toks[opIdx+1:]

	leftNode, err := parseOperand(t, left)
	if err != nil {
		return ast.NilNode, err
	}

	rightNode, err := parseOperand(t, right)
	if err != nil {
		return ast.NilNode, err
	}

	node := t.New(ast.BINARY_EXPRESSION, "")
	t.AppendChild(node, leftNode)
	t.AppendChild(node, t.New(comparisonTokens[toks[opIdx]], toks[opIdx]))
	t.AppendChild(node, rightNode)

	return node, nil
}

/*
parseOperand parses one side of a comparison. A lone decimal integer or
decimal double literal is emitted as a value node; anything else - a bare
word, a hex serial, or several tokens - is treated as a command to be
executed for its result and wrapped in an OPERAND node so the interpreter
knows to resolve it through the expression handler map rather than taking
it as a literal.
*/
func parseOperand(t *ast.Tree, toks []string) (ast.NodeID, error) {
	if len(toks) == 0 {
		return ast.NilNode, errEmptySubExpression()
	}

	if len(toks) == 1 {
		if isDecimalInteger(toks[0]) {
			return t.New(ast.INTEGER, toks[0]), nil
		}
		if isDoubleLiteral(toks[0]) {
			return t.New(ast.DOUBLE, toks[0]), nil
		}
	}

	cmd, err := parseCommand(t, toks)
	if err != nil {
		return ast.NilNode, err
	}

	operand := t.New(ast.OPERAND, "")
	t.AppendChild(operand, cmd)

	return operand, nil
}

/*
parseUnary parses an optional leading "not" followed by a command call
into a UNARY_EXPRESSION.
*/
func parseUnary(t *ast.Tree, toks []string) (ast.NodeID, error) {
	not := false

	if len(toks) > 0 && strings.EqualFold(toks[0], "not") {
		not = true
		toks = toks[1:]
	}

	if len(toks) == 0 {
		return ast.NilNode, errEmptySubExpression()
	}

	node := t.New(ast.UNARY_EXPRESSION, "")

	if not {
		t.AppendChild(node, t.New(ast.NOT, ""))
	}

	cmd, err := parseCommand(t, toks)
	if err != nil {
		return ast.NilNode, err
	}
	t.AppendChild(node, cmd)

	return node, nil
}
