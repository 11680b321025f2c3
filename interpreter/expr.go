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
	"github.com/krotik/uosteam/util"
)

var opStrings = map[ast.Tag]string{
	ast.EQUAL:                 "==",
	ast.NOT_EQUAL:             "!=",
	ast.LESS_THAN:             "<",
	ast.LESS_THAN_OR_EQUAL:    "<=",
	ast.GREATER_THAN:          ">",
	ast.GREATER_THAN_OR_EQUAL: ">=",
}

/*
evalLogical evaluates the condition of an if/elseif/while statement: a bare
UNARY_EXPRESSION or BINARY_EXPRESSION, or a LOGICAL_EXPRESSION folding two
or more of those left to right with and/or. Both sides of every and/or are
always evaluated - the reference implementation does not short-circuit.
*/
func (s *Script) evalLogical(node ast.NodeID) (bool, error) {
	if s.tree.Tag(node) != ast.LOGICAL_EXPRESSION {
		return s.evalSub(node)
	}

	children := s.tree.Children(node)

	result, err := s.evalSub(children[0])
	if err != nil {
		return false, err
	}

	for i := 1; i+1 < len(children); i += 2 {
		join := s.tree.Tag(children[i])

		rhs, err := s.evalSub(children[i+1])
		if err != nil {
			return false, err
		}

		if join == ast.AND {
			result = result && rhs
		} else {
			result = result || rhs
		}
	}

	return result, nil
}

func (s *Script) evalSub(node ast.NodeID) (bool, error) {
	switch s.tree.Tag(node) {
	case ast.UNARY_EXPRESSION:
		return s.evalUnary(node)
	case ast.BINARY_EXPRESSION:
		return s.evalBinary(node)
	}
	return false, util.NewRuntimeError(util.ErrUnknownExpression, "not an expression node", s.tree, node)
}

/*
evalUnary invokes the wrapped command as an expression handler and compares
its result against the literal true (or false, if a leading NOT was
parsed) using the generic comparator.
*/
func (s *Script) evalUnary(node ast.NodeID) (bool, error) {
	children := s.tree.Children(node)
	if len(children) == 0 {
		return false, util.NewRuntimeError(util.ErrEmptyExpression, "", s.tree, node)
	}

	target := true
	cmdNode := children[0]

	if s.tree.Tag(cmdNode) == ast.NOT {
		target = false
		if len(children) < 2 {
			return false, util.NewRuntimeError(util.ErrEmptyExpression, "", s.tree, node)
		}
		cmdNode = children[1]
	}

	result, err := s.invokeExpression(cmdNode)
	if err != nil {
		return false, err
	}

	return Compare(result, Comparable{Kind: KindBool, Bool: target}, "==")
}

/*
evalBinary evaluates "<left> <op> <right>" via the generic comparator.
*/
func (s *Script) evalBinary(node ast.NodeID) (bool, error) {
	children := s.tree.Children(node)
	if len(children) != 3 {
		return false, util.NewRuntimeError(util.ErrUnknownExpression, "malformed binary expression", s.tree, node)
	}

	left, err := s.operandComparable(children[0])
	if err != nil {
		return false, err
	}

	right, err := s.operandComparable(children[2])
	if err != nil {
		return false, err
	}

	op, ok := opStrings[s.tree.Tag(children[1])]
	if !ok {
		return false, util.NewRuntimeError(util.ErrUnknownExpression, "unknown comparison operator", s.tree, children[1])
	}

	return Compare(left, right, op)
}

/*
operandComparable evaluates one side of a BINARY_EXPRESSION: literal
INTEGER/SERIAL/DOUBLE/STRING nodes coerce directly; an OPERAND node invokes
its wrapped command through the expression handler map.
*/
func (s *Script) operandComparable(node ast.NodeID) (Comparable, error) {
	switch s.tree.Tag(node) {
	case ast.INTEGER:
		i, err := NewArgument(s, s.tree, node).AsInt()
		return Comparable{Kind: KindInt, Int: i}, err
	case ast.SERIAL:
		u, err := NewArgument(s, s.tree, node).AsUint()
		return Comparable{Kind: KindUint, Uint: u}, err
	case ast.DOUBLE:
		d, err := NewArgument(s, s.tree, node).AsDouble()
		return Comparable{Kind: KindDouble, Dbl: d}, err
	case ast.OPERAND:
		cmdNode := s.tree.FirstChild(node)
		return s.invokeExpression(cmdNode)
	default:
		str, err := NewArgument(s, s.tree, node).AsString()
		return Comparable{Kind: KindString, Str: str}, err
	}
}

/*
invokeExpression calls the expression handler registered for cmdNode's
command name. If none is registered, the command's bare name is taken as a
literal string - there being no other sensible value to fall back to for
an unrecognised expression operand.
*/
func (s *Script) invokeExpression(cmdNode ast.NodeID) (Comparable, error) {
	name := s.tree.Lexeme(cmdNode)

	handler, ok := s.host.ExpressionHandler(name)
	if !ok {
		return Comparable{Kind: KindString, Str: name}, nil
	}

	result, err := handler(s, name, s.commandArgs(cmdNode), s.IsQuiet(cmdNode))
	if err != nil {
		return Comparable{}, err
	}

	return toComparable(result), nil
}

/*
toComparable classifies a raw expression handler result by its dynamic Go
type.
*/
func toComparable(v interface{}) Comparable {
	switch t := v.(type) {
	case bool:
		return Comparable{Kind: KindBool, Bool: t}
	case int64:
		return Comparable{Kind: KindInt, Int: t}
	case int:
		return Comparable{Kind: KindInt, Int: int64(t)}
	case uint64:
		return Comparable{Kind: KindUint, Uint: t}
	case uint32:
		return Comparable{Kind: KindUint, Uint: uint64(t)}
	case float64:
		return Comparable{Kind: KindDouble, Dbl: t}
	case string:
		return Comparable{Kind: KindString, Str: t}
	default:
		return Comparable{Kind: KindString, Str: coerceString(v)}
	}
}
