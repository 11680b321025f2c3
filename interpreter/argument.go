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

/*
Argument is a lazy, typed view over one AST leaf. Coercion happens on
demand: an Argument built while a script is inside a loop body resolves a
loop variable's current value each time it is asked, not once at parse
time - which is what lets the same COMMAND node produce a different value
on every iteration.
*/
type Argument struct {
	script   *Script
	tree     *ast.Tree
	node     ast.NodeID
	consumed bool
}

/*
NewArgument wraps an AST leaf belonging to tree, to be resolved against the
scope chain of script.
*/
func NewArgument(script *Script, tree *ast.Tree, node ast.NodeID) *Argument {
	return &Argument{script: script, tree: tree, node: node}
}

/*
Consumed reports whether any As* coercion has been called on this Argument.
execCommand uses this after a handler returns to enforce spec.md §4.4's
"command did not consume all available arguments" rule.
*/
func (a *Argument) Consumed() bool {
	return a.consumed
}

/*
Lexeme returns the raw source text of the wrapped leaf.
*/
func (a *Argument) Lexeme() string {
	return a.tree.Lexeme(a.node)
}

/*
Node returns the wrapped AST node, for error reporting.
*/
func (a *Argument) Node() ast.NodeID {
	return a.node
}

/*
resolve looks up the lexeme as a variable in the script's current scope
chain.
*/
func (a *Argument) resolve() (interface{}, bool) {
	return a.script.Resolve(a.Lexeme())
}

func (a *Argument) err(cause error) error {
	return util.NewRuntimeError(util.ErrArgCoercion, cause.Error(), a.tree, a.node)
}

/*
AsInt coerces to a signed integer: a "0x"-prefixed lexeme is hexadecimal,
otherwise decimal.
*/
func (a *Argument) AsInt() (int64, error) {
	a.consumed = true
	if v, ok := a.resolve(); ok {
		i, err := coerceInt(v)
		if err != nil {
			return 0, a.err(err)
		}
		return i, nil
	}
	i, err := util.ParseInt(a.Lexeme())
	if err != nil {
		return 0, a.err(err)
	}
	return i, nil
}

/*
AsUint coerces to an unsigned integer using the same hex/decimal rule as
AsInt.
*/
func (a *Argument) AsUint() (uint64, error) {
	a.consumed = true
	if v, ok := a.resolve(); ok {
		u, err := coerceUint(v)
		if err != nil {
			return 0, a.err(err)
		}
		return u, nil
	}
	u, err := util.ParseUint(a.Lexeme())
	if err != nil {
		return 0, a.err(err)
	}
	return u, nil
}

/*
AsUshort coerces to an unsigned 16-bit integer.
*/
func (a *Argument) AsUshort() (uint16, error) {
	u, err := a.AsUint()
	if err != nil {
		return 0, err
	}
	return uint16(u), nil
}

/*
AsSerial resolves the lexeme as a variable first, then as an alias, and
only then falls back to parsing it as a bare unsigned integer.
*/
func (a *Argument) AsSerial() (uint32, error) {
	a.consumed = true
	if v, ok := a.resolve(); ok {
		u, err := coerceUint(v)
		if err != nil {
			return 0, a.err(err)
		}
		return uint32(u), nil
	}

	if alias, ok := a.script.host.GetAlias(a.Lexeme()); ok {
		return alias, nil
	}

	u, err := a.AsUint()
	return uint32(u), err
}

/*
AsString resolves the lexeme as a variable first; if found, its string
representation is returned, otherwise the literal lexeme is returned
unchanged.
*/
func (a *Argument) AsString() (string, error) {
	a.consumed = true
	if v, ok := a.resolve(); ok {
		return coerceString(v), nil
	}
	return a.Lexeme(), nil
}

/*
AsBool parses the lexeme as a case-insensitive true/false literal. Unlike
every other coercion, this deliberately skips both variable and alias
resolution.
*/
func (a *Argument) AsBool() (bool, error) {
	a.consumed = true
	b, err := util.ParseBool(a.Lexeme())
	if err != nil {
		return false, a.err(err)
	}
	return b, nil
}

/*
AsDouble coerces to a double, "." decimal separator regardless of host
locale.
*/
func (a *Argument) AsDouble() (float64, error) {
	a.consumed = true
	if v, ok := a.resolve(); ok {
		d, err := coerceDouble(v)
		if err != nil {
			return 0, a.err(err)
		}
		return d, nil
	}
	d, err := util.ParseDouble(a.Lexeme())
	if err != nil {
		return 0, a.err(err)
	}
	return d, nil
}

/*
AsComparable evaluates this Argument's owning leaf per the BINARY_EXPRESSION
operand rule: INTEGER -> int, SERIAL -> uint, STRING -> string,
DOUBLE -> double. Callers needing the OPERAND (command-result) case build
their Comparable separately, since that requires invoking a handler.
*/
func (a *Argument) AsComparable() (Comparable, error) {
	switch a.tree.Tag(a.node) {
	case ast.INTEGER:
		i, err := a.AsInt()
		return Comparable{Kind: KindInt, Int: i}, err
	case ast.SERIAL:
		u, err := a.AsUint()
		return Comparable{Kind: KindUint, Uint: u}, err
	case ast.DOUBLE:
		d, err := a.AsDouble()
		return Comparable{Kind: KindDouble, Dbl: d}, err
	default:
		s, err := a.AsString()
		return Comparable{Kind: KindString, Str: s}, err
	}
}
