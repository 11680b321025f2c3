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
Package interpreter walks a lexed AST one statement at a time. It knows
nothing about what any particular command or expression does - that is
supplied by the host through the Host interface - and nothing about aliases,
lists or timers beyond the GetAlias lookup AsSerial needs and the
ListLength/ListItem reads foreach needs.
*/
package interpreter

/*
CommandHandler executes one COMMAND statement. It returns true if the
cursor should advance, false if the script should stay on the current
statement and retry the handler on the next tick (e.g. waiting on an
external condition). quiet/force reflect the command's "@" / "!" source
modifiers.
*/
type CommandHandler func(s *Script, name string, args []*Argument, quiet, force bool) (bool, error)

/*
ExpressionHandler evaluates one command used as an expression operand
(inside a UNARY_EXPRESSION or as a BINARY_EXPRESSION OPERAND). Its result
feeds the generic comparator. quiet reflects the command's "@" source
modifier.
*/
type ExpressionHandler func(s *Script, name string, args []*Argument, quiet bool) (interface{}, error)

/*
Host resolves the names a script references to handlers and aliases. The
engine package is the production implementation; tests can supply their own.
*/
type Host interface {
	CommandHandler(name string) (CommandHandler, bool)
	ExpressionHandler(name string) (ExpressionHandler, bool)

	/*
	   GetAlias resolves a static or dynamic alias to a serial number. ok is
	   false if no alias is registered under name.
	*/
	GetAlias(name string) (uint32, bool)

	/*
	   ListLength returns the length of a named list and whether it exists.
	*/
	ListLength(name string) (int, bool)

	/*
	   ListItem returns the element of a named list at index, and whether
	   both the list and the index exist.
	*/
	ListItem(name string, index int) (interface{}, bool)
}
