/*
 * UOSTEAM
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package cli

import (
	"fmt"
	"io"

	"github.com/krotik/uosteam/engine"
	"github.com/krotik/uosteam/interpreter"
)

/*
registerTesterHandlers installs the dummy command/expression handlers
spec.md §6 describes for the sample tester: every otherwise-unregistered
command prints "cmd NAME a b c" to out and succeeds immediately; every
otherwise-unregistered expression prints the same line and evaluates to
true. Two commands get real behavior because later statements in a test
script depend on it (createlist and setalias) - setting
an alias or a list element purely for display would be indistinguishable
from a no-op to the script that reads it back.
*/
func registerTesterHandlers(e *engine.Engine, out io.Writer) {
	e.RegisterDefaultCommandHandler(func(s *interpreter.Script, name string, args []*interpreter.Argument, quiet, force bool) (bool, error) {
		fmt.Fprintln(out, formatCall(name, args))
		return true, nil
	})

	e.RegisterDefaultExpressionHandler(func(s *interpreter.Script, name string, args []*interpreter.Argument, quiet bool) (interface{}, error) {
		fmt.Fprintln(out, formatCall(name, args))
		return true, nil
	})

	e.RegisterCommandHandler("createlist", func(s *interpreter.Script, name string, args []*interpreter.Argument, quiet, force bool) (bool, error) {
		listName, err := args[0].AsString()
		if err != nil {
			return false, err
		}
		e.CreateList(listName)
		fmt.Fprintln(out, formatCall(name, args))
		return true, nil
	})

	e.RegisterCommandHandler("setalias", func(s *interpreter.Script, name string, args []*interpreter.Argument, quiet, force bool) (bool, error) {
		if len(args) == 2 {
			aliasName, err := args[0].AsString()
			if err != nil {
				return false, err
			}
			serial, err := args[1].AsSerial()
			if err != nil {
				return false, err
			}
			e.SetAlias(aliasName, serial)
		}
		line := formatCall(name, args)
		if !quiet {
			fmt.Fprintln(out, line)
		}
		return true, nil
	})
}

/*
formatCall renders one handler invocation as "cmd NAME a b c", the exact
line shape spec.md §6 and §8's end-to-end scenarios expect.
*/
func formatCall(name string, args []*interpreter.Argument) string {
	line := "cmd " + name
	for _, a := range args {
		v, err := a.AsString()
		if err != nil {
			v = a.Lexeme()
		}
		line += " " + v
	}
	return line
}
