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
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/krotik/common/termutil"

	"github.com/krotik/uosteam/config"
	"github.com/krotik/uosteam/engine"
	"github.com/krotik/uosteam/lexer"
)

var consoleLogLevel string

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Interactive UO Steam console",
	Long: `Console starts a line-oriented REPL: each line you type is lexed
and run to completion as its own one-line script, against the same sample
tester handlers "run" uses. Type 'q', 'quit' or press Ctrl-D to exit.`,
	RunE: runConsole,
}

func init() {
	consoleCmd.Flags().StringVar(&consoleLogLevel, "log-level", "", "log engine lifecycle events at this level (debug, info, error)")
}

func isExitLine(s string) bool {
	switch s {
	case "exit", "q", "quit", "bye", "\x04":
		return true
	}
	return false
}

func runConsole(cmd *cobra.Command, args []string) error {
	term, err := termutil.NewConsoleLineTerminal(os.Stdout)
	if err != nil {
		return err
	}

	term, err = termutil.AddHistoryMixin(term, "", isExitLine)
	if err != nil {
		return err
	}

	logger, err := newEngineLogger(consoleLogLevel)
	if err != nil {
		return err
	}

	e := engine.New(logger)
	registerTesterHandlers(e, os.Stdout)

	fmt.Fprintf(os.Stdout, "uosteam %v console\n", config.ProductVersion)
	fmt.Fprintln(os.Stdout, "Type 'q' or 'quit' to exit.")

	if err := term.StartTerm(); err != nil {
		return err
	}
	defer term.StopTerm()

	line, err := term.NextLine()
	for err == nil && !isExitLine(line) {
		handleConsoleLine(e, strings.TrimSpace(line))
		line, err = term.NextLine()
	}

	return nil
}

/*
handleConsoleLine lexes and runs a single console input line as its own
tiny script, within the engine's single-active-script contract: the prior
line's script has already finished, so the slot is free.
*/
func handleConsoleLine(e *engine.Engine, line string) {
	if line == "" {
		return
	}

	tree, root, err := lexer.Lex([]string{line})
	if err != nil {
		fmt.Fprintln(os.Stdout, explain(err))
		return
	}

	if err := e.ExecuteScript(tree, root, config.Int(config.TickBudget)); err != nil {
		fmt.Fprintln(os.Stdout, explain(err))
	}
}
