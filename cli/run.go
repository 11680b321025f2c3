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

	"github.com/spf13/cobra"

	"github.com/krotik/uosteam/config"
	"github.com/krotik/uosteam/engine"
	"github.com/krotik/uosteam/lexer"
)

var runExplain bool
var runStatus bool
var runLogLevel string

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Run a .uos script to completion against the sample tester",
	Long: `Run lexes a UO Steam script and ticks it to completion, using the
dummy command/expression handlers described by the engine's sample tester:
every call is printed as "cmd NAME a b c" rather than driving a real game
client.`,
	Args: cobra.ExactArgs(1),
	RunE: runScript,
}

func init() {
	runCmd.Flags().BoolVar(&runExplain, "explain", false, "wrap runtime error detail for readability")
	runCmd.Flags().BoolVar(&runStatus, "status", false, "print the engine snapshot once the script finishes")
	runCmd.Flags().StringVar(&runLogLevel, "log-level", "", "log engine lifecycle events at this level (debug, info, error)")
}

func runScript(cmd *cobra.Command, args []string) error {
	tree, root, err := lexer.LexFile(args[0])
	if err != nil {
		return err
	}

	logger, err := newEngineLogger(runLogLevel)
	if err != nil {
		return err
	}

	e := engine.New(logger)
	registerTesterHandlers(e, cmd.OutOrStdout())

	runErr := e.ExecuteScript(tree, root, config.Int(config.TickBudget))

	if runStatus {
		printSnapshot(cmd, e.Snapshot())
	}

	if runErr != nil {
		if runExplain {
			return fmt.Errorf("%s", explain(runErr))
		}
		return runErr
	}

	return nil
}

func printSnapshot(cmd *cobra.Command, snap engine.Snapshot) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "run:     %s\n", snap.RunID)
	fmt.Fprintf(out, "state:   %s\n", snap.State)
	fmt.Fprintf(out, "cursor:  %s\n", snap.Cursor)
	fmt.Fprintf(out, "lists:   %v\n", snap.Lists)
	fmt.Fprintf(out, "timers:  %v\n", snap.Timers)
	fmt.Fprintf(out, "aliases: %v\n", snap.Aliases)
}
