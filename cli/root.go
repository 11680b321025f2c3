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
Package cli is the uosteam command line tool: the "sample tester" spec.md §6
describes, plus an interactive console. Neither belongs to the engine's own
scope - a host embedding the engine package never needs this package - but a
complete repository needs a runnable entry point.
*/
package cli

import (
	"github.com/spf13/cobra"

	"github.com/krotik/uosteam/config"
)

var rootCmd = &cobra.Command{
	Use:     "uosteam",
	Short:   "A UO Steam script runner",
	Version: config.ProductVersion,
	Long: `uosteam runs UO Steam scripts against a small sample command set.

It exists to exercise the lexer / interpreter / engine core from the command
line; every command it registers ("msg", "setalias", ...) is a stand-in that
prints what it was asked to do rather than driving an actual game client -
the concrete command catalog is always supplied by a host, per the engine's
own design.`,
}

/*
Execute runs the uosteam root command.
*/
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(consoleCmd)
	rootCmd.AddCommand(lexCmd)
}
