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

	"github.com/krotik/uosteam/ast"
	"github.com/krotik/uosteam/lexer"
)

var lexCmd = &cobra.Command{
	Use:   "lex <file>",
	Short: "Parse a .uos script and report whether it is well-formed",
	Long: `Lex parses a UO Steam script and reports the number of top-level
statements it found, or the parse error otherwise. It is a syntax check, not
the rich AST pretty-printer the engine deliberately leaves to a host tool.`,
	Args: cobra.ExactArgs(1),
	RunE: lexScript,
}

func lexScript(cmd *cobra.Command, args []string) error {
	tree, root, err := lexer.LexFile(args[0])
	if err != nil {
		return err
	}

	n := 0
	for c := tree.FirstChild(root); c != ast.NilNode; c = tree.Next(c) {
		n++
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d statement(s), well-formed\n", args[0], n)
	return nil
}
