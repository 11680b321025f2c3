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
	"github.com/dekarrin/rosed"
)

/*
explainWidth is the column width --explain wraps error detail to; a plain
terminal guess rather than anything queried from the tty.
*/
const explainWidth = 78

/*
explain wraps a (possibly long, single-line) error message for readable
display, the way a CLI's --explain/--verbose flag reformats a compiler
error for a human rather than a log line.
*/
func explain(err error) string {
	return rosed.Edit(err.Error()).Wrap(explainWidth).String()
}
