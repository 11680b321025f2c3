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

import "strings"

/*
splitQuotes splits a line on both ' and " into alternating outside/inside
segments. Quotes act identically and interchangeably - a run of characters
between any two quote runes (of either kind) is one atomic inside segment,
preserved verbatim including internal whitespace. seg[0] is outside, seg[1]
is inside, seg[2] is outside, and so on; with balanced quotes the slice has
an odd length, and an unclosed quote leaves the last segment as inside.
*/
func splitQuotes(line string) []string {
	var segs []string
	var cur strings.Builder

	for _, r := range line {
		if r == '\'' || r == '"' {
			segs = append(segs, cur.String())
			cur.Reset()
		} else {
			cur.WriteRune(r)
		}
	}
	segs = append(segs, cur.String())

	return segs
}

/*
tokenize splits a trimmed, non-comment source line into an ordered list of
raw lexemes. Outside-quote segments are split on runs of whitespace with
empty tokens removed; inside-quote segments become a single lexeme each,
even when empty.
*/
func tokenize(line string) []string {
	var toks []string

	for i, seg := range splitQuotes(line) {
		if i%2 == 0 {
			toks = append(toks, strings.Fields(seg)...)
		} else {
			toks = append(toks, seg)
		}
	}

	return toks
}
