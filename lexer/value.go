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

import (
	"strconv"
	"strings"

	"github.com/krotik/uosteam/ast"
)

/*
classifyValue returns the tag a bare (non-quoted-aware) token should be
emitted as per the value classification rules: a leading "0x" makes it a
SERIAL, a token which parses as a signed decimal integer makes it an
INTEGER, everything else is a STRING.
*/
func classifyValue(tok string) ast.Tag {
	if len(tok) >= 2 && tok[0] == '0' && (tok[1] == 'x' || tok[1] == 'X') {
		return ast.SERIAL
	}

	if _, err := strconv.ParseInt(tok, 10, 64); err == nil {
		return ast.INTEGER
	}

	return ast.STRING
}

/*
isDecimalInteger reports whether tok is a signed decimal integer literal.
*/
func isDecimalInteger(tok string) bool {
	_, err := strconv.ParseInt(tok, 10, 64)
	return err == nil
}

/*
isDoubleLiteral reports whether tok looks like a decimal floating point
literal ("." as the separator, independent of host locale).
*/
func isDoubleLiteral(tok string) bool {
	if !strings.Contains(tok, ".") {
		return false
	}
	_, err := strconv.ParseFloat(tok, 64)
	return err == nil
}

/*
newValueNode allocates a value leaf for tok, classified per classifyValue.
*/
func newValueNode(t *ast.Tree, tok string) ast.NodeID {
	return t.New(classifyValue(tok), tok)
}
