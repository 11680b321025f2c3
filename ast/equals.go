/*
 * UOSTEAM
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package ast

import "fmt"

/*
Equals checks if node a (in tree ta) is structurally equal to node b (in
tree tb) - same tag, same lexeme, same children in the same order,
recursively. It returns also a message describing the first difference
found.
*/
func Equals(ta *Tree, a NodeID, tb *Tree, b NodeID) (bool, string) {
	return equalsPath("root", ta, a, tb, b)
}

func equalsPath(path string, ta *Tree, a NodeID, tb *Tree, b NodeID) (bool, string) {
	if a == NilNode || b == NilNode {
		if a == NilNode && b == NilNode {
			return true, ""
		}
		return false, fmt.Sprintf("%v: one side is nil (%v vs %v)", path, ta.String(a), tb.String(b))
	}

	if ta.Tag(a) != tb.Tag(b) {
		return false, fmt.Sprintf("%v: tag differs %v vs %v", path, ta.Tag(a), tb.Tag(b))
	}

	if ta.Lexeme(a) != tb.Lexeme(b) {
		return false, fmt.Sprintf("%v: lexeme differs %q vs %q", path, ta.Lexeme(a), tb.Lexeme(b))
	}

	ca, cb := ta.Children(a), tb.Children(b)

	if len(ca) != len(cb) {
		return false, fmt.Sprintf("%v: child count differs %v vs %v", path, len(ca), len(cb))
	}

	for i := range ca {
		childPath := fmt.Sprintf("%v/%v[%d]", path, ta.Tag(a), i)
		if ok, msg := equalsPath(childPath, ta, ca[i], tb, cb[i]); !ok {
			return false, msg
		}
	}

	return true, ""
}
