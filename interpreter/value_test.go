/*
 * UOSTEAM
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package interpreter

import "testing"

/*
TestCompareSameKind checks direct comparison when both sides already share a
kind - the fast path that needs no coercion at all.
*/
func TestCompareSameKind(t *testing.T) {
	ok, err := Compare(Comparable{Kind: KindInt, Int: 5}, Comparable{Kind: KindInt, Int: 5}, "==")
	if err != nil || !ok {
		t.Fatalf("expected 5 == 5, got %v, %v", ok, err)
	}

	ok, err = Compare(Comparable{Kind: KindString, Str: "a"}, Comparable{Kind: KindString, Str: "b"}, "<")
	if err != nil || !ok {
		t.Fatalf("expected \"a\" < \"b\", got %v, %v", ok, err)
	}
}

/*
TestCompareRightSideDictatesCoercion exercises the asymmetric rule: when the
kinds differ, the RIGHT side decides how the comparison proceeds.
*/
func TestCompareRightSideDictatesCoercion(t *testing.T) {
	// Right is double: left (int) promotes to double.
	ok, err := Compare(Comparable{Kind: KindInt, Int: 2}, Comparable{Kind: KindDouble, Dbl: 2.5}, "<")
	if err != nil || !ok {
		t.Fatalf("expected 2 < 2.5 after promotion, got %v, %v", ok, err)
	}

	// Right is bool: left (int) coerces to bool (non-zero is true).
	ok, err = Compare(Comparable{Kind: KindInt, Int: 1}, Comparable{Kind: KindBool, Bool: true}, "==")
	if err != nil || !ok {
		t.Fatalf("expected 1 == true, got %v, %v", ok, err)
	}

	// Right is neither double nor bool: right coerces to the left's kind (int).
	ok, err = Compare(Comparable{Kind: KindInt, Int: 42}, Comparable{Kind: KindString, Str: "42"}, "==")
	if err != nil || !ok {
		t.Fatalf("expected int 42 == string \"42\" via right-to-left coercion, got %v, %v", ok, err)
	}
}

/*
TestCompareIsNotSymmetric proves the rule genuinely depends on operand order:
swapping sides can change which type the comparison happens in, and here
changes the outcome for a string that does not parse as a number.
*/
func TestCompareIsNotSymmetric(t *testing.T) {
	// left=string("abc"), right=int(0): right dictates -> coerce right? no,
	// right is int (not double/bool) so the RIGHT coerces to the LEFT's kind
	// (string): "abc" == "0" is false.
	ok, err := Compare(Comparable{Kind: KindString, Str: "abc"}, Comparable{Kind: KindInt, Int: 0}, "==")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected \"abc\" == 0 to be false under string comparison")
	}

	// left=int(0), right=string("abc"): right is a string, neither
	// double nor bool, so RIGHT coerces to LEFT's kind (int) and fails.
	_, err = Compare(Comparable{Kind: KindInt, Int: 0}, Comparable{Kind: KindString, Str: "abc"}, "==")
	if err == nil {
		t.Error("expected an error coercing a non-numeric string to int")
	}
}

func TestApplyOpUnknownOperator(t *testing.T) {
	if _, err := applyOp("~=", 0); err == nil {
		t.Error("expected an error for an unrecognized comparison operator")
	}
}
