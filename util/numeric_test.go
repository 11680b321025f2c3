/*
 * UOSTEAM
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package util

import "testing"

func TestParseIntHexAndDecimal(t *testing.T) {
	v, err := ParseInt("0x1A")
	if err != nil || v != 26 {
		t.Errorf("ParseInt(0x1A) = %v, %v, want 26, nil", v, err)
	}

	v, err = ParseInt("42")
	if err != nil || v != 42 {
		t.Errorf("ParseInt(42) = %v, %v, want 42, nil", v, err)
	}

	if _, err := ParseInt("not-a-number"); err == nil {
		t.Error("expected an error parsing a non-numeric lexeme")
	}
}

func TestParseUintAndUshort(t *testing.T) {
	v, err := ParseUint("0xFF")
	if err != nil || v != 255 {
		t.Errorf("ParseUint(0xFF) = %v, %v, want 255, nil", v, err)
	}

	u, err := ParseUshort("70000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u != uint16(4464) { // 70000 - 65536
		t.Errorf("expected ParseUshort to truncate to uint16, got %v", u)
	}
}

func TestParseDoubleIsLocaleInvariant(t *testing.T) {
	v, err := ParseDouble("3.14")
	if err != nil || v != 3.14 {
		t.Errorf("ParseDouble(3.14) = %v, %v, want 3.14, nil", v, err)
	}

	if _, err := ParseDouble("3,14"); err == nil {
		t.Error("expected comma-separated decimals to be rejected")
	}
}

func TestParseBoolCaseInsensitive(t *testing.T) {
	for _, lexeme := range []string{"true", "TRUE", "True"} {
		if v, err := ParseBool(lexeme); err != nil || !v {
			t.Errorf("ParseBool(%q) = %v, %v, want true, nil", lexeme, v, err)
		}
	}
	for _, lexeme := range []string{"false", "FALSE"} {
		if v, err := ParseBool(lexeme); err != nil || v {
			t.Errorf("ParseBool(%q) = %v, %v, want false, nil", lexeme, v, err)
		}
	}
	if _, err := ParseBool("yes"); err == nil {
		t.Error("expected an error parsing a non-bool lexeme")
	}
}
