/*
 * UOSTEAM
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package config

import (
	"testing"
)

func TestConfig(t *testing.T) {

	if res := Str(TickBudget); res != "10000" {
		t.Error("Unexpected result:", res)
		return
	}

	if res := Int(TickBudget); res != 10000 {
		t.Error("Unexpected result:", res)
		return
	}

	if res := Int(DefaultTimeoutMS); res != 5000 {
		t.Error("Unexpected result:", res)
		return
	}
}
