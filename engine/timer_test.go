/*
 * UOSTEAM
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimerStoreCreateGet(t *testing.T) {
	ts := newTimerStore()

	assert.False(t, ts.Exists("T"))
	ts.Create("T")
	assert.True(t, ts.Exists("T"))

	time.Sleep(5 * time.Millisecond)

	ms, ok := ts.Get("T")
	assert.True(t, ok)
	assert.GreaterOrEqual(t, ms, int64(0))
}

func TestTimerStoreSetRebases(t *testing.T) {
	ts := newTimerStore()
	ts.Create("T")

	ok := ts.Set("T", 60000)
	assert.True(t, ok)

	ms, _ := ts.Get("T")
	assert.GreaterOrEqual(t, ms, int64(60000))
}

func TestTimerStoreRemove(t *testing.T) {
	ts := newTimerStore()
	ts.Create("T")
	ts.Remove("T")

	assert.False(t, ts.Exists("T"))
	_, ok := ts.Get("T")
	assert.False(t, ok)
}

func TestTimerStoreSetMissingCreatesIt(t *testing.T) {
	ts := newTimerStore()

	assert.True(t, ts.Set("Nope", 100))
	assert.True(t, ts.Exists("Nope"))

	ms, ok := ts.Get("Nope")
	assert.True(t, ok)
	assert.GreaterOrEqual(t, ms, int64(100))
}
