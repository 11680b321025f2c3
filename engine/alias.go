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

import "sync"

/*
AliasHandler resolves a name to a serial number dynamically - e.g. backed
by a live game-world lookup the host maintains. It is consulted before the
static map, so a registered handler shadows any static alias of the same
name.
*/
type AliasHandler func(name string) (uint32, bool)

/*
aliasStore holds the static name->serial map plus any registered dynamic
handlers. Reference UO Steam represents "no alias" with a MAX_U32 sentinel
value; GetAlias instead reports absence with its bool return, which is the
idiomatic Go equivalent and avoids a magic constant leaking into callers.
*/
type aliasStore struct {
	lock     sync.RWMutex
	static   map[string]uint32
	handlers map[string]AliasHandler
}

func newAliasStore() *aliasStore {
	return &aliasStore{
		static:   make(map[string]uint32),
		handlers: make(map[string]AliasHandler),
	}
}

/*
SetAlias sets (or overwrites) a static alias.
*/
func (as *aliasStore) SetAlias(name string, serial uint32) {
	as.lock.Lock()
	defer as.lock.Unlock()

	as.static[name] = serial
}

/*
GetAlias resolves name: the registered dynamic handler first, falling back
to the static map.
*/
func (as *aliasStore) GetAlias(name string) (uint32, bool) {
	as.lock.RLock()
	defer as.lock.RUnlock()

	if h, ok := as.handlers[name]; ok {
		if v, ok := h(name); ok {
			return v, true
		}
	}

	if v, ok := as.static[name]; ok {
		return v, true
	}

	return 0, false
}

/*
RegisterAliasHandler installs a dynamic alias handler under name, replacing
any previously registered handler with the same name.
*/
func (as *aliasStore) RegisterAliasHandler(name string, h AliasHandler) {
	as.lock.Lock()
	defer as.lock.Unlock()

	as.handlers[name] = h
}

/*
UnregisterAliasHandler removes a dynamic alias handler. Unlike command and
expression handlers, alias handlers can be unregistered - the one asymmetry
the reference implementation has between the three handler kinds.
*/
func (as *aliasStore) UnregisterAliasHandler(name string) {
	as.lock.Lock()
	defer as.lock.Unlock()

	delete(as.handlers, name)
}

/*
names returns the static alias names, used by Snapshot.
*/
func (as *aliasStore) names() []string {
	as.lock.RLock()
	defer as.lock.RUnlock()

	names := make([]string, 0, len(as.static))
	for n := range as.static {
		names = append(names, n)
	}
	return names
}
