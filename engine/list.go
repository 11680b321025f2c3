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
	"fmt"
	"sync"

	"github.com/krotik/common/stringutil"
)

/*
listStore holds the named value lists scripts create with createlist and
manipulate with pushlist/poplist/removelist and friends. Elements are kept
as interface{} but membership/uniqueness checks compare their fmt.Sprint
representation, matching how the reference implementation treats list
contents as display strings.
*/
type listStore struct {
	lock  sync.RWMutex
	lists map[string][]interface{}
}

func newListStore() *listStore {
	return &listStore{lists: make(map[string][]interface{})}
}

/*
Create makes an empty list named name, replacing any existing list with
that name.
*/
func (ls *listStore) Create(name string) {
	ls.lock.Lock()
	defer ls.lock.Unlock()

	ls.lists[name] = nil
}

/*
Destroy removes a list entirely.
*/
func (ls *listStore) Destroy(name string) {
	ls.lock.Lock()
	defer ls.lock.Unlock()

	delete(ls.lists, name)
}

/*
Clear empties a list but keeps it registered. A no-op if name does not
exist.
*/
func (ls *listStore) Clear(name string) {
	ls.lock.Lock()
	defer ls.lock.Unlock()

	if _, ok := ls.lists[name]; ok {
		ls.lists[name] = nil
	}
}

/*
Exists reports whether a list named name has been created.
*/
func (ls *listStore) Exists(name string) bool {
	ls.lock.RLock()
	defer ls.lock.RUnlock()

	_, ok := ls.lists[name]
	return ok
}

/*
Length returns the list's element count. ok is false if the list does not
exist.
*/
func (ls *listStore) Length(name string) (int, bool) {
	ls.lock.RLock()
	defer ls.lock.RUnlock()

	l, ok := ls.lists[name]
	if !ok {
		return 0, false
	}
	return len(l), true
}

/*
Get returns the element at index. ok is false if the list or index is
invalid.
*/
func (ls *listStore) Get(name string, index int) (interface{}, bool) {
	ls.lock.RLock()
	defer ls.lock.RUnlock()

	l, ok := ls.lists[name]
	if !ok || index < 0 || index >= len(l) {
		return nil, false
	}
	return l[index], true
}

/*
Contains reports whether value (compared by its string representation) is
already present in the list.
*/
func (ls *listStore) Contains(name string, value interface{}) bool {
	ls.lock.RLock()
	defer ls.lock.RUnlock()

	return ls.indexOf(name, value) != -1
}

/*
indexOf must be called with the lock held.
*/
func (ls *listStore) indexOf(name string, value interface{}) int {
	l, ok := ls.lists[name]
	if !ok {
		return -1
	}

	strs := make([]string, len(l))
	for i, v := range l {
		strs[i] = fmt.Sprint(v)
	}

	return stringutil.IndexOf(fmt.Sprint(value), strs)
}

/*
Push appends value to the list, at the front if front is true, otherwise at
the back. If unique is true and value (by its string representation) is
already present, Push is a no-op and returns false. ok is false if the list
does not exist.
*/
func (ls *listStore) Push(name string, value interface{}, front, unique bool) (pushed, ok bool) {
	ls.lock.Lock()
	defer ls.lock.Unlock()

	l, exists := ls.lists[name]
	if !exists {
		return false, false
	}

	if unique && ls.indexOf(name, value) != -1 {
		return false, true
	}

	if front {
		l = append([]interface{}{value}, l...)
	} else {
		l = append(l, value)
	}
	ls.lists[name] = l

	return true, true
}

/*
PopValue removes the first occurrence of value (by string representation)
from the list. found is false if the list does not exist or did not
contain value.
*/
func (ls *listStore) PopValue(name string, value interface{}) (found bool) {
	ls.lock.Lock()
	defer ls.lock.Unlock()

	idx := ls.indexOf(name, value)
	if idx == -1 {
		return false
	}

	l := ls.lists[name]
	ls.lists[name] = append(l[:idx], l[idx+1:]...)
	return true
}

/*
PopEnd removes and returns the last element of the list, or the first if
front is true. ok is false if the list does not exist or is empty.
*/
func (ls *listStore) PopEnd(name string, front bool) (value interface{}, ok bool) {
	ls.lock.Lock()
	defer ls.lock.Unlock()

	l, exists := ls.lists[name]
	if !exists || len(l) == 0 {
		return nil, false
	}

	if front {
		value = l[0]
		ls.lists[name] = l[1:]
	} else {
		value = l[len(l)-1]
		ls.lists[name] = l[:len(l)-1]
	}

	return value, true
}

/*
names returns the registered list names, used by Snapshot.
*/
func (ls *listStore) names() []string {
	ls.lock.RLock()
	defer ls.lock.RUnlock()

	names := make([]string, 0, len(ls.lists))
	for n := range ls.lists {
		names = append(names, n)
	}
	return names
}
