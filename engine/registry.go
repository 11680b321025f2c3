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
	"sync"

	"github.com/krotik/uosteam/interpreter"
)

/*
registry holds the command and expression handlers the host has registered.
Re-registering a name silently overwrites the previous handler; neither
kind can be unregistered (only alias handlers can, see aliasStore). An
optional default handler of each kind, set via RegisterDefaultCommand /
RegisterDefaultExpression, is tried whenever no handler was registered for
the exact command name - this is what lets a generic tester stand in for
an entire, unknown command vocabulary.
*/
type registry struct {
	lock        sync.RWMutex
	commands    map[string]interpreter.CommandHandler
	expressions map[string]interpreter.ExpressionHandler
	defaultCmd  interpreter.CommandHandler
	defaultExpr interpreter.ExpressionHandler
}

func newRegistry() *registry {
	return &registry{
		commands:    make(map[string]interpreter.CommandHandler),
		expressions: make(map[string]interpreter.ExpressionHandler),
	}
}

func (r *registry) RegisterCommand(name string, h interpreter.CommandHandler) {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.commands[name] = h
}

func (r *registry) RegisterExpression(name string, h interpreter.ExpressionHandler) {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.expressions[name] = h
}

func (r *registry) RegisterDefaultCommand(h interpreter.CommandHandler) {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.defaultCmd = h
}

func (r *registry) RegisterDefaultExpression(h interpreter.ExpressionHandler) {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.defaultExpr = h
}

func (r *registry) CommandHandler(name string) (interpreter.CommandHandler, bool) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	if h, ok := r.commands[name]; ok {
		return h, true
	}
	if r.defaultCmd != nil {
		return r.defaultCmd, true
	}
	return nil, false
}

func (r *registry) ExpressionHandler(name string) (interpreter.ExpressionHandler, bool) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	if h, ok := r.expressions[name]; ok {
		return h, true
	}
	if r.defaultExpr != nil {
		return r.defaultExpr, true
	}
	return nil, false
}
