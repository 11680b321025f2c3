/*
 * UOSTEAM
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

/*
Package engine hosts a single running script: it owns the command and
expression handler registry, the alias/list/timer stores a script's
commands read and write, and the RUNNING/PAUSED/TIMING_OUT state machine
the driver consults every tick. It implements interpreter.Host, the
seam that keeps the interpreter ignorant of all of this.
*/
package engine

import (
	"sync"

	"github.com/google/uuid"
	"github.com/krotik/common/sortutil"

	"github.com/krotik/uosteam/ast"
	"github.com/krotik/uosteam/interpreter"
	"github.com/krotik/uosteam/util"
)

/*
Engine runs at most one script at a time - the reference client has a
single script slot too. Concurrent calls into the same Engine are safe;
the handler/alias/list/timer stores all carry their own locks and the
active-script slot is guarded separately.
*/
type Engine struct {
	reg     *registry
	aliases *aliasStore
	lists   *listStore
	timers  *timerStore
	logger  util.Logger

	lock    sync.Mutex
	script  *interpreter.Script
	state   *stateMachine
	runID   uuid.UUID
}

/*
New creates an empty Engine with no script loaded. logger may be nil, in
which case util.NewNullLogger() is used.
*/
func New(logger util.Logger) *Engine {
	if logger == nil {
		logger = util.NewNullLogger()
	}

	return &Engine{
		reg:     newRegistry(),
		aliases: newAliasStore(),
		lists:   newListStore(),
		timers:  newTimerStore(),
		logger:  logger,
	}
}

// interpreter.Host
// =================

func (e *Engine) CommandHandler(name string) (interpreter.CommandHandler, bool) {
	return e.reg.CommandHandler(name)
}

func (e *Engine) ExpressionHandler(name string) (interpreter.ExpressionHandler, bool) {
	return e.reg.ExpressionHandler(name)
}

func (e *Engine) GetAlias(name string) (uint32, bool) {
	return e.aliases.GetAlias(name)
}

func (e *Engine) ListLength(name string) (int, bool) {
	return e.lists.Length(name)
}

func (e *Engine) ListItem(name string, index int) (interface{}, bool) {
	return e.lists.Get(name, index)
}

// Handler registration
// =====================

/*
RegisterCommandHandler installs (or overwrites) the handler for a command
name.
*/
func (e *Engine) RegisterCommandHandler(name string, h interpreter.CommandHandler) {
	e.reg.RegisterCommand(name, h)
}

/*
RegisterExpressionHandler installs (or overwrites) the handler used when
name is invoked as an expression operand.
*/
func (e *Engine) RegisterExpressionHandler(name string, h interpreter.ExpressionHandler) {
	e.reg.RegisterExpression(name, h)
}

/*
RegisterDefaultCommandHandler installs a fallback command handler, tried
for any command name with no exact registration. The cli package's tester
uses this to stand in for a whole, otherwise-unimplemented command set.
*/
func (e *Engine) RegisterDefaultCommandHandler(h interpreter.CommandHandler) {
	e.reg.RegisterDefaultCommand(h)
}

/*
RegisterDefaultExpressionHandler installs a fallback expression handler,
tried for any command name with no exact registration.
*/
func (e *Engine) RegisterDefaultExpressionHandler(h interpreter.ExpressionHandler) {
	e.reg.RegisterDefaultExpression(h)
}

// Aliases
// ========

func (e *Engine) SetAlias(name string, serial uint32)            { e.aliases.SetAlias(name, serial) }
func (e *Engine) RegisterAliasHandler(name string, h AliasHandler) { e.aliases.RegisterAliasHandler(name, h) }
func (e *Engine) UnregisterAliasHandler(name string)              { e.aliases.UnregisterAliasHandler(name) }

// Lists
// ======

func (e *Engine) CreateList(name string)  { e.lists.Create(name) }
func (e *Engine) DestroyList(name string) { e.lists.Destroy(name) }
func (e *Engine) ClearList(name string)   { e.lists.Clear(name) }
func (e *Engine) ListExists(name string) bool { return e.lists.Exists(name) }
func (e *Engine) ListContains(name string, value interface{}) bool {
	return e.lists.Contains(name, value)
}
func (e *Engine) PushList(name string, value interface{}, front, unique bool) (bool, bool) {
	return e.lists.Push(name, value, front, unique)
}
func (e *Engine) PopListValue(name string, value interface{}) bool {
	return e.lists.PopValue(name, value)
}
func (e *Engine) PopListEnd(name string, front bool) (interface{}, bool) {
	return e.lists.PopEnd(name, front)
}

// Timers
// =======

func (e *Engine) CreateTimer(name string)         { e.timers.Create(name) }
func (e *Engine) RemoveTimer(name string)         { e.timers.Remove(name) }
func (e *Engine) TimerExists(name string) bool    { return e.timers.Exists(name) }
func (e *Engine) TimerValue(name string) (int64, bool) { return e.timers.Get(name) }
func (e *Engine) SetTimer(name string, ms int64) bool  { return e.timers.Set(name, ms) }

// Pause / timeout
// ================

/*
Pause blocks the active script's ticks for ms milliseconds. A no-op unless
a script is active and RUNNING.
*/
func (e *Engine) Pause(ms int64) {
	e.lock.Lock()
	defer e.lock.Unlock()

	if e.state != nil {
		e.state.Pause(ms)
	}
}

/*
Unpause immediately resumes a paused script.
*/
func (e *Engine) Unpause() {
	e.lock.Lock()
	defer e.lock.Unlock()

	if e.state != nil {
		e.state.Unpause()
	}
}

/*
Timeout blocks the active script's ticks for ms milliseconds. Once the
deadline elapses, cb fires exactly once: if it returns true the script
advances past the statement it was sitting on, if false the script stops.
A no-op unless a script is active and RUNNING.
*/
func (e *Engine) Timeout(ms int64, cb func() bool) {
	e.lock.Lock()
	defer e.lock.Unlock()

	if e.state != nil {
		e.state.Timeout(ms, cb)
	}
}

/*
ClearTimeout cancels a pending timeout without running its callback.
*/
func (e *Engine) ClearTimeout() {
	e.lock.Lock()
	defer e.lock.Unlock()

	if e.state != nil {
		e.state.ClearTimeout()
	}
}

// Driver
// =======

/*
StartScript loads a freshly lexed script as the active one. It fails with
util.ErrScriptRunning if a script is already loaded; call StopScript first
to replace it.
*/
func (e *Engine) StartScript(tree *ast.Tree, root ast.NodeID) (uuid.UUID, error) {
	e.lock.Lock()
	defer e.lock.Unlock()

	if e.script != nil {
		return uuid.UUID{}, util.NewRuntimeError(util.ErrScriptRunning, "call StopScript first", nil, ast.NilNode)
	}

	e.script = interpreter.NewScript(tree, root, e)
	e.state = newStateMachine()
	e.runID = uuid.New()

	e.logger.LogInfo("started script ", e.runID)

	return e.runID, nil
}

/*
StopScript unloads the active script, if any. It is always safe to call,
even with nothing running.
*/
func (e *Engine) StopScript() {
	e.lock.Lock()
	defer e.lock.Unlock()

	if e.script != nil {
		e.logger.LogInfo("stopped script ", e.runID)
	}

	e.script = nil
	e.state = nil
}

/*
Tick advances the active script by at most one statement. done is true if
the script ran to completion on this call (including scripts that were
already finished). A blocked script (PAUSED/TIMING_OUT) counts as neither
done nor erroring - callers should keep ticking.
*/
func (e *Engine) Tick() (done bool, err error) {
	e.lock.Lock()
	defer e.lock.Unlock()

	if e.script == nil {
		return false, util.NewRuntimeError(util.ErrNoActiveScript, "tick called with nothing running", nil, ast.NilNode)
	}

	if e.script.Stopped() {
		e.logger.LogInfo("finished script ", e.runID)
		e.script = nil
		e.state = nil
		return true, nil
	}

	blocked, due := e.state.Poll()

	if due != nil {
		if due() {
			e.script.AdvancePast()
		} else {
			e.logger.LogInfo("stopped script ", e.runID, " by timeout callback")
			e.script = nil
			e.state = nil
			return true, nil
		}
	} else if blocked {
		return false, nil
	} else if err := e.script.ExecuteNext(); err != nil {
		return false, err
	}

	if e.script.Stopped() {
		e.logger.LogInfo("finished script ", e.runID)
		e.script = nil
		e.state = nil
		return true, nil
	}

	return false, nil
}

/*
ExecuteScript is a convenience wrapper for callers (the cli's tester among
them) that just want a script run to completion: it starts tree/root and
ticks it until it finishes or maxTicks is exhausted.
*/
func (e *Engine) ExecuteScript(tree *ast.Tree, root ast.NodeID, maxTicks int) error {
	if _, err := e.StartScript(tree, root); err != nil {
		return err
	}

	for i := 0; i < maxTicks; i++ {
		done, err := e.Tick()
		if err != nil {
			e.StopScript()
			return err
		}
		if done {
			return nil
		}
	}

	e.StopScript()
	return util.NewRuntimeError(util.ErrNoActiveScript, "tick budget exhausted", nil, ast.NilNode)
}

// Diagnostics
// ============

/*
Snapshot is a point-in-time diagnostic view of the engine, used by the cli
run command's --status flag and tests. List/timer/alias names are sorted for deterministic
output.
*/
type Snapshot struct {
	RunID   string
	State   string
	Cursor  string
	Lists   []string
	Timers  []string
	Aliases []string
}

/*
Snapshot captures the engine's current state.
*/
func (e *Engine) Snapshot() Snapshot {
	e.lock.Lock()
	state := "IDLE"
	cursor := ""
	runID := ""
	if e.script != nil {
		state = e.state.State()
		runID = e.runID.String()
		if !e.script.Stopped() {
			cursor = e.script.Tree().String(e.script.Cursor())
		}
	}
	e.lock.Unlock()

	return Snapshot{
		RunID:   runID,
		State:   state,
		Cursor:  cursor,
		Lists:   sortedNames(e.lists.names()),
		Timers:  sortedNames(e.timers.names()),
		Aliases: sortedNames(e.aliases.names()),
	}
}

func sortedNames(names []string) []string {
	keys := make([]interface{}, len(names))
	for i, n := range names {
		keys[i] = n
	}

	sortutil.InterfaceStrings(keys)

	sorted := make([]string, len(keys))
	for i, k := range keys {
		sorted[i] = k.(string)
	}
	return sorted
}
