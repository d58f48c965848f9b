package main

import (
	"fmt"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/bbxsynth/chipvoice/pkg/param"
)

// RunScript executes a Lua file against runner, exposing a small
// fixed API: note/release/trigger for key events, param for parameter
// edits, and sleep_ms for pacing a sequence in wall-clock
// milliseconds. gopher-lua has no in-pack usage example to ground
// against; this follows the library's own published
// LState/SetGlobal/NewFunction/CheckInt/OptNumber API directly.
func RunScript(path string, runner *Runner) error {
	L := lua.NewState()
	defer L.Close()

	L.SetGlobal("note", L.NewFunction(func(L *lua.LState) int {
		key := int16(L.CheckInt(1))
		velocity := L.OptNumber(2, lua.LNumber(0.9))
		runner.NoteOn(key, float64(velocity))
		return 0
	}))
	L.SetGlobal("release", L.NewFunction(func(L *lua.LState) int {
		key := int16(L.CheckInt(1))
		runner.NoteOff(key)
		return 0
	}))
	L.SetGlobal("trigger", L.NewFunction(func(L *lua.LState) int {
		key := int16(L.CheckInt(1))
		velocity := L.OptNumber(2, lua.LNumber(0.9))
		ticks := L.OptInt64(3, noteTriggerTicks)
		runner.Trigger(key, float64(velocity), ticks)
		return 0
	}))
	L.SetGlobal("param", L.NewFunction(func(L *lua.LState) int {
		stringID := L.CheckString(1)
		value := float64(L.CheckNumber(2))
		globalID, _, ok := runner.Params.InfoByStringID(param.NewStringID(stringID))
		if !ok {
			L.RaiseError("unknown parameter %q", stringID)
			return 0
		}
		runner.QueueParam(globalID, value)
		return 0
	}))
	L.SetGlobal("sleep_ms", L.NewFunction(func(L *lua.LState) int {
		ms := L.CheckInt64(1)
		time.Sleep(time.Duration(ms) * time.Millisecond)
		return 0
	}))

	if err := L.DoFile(path); err != nil {
		return fmt.Errorf("running script %s: %w", path, err)
	}
	return nil
}
