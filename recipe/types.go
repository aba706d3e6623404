// Package recipe command model and sentinel errors.
package recipe

import (
	"errors"

	"github.com/latticelabs/cubesim/cube"
)

// Sentinel errors for recipe parsing and execution.
var (
	// ErrUnknownCommand indicates a line whose first token is not a command.
	ErrUnknownCommand = errors.New("recipe: unknown command")

	// ErrArgCount indicates a command with a wrong number of arguments.
	ErrArgCount = errors.New("recipe: wrong argument count")

	// ErrBadArgument indicates an argument of the wrong kind, e.g. a string
	// where a coordinate is required.
	ErrBadArgument = errors.New("recipe: bad argument")

	// ErrNestedLoop indicates a LOOP inside an open LOOP body.
	ErrNestedLoop = errors.New("recipe: nested loops not allowed")

	// ErrNoLoopOpen indicates an ENDL with no LOOP to close.
	ErrNoLoopOpen = errors.New("recipe: ENDL without an open loop")
)

// Command enumerates the recipe instruction set.
type Command int

const (
	CmdAddNode Command = iota
	CmdAddRobot
	CmdRemoveNode
	CmdSend
	CmdWait
	CmdLoop
	CmdEndLoop
	CmdPause
)

// commandNames maps commands to their recipe spellings.
var commandNames = map[Command]string{
	CmdAddNode:    "ADDN",
	CmdAddRobot:   "ADDR",
	CmdRemoveNode: "RMVN",
	CmdSend:       "SEND",
	CmdWait:       "WAIT",
	CmdLoop:       "LOOP",
	CmdEndLoop:    "ENDL",
	CmdPause:      "PAUSE",
}

// commandsByName is the parse-side inverse of commandNames.
var commandsByName = func() map[string]Command {
	m := make(map[string]Command, len(commandNames))
	for c, name := range commandNames {
		m[name] = c
	}

	return m
}()

// argCounts lists the valid argument counts per command.
var argCounts = map[Command][]int{
	CmdAddNode:    {3, 4},
	CmdAddRobot:   {3, 4},
	CmdRemoveNode: {1, 3},
	CmdSend:       {3, 7},
	CmdWait:       {1},
	CmdLoop:       {1},
	CmdEndLoop:    {0},
	CmdPause:      {0},
}

// String returns the command's recipe spelling.
func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}

	return "UNKNOWN"
}

// validArgCount reports whether n is a legal argument count for c.
func (c Command) validArgCount(n int) bool {
	for _, want := range argCounts[c] {
		if n == want {
			return true
		}
	}

	return false
}

// Value is one parsed recipe token: an integer or a string.
type Value struct {
	Num     int64
	Str     string
	Numeric bool
}

// IntValue builds a numeric Value.
func IntValue(n int64) Value { return Value{Num: n, Numeric: true} }

// StringValue builds a string Value.
func StringValue(s string) Value { return Value{Str: s} }

// NodeID converts the token to the node id it spells.
func (v Value) NodeID() cube.NodeID {
	if v.Numeric {
		return cube.IntID(v.Num)
	}

	return cube.StringID(v.Str)
}

// Packet converts the token to a payload: int64 for numeric tokens,
// string otherwise.
func (v Value) Packet() cube.Packet {
	if v.Numeric {
		return v.Num
	}

	return v.Str
}

// Step is one parsed instruction with its source line for error reports.
type Step struct {
	Cmd  Command
	Args []Value
	Line int
}
