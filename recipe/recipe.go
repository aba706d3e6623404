package recipe

import (
	"fmt"

	"github.com/latticelabs/cubesim/cube"
	"github.com/latticelabs/cubesim/grid"
)

// Recipe executes a parsed instruction list against a grid, one command
// per ExecuteNext call. The zero interpreter state points at the first
// instruction, unpaused.
type Recipe struct {
	steps []Step

	idx            int
	waitRemaining  int64
	loopRemaining  int64
	loopIdx        int
	inLoop         bool
	paused         bool
}

// New builds a recipe over the given steps.
func New(steps []Step) *Recipe {
	return &Recipe{steps: steps}
}

// Len returns the number of instructions.
func (r *Recipe) Len() int {
	return len(r.steps)
}

// IsRunning reports whether the recipe can make progress: it has
// instructions left and is not paused.
func (r *Recipe) IsRunning() bool {
	return r.idx < len(r.steps) && !r.paused
}

// Paused reports whether a PAUSE is holding the recipe.
func (r *Recipe) Paused() bool {
	return r.paused
}

// Resume releases exactly one pause. A later PAUSE instruction suspends
// the recipe again.
func (r *Recipe) Resume() {
	r.paused = false
}

// ExecuteNext runs the instruction under the cursor, or does nothing when
// the recipe is paused, waiting, or finished. Structural failures (bad
// coordinates, loop misuse, missing SEND source) abort with an error
// naming the offending line; the grid remains consistent.
func (r *Recipe) ExecuteNext(g *grid.Grid) error {
	if r.paused || r.idx >= len(r.steps) {
		return nil
	}
	if r.waitRemaining > 0 {
		r.waitRemaining--

		return nil
	}

	step := r.steps[r.idx]
	if err := r.execute(g, step); err != nil {
		return fmt.Errorf("recipe: %s (line %d): %w", step.Cmd, step.Line, err)
	}
	r.idx++

	return nil
}

func (r *Recipe) execute(g *grid.Grid, step Step) error {
	switch step.Cmd {
	case CmdAddNode:
		return r.addNode(g, step.Args, false)
	case CmdAddRobot:
		return r.addNode(g, step.Args, true)
	case CmdRemoveNode:
		return r.removeNode(g, step.Args)
	case CmdSend:
		return r.send(g, step.Args)
	case CmdWait:
		if !step.Args[0].Numeric {
			return fmt.Errorf("%w: WAIT takes a cycle count", ErrBadArgument)
		}
		r.waitRemaining = step.Args[0].Num

		return nil
	case CmdLoop:
		if !step.Args[0].Numeric {
			return fmt.Errorf("%w: LOOP takes an iteration count", ErrBadArgument)
		}
		if r.inLoop {
			return ErrNestedLoop
		}
		r.loopIdx = r.idx
		r.loopRemaining = step.Args[0].Num
		r.inLoop = true

		return nil
	case CmdEndLoop:
		if !r.inLoop {
			return ErrNoLoopOpen
		}
		if r.loopRemaining == 0 {
			r.inLoop = false

			return nil
		}
		r.loopRemaining--
		r.idx = r.loopIdx

		return nil
	case CmdPause:
		r.paused = true

		return nil
	default:
		return fmt.Errorf("%w: %d", ErrUnknownCommand, step.Cmd)
	}
}

// coords converts three consecutive numeric arguments to a position.
func coords(args []Value) (cube.Position, error) {
	for _, a := range args[:3] {
		if !a.Numeric {
			return cube.Position{}, fmt.Errorf("%w: coordinate %q is not an integer", ErrBadArgument, a.Str)
		}
	}

	return cube.Position{X: int(args[0].Num), Y: int(args[1].Num), Z: int(args[2].Num)}, nil
}

func (r *Recipe) addNode(g *grid.Grid, args []Value, robot bool) error {
	pos, err := coords(args)
	if err != nil {
		return err
	}
	var opts []grid.NodeOption
	if len(args) == 4 {
		opts = append(opts, grid.WithID(args[3].NodeID()))
	}

	if robot {
		_, err = g.AddRobot(pos.X, pos.Y, pos.Z, opts...)
	} else {
		_, err = g.AddNode(pos.X, pos.Y, pos.Z, opts...)
	}

	return err
}

func (r *Recipe) removeNode(g *grid.Grid, args []Value) error {
	if len(args) == 1 {
		return g.RemoveNodeByID(args[0].NodeID())
	}
	pos, err := coords(args)
	if err != nil {
		return err
	}

	return g.RemoveNode(pos.X, pos.Y, pos.Z)
}

func (r *Recipe) send(g *grid.Grid, args []Value) error {
	payload := args[0].Packet()
	if len(args) == 3 {
		return g.SendPacket(payload, args[1].NodeID(), args[2].NodeID())
	}

	src, err := coords(args[1:4])
	if err != nil {
		return err
	}
	dest, err := coords(args[4:7])
	if err != nil {
		return err
	}

	return g.SendPacketCoords(payload, src, dest)
}
