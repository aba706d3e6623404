package routing

import (
	"fmt"
	"sort"
)

// Pair couples a routing-algorithm constructor with its robot counterpart.
// Grids instantiate one of each; constructors keep registered algorithms
// free of shared state between grids.
type Pair struct {
	NewRouting func() Algorithm
	NewRobot   func() RobotAlgorithm
}

var registry = map[string]Pair{}

// Register makes an algorithm pair available under name. It panics on a
// duplicate name, mirroring database/sql driver registration: collisions
// are programming errors, not runtime conditions.
func Register(name string, p Pair) {
	if _, dup := registry[name]; dup {
		panic(fmt.Sprintf("routing: Register called twice for %q", name))
	}
	if p.NewRouting == nil || p.NewRobot == nil {
		panic(fmt.Sprintf("routing: Register %q with nil constructor", name))
	}
	registry[name] = p
}

// Lookup returns the pair registered under name.
func Lookup(name string) (Pair, bool) {
	p, ok := registry[name]

	return p, ok
}

// Names returns the registered algorithm names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

func init() {
	Register(TemplateName, Pair{
		NewRouting: func() Algorithm { return NewTemplate() },
		NewRobot:   func() RobotAlgorithm { return NewBeacon() },
	})
	Register(RandomWalkName, Pair{
		NewRouting: func() Algorithm { return NewRandomWalk() },
		NewRobot:   func() RobotAlgorithm { return NewRandomWalkRobot() },
	})
}
