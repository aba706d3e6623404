package routing

import (
	"testing"

	"github.com/latticelabs/cubesim/cube"
)

// wire links a and b along d the way a grid would.
func wire(a, b *cube.RoutingCube, d cube.Direction) {
	a.ConnectFace(d, b.InboundFace(d.Opposite()))
	b.ConnectFace(d.Opposite(), a.InboundFace(d))
}

// line builds n cubes along the x axis, wired, with integer ids 0..n-1.
func line(n int) []*cube.RoutingCube {
	cubes := make([]*cube.RoutingCube, n)
	for i := range cubes {
		cubes[i] = cube.NewRoutingCube(cube.Position{X: i})
		cubes[i].SetID(cube.IntID(int64(i)))
		if i > 0 {
			wire(cubes[i-1], cubes[i], cube.East)
		}
	}

	return cubes
}

// TestHelpers checks the sender-address and transmit-direction helpers
// against the axis layout.
func TestHelpers(t *testing.T) {
	p := cube.Position{X: 2, Y: 3, Z: 4}
	if got := NeighborAddr(p, cube.Down); got != (cube.Position{X: 2, Y: 3, Z: 3}) {
		t.Errorf("NeighborAddr(%v, DOWN) = %v", p, got)
	}
	dir, ok := TxDir(p, cube.Position{X: 2, Y: 4, Z: 4})
	if !ok || dir != cube.North {
		t.Errorf("TxDir = %v,%v; want NORTH,true", dir, ok)
	}
	if _, ok = TxDir(p, cube.Position{X: 5, Y: 3, Z: 4}); ok {
		t.Error("TxDir resolved a non-adjacent position")
	}
}

// TestConnectedDirections verifies the wired-face listing on a middle and
// an end cube of a 3-line.
func TestConnectedDirections(t *testing.T) {
	cubes := line(3)
	if dirs := ConnectedDirections(cubes[1]); len(dirs) != 2 {
		t.Errorf("middle cube wired dirs = %v; want WEST and EAST", dirs)
	}
	dirs := ConnectedDirections(cubes[0])
	if len(dirs) != 1 || dirs[0] != cube.East {
		t.Errorf("end cube wired dirs = %v; want [EAST]", dirs)
	}
}

// TestTemplatePassThrough: a packet arriving on the EAST face leaves WEST.
func TestTemplatePassThrough(t *testing.T) {
	cubes := line(3)
	tmpl := NewTemplate()

	// Inject at the east end, headed west.
	cubes[2].SendPacket(cube.West, "hello")
	cubes[1].Flush()
	tmpl.Route(cubes[1])
	cubes[0].Flush()

	pkt, from, ok := cubes[0].GetPacket()
	if !ok || pkt.(string) != "hello" || from != cube.East {
		t.Fatalf("got %v from %v (ok=%v); want hello from EAST", pkt, from, ok)
	}
}

// TestTemplateReflectsAtBoundary: when the opposite face is unwired the
// packet bounces back along its arrival face.
func TestTemplateReflectsAtBoundary(t *testing.T) {
	cubes := line(2)
	tmpl := NewTemplate()

	cubes[1].SendPacket(cube.West, "echo")
	cubes[0].Flush()
	tmpl.Route(cubes[0]) // WEST unwired -> reflect EAST
	cubes[1].Flush()

	pkt, from, ok := cubes[1].GetPacket()
	if !ok || pkt.(string) != "echo" || from != cube.West {
		t.Fatalf("got %v from %v (ok=%v); want echo back from WEST", pkt, from, ok)
	}
}

// TestTemplateNoAddressing pins the SendPacket contract.
func TestTemplateNoAddressing(t *testing.T) {
	c := cube.NewRoutingCube(cube.Position{})
	if err := NewTemplate().SendPacket(c, cube.IntID(1), "x"); err != ErrNoAddressing {
		t.Errorf("SendPacket error = %v; want ErrNoAddressing", err)
	}
}

// TestRandomWalkDelivers runs the walk on a 2-line until the packet lands.
// With a single wired face per cube the walk is forced, so delivery is
// bounded and deterministic.
func TestRandomWalkDelivers(t *testing.T) {
	cubes := line(2)
	rw := NewRandomWalk()
	for _, c := range cubes {
		rw.PowerOn(c)
	}
	if err := rw.SendPacket(cubes[0], cube.IntID(1), "payload"); err != nil {
		t.Fatalf("SendPacket: %v", err)
	}

	for i := 0; i < 4; i++ {
		for _, c := range cubes {
			rw.Route(c)
		}
		for _, c := range cubes {
			c.Flush()
		}
		if cubes[1].Stats.CorrectlyRoutedPktsThisCycle > 0 {
			return
		}
	}
	t.Fatal("walk packet never delivered on a 2-line")
}

// TestRandomWalkDeterminism: two walks with the same seed make identical
// forwarding choices on identical lattices.
func TestRandomWalkDeterminism(t *testing.T) {
	run := func() []int64 {
		cubes := line(5)
		rw := NewRandomWalk(WithWalkSeed(42))
		for _, c := range cubes {
			rw.PowerOn(c)
		}
		rw.SendPacket(cubes[2], cube.IntID(4), "p")

		var sent []int64
		for i := 0; i < 20; i++ {
			for _, c := range cubes {
				rw.Route(c)
			}
			for _, c := range cubes {
				c.Flush()
			}
			var total int64
			for _, c := range cubes {
				total += c.Stats.NumPktsSent
			}
			sent = append(sent, total)
		}

		return sent
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("cycle %d diverged: %d vs %d", i, a[i], b[i])
		}
	}
}

// TestRandomWalkNotPowered: staging on a cube without walk data fails.
func TestRandomWalkNotPowered(t *testing.T) {
	c := cube.NewRoutingCube(cube.Position{})
	if err := NewRandomWalk().SendPacket(c, cube.IntID(0), "x"); err != ErrNotPowered {
		t.Errorf("SendPacket error = %v; want ErrNotPowered", err)
	}
}

// TestBeaconPeriod: a period-1 beacon on a wired robot emits every step.
func TestBeaconPeriod(t *testing.T) {
	cubes := line(2)
	r := cube.NewRobot(cubes[0])
	b := NewBeacon(WithBeaconPeriod(1))
	b.PowerOn(r)

	for i := 0; i < 3; i++ {
		b.Step(r)
	}
	if got := cubes[0].Stats.NumPktsSent; got != 3 {
		t.Errorf("beacon sent %d packets over 3 steps at period 1; want 3", got)
	}
}

// TestRegistryNames checks that the built-in algorithms self-register.
func TestRegistryNames(t *testing.T) {
	for _, name := range []string{TemplateName, RandomWalkName} {
		p, ok := Lookup(name)
		if !ok {
			t.Fatalf("Lookup(%q) missing", name)
		}
		if p.NewRouting() == nil || p.NewRobot() == nil {
			t.Fatalf("registry pair for %q constructs nil", name)
		}
	}
	if _, ok := Lookup("no-such-algorithm"); ok {
		t.Error("Lookup of unregistered name succeeded")
	}
}
