package routing

import (
	"math/rand"

	"github.com/latticelabs/cubesim/cube"
)

// DefaultBeaconPeriod is the number of cycles between beacon emissions.
const DefaultBeaconPeriod int64 = 10

// beaconData tracks the robot's cycle count since power-on.
type beaconData struct {
	step int64
}

// Beacon is the reference robot algorithm: every period cycles it emits a
// small integer payload out one random wired face. It pairs with Template,
// which will bounce the beacons around the lattice.
type Beacon struct {
	period int64
	rng    *rand.Rand
}

// BeaconOption configures a Beacon.
type BeaconOption func(b *Beacon)

// WithBeaconPeriod sets the emission period. Non-positive periods fall
// back to DefaultBeaconPeriod.
func WithBeaconPeriod(period int64) BeaconOption {
	return func(b *Beacon) { b.period = period }
}

// WithBeaconSeed replaces the default RNG seed.
func WithBeaconSeed(seed int64) BeaconOption {
	return func(b *Beacon) { b.rng = rand.New(rand.NewSource(seed)) }
}

// NewBeacon returns a beacon robot algorithm with a deterministic RNG.
func NewBeacon(opts ...BeaconOption) *Beacon {
	b := &Beacon{
		period: DefaultBeaconPeriod,
		rng:    rand.New(rand.NewSource(DefaultWalkSeed)),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.period <= 0 {
		b.period = DefaultBeaconPeriod
	}

	return b
}

// PowerOn installs the cycle counter.
func (b *Beacon) PowerOn(r *cube.Robot) {
	r.Cube().Data = &beaconData{}
}

// Step emits a beacon every period cycles through a random wired face.
func (b *Beacon) Step(r *cube.Robot) {
	data, ok := r.Cube().Data.(*beaconData)
	if !ok {
		return
	}
	if data.step%b.period == 0 {
		if dirs := ConnectedDirections(r.Cube()); len(dirs) > 0 {
			r.SendPacket(dirs[b.rng.Intn(len(dirs))], b.rng.Int63n(100))
		}
	}
	data.step++
}

// SendPacket fails: beacons are unaddressed.
func (b *Beacon) SendPacket(_ *cube.Robot, _ cube.NodeID, _ cube.Packet) error {
	return ErrNoAddressing
}
