package cube

// NodeDiagnostics carries the per-node counters surfaced to observers and
// folded into the grid's network-wide aggregate each cycle.
//
// The *_ThisCycle fields are zeroed at the start of every route phase;
// lifetime totals and HighestQLen only grow. All counters are 64-bit so
// long runs never wrap.
type NodeDiagnostics struct {
	// NumPktsSent counts successful transmissions over the cube's lifetime.
	NumPktsSent int64
	// NumPktsSentThisCycle counts successful transmissions this cycle.
	NumPktsSentThisCycle int64

	// NumPktsReceived counts packets drained from inbound faces.
	NumPktsReceived int64
	// NumPktsReceivedThisCycle counts packets drained this cycle.
	NumPktsReceivedThisCycle int64

	// NumPktsDropped counts packets lost to absent neighbors, full queues,
	// or unroutable destinations.
	NumPktsDropped int64
	// NumPktsDroppedThisCycle counts drops this cycle.
	NumPktsDroppedThisCycle int64

	// CurrentQLen is the live length of the cube's packet queue.
	CurrentQLen int64
	// HighestQLen is the historical maximum of CurrentQLen.
	HighestQLen int64

	// CorrectlyRoutedPktsThisCycle counts packets delivered to this cube as
	// their final destination this cycle.
	CorrectlyRoutedPktsThisCycle int64

	// IsRobot marks cubes owned by a Robot.
	IsRobot bool
	// HasPacket mirrors whether the queue is non-empty.
	HasPacket bool
}

// ResetCycle zeroes the per-cycle counters. Called by the grid at the start
// of each cube's route phase.
func (d *NodeDiagnostics) ResetCycle() {
	d.NumPktsSentThisCycle = 0
	d.NumPktsReceivedThisCycle = 0
	d.NumPktsDroppedThisCycle = 0
	d.CorrectlyRoutedPktsThisCycle = 0
}
