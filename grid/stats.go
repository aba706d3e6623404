package grid

import (
	"fmt"
	"strings"

	"github.com/latticelabs/cubesim/cube"
)

// NetworkDiagnostics aggregates per-node counters across the whole grid.
// The This-Cycle fields and the per-node maxima are recomputed every
// cycle; lifetime totals accumulate; MaxHighestQLen is a running
// historical maximum that survives cycle resets.
type NetworkDiagnostics struct {
	TotalPktsSent          int64
	TotalPktsSentThisCycle int64

	TotalPktsReceived          int64
	TotalPktsReceivedThisCycle int64

	TotalPktsDropped          int64
	TotalPktsDroppedThisCycle int64

	// TotalPktsQueued is the number of packets sitting in queues right now.
	TotalPktsQueued int64

	// CorrectlyRoutedPkts counts packets that reached their destination.
	CorrectlyRoutedPkts int64

	MaxTotalPktsSent     int64
	MaxPktsSentThisCycle int64

	MaxTotalPktsReceived     int64
	MaxPktsReceivedThisCycle int64

	MaxTotalPktsDropped     int64
	MaxPktsDroppedThisCycle int64

	MaxCurrentQLen int64
	MaxHighestQLen int64
}

// ResetCycle zeroes the cycle-dependent aggregates ahead of a rollup.
// MaxHighestQLen is deliberately spared.
func (d *NetworkDiagnostics) ResetCycle() {
	d.TotalPktsSentThisCycle = 0
	d.TotalPktsReceivedThisCycle = 0
	d.TotalPktsDroppedThisCycle = 0
	d.TotalPktsQueued = 0

	d.MaxTotalPktsSent = 0
	d.MaxPktsSentThisCycle = 0
	d.MaxTotalPktsReceived = 0
	d.MaxPktsReceivedThisCycle = 0
	d.MaxTotalPktsDropped = 0
	d.MaxPktsDroppedThisCycle = 0
	d.MaxCurrentQLen = 0
}

// Integrate folds one node's counters into the aggregate. Lifetime totals
// advance by the node's per-cycle deltas, so a node integrated once per
// cycle is never double counted.
func (d *NetworkDiagnostics) Integrate(n *cube.NodeDiagnostics) {
	d.TotalPktsSent += n.NumPktsSentThisCycle
	d.TotalPktsSentThisCycle += n.NumPktsSentThisCycle
	d.TotalPktsReceived += n.NumPktsReceivedThisCycle
	d.TotalPktsReceivedThisCycle += n.NumPktsReceivedThisCycle
	d.TotalPktsDropped += n.NumPktsDroppedThisCycle
	d.TotalPktsDroppedThisCycle += n.NumPktsDroppedThisCycle
	d.TotalPktsQueued += n.CurrentQLen
	d.CorrectlyRoutedPkts += n.CorrectlyRoutedPktsThisCycle

	if d.MaxTotalPktsSent < n.NumPktsSent {
		d.MaxTotalPktsSent = n.NumPktsSent
	}
	if d.MaxPktsSentThisCycle < n.NumPktsSentThisCycle {
		d.MaxPktsSentThisCycle = n.NumPktsSentThisCycle
	}
	if d.MaxTotalPktsReceived < n.NumPktsReceived {
		d.MaxTotalPktsReceived = n.NumPktsReceived
	}
	if d.MaxPktsReceivedThisCycle < n.NumPktsReceivedThisCycle {
		d.MaxPktsReceivedThisCycle = n.NumPktsReceivedThisCycle
	}
	if d.MaxTotalPktsDropped < n.NumPktsDropped {
		d.MaxTotalPktsDropped = n.NumPktsDropped
	}
	if d.MaxPktsDroppedThisCycle < n.NumPktsDroppedThisCycle {
		d.MaxPktsDroppedThisCycle = n.NumPktsDroppedThisCycle
	}
	if d.MaxCurrentQLen < n.CurrentQLen {
		d.MaxCurrentQLen = n.CurrentQLen
	}
	if d.MaxHighestQLen < n.HighestQLen {
		d.MaxHighestQLen = n.HighestQLen
	}
}

// String renders the aggregate as the two-section report printed by the
// driver after a run.
func (d NetworkDiagnostics) String() string {
	var sb strings.Builder
	rule := strings.Repeat("-", 60)

	sb.WriteString("Network-Wide Statistics\n")
	sb.WriteString(rule + "\n")
	fmt.Fprintf(&sb, "Total Pkts Sent: %d\n", d.TotalPktsSent)
	fmt.Fprintf(&sb, "Pkts Sent This Cycle: %d\n", d.TotalPktsSentThisCycle)
	fmt.Fprintf(&sb, "Total Pkts Received: %d\n", d.TotalPktsReceived)
	fmt.Fprintf(&sb, "Pkts Received This Cycle: %d\n", d.TotalPktsReceivedThisCycle)
	fmt.Fprintf(&sb, "Total Pkts Dropped: %d\n", d.TotalPktsDropped)
	fmt.Fprintf(&sb, "Pkts Dropped This Cycle: %d\n", d.TotalPktsDroppedThisCycle)
	fmt.Fprintf(&sb, "Packets Correctly Routed: %d\n", d.CorrectlyRoutedPkts)
	fmt.Fprintf(&sb, "Total Pkts in Queue: %d\n", d.TotalPktsQueued)
	sb.WriteString(rule + "\n")
	sb.WriteString("Per-Node Statistics\n")
	sb.WriteString(rule + "\n")
	fmt.Fprintf(&sb, "Max. Pkts Sent: %d\n", d.MaxTotalPktsSent)
	fmt.Fprintf(&sb, "Max. Pkts Sent This Cycle: %d\n", d.MaxPktsSentThisCycle)
	fmt.Fprintf(&sb, "Max. Pkts Received: %d\n", d.MaxTotalPktsReceived)
	fmt.Fprintf(&sb, "Max. Pkts Received This Cycle: %d\n", d.MaxPktsReceivedThisCycle)
	fmt.Fprintf(&sb, "Max. Pkts Dropped: %d\n", d.MaxTotalPktsDropped)
	fmt.Fprintf(&sb, "Max. Pkts Dropped This Cycle: %d\n", d.MaxPktsDroppedThisCycle)
	fmt.Fprintf(&sb, "Max. Current Queue Length: %d\n", d.MaxCurrentQLen)
	fmt.Fprintf(&sb, "Highest Recorded Queue Length: %d", d.MaxHighestQLen)

	return sb.String()
}
