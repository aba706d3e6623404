// Package metrics projects a grid's network diagnostics as Prometheus
// metrics. The collector reads the aggregate at scrape time, so a scrape
// between cycles always sees a consistent snapshot.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/latticelabs/cubesim/grid"
)

// Collector implements prometheus.Collector over a single grid.
type Collector struct {
	grid *grid.Grid

	cycles          *prometheus.Desc
	nodes           *prometheus.Desc
	pktsSent        *prometheus.Desc
	pktsReceived    *prometheus.Desc
	pktsDropped     *prometheus.Desc
	pktsQueued      *prometheus.Desc
	correctlyRouted *prometheus.Desc
	maxCurrentQLen  *prometheus.Desc
	maxHighestQLen  *prometheus.Desc
}

// NewCollector builds a collector over g. Register it with a
// prometheus.Registerer to expose it.
func NewCollector(g *grid.Grid) *Collector {
	return &Collector{
		grid: g,
		cycles: prometheus.NewDesc("cubesim_cycles_total",
			"Completed simulation cycles.", nil, nil),
		nodes: prometheus.NewDesc("cubesim_nodes",
			"Cubes currently on the grid.", nil, nil),
		pktsSent: prometheus.NewDesc("cubesim_packets_sent_total",
			"Packets transmitted across all cubes.", nil, nil),
		pktsReceived: prometheus.NewDesc("cubesim_packets_received_total",
			"Packets drained from inbound faces across all cubes.", nil, nil),
		pktsDropped: prometheus.NewDesc("cubesim_packets_dropped_total",
			"Packets lost to absent neighbors, full queues, or unroutable destinations.", nil, nil),
		pktsQueued: prometheus.NewDesc("cubesim_packets_queued",
			"Packets sitting in cube queues.", nil, nil),
		correctlyRouted: prometheus.NewDesc("cubesim_packets_correctly_routed_total",
			"Packets delivered to their destination cube.", nil, nil),
		maxCurrentQLen: prometheus.NewDesc("cubesim_max_queue_length",
			"Largest live queue across cubes this cycle.", nil, nil),
		maxHighestQLen: prometheus.NewDesc("cubesim_max_queue_length_highwater",
			"Largest queue ever observed on any cube.", nil, nil),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.cycles
	ch <- c.nodes
	ch <- c.pktsSent
	ch <- c.pktsReceived
	ch <- c.pktsDropped
	ch <- c.pktsQueued
	ch <- c.correctlyRouted
	ch <- c.maxCurrentQLen
	ch <- c.maxHighestQLen
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	st := c.grid.Stats()

	ch <- prometheus.MustNewConstMetric(c.cycles, prometheus.CounterValue, float64(c.grid.Cycles()))
	ch <- prometheus.MustNewConstMetric(c.nodes, prometheus.GaugeValue, float64(c.grid.Len()))
	ch <- prometheus.MustNewConstMetric(c.pktsSent, prometheus.CounterValue, float64(st.TotalPktsSent))
	ch <- prometheus.MustNewConstMetric(c.pktsReceived, prometheus.CounterValue, float64(st.TotalPktsReceived))
	ch <- prometheus.MustNewConstMetric(c.pktsDropped, prometheus.CounterValue, float64(st.TotalPktsDropped))
	ch <- prometheus.MustNewConstMetric(c.pktsQueued, prometheus.GaugeValue, float64(st.TotalPktsQueued))
	ch <- prometheus.MustNewConstMetric(c.correctlyRouted, prometheus.CounterValue, float64(st.CorrectlyRoutedPkts))
	ch <- prometheus.MustNewConstMetric(c.maxCurrentQLen, prometheus.GaugeValue, float64(st.MaxCurrentQLen))
	ch <- prometheus.MustNewConstMetric(c.maxHighestQLen, prometheus.GaugeValue, float64(st.MaxHighestQLen))
}

var _ prometheus.Collector = (*Collector)(nil)
