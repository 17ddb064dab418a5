// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chainvm

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/luxfi/consensus/utils/metrics"
	"github.com/luxfi/consensus/utils/wrappers"
)

// engineMetrics mirrors the struct-of-prometheus-fields-plus-Initialize
// pattern from snow/engine/snowman/block/meter_vm.go, extended with the
// counters the GetStats surface reports.
type engineMetrics struct {
	blocksAccepted prometheus.Counter
	blocksRejected prometheus.Counter
	pollsCompleted prometheus.Counter
	votesProcessed prometheus.Counter
	decisionLatency prometheus.Histogram
}

func newEngineMetrics(namespace string, registerer prometheus.Registerer) (*engineMetrics, error) {
	m := &engineMetrics{
		blocksAccepted:  metrics.NewCounter(namespace, "blocks_accepted", "number of blocks accepted"),
		blocksRejected:  metrics.NewCounter(namespace, "blocks_rejected", "number of blocks rejected"),
		pollsCompleted:  metrics.NewCounter(namespace, "polls_completed", "number of polls completed"),
		votesProcessed:  metrics.NewCounter(namespace, "votes_processed", "number of votes processed"),
		decisionLatency: metrics.NewNanosecondsLatencyMetric(namespace, "decision_latency"),
	}

	errs := wrappers.Errs{}
	errs.Add(
		registerer.Register(m.blocksAccepted),
		registerer.Register(m.blocksRejected),
		registerer.Register(m.pollsCompleted),
		registerer.Register(m.votesProcessed),
		registerer.Register(m.decisionLatency),
	)
	return m, errs.Err
}
