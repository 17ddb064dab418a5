// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package metrics holds small Prometheus metric constructors shared
// across engine packages.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// NewNanosecondsLatencyMetric returns a histogram suited to measuring
// nanosecond-scale latencies, with 20 doubling buckets from 1us to
// ~0.52s.
func NewNanosecondsLatencyMetric(namespace, name string) prometheus.Histogram {
	return prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      name,
		Help:      name + " latency in nanoseconds",
		Buckets:   prometheus.ExponentialBuckets(1000, 2, 20),
	})
}

// NewCounter returns a simple monotonic counter under namespace.
func NewCounter(namespace, name, help string) prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      name,
		Help:      help,
	})
}
