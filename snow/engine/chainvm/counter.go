// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chainvm

import (
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// readCounter extracts the current value out of a prometheus.Counter.
// The client library only exposes this through the Metric wire format,
// so GetStats pays a small marshal cost to stay truthful to whatever
// the registered counter reports rather than keeping a second,
// independently-incremented tally that could drift from it.
func readCounter(c prometheus.Counter) uint64 {
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		return 0
	}
	return uint64(m.GetCounter().GetValue())
}
