// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package snow carries the ambient context every consensus component is
// constructed with: a chain identity, a logger, a metrics registerer,
// and a dispatcher for issue/accept/reject events.
package snow

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/luxfi/consensus/ids"
	"github.com/luxfi/consensus/snow/events"
	"github.com/luxfi/consensus/utils/logging"
)

// Context is handed to a consensus engine at construction time. It
// carries everything the engine needs that isn't part of its own
// decision state: a logger, a metrics registerer, a namespace for that
// registerer, an identifier for the chain/engine instance, and an event
// dispatcher used to fan decisions out to indexers or other engine-
// external observers.
type Context struct {
	// ChainID identifies the chain/engine instance this context belongs
	// to. Used only for logging and dispatcher tagging.
	ChainID ids.ID

	// Log is the leveled logger every component writes through.
	Log logging.Logger

	// Namespace is the Prometheus namespace this context's engine
	// registers its metrics under.
	Namespace string

	// Metrics is the Prometheus registerer metrics are installed into.
	Metrics prometheus.Registerer

	// ConsensusDispatcher is notified of block lifecycle events
	// (Issue/Accept/Reject), the way topological.go calls
	// ta.ctx.ConsensusDispatcher.Issue/Accept/Reject inline while still
	// holding the write lock.
	ConsensusDispatcher events.Dispatcher
}

// DefaultContext returns a Context suitable for tests: a no-op logger,
// a fresh Prometheus registry, and a no-op dispatcher.
func DefaultContext() *Context {
	return &Context{
		Log:                 logging.NoLog{},
		Namespace:           "snowvm",
		Metrics:             prometheus.NewRegistry(),
		ConsensusDispatcher: events.NoOpDispatcher{},
	}
}
