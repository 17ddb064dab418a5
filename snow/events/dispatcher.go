// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package events defines the dispatcher interface topological.go calls
// inline (ta.ctx.ConsensusDispatcher.Issue/Accept/Reject) whenever a
// block's lifecycle changes.
package events

import "github.com/luxfi/consensus/ids"

// Dispatcher is notified of block lifecycle transitions. It is the
// core's only outward notification channel besides the host-supplied
// decision/notify callbacks (see snow/engine/chainvm), and exists
// separately so an indexer or metrics exporter can observe the engine
// without being one of the host's registered callbacks.
type Dispatcher interface {
	// Issue is called when a block is first added to the engine.
	Issue(chainID, blockID ids.ID, bytes []byte)
	// Accept is called when a block transitions to Accepted.
	Accept(chainID, blockID ids.ID, bytes []byte)
	// Reject is called when a block transitions to Rejected.
	Reject(chainID, blockID ids.ID, bytes []byte)
}

// NoOpDispatcher discards every event. The default for tests and for
// hosts that don't need an external observer.
type NoOpDispatcher struct{}

func (NoOpDispatcher) Issue(ids.ID, ids.ID, []byte)  {}
func (NoOpDispatcher) Accept(ids.ID, ids.ID, []byte) {}
func (NoOpDispatcher) Reject(ids.ID, ids.ID, []byte) {}
