// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package snowvm

import (
	"github.com/luxfi/consensus/choices"
	"github.com/luxfi/consensus/ids"
)

// Block is a proposal a host hands to AddBlock. It is immutable once
// inserted: a node's stored payload is owned by the graph and is never
// mutated or replaced by a later insert of the same ID (first write
// wins, per the block graph's idempotence contract).
type Block struct {
	ID        ids.ID
	ParentID  ids.ID
	Height    uint64
	Timestamp uint64
	Payload   []byte
}

// node is a block's mutable consensus-state wrapper, kept alive for the
// engine's entire lifetime once created (see DESIGN.md for the
// ledger entry this is grounded on).
type node struct {
	block Block

	parent   *node
	children []*node

	preferenceCount uint64
	confidenceCount uint64

	status choices.Status
}

// id returns the wrapped block's identifier.
func (n *node) id() ids.ID { return n.block.ID }
