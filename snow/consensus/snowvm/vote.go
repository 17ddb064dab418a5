// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package snowvm

import "github.com/luxfi/consensus/ids"

// Vote is an opinion from an identified voter about a single block.
// Votes are ephemeral: only their effect on a node's counters survives
// past ProcessVote, modulo the dedup log's short memory of which
// (voter, block) pairs have already been counted.
type Vote struct {
	VoterID      ids.NodeID
	BlockID      ids.ID
	IsPreference bool
}

// dedupKey is the (voter, block) pair the dedup log tracks.
type dedupKey struct {
	voter ids.NodeID
	block ids.ID
}

func (v Vote) key() dedupKey {
	return dedupKey{voter: v.VoterID, block: v.BlockID}
}
