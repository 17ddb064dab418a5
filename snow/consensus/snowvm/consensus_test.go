// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package snowvm

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxfi/consensus/ids"
)

func chainParams() Parameters {
	return Parameters{
		K:                   1,
		AlphaPreference:     1,
		AlphaConfidence:     1,
		Beta:                2,
		MaxOutstandingItems: 256,
		EngineKind:          Chain,
	}
}

func blockID(b byte) ids.ID {
	var id ids.ID
	id[0] = b
	return id
}

func voterID(b byte) ids.NodeID {
	var id ids.NodeID
	id[0] = b
	return id
}

func TestAddBlockIsIdempotent(t *testing.T) {
	c, err := New(nil, chainParams())
	require.NoError(t, err)

	block := Block{ID: blockID(1), ParentID: ids.Empty}
	added, err := c.AddBlock(block)
	require.NoError(t, err)
	assert.True(t, added)

	added, err = c.AddBlock(block)
	require.NoError(t, err)
	assert.False(t, added, "re-adding the same block must be a no-op")
}

func TestAddBlockUnresolvedParentAttachesToGenesis(t *testing.T) {
	c, err := New(nil, chainParams())
	require.NoError(t, err)

	orphan := Block{ID: blockID(1), ParentID: blockID(0xFF)}
	added, err := c.AddBlock(orphan)
	require.NoError(t, err)
	require.True(t, added)

	status, err := c.Status(orphan.ID)
	require.NoError(t, err)
	assert.Equal(t, "Processing", status.String())
}

func TestProcessVoteUnknownBlock(t *testing.T) {
	c, err := New(nil, chainParams())
	require.NoError(t, err)

	_, err = c.ProcessVote(Vote{VoterID: voterID(1), BlockID: blockID(9), IsPreference: true})
	assert.ErrorIs(t, err, ErrUnknownBlock)
}

func TestProcessVoteDuplicateIsNotDoubleCounted(t *testing.T) {
	c, err := New(nil, chainParams())
	require.NoError(t, err)

	block := Block{ID: blockID(1), ParentID: ids.Empty}
	_, err = c.AddBlock(block)
	require.NoError(t, err)

	v := Vote{VoterID: voterID(1), BlockID: block.ID, IsPreference: false}
	r1, err := c.ProcessVote(v)
	require.NoError(t, err)
	assert.False(t, r1.Accepted)

	// Same (voter, block) pair again: must not move confidenceCount,
	// even though Beta is only 2.
	r2, err := c.ProcessVote(v)
	require.NoError(t, err)
	assert.False(t, r2.Accepted, "a duplicate vote must not advance confidence toward acceptance")
	assert.True(t, r2.Counted, "a duplicate vote still counts as a successfully processed call")
}

func TestProcessVoteAcceptsAtBeta(t *testing.T) {
	c, err := New(nil, chainParams())
	require.NoError(t, err)

	block := Block{ID: blockID(1), ParentID: ids.Empty}
	_, err = c.AddBlock(block)
	require.NoError(t, err)

	_, err = c.ProcessVote(Vote{VoterID: voterID(1), BlockID: block.ID, IsPreference: false})
	require.NoError(t, err)

	result, err := c.ProcessVote(Vote{VoterID: voterID(2), BlockID: block.ID, IsPreference: false})
	require.NoError(t, err)
	assert.True(t, result.Accepted)
	assert.Equal(t, block.ID, result.AcceptedBlock)

	accepted, err := c.IsAccepted(block.ID)
	require.NoError(t, err)
	assert.True(t, accepted)
}

func TestProcessVoteIgnoredAfterDecision(t *testing.T) {
	c, err := New(nil, chainParams())
	require.NoError(t, err)

	block := Block{ID: blockID(1), ParentID: ids.Empty}
	_, err = c.AddBlock(block)
	require.NoError(t, err)

	for i := byte(1); i <= 2; i++ {
		_, err = c.ProcessVote(Vote{VoterID: voterID(i), BlockID: block.ID, IsPreference: false})
		require.NoError(t, err)
	}

	result, err := c.ProcessVote(Vote{VoterID: voterID(3), BlockID: block.ID, IsPreference: false})
	require.NoError(t, err)
	assert.False(t, result.Accepted, "votes against an already-decided block must not re-trigger acceptance")
}

func TestChainEngineRejectsSiblingsOnAccept(t *testing.T) {
	c, err := New(nil, chainParams())
	require.NoError(t, err)

	a := Block{ID: blockID(1), ParentID: ids.Empty}
	b := Block{ID: blockID(2), ParentID: ids.Empty}
	_, err = c.AddBlock(a)
	require.NoError(t, err)
	_, err = c.AddBlock(b)
	require.NoError(t, err)

	for i := byte(1); i <= 2; i++ {
		_, err = c.ProcessVote(Vote{VoterID: voterID(i), BlockID: a.ID, IsPreference: false})
		require.NoError(t, err)
	}

	status, err := c.Status(b.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rejected", status.String())
}

func TestDAGEngineLeavesNonSiblingBranchesAlone(t *testing.T) {
	params := chainParams()
	params.EngineKind = DAG
	c, err := New(nil, params)
	require.NoError(t, err)

	a := Block{ID: blockID(1), ParentID: ids.Empty}
	b := Block{ID: blockID(2), ParentID: ids.Empty}
	child := Block{ID: blockID(3), ParentID: b.ID}
	_, err = c.AddBlock(a)
	require.NoError(t, err)
	_, err = c.AddBlock(b)
	require.NoError(t, err)
	_, err = c.AddBlock(child)
	require.NoError(t, err)

	for i := byte(1); i <= 2; i++ {
		_, err = c.ProcessVote(Vote{VoterID: voterID(i), BlockID: a.ID, IsPreference: false})
		require.NoError(t, err)
	}

	bStatus, err := c.Status(b.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rejected", bStatus.String())

	childStatus, err := c.Status(child.ID)
	require.NoError(t, err)
	assert.Equal(t, "Processing", childStatus.String(), "dag engines must not cascade rejection to a sibling's descendants")
}

func TestPQEngineRequiresVerifyHook(t *testing.T) {
	params := chainParams()
	params.EngineKind = PQ
	c, err := New(nil, params)
	require.NoError(t, err)

	_, err = c.AddBlock(Block{ID: blockID(1), ParentID: ids.Empty})
	assert.ErrorIs(t, err, ErrMissingVerifyHook)

	c.RegisterVerifyCallback(func(Block) bool { return true })
	added, err := c.AddBlock(Block{ID: blockID(1), ParentID: ids.Empty})
	require.NoError(t, err)
	assert.True(t, added)
}

func TestVerifyHookRejectionBlocksInsertion(t *testing.T) {
	c, err := New(nil, chainParams())
	require.NoError(t, err)

	c.RegisterVerifyCallback(func(b Block) bool { return b.Height > 0 })

	_, err = c.AddBlock(Block{ID: blockID(1), ParentID: ids.Empty, Height: 0})
	assert.ErrorIs(t, err, ErrVerificationFailed)

	added, err := c.AddBlock(Block{ID: blockID(2), ParentID: ids.Empty, Height: 1})
	require.NoError(t, err)
	assert.True(t, added)
}

func TestPanickingCallbackDoesNotCorruptState(t *testing.T) {
	c, err := New(nil, chainParams())
	require.NoError(t, err)

	c.RegisterDecisionCallback(func(ids.ID) { panic("host bug") })

	block := Block{ID: blockID(1), ParentID: ids.Empty}
	_, err = c.AddBlock(block)
	require.NoError(t, err)

	for i := byte(1); i <= 2; i++ {
		result, err := c.ProcessVote(Vote{VoterID: voterID(i), BlockID: block.ID, IsPreference: false})
		require.NoError(t, err)
		_ = result
	}

	accepted, err := c.IsAccepted(block.ID)
	require.NoError(t, err)
	assert.True(t, accepted, "a panicking decision hook must not prevent the block's own acceptance from being recorded")
}

func TestPreferenceNeverPointsAtRejectedNode(t *testing.T) {
	c, err := New(nil, chainParams())
	require.NoError(t, err)

	a := Block{ID: blockID(1), ParentID: ids.Empty}
	b := Block{ID: blockID(2), ParentID: ids.Empty}
	_, err = c.AddBlock(a)
	require.NoError(t, err)
	_, err = c.AddBlock(b)
	require.NoError(t, err)

	// Make b preferred first.
	_, err = c.ProcessVote(Vote{VoterID: voterID(1), BlockID: b.ID, IsPreference: true})
	require.NoError(t, err)
	assert.Equal(t, b.ID, c.GetPreference())

	// Now accept a, which must reject b as its sibling and reclaim
	// the preference pointer.
	for i := byte(10); i <= 11; i++ {
		_, err = c.ProcessVote(Vote{VoterID: voterID(i), BlockID: a.ID, IsPreference: false})
		require.NoError(t, err)
	}

	assert.Equal(t, a.ID, c.GetPreference(), "preference must move off a node that was rejected as a side effect")
}

// TestConcurrentVoteIsRaceFree adds blocks up front, then drives many
// goroutines through ProcessVote concurrently; run with -race to catch
// any lock discipline violation.
func TestConcurrentVoteIsRaceFree(t *testing.T) {
	params := chainParams()
	params.Beta = 1000 // keep blocks Processing for the whole run
	c, err := New(nil, params)
	require.NoError(t, err)

	const numBlocks = 100
	blocks := make([]Block, numBlocks)
	for i := range blocks {
		blocks[i] = Block{ID: blockID(byte(i + 1)), ParentID: ids.Empty}
		_, err := c.AddBlock(blocks[i])
		require.NoError(t, err)
	}

	const numWorkers = 4
	const votesPerWorker = 1000

	var wg sync.WaitGroup
	wg.Add(numWorkers)
	for w := 0; w < numWorkers; w++ {
		go func(worker int) {
			defer wg.Done()
			for i := 0; i < votesPerWorker; i++ {
				block := blocks[i%numBlocks]
				v := voterID(byte(worker*votesPerWorker + i))
				_, err := c.ProcessVote(Vote{VoterID: v, BlockID: block.ID, IsPreference: i%2 == 0})
				assert.NoError(t, err)
			}
		}(w)
	}
	wg.Wait()
}
