// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chainvm

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxfi/consensus/ids"
	"github.com/luxfi/consensus/snow/consensus/snowvm"
)

func testConfig() Config {
	return Config{
		Namespace:  "chainvm_test",
		Registerer: prometheus.NewRegistry(),
		Parameters: snowvm.Parameters{
			K:                   1,
			AlphaPreference:     1,
			AlphaConfidence:     1,
			Beta:                2,
			MaxOutstandingItems: 64,
		},
	}
}

func TestEngineRejectsInvalidParams(t *testing.T) {
	cfg := testConfig()
	cfg.Parameters.K = 0

	_, err := New(cfg)
	assert.ErrorIs(t, err, ErrInvalidParams)
}

func TestEngineAddAndVoteToAcceptance(t *testing.T) {
	eng, err := New(testConfig())
	require.NoError(t, err)

	var id ids.ID
	id[0] = 1
	block := snowvm.Block{ID: id, ParentID: ids.Empty}

	added, err := eng.AddBlock(block)
	require.NoError(t, err)
	assert.True(t, added)

	for i := byte(1); i <= 2; i++ {
		var voter ids.NodeID
		voter[0] = i
		_, err := eng.ProcessVote(snowvm.Vote{VoterID: voter, BlockID: id, IsPreference: false})
		require.NoError(t, err)
	}

	accepted, err := eng.IsAccepted(id)
	require.NoError(t, err)
	assert.True(t, accepted)

	stats := eng.GetStats()
	assert.Equal(t, uint64(1), stats.BlocksAccepted)
	assert.Equal(t, uint64(2), stats.VotesProcessed)
}

func TestEngineClosedRejectsCalls(t *testing.T) {
	eng, err := New(testConfig())
	require.NoError(t, err)
	require.NoError(t, eng.Close())

	_, err = eng.AddBlock(snowvm.Block{ID: ids.ID{1}})
	assert.ErrorIs(t, err, ErrClosed)

	_, err = eng.GetPreference()
	assert.ErrorIs(t, err, ErrClosed)
}

func TestErrorCodeClassification(t *testing.T) {
	assert.Equal(t, CodeSuccess, ErrorCode(nil))
	assert.Equal(t, CodeInvalidParams, ErrorCode(ErrInvalidParams))
	assert.Equal(t, CodeVerificationFailed, ErrorCode(ErrVerificationFailed))
	assert.Equal(t, CodeNotImplemented, ErrorCode(ErrNotImplemented))
	assert.Equal(t, CodeInvalidState, ErrorCode(ErrInvalidState))
}
