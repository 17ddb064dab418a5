// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxfi/consensus/ids"
	"github.com/luxfi/consensus/snow/validators"
)

func buildSet(n int) *validators.Set {
	s := validators.NewSet()
	for i := 0; i < n; i++ {
		var id ids.NodeID
		id[0] = byte(i)
		_ = s.Add(id, uint64(i+1))
	}
	return s
}

func TestSampleReturnsDistinctValidators(t *testing.T) {
	vs := buildSet(10)

	sampled, err := Sample(vs, 5)
	require.NoError(t, err)
	require.Len(t, sampled, 5)

	seen := make(map[ids.NodeID]bool)
	for _, id := range sampled {
		assert.False(t, seen[id], "sample without replacement must not repeat a validator")
		seen[id] = true
	}
}

func TestSampleRejectsOversizedK(t *testing.T) {
	vs := buildSet(3)
	_, err := Sample(vs, 10)
	assert.Error(t, err)
}

func TestSampleRejectsEmptySet(t *testing.T) {
	vs := validators.NewSet()
	_, err := Sample(vs, 1)
	assert.Error(t, err)
}
