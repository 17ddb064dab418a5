// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxfi/consensus/ids"
)

func TestSetAddAndTotalWeight(t *testing.T) {
	s := NewSet()
	var a, b ids.NodeID
	a[0], b[0] = 1, 2

	require.NoError(t, s.Add(a, 10))
	require.NoError(t, s.Add(b, 5))

	assert.Equal(t, uint64(15), s.TotalWeight())
	assert.Equal(t, 2, s.Len())
}

func TestSetAddRejectsZeroWeight(t *testing.T) {
	s := NewSet()
	var a ids.NodeID
	a[0] = 1
	assert.Error(t, s.Add(a, 0))
}

func TestSetAddUpdatesExistingWeight(t *testing.T) {
	s := NewSet()
	var a ids.NodeID
	a[0] = 1

	require.NoError(t, s.Add(a, 10))
	require.NoError(t, s.Add(a, 20))

	assert.Equal(t, uint64(20), s.TotalWeight())
	assert.Equal(t, 1, s.Len())
}

func TestSetRemove(t *testing.T) {
	s := NewSet()
	var a, b ids.NodeID
	a[0], b[0] = 1, 2
	require.NoError(t, s.Add(a, 10))
	require.NoError(t, s.Add(b, 5))

	s.Remove(a)
	assert.Equal(t, uint64(5), s.TotalWeight())
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, uint64(0), s.Weight(a))
}
