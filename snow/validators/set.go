// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package validators tracks the weighted set of voters a host polls
// each round, generalized to a single minimal Set since the full
// staking/subnet machinery is out of scope for an embeddable consensus
// core.
package validators

import (
	"errors"

	"github.com/luxfi/consensus/ids"
)

var errZeroWeight = errors.New("validators: weight must be positive")

// Set is a weighted collection of voters. It is not safe for concurrent
// use; callers serialize access externally, the same way Consensus does
// for the block graph.
type Set struct {
	weights map[ids.NodeID]uint64
	order   []ids.NodeID
	total   uint64
}

// NewSet returns an empty validator set.
func NewSet() *Set {
	return &Set{weights: make(map[ids.NodeID]uint64)}
}

// Add inserts or updates nodeID's weight. weight must be positive.
func (s *Set) Add(nodeID ids.NodeID, weight uint64) error {
	if weight == 0 {
		return errZeroWeight
	}
	if old, ok := s.weights[nodeID]; ok {
		s.total -= old
	} else {
		s.order = append(s.order, nodeID)
	}
	s.weights[nodeID] = weight
	s.total += weight
	return nil
}

// Remove deletes nodeID from the set, if present.
func (s *Set) Remove(nodeID ids.NodeID) {
	weight, ok := s.weights[nodeID]
	if !ok {
		return
	}
	s.total -= weight
	delete(s.weights, nodeID)
	for i, id := range s.order {
		if id == nodeID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Weight returns nodeID's weight, or 0 if it isn't in the set.
func (s *Set) Weight(nodeID ids.NodeID) uint64 {
	return s.weights[nodeID]
}

// TotalWeight returns the sum of every validator's weight.
func (s *Set) TotalWeight() uint64 {
	return s.total
}

// Len returns the number of validators in the set.
func (s *Set) Len() int {
	return len(s.order)
}

// List returns every validator ID, in insertion order.
func (s *Set) List() []ids.NodeID {
	out := make([]ids.NodeID, len(s.order))
	copy(out, s.order)
	return out
}

// Weights returns the weight of each validator returned by List, in the
// same order, as float64 for direct use with sampler.Sample.
func (s *Set) Weights() []float64 {
	out := make([]float64, len(s.order))
	for i, id := range s.order {
		out[i] = float64(s.weights[id])
	}
	return out
}
