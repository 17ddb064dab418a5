// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package snowballtest is a small in-memory network simulation for
// exercising multi-node convergence, grounded on the
// Network{}.Initialize/round-driving pattern
// snow/consensus/snowball/consensus_benchmark_test.go drives against a
// benchmark-only Network type. Unlike that type, this one drives a
// snowvm.Consensus per node directly rather than a flat color model, so
// the same sibling-rejection and preference logic under test in
// production gets exercised under simulated concurrent polling too.
package snowballtest

import (
	"fmt"
	"math/rand"

	"github.com/luxfi/consensus/ids"
	"github.com/luxfi/consensus/snow/consensus/snowvm"
)

// Network holds a fixed set of nodes, each running an independent
// snowvm.Consensus over the same block set, and drives rounds of random
// sampled polling among them.
type Network struct {
	params snowvm.Parameters
	nodes  []*snowvm.Consensus
	rng    *rand.Rand
}

// New builds a Network of n nodes, all configured with params.
func New(params snowvm.Parameters, n int, seed int64) (*Network, error) {
	nodes := make([]*snowvm.Consensus, n)
	for i := range nodes {
		c, err := snowvm.New(nil, params)
		if err != nil {
			return nil, fmt.Errorf("node %d: %w", i, err)
		}
		nodes[i] = c
	}
	return &Network{params: params, nodes: nodes, rng: rand.New(rand.NewSource(seed))}, nil
}

// AddBlock inserts block into every node's graph.
func (n *Network) AddBlock(block snowvm.Block) error {
	for i, node := range n.nodes {
		if _, err := node.AddBlock(block); err != nil {
			return fmt.Errorf("node %d: %w", i, err)
		}
	}
	return nil
}

// Round has every node cast one preference and one confidence vote for
// blockID, sourced from a random subset of the other nodes, simulating
// one poll round of a k-sized sample.
func (n *Network) Round(blockID ids.ID, k int) error {
	for i, node := range n.nodes {
		for _, voterIdx := range n.sample(k, i) {
			voterID := nodeID(voterIdx)
			if _, err := node.ProcessVote(snowvm.Vote{VoterID: voterID, BlockID: blockID, IsPreference: true}); err != nil {
				return err
			}
			if _, err := node.ProcessVote(snowvm.Vote{VoterID: voterID, BlockID: blockID, IsPreference: false}); err != nil {
				return err
			}
		}
	}
	return nil
}

// Finalized reports whether every node agrees blockID is Accepted.
func (n *Network) Finalized(blockID ids.ID) bool {
	for _, node := range n.nodes {
		accepted, err := node.IsAccepted(blockID)
		if err != nil || !accepted {
			return false
		}
	}
	return true
}

func (n *Network) sample(k, excluding int) []int {
	if k > len(n.nodes)-1 {
		k = len(n.nodes) - 1
	}
	if k <= 0 {
		return nil
	}
	perm := n.rng.Perm(len(n.nodes))
	out := make([]int, 0, k)
	for _, idx := range perm {
		if idx == excluding {
			continue
		}
		out = append(out, idx)
		if len(out) == k {
			break
		}
	}
	return out
}

// nodeID turns a node's position in the simulation into a stable
// NodeID, so votes from the same simulated node always dedup
// consistently.
func nodeID(i int) ids.NodeID {
	var id ids.NodeID
	id[0] = byte(i >> 8)
	id[1] = byte(i)
	return id
}
