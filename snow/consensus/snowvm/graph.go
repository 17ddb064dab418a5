// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package snowvm

import (
	"github.com/luxfi/consensus/choices"
	"github.com/luxfi/consensus/ids"
)

// graph is the block graph: an indexed collection of block nodes with
// parent/child links and O(1) lookup by ID, backed by a plain Go map
// of pointers so node references stay stable as the map grows.
//
// graph is not safe for concurrent use; callers serialize access
// through Consensus's RWMutex.
type graph struct {
	nodes   map[ids.ID]*node
	genesis *node
}

// newGraph constructs a fresh graph with its own genesis node, always
// Accepted and always present under the all-zero ID.
func newGraph() *graph {
	genesis := &node{
		block:  Block{ID: ids.Empty},
		status: choices.Accepted,
	}
	return &graph{
		nodes:   map[ids.ID]*node{ids.Empty: genesis},
		genesis: genesis,
	}
}

// insert adds n to the graph if its ID is new. Returns false if a node
// with this ID already exists (AlreadyPresent) — first write wins.
func (g *graph) insert(n *node) bool {
	if _, exists := g.nodes[n.block.ID]; exists {
		return false
	}
	g.nodes[n.block.ID] = n
	return true
}

// lookup returns the node with the given ID, or nil if none exists.
func (g *graph) lookup(id ids.ID) *node {
	return g.nodes[id]
}

// resolveParent returns the node with ID parentID, or genesis if no
// such node exists. Out-of-order delivery of a child before its
// parent still yields a graph rooted at genesis, rather than a
// dangling reference.
func (g *graph) resolveParent(parentID ids.ID) *node {
	if parent, ok := g.nodes[parentID]; ok {
		return parent
	}
	return g.genesis
}

// children returns n's children in insertion order.
func (g *graph) children(n *node) []*node {
	return n.children
}
