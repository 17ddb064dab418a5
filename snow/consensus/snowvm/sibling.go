// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package snowvm

import (
	"github.com/luxfi/consensus/choices"
	"github.com/luxfi/consensus/ids"
)

// siblingPolicy decides which Processing nodes get rejected when accepted
// transitions to Accepted.
type siblingPolicy interface {
	// reject returns every node that must transition to Rejected as a
	// consequence of accepted becoming Accepted. accepted is not
	// included in the result.
	reject(accepted *node) []*node
}

// chainSiblingPolicy rejects every Processing sibling of accepted, and
// recursively every Processing descendant of each such sibling. Used by
// both Chain and PQ kinds.
type chainSiblingPolicy struct{}

func (chainSiblingPolicy) reject(accepted *node) []*node {
	if accepted.parent == nil {
		return nil
	}
	var rejected []*node
	queue := make([]*node, 0, len(accepted.parent.children))
	for _, sibling := range accepted.parent.children {
		if sibling != accepted && sibling.status == choices.Processing {
			queue = append(queue, sibling)
		}
	}
	for len(queue) > 0 {
		n := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		if n.status != choices.Processing {
			continue
		}
		rejected = append(rejected, n)
		for _, child := range n.children {
			if child.status == choices.Processing {
				queue = append(queue, child)
			}
		}
	}
	return rejected
}

// dagSiblingPolicy rejects only the direct Processing siblings of
// accepted; their descendants are left untouched, so a DAG engine can
// keep accepting blocks on other branches that merely share an
// ancestor, not a direct conflict.
type dagSiblingPolicy struct{}

func (dagSiblingPolicy) reject(accepted *node) []*node {
	if accepted.parent == nil {
		return nil
	}
	var rejected []*node
	for _, sibling := range accepted.parent.children {
		if sibling != accepted && sibling.status == choices.Processing {
			rejected = append(rejected, sibling)
		}
	}
	return rejected
}

// nodeIDs extracts IDs from a slice of nodes, used by callers that need
// to report which blocks were rejected without exposing node internals.
func nodeIDs(nodes []*node) []ids.ID {
	out := make([]ids.ID, len(nodes))
	for i, n := range nodes {
		out[i] = n.id()
	}
	return out
}
