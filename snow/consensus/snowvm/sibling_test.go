// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package snowvm

import (
	"testing"

	"github.com/luxfi/consensus/choices"
	"github.com/luxfi/consensus/ids"
)

// buildFork creates: parent -> {a, b}, b -> {c}. a and b are siblings;
// c is b's child.
func buildFork() (parent, a, b, c *node) {
	parent = &node{block: Block{ID: ids.ID{0}}, status: choices.Accepted}
	a = &node{block: Block{ID: ids.ID{1}}, parent: parent, status: choices.Processing}
	b = &node{block: Block{ID: ids.ID{2}}, parent: parent, status: choices.Processing}
	c = &node{block: Block{ID: ids.ID{3}}, parent: b, status: choices.Processing}
	parent.children = []*node{a, b}
	b.children = []*node{c}
	return
}

func TestChainSiblingPolicyRejectsDescendants(t *testing.T) {
	_, a, b, c := buildFork()

	rejected := chainSiblingPolicy{}.reject(a)

	if len(rejected) != 2 {
		t.Fatalf("expected 2 rejected nodes (sibling + its child), got %d", len(rejected))
	}
	seen := map[ids.ID]bool{}
	for _, n := range rejected {
		seen[n.id()] = true
	}
	if !seen[b.id()] || !seen[c.id()] {
		t.Fatal("chain policy must reject both the sibling and its descendant")
	}
}

func TestDAGSiblingPolicyOnlyDirectSiblings(t *testing.T) {
	_, a, b, c := buildFork()

	rejected := dagSiblingPolicy{}.reject(a)

	if len(rejected) != 1 || rejected[0] != b {
		t.Fatal("dag policy must reject only the direct sibling")
	}
	if c.status != choices.Processing {
		t.Fatal("dag policy must leave the sibling's descendant untouched")
	}
}

func TestSiblingPolicySkipsAlreadyDecided(t *testing.T) {
	parent, a, b, _ := buildFork()
	b.status = choices.Rejected // already decided by some other path

	rejected := chainSiblingPolicy{}.reject(a)
	if len(rejected) != 0 {
		t.Fatal("an already-decided sibling should not be reported as newly rejected")
	}
	_ = parent
}

func TestRootNodeHasNoSiblings(t *testing.T) {
	root := &node{block: Block{ID: ids.Empty}, status: choices.Accepted}
	if rejected := chainSiblingPolicy{}.reject(root); rejected != nil {
		t.Fatal("a node with no parent has no siblings to reject")
	}
}
