// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package snowvm

import (
	"testing"

	"github.com/luxfi/consensus/ids"
)

// indexedKey builds a dedupKey unique for every i in [0, 1<<32), by
// packing i into the low bytes of the block ID.
func indexedKey(i int) dedupKey {
	var b ids.ID
	b[0] = byte(i)
	b[1] = byte(i >> 8)
	b[2] = byte(i >> 16)
	b[3] = byte(i >> 24)
	return dedupKey{voter: ids.EmptyNodeID, block: b}
}

func TestDedupLogSeenAndRecord(t *testing.T) {
	d := newDedupLog()
	k := indexedKey(1)

	if d.seen(k) {
		t.Fatal("key should not be seen before it's recorded")
	}
	d.record(k)
	if !d.seen(k) {
		t.Fatal("key should be seen immediately after record")
	}
}

func TestDedupLogEvictsOldest(t *testing.T) {
	d := newDedupLog()

	first := indexedKey(0)
	d.record(first)

	for i := 1; i <= dedupCapacity; i++ {
		d.record(indexedKey(i))
	}

	if d.len() != dedupCapacity {
		t.Fatalf("expected log length to stay capped at %d, got %d", dedupCapacity, d.len())
	}
	if d.seen(first) {
		t.Fatal("oldest entry should have been evicted once capacity was exceeded")
	}
}
