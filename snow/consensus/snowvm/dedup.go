// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package snowvm

import "container/list"

// dedupCapacity bounds the vote dedup log to a fixed number of recent
// (voter, block) pairs.
const dedupCapacity = 10_000

// dedupLog is a bounded, oldest-evicted record of (voter, block) pairs
// already counted. seen rejects a repeat vote outright rather than
// merely logging it (see DESIGN.md for the reasoning).
//
// container/list backs the FIFO so eviction is O(1).
type dedupLog struct {
	entries map[dedupKey]*list.Element
	order   *list.List // front = newest, back = oldest
}

func newDedupLog() *dedupLog {
	return &dedupLog{
		entries: make(map[dedupKey]*list.Element),
		order:   list.New(),
	}
}

// seen reports whether key has already been recorded.
func (d *dedupLog) seen(key dedupKey) bool {
	_, ok := d.entries[key]
	return ok
}

// record adds key to the log, evicting the oldest entry if the log is
// at capacity. record must only be called once seen(key) is false.
func (d *dedupLog) record(key dedupKey) {
	elem := d.order.PushFront(key)
	d.entries[key] = elem

	if d.order.Len() > dedupCapacity {
		oldest := d.order.Back()
		d.order.Remove(oldest)
		delete(d.entries, oldest.Value.(dedupKey))
	}
}

// len returns the number of entries currently tracked.
func (d *dedupLog) len() int { return d.order.Len() }
