// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package timer provides a mockable wall clock.
package timer

import "time"

// Clock wraps time.Now so tests can substitute a fixed or stepped time
// source without the engine depending on the real clock directly.
type Clock struct {
	faked bool
	time  time.Time
}

// Time returns the current time, or the faked time if Set has been
// called.
func (c *Clock) Time() time.Time {
	if c.faked {
		return c.time
	}
	return time.Now()
}

// Unix returns the current Unix timestamp in seconds.
func (c *Clock) Unix() uint64 { return uint64(c.Time().Unix()) }

// Set fixes this clock to always report t, for deterministic tests.
func (c *Clock) Set(t time.Time) {
	c.faked = true
	c.time = t
}
