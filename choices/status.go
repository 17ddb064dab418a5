// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package choices

import "errors"

// Status is the state of a decidable element, following the spec's
// block state machine: Processing is the only non-terminal value.
type Status uint32

const (
	// Processing means the item is being voted on and has not been
	// decided yet.
	Processing Status = iota
	// Accepted means the item has been finalized as accepted. Terminal.
	Accepted
	// Rejected means the item has been finalized as rejected. Terminal.
	Rejected
)

var errUnknownStatus = errors.New("unknown status")

// Decided returns true iff the status is a terminal one.
func (s Status) Decided() bool { return s == Accepted || s == Rejected }

// Valid returns an error if this isn't a known status.
func (s Status) Valid() error {
	switch s {
	case Processing, Accepted, Rejected:
		return nil
	default:
		return errUnknownStatus
	}
}

func (s Status) String() string {
	switch s {
	case Processing:
		return "Processing"
	case Accepted:
		return "Accepted"
	case Rejected:
		return "Rejected"
	default:
		return "Invalid status"
	}
}
