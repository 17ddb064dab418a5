// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package choices

import "github.com/luxfi/consensus/ids"

// Decidable is an element that can be decided (Accepted or Rejected) by
// consensus.
type Decidable interface {
	// ID returns this element's unique identifier.
	ID() ids.ID

	// Accept this element, setting its status permanently to Accepted.
	Accept() error

	// Reject this element, setting its status permanently to Rejected.
	Reject() error

	// Status returns this element's current status.
	Status() Status
}
