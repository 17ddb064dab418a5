// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ids

// NodeID identifies a voter/validator. It shares ID's 32-byte
// representation but is kept as a distinct type so that block IDs and
// voter IDs can never be confused at a call site.
type NodeID ID

// EmptyNodeID is the all-zero NodeID.
var EmptyNodeID = NodeID{}

// Bytes returns this NodeID's 32 raw bytes.
func (id NodeID) Bytes() []byte { return id[:] }

// String returns the base58 encoding of this NodeID (no checksum).
func (id NodeID) String() string { return ID(id).String() }

// ToNodeID attempts to convert a byte slice into a NodeID.
func ToNodeID(bytes []byte) (NodeID, error) {
	id, err := ToID(bytes)
	return NodeID(id), err
}
