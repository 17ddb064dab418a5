// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ids

import (
	"encoding/hex"
	"errors"

	"github.com/mr-tron/base58/base58"
)

// IDLen is the number of bytes in an ID.
const IDLen = 32

var (
	// Empty is the all-zero ID. It denotes the synthetic genesis block.
	Empty = ID{}

	errWrongLength = errors.New("input has invalid length")
)

// ID is a 32 byte identifier. It is used for block IDs, voter IDs and
// transaction IDs alike; equality is always byte-wise.
type ID [IDLen]byte

// ToID attempts to convert a byte slice into an ID.
func ToID(bytes []byte) (ID, error) {
	if len(bytes) != IDLen {
		return ID{}, errWrongLength
	}
	var id ID
	copy(id[:], bytes)
	return id, nil
}

// FromString parses the base58 representation produced by
// String back into an ID.
func FromString(idStr string) (ID, error) {
	decoded, err := base58.Decode(idStr)
	if err != nil {
		return ID{}, err
	}
	return ToID(decoded)
}

// Bytes returns this ID's 32 raw bytes.
func (id ID) Bytes() []byte { return id[:] }

// Key returns this ID as a map key. Defined so callers can write
// map[ID]T without an extra conversion at every call site.
func (id ID) Key() [IDLen]byte { return id }

// Empty returns true iff this is the all-zero ID (the genesis ID).
func (id ID) Empty() bool { return id == Empty }

// Hex returns the raw hex encoding of this ID, primarily for debugging.
func (id ID) Hex() string { return hex.EncodeToString(id[:]) }

// String returns the base58 encoding of this ID's 32 bytes (no checksum).
func (id ID) String() string {
	return base58.Encode(id[:])
}

// Compare returns -1, 0 or 1 if id is less than, equal to, or greater
// than other, by byte-wise lexicographic order.
func (id ID) Compare(other ID) int {
	for i := range id {
		switch {
		case id[i] < other[i]:
			return -1
		case id[i] > other[i]:
			return 1
		}
	}
	return 0
}
