// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package wire

import (
	"github.com/luxfi/consensus/ids"
	"github.com/luxfi/consensus/snow/consensus/snowvm"
	"github.com/luxfi/consensus/utils/wrappers"
)

// maxBlockSize caps the packed size MarshalBlock will produce, mirroring
// the MaxSize guard vertex.go's Marshal uses against a runaway
// allocation request. UnmarshalBlock does not check it.
const maxBlockSize = 1 << 20 // 1 MiB

// MarshalBlock packs a block's id, parent id, height, timestamp and
// payload into a self-describing byte slice.
func MarshalBlock(b snowvm.Block) ([]byte, error) {
	p := wrappers.Packer{MaxSize: maxBlockSize}
	p.PackFixedBytes(b.ID.Bytes())
	p.PackFixedBytes(b.ParentID.Bytes())
	p.PackLong(b.Height)
	p.PackLong(b.Timestamp)
	p.PackBytes(b.Payload)
	return p.Bytes, p.Err
}

// UnmarshalBlock is MarshalBlock's inverse.
func UnmarshalBlock(data []byte) (snowvm.Block, error) {
	u := wrappers.Unpacker{Bytes: data}
	idBytes := u.UnpackFixedBytes(ids.IDLen)
	parentBytes := u.UnpackFixedBytes(ids.IDLen)
	height := u.UnpackLong()
	timestamp := u.UnpackLong()
	payload := u.UnpackBytes()
	if u.Err != nil {
		return snowvm.Block{}, u.Err
	}

	id, err := ids.ToID(idBytes)
	if err != nil {
		return snowvm.Block{}, err
	}
	parentID, err := ids.ToID(parentBytes)
	if err != nil {
		return snowvm.Block{}, err
	}

	return snowvm.Block{
		ID:        id,
		ParentID:  parentID,
		Height:    height,
		Timestamp: timestamp,
		Payload:   payload,
	}, nil
}
