// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package wire implements the packed byte encodings used for
// transporting votes and blocks between a host process and this
// engine, built on utils/wrappers.Packer the same way
// snow/engine/avalanche/vertex/vertex.go packs a vertex by hand instead
// of reaching for a general-purpose codec.
package wire

import (
	"errors"

	"github.com/luxfi/consensus/ids"
	"github.com/luxfi/consensus/snow/consensus/snowvm"
	"github.com/luxfi/consensus/utils/wrappers"
)

// PackedVoteLen is the fixed size of the wire vote format:
// [engine_kind:1][node_id_prefix:2][block_id_prefix:2][vote_type:1][reserved:2].
const PackedVoteLen = 8

var errShortVote = errors.New("wire: packed vote must be 8 bytes")

// PackVote encodes vote into the 8-byte wire format. Only the leading
// two bytes of the voter and block IDs survive the round trip: this
// format is a compact poll-result summary for links where bandwidth is
// scarce, not a substitute for the full IDs used by AddBlock/ProcessVote
// in process.
func PackVote(kind snowvm.EngineKind, vote snowvm.Vote) []byte {
	p := wrappers.Packer{MaxSize: PackedVoteLen}
	p.PackByte(byte(kind))
	p.PackFixedBytes(vote.VoterID.Bytes()[:2])
	p.PackFixedBytes(vote.BlockID.Bytes()[:2])
	if vote.IsPreference {
		p.PackByte(1)
	} else {
		p.PackByte(0)
	}
	p.PackFixedBytes([]byte{0, 0})
	return p.Bytes
}

// PackedVote is the decoded form of an 8-byte wire vote: the full voter
// and block IDs are not recoverable from the prefix alone, so callers
// that need them must carry the vote's originating snowvm.Vote
// alongside the wire bytes.
type PackedVote struct {
	Kind         snowvm.EngineKind
	NodeIDPrefix [2]byte
	BlockIDPrefix [2]byte
	IsPreference bool
}

// UnpackVote decodes an 8-byte wire vote.
func UnpackVote(b []byte) (PackedVote, error) {
	if len(b) != PackedVoteLen {
		return PackedVote{}, errShortVote
	}
	u := wrappers.Unpacker{Bytes: b}
	kind := u.UnpackByte()
	nodePrefix := u.UnpackFixedBytes(2)
	blockPrefix := u.UnpackFixedBytes(2)
	voteType := u.UnpackByte()
	_ = u.UnpackFixedBytes(2)
	if u.Err != nil {
		return PackedVote{}, u.Err
	}

	pv := PackedVote{Kind: snowvm.EngineKind(kind), IsPreference: voteType == 1}
	copy(pv.NodeIDPrefix[:], nodePrefix)
	copy(pv.BlockIDPrefix[:], blockPrefix)
	return pv, nil
}

// matches reports whether the first two bytes of id equal pv's block ID
// prefix, for log correlation rather than equality testing. The voter
// prefix is not compared.
func matches(pv PackedVote, id ids.ID) bool {
	b := id.Bytes()
	return len(b) >= 2 && b[0] == pv.BlockIDPrefix[0] && b[1] == pv.BlockIDPrefix[1]
}
