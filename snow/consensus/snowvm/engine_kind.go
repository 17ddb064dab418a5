// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package snowvm

// EngineKind selects the sibling-rejection policy and, for PQ, whether
// a verify hook is mandatory. The three kinds share every other part of
// the decision core; each gets its own siblingPolicy below.
type EngineKind uint8

const (
	// Chain implements linear-chain finality: accepting a block rejects
	// every sibling and, transitively, everything built on a rejected
	// sibling.
	Chain EngineKind = iota
	// DAG rejects only direct siblings; descendants of a rejected
	// sibling may still be accepted on another branch.
	DAG
	// PQ is graph-identical to Chain; the distinction is that a PQ
	// engine requires a verify hook (post-quantum signature checks are
	// assumed to live there) and refuses to accept blocks without one.
	PQ
)

func (k EngineKind) String() string {
	switch k {
	case Chain:
		return "chain"
	case DAG:
		return "dag"
	case PQ:
		return "pq"
	default:
		return "unknown"
	}
}

func (k EngineKind) siblingPolicy() siblingPolicy {
	if k == DAG {
		return dagSiblingPolicy{}
	}
	return chainSiblingPolicy{}
}
