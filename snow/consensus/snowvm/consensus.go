// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package snowvm implements the shared Snow*-family decision core: the
// block graph, the per-block preference/confidence counters, the
// sibling-rejection policy, and the single-writer/many-readers
// concurrency discipline that makes all of it safe under concurrent
// add/vote/query.
//
// The three engine kinds (Chain, DAG, PQ) are all Consensus values that
// differ only in their siblingPolicy and, for PQ, in requiring a verify
// hook.
package snowvm

import (
	"errors"
	"sync"

	"github.com/luxfi/consensus/choices"
	"github.com/luxfi/consensus/ids"
	"github.com/luxfi/consensus/snow"
	"github.com/luxfi/consensus/snow/events"
	"github.com/luxfi/consensus/utils/logging"
)

var (
	// ErrUnknownBlock is returned by ProcessVote when the voted-for
	// block isn't in the graph.
	ErrUnknownBlock = errors.New("snowvm: vote for unknown block")

	// ErrVerificationFailed is returned by AddBlock when the host's
	// verify hook rejects the block.
	ErrVerificationFailed = errors.New("snowvm: block failed verification")

	// ErrMissingVerifyHook is returned by AddBlock for a PQ engine that
	// has no verify hook registered: PQ's distinguishing behavior is
	// confined to the verify hook, so one must exist.
	ErrMissingVerifyHook = errors.New("snowvm: pq engine requires a verify hook")
)

// VoteResult reports what a single ProcessVote call did, so the caller
// (snow/engine/chainvm.Engine) can drive its own stats and callbacks
// without reaching into Consensus internals.
type VoteResult struct {
	// Counted is true whenever the call was a successfully processed
	// vote for stats purposes, even if the vote was discarded as a
	// duplicate or for a decided block.
	Counted bool

	// PreferenceUpdated is true iff this vote moved the preference
	// pointer.
	PreferenceUpdated bool
	NewPreference     ids.ID

	// Accepted is true iff this vote caused a Processing -> Accepted
	// transition.
	Accepted      bool
	AcceptedBlock ids.ID
	// Rejected lists every block transitioned to Rejected as a side
	// effect of the acceptance above (sibling rejection).
	Rejected []ids.ID
}

// Consensus is the shared decision core. A single instance owns one
// block graph, one dedup log, and one preference pointer, all guarded
// by a single sync.RWMutex rather than one lock per concern, so there's
// no ordering hazard between them.
type Consensus struct {
	mu sync.RWMutex

	params Parameters
	policy siblingPolicy

	g         *graph
	preferred *node
	dedup     *dedupLog

	log        logging.Logger
	dispatcher events.Dispatcher
	chainID    ids.ID

	decisionHook func(ids.ID)
	verifyHook   func(Block) bool
	notifyHook   func(string)
}

// New constructs a Consensus instance. ctx may be nil, in which case a
// default context (no-op logger, no-op dispatcher) is used.
func New(ctx *snow.Context, params Parameters) (*Consensus, error) {
	if err := params.Verify(); err != nil {
		return nil, err
	}
	if ctx == nil {
		ctx = snow.DefaultContext()
	}

	g := newGraph()
	return &Consensus{
		params:     params,
		policy:     params.EngineKind.siblingPolicy(),
		g:          g,
		preferred:  g.genesis,
		dedup:      newDedupLog(),
		log:        ctx.Log,
		dispatcher: ctx.ConsensusDispatcher,
		chainID:    ctx.ChainID,
	}, nil
}

// RegisterDecisionCallback sets the hook invoked exactly once per
// Accepted transition, while the write lock is still held.
func (c *Consensus) RegisterDecisionCallback(fn func(ids.ID)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.decisionHook = fn
}

// RegisterVerifyCallback sets the hook consulted once inside AddBlock
// before a node is created.
func (c *Consensus) RegisterVerifyCallback(fn func(Block) bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.verifyHook = fn
}

// RegisterNotifyCallback sets the hook used for free-form events,
// including "callback_failed" when another hook panics.
func (c *Consensus) RegisterNotifyCallback(fn func(string)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notifyHook = fn
}

// AddBlock inserts block into the graph. Returns added=false with a nil
// error if the block was already present (idempotent, first write
// wins). A block whose parent hasn't been added yet attaches to
// genesis instead.
func (c *Consensus) AddBlock(block Block) (added bool, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if existing := c.g.lookup(block.ID); existing != nil {
		return false, nil
	}

	if c.params.EngineKind == PQ && c.verifyHook == nil {
		return false, ErrMissingVerifyHook
	}
	if !c.safeVerify(block) {
		return false, ErrVerificationFailed
	}

	// The graph keeps its own copy of the payload so later writes to the
	// caller's slice cannot change a stored block.
	block.Payload = append([]byte(nil), block.Payload...)

	parent := c.g.resolveParent(block.ParentID)
	n := &node{
		block:  block,
		parent: parent,
		status: choices.Processing,
	}
	parent.children = append(parent.children, n)
	c.g.insert(n)

	c.dispatcher.Issue(c.chainID, block.ID, block.Payload)
	return true, nil
}

// ProcessVote applies a single vote to the graph.
func (c *Consensus) ProcessVote(vote Vote) (VoteResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := c.g.lookup(vote.BlockID)
	if n == nil {
		return VoteResult{}, ErrUnknownBlock
	}

	result := VoteResult{Counted: true}

	key := vote.key()
	if c.dedup.seen(key) {
		// A repeat (voter, block) pair is rejected before counting. The
		// call still succeeds for stats purposes, but no counter moves.
		return result, nil
	}
	c.dedup.record(key)

	if n.status != choices.Processing {
		// Terminal blocks ignore further votes.
		return result, nil
	}

	if vote.IsPreference {
		n.preferenceCount++
		if n.preferenceCount >= c.params.AlphaPreference && c.isTipOrDescendant(n) {
			c.preferred = n
			result.PreferenceUpdated = true
			result.NewPreference = n.id()
		}
		return result, nil
	}

	n.confidenceCount++
	if n.confidenceCount >= c.params.Beta {
		rejected := c.accept(n)
		result.Accepted = true
		result.AcceptedBlock = n.id()
		result.Rejected = nodeIDs(rejected)
	}
	return result, nil
}

// accept transitions n to Accepted, updates the preference pointer,
// fires the decision hook and dispatcher event, and applies this
// engine's sibling-rejection policy. The caller must hold c.mu.
func (c *Consensus) accept(n *node) []*node {
	n.status = choices.Accepted
	c.preferred = n

	c.dispatcher.Accept(c.chainID, n.block.ID, n.block.Payload)
	c.safeDecision(n.block.ID)

	rejected := c.policy.reject(n)
	for _, r := range rejected {
		r.status = choices.Rejected
		c.dispatcher.Reject(c.chainID, r.block.ID, r.block.Payload)
	}

	// Invariant 6: preference never points at a Rejected node. If the
	// previously preferred block was rejected as a side effect of this
	// acceptance (it was on the losing branch), fall back to the block
	// that just won.
	if c.preferred.status == choices.Rejected {
		c.preferred = n
	}
	return rejected
}

// isTipOrDescendant reports whether n is the current preferred tip or a
// strict descendant of it, walking parent pointers to genesis.
func (c *Consensus) isTipOrDescendant(n *node) bool {
	for cur := n; cur != nil; cur = cur.parent {
		if cur == c.preferred {
			return true
		}
	}
	return false
}

// IsAccepted returns whether the given block is Accepted. Returns
// ErrUnknownBlock if no such block exists.
func (c *Consensus) IsAccepted(id ids.ID) (bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	n := c.g.lookup(id)
	if n == nil {
		return false, ErrUnknownBlock
	}
	return n.status == choices.Accepted, nil
}

// Status returns the current status of the given block.
func (c *Consensus) Status(id ids.ID) (choices.Status, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	n := c.g.lookup(id)
	if n == nil {
		return choices.Processing, ErrUnknownBlock
	}
	return n.status, nil
}

// GetPreference returns the ID of the currently preferred tip. Before
// any block is accepted or preferred, this is the genesis ID.
func (c *Consensus) GetPreference() ids.ID {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.preferred.id()
}

// Parameters returns the configuration this Consensus was built with.
func (c *Consensus) Parameters() Parameters {
	return c.params
}

func (c *Consensus) safeVerify(block Block) (ok bool) {
	if c.verifyHook == nil {
		return true
	}
	defer func() {
		if r := recover(); r != nil {
			ok = false
			c.log.Error("verify callback panicked: %v", r)
			c.safeNotify("callback_failed")
		}
	}()
	return c.verifyHook(block)
}

func (c *Consensus) safeDecision(id ids.ID) {
	if c.decisionHook == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			c.log.Error("decision callback panicked: %v", r)
			c.safeNotify("callback_failed")
		}
	}()
	c.decisionHook(id)
}

func (c *Consensus) safeNotify(event string) {
	if c.notifyHook == nil {
		return
	}
	defer func() { _ = recover() }()
	c.notifyHook(event)
}
