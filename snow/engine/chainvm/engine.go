// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chainvm

import (
	"fmt"
	"sync"
	"time"

	"github.com/luxfi/consensus/ids"
	"github.com/luxfi/consensus/snow/consensus/snowvm"
	"github.com/luxfi/consensus/utils/logging"
	"github.com/luxfi/consensus/utils/timer"
)

// Engine is the host-facing wrapper around a snowvm.Consensus: it owns
// the metrics, the closed/open lifecycle, and the stats bookkeeping
// (average decision time) that the core itself has no opinion about,
// the way MeterVM in snow/engine/snowman/block/meter_vm.go wraps a bare
// ChainVM with timing instrumentation without touching its semantics.
type Engine struct {
	mu     sync.Mutex
	closed bool

	core    *snowvm.Consensus
	metrics *engineMetrics
	clock   timer.Clock
	log     logging.Logger

	startTime      time.Time
	totalDecisions uint64
}

// Stats is a point-in-time snapshot of engine counters.
type Stats struct {
	BlocksAccepted       uint64
	BlocksRejected       uint64
	PollsCompleted       uint64
	VotesProcessed       uint64
	AverageDecisionTimeMS float64
}

// New builds an Engine from cfg, validating parameters and wiring
// prometheus metrics under cfg.Namespace.
func New(cfg Config) (*Engine, error) {
	ctx := cfg.context()

	core, err := snowvm.New(ctx, cfg.Parameters)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidParams, err)
	}

	m, err := newEngineMetrics(ctx.Namespace, ctx.Metrics)
	if err != nil {
		return nil, fmt.Errorf("chainvm: registering metrics: %w", err)
	}

	e := &Engine{
		core:      core,
		metrics:   m,
		log:       ctx.Log,
		startTime: time.Now(),
	}
	return e, nil
}

// Close marks the engine closed. After it, AddBlock, ProcessVote, Poll,
// IsAccepted and GetPreference return ErrClosed; GetStats and the
// Register*Callback methods do not check the closed flag.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closed = true
	return nil
}

func (e *Engine) isClosed() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.closed
}

// AddBlock inserts block into the engine's graph.
func (e *Engine) AddBlock(block snowvm.Block) (bool, error) {
	if e.isClosed() {
		return false, ErrClosed
	}
	added, err := e.core.AddBlock(block)
	if err != nil {
		return false, classify(err)
	}
	return added, nil
}

// ProcessVote applies vote and updates engine-level stats as a side
// effect of what the core reports back.
func (e *Engine) ProcessVote(vote snowvm.Vote) (snowvm.VoteResult, error) {
	if e.isClosed() {
		return snowvm.VoteResult{}, ErrClosed
	}

	start := e.clock.Time()
	result, err := e.core.ProcessVote(vote)
	if err != nil {
		return snowvm.VoteResult{}, classify(err)
	}

	if result.Counted {
		e.metrics.votesProcessed.Inc()
	}
	if result.Accepted {
		e.metrics.blocksAccepted.Inc()
		e.metrics.decisionLatency.Observe(float64(time.Since(start).Nanoseconds()))

		e.mu.Lock()
		e.totalDecisions++
		e.mu.Unlock()
	}
	for range result.Rejected {
		e.metrics.blocksRejected.Inc()
	}
	return result, nil
}

// Poll records that a poll round completed. Polling itself is a
// host-driven loop over ProcessVote calls; this only advances the
// polls_completed counter the host can report through GetStats.
func (e *Engine) Poll() error {
	if e.isClosed() {
		return ErrClosed
	}
	e.metrics.pollsCompleted.Inc()
	return nil
}

// IsAccepted reports whether id has been accepted.
func (e *Engine) IsAccepted(id ids.ID) (bool, error) {
	if e.isClosed() {
		return false, ErrClosed
	}
	accepted, err := e.core.IsAccepted(id)
	if err != nil {
		return false, classify(err)
	}
	return accepted, nil
}

// GetPreference returns the current preferred tip.
func (e *Engine) GetPreference() (ids.ID, error) {
	if e.isClosed() {
		return ids.Empty, ErrClosed
	}
	return e.core.GetPreference(), nil
}

// RegisterDecisionCallback forwards to the core.
func (e *Engine) RegisterDecisionCallback(fn func(ids.ID)) {
	e.core.RegisterDecisionCallback(fn)
}

// RegisterVerifyCallback forwards to the core.
func (e *Engine) RegisterVerifyCallback(fn func(snowvm.Block) bool) {
	e.core.RegisterVerifyCallback(fn)
}

// RegisterNotifyCallback forwards to the core.
func (e *Engine) RegisterNotifyCallback(fn func(string)) {
	e.core.RegisterNotifyCallback(fn)
}

// GetStats assembles the public stats snapshot, computing the average
// decision time as elapsed wall-clock milliseconds since New divided by
// max(1, blocks accepted).
func (e *Engine) GetStats() Stats {
	accepted := readCounter(e.metrics.blocksAccepted)
	rejected := readCounter(e.metrics.blocksRejected)
	polls := readCounter(e.metrics.pollsCompleted)
	votes := readCounter(e.metrics.votesProcessed)

	divisor := accepted
	if divisor == 0 {
		divisor = 1
	}
	elapsed := time.Since(e.startTime)
	avgMS := float64(elapsed.Milliseconds()) / float64(divisor)

	return Stats{
		BlocksAccepted:        accepted,
		BlocksRejected:        rejected,
		PollsCompleted:        polls,
		VotesProcessed:        votes,
		AverageDecisionTimeMS: avgMS,
	}
}

func classify(err error) error {
	switch err {
	case snowvm.ErrUnknownBlock:
		return fmt.Errorf("%w: %v", ErrInvalidState, err)
	case snowvm.ErrVerificationFailed:
		return fmt.Errorf("%w: %v", ErrVerificationFailed, err)
	case snowvm.ErrMissingVerifyHook:
		return fmt.Errorf("%w: %v", ErrNotImplemented, err)
	default:
		return fmt.Errorf("%w: %v", ErrInvalidState, err)
	}
}
