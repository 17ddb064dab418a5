// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package chainvm is the host-facing engine surface: it wraps a
// snowvm.Consensus with configuration, error-code mapping, and
// statistics, the way a MeterVM wraps a bare ChainVM with
// instrumentation.
package chainvm

import "errors"

var (
	// ErrInvalidParams is returned for malformed configuration or
	// arguments.
	ErrInvalidParams = errors.New("chainvm: invalid params")

	// ErrOutOfMemory is returned when an allocation-bound host resource
	// is exhausted. Go's engine has no fixed pool of its own, so this
	// only surfaces through the host's own allocator failing; kept for
	// parity with the external error contract.
	ErrOutOfMemory = errors.New("chainvm: out of memory")

	// ErrInvalidState covers operations attempted against state that
	// cannot satisfy them, such as a vote for or query about a block that
	// was never added. A closed engine returns ErrClosed instead, which
	// ErrorCode maps to CodeInvalidState.
	ErrInvalidState = errors.New("chainvm: invalid state")

	// ErrVerificationFailed covers a block rejected by the verify hook.
	ErrVerificationFailed = errors.New("chainvm: verification failed")

	// ErrNotImplemented covers an engine kind's hook requirement that
	// the host didn't satisfy (e.g. PQ without a verify hook).
	ErrNotImplemented = errors.New("chainvm: not implemented")

	// ErrClosed is returned by any call made after Close.
	ErrClosed = errors.New("chainvm: engine closed")
)

// Code is a small error taxonomy suitable for a metrics label or an
// FFI boundary; ErrorCode classifies any error this package or snowvm
// can return.
type Code int

const (
	CodeSuccess Code = iota
	CodeInvalidParams
	CodeOutOfMemory
	CodeInvalidState
	CodeVerificationFailed
	CodeNotImplemented
)

// ErrorCode maps err to the taxonomy above, defaulting to
// CodeInvalidState for anything unrecognized.
func ErrorCode(err error) Code {
	switch {
	case err == nil:
		return CodeSuccess
	case errors.Is(err, ErrInvalidParams):
		return CodeInvalidParams
	case errors.Is(err, ErrOutOfMemory):
		return CodeOutOfMemory
	case errors.Is(err, ErrVerificationFailed):
		return CodeVerificationFailed
	case errors.Is(err, ErrNotImplemented):
		return CodeNotImplemented
	default:
		return CodeInvalidState
	}
}

func (c Code) String() string {
	switch c {
	case CodeSuccess:
		return "success"
	case CodeInvalidParams:
		return "invalid_params"
	case CodeOutOfMemory:
		return "out_of_memory"
	case CodeInvalidState:
		return "invalid_state"
	case CodeVerificationFailed:
		return "verification_failed"
	case CodeNotImplemented:
		return "not_implemented"
	default:
		return "unknown"
	}
}
