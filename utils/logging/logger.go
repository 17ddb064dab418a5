// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package logging defines the leveled Logger interface threaded through
// *snow.Context, backed by go.uber.org/zap.
package logging

// Logger is the leveled logging interface every engine component talks
// to through *snow.Context.
type Logger interface {
	Fatal(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Debug(msg string, args ...interface{})
	Verbo(msg string, args ...interface{})

	// AssertTrue logs a fatal message and panics if cond is false,
	// mirroring ctx.Log.AssertTrue usage in topological.go.
	AssertTrue(cond bool, msg string, args ...interface{})

	// With returns a logger that prefixes every message with name,
	// for per-component sub-loggers (e.g. log.With("snowvm")).
	With(name string) Logger
}
