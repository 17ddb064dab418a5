// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"fmt"

	"go.uber.org/zap"
)

type zapLogger struct {
	sugar *zap.SugaredLogger
}

// NewZapLogger builds a production zap.Logger at the given name and
// wraps it as a Logger. name becomes the zap logger's name, shown as a
// prefix in every line.
func NewZapLogger(name string) (Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.DisableStacktrace = true
	base, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("couldn't build zap logger: %w", err)
	}
	return &zapLogger{sugar: base.Named(name).Sugar()}, nil
}

func format(msg string, args ...interface{}) string {
	if len(args) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, args...)
}

func (l *zapLogger) Fatal(msg string, args ...interface{}) { l.sugar.Fatal(format(msg, args...)) }
func (l *zapLogger) Error(msg string, args ...interface{}) { l.sugar.Error(format(msg, args...)) }
func (l *zapLogger) Warn(msg string, args ...interface{})  { l.sugar.Warn(format(msg, args...)) }
func (l *zapLogger) Info(msg string, args ...interface{})  { l.sugar.Info(format(msg, args...)) }
func (l *zapLogger) Debug(msg string, args ...interface{}) { l.sugar.Debug(format(msg, args...)) }
func (l *zapLogger) Verbo(msg string, args ...interface{}) { l.sugar.Debug(format(msg, args...)) }

func (l *zapLogger) AssertTrue(cond bool, msg string, args ...interface{}) {
	if !cond {
		l.sugar.Panic(format(msg, args...))
	}
}

func (l *zapLogger) With(name string) Logger {
	return &zapLogger{sugar: l.sugar.Named(name)}
}
