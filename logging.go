package sord

import "go.uber.org/zap"

// logger is the minimal structured-logging surface the core's
// peripheral call sites need. *zap.SugaredLogger satisfies it directly
// (SPEC_FULL.md §10.1); nopLogger is the library-internal default so
// Model never needs a nil check.
type logger interface {
	Infow(msg string, keysAndValues ...interface{})
	Warnw(msg string, keysAndValues ...interface{})
}

var _ logger = (*zap.SugaredLogger)(nil)

type nopLogger struct{}

func (nopLogger) Infow(string, ...interface{}) {}
func (nopLogger) Warnw(string, ...interface{}) {}
