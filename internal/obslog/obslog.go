// Package obslog wraps go.uber.org/zap: a logger constructor (the
// dispatcher builds one logger per run) and a multierr-based collector
// for worker termination errors. It provides no per-worker logger.
package obslog

import (
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// New builds a SugaredLogger at debug level when debug is set and at
// info level otherwise. Construction never fails
// in a way that should abort a sieve call: if zap's production config
// build somehow errs, a No-op logger is returned instead.
func New(debug bool) *zap.SugaredLogger {
	cfg := zap.NewProductionConfig()
	if debug {
		cfg.Level.SetLevel(zap.DebugLevel)
	} else {
		cfg.Level.SetLevel(zap.InfoLevel)
	}
	cfg.DisableStacktrace = true
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return logger.Sugar()
}

// Errors collects per-worker termination errors and combines them with
// multierr: the dispatcher joins every worker, then surfaces the first
// observed error while the rest remain attached for logging.
type Errors struct {
	errs []error
}

// Add records err if non-nil.
func (e *Errors) Add(err error) {
	if err != nil {
		e.errs = append(e.errs, err)
	}
}

// Combined returns a single multierr-joined error, or nil if none were
// added.
func (e *Errors) Combined() error {
	return multierr.Combine(e.errs...)
}

// First returns the first error added, or nil.
func (e *Errors) First() error {
	if len(e.errs) == 0 {
		return nil
	}
	return e.errs[0]
}
