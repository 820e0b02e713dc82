// Package sieveerr defines the error kinds of the engine's error-handling
// design: sentinel errors wrapped with call-site context via
// github.com/pkg/errors so callers can use errors.Is/errors.Cause.
package sieveerr

import "github.com/pkg/errors"

// Sentinel errors, one per failure kind this engine distinguishes.
var (
	ErrOutOfRange         = errors.New("sieveerr: start or stop out of representable range")
	ErrInvalidSieveSize   = errors.New("sieveerr: sieve size outside [1, 8192] KiB")
	ErrInvalidThreadCount = errors.New("sieveerr: thread count must be positive")
	ErrNthPrimeOutOfRange = errors.New("sieveerr: nth-prime search guess exceeds max allowed stop")
	ErrAllocationFailure  = errors.New("sieveerr: bucket or segment allocation failed")
)

// MaxStop is the largest stop value the engine will sieve:
// 2^64 - 10*(2^32-1) - 1, leaving headroom so a segment ending near the top
// of the uint64 range never overflows while being masked.
const MaxStop uint64 = ^uint64(0) - 10*(uint64(1)<<32-1)

// CheckRange validates a [start, stop] interval against this engine's
// representable domain.
func CheckRange(start, stop uint64) error {
	if start > stop {
		return errors.Wrapf(ErrOutOfRange, "start %d > stop %d", start, stop)
	}
	if stop > MaxStop {
		return errors.Wrapf(ErrOutOfRange, "stop %d exceeds max stop %d", stop, MaxStop)
	}
	return nil
}

// Wrap annotates err with a message, preserving the sentinel for
// errors.Is. A no-op when err is nil.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return errors.Wrap(err, msg)
}

// Wrapf is Wrap with formatting.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return errors.Wrapf(err, format, args...)
}
