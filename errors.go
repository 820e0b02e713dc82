package segsieve

import "github.com/pchuck/segsieve/internal/sieveerr"

// Sentinel errors re-exported at the package root. Use errors.Is
// against these.
var (
	ErrOutOfRange         = sieveerr.ErrOutOfRange
	ErrInvalidSieveSize   = sieveerr.ErrInvalidSieveSize
	ErrInvalidThreadCount = sieveerr.ErrInvalidThreadCount
	ErrNthPrimeOutOfRange = sieveerr.ErrNthPrimeOutOfRange
	ErrAllocationFailure  = sieveerr.ErrAllocationFailure
)

// MaxStop is the largest stop value this engine will sieve.
const MaxStop = sieveerr.MaxStop
