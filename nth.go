package segsieve

import (
	"errors"
	"math"
	"sync/atomic"

	"github.com/pchuck/segsieve/internal/sieveerr"
)

// nthPrimeMargin is the safety factor added on top of the prime-counting
// asymptotic estimate: large enough in practice that the first re-sieve
// attempt almost always straddles the target, so the doubling loop below
// rarely needs a second pass.
const nthPrimeMargin = 16

// NthPrime implements nth_prime(n, start): for n > 0, the n-th prime
// strictly greater than start; for n < 0, the |n|-th prime strictly less
// than start; for n == 0, the smallest prime >= start. Indexing is
// 1-based in both directions, so NthPrime(1, p) for prime p is the next
// prime after p and NthPrime(-1, p) is the one before it.
func NthPrime(n int64, start uint64) (uint64, error) {
	switch {
	case n == 0:
		return nthForward(start, 1, true)
	case n > 0:
		return nthForward(start, uint64(n), false)
	default:
		return nthBackward(start, uint64(-n))
	}
}

// nthForward finds the count-th prime at or after lo0 (inclusive) or
// strictly after it (exclusive), growing the search window geometrically
// until it contains at least count primes.
func nthForward(lo0 uint64, count uint64, inclusive bool) (uint64, error) {
	lo := lo0
	if !inclusive {
		if lo == ^uint64(0) {
			return 0, sieveerr.ErrNthPrimeOutOfRange
		}
		lo++
	}
	if lo > sieveerr.MaxStop {
		return 0, sieveerr.ErrNthPrimeOutOfRange
	}

	span := estimateSpan(lo, count)
	for {
		hi := lo + span
		if hi < lo || hi > sieveerr.MaxStop {
			hi = sieveerr.MaxStop
		}

		primes, err := collectOrderedUpTo(lo, hi, count)
		if err != nil {
			return 0, err
		}
		if uint64(len(primes)) >= count {
			return primes[count-1], nil
		}
		if hi == sieveerr.MaxStop {
			return 0, sieveerr.ErrNthPrimeOutOfRange
		}
		span *= 2
	}
}

// nthBackward finds the count-th prime strictly before hi0, growing the
// search window geometrically downward until it contains at least count
// primes, then returns the count-th from the end.
func nthBackward(hi0 uint64, count uint64) (uint64, error) {
	if hi0 <= 2 {
		return 0, sieveerr.ErrNthPrimeOutOfRange
	}
	hi := hi0 - 1

	span := estimateSpan(hi, count)
	for {
		var lo uint64
		if span >= hi-1 {
			lo = 2
		} else {
			lo = hi - span
		}

		primes, err := collectOrderedRange(lo, hi)
		if err != nil {
			return 0, err
		}
		if uint64(len(primes)) >= count {
			return primes[uint64(len(primes))-count], nil
		}
		if lo == 2 {
			return 0, sieveerr.ErrNthPrimeOutOfRange
		}
		span *= 2
	}
}

// estimateSpan over-estimates how far past lo the count-th prime must
// lie, using the prime number theorem's local density 1/ln(x) plus a
// margin of 20*sqrt(count)+nthPrimeMargin sized to cover the error term of the
// asymptotic at the sizes this engine targets.
func estimateSpan(lo uint64, count uint64) uint64 {
	x := float64(lo)
	if x < 2 {
		x = 2
	}
	c := float64(count)
	lnx := math.Log(x + c*math.Log(x+2))
	span := c*lnx*1.15 + 20*math.Sqrt(c) + nthPrimeMargin
	if span < 64 {
		span = 64
	}
	return uint64(math.Ceil(span))
}

// collectOrderedUpTo sieves [lo, hi] single-threaded (for a globally
// ascending emission order) and returns up to the first limit primes
// found, aborting the scan as soon as limit are collected.
func collectOrderedUpTo(lo, hi uint64, limit uint64) ([]uint64, error) {
	out := make([]uint64, 0, limit)
	var abort atomic.Bool
	_, err := Dispatch(lo, hi, Options{
		NumThreads: 1,
		Abort:      &abort,
		OnPrime: func(p uint64) {
			out = append(out, p)
			if uint64(len(out)) >= limit {
				abort.Store(true)
			}
		},
	})
	if err != nil && !errors.Is(err, ErrAborted) {
		return nil, err
	}
	return out, nil
}

// collectOrderedRange sieves [lo, hi] single-threaded and returns every
// prime found, in ascending order.
func collectOrderedRange(lo, hi uint64) ([]uint64, error) {
	var out []uint64
	_, err := Dispatch(lo, hi, Options{
		NumThreads: 1,
		OnPrime:    func(p uint64) { out = append(out, p) },
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
