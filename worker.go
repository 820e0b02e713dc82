package segsieve

import (
	"github.com/pchuck/segsieve/internal/config"
	"github.com/pchuck/segsieve/internal/erat"
	"github.com/pchuck/segsieve/internal/genprimes"
	"github.com/pchuck/segsieve/internal/scan"
)

// tupletLookahead extends a worker's own sieve range past its assigned
// stop so scan.Tuplets can recognize constellations whose members
// straddle the worker boundary. 32 is comfortably larger than the
// widest gap-sequence span in internal/scan's forms table (20, for the
// k=7 patterns).
const tupletLookahead = 32

// primeFeeder pulls ascending sieving primes from a genprimes.Generator
// and hands each to an erat.Session only once its square no longer
// exceeds the segment currently being prepared.
type primeFeeder struct {
	gen        *genprimes.Generator
	pending    uint64
	hasPending bool
	done       bool
}

func (f *primeFeeder) feedUpTo(sess *erat.Session, highInt uint64) {
	for {
		var p uint64
		if f.hasPending {
			p = f.pending
		} else if !f.done {
			v, ok := f.gen.Next()
			if !ok {
				f.done = true
				continue
			}
			p = v
		} else {
			return
		}
		if p > 5 && p*p > highInt {
			f.pending = p
			f.hasPending = true
			return
		}
		f.hasPending = false
		if p > 5 {
			sess.AddSievingPrime(p)
		}
	}
}

// sieveInterval sieves [scanStart, scanStop] with its own session and
// generator, calling onPrime for every prime in [scanStart, countStop]
// and pushing every prime in [scanStart, scanStop] into tup (if
// non-nil) so boundary-spanning tuplets are recognized. abort, if
// non-nil, is polled once per segment for cancellation.
func sieveInterval(cfg config.Config, scanStart, scanStop, countStop uint64, onPrime func(uint64), tup *scan.Tuplets, abort func() bool, onSegment func()) error {
	if scanStart > scanStop {
		return nil
	}

	sess := erat.New(cfg, scanStart, scanStop/30+1)
	gen := genprimes.New(isqrt(scanStop)+1, cfg)
	feeder := &primeFeeder{gen: gen}

	segBlocks := sess.SegmentBlocks()
	// Segments start on multiples of segBlocks and segIndex is the
	// absolute segment number, the index the bucket scheduler files
	// big-prime descriptors under; maskEnds drops integers below scanStart.
	segIndex := (scanStart / 30) / segBlocks
	lowBlock := segIndex * segBlocks

	for lowBlock*30 <= scanStop {
		if abort != nil && abort() {
			return ErrAborted
		}
		highBlock := lowBlock + segBlocks
		highInt := highBlock*30 - 1
		if highInt > scanStop {
			highInt = scanStop
		}
		feeder.feedUpTo(sess, highInt)

		buf := sess.ProcessSegment(segIndex, lowBlock, scanStart, scanStop)
		scan.Emit(buf, lowBlock, scanStart, scanStop, func(v uint64) {
			if tup != nil {
				tup.Push(v)
			}
			if onPrime != nil && v <= countStop {
				onPrime(v)
			}
		})

		if onSegment != nil {
			onSegment()
		}
		lowBlock += segBlocks
		segIndex++
	}
	return nil
}

// ErrAborted is returned by an interval scan when the caller's abort
// flag fired.
var ErrAborted = abortedErr{}

type abortedErr struct{}

func (abortedErr) Error() string { return "segsieve: aborted by caller" }
