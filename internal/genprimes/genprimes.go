// Package genprimes implements the sieving-prime generator (component
// G): it produces, in ascending order, every prime p <= limit (the
// driver calls it with limit = floor(sqrt(stop))), feeding the small
// 16-bit trial-division table into a nested wheel-sieve session when
// limit is too large to enumerate by trial division alone.
package genprimes

import (
	"github.com/pchuck/segsieve/internal/config"
	"github.com/pchuck/segsieve/internal/erat"
	"github.com/pchuck/segsieve/internal/scan"
)

var smallSeeds = [3]uint64{2, 3, 5}

// Generator yields ascending primes up to a limit via Next.
type Generator struct {
	limit uint64

	direct   bool // limit fits entirely within base16
	directIdx int

	sess      *erat.Session
	segBlocks uint64
	segIndex  uint64
	curLow    uint64 // next segment's low block index
	curPrimes []uint64
	curPos    int
	smallIdx  int // index into smallSeeds not yet emitted
	exhausted bool
}

// New builds a generator of primes up to limit, using cfg to size its
// own (small, bucket-free) segment. No recursion beyond this point is
// needed: base16 already covers every prime up to stop^(1/4) for the
// largest stop this engine supports.
func New(limit uint64, cfg config.Config) *Generator {
	g := &Generator{limit: limit}
	if limit <= base16Limit {
		g.direct = true
		return g
	}

	stopBlock := limit/30 + 1
	g.sess = erat.New(cfg, 7, stopBlock)
	g.segBlocks = g.sess.SegmentBlocks()
	for _, p := range base16 {
		pu := uint64(p)
		if pu*pu > limit {
			break
		}
		if pu < 7 {
			continue // 2, 3, 5 are handled as literal seeds, not wheel descriptors
		}
		g.sess.AddSievingPrime(pu)
	}
	return g
}

// Next returns the next ascending prime <= limit, or ok=false once
// exhausted.
func (g *Generator) Next() (p uint64, ok bool) {
	if g.direct {
		for g.directIdx < len(base16) {
			v := uint64(base16[g.directIdx])
			g.directIdx++
			if v > g.limit {
				return 0, false
			}
			return v, true
		}
		return 0, false
	}

	for g.smallIdx < len(smallSeeds) {
		v := smallSeeds[g.smallIdx]
		g.smallIdx++
		if v <= g.limit {
			return v, true
		}
	}

	for {
		if g.curPos < len(g.curPrimes) {
			v := g.curPrimes[g.curPos]
			g.curPos++
			return v, true
		}
		if g.exhausted || !g.advanceSegment() {
			return 0, false
		}
	}
}

func (g *Generator) advanceSegment() bool {
	if g.curLow*30 > g.limit {
		g.exhausted = true
		return false
	}
	buf := g.sess.ProcessSegment(g.segIndex, g.curLow, 7, g.limit)

	primes := g.curPrimes[:0]
	scan.Emit(buf, g.curLow, 7, g.limit, func(v uint64) {
		primes = append(primes, v)
	})
	g.curPrimes = primes
	g.curPos = 0
	g.curLow += g.segBlocks
	g.segIndex++
	return true
}
