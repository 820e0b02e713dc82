// Package erat implements the segment driver: it owns one segment's
// bitmap and applies the pre-sieve, small-prime crosser, medium-prime
// crosser and big-prime bucket scheduler to it in a fixed order.
package erat

import (
	"github.com/pchuck/segsieve/internal/bucket"
	"github.com/pchuck/segsieve/internal/config"
	"github.com/pchuck/segsieve/internal/cross"
	"github.com/pchuck/segsieve/internal/presieve"
	"github.com/pchuck/segsieve/internal/wheel"
)

// Session is a per-worker owned value: one segment buffer, one small
// tier, one medium tier, and one bucket scheduler, held as plain
// fields with no back-pointers (the "Cyclic references" design note).
type Session struct {
	buf          []byte
	segBlocks    uint64 // segment size, in 30-wide blocks (== SegmentBytes)
	smallLimit   uint64 // integer threshold: p <= smallLimit -> small tier
	mediumLimit  uint64 // integer threshold: smallLimit < p <= mediumLimit -> medium tier
	intervalLow  uint64 // absolute low bound of the interval this session serves
	small        cross.Tier
	medium       cross.Tier
	bucketPool   *bucket.Pool
	bucketSched  *bucket.Scheduler
}

// New builds a session for one worker's sub-interval [intervalLow,
// stop], sized from cfg. stopBlock is the highest 30-wide block index
// the bucket scheduler ever needs to reach (typically stop/30).
func New(cfg config.Config, intervalLow, stopBlock uint64) *Session {
	segBlocks := uint64(cfg.SegmentBytes)
	span := segBlocks * 30
	pool := bucket.NewPool()
	return &Session{
		buf:         make([]byte, segBlocks),
		segBlocks:   segBlocks,
		smallLimit:  span / config.SmallRatio,
		mediumLimit: span,
		intervalLow: intervalLow,
		bucketPool:  pool,
		bucketSched: bucket.NewScheduler(pool, segBlocks, stopBlock),
	}
}

// SegmentBlocks returns the session's segment size in 30-wide blocks
// (equivalently, in bytes of bitmap).
func (s *Session) SegmentBlocks() uint64 { return s.segBlocks }

// AddSievingPrime classifies p by magnitude and schedules its first
// crossed multiple, the smallest coprime-to-30 multiple of p that is >=
// max(p*p, s.intervalLow).
func (s *Session) AddSievingPrime(p uint64) {
	min := p * p
	if s.intervalLow > min {
		min = s.intervalLow
	}
	switch {
	case p <= s.smallLimit:
		s.small.Add(p, min)
	case p <= s.mediumLimit:
		s.medium.Add(p, min)
	default:
		s.bucketSched.Add(p, min)
	}
}

// ProcessSegment runs the pre-sieve, small/medium crossers and bucket
// scheduler, in order, over the block range
// [segLowBlock, segLowBlock+s.segBlocks) and returns the cleared
// buffer, masked so that only bits for integers in [start, stop] remain
// set. segIndex must be segLowBlock/s.segBlocks, with segLowBlock a
// multiple of the segment size: the bucket scheduler files each
// big-prime descriptor under that absolute segment number.
func (s *Session) ProcessSegment(segIndex, segLowBlock uint64, start, stop uint64) []byte {
	buf := s.buf
	presieve.Copy(buf, segLowBlock, s.segBlocks)

	s.small.CrossOff(buf, segLowBlock, s.segBlocks)
	s.medium.CrossOff(buf, segLowBlock, s.segBlocks)
	s.bucketSched.Process(segIndex, segLowBlock, buf)

	maskEnds(buf, segLowBlock, s.segBlocks, start, stop)
	return buf
}

// maskEnds clears any bit whose integer falls outside [start, stop].
func maskEnds(buf []byte, segLowBlock, segBlocks, start, stop uint64) {
	segLow := segLowBlock * 30
	segHigh := segLow + segBlocks*30 - 1

	if start > segLow {
		// Clear every bit below start in the first affected bytes.
		for block := segLowBlock; block*30 < start && block < segLowBlock+segBlocks; block++ {
			b := &buf[block-segLowBlock]
			for j, r := range wheel.Residues {
				if block*30+uint64(r) < start {
					*b &= wheel.ClearMask[j]
				}
			}
		}
	}
	if stop < segHigh {
		for block := segLowBlock; block < segLowBlock+segBlocks; block++ {
			if block*30 > stop {
				buf[block-segLowBlock] = 0
				continue
			}
			if block*30+29 <= stop {
				continue
			}
			b := &buf[block-segLowBlock]
			for j, r := range wheel.Residues {
				if block*30+uint64(r) > stop {
					*b &= wheel.ClearMask[j]
				}
			}
		}
	}
}
