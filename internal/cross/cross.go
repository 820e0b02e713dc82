// Package cross implements the small- and medium-prime crossing-off
// tiers (components C and D). Both tiers share one Descriptor shape and
// one Tier type; only the prime-magnitude thresholds used to populate a
// Tier differ, replacing the source's EratSmall/EratMedium inheritance
// with composition selected at construction time.
package cross

import "github.com/pchuck/segsieve/internal/wheel"

// Descriptor tracks one sieving prime's progress through the wheel.
// Next is the absolute next multiple of P that is coprime to 30 (so it
// is guaranteed to have a corresponding bit in some segment byte); J is
// the wheel index that produced it.
type Descriptor struct {
	P    uint64
	Next uint64
	J    uint8
}

// Advance moves the descriptor to its next coprime-to-30 multiple and
// returns the byte/bit position of the multiple it just left.
func (d *Descriptor) Advance() (block uint64, bit uint8) {
	block = d.Next / 30
	bit = wheel.IndexOf(d.Next)
	d.Next += d.P * uint64(wheel.Gaps[d.J])
	d.J = (d.J + 1) & 7
	return
}

// NewDescriptor builds a descriptor for prime p whose first crossed
// multiple is the smallest coprime-to-30 multiple of p that is >= min.
func NewDescriptor(p, min uint64) Descriptor {
	if min < p*p {
		min = p * p
	}
	k, j := wheel.FirstMultipleAtOrAbove(ceilDiv(min, p))
	return Descriptor{P: p, Next: p * k, J: j}
}

func ceilDiv(a, b uint64) uint64 {
	return (a + b - 1) / b
}

// Tier holds the descriptors for one magnitude class of sieving prime
// (C: p <= segmentBytes*30/SmallRatio, or D: segmentBytes*30/SmallRatio
// < p <= segmentBytes*30, as erat.Session classifies them) and crosses
// them off a segment buffer.
type Tier struct {
	descs []Descriptor
}

// Add appends a new sieving prime to the tier, computing its first hit
// at or above min.
func (t *Tier) Add(p, min uint64) {
	t.descs = append(t.descs, NewDescriptor(p, min))
}

// Len reports how many primes this tier currently tracks.
func (t *Tier) Len() int { return len(t.descs) }

// CrossOff clears, in buf, every bit whose integer is a composite
// divisible by one of the tier's primes, where buf represents the
// segBlocks 30-wide blocks starting at block index segLowBlock.
func (t *Tier) CrossOff(buf []byte, segLowBlock, segBlocks uint64) {
	segHighBlock := segLowBlock + segBlocks
	for i := range t.descs {
		d := &t.descs[i]
		for d.Next/30 < segHighBlock {
			block, bit := d.Advance()
			buf[block-segLowBlock] &= wheel.ClearMask[bit]
		}
	}
}

// Reset discards all tracked descriptors (used when re-sieving a fresh
// interval with a new session).
func (t *Tier) Reset() {
	t.descs = t.descs[:0]
}
