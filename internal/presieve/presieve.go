// Package presieve builds and serves the pre-sieve bitmap (component B):
// a precomputed cycle of small-prime multiples that gets copied into
// every segment before the small/medium/big crossers run.
package presieve

import "github.com/pchuck/segsieve/internal/wheel"

// Primes are the small primes crossed off in the pre-sieve cycle
// (L=13). 2, 3 and 5 need no entry: the wheel bitmap itself never
// represents their multiples.
var Primes = [3]uint64{7, 11, 13}

// CycleBytes is the cycle length in bytes: 7*11*13 = 1001. Because
// gcd(30, 7*11*13) == 1, the byte-level pattern of cleared bits (every
// wheel position divisible by 7, 11 or 13) repeats with exactly this
// many bytes -- no extra scaling by 30 is needed.
const CycleBytes = 7 * 11 * 13

// Cycle is the precomputed pre-sieve pattern: Cycle[i] has a bit
// cleared for every residue in block i (0-indexed from integer 0) whose
// corresponding integer is divisible by 7, 11 or 13.
var Cycle [CycleBytes]byte

func init() {
	for i := range Cycle {
		Cycle[i] = 0xFF
	}
	for _, p := range Primes {
		// Cross off every composite multiple of p across the whole cycle,
		// which spans CycleBytes*30 consecutive integers starting at 0.
		// Starting at p*p rather than p itself leaves p's own bit set: any
		// smaller composite multiple of p is also a multiple of a smaller
		// prime in Primes (or not coprime to 30 at all), so it is already
		// crossed off by the time this loop runs, exactly as in
		// internal/cross's NewDescriptor.
		total := uint64(CycleBytes) * 30
		for m := p * p; m < total; m += p {
			if wheel.ResidueIndex[m%30] < 0 {
				continue
			}
			block := m / 30
			bit := uint8(wheel.ResidueIndex[m%30])
			Cycle[block] &= wheel.ClearMask[bit]
		}
	}
}

// Copy fills buf[:segBlocks] with the slice of the pre-sieve cycle
// aligned to segLowBlock (a block index, i.e. segLow/30).
func Copy(buf []byte, segLowBlock, segBlocks uint64) {
	off := segLowBlock % CycleBytes
	n := uint64(0)
	for n < segBlocks {
		chunk := CycleBytes - off
		if chunk > segBlocks-n {
			chunk = segBlocks - n
		}
		copy(buf[n:n+chunk], Cycle[off:off+chunk])
		n += chunk
		off = 0
	}
}
