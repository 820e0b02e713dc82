// Package scan implements the prime generator / k-tuplet scanner: it
// turns cleared segment bytes into primes and, via Tuplets, into
// k-tuplet counts and prints.
package scan

// Emit walks the non-zero bytes of buf (which represents segBlocks
// 30-wide blocks starting at block index segLowBlock) and calls onPrime
// once for every set bit whose integer is in [start, stop], in
// ascending order. buf is assumed already end-masked by the segment
// driver; start/stop are passed through anyway as a defensive second
// filter since callers may reuse a buffer across a slightly wider scan
// range (see the dispatcher's tuplet lookahead).
func Emit(buf []byte, segLowBlock uint64, start, stop uint64, onPrime func(uint64)) {
	for i, b := range buf {
		if b == 0 {
			continue
		}
		blockLow := (segLowBlock + uint64(i)) * 30
		for _, r := range offsets[b] {
			v := blockLow + uint64(r)
			if v >= start && v <= stop {
				onPrime(v)
			}
		}
	}
}

// SmallPrimes lists the primes below 7, which can never appear in the
// wheel-sieved output because the wheel bitmap has no bit for 2, 3 or
// 5.
var SmallPrimes = [3]uint64{2, 3, 5}

// SmallTuplets maps tuplet size (k, 2..7) to the literal tuplets whose
// lowest member is below 7, which the wheel-fed Tuplets ring never
// sees: (2,3) and (3,5) at k=2, (5,7,11) at k=3, (5,7,11,13) at k=4 and
// (5,7,11,13,17) at k=5. The pair (5,7) is not listed, so it is not
// counted as a twin. No k=6 or k=7 form starts below 7.
var SmallTuplets = map[int][][]uint64{
	2: {{2, 3}, {3, 5}},
	3: {{5, 7, 11}},
	4: {{5, 7, 11, 13}},
	5: {{5, 7, 11, 13, 17}},
}
