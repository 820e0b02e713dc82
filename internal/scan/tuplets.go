package scan

// forms lists, for tuplet size k (index k-2), one or more admissible gap
// sequences -- the differences between k consecutive primes with no
// prime strictly between any two adjacent members. This is a maximal
// dense k-constellation, resolved per the per-package notes in
// DESIGN.md.
var forms = [6][][]uint64{
	{{2}},                                     // k=2: twins
	{{2, 4}, {4, 2}},                          // k=3: triplets
	{{2, 4, 2}},                               // k=4: quadruplets
	{{2, 4, 2, 4}, {4, 2, 4, 2}},               // k=5: quintuplets
	{{4, 2, 4, 2, 4}},                          // k=6: sextuplets
	{{2, 4, 2, 4, 6, 2}, {2, 6, 4, 2, 4, 2}},   // k=7: septuplets
}

const ringCap = 8

// Tuplets accumulates k-tuplet counts (and, optionally, prints) from an
// ascending stream of primes within one [countFrom, countTo] window. It
// keeps a small ring buffer of recently seen primes so constellations
// can be recognized without rescanning the segment bitmap bit-by-bit.
type Tuplets struct {
	ring       [ringCap]uint64
	ringLen    int
	countFrom  uint64
	countTo    uint64
	Counts     [6]uint64 // indexed k-2, k in 2..7
	onTuplet   func(k int, members []uint64)
}

// NewTuplets builds a Tuplets collector that only counts constellations
// whose lowest member lies in [countFrom, countTo] (used by the
// dispatcher to avoid double-counting across worker boundaries).
// onTuplet, if non-nil, is called once per match with its members in
// ascending order (used to implement print_tuplets_k).
func NewTuplets(countFrom, countTo uint64, onTuplet func(k int, members []uint64)) *Tuplets {
	return &Tuplets{countFrom: countFrom, countTo: countTo, onTuplet: onTuplet}
}

// Push records the next ascending prime and checks every pattern that
// now fits in the ring.
func (t *Tuplets) Push(p uint64) {
	if t.ringLen < ringCap {
		t.ring[t.ringLen] = p
		t.ringLen++
	} else {
		copy(t.ring[:], t.ring[1:])
		t.ring[ringCap-1] = p
	}

	for k := 2; k <= 7; k++ {
		for _, gaps := range forms[k-2] {
			need := len(gaps) + 1
			if t.ringLen < need {
				continue
			}
			start := t.ringLen - need
			base := t.ring[start]
			if base < t.countFrom || base > t.countTo {
				continue
			}
			ok := true
			for i, g := range gaps {
				if t.ring[start+i+1]-t.ring[start+i] != g {
					ok = false
					break
				}
			}
			if !ok {
				continue
			}
			t.Counts[k-2]++
			if t.onTuplet != nil {
				members := append([]uint64(nil), t.ring[start:start+need]...)
				t.onTuplet(k, members)
			}
		}
	}
}
