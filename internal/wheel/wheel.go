// Package wheel publishes the mod-30 wheel tables shared by the
// pre-sieve, the small/medium-prime crossers and the big-prime bucket
// scheduler.
//
// The wheel bitmap packs one byte per 30 consecutive integers. Of the 30
// residues mod 30, exactly eight are coprime to 30 -- those are the only
// ones that can be prime (for n > 5) and the only ones that ever get a
// bit in the sieve. Bit j of a byte represents the integer
// byteLow + Residues[j].
package wheel

// Residues are the eight values mod 30 coprime to 2, 3 and 5, in
// ascending order. Bit j of a wheel byte corresponds to Residues[j].
var Residues [8]uint8

// Gaps[j] is the distance from Residues[j] to the next coprime-to-30
// value in the sequence (wrapping past 30 for j == 7: 31 - 29 == 2).
var Gaps [8]uint8

// ResidueIndex maps a value mod 30 to its index in Residues, or -1 if
// the value is not coprime to 30. Only ever indexed with values known
// to be coprime to 30; a -1 hit in the hot path is a bug.
var ResidueIndex [30]int8

// BitMask[j] isolates bit j; ClearMask[j] clears it.
var BitMask [8]byte
var ClearMask [8]byte

func init() {
	residues := make([]uint8, 0, 8)
	for r := uint8(1); r < 30; r++ {
		if gcd30(r) == 1 {
			residues = append(residues, r)
		}
	}
	if len(residues) != 8 {
		panic("wheel: expected exactly 8 residues coprime to 30")
	}
	copy(Residues[:], residues)

	for i := range ResidueIndex {
		ResidueIndex[i] = -1
	}
	for j, r := range Residues {
		ResidueIndex[r] = int8(j)
		BitMask[j] = 1 << uint(j)
		ClearMask[j] = ^BitMask[j]
	}
	for j := range Residues {
		next := Residues[(j+1)%8]
		if j == 7 {
			Gaps[j] = 30 + next - Residues[j]
		} else {
			Gaps[j] = next - Residues[j]
		}
	}
}

func gcd30(r uint8) uint8 {
	a, b := uint8(30), r
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// IndexOf returns the wheel index of value mod 30. value must be
// coprime to 30 (the caller is expected to know this structurally, e.g.
// because it is a prime greater than 5 or a previously-valid wheel
// position).
func IndexOf(value uint64) uint8 {
	idx := ResidueIndex[value%30]
	if idx < 0 {
		panic("wheel: value is not coprime to 30")
	}
	return uint8(idx)
}

// FirstMultipleAtOrAbove returns the smallest k >= min such that k is
// coprime to 30, together with its wheel index.
func FirstMultipleAtOrAbove(min uint64) (uint64, uint8) {
	base := (min / 30) * 30
	for j, r := range Residues {
		v := base + uint64(r)
		if v >= min {
			return v, uint8(j)
		}
	}
	// Wrap to the next block.
	return base + 30 + uint64(Residues[0]), 0
}
