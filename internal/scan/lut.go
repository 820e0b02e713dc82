package scan

import "github.com/pchuck/segsieve/internal/wheel"

// offsets[b] lists, for each possible sieve byte value b, the wheel
// residues (not indices) still set in b. Built once at init from
// wheel.Residues/BitMask so the 256-entry bit-pattern-to-offsets table
// stays in lock-step with the wheel package.
var offsets [256][]uint8

func init() {
	for b := 0; b < 256; b++ {
		var list []uint8
		for j, r := range wheel.Residues {
			if byte(b)&wheel.BitMask[j] != 0 {
				list = append(list, r)
			}
		}
		offsets[b] = list
	}
}
