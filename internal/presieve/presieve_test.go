package presieve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pchuck/segsieve/internal/wheel"
)

// wantCleared independently recomputes, for value v, whether the
// pre-sieve should have cleared its bit: v is a composite multiple of
// one of Primes (at or above that prime squared).
func wantCleared(v uint64) bool {
	for _, p := range Primes {
		if v >= p*p && v%p == 0 {
			return true
		}
	}
	return false
}

func TestCycleMatchesIndependentComputation(t *testing.T) {
	for block := uint64(0); block < CycleBytes; block++ {
		for j, r := range wheel.Residues {
			v := block*30 + uint64(r)
			want := wantCleared(v)
			got := Cycle[block]&wheel.BitMask[j] == 0
			assert.Equalf(t, want, got, "value %d (block %d, bit %d)", v, block, j)
		}
	}
}

func TestCyclePreservesThePrimesThemselves(t *testing.T) {
	for _, p := range Primes {
		block := p / 30
		bit := wheel.IndexOf(p)
		cleared := Cycle[block]&wheel.BitMask[bit] == 0
		assert.Falsef(t, cleared, "prime %d must not be cleared by its own presieve entry", p)
	}
}

func TestCopyTilesTheCycle(t *testing.T) {
	buf := make([]byte, CycleBytes*2+5)
	Copy(buf, 0, uint64(len(buf)))
	for i, b := range buf {
		require.Equalf(t, Cycle[uint64(i)%CycleBytes], b, "offset %d", i)
	}
}

func TestCopyRespectsNonzeroAlignment(t *testing.T) {
	const segLowBlock = 17
	buf := make([]byte, 40)
	Copy(buf, segLowBlock, uint64(len(buf)))
	for i, b := range buf {
		want := Cycle[(segLowBlock+uint64(i))%CycleBytes]
		require.Equalf(t, want, b, "offset %d", i)
	}
}
