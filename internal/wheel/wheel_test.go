package wheel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResiduesAreCoprimeTo30(t *testing.T) {
	want := [8]uint8{1, 7, 11, 13, 17, 19, 23, 29}
	assert.Equal(t, want, Residues)
}

func TestGapsSumToOneWheelRevolution(t *testing.T) {
	var sum uint8
	for _, g := range Gaps {
		sum += g
	}
	assert.Equal(t, uint8(30), sum)
}

func TestResidueIndexRoundTrip(t *testing.T) {
	for j, r := range Residues {
		require.Equal(t, int8(j), ResidueIndex[r])
	}
}

func TestResidueIndexRejectsNonCoprime(t *testing.T) {
	for _, r := range []uint8{0, 2, 3, 5, 6, 9, 10, 15, 21, 25} {
		assert.Equal(t, int8(-1), ResidueIndex[r])
	}
}

func TestBitMaskAndClearMaskAreComplementary(t *testing.T) {
	for j := range BitMask {
		assert.Equal(t, byte(0xff), BitMask[j]|ClearMask[j])
		assert.Equal(t, byte(0), BitMask[j]&ClearMask[j])
	}
}

func TestIndexOfMatchesResidueIndex(t *testing.T) {
	assert.Equal(t, uint8(0), IndexOf(1))
	assert.Equal(t, uint8(1), IndexOf(7))
	assert.Equal(t, uint8(7), IndexOf(29))
	assert.Equal(t, uint8(0), IndexOf(31)) // 31 % 30 == 1
}

func TestIndexOfPanicsOnNonCoprime(t *testing.T) {
	assert.Panics(t, func() { IndexOf(6) })
}

func TestFirstMultipleAtOrAbove(t *testing.T) {
	tests := []struct {
		min      uint64
		wantVal  uint64
		wantWhIx uint8
	}{
		{0, 1, 0},
		{1, 1, 0},
		{2, 7, 1},
		{6, 7, 1},
		{29, 29, 7},
		{30, 31, 0},
		{31, 31, 0},
	}
	for _, tt := range tests {
		v, j := FirstMultipleAtOrAbove(tt.min)
		assert.Equalf(t, tt.wantVal, v, "min=%d", tt.min)
		assert.Equalf(t, tt.wantWhIx, j, "min=%d", tt.min)
	}
}
