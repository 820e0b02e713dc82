package segsieve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pchuck/segsieve/internal/sieveerr"
)

// Independently verified primes around 100: ..., 89, 97, 101, 103, 107,
// 109, 113, ...

func TestNthPrimeZeroIsSmallestAtOrAboveStart(t *testing.T) {
	p, err := NthPrime(0, 100)
	require.NoError(t, err)
	assert.Equal(t, uint64(101), p)

	// start itself prime: inclusive.
	p, err = NthPrime(0, 101)
	require.NoError(t, err)
	assert.Equal(t, uint64(101), p)
}

func TestNthPrimePositiveCountsForward(t *testing.T) {
	p, err := NthPrime(1, 97)
	require.NoError(t, err)
	assert.Equal(t, uint64(101), p)

	p, err = NthPrime(5, 97)
	require.NoError(t, err)
	assert.Equal(t, uint64(113), p)
}

func TestNthPrimeNegativeCountsBackward(t *testing.T) {
	p, err := NthPrime(-1, 101)
	require.NoError(t, err)
	assert.Equal(t, uint64(97), p)

	p, err = NthPrime(-3, 101)
	require.NoError(t, err)
	assert.Equal(t, uint64(83), p)
}

func TestNthPrimeBackwardAtLowerBoundErrors(t *testing.T) {
	_, err := NthPrime(-1, 2)
	assert.ErrorIs(t, err, sieveerr.ErrNthPrimeOutOfRange)

	_, err = NthPrime(-1, 0)
	assert.ErrorIs(t, err, sieveerr.ErrNthPrimeOutOfRange)
}

func TestNthPrimeForwardBeyondMaxStopErrors(t *testing.T) {
	_, err := NthPrime(1, sieveerr.MaxStop)
	assert.ErrorIs(t, err, sieveerr.ErrNthPrimeOutOfRange)
}

func TestEstimateSpanGrowsWithCount(t *testing.T) {
	small := estimateSpan(1000, 1)
	large := estimateSpan(1000, 1000)
	assert.Less(t, small, large)
	assert.GreaterOrEqual(t, small, uint64(64)) // floor enforced
}
