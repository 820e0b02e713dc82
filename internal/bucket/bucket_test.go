package bucket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pchuck/segsieve/internal/wheel"
)

// runScheduler drives a Scheduler for every prime in primes across
// segments [0, numSegments) of segBlocks blocks each, and returns, for
// every integer value touched, whether its bit was ever cleared.
func runScheduler(t *testing.T, primes []uint64, segBlocks uint64, numSegments uint64) map[uint64]bool {
	t.Helper()
	pool := NewPool()
	stopBlock := numSegments * segBlocks
	sched := NewScheduler(pool, segBlocks, stopBlock)
	for _, p := range primes {
		sched.Add(p, 0)
	}

	cleared := make(map[uint64]bool)
	for segIndex := uint64(0); segIndex < numSegments; segIndex++ {
		segLowBlock := segIndex * segBlocks
		buf := make([]byte, segBlocks)
		for i := range buf {
			buf[i] = 0xff
		}
		sched.Process(segIndex, segLowBlock, buf)
		for blk := uint64(0); blk < segBlocks; blk++ {
			for j, r := range wheel.Residues {
				v := (segLowBlock+blk)*30 + uint64(r)
				if buf[blk]&wheel.BitMask[j] == 0 {
					cleared[v] = true
				}
			}
		}
	}
	return cleared
}

func wantClearedBy(v uint64, primes []uint64) bool {
	for _, p := range primes {
		if v >= p*p && v%p == 0 {
			return true
		}
	}
	return false
}

func TestSchedulerClearsExactCompositesSingleLargePrime(t *testing.T) {
	primes := []uint64{97}
	const segBlocks = 4
	const numSegments = 400 // covers integers up to 400*4*30 = 48000, well past 97*97=9409
	cleared := runScheduler(t, primes, segBlocks, numSegments)

	total := uint64(numSegments) * segBlocks * 30
	for v := uint64(0); v < total; v++ {
		if wheel.ResidueIndex[v%30] < 0 {
			continue
		}
		want := wantClearedBy(v, primes)
		assert.Equalf(t, want, cleared[v], "value %d", v)
	}
}

func TestSchedulerClearsExactCompositesMultiplePrimes(t *testing.T) {
	primes := []uint64{37, 41, 43, 53}
	const segBlocks = 2
	const numSegments = 600
	cleared := runScheduler(t, primes, segBlocks, numSegments)

	total := uint64(numSegments) * segBlocks * 30
	for v := uint64(0); v < total; v++ {
		if wheel.ResidueIndex[v%30] < 0 {
			continue
		}
		want := wantClearedBy(v, primes)
		assert.Equalf(t, want, cleared[v], "value %d", v)
	}
}

func TestEstimateListCountIsPowerOfTwo(t *testing.T) {
	for _, tt := range []struct{ segBlocks, stopBlock uint64 }{
		{1, 1000}, {4, 100000}, {100, 7}, {0, 1000},
	} {
		n := estimateListCount(tt.segBlocks, tt.stopBlock)
		require.Greater(t, n, 0)
		assert.Equal(t, n&(n-1), 0, "segBlocks=%d stopBlock=%d -> n=%d not a power of two", tt.segBlocks, tt.stopBlock, n)
	}
}

func TestIsqrtExactAndNear(t *testing.T) {
	for n := uint64(0); n < 2000; n++ {
		r := isqrt(n)
		assert.LessOrEqualf(t, r*r, n, "n=%d", n)
		assert.Greaterf(t, (r+1)*(r+1), n, "n=%d", n)
	}
}

func TestNextPow2(t *testing.T) {
	assert.Equal(t, uint64(1), nextPow2(0))
	assert.Equal(t, uint64(1), nextPow2(1))
	assert.Equal(t, uint64(2), nextPow2(2))
	assert.Equal(t, uint64(4), nextPow2(3))
	assert.Equal(t, uint64(8), nextPow2(5))
	assert.Equal(t, uint64(1024), nextPow2(1024))
}

func TestPoolRecyclesBuckets(t *testing.T) {
	pool := NewPool()
	b1 := pool.get()
	b1.n = 5
	pool.put(b1)
	b2 := pool.get()
	assert.Equal(t, 0, b2.n)
	assert.Nil(t, b2.next)
}
