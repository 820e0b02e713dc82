package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampSieveSizeBytesRoundsDownToPowerOfTwo(t *testing.T) {
	assert.Equal(t, 8*1024, ClampSieveSizeBytes(8*1024))
	assert.Equal(t, 8*1024, ClampSieveSizeBytes(12*1024)) // rounds down, not up
	assert.Equal(t, 16*1024, ClampSieveSizeBytes(16*1024))
	assert.Equal(t, 32*1024, ClampSieveSizeBytes(63*1024))
}

func TestClampSieveSizeBytesEnforcesBounds(t *testing.T) {
	assert.Equal(t, MinSieveSizeKiB*1024, ClampSieveSizeBytes(1))
	assert.Equal(t, MaxSieveSizeKiB*1024, ClampSieveSizeBytes(1<<30))
}

func TestClampThreadsEnforcesBounds(t *testing.T) {
	assert.Equal(t, 1, ClampThreads(0))
	assert.Equal(t, 1, ClampThreads(-5))
	assert.Equal(t, 4, ClampThreads(4))
	assert.Equal(t, MaxThreads, ClampThreads(MaxThreads+1))
}

func TestSetAndGetSieveSizeKiBRoundTrip(t *testing.T) {
	orig := Current()
	defer cell.Store(&orig)

	SetSieveSizeKiB(64)
	assert.Equal(t, 64, GetSieveSizeKiB())
	assert.Equal(t, 64*1024, Current().SegmentBytes)
}

func TestSetSieveSizeKiBClampsToPowerOfTwo(t *testing.T) {
	orig := Current()
	defer cell.Store(&orig)

	SetSieveSizeKiB(100) // 100 KiB is not a power of two
	assert.Equal(t, 64, GetSieveSizeKiB())
}

func TestSetAndGetNumThreadsRoundTrip(t *testing.T) {
	orig := Current()
	defer cell.Store(&orig)

	SetNumThreads(7)
	assert.Equal(t, 7, GetNumThreads())
}

func TestSetNumThreadsClamps(t *testing.T) {
	orig := Current()
	defer cell.Store(&orig)

	SetNumThreads(-3)
	assert.Equal(t, 1, GetNumThreads())

	SetNumThreads(MaxThreads * 10)
	assert.Equal(t, MaxThreads, GetNumThreads())
}

func TestSetSieveSizeKiBPreservesNumThreads(t *testing.T) {
	orig := Current()
	defer cell.Store(&orig)

	SetNumThreads(3)
	SetSieveSizeKiB(16)
	assert.Equal(t, 3, Current().NumThreads)
}

func TestDefaultProducesClampedConfig(t *testing.T) {
	cfg := Default()
	assert.Equal(t, ClampSieveSizeBytes(cfg.SegmentBytes), cfg.SegmentBytes)
	assert.Equal(t, ClampThreads(cfg.NumThreads), cfg.NumThreads)
	assert.GreaterOrEqual(t, cfg.NumThreads, 1)
}
