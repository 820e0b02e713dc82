package segsieve

import "github.com/pchuck/segsieve/internal/config"

// SetSieveSize sets the process-wide default segment size, in KiB,
// clamped to a power of two within [8, 4096].
func SetSieveSize(kib int) {
	config.SetSieveSizeKiB(kib)
}

// GetSieveSize returns the process-wide default segment size, in KiB.
func GetSieveSize() int {
	return config.GetSieveSizeKiB()
}

// SetNumThreads sets the process-wide default worker count, clamped to
// [1, 1024] (config.MaxThreads); the upper bound does not depend on the
// hardware thread count.
func SetNumThreads(n int) {
	config.SetNumThreads(n)
}

// GetNumThreads returns the process-wide default worker count.
func GetNumThreads() int {
	return config.GetNumThreads()
}
