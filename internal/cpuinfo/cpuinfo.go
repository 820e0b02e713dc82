// Package cpuinfo probes CPU topology -- L1 data-cache size, L2 cache
// size/sharing and threads-per-core -- wrapping
// github.com/klauspost/cpuid/v2. Probing never errors into the core:
// any missing reading silently falls back to a documented default.
package cpuinfo

import "github.com/klauspost/cpuid/v2"

// Info is the CPU-info contract's read-only output.
type Info struct {
	L1DataBytes    int
	L2Bytes        int
	L2Private      bool
	ThreadsPerCore int
}

// defaultInfo is returned whenever cpuid has nothing useful to report:
// 32 KiB L1, no L2.
var defaultInfo = Info{
	L1DataBytes:    32 * 1024,
	L2Bytes:        0,
	L2Private:      false,
	ThreadsPerCore: 1,
}

// Probe reads CPU topology via cpuid.CPU, falling back to defaultInfo
// field-by-field for anything cpuid could not determine.
func Probe() Info {
	info := defaultInfo

	if l1 := cpuid.CPU.Cache.L1D; l1 > 0 {
		info.L1DataBytes = l1
	}
	if l2 := cpuid.CPU.Cache.L2; l2 > 0 {
		info.L2Bytes = l2
		// cpuid does not expose private/shared L2 directly on every
		// platform; treat a present, nonzero L2 as private unless the
		// topology reports more logical threads per core than one,
		// which on most consumer/server parts indicates a shared L2
		// between SMT siblings rather than genuinely private cache per
		// thread.
		info.L2Private = cpuid.CPU.LogicalCores <= cpuid.CPU.PhysicalCores
	}
	if tpc := threadsPerCore(); tpc > 0 {
		info.ThreadsPerCore = tpc
	}

	return info
}

func threadsPerCore() int {
	if cpuid.CPU.PhysicalCores <= 0 {
		return 0
	}
	tpc := cpuid.CPU.LogicalCores / cpuid.CPU.PhysicalCores
	if tpc < 1 {
		return 0
	}
	return tpc
}
