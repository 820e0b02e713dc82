package config

import "runtime"

// numCPU reports the number of logical CPUs usable by the current
// process, the source of Default's thread count (cpuinfo's
// threads-per-core reading is not used for it).
func numCPU() int {
	if n := runtime.NumCPU(); n > 0 {
		return n
	}
	return 1
}
