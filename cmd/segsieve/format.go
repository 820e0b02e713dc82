package main

import "github.com/pchuck/segsieve/internal/obsprogress"

// formatCount and formatRate defer to internal/obsprogress so the CLI's
// number rendering matches the progress bar's, instead of maintaining a
// second copy of the digit-grouping loop.
func formatCount(n uint64) string    { return obsprogress.FormatCount(int64(n)) }
func formatRate(rate float64) string { return obsprogress.FormatRate(rate) }
