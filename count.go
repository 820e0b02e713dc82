package segsieve

// CountPrimes returns the number of primes p with start <= p <= stop.
func CountPrimes(start, stop uint64) (uint64, error) {
	c, err := Dispatch(start, stop, Options{})
	return c.Primes, err
}

// CountPrimesOpts is CountPrimes with dispatcher options (thread count,
// sieve size, abort flag, progress callback).
func CountPrimesOpts(start, stop uint64, opts Options) (uint64, error) {
	c, err := Dispatch(start, stop, opts)
	return c.Primes, err
}

// CountTupletK returns the number of k-tuplets (k in 2..7) fully
// contained in [start, stop].
func CountTupletK(start, stop uint64, k int) (uint64, error) {
	if k < 2 || k > 7 {
		panic("segsieve: CountTupletK: k must be in 2..7")
	}
	c, err := Dispatch(start, stop, Options{})
	return c.Tuplets[k-2], err
}
