package genprimes

// base16 holds every prime up to 2^16 = 65536, i.e. up to stop^(1/4) for
// the largest stop this engine supports (stop <= 2^64 implies
// sqrt(sqrt(stop)) <= 2^16). It is built once at init by straightforward
// trial division against the primes found so far -- this range is small
// enough that a sieve would be overkill.
var base16 []uint32

const base16Limit = 1 << 16

func init() {
	base16 = make([]uint32, 0, 6600)
	for n := uint32(2); n <= base16Limit; n++ {
		isPrime := true
		for _, p := range base16 {
			if p*p > n {
				break
			}
			if n%p == 0 {
				isPrime = false
				break
			}
		}
		if isPrime {
			base16 = append(base16, n)
		}
	}
}
