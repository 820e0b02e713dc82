// The parallel dispatcher. Splits [max(start,7), stop] into contiguous
// sub-intervals, one per worker, and runs each through its own
// genprimes+erat+scan stack with no shared mutable state beyond the
// caller's Progress, OnPrime and OnTuplet callbacks.
package segsieve

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/pchuck/segsieve/internal/config"
	"github.com/pchuck/segsieve/internal/obslog"
	"github.com/pchuck/segsieve/internal/scan"
	"github.com/pchuck/segsieve/internal/sieveerr"
	"golang.org/x/sync/errgroup"
)

// Counts is the fixed-size counts vector: total primes plus k-tuplets
// for k in 2..7 (Tuplets[k-2]).
type Counts struct {
	Primes  uint64
	Tuplets [6]uint64
}

func (c *Counts) add(other Counts) {
	c.Primes += other.Primes
	for i := range c.Tuplets {
		c.Tuplets[i] += other.Tuplets[i]
	}
}

// Options configures one dispatch call. The zero value is usable: it
// sieves with process-wide defaults, collects counts only, and never
// aborts.
type Options struct {
	// NumThreads overrides the process-wide default thread count for
	// this call (clamped to [1, config.MaxThreads], i.e. [1, 1024]; the
	// bound does not depend on the hardware thread count); 0 uses the
	// default.
	NumThreads int
	// SieveSizeKiB overrides the process-wide default segment size for
	// this call; 0 uses the default.
	SieveSizeKiB int
	// Abort, if non-nil, is polled at each segment boundary; when it
	// becomes true, workers exit cleanly with partial state discarded.
	Abort *atomic.Bool
	// Progress, if non-nil, is called once per segment per worker with
	// the number of newly completed segments (always 1).
	Progress func(delta int)
	// OnPrime, if non-nil, is called for every prime found, in
	// ascending order within each worker but with no ordering guarantee
	// across workers.
	OnPrime func(p uint64)
	// OnTuplet, if non-nil, is called for every k-tuplet found, with
	// members in ascending order.
	OnTuplet func(k int, members []uint64)
	// Debug sets this call's logger to debug level. The dispatcher itself
	// writes only one error-level entry, when a worker fails.
	Debug bool
}

func (o Options) resolve() config.Config {
	cfg := config.Current()
	if o.NumThreads > 0 {
		cfg.NumThreads = config.ClampThreads(o.NumThreads)
	}
	if o.SieveSizeKiB > 0 {
		cfg.SegmentBytes = config.ClampSieveSizeBytes(o.SieveSizeKiB * 1024)
	}
	return cfg
}

// Dispatch runs the full count/print/tuplet pipeline over [start, stop]
// and returns the merged counts. It is the implementation behind
// count_primes, count_tuplets_k, print_primes and print_tuplets_k.
func Dispatch(start, stop uint64, opts Options) (Counts, error) {
	if err := sieveerr.CheckRange(start, stop); err != nil {
		return Counts{}, err
	}

	cfg := opts.resolve()
	logger := obslog.New(opts.Debug)
	defer logger.Sync() //nolint:errcheck

	var total Counts

	// Small primes 2, 3, 5 and the tuplets that touch them never appear
	// in the wheel-sieved output; handle them once, up front, regardless
	// of worker count.
	for _, p := range scan.SmallPrimes {
		if p >= start && p <= stop {
			total.Primes++
			if opts.OnPrime != nil {
				opts.OnPrime(p)
			}
		}
	}
	for k, tuplets := range scan.SmallTuplets {
		for _, members := range tuplets {
			if members[0] >= start && members[len(members)-1] <= stop {
				total.Tuplets[k-2]++
				if opts.OnTuplet != nil {
					opts.OnTuplet(k, members)
				}
			}
		}
	}

	effStart := start
	if effStart < 7 {
		effStart = 7
	}
	if effStart > stop {
		return total, nil
	}

	numThreads := cfg.NumThreads
	bounds := splitInterval(effStart, stop, numThreads)

	group, _ := errgroup.WithContext(context.Background())
	results := make([]Counts, len(bounds))
	errs := &obslog.Errors{}
	var errsMu sync.Mutex

	for i, b := range bounds {
		i, b := i, b
		group.Go(func() error {
			scanStop := b.stop
			if i != len(bounds)-1 && scanStop+tupletLookahead <= stop {
				scanStop = b.stop + tupletLookahead
			} else if i != len(bounds)-1 {
				scanStop = stop
			}

			tup := scan.NewTuplets(b.start, b.stop, opts.OnTuplet)
			c := &results[i]

			onPrime := func(p uint64) {
				c.Primes++
				if opts.OnPrime != nil {
					opts.OnPrime(p)
				}
			}
			abort := func() bool {
				return opts.Abort != nil && opts.Abort.Load()
			}
			onSegment := func() {
				if opts.Progress != nil {
					opts.Progress(1)
				}
			}

			err := sieveInterval(cfg, b.start, scanStop, b.stop, onPrime, tup, abort, onSegment)
			c.Tuplets = tup.Counts
			if err != nil {
				errsMu.Lock()
				errs.Add(err)
				errsMu.Unlock()
				return err
			}
			return nil
		})
	}

	waitErr := group.Wait()
	for i := range results {
		total.add(results[i])
	}
	if waitErr != nil {
		logger.Errorw("dispatch: worker error", "err", errs.Combined())
		return total, sieveerr.Wrap(errs.First(), "dispatch")
	}
	return total, nil
}

type bound struct{ start, stop uint64 }

// splitInterval divides [lo, hi] into up to n contiguous, roughly equal
// sub-intervals.
func splitInterval(lo, hi uint64, n int) []bound {
	if n < 1 {
		n = 1
	}
	span := hi - lo + 1
	if uint64(n) > span {
		n = int(span)
	}
	if n < 1 {
		n = 1
	}
	chunk := span / uint64(n)
	rem := span % uint64(n)

	bounds := make([]bound, 0, n)
	cur := lo
	for i := 0; i < n; i++ {
		size := chunk
		if uint64(i) < rem {
			size++
		}
		if size == 0 {
			continue
		}
		b := bound{start: cur, stop: cur + size - 1}
		bounds = append(bounds, b)
		cur = b.stop + 1
	}
	return bounds
}
