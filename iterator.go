package segsieve

import (
	"math"

	"github.com/google/uuid"

	"github.com/pchuck/segsieve/internal/config"
	"github.com/pchuck/segsieve/internal/sieveerr"
)

// IteratorState is the iterator's lifecycle state: an iterator starts
// Uninitialized, becomes Initialized on the first call that establishes
// a position, then Forward or Backward depending on which direction was
// last driven. Skipto always resets to Initialized.
type IteratorState int

const (
	Uninitialized IteratorState = iota
	Initialized
	Forward
	Backward
)

func (s IteratorState) String() string {
	switch s {
	case Uninitialized:
		return "Uninitialized"
	case Initialized:
		return "Initialized"
	case Forward:
		return "Forward"
	case Backward:
		return "Backward"
	default:
		return "Unknown"
	}
}

// iteratorInitialCapacity is the starting buffer size, in primes, before
// any geometric growth.
const iteratorInitialCapacity = 256

// iteratorGrowthFactor is the per-refill buffer growth multiplier.
const iteratorGrowthFactor = 4

// Iterator walks primes forward or backward from a position. It keeps a
// single ascending buffer of consecutive primes and a cursor into it, so
// switching direction mid-walk always resumes from the prime adjacent to
// whichever value was last returned -- never from the sieved window's
// boundary. The buffer grows on whichever end the cursor runs off of,
// geometrically, and never discards elements already visited from the
// other direction. It is not safe for concurrent use; each instance
// should be owned by one goroutine.
type Iterator struct {
	id    uuid.UUID
	state IteratorState

	anchor uint64 // position from NewIterator/Skipto, consumed by whichever of Next/Prev is called first

	buf    []uint64 // ascending consecutive primes currently loaded, covering [loBound, hiBound]
	cursor int      // index in buf of the value last returned; -1 before buf exists

	loBound uint64 // lowest value buf could possibly represent
	hiBound uint64 // highest value buf could possibly represent

	windowSize uint64 // current refill window span, grows geometrically
	cfg        config.Config
}

// NewIterator creates an Iterator positioned at x: the first call to
// Next returns the smallest prime >= x, and the first call to Prev
// returns the largest prime <= x.
func NewIterator(x uint64) *Iterator {
	return &Iterator{
		id:         uuid.New(),
		state:      Uninitialized,
		anchor:     x,
		cursor:     -1,
		windowSize: iteratorInitialCapacity,
		cfg:        config.Current(),
	}
}

// ID returns the iterator's debug-correlation id, suitable for a log
// field when tracing concurrent callers each holding their own Iterator.
func (it *Iterator) ID() uuid.UUID { return it.id }

// State reports the iterator's current lifecycle state.
func (it *Iterator) State() IteratorState { return it.state }

// Skipto resets the iterator to a fresh window positioned so that the
// next Next() call returns the smallest prime >= x.
func (it *Iterator) Skipto(x uint64) {
	it.anchor = x
	it.buf = nil
	it.cursor = -1
	it.loBound = 0
	it.hiBound = 0
	it.windowSize = iteratorInitialCapacity
	it.state = Initialized
}

// Next returns the next prime in ascending order. The first call on a
// fresh iterator sieves forward from the anchor; every later call just
// advances the cursor, growing the buffer's high end when the cursor
// runs off it. ok is false only when the search would exceed the
// engine's representable range.
func (it *Iterator) Next() (p uint64, ok bool) {
	if it.state == Uninitialized {
		it.state = Initialized
	}
	if it.buf == nil {
		if !it.initForward() {
			return 0, false
		}
		it.cursor = 0
		it.state = Forward
		return it.buf[it.cursor], true
	}
	if it.cursor+1 >= len(it.buf) {
		if !it.growRight() {
			return 0, false
		}
	}
	it.cursor++
	it.state = Forward
	return it.buf[it.cursor], true
}

// Prev returns the previous prime in descending order. The first call
// on a fresh iterator sieves backward from the anchor; every later call
// just retreats the cursor, growing the buffer's low end when the
// cursor runs off it -- including immediately after one or more Next
// calls, where it returns the prime just below whatever was last
// returned, not a value re-derived from the sieved window's boundary.
// ok is false only when the search would go below the smallest
// representable prime.
func (it *Iterator) Prev() (p uint64, ok bool) {
	if it.state == Uninitialized {
		it.state = Initialized
	}
	if it.buf == nil {
		if !it.initBackward() {
			return 0, false
		}
		it.cursor = len(it.buf) - 1
		it.state = Backward
		return it.buf[it.cursor], true
	}
	if it.cursor-1 < 0 {
		if !it.growLeft() {
			return 0, false
		}
	}
	it.cursor--
	it.state = Backward
	return it.buf[it.cursor], true
}

// initForward sieves the first window, starting at the iterator's
// anchor, growing the window until it contains at least one prime.
func (it *Iterator) initForward() bool {
	lo := it.anchor
	if lo > sieveerr.MaxStop {
		return false
	}
	span := it.clampedWindow(lo)
	hi := lo + span
	if hi < lo || hi > sieveerr.MaxStop {
		hi = sieveerr.MaxStop
	}

	hint := densityHint(lo, hi)
	for {
		primes, err := collectOrderedRangeCap(lo, hi, hint, it.cfg)
		if err == nil && len(primes) > 0 {
			it.buf = primes
			it.loBound = lo
			it.hiBound = hi
			it.growWindow()
			return true
		}
		if hi == sieveerr.MaxStop {
			return false
		}
		hi = hi + span
		if hi < lo || hi > sieveerr.MaxStop {
			hi = sieveerr.MaxStop
		}
	}
}

// growRight extends buf past its current high end, appending the newly
// sieved primes, when Next's cursor has run off the buffer.
func (it *Iterator) growRight() bool {
	lo := it.hiBound + 1
	if lo <= it.hiBound || lo > sieveerr.MaxStop {
		return false
	}
	span := it.clampedWindow(lo)
	hi := lo + span
	if hi < lo || hi > sieveerr.MaxStop {
		hi = sieveerr.MaxStop
	}

	hint := densityHint(lo, hi)
	for {
		primes, err := collectOrderedRangeCap(lo, hi, hint, it.cfg)
		if err == nil && len(primes) > 0 {
			it.buf = append(it.buf, primes...)
			it.hiBound = hi
			it.growWindow()
			return true
		}
		if hi == sieveerr.MaxStop {
			return false
		}
		hi = hi + span
		if hi < lo || hi > sieveerr.MaxStop {
			hi = sieveerr.MaxStop
		}
	}
}

// initBackward sieves the first window, ending at the iterator's
// anchor, growing the window until it contains at least one prime.
func (it *Iterator) initBackward() bool {
	hi := it.anchor
	if hi < 2 {
		return false
	}
	span := it.clampedWindow(hi)

	for {
		var lo uint64
		if span >= hi-1 {
			lo = 2
		} else {
			lo = hi - span
		}

		primes, err := collectOrderedRangeCap(lo, hi, densityHint(lo, hi), it.cfg)
		if err == nil && len(primes) > 0 {
			it.buf = primes
			it.loBound = lo
			it.hiBound = hi
			it.growWindow()
			return true
		}
		if lo == 2 {
			return false
		}
		span *= iteratorGrowthFactor
	}
}

// growLeft extends buf before its current low end, prepending the newly
// sieved primes and shifting the cursor so it still points at the same
// element, when Prev's cursor has run off the buffer.
func (it *Iterator) growLeft() bool {
	if it.loBound == 0 {
		return false
	}
	hi := it.loBound - 1
	if hi < 2 {
		return false
	}
	span := it.clampedWindow(hi)

	for {
		var lo uint64
		if span >= hi-1 {
			lo = 2
		} else {
			lo = hi - span
		}

		primes, err := collectOrderedRangeCap(lo, hi, densityHint(lo, hi), it.cfg)
		if err == nil && len(primes) > 0 {
			it.buf = append(primes, it.buf...)
			it.cursor += len(primes)
			it.loBound = lo
			it.growWindow()
			return true
		}
		if lo == 2 {
			return false
		}
		span *= iteratorGrowthFactor
	}
}

// clampedWindow returns the current window span, in integer values:
// windowSize 30-wide blocks, capped at max(sqrt(position)/30,
// iteratorInitialCapacity) blocks, bounding how much memory one refill
// can allocate.
func (it *Iterator) clampedWindow(position uint64) uint64 {
	maxBlocks := isqrt(position) / 30
	if maxBlocks < iteratorInitialCapacity {
		maxBlocks = iteratorInitialCapacity
	}
	span := it.windowSize * 30 // windowSize counts 30-wide blocks; window is in integer span
	if span > maxBlocks*30 {
		span = maxBlocks * 30
	}
	return span
}

// growWindow multiplies the iterator's buffer-size hint by the growth
// factor for the next refill.
func (it *Iterator) growWindow() {
	it.windowSize *= iteratorGrowthFactor
}

// estimatedDensity returns the classic n/log(n) prime-density estimate,
// used only to size the initial buffer capacity hint.
func estimatedDensity(n uint64) uint64 {
	if n < 16 {
		return iteratorInitialCapacity
	}
	d := float64(n) / math.Log(float64(n))
	return uint64(d)
}

// densityHint estimates how many primes lie in [lo, hi], for sizing a
// buffer preallocation; never below iteratorInitialCapacity.
func densityHint(lo, hi uint64) uint64 {
	a, b := estimatedDensity(lo), estimatedDensity(hi)
	if b <= a {
		return iteratorInitialCapacity
	}
	return b - a
}

// collectOrderedRangeCap is collectOrderedRange with a preallocation
// hint for the output slice, sized from densityHint, and pinned to the
// sieve-size snapshot the iterator captured at creation time so a
// process-wide SetSieveSize call mid-iteration can't shift its window
// math underneath it.
func collectOrderedRangeCap(lo, hi uint64, capHint uint64, cfg config.Config) ([]uint64, error) {
	out := make([]uint64, 0, capHint)
	_, err := Dispatch(lo, hi, Options{
		NumThreads:   1,
		SieveSizeKiB: cfg.SegmentBytes / 1024,
		OnPrime:      func(p uint64) { out = append(out, p) },
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
