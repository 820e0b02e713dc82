// Package bucket implements the big-prime bucket scheduler (component
// E): primes larger than one segment hit at most once every few
// segments, so instead of scanning every big prime on every segment,
// each prime's descriptor is parked in a bucket belonging to the
// segment index of its next hit, and rescheduled after it fires.
package bucket

import (
	"sync"

	"github.com/pchuck/segsieve/internal/wheel"
)

// Capacity is the fixed number of descriptors per bucket.
const Capacity = 1024

// Descriptor is a big-prime sieving-prime descriptor, identical in
// shape to cross.Descriptor (kept distinct to avoid an import cycle and
// because buckets additionally need pool-link plumbing).
type Descriptor struct {
	P    uint64
	Next uint64
	J    uint8
}

func (d *Descriptor) advance() (block uint64, bit uint8) {
	block = d.Next / 30
	bit = wheel.IndexOf(d.Next)
	d.Next += d.P * uint64(wheel.Gaps[d.J])
	d.J = (d.J + 1) & 7
	return
}

// bucket is a fixed-capacity array of descriptors plus a link to the
// next (older) bucket in the same segment's list.
type bucket struct {
	items [Capacity]Descriptor
	n     int
	next  *bucket
}

// Pool recycles empty buckets across a single worker's run. Buckets are
// never shared across workers (section 5: "the bucket arena is
// per-worker").
type Pool struct {
	sync.Pool
}

// NewPool returns a fresh, empty bucket pool.
func NewPool() *Pool {
	p := &Pool{}
	p.Pool.New = func() interface{} { return &bucket{} }
	return p
}

func (p *Pool) get() *bucket {
	b := p.Pool.Get().(*bucket)
	b.n = 0
	b.next = nil
	return b
}

func (p *Pool) put(b *bucket) {
	p.Pool.Put(b)
}

// Scheduler owns one list of buckets per segment index, mod N lists.
type Scheduler struct {
	pool      *Pool
	lists     []*bucket
	n         uint64 // number of lists, a power of two
	segBlocks uint64 // segment size in bytes/blocks
	stopBlock uint64 // highest block index in scope; past it, descriptors retire
}

// NewScheduler builds a scheduler sized for segments of segBlocks bytes
// across an interval whose highest relevant block is stopBlock. N is
// chosen as next_pow2(ceil(sqrt(stopBlock*30)/segBlocks)); the exact
// formula is a tuning choice and affects performance only, never
// correctness.
func NewScheduler(pool *Pool, segBlocks, stopBlock uint64) *Scheduler {
	n := estimateListCount(segBlocks, stopBlock)
	return &Scheduler{
		pool:      pool,
		lists:     make([]*bucket, n),
		n:         uint64(n),
		segBlocks: segBlocks,
		stopBlock: stopBlock,
	}
}

func estimateListCount(segBlocks, stopBlock uint64) int {
	if segBlocks == 0 {
		return 1
	}
	sqrtStop := isqrt(stopBlock*30 + 30)
	raw := (sqrtStop + segBlocks - 1) / segBlocks
	if raw < 1 {
		raw = 1
	}
	return int(nextPow2(raw))
}

func isqrt(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	x := n
	y := (x + 1) / 2
	for y < x {
		x = y
		y = (x + n/x) / 2
	}
	return x
}

func nextPow2(n uint64) uint64 {
	p := uint64(1)
	for p < n {
		p <<= 1
	}
	return p
}

func (s *Scheduler) segIndex(block uint64) uint64 {
	return block / s.segBlocks
}

// Add schedules prime p, whose first multiple to cross is the smallest
// coprime-to-30 multiple >= min, into the list for its segment.
func (s *Scheduler) Add(p, min uint64) {
	if min < p*p {
		min = p * p
	}
	k, j := wheel.FirstMultipleAtOrAbove(ceilDiv(min, p))
	d := Descriptor{P: p, Next: p * k, J: j}
	s.schedule(d)
}

func ceilDiv(a, b uint64) uint64 {
	return (a + b - 1) / b
}

func (s *Scheduler) schedule(d Descriptor) {
	if d.Next/30 > s.stopBlock {
		return // retired: next hit is beyond the scope of this run
	}
	idx := s.segIndex(d.Next/30) % s.n
	head := s.lists[idx]
	if head == nil || head.n == Capacity {
		nb := s.pool.get()
		nb.next = head
		s.lists[idx] = nb
		head = nb
	}
	head.items[head.n] = d
	head.n++
}

// Process drains segment segIndex's bucket list: for each descriptor,
// clears its bit in buf, advances it to the next coprime-to-30
// multiple, and reschedules it into the list for that next segment (or
// retires it if that next multiple is beyond stopBlock).
func (s *Scheduler) Process(segIndex, segLowBlock uint64, buf []byte) {
	idx := segIndex % s.n
	b := s.lists[idx]
	s.lists[idx] = nil
	for b != nil {
		for i := 0; i < b.n; i++ {
			d := &b.items[i]
			block, bit := d.advance()
			buf[block-segLowBlock] &= wheel.ClearMask[bit]
			s.schedule(*d)
		}
		next := b.next
		s.pool.put(b)
		b = next
	}
}
