package segsieve

import (
	"fmt"
	"runtime"
	"testing"

	"github.com/pchuck/segsieve/internal/config"
)

func BenchmarkDispatchCountPrimes(b *testing.B) {
	stops := []uint64{100000, 1000000, 10000000}

	for _, stop := range stops {
		b.Run(fmt.Sprintf("stop=%d", stop), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(stop))
			for i := 0; i < b.N; i++ {
				if _, err := Dispatch(0, stop, Options{NumThreads: 1}); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkDispatchSegmentSizes(b *testing.B) {
	const stop = uint64(10000000)
	sieveSizes := []int{8, 64, 512, 4096}

	for _, kib := range sieveSizes {
		b.Run(fmt.Sprintf("sieveSizeKiB=%d", kib), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(stop))
			for i := 0; i < b.N; i++ {
				if _, err := Dispatch(0, stop, Options{NumThreads: 1, SieveSizeKiB: kib}); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkDispatchParallel(b *testing.B) {
	const stop = uint64(100000000)
	workerCounts := []int{2, 4, 8}

	for _, workers := range workerCounts {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(stop))
			for i := 0; i < b.N; i++ {
				if _, err := Dispatch(0, stop, Options{NumThreads: workers}); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkDispatchCountTuplets(b *testing.B) {
	const stop = uint64(10000000)
	b.ReportAllocs()
	b.SetBytes(int64(stop))
	for i := 0; i < b.N; i++ {
		if _, err := Dispatch(0, stop, Options{NumThreads: 1}); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCompareParallelism(b *testing.B) {
	const stop = uint64(100000000)

	b.Run("Sequential", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			if _, err := Dispatch(0, stop, Options{NumThreads: 1}); err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run("Parallel-NumCPU", func(b *testing.B) {
		b.ReportAllocs()
		workers := config.ClampThreads(runtime.NumCPU())
		for i := 0; i < b.N; i++ {
			if _, err := Dispatch(0, stop, Options{NumThreads: workers}); err != nil {
				b.Fatal(err)
			}
		}
	})
}
