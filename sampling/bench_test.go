package sampling_test

import (
	"testing"

	"github.com/katalvlaran/idsampler/idset"
	"github.com/katalvlaran/idsampler/sampling"
)

// benchmarkSample is a helper that draws size IDs from a pool of n using a
// fixed seed. It resets the timer before entering the loop and fails on
// unexpected errors.
func benchmarkSample(b *testing.B, n, size int) {
	eligible := make(idset.Set, n)
	for i := 0; i < n; i++ {
		eligible.Add(idset.ID(i))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := sampling.Sample(eligible, size, 42); err != nil {
			b.Fatalf("Sample failed: %v", err)
		}
	}
}

// BenchmarkSample_Small draws 10 from 1k.
func BenchmarkSample_Small(b *testing.B) {
	benchmarkSample(b, 1_000, 10)
}

// BenchmarkSample_Medium draws 100 from 100k.
func BenchmarkSample_Medium(b *testing.B) {
	benchmarkSample(b, 100_000, 100)
}

// BenchmarkSample_LargeDraw draws half of 100k.
func BenchmarkSample_LargeDraw(b *testing.B) {
	benchmarkSample(b, 100_000, 50_000)
}

// benchmarkRun measures the full pipeline on a pool of n with a tenth
// selected and a tenth excluded.
func benchmarkRun(b *testing.B, n int) {
	pool := make([]idset.ID, n)
	for i := range pool {
		pool[i] = idset.ID(i)
	}
	cur := pool[:n/10]
	exc := pool[n/10 : n/5]

	in := sampling.Inputs{FullPool: pool, CurrentSelections: cur, Excluded: exc}
	opts := sampling.DefaultOptions()
	opts.SampleSize = n / 100
	opts.Seed = 42

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := sampling.Run(in, opts); err != nil {
			b.Fatalf("Run failed: %v", err)
		}
	}
}

// BenchmarkRun_10k runs the full pipeline over a 10k pool.
func BenchmarkRun_10k(b *testing.B) {
	benchmarkRun(b, 10_000)
}

// BenchmarkRun_100k runs the full pipeline over a 100k pool.
func BenchmarkRun_100k(b *testing.B) {
	benchmarkRun(b, 100_000)
}
