// Package sampling_test validates the sampler's determinism, shortfall and
// uniformity contracts.
package sampling_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/idsampler/idset"
	"github.com/katalvlaran/idsampler/sampling"
)

// TestSample_SeedDeterminism checks that repeated draws with the same seed
// from the same pool produce identical sampled sets, bit for bit.
func TestSample_SeedDeterminism(t *testing.T) {
	eligible := idset.New(4, 5, 6, 10, 20, 30, 40)

	var base []idset.ID
	for run := 0; run < 3; run++ {
		out, err := sampling.Sample(eligible, 3, 42)
		require.NoError(t, err)
		require.Equal(t, 3, out.Sampled.Len())
		assert.Equal(t, int64(42), out.SeedUsed)

		if base == nil {
			base = out.Sampled.Sorted()
			continue
		}
		assert.Equal(t, base, out.Sampled.Sorted(), "run %d diverged from the first", run)
	}
}

// TestSample_DifferentSeedsDiverge draws with many distinct seeds and
// requires at least two distinct outcomes; a sampler ignoring its seed
// would fail.
func TestSample_DifferentSeedsDiverge(t *testing.T) {
	eligible := idset.New(1, 2, 3, 4, 5, 6, 7, 8, 9, 10)

	outcomes := make(map[string]struct{})
	for seed := int64(1); seed <= 16; seed++ {
		out, err := sampling.Sample(eligible, 3, seed)
		require.NoError(t, err)
		outcomes[subsetKey(out.Sampled)] = struct{}{}
	}
	assert.Greater(t, len(outcomes), 1, "16 seeds should not all yield the same subset")
}

// TestSample_ZeroSeedIsReplayable verifies the seed==0 policy: a one-shot
// seed is drawn, recorded in SeedUsed, and replaying with that seed
// reproduces the draw exactly.
func TestSample_ZeroSeedIsReplayable(t *testing.T) {
	eligible := idset.New(1, 2, 3, 4, 5, 6, 7, 8, 9, 10)

	first, err := sampling.Sample(eligible, 4, 0)
	require.NoError(t, err)
	require.NotZero(t, first.SeedUsed, "effective seed must be recorded")

	replay, err := sampling.Sample(eligible, 4, first.SeedUsed)
	require.NoError(t, err)
	assert.Equal(t, first.Sampled.Sorted(), replay.Sampled.Sorted())
}

// TestSample_Shortfall verifies that size ≥ |eligible| returns the entire
// pool with the deficit reported, not an error.
func TestSample_Shortfall(t *testing.T) {
	eligible := idset.New(4, 5, 6)

	out, err := sampling.Sample(eligible, 5, 7)
	require.NoError(t, err)
	assert.Equal(t, []idset.ID{4, 5, 6}, out.Sampled.Sorted())
	assert.Equal(t, 3, out.EligibleSize)
	assert.Equal(t, 2, out.Shortfall)

	// Exact fit: whole pool, zero shortfall.
	out, err = sampling.Sample(eligible, 3, 7)
	require.NoError(t, err)
	assert.Equal(t, []idset.ID{4, 5, 6}, out.Sampled.Sorted())
	assert.Zero(t, out.Shortfall)
}

// TestSample_EmptyPool verifies an empty eligible pool yields an empty
// sample with full shortfall.
func TestSample_EmptyPool(t *testing.T) {
	out, err := sampling.Sample(idset.New(), 4, 1)
	require.NoError(t, err)
	assert.Zero(t, out.Sampled.Len())
	assert.Equal(t, 4, out.Shortfall)
}

// TestSample_InvalidSize verifies size ≤ 0 fails with ErrInvalidSampleSize
// before anything is drawn.
func TestSample_InvalidSize(t *testing.T) {
	eligible := idset.New(1, 2, 3)

	_, err := sampling.Sample(eligible, 0, 42)
	assert.ErrorIs(t, err, sampling.ErrInvalidSampleSize)

	_, err = sampling.Sample(eligible, -5, 42)
	assert.ErrorIs(t, err, sampling.ErrInvalidSampleSize)
}

// TestSample_SubsetOfEligible verifies sampled ⊆ eligible and the exact
// requested cardinality when the pool suffices.
func TestSample_SubsetOfEligible(t *testing.T) {
	eligible := idset.New(10, 20, 30, 40, 50, 60)

	out, err := sampling.Sample(eligible, 3, 99)
	require.NoError(t, err)
	require.Equal(t, 3, out.Sampled.Len())
	for _, id := range out.Sampled.Sorted() {
		assert.True(t, eligible.Has(id), "sampled ID %d not in eligible pool", id)
	}
}

// TestSample_Uniformity draws n=3 from a pool of 6 across 1000 distinct
// seeds and checks that all C(6,3)=20 subsets occur with roughly equal
// frequency. Expected count per subset is 50; the acceptance band
// [15, 100] is over six standard deviations wide, so a correct sampler
// passes with overwhelming probability while a biased one fails.
func TestSample_Uniformity(t *testing.T) {
	eligible := idset.New(1, 2, 3, 4, 5, 6)
	const trials = 1000

	counts := make(map[string]int)
	for trial := 0; trial < trials; trial++ {
		out, err := sampling.Sample(eligible, 3, int64(trial+1))
		require.NoError(t, err)
		require.Equal(t, 3, out.Sampled.Len())
		counts[subsetKey(out.Sampled)]++
	}

	assert.Len(t, counts, 20, "every C(6,3) subset should appear")
	for subset, n := range counts {
		assert.GreaterOrEqual(t, n, 15, "subset %s underrepresented", subset)
		assert.LessOrEqual(t, n, 100, "subset %s overrepresented", subset)
	}
}

// subsetKey renders a sampled set as a canonical comparable string
// (Sorted already yields the ascending order).
func subsetKey(s idset.Set) string {
	return fmt.Sprint(s.Sorted())
}
