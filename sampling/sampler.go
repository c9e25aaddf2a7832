package sampling

import (
	"fmt"

	"github.com/katalvlaran/idsampler/idset"
)

// Sample draws a uniform random sample without replacement from eligible.
//
// Algorithm:
//  1. Materialize eligible in canonical ascending order (map iteration order
//     must never leak into the draw).
//  2. If size ≥ |eligible|, return the whole pool with
//     Shortfall = size − |eligible| (soft condition, not an error).
//  3. Otherwise Fisher–Yates-shuffle the ordered slice with the seeded
//     generator and take the first size elements. A full uniform shuffle
//     makes every size-subset equiprobable.
//
// Seed policy: seed≠0 is used verbatim (same inputs + same seed ⇒ identical
// result, bit for bit); seed==0 draws a one-shot seed from the OS entropy
// source. Either way SampleOutcome.SeedUsed records the effective seed.
//
// Errors:
//   - ErrInvalidSampleSize — size ≤ 0; nothing is sampled.
//
// Complexity: O(n log n) time, O(n) space, n = |eligible|.
func Sample(eligible idset.Set, size int, seed int64) (SampleOutcome, error) {
	if size <= 0 {
		return SampleOutcome{}, fmt.Errorf("%w: got %d", ErrInvalidSampleSize, size)
	}

	rng, seedUsed := rngFromSeed(seed)
	n := eligible.Len()

	// Pool too small (or exact): the entire eligible set is the sample.
	if size >= n {
		return SampleOutcome{
			Sampled:      idset.FromSlice(eligible.Sorted()),
			EligibleSize: n,
			Shortfall:    size - n,
			SeedUsed:     seedUsed,
		}, nil
	}

	ids := eligible.Sorted()
	shuffleIDsInPlace(ids, rng)

	return SampleOutcome{
		Sampled:      idset.FromSlice(ids[:size]),
		EligibleSize: n,
		Shortfall:    0,
		SeedUsed:     seedUsed,
	}, nil
}
