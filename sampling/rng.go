// Package sampling - RNG utilities for the sampler.
//
// This file centralizes deterministic random generation for the pipeline.
//
// Goals:
//   - Determinism: same nonzero seed ⇒ identical samples across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Replayability: when no seed is given, the one-shot seed actually used is
//     returned to the caller and recorded in the outcome.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Each pipeline invocation builds
//     its own generator; nothing is shared across invocations.
package sampling

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"

	"github.com/katalvlaran/idsampler/idset"
)

// rngFromSeed returns a deterministic *rand.Rand plus the seed that drives it.
// Policy: seed==0 ⇒ draw a one-shot seed from crypto/rand (the
// "non-deterministic default"); otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) (*rand.Rand, int64) {
	s := seed
	if s == 0 {
		s = randomSeed()
	}

	return rand.New(rand.NewSource(s)), s
}

// randomSeed draws a nonzero int64 from the OS entropy source. A read
// failure falls back to a fixed seed rather than panicking: the engine keeps
// its no-panic contract and the result stays usable (and is still reported
// via SeedUsed).
func randomSeed() int64 {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		return 1
	}
	s := int64(binary.LittleEndian.Uint64(buf[:]))
	if s == 0 {
		s = 1
	}

	return s
}

// shuffleIDsInPlace performs an in-place Fisher–Yates shuffle of a using rng.
// After a full shuffle every permutation is equiprobable, so every k-prefix
// is a uniform k-subset — the property the sampler relies on.
//
// Complexity: O(n) time, O(1) extra space.
func shuffleIDsInPlace(a []idset.ID, rng *rand.Rand) {
	for i := len(a) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
