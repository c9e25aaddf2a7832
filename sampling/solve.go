// Package sampling - unified pipeline entry point.
//
// This file provides Run, the canonical way to execute a full sampling pass:
//
//	Validate → Filter (Eligible) → Sample → Report
//
// Design principles:
//   - Strictly linear, single pass: no retries, no loops, no backward
//     transitions. A pre-flight or strict-mode failure aborts whole.
//   - Deterministic: the seed is routed explicitly into the sampler;
//     no time-based randomness anywhere in the pipeline.
//   - Strict sentinels: only errors from errors.go (and their wrappers);
//     validation findings are data, not errors, unless StrictFindings.
package sampling

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/idsampler/idset"
)

// Run executes the full pipeline over in with opts.
//
// Stages:
//  1. Pre-flight: SampleSize > 0, every Range well-formed, pool supplied.
//     Failure ⇒ ErrInvalidSampleSize / ErrInvalidRange / ErrNilPool,
//     nothing else runs, no partial result.
//  2. Validate: duplicate/conflict/unknown findings. With
//     Options.StrictFindings any finding halts with ErrValidationFindings;
//     otherwise findings ride along in the result.
//  3. Filter: eligible = pool − selections − excluded ∩ union(Ranges).
//  4. Sample: uniform draw without replacement; a too-small pool is a
//     reported shortfall, never an error.
//  5. Report: presentation aggregation, including the merged Current/New
//     final dataset.
//
// Invariants on success:
//   - Outcome.Sampled ⊆ eligible ⊆ distinct(FullPool);
//   - Outcome.Sampled is disjoint from CurrentSelections ∪ Excluded;
//   - |Outcome.Sampled| ≤ opts.SampleSize;
//   - fixed nonzero Seed ⇒ identical Outcome.Sampled across runs.
//
// Complexity: O(n log n) in the total input size.
func Run(in Inputs, opts Options) (Result, error) {
	// Stage 1 - pre-flight request validation.
	if err := validateRequest(in, opts); err != nil {
		return Result{}, err
	}

	// Stage 2 - data-quality findings.
	vr := Validate(in.FullPool, in.CurrentSelections, in.Excluded)
	if opts.StrictFindings && !vr.Clean() {
		return Result{}, fmt.Errorf("%w: %s", ErrValidationFindings, strings.Join(vr.Findings(), "; "))
	}

	// Stage 3 - eligible pool. Sets are built fresh here; the raw slices are
	// never touched again after this point.
	var (
		pool = idset.FromSlice(in.FullPool)
		cur  = idset.FromSlice(in.CurrentSelections)
		exc  = idset.FromSlice(in.Excluded)
	)
	eligible := Eligible(pool, cur, exc, opts.Ranges)
	stats := FilterStats{
		PoolSize:      pool.Len(),
		SelectedCount: cur.Len(),
		ExcludedCount: exc.Len(),
		EligibleSize:  eligible.Len(),
	}

	// Stage 4 - seeded draw.
	outcome, err := Sample(eligible, opts.SampleSize, opts.Seed)
	if err != nil {
		return Result{}, err
	}

	// Stage 5 - presentation.
	return Result{
		Validation: vr,
		Stats:      stats,
		Outcome:    outcome,
		Report:     BuildReport(vr, stats, outcome, cur),
	}, nil
}
