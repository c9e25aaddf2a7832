// Package sampling implements the reproducible ID sampling pipeline:
// Validate → Filter → Sample → Report.
//
// 🚀 What does it do?
//
//	Given three collaborator-supplied collections of numeric identifiers —
//	the full pool, the current selections to retain, and the IDs to exclude —
//	the pipeline:
//	  1. Validates the raw inputs (duplicate rows, selected∩excluded
//	     conflicts, IDs unknown to the pool) into a ValidationReport.
//	  2. Computes the eligible pool: pool − selections − excluded, optionally
//	     intersected with the union of inclusive [Min,Max] ranges.
//	  3. Draws a uniform random sample without replacement of the requested
//	     size, seeded for bit-for-bit reproducibility.
//	  4. Builds a presentation Report: counts, findings, and the merged
//	     Current/New final dataset ready for tabular export.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/idsampler/sampling"
//
//	in := sampling.Inputs{
//	  FullPool:          pool, // []idset.ID, duplicates still visible
//	  CurrentSelections: cur,
//	  Excluded:          exc,
//	}
//	opts := sampling.DefaultOptions()
//	opts.SampleSize = 25
//	opts.Seed = 42
//	opts.Ranges = []sampling.Range{{Min: 1000, Max: 4999}}
//
//	res, err := sampling.Run(in, opts)
//	if err != nil {
//	  // ErrInvalidSampleSize, ErrInvalidRange, ErrNilPool,
//	  // or ErrValidationFindings under StrictFindings
//	}
//	fmt.Println(res.Report.Summary())
//
// Guarantees:
//   - Pure: no I/O, no logging, no global state; the seed is an explicit
//     parameter (seed 0 draws a one-shot random seed, recorded in the result).
//   - Deterministic: identical inputs + identical nonzero seed ⇒ identical
//     sampled set across runs and platforms.
//   - Soft shortfall: an eligible pool smaller than the request returns the
//     whole pool with Shortfall > 0; it is never an error.
//   - Single pass: a pre-flight or strict-mode failure aborts whole; no
//     partial results are emitted.
//
// Complexity: O(n log n) in the total input size (dominated by the canonical
// sort before shuffling).
package sampling
