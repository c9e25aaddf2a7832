// Package sampling - input validation shared by the pipeline.
//
// This file contains two distinct layers, in the order the pipeline runs them:
//  1. validateRequest: pre-flight checks of Options and Inputs shape.
//     Failures here are InvalidRequest errors and abort before any stage.
//  2. Validate: data-quality findings over the raw ID collections.
//     Findings are reported, never raised; policy belongs to the caller.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from errors.go.
//   - O(n) single pass per collection; no hidden allocations beyond the
//     finding sets themselves.
package sampling

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/idsampler/idset"
)

// validateRequest verifies Options + Inputs shape before any stage runs.
//
// Contract:
//   - in.FullPool must be non-nil (empty is allowed; nil means "not supplied").
//   - opts.SampleSize must be positive.
//   - Every Range must satisfy Min ≤ Max.
//
// Complexity: O(len(opts.Ranges)).
func validateRequest(in Inputs, opts Options) error {
	if in.FullPool == nil {
		return ErrNilPool
	}
	if opts.SampleSize <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSampleSize, opts.SampleSize)
	}
	for _, r := range opts.Ranges {
		if r.Min > r.Max {
			return fmt.Errorf("%w: [%d, %d]", ErrInvalidRange, r.Min, r.Max)
		}
	}

	return nil
}

// Validate inspects the three raw input collections and reports:
//   - duplicate values within each collection (duplicate source rows);
//   - IDs present in both CurrentSelections and Excluded (Conflicts);
//   - IDs in CurrentSelections or Excluded absent from FullPool
//     (UnknownToPool).
//
// Pure computation: findings are data for the caller to display or act on;
// Validate itself never fails. Non-numeric identifiers cannot reach this
// point — loaders reject them with idset.ErrInvalidIdentifier.
//
// Complexity: O(|pool| + |selections| + |excluded|).
func Validate(fullPool, currentSelections, excluded []idset.ID) ValidationReport {
	var (
		pool = idset.FromSlice(fullPool)
		cur  = idset.FromSlice(currentSelections)
		exc  = idset.FromSlice(excluded)
	)

	unknown := cur.Union(exc).Diff(pool)

	return ValidationReport{
		DuplicatesInPool:       idset.Duplicates(fullPool),
		DuplicatesInSelections: idset.Duplicates(currentSelections),
		DuplicatesInExcluded:   idset.Duplicates(excluded),
		Conflicts:              cur.Intersect(exc),
		UnknownToPool:          unknown,
	}
}

// Clean reports whether the validator found nothing at all.
func (vr ValidationReport) Clean() bool {
	return vr.DuplicatesInPool.Len() == 0 &&
		vr.DuplicatesInSelections.Len() == 0 &&
		vr.DuplicatesInExcluded.Len() == 0 &&
		vr.Conflicts.Len() == 0 &&
		vr.UnknownToPool.Len() == 0
}

// Findings renders the non-empty findings as human-readable lines, in a
// fixed order with IDs sorted ascending, suitable for direct display.
func (vr ValidationReport) Findings() []string {
	var out []string
	appendFinding := func(label string, s idset.Set) {
		if s.Len() == 0 {
			return
		}
		ids := s.Sorted()
		parts := make([]string, len(ids))
		for i, id := range ids {
			parts[i] = fmt.Sprintf("%d", id)
		}
		out = append(out, fmt.Sprintf("%s: %s", label, strings.Join(parts, ", ")))
	}

	appendFinding("full pool contains duplicate values", vr.DuplicatesInPool)
	appendFinding("current selections contain duplicate values", vr.DuplicatesInSelections)
	appendFinding("excluded IDs contain duplicate values", vr.DuplicatesInExcluded)
	appendFinding("IDs appear in both current selections and excluded IDs", vr.Conflicts)
	appendFinding("IDs not present in the full pool", vr.UnknownToPool)

	return out
}
