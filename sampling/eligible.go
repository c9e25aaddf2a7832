package sampling

import "github.com/katalvlaran/idsampler/idset"

// Eligible computes the pool available for sampling:
//
//	eligible = fullPool − currentSelections − excluded, then, if any ranges
//	are configured, restricted to IDs matching at least one inclusive
//	[Min, Max] interval (OR semantics across ranges).
//
// An empty result is a valid, reportable state, not a failure. Ranges are
// assumed well-formed (Min ≤ Max); the pipeline rejects malformed ranges in
// pre-flight before this stage runs.
//
// Deterministic, pure, no side effects; inputs are never mutated.
//
// Complexity: O(|fullPool|·len(ranges)) time, O(|fullPool|) space.
func Eligible(fullPool, currentSelections, excluded idset.Set, ranges []Range) idset.Set {
	eligible := fullPool.Diff(currentSelections, excluded)
	if len(ranges) == 0 {
		return eligible
	}

	out := make(idset.Set, eligible.Len())
	for id := range eligible {
		for _, r := range ranges {
			if r.Contains(id) {
				out.Add(id)
				break
			}
		}
	}

	return out
}
