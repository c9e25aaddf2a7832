package sampling

import "github.com/katalvlaran/idsampler/idset"

// Range is an inclusive numeric interval [Min, Max] restricting the eligible
// pool. Multiple ranges are combined with OR semantics: an ID qualifying for
// any one range passes the filter.
type Range struct {
	Min idset.ID
	Max idset.ID
}

// Contains reports whether id falls inside the inclusive interval.
func (r Range) Contains(id idset.ID) bool {
	return id >= r.Min && id <= r.Max
}

// Inputs carries the three raw identifier collections for one pipeline run.
// Slices, not sets: duplicate rows from the source files must remain visible
// to the validator before they are collapsed.
type Inputs struct {
	// FullPool is the master list of all sampleable IDs. Required; a nil
	// slice means "no pool supplied" and fails pre-flight with ErrNilPool.
	FullPool []idset.ID

	// CurrentSelections are IDs already selected in earlier rounds; they are
	// retained in the final dataset and never sampled again. Optional.
	CurrentSelections []idset.ID

	// Excluded are IDs barred from sampling. Optional.
	Excluded []idset.ID
}

// Options configures one pipeline run.
//
// Pattern matches the rest of the module: construct with DefaultOptions,
// then set fields directly.
type Options struct {
	// SampleSize is the number of new IDs to draw. Must be positive.
	SampleSize int

	// Seed drives the pseudo-random generator. Nonzero ⇒ used verbatim,
	// same seed + same inputs ⇒ identical sample. Zero ⇒ a one-shot seed is
	// drawn from crypto/rand and recorded in SampleOutcome.SeedUsed so the
	// run can still be replayed afterwards.
	Seed int64

	// Ranges optionally restricts the eligible pool to the union of the
	// given inclusive intervals. Empty ⇒ no restriction.
	Ranges []Range

	// StrictFindings escalates any validation finding (duplicates,
	// conflicts, unknown IDs) into ErrValidationFindings, halting the
	// pipeline after the Validate stage. Off by default: findings are
	// informational and the caller decides.
	StrictFindings bool
}

// DefaultOptions returns Options with sane defaults:
//   - SampleSize 10
//   - Seed 0 (non-deterministic one-shot seed)
//   - no range restriction
//   - permissive findings policy
func DefaultOptions() Options {
	return Options{
		SampleSize:     10,
		Seed:           0,
		Ranges:         nil,
		StrictFindings: false,
	}
}

// ValidationReport holds the validator's findings. All fields are reported
// data, never reasons to abort (unless the caller opts into StrictFindings).
type ValidationReport struct {
	// DuplicatesInPool are values appearing more than once in FullPool.
	DuplicatesInPool idset.Set

	// DuplicatesInSelections are values appearing more than once in
	// CurrentSelections.
	DuplicatesInSelections idset.Set

	// DuplicatesInExcluded are values appearing more than once in Excluded.
	DuplicatesInExcluded idset.Set

	// Conflicts are IDs present in both CurrentSelections and Excluded —
	// mutually exclusive sets by definition.
	Conflicts idset.Set

	// UnknownToPool are IDs referenced by CurrentSelections or Excluded but
	// absent from FullPool (referential-integrity finding).
	UnknownToPool idset.Set
}

// FilterStats captures the sizes observed while computing the eligible pool.
type FilterStats struct {
	// PoolSize is the distinct size of FullPool.
	PoolSize int

	// SelectedCount is the distinct size of CurrentSelections.
	SelectedCount int

	// ExcludedCount is the distinct size of Excluded.
	ExcludedCount int

	// EligibleSize is the pool size after subtraction and range filtering.
	EligibleSize int
}

// SampleOutcome is the sampler's result.
type SampleOutcome struct {
	// Sampled holds the newly drawn IDs; |Sampled| ≤ the requested size,
	// with equality whenever the eligible pool sufficed.
	Sampled idset.Set

	// EligibleSize is the size of the pool the draw was made from.
	EligibleSize int

	// Shortfall is requested − drawn when the eligible pool was too small,
	// 0 when the request was fully satisfied. Soft condition, not an error.
	Shortfall int

	// SeedUsed is the seed that actually drove the generator: Options.Seed
	// when nonzero, otherwise the one-shot random seed. Re-running with
	// Seed = SeedUsed reproduces Sampled exactly.
	SeedUsed int64
}

// Source labels a final-dataset row by provenance.
type Source string

const (
	// SourceCurrent marks an ID retained from CurrentSelections.
	SourceCurrent Source = "Current"

	// SourceNew marks an ID drawn by this run's sampler.
	SourceNew Source = "New"
)

// Row is one line of the final dataset: an identifier and where it came from.
type Row struct {
	ID     idset.ID
	Source Source
}

// Result bundles everything one pipeline run produced.
type Result struct {
	Validation ValidationReport
	Stats      FilterStats
	Outcome    SampleOutcome
	Report     Report
}
