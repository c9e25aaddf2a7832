package sampling

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/idsampler/idset"
)

// Report is the presentation-ready aggregation of one pipeline run: summary
// counts, the validator's findings, and the merged final dataset (retained
// current selections plus the new sample, each row tagged by provenance).
//
// Pure presentation state: Report never recomputes filtering or sampling;
// it only rearranges what the earlier stages produced.
type Report struct {
	// PoolSize is the distinct size of the full pool.
	PoolSize int

	// SelectedCount is the distinct size of the current selections.
	SelectedCount int

	// ExcludedCount is the distinct size of the excluded IDs.
	ExcludedCount int

	// EligibleSize is the pool size after subtraction and range filtering.
	EligibleSize int

	// SampledCount is the number of newly drawn IDs.
	SampledCount int

	// Shortfall mirrors SampleOutcome.Shortfall.
	Shortfall int

	// SeedUsed mirrors SampleOutcome.SeedUsed; quote it to replay the run.
	SeedUsed int64

	// FindingLines are the validator's findings rendered for display,
	// empty when the inputs were clean.
	FindingLines []string

	// Final is the merged dataset: current selections ∪ new sample, sorted
	// ascending by ID. An ID present in both (possible only when the inputs
	// had findings) is tagged SourceCurrent.
	Final []Row
}

// BuildReport assembles a Report from the outputs of the earlier stages plus
// the deduplicated current-selections set (needed to merge and tag the final
// dataset).
//
// Complexity: O(m log m), m = |current| + |sampled|.
func BuildReport(validation ValidationReport, stats FilterStats, outcome SampleOutcome, current idset.Set) Report {
	final := make([]Row, 0, current.Len()+outcome.Sampled.Len())
	for _, id := range current.Sorted() {
		final = append(final, Row{ID: id, Source: SourceCurrent})
	}
	for _, id := range outcome.Sampled.Sorted() {
		if current.Has(id) {
			continue
		}
		final = append(final, Row{ID: id, Source: SourceNew})
	}
	sort.Slice(final, func(i, j int) bool { return final[i].ID < final[j].ID })

	return Report{
		PoolSize:      stats.PoolSize,
		SelectedCount: stats.SelectedCount,
		ExcludedCount: stats.ExcludedCount,
		EligibleSize:  stats.EligibleSize,
		SampledCount:  outcome.Sampled.Len(),
		Shortfall:     outcome.Shortfall,
		SeedUsed:      outcome.SeedUsed,
		FindingLines:  validation.Findings(),
		Final:         final,
	}
}

// Rows renders the final dataset as row-oriented tabular data, one
// identifier per row, header first. The exact encoding (CSV, spreadsheet,
// terminal table) is the caller's concern.
func (r Report) Rows() [][]string {
	out := make([][]string, 0, len(r.Final)+1)
	out = append(out, []string{"ID", "Source"})
	for _, row := range r.Final {
		out = append(out, []string{strconv.FormatInt(int64(row.ID), 10), string(row.Source)})
	}

	return out
}

// Summary renders the run as human-readable multi-line text: the four
// headline counts, shortfall and seed, then any findings.
func (r Report) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Total IDs in pool:     %d\n", r.PoolSize)
	fmt.Fprintf(&b, "Previously selected:   %d\n", r.SelectedCount)
	fmt.Fprintf(&b, "Excluded:              %d\n", r.ExcludedCount)
	fmt.Fprintf(&b, "Eligible for sampling: %d\n", r.EligibleSize)
	fmt.Fprintf(&b, "Newly sampled:         %d\n", r.SampledCount)
	if r.Shortfall > 0 {
		fmt.Fprintf(&b, "Shortfall:             %d\n", r.Shortfall)
	}
	fmt.Fprintf(&b, "Seed:                  %d\n", r.SeedUsed)
	if len(r.FindingLines) > 0 {
		b.WriteString("Findings:\n")
		for _, line := range r.FindingLines {
			fmt.Fprintf(&b, "  - %s\n", line)
		}
	}

	return b.String()
}
