package sampling_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/idsampler/idset"
	"github.com/katalvlaran/idsampler/sampling"
)

// TestBuildReport_FinalDataset verifies the merged dataset is sorted
// ascending with correct Current/New provenance tags.
func TestBuildReport_FinalDataset(t *testing.T) {
	cur := idset.New(2, 8)
	outcome := sampling.SampleOutcome{
		Sampled:      idset.New(5, 1),
		EligibleSize: 4,
		SeedUsed:     42,
	}
	rep := sampling.BuildReport(sampling.ValidationReport{}, sampling.FilterStats{}, outcome, cur)

	require.Len(t, rep.Final, 4)
	assert.Equal(t, sampling.Row{ID: 1, Source: sampling.SourceNew}, rep.Final[0])
	assert.Equal(t, sampling.Row{ID: 2, Source: sampling.SourceCurrent}, rep.Final[1])
	assert.Equal(t, sampling.Row{ID: 5, Source: sampling.SourceNew}, rep.Final[2])
	assert.Equal(t, sampling.Row{ID: 8, Source: sampling.SourceCurrent}, rep.Final[3])
}

// TestReport_Rows verifies the row-oriented export shape: header first,
// one identifier per row.
func TestReport_Rows(t *testing.T) {
	outcome := sampling.SampleOutcome{Sampled: idset.New(5), SeedUsed: 1}
	rep := sampling.BuildReport(sampling.ValidationReport{}, sampling.FilterStats{}, outcome, idset.New(2))

	rows := rep.Rows()
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"ID", "Source"}, rows[0])
	assert.Equal(t, []string{"2", "Current"}, rows[1])
	assert.Equal(t, []string{"5", "New"}, rows[2])
}

// TestReport_Summary verifies the headline counts, seed and findings all
// surface in the rendered text.
func TestReport_Summary(t *testing.T) {
	vr := sampling.Validate([]idset.ID{1, 2, 3}, []idset.ID{9}, nil)
	stats := sampling.FilterStats{PoolSize: 3, SelectedCount: 1, ExcludedCount: 0, EligibleSize: 2}
	outcome := sampling.SampleOutcome{Sampled: idset.New(1, 2), EligibleSize: 2, Shortfall: 1, SeedUsed: 42}

	rep := sampling.BuildReport(vr, stats, outcome, idset.New(9))
	text := rep.Summary()

	assert.Contains(t, text, "Total IDs in pool:     3")
	assert.Contains(t, text, "Eligible for sampling: 2")
	assert.Contains(t, text, "Newly sampled:         2")
	assert.Contains(t, text, "Shortfall:             1")
	assert.Contains(t, text, "Seed:                  42")
	assert.Contains(t, text, "not present in the full pool")
}

// TestReport_SummaryOmitsZeroShortfall keeps the happy-path summary free of
// a shortfall line.
func TestReport_SummaryOmitsZeroShortfall(t *testing.T) {
	outcome := sampling.SampleOutcome{Sampled: idset.New(1), SeedUsed: 7}
	rep := sampling.BuildReport(sampling.ValidationReport{}, sampling.FilterStats{}, outcome, idset.New())

	assert.False(t, strings.Contains(rep.Summary(), "Shortfall"))
}
