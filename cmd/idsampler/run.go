package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/idsampler/idset"
	"github.com/katalvlaran/idsampler/internal/config"
	"github.com/katalvlaran/idsampler/sampling"
	"github.com/katalvlaran/idsampler/tabular"
)

// run flags; config-file values apply first, explicitly set flags win.
var (
	flagConfig     string
	flagPool       string
	flagSelections string
	flagExcluded   string
	flagSize       int
	flagSeed       int64
	flagRanges     []string
	flagStrict     bool
	flagOut        string
	flagFormat     string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Load ID files, draw a sample, and report the final dataset",
	Example: `  idsampler run --pool pool.csv --size 25 --seed 42
  idsampler run --pool pool.csv --selections current.csv --excluded bad.xlsx \
      --size 10 --range 1000:4999 --range 9000:9999 --out final.csv
  idsampler run --config run.yaml --strict`,
	RunE: runSampling,
}

func init() {
	runCmd.Flags().StringVarP(&flagConfig, "config", "c", "", "YAML run configuration file")
	runCmd.Flags().StringVar(&flagPool, "pool", "", "full ID pool file (CSV or XLSX, required)")
	runCmd.Flags().StringVar(&flagSelections, "selections", "", "current selections file")
	runCmd.Flags().StringVar(&flagExcluded, "excluded", "", "excluded IDs file")
	runCmd.Flags().IntVarP(&flagSize, "size", "n", 10, "number of new IDs to sample")
	runCmd.Flags().Int64Var(&flagSeed, "seed", 0, "random seed (0 = fresh seed, reported for replay)")
	runCmd.Flags().StringArrayVar(&flagRanges, "range", nil, "inclusive ID range min:max (repeatable)")
	runCmd.Flags().BoolVar(&flagStrict, "strict", false, "treat validation findings as a hard failure")
	runCmd.Flags().StringVarP(&flagOut, "out", "o", "", "output path for the final dataset (file or directory)")
	runCmd.Flags().StringVar(&flagFormat, "format", "csv", "export format: csv or xlsx")
}

// runSampling wires the collaborators around the pure pipeline: load files,
// run, print the summary, export the rows.
func runSampling(cmd *cobra.Command, args []string) error {
	if err := applyConfigFile(cmd); err != nil {
		return err
	}
	if flagPool == "" {
		return errors.New("a full ID pool is required (--pool or the config file's pool)")
	}

	opts := sampling.DefaultOptions()
	opts.SampleSize = flagSize
	opts.Seed = flagSeed
	opts.StrictFindings = flagStrict
	ranges, err := parseRanges(flagRanges)
	if err != nil {
		return err
	}
	opts.Ranges = ranges

	in, err := loadInputs()
	if err != nil {
		return err
	}
	logger.Debug("inputs loaded",
		zap.Int("pool_rows", len(in.FullPool)),
		zap.Int("selection_rows", len(in.CurrentSelections)),
		zap.Int("excluded_rows", len(in.Excluded)),
	)

	res, err := sampling.Run(in, opts)
	if err != nil {
		return err
	}
	logger.Info("sampling complete",
		zap.Int("eligible", res.Stats.EligibleSize),
		zap.Int("sampled", res.Outcome.Sampled.Len()),
		zap.Int("shortfall", res.Outcome.Shortfall),
		zap.Int64("seed", res.Outcome.SeedUsed),
		zap.Bool("clean", res.Validation.Clean()),
	)

	fmt.Print(res.Report.Summary())

	if flagOut == "" {
		return nil
	}

	return export(res.Report)
}

// applyConfigFile loads --config (when given) and fills every flag the user
// did not set explicitly on the command line.
func applyConfigFile(cmd *cobra.Command) error {
	if flagConfig == "" {
		return nil
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	set := cmd.Flags().Changed
	if !set("pool") && cfg.Pool != "" {
		flagPool = cfg.Pool
	}
	if !set("selections") && cfg.Selections != "" {
		flagSelections = cfg.Selections
	}
	if !set("excluded") && cfg.Excluded != "" {
		flagExcluded = cfg.Excluded
	}
	if !set("size") && cfg.SampleSize != 0 {
		flagSize = cfg.SampleSize
	}
	if !set("seed") && cfg.Seed != 0 {
		flagSeed = cfg.Seed
	}
	if !set("strict") && cfg.Strict {
		flagStrict = true
	}
	if !set("out") && cfg.Out != "" {
		flagOut = cfg.Out
	}
	if !set("format") && cfg.Format != "" {
		flagFormat = cfg.Format
	}
	if !set("range") {
		for _, r := range cfg.SamplingRanges() {
			flagRanges = append(flagRanges, fmt.Sprintf("%d:%d", r.Min, r.Max))
		}
	}

	return nil
}

// loadInputs reads the three ID files; selections and exclusions are
// optional and default to empty (not nil — only the pool distinguishes
// missing from empty).
func loadInputs() (sampling.Inputs, error) {
	pool, err := tabular.ReadIDs(flagPool)
	if err != nil {
		return sampling.Inputs{}, err
	}
	// ReadIDs yields an empty (non-nil) slice for an empty file, so an empty
	// pool flows through as a legitimate zero-eligible run.
	in := sampling.Inputs{FullPool: pool}

	if flagSelections != "" {
		if in.CurrentSelections, err = tabular.ReadIDs(flagSelections); err != nil {
			return sampling.Inputs{}, err
		}
	}
	if flagExcluded != "" {
		if in.Excluded, err = tabular.ReadIDs(flagExcluded); err != nil {
			return sampling.Inputs{}, err
		}
	}

	return in, nil
}

// parseRanges converts repeatable "min:max" flags into pipeline ranges.
func parseRanges(specs []string) ([]sampling.Range, error) {
	if len(specs) == 0 {
		return nil, nil
	}
	out := make([]sampling.Range, 0, len(specs))
	for _, spec := range specs {
		parts := strings.SplitN(spec, ":", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("malformed --range %q (want min:max)", spec)
		}
		lo, err := idset.ParseID(parts[0])
		if err != nil {
			return nil, fmt.Errorf("malformed --range %q: %w", spec, err)
		}
		hi, err := idset.ParseID(parts[1])
		if err != nil {
			return nil, fmt.Errorf("malformed --range %q: %w", spec, err)
		}
		out = append(out, sampling.Range{Min: lo, Max: hi})
	}

	return out, nil
}

// export writes the final dataset to --out. A directory target gets a
// timestamped file name, like the tool this replaces.
func export(rep sampling.Report) error {
	path := flagOut
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		name := fmt.Sprintf("sampled_ids_%s.%s", time.Now().Format("20060102_150405"), flagFormat)
		path = filepath.Join(path, name)
	}

	switch flagFormat {
	case "csv":
		err := tabular.WriteCSV(path, rep.Rows())
		if err == nil {
			logger.Info("final dataset written", zap.String("path", path))
		}

		return err
	case "xlsx":
		err := tabular.WriteXLSX(path, "Sampled IDs", rep.Rows())
		if err == nil {
			logger.Info("final dataset written", zap.String("path", path))
		}

		return err
	default:
		return fmt.Errorf("unknown --format %q (want csv or xlsx)", flagFormat)
	}
}

// exitCode maps error classes onto process exit codes: 2 for strict-mode
// validation findings, 1 for everything else.
func exitCode(err error) int {
	if errors.Is(err, sampling.ErrValidationFindings) {
		return 2
	}

	return 1
}
