// Command idsampler is the command-line front end of the sampling engine:
// it loads ID files, runs the Validate → Filter → Sample → Report pipeline,
// prints the summary, and optionally exports the final dataset.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const version = "1.0.0"

var (
	// Global flags
	verbose bool

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "idsampler",
	Short: "Reproducible random sampling of numeric IDs",
	Long: `idsampler draws a random sample of unique numeric identifiers from a
master pool, retaining prior selections, honoring exclusions, and optionally
restricting the pool to numeric ranges.

Inputs are CSV or XLSX files whose first column holds the IDs. Sampling is
without replacement and fully reproducible: the seed that drove each draw is
always reported, so any run can be replayed with --seed.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// versionCmd prints the build version.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the idsampler version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("idsampler %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
}
