// Command resonanceshapes prepares simulated dijet resonance shapes for a
// statistical search: it aggregates normalized per-mass shapes into
// lookup tables and synthesizes shapes at arbitrary target masses by
// quantile morphing.
//
// Usage:
//
//	resonanceshapes extract -l inputLists/inputShapes_RSGToQQ_kMpl01.txt -b signalShapes
//	resonanceshapes interpolate -l inputLists/inputShapes_RSGToQQ_kMpl01.txt -b signalShapes --step 100
//	resonanceshapes interpolate -l list.txt -b signalShapes --step 50 --fine-binning --workers 4
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose  bool
	listFile string
	baseDir  string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "resonanceshapes",
	Short: "Prepare and interpolate dijet resonance mass shapes",
	Long: `resonanceshapes prepares simulated resonance-mass spectra for a
statistical search. The extract subcommand collects normalized per-mass
shapes into one lookup table per group; the interpolate subcommand
synthesizes shapes on a regular mass grid from such a table, morphing
between the bracketing simulated mass points where no direct simulation
exists.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}

		var err error

		logger, err = config.Build()
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

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&listFile, "list-file", "l", "", "dictionary list file with group names")
	rootCmd.PersistentFlags().StringVarP(&baseDir, "base-dir", "b", "signalShapes", "base directory containing per-group subfolders")

	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(interpolateCmd)
}

// exitCode maps an execution error to the process exit code. No group
// producing any output is a distinct failure mode from a bad invocation
// or a single broken input.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errAllGroupsFailed):
		return 2
	default:
		return 1
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}
