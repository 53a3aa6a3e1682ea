package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dijetlab/resonance-shapes/extract"
	"github.com/dijetlab/resonance-shapes/grid"
	"github.com/dijetlab/resonance-shapes/morph"
)

var (
	gridStep      float64
	fineBinning   bool
	extrapolation string
	lenient       bool
	workers       int
	storeCDF      bool
	storePDF      bool
	outDir        string
)

var interpolateCmd = &cobra.Command{
	Use:   "interpolate",
	Short: "Synthesize shapes on a regular mass grid from group lookup tables",
	Long: `Reads each group's lookup table, interpolates a shape at every
target mass of the grid spanned by the group's simulated range and the
requested step, and writes one result table per group.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if listFile == "" {
			return errors.New("missing required flag --list-file")
		}

		policy, err := morph.ParsePolicy(extrapolation)
		if err != nil {
			return err
		}

		f, err := os.Open(listFile)
		if err != nil {
			return fmt.Errorf("opening list file: %w", err)
		}
		defer f.Close()

		names, err := extract.ParseGroupNames(f)
		if err != nil {
			return err
		}

		if len(names) == 0 {
			return fmt.Errorf("no group names found in %s", listFile)
		}

		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return err
		}

		engine := newEngine(policy)
		scheduler := newScheduler()

		ok, fail := 0, 0

		for _, name := range names {
			if err := interpolateGroup(cmd, engine, scheduler, name); err != nil {
				logger.Warn("group failed",
					zap.String("group", name),
					zap.Error(err))
				fail++

				continue
			}

			ok++
		}

		logger.Info("interpolation finished", zap.Int("ok", ok), zap.Int("failed", fail))

		if ok == 0 && fail > 0 {
			return errAllGroupsFailed
		}

		return nil
	},
}

func init() {
	interpolateCmd.Flags().Float64Var(&gridStep, "step", 100, "mass interval between grid points in GeV")
	interpolateCmd.Flags().BoolVar(&fineBinning, "fine-binning", false, "use the fine probability grid for quantile construction")
	interpolateCmd.Flags().StringVar(&extrapolation, "extrapolation", "forbid", "out-of-range policy: forbid, clamp, or linear")
	interpolateCmd.Flags().BoolVar(&lenient, "lenient", false, "skip and report failed target masses instead of aborting the grid")
	interpolateCmd.Flags().IntVar(&workers, "workers", 1, "number of concurrent interpolation workers")
	interpolateCmd.Flags().BoolVar(&storeCDF, "store-cdf", false, "also store each shape's cumulative distribution")
	interpolateCmd.Flags().BoolVar(&storePDF, "store-pdf", false, "also store each shape as a 1-GeV-binned density")
	interpolateCmd.Flags().StringVarP(&outDir, "out-dir", "o", "interpolatedResonanceShapes", "output directory for result tables")
}

func newEngine(policy morph.ExtrapolationPolicy) *morph.Engine {
	opts := []morph.Option{morph.WithExtrapolationPolicy(policy)}
	if fineBinning {
		opts = append(opts, morph.WithFineBinning())
	}

	return morph.NewEngine(opts...)
}

func newScheduler() *grid.Scheduler {
	opts := []grid.Option{
		grid.WithStep(gridStep),
		grid.WithWorkers(workers),
		grid.WithLogger(logger),
	}
	if lenient {
		opts = append(opts, grid.WithFailurePolicy(grid.Lenient))
	}

	return grid.NewScheduler(opts...)
}

func interpolateGroup(cmd *cobra.Command, engine *morph.Engine, scheduler *grid.Scheduler, name string) error {
	tablePath := filepath.Join(baseDir, name, "combined", fmt.Sprintf("InputShapes_%s.yaml", name))

	in, err := os.Open(tablePath)
	if err != nil {
		return fmt.Errorf("missing lookup table: %w", err)
	}
	defer in.Close()

	table, err := extract.ReadTable(in)
	if err != nil {
		return err
	}

	group, err := table.ToGroup()
	if err != nil {
		return err
	}

	results, report, err := scheduler.Run(cmd.Context(), engine, group)
	if err != nil {
		return err
	}

	if report.Failed() {
		for _, failure := range report.Failures {
			logger.Warn("target mass skipped",
				zap.String("group", name),
				zap.Float64("mass", failure.Mass),
				zap.Error(failure.Err))
		}
	}

	var tableOpts []extract.ResultOption
	if storeCDF {
		tableOpts = append(tableOpts, extract.WithStoredCDF())
	}
	if storePDF {
		tableOpts = append(tableOpts, extract.WithStoredPDF())
	}

	outPath := filepath.Join(outDir, fmt.Sprintf("ResonanceShapes_%s.yaml", name))

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := extract.NewResultTable(name, results, tableOpts...).WriteTo(out); err != nil {
		return err
	}

	logger.Info("wrote result table",
		zap.String("group", name),
		zap.String("path", outPath),
		zap.Int("shapes", len(results)),
		zap.Int("skipped", len(report.Failures)))

	return nil
}
