package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dijetlab/resonance-shapes/extract"
	"github.com/dijetlab/resonance-shapes/shape"
)

var errAllGroupsFailed = errors.New("all groups failed")

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Collect normalized per-mass shapes into group lookup tables",
	Long: `Reads the dictionary list file, loads every group's per-mass raw
shape files, normalizes them onto the group binning, and writes one
mass-ordered lookup table per group under <base-dir>/<group>/combined/.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if listFile == "" {
			return errors.New("missing required flag --list-file")
		}

		f, err := os.Open(listFile)
		if err != nil {
			return fmt.Errorf("opening list file: %w", err)
		}
		defer f.Close()

		groups, err := extract.ParseInputList(f)
		if err != nil {
			return err
		}

		if len(groups) == 0 {
			return fmt.Errorf("no groups parsed from %s", listFile)
		}

		names := make([]string, 0, len(groups))
		for name := range groups {
			names = append(names, name)
		}
		sort.Strings(names)

		logger.Info("parsed input list",
			zap.String("file", listFile),
			zap.Int("groups", len(names)))

		ok, fail := 0, 0

		for _, name := range names {
			if err := extractGroup(name, groups[name]); err != nil {
				logger.Warn("group failed",
					zap.String("group", name),
					zap.Error(err))
				fail++

				continue
			}

			ok++
		}

		logger.Info("extraction finished", zap.Int("ok", ok), zap.Int("failed", fail))

		if ok == 0 && fail > 0 {
			return errAllGroupsFailed
		}

		return nil
	},
}

func extractGroup(name string, entries map[float64]string) error {
	if len(entries) == 0 {
		return errors.New("group has no entries")
	}

	masses := make([]float64, 0, len(entries))
	for m := range entries {
		masses = append(masses, m)
	}
	sort.Float64s(masses)

	group := shape.NewGroup(shape.StandardDijetBinning())

	for _, mass := range masses {
		if err := addRawShape(group, mass, entries[mass]); err != nil {
			return fmt.Errorf("m = %g GeV: %w", mass, err)
		}

		logger.Debug("added shape",
			zap.String("group", name),
			zap.Float64("mass", mass))
	}

	outDir := filepath.Join(baseDir, name, "combined")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	outPath := filepath.Join(outDir, fmt.Sprintf("InputShapes_%s.yaml", name))

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := extract.FromGroup(name, group).WriteTo(out); err != nil {
		return err
	}

	logger.Info("wrote lookup table",
		zap.String("group", name),
		zap.String("path", outPath),
		zap.Int("masses", group.Len()))

	return nil
}

func addRawShape(group *shape.Group, mass float64, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	raw, err := extract.ReadRawShape(f)
	if err != nil {
		return err
	}

	binning := group.Binning()

	if len(raw.Edges) > 0 {
		rawBinning, err := shape.NewBinning(raw.Edges)
		if err != nil {
			return err
		}

		if !rawBinning.Equal(binning, 1e-9) {
			return fmt.Errorf("%w: raw binning does not map onto the group binning", shape.ErrMalformedInput)
		}
	}

	s, err := shape.Normalize(mass, binning, raw.Contents)
	if err != nil {
		return err
	}

	return group.Add(s)
}
