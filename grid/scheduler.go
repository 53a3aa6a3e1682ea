package grid

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/dijetlab/resonance-shapes/morph"
	"github.com/dijetlab/resonance-shapes/shape"
)

// Failure records one target mass the scheduler could not interpolate.
type Failure struct {
	Mass float64
	Err  error
}

// Report collects the failures of one lenient grid run, each
// attributable to a specific target mass and cause.
type Report struct {
	Failures []Failure
}

// Failed reports whether any target mass failed.
func (r *Report) Failed() bool { return r != nil && len(r.Failures) > 0 }

// Scheduler drives an interpolation engine over a grid of target masses.
type Scheduler struct {
	cfg Config
}

// NewScheduler creates a scheduler with the given options.
func NewScheduler(opts ...Option) *Scheduler {
	return &Scheduler{cfg: ApplyOptions(opts...)}
}

// Config returns the scheduler's effective configuration.
func (s *Scheduler) Config() Config { return s.cfg }

// Run interpolates every target mass of the configured grid and returns
// the results in ascending mass order. The grid spans the group's
// simulated range unless overridden with WithMassRange.
//
// Under the Strict policy the first failed target mass aborts the run.
// Under Lenient, failed masses are skipped; the returned Report
// attributes each failure to its mass. Cancelling ctx stops the run
// between target masses.
func (s *Scheduler) Run(ctx context.Context, eng *morph.Engine, g *shape.Group) ([]morph.Result, *Report, error) {
	if g == nil || g.Len() < 2 {
		return nil, nil, morph.ErrTooFewShapes
	}

	start, stop := g.MinMass(), g.MaxMass()
	if s.cfg.HasRange {
		start, stop = s.cfg.MinMass, s.cfg.MaxMass
	}

	masses, err := Masses(start, stop, s.cfg.Step)
	if err != nil {
		return nil, nil, err
	}

	if s.cfg.Workers > 1 {
		return s.runParallel(ctx, eng, g, masses)
	}

	return s.runSequential(ctx, eng, g, masses)
}

func (s *Scheduler) runSequential(ctx context.Context, eng *morph.Engine, g *shape.Group, masses []float64) ([]morph.Result, *Report, error) {
	results := make([]morph.Result, 0, len(masses))
	report := &Report{}

	for _, m := range masses {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		res, err := eng.Interpolate(g, m)
		if err != nil {
			if s.cfg.Policy == Strict {
				return nil, nil, fmt.Errorf("grid: target mass %g GeV: %w", m, err)
			}

			s.cfg.Logger.Warn("skipping target mass",
				zap.Float64("mass", m),
				zap.Error(err))
			report.Failures = append(report.Failures, Failure{Mass: m, Err: err})

			continue
		}

		s.cfg.Logger.Debug("interpolated shape",
			zap.Float64("mass", m),
			zap.Stringer("provenance", res.Provenance))
		results = append(results, res)
	}

	return results, report, nil
}

func (s *Scheduler) runParallel(ctx context.Context, eng *morph.Engine, g *shape.Group, masses []float64) ([]morph.Result, *Report, error) {
	slots := make([]*morph.Result, len(masses))
	report := &Report{}

	var mu sync.Mutex

	// eg cancels egCtx itself once Wait returns, so the caller's ctx must
	// stay distinct for the post-Wait cancellation check.
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(s.cfg.Workers)

	for i, m := range masses {
		if err := egCtx.Err(); err != nil {
			// A worker failed under Strict or the caller cancelled;
			// stop submitting further target masses.
			break
		}

		eg.Go(func() error {
			res, err := eng.Interpolate(g, m)
			if err != nil {
				if s.cfg.Policy == Strict {
					return fmt.Errorf("grid: target mass %g GeV: %w", m, err)
				}

				s.cfg.Logger.Warn("skipping target mass",
					zap.Float64("mass", m),
					zap.Error(err))

				mu.Lock()
				report.Failures = append(report.Failures, Failure{Mass: m, Err: err})
				mu.Unlock()

				return nil
			}

			s.cfg.Logger.Debug("interpolated shape",
				zap.Float64("mass", m),
				zap.Stringer("provenance", res.Provenance))

			mu.Lock()
			slots[i] = &res
			mu.Unlock()

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	sort.Slice(report.Failures, func(i, j int) bool {
		return report.Failures[i].Mass < report.Failures[j].Mass
	})

	results := make([]morph.Result, 0, len(masses))
	for _, r := range slots {
		if r != nil {
			results = append(results, *r)
		}
	}

	return results, report, nil
}
