package morph

const (
	// defaultProbabilityGridSize is the number of probability-grid steps
	// used for quantile construction.
	defaultProbabilityGridSize = 1000

	// fineProbabilityGridSize matches a 1 GeV resolution over the full
	// 14 TeV dijet mass range.
	fineProbabilityGridSize = 14000

	// defaultMassTolerance is the relative tolerance for treating a
	// target mass as an exact simulated mass point.
	defaultMassTolerance = 1e-9
)

// Config defines configuration for the interpolation engine.
type Config struct {
	ProbabilityGridSize int
	Extrapolation       ExtrapolationPolicy
	MassTolerance       float64
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns sensible defaults: a 1000-step probability grid,
// extrapolation forbidden, and a 1e-9 relative mass tolerance.
func DefaultConfig() Config {
	return Config{
		ProbabilityGridSize: defaultProbabilityGridSize,
		Extrapolation:       Forbid,
		MassTolerance:       defaultMassTolerance,
	}
}

// WithProbabilityGridSize sets the number of probability-grid steps used
// when inverting the cumulative distributions. More steps reduce
// re-binning discretization error.
func WithProbabilityGridSize(steps int) Option {
	return func(cfg *Config) {
		if steps > 0 {
			cfg.ProbabilityGridSize = steps
		}
	}
}

// WithFineBinning raises the probability grid to its fine resolution.
// This is purely a precision knob; the algorithm is unchanged.
func WithFineBinning() Option {
	return func(cfg *Config) {
		cfg.ProbabilityGridSize = fineProbabilityGridSize
	}
}

// WithExtrapolationPolicy sets the out-of-range behavior.
func WithExtrapolationPolicy(policy ExtrapolationPolicy) Option {
	return func(cfg *Config) {
		cfg.Extrapolation = policy
	}
}

// WithMassTolerance sets the relative tolerance for exact-mass matches.
func WithMassTolerance(tol float64) Option {
	return func(cfg *Config) {
		if tol > 0 {
			cfg.MassTolerance = tol
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
