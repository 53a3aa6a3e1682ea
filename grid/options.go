package grid

import "go.uber.org/zap"

// FailurePolicy selects how the scheduler reacts to a failed target mass.
type FailurePolicy int

const (
	// Strict aborts the whole grid on the first failure.
	Strict FailurePolicy = iota
	// Lenient skips failed target masses and reports them per mass.
	Lenient
)

// String returns the policy name.
func (p FailurePolicy) String() string {
	if p == Lenient {
		return "lenient"
	}

	return "strict"
}

// Config defines configuration for the scheduler.
type Config struct {
	Step    float64
	Policy  FailurePolicy
	Workers int
	Logger  *zap.Logger

	// Optional override of the group's natural [min, max] mass range.
	HasRange         bool
	MinMass, MaxMass float64
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns sensible defaults: a 100 GeV step, strict
// failure policy, sequential execution, and no logging.
func DefaultConfig() Config {
	return Config{
		Step:    100,
		Policy:  Strict,
		Workers: 1,
		Logger:  zap.NewNop(),
	}
}

// WithStep sets the spacing of target masses.
func WithStep(step float64) Option {
	return func(cfg *Config) {
		if step > 0 {
			cfg.Step = step
		}
	}
}

// WithFailurePolicy sets the reaction to failed target masses.
func WithFailurePolicy(policy FailurePolicy) Option {
	return func(cfg *Config) {
		cfg.Policy = policy
	}
}

// WithMassRange overrides the group's natural [min, max] target range.
func WithMassRange(minMass, maxMass float64) Option {
	return func(cfg *Config) {
		cfg.HasRange = true
		cfg.MinMass = minMass
		cfg.MaxMass = maxMass
	}
}

// WithWorkers sets the number of concurrent interpolation workers.
// Values below 2 keep the drive sequential.
func WithWorkers(workers int) Option {
	return func(cfg *Config) {
		if workers > 0 {
			cfg.Workers = workers
		}
	}
}

// WithLogger sets the logger for per-mass progress and failure reports.
func WithLogger(logger *zap.Logger) Option {
	return func(cfg *Config) {
		if logger != nil {
			cfg.Logger = logger
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
