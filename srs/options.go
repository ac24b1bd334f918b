package srs

// Octave-band divisor codes accepted by [WithOctaveCode]. Larger codes
// produce more closely spaced analysis frequencies.
const (
	OctaveThird        = 1 // 1/3-octave spacing
	OctaveSixth        = 2 // 1/6-octave spacing
	OctaveTwelfth      = 3 // 1/12-octave spacing
	OctaveTwentyFourth = 4 // 1/24-octave spacing
)

// Config holds shock response spectrum analysis parameters.
type Config struct {
	// SampleRate is the signal sampling rate in Hz. It has no default and
	// must be positive.
	SampleRate float64

	// StartFrequency is the first (lowest) analysis frequency in Hz.
	StartFrequency float64

	// DampingRatio is the SDOF damping ratio zeta. Values <= 0 are clamped
	// to 1e-9 with a diagnostic; values >= 1 degenerate every channel to a
	// zero response (see [DiagDegenerateChannel]).
	DampingRatio float64

	// OctaveCode selects the grid spacing, one of the Octave* constants.
	OctaveCode int

	// Workers bounds the number of goroutines evaluating filter channels.
	// Values <= 1 keep the simulation on the calling goroutine. Results
	// are identical either way.
	Workers int

	// SpectralCheck enables a dominant-frequency scan of the input and a
	// diagnostic when the strongest spectral content lies above the
	// SampleRate/8 analysis ceiling.
	SpectralCheck bool
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns defaults for the analysis parameters. SampleRate
// is deliberately left unset: guessing a rate silently mis-scales every
// frequency, so the caller must provide it.
func DefaultConfig() Config {
	return Config{
		StartFrequency: 10,
		DampingRatio:   0.05,
		OctaveCode:     OctaveSixth,
	}
}

// WithSampleRate sets the signal sampling rate in Hz.
func WithSampleRate(sampleRate float64) Option {
	return func(cfg *Config) {
		cfg.SampleRate = sampleRate
	}
}

// WithStartFrequency sets the lowest analysis frequency in Hz.
func WithStartFrequency(freq float64) Option {
	return func(cfg *Config) {
		cfg.StartFrequency = freq
	}
}

// WithDampingRatio sets the SDOF damping ratio.
func WithDampingRatio(zeta float64) Option {
	return func(cfg *Config) {
		cfg.DampingRatio = zeta
	}
}

// WithOctaveCode sets the octave-band divisor code (one of the Octave*
// constants).
func WithOctaveCode(code int) Option {
	return func(cfg *Config) {
		cfg.OctaveCode = code
	}
}

// WithWorkers sets the number of goroutines used across filter channels.
func WithWorkers(workers int) Option {
	return func(cfg *Config) {
		cfg.Workers = workers
	}
}

// WithSpectralCheck enables the dominant-frequency input diagnostic.
func WithSpectralCheck() Option {
	return func(cfg *Config) {
		cfg.SpectralCheck = true
	}
}

// ApplyOptions applies zero or more options to the default config.
// Validation happens in [Analyzer.Compute], not here, so that invalid
// parameters surface as the documented sentinel errors.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
