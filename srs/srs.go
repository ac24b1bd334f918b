package srs

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyInput            = errors.New("srs: input signal is empty")
	ErrInvalidSampleRate     = errors.New("srs: sample rate must be positive")
	ErrInvalidStartFrequency = errors.New("srs: start frequency must be positive")
	ErrInvalidOctaveCode     = errors.New("srs: octave code must be 1, 2, 3 or 4")
	ErrEmptyGrid             = errors.New("srs: no analysis frequency qualifies below the sample-rate bound")
)

// DiagCode classifies a recoverable condition encountered during analysis.
type DiagCode int

const (
	// DiagDampingClamped reports a non-positive damping ratio coerced to
	// the 1e-9 minimum.
	DiagDampingClamped DiagCode = iota + 1

	// DiagDegenerateChannel reports a channel whose filter coefficients
	// were zeroed (zero frequency or damping ratio >= 1).
	DiagDegenerateChannel

	// DiagNyquistBoundary reports early grid truncation at the Nyquist
	// frequency.
	DiagNyquistBoundary

	// DiagSpectralContent reports dominant input content above the
	// analysis ceiling (spectral pre-check only).
	DiagSpectralContent
)

// Diagnostic describes one recoverable condition. The computation
// continued with the documented fallback.
type Diagnostic struct {
	Code    DiagCode
	Channel int     // affected channel index, -1 when not channel-specific
	Freq    float64 // frequency the condition refers to, 0 when none
	Message string
}

// Result holds the shock response spectrum: one non-negative peak per
// analysis frequency, parallel-indexed, plus any diagnostics raised along
// the way. Immutable after Compute returns.
type Result struct {
	Frequencies []float64
	Peaks       []float64
	Diagnostics []Diagnostic
}

// Analyzer computes shock response spectra from a fixed configuration.
type Analyzer struct {
	cfg Config
}

// New creates an Analyzer with the given options.
func New(opts ...Option) *Analyzer {
	return &Analyzer{cfg: ApplyOptions(opts...)}
}

// Compute is a one-shot analysis with explicit options.
func Compute(signal []float64, opts ...Option) (Result, error) {
	return New(opts...).Compute(signal)
}

// Compute runs the full pipeline: frequency grid, per-frequency filter
// coefficients, lockstep SDOF simulation, peak reduction.
//
// Precondition violations return a nil-result sentinel error; recoverable
// conditions are reported in [Result.Diagnostics] and the computation
// continues with the documented fallback.
func (a *Analyzer) Compute(signal []float64) (Result, error) {
	cfg := a.cfg

	if len(signal) == 0 {
		return Result{}, ErrEmptyInput
	}

	if cfg.SampleRate <= 0 {
		return Result{}, fmt.Errorf("%w: got %g", ErrInvalidSampleRate, cfg.SampleRate)
	}

	if cfg.StartFrequency <= 0 {
		return Result{}, fmt.Errorf("%w: got %g", ErrInvalidStartFrequency, cfg.StartFrequency)
	}

	frac, ok := octaveFraction(cfg.OctaveCode)
	if !ok {
		return Result{}, fmt.Errorf("%w: got %d", ErrInvalidOctaveCode, cfg.OctaveCode)
	}

	var diags []Diagnostic

	zeta := cfg.DampingRatio
	if zeta <= 0 {
		diags = append(diags, Diagnostic{
			Code:    DiagDampingClamped,
			Channel: -1,
			Message: fmt.Sprintf("damping ratio %.6g is non-positive, clamped to %g", zeta, minDampingRatio),
		})
		zeta = minDampingRatio
	}

	grid, gridDiags := buildGrid(cfg.StartFrequency, cfg.SampleRate, frac)
	if len(grid) == 0 {
		return Result{}, ErrEmptyGrid
	}

	diags = append(diags, gridDiags...)

	coeffs, coeffDiags := deriveCoefficients(grid, zeta, 1/cfg.SampleRate)
	diags = append(diags, coeffDiags...)

	if cfg.SpectralCheck {
		if d, ok := spectralCheck(signal, cfg.SampleRate); ok {
			diags = append(diags, d)
		}
	}

	states := simulate(signal, coeffs, cfg.Workers)

	peaks := make([]float64, len(states))
	for k := range states {
		peaks[k] = reducePeak(states[k])
	}

	return Result{
		Frequencies: grid,
		Peaks:       peaks,
		Diagnostics: diags,
	}, nil
}
