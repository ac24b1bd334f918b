// Package srs computes shock response spectra (SRS) from acceleration
// time histories.
//
// An SRS sweeps a family of single-degree-of-freedom (SDOF) damped
// oscillators across a logarithmically spaced frequency grid, drives each
// oscillator with the input acceleration signal through a ramp-invariant
// recursive filter, and reports the peak absolute response per frequency.
// The result is the standard maximax spectrum used in shock and vibration
// testing.
//
// # Usage
//
// One-shot analysis with explicit parameters:
//
//	res, err := srs.Compute(signal,
//	    srs.WithSampleRate(2000),
//	    srs.WithStartFrequency(10),
//	    srs.WithDampingRatio(0.05),
//	    srs.WithOctaveCode(srs.OctaveTwelfth),
//	)
//	if err != nil {
//	    // empty signal, non-positive rate/start frequency, bad octave code
//	}
//	for i, f := range res.Frequencies {
//	    fmt.Printf("%8.2f Hz  %g\n", f, res.Peaks[i])
//	}
//
// Recoverable conditions (clamped damping ratio, degenerate channels,
// early Nyquist truncation) do not fail the computation; they are reported
// in [Result.Diagnostics].
//
// This package provides the time-domain recursion only. Frequency-domain
// SRS variants and multi-channel analysis are out of scope.
package srs
