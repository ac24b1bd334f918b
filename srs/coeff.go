package srs

import (
	"fmt"
	"math"
)

const (
	// minOmega is the angular frequency below which a channel is treated
	// as numerically zero and degenerates.
	minOmega = 1e-10

	// minPhase is the |omegaD*dt| threshold below which sin(K)/K is
	// replaced by its limit to avoid cancellation.
	minPhase = 1e-9

	// minDampingRatio is the clamp applied to non-positive damping ratios.
	minDampingRatio = 1e-9
)

// Coefficients holds the ramp-invariant recursive filter quintuple for one
// analysis frequency. The recurrence is
//
//	y[i] = A1*y[i-1] + A2*y[i-2] + B1*x[i] + B2*x[i-1] + B3*x[i-2]
//
// where x is the input acceleration and y the absolute response.
type Coefficients struct {
	A1, A2     float64 // feedback (output history)
	B1, B2, B3 float64 // feedforward (input history)
}

// rampInvariant derives the filter quintuple for natural frequency fn,
// damping ratio zeta and sample interval dt.
//
// Reports false for degenerate channels: a numerically zero frequency, or
// zeta >= 1 where the damped natural frequency has no positive real value.
// Degenerate channels get the zero quintuple and produce a constant zero
// response for any input.
func rampInvariant(fn, zeta, dt float64) (Coefficients, bool) {
	omega := 2 * math.Pi * fn
	radicand := 1 - zeta*zeta

	if math.Abs(omega) < minOmega || radicand <= 0 {
		return Coefficients{}, false
	}

	omegaD := omega * math.Sqrt(radicand)

	e := math.Exp(-zeta * omega * dt)
	k := omegaD * dt
	c := e * math.Cos(k)
	s := e * math.Sin(k)

	sp := e
	if math.Abs(k) >= minPhase {
		sp = s / k
	}

	e2 := e * e

	return Coefficients{
		A1: 2 * c,
		A2: -e2,
		B1: 1 - sp,
		B2: 2 * (sp - c),
		B3: e2 - sp,
	}, true
}

// deriveCoefficients computes one quintuple per grid entry, parallel-indexed
// with the grid. Degenerate channels are zeroed and reported, not fatal.
func deriveCoefficients(grid []float64, zeta, dt float64) ([]Coefficients, []Diagnostic) {
	coeffs := make([]Coefficients, len(grid))

	var diags []Diagnostic

	for k, fn := range grid {
		cs, ok := rampInvariant(fn, zeta, dt)
		if !ok {
			diags = append(diags, Diagnostic{
				Code:    DiagDegenerateChannel,
				Channel: k,
				Freq:    fn,
				Message: fmt.Sprintf(
					"channel %d (%.6g Hz): degenerate oscillator (zeta=%.6g), response forced to zero",
					k, fn, zeta),
			})
		}

		coeffs[k] = cs
	}

	return coeffs, diags
}
