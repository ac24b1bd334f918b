package srs

import (
	"fmt"
	"math"
)

// maxFreqDivisor bounds the analysis ceiling: no grid entry beyond
// sampleRate/8. Above that the recursive filter has fewer than eight
// samples per oscillator period and the peak estimate degrades.
const maxFreqDivisor = 8

// octaveFraction maps an octave-band divisor code to the per-step octave
// fraction. Reports false for unknown codes.
func octaveFraction(code int) (float64, bool) {
	switch code {
	case OctaveThird:
		return 1.0 / 3.0, true
	case OctaveSixth:
		return 1.0 / 6.0, true
	case OctaveTwelfth:
		return 1.0 / 12.0, true
	case OctaveTwentyFourth:
		return 1.0 / 24.0, true
	default:
		return 0, false
	}
}

// buildGrid generates the ordered analysis frequencies fn[j] = f0 * 2^(j*frac).
//
// The start frequency is always the first entry. Candidates stop at the
// sampleRate/8 analysis ceiling; reaching the Nyquist frequency first stops
// the grid too and additionally reports a boundary diagnostic referencing
// the last accepted frequency.
func buildGrid(startFreq, sampleRate, frac float64) ([]float64, []Diagnostic) {
	maxFreq := sampleRate / maxFreqDivisor
	nyquist := sampleRate / 2

	grid := []float64{startFreq}

	var diags []Diagnostic

	for j := 1; ; j++ {
		candidate := startFreq * math.Pow(2, float64(j)*frac)
		if candidate > maxFreq {
			break
		}

		if candidate >= nyquist {
			diags = append(diags, Diagnostic{
				Code:    DiagNyquistBoundary,
				Channel: -1,
				Freq:    grid[len(grid)-1],
				Message: fmt.Sprintf(
					"grid truncated at %.6g Hz: next step reaches the Nyquist frequency %.6g Hz",
					grid[len(grid)-1], nyquist),
			})

			break
		}

		grid = append(grid, candidate)
	}

	return grid, diags
}
