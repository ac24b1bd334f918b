// Package testutil provides deterministic excitation signals and tolerance
// helpers shared by the analysis tests.
package testutil

import "math"

// Sine generates a deterministic sine wave.
func Sine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// HalfSinePulse generates the classical shock-test excitation: a half-sine
// pulse of the given duration followed by zeros.
func HalfSinePulse(durationSec, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	pulseSamples := int(durationSec * sampleRate)
	if pulseSamples > length {
		pulseSamples = length
	}
	for i := range pulseSamples {
		out[i] = amplitude * math.Sin(math.Pi*float64(i)/float64(pulseSamples))
	}
	return out
}

// Zeros returns an all-zero signal of length n.
func Zeros(n int) []float64 {
	return make([]float64, n)
}
