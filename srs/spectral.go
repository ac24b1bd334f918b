package srs

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-dsp/dsp/window"
	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// maxSpectralSamples caps the pre-check FFT so the diagnostic stays cheap
// relative to the simulation itself.
const maxSpectralSamples = 1 << 16

// spectralCheck estimates the dominant spectral frequency of the input and
// reports a diagnostic when it lies above the sampleRate/8 analysis
// ceiling, where no grid entry can resolve it.
func spectralCheck(signal []float64, sampleRate float64) (Diagnostic, bool) {
	dom, ok := dominantFrequency(signal, sampleRate)
	if !ok {
		return Diagnostic{}, false
	}

	ceiling := sampleRate / maxFreqDivisor
	if dom <= ceiling {
		return Diagnostic{}, false
	}

	return Diagnostic{
		Code:    DiagSpectralContent,
		Channel: -1,
		Freq:    dom,
		Message: fmt.Sprintf(
			"dominant input content at %.6g Hz exceeds the %.6g Hz analysis ceiling",
			dom, ceiling),
	}, true
}

// dominantFrequency returns the frequency of the strongest non-DC spectral
// bin of a Hann-windowed forward transform. Reports false when the signal
// is too short or the transform fails.
func dominantFrequency(signal []float64, sampleRate float64) (float64, bool) {
	n := len(signal)
	if n > maxSpectralSamples {
		n = maxSpectralSamples
	}

	if n < 4 {
		return 0, false
	}

	fftSize := nextPowerOf2(n)

	buf := make([]float64, n)
	copy(buf, signal[:n])
	vecmath.MulBlockInPlace(buf, window.Generate(window.TypeHann, n))

	in := make([]complex128, fftSize)
	for i, v := range buf {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return 0, false
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return 0, false
	}

	binCount := fftSize/2 + 1

	re := make([]float64, binCount)
	im := make([]float64, binCount)

	for i := range binCount {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	mag := make([]float64, binCount)
	vecmath.Magnitude(mag, re, im)

	bestBin := 0
	bestVal := 0.0

	for i := 1; i < binCount; i++ { // skip DC
		if mag[i] > bestVal {
			bestVal = mag[i]
			bestBin = i
		}
	}

	if bestBin == 0 || bestVal == 0 || math.IsNaN(bestVal) {
		return 0, false
	}

	return float64(bestBin) * sampleRate / float64(fftSize), true
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
