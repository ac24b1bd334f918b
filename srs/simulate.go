package srs

import (
	"math"
	"sync"
)

// channelState holds the mutable recursion state and running extrema for
// one analysis frequency. Extrema are seeded with infinities, reserved
// values no real acceleration response can reach, so the first sample
// always overwrites them.
type channelState struct {
	y1, y2   float64 // previous and two-before outputs
	max, min float64
}

// simulateChannel runs one SDOF filter over the whole signal, tracking
// running extrema. The input history terms x[i-1], x[i-2] come straight
// from the signal slice, so channels never share mutable state and this
// function is safe to call concurrently for distinct states.
func simulateChannel(signal []float64, c Coefficients, st *channelState) {
	var (
		y1, y2 float64
		x1, x2 float64
	)

	maxVal := math.Inf(-1)
	minVal := math.Inf(1)

	for _, x := range signal {
		y := c.A1*y1 + c.A2*y2 + c.B1*x + c.B2*x1 + c.B3*x2

		if y > maxVal {
			maxVal = y
		}

		if y < minVal {
			minVal = y
		}

		y2, y1 = y1, y
		x2, x1 = x1, x
	}

	st.y1 = y1
	st.y2 = y2
	st.max = maxVal
	st.min = minVal
}

// simulate evaluates all filter channels against the signal and returns
// the per-channel states. The time recurrence is strictly sequential per
// channel; parallelism is applied across channels only, so the worker and
// single-goroutine paths are bit-identical.
func simulate(signal []float64, coeffs []Coefficients, workers int) []channelState {
	states := make([]channelState, len(coeffs))

	if workers <= 1 || len(coeffs) < 2 {
		for k := range coeffs {
			simulateChannel(signal, coeffs[k], &states[k])
		}

		return states
	}

	if workers > len(coeffs) {
		workers = len(coeffs)
	}

	chunk := (len(coeffs) + workers - 1) / workers

	var wg sync.WaitGroup

	for lo := 0; lo < len(coeffs); lo += chunk {
		hi := min(lo+chunk, len(coeffs))

		wg.Add(1)

		go func(lo, hi int) {
			defer wg.Done()

			for k := lo; k < hi; k++ {
				simulateChannel(signal, coeffs[k], &states[k])
			}
		}(lo, hi)
	}

	wg.Wait()

	return states
}

// reducePeak converts running extrema into the reported peak: the larger
// magnitude of the positive and negative excursions, always non-negative.
// A still-infinite extremum means the corresponding side never recorded a
// value; both infinite means the channel never updated at all.
func reducePeak(st channelState) float64 {
	maxSet := !math.IsInf(st.max, -1)
	minSet := !math.IsInf(st.min, 1)

	switch {
	case !maxSet && !minSet:
		return 0
	case !maxSet:
		return math.Abs(st.min)
	case !minSet:
		return st.max
	}

	if st.max > math.Abs(st.min) {
		return st.max
	}

	return math.Abs(st.min)
}
