package srs

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-srs/internal/testutil"
)

func TestSimulateZeroSignal(t *testing.T) {
	grid, _ := buildGrid(10, 2000, 1.0/6.0)
	coeffs, _ := deriveCoefficients(grid, 0.05, 1.0/2000.0)

	states := simulate(testutil.Zeros(1000), coeffs, 0)

	for k, st := range states {
		if st.max != 0 || st.min != 0 {
			t.Fatalf("channel %d: extrema (%v, %v), want (0, 0)", k, st.max, st.min)
		}
	}
}

func TestSimulateImpulseUpdatesEveryChannel(t *testing.T) {
	grid, _ := buildGrid(10, 2000, 1.0/6.0)
	coeffs, _ := deriveCoefficients(grid, 0.05, 1.0/2000.0)

	states := simulate(testutil.Impulse(2000, 0), coeffs, 0)

	for k, st := range states {
		if math.IsInf(st.max, -1) || math.IsInf(st.min, 1) {
			t.Fatalf("channel %d: extrema never updated", k)
		}
		if st.max <= 0 {
			t.Fatalf("channel %d: impulse response max %v not positive", k, st.max)
		}
		if math.IsNaN(st.max) || math.IsNaN(st.min) {
			t.Fatalf("channel %d: non-finite extrema (%v, %v)", k, st.max, st.min)
		}
	}
}

func TestSimulateParallelMatchesSequential(t *testing.T) {
	grid, _ := buildGrid(5, 48000, 1.0/24.0)
	coeffs, _ := deriveCoefficients(grid, 0.03, 1.0/48000.0)

	signal := testutil.Sine(50, 48000, 1, 4096)

	seq := simulate(signal, coeffs, 1)

	for _, workers := range []int{2, 3, 8, 1000} {
		par := simulate(signal, coeffs, workers)

		if len(par) != len(seq) {
			t.Fatalf("workers=%d: state count %d vs %d", workers, len(par), len(seq))
		}

		for k := range seq {
			if par[k] != seq[k] {
				t.Fatalf("workers=%d channel %d: %+v vs %+v", workers, k, par[k], seq[k])
			}
		}
	}
}

func TestSimulateZeroCoefficientsZeroResponse(t *testing.T) {
	coeffs := []Coefficients{{}} // degenerate channel

	states := simulate(testutil.Sine(100, 2000, 5, 1000), coeffs, 0)

	if states[0].max != 0 || states[0].min != 0 {
		t.Fatalf("degenerate channel extrema (%v, %v), want (0, 0)", states[0].max, states[0].min)
	}
}

func TestReducePeak(t *testing.T) {
	negInf := math.Inf(-1)
	posInf := math.Inf(1)

	cases := []struct {
		name     string
		max, min float64
		want     float64
	}{
		{"never updated", negInf, posInf, 0},
		{"only min recorded", negInf, -3, 3},
		{"only max recorded", 2, posInf, 2},
		{"positive excursion wins", 5, -3, 5},
		{"negative excursion wins", 2, -7, 7},
		{"tie keeps magnitude", 4, -4, 4},
		{"all zero response", 0, 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := reducePeak(channelState{max: tc.max, min: tc.min})
			if got != tc.want {
				t.Fatalf("got %v want %v", got, tc.want)
			}
			if got < 0 {
				t.Fatalf("negative peak %v", got)
			}
		})
	}
}
