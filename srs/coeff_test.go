package srs

import (
	"math"
	"testing"
)

func TestRampInvariantKnownValues(t *testing.T) {
	const (
		fn   = 100.0
		zeta = 0.05
		dt   = 1.0 / 2000.0
	)

	got, ok := rampInvariant(fn, zeta, dt)
	if !ok {
		t.Fatal("unexpected degenerate channel")
	}

	omega := 2 * math.Pi * fn
	omegaD := omega * math.Sqrt(1-zeta*zeta)
	e := math.Exp(-zeta * omega * dt)
	k := omegaD * dt
	c := e * math.Cos(k)
	s := e * math.Sin(k)
	sp := s / k

	want := Coefficients{
		A1: 2 * c,
		A2: -e * e,
		B1: 1 - sp,
		B2: 2 * (sp - c),
		B3: e*e - sp,
	}

	if got != want {
		t.Fatalf("coefficients mismatch:\ngot  %+v\nwant %+v", got, want)
	}
}

func TestRampInvariantSmallPhaseBranch(t *testing.T) {
	// omega is above the degeneracy floor but omegaD*dt is below the
	// sin(K)/K threshold, so Sp must fall back to E.
	const (
		fn   = 1e-9
		zeta = 0.05
		dt   = 1e-4
	)

	got, ok := rampInvariant(fn, zeta, dt)
	if !ok {
		t.Fatal("unexpected degenerate channel")
	}

	omega := 2 * math.Pi * fn
	e := math.Exp(-zeta * omega * dt)

	if math.Abs(got.B1-(1-e)) > 1e-15 {
		t.Fatalf("B1 mismatch in small-phase branch: got %v want %v", got.B1, 1-e)
	}
}

func TestRampInvariantDegenerateCases(t *testing.T) {
	cases := []struct {
		name string
		fn   float64
		zeta float64
	}{
		{"zero frequency", 0, 0.05},
		{"critically damped", 100, 1.0},
		{"over damped", 100, 1.5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := rampInvariant(tc.fn, tc.zeta, 1.0/2000.0)
			if ok {
				t.Fatal("expected degenerate channel")
			}
			if got != (Coefficients{}) {
				t.Fatalf("degenerate coefficients not zeroed: %+v", got)
			}
		})
	}
}

func TestRampInvariantStable(t *testing.T) {
	// Poles inside the unit circle: |A2| < 1 and |A1| < 1 + (-A2).
	for _, fn := range []float64{1, 10, 100, 200} {
		for _, zeta := range []float64{0.001, 0.05, 0.5, 0.999} {
			cs, ok := rampInvariant(fn, zeta, 1.0/2000.0)
			if !ok {
				t.Fatalf("fn=%v zeta=%v: unexpected degenerate channel", fn, zeta)
			}

			if math.Abs(-cs.A2) >= 1 {
				t.Fatalf("fn=%v zeta=%v: |a2|=%v not below 1", fn, zeta, -cs.A2)
			}

			if math.Abs(cs.A1) >= 1+(-cs.A2) {
				t.Fatalf("fn=%v zeta=%v: pole outside unit circle (a1=%v a2=%v)", fn, zeta, cs.A1, cs.A2)
			}
		}
	}
}

func TestDeriveCoefficientsReportsDegenerateChannels(t *testing.T) {
	grid := []float64{10, 20, 40}

	coeffs, diags := deriveCoefficients(grid, 1.5, 1.0/2000.0)

	if len(coeffs) != len(grid) {
		t.Fatalf("coefficient count: got %d want %d", len(coeffs), len(grid))
	}

	if len(diags) != len(grid) {
		t.Fatalf("diagnostic count: got %d want %d", len(diags), len(grid))
	}

	for i, d := range diags {
		if d.Code != DiagDegenerateChannel {
			t.Fatalf("diagnostic %d: code %v", i, d.Code)
		}
		if d.Channel != i {
			t.Fatalf("diagnostic %d: channel %d", i, d.Channel)
		}
		if d.Freq != grid[i] {
			t.Fatalf("diagnostic %d: freq %v want %v", i, d.Freq, grid[i])
		}
	}
}
