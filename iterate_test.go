package mandel

import (
	"math"
	"testing"
)

func TestInteriorShortCircuit(t *testing.T) {
	// Points inside the main cardioid or the period-2 bulb never escape
	// and must be recognized without iterating, for any budget.
	points := []struct{ re, im float64 }{
		{0, 0},
		{-0.1, 0.1},
		{0.2, 0},
		{-1, 0},
		{-1.1, 0.1},
	}
	for _, p := range points {
		for _, maxIterations := range []int{1, 50, 5000} {
			iterations, magSqr := Iterate(p.re, p.im, maxIterations)
			if iterations != maxIterations {
				t.Errorf("Iterate(%g, %g, %d) = %d iterations, want %d",
					p.re, p.im, maxIterations, iterations, maxIterations)
			}
			if !math.IsNaN(magSqr) {
				t.Errorf("Iterate(%g, %g, %d) magSqr = %g, want NaN",
					p.re, p.im, maxIterations, magSqr)
			}
			if speed := escapeSpeed(p.re, p.im, maxIterations, true); speed != 0 {
				t.Errorf("escapeSpeed(%g, %g, %d) = %g, want 0",
					p.re, p.im, maxIterations, speed)
			}
		}
	}
}

func TestInteriorWithoutShortCircuit(t *testing.T) {
	// With the cardioid/bulb check disabled the same points must exhaust
	// the iteration budget the slow way.
	if iterations, _ := iterate(-1, 0, 100, false); iterations != 100 {
		t.Errorf("iterate(-1, 0, 100, false) = %d iterations, want 100", iterations)
	}
	if speed := escapeSpeed(0, 0, 100, false); speed != 0 {
		t.Errorf("escapeSpeed(0, 0, 100, false) = %g, want 0", speed)
	}
}

func TestKnownExteriorPoint(t *testing.T) {
	iterations, magSqr := Iterate(1, 1, 100)
	if iterations == 100 {
		t.Fatal("Iterate(1, 1, 100) did not escape, but 1+1i is not in the set")
	}
	if magSqr <= escapeThreshold {
		t.Errorf("Iterate(1, 1, 100) final magSqr = %g, want > %g", magSqr, escapeThreshold)
	}
	if speed := escapeSpeed(1, 1, 100, true); speed == 0 {
		t.Error("escapeSpeed(1, 1, 100) = 0, want nonzero")
	}
}

func TestMinusTwoNeverEscapes(t *testing.T) {
	// The magnitude of -2 never changes under iteration, so it exhausts
	// the budget with a well defined final magnitude of 4.
	iterations, magSqr := Iterate(-2, 0, 255)
	if iterations != 255 || magSqr != 4 {
		t.Errorf("Iterate(-2, 0, 255) = (%d, %g), want (255, 4)", iterations, magSqr)
	}
}

func TestEscapeSpeedBounded(t *testing.T) {
	// Sweep a grid covering the set and its surroundings; the smoothed
	// escape speed stays in [0, 1] up to a small tolerance. Points that
	// escape right at the threshold can undershoot 0 by a whisker, which
	// the quantizer clamps away later.
	const maxIterations = 100
	for re := -2.5; re <= 1.0; re += 0.05 {
		for im := 0.0; im <= 1.25; im += 0.05 {
			speed := escapeSpeed(re, im, maxIterations, true)
			if speed < -0.05 || speed > 1.05 {
				t.Errorf("escapeSpeed(%g, %g, %d) = %g, out of range", re, im, maxIterations, speed)
			}
		}
	}
}
