package mandel

import (
	"math"
	"testing"

	"github.com/mandelgo/mandel/colorspace"
)

func grayscaleParams(t *testing.T, ssaa int) RenderParameters {
	t.Helper()
	p, err := NewRenderParameters(100, 100, 100, ssaa, colorspace.L8)
	if err != nil {
		t.Fatalf("NewRenderParameters: %v", err)
	}
	return p
}

func TestSampleAverageInRange(t *testing.T) {
	// Grayscale samples accumulate the raw escape speed, so the averaged
	// luma must stay in [0, 1] up to the usual threshold undershoot.
	const pitch = 0.001
	points := []struct{ re, im float64 }{
		{-0.75, 0.1},  // on the boundary
		{0, 0},        // deep inside
		{-1.75, 0.04}, // near the period-3 bulb
		{2, 2},        // far outside
	}
	for _, pt := range points {
		for _, ssaa := range []int{1, 2, 3} {
			p := grayscaleParams(t, ssaa)
			got := samplePixel(pt.re, pt.im, pitch, pitch, p, paletteFor(p.ColorType)).Luma()
			if got < -0.05 || got > 1.05 {
				t.Errorf("samplePixel(%g, %g, ssaa=%d) luma = %g, out of range",
					pt.re, pt.im, ssaa, got)
			}
		}
	}
}

func TestSupersamplingIsStable(t *testing.T) {
	// Supersampling smooths a boundary pixel but must not move its value
	// drastically; the single center sample is already representative.
	const pitch = 0.001
	p1 := grayscaleParams(t, 1)
	p3 := grayscaleParams(t, 3)

	one := samplePixel(-0.75, 0.1, pitch, pitch, p1, paletteFor(p1.ColorType)).Luma()
	three := samplePixel(-0.75, 0.1, pitch, pitch, p3, paletteFor(p3.ColorType)).Luma()

	if diff := math.Abs(one - three); diff > 0.25 {
		t.Errorf("ssaa 1 vs 3 luma moved by %g (%g vs %g)", diff, one, three)
	}
}

func TestEarlyAbortStopsAtFirstSample(t *testing.T) {
	// Far from the set the very first sample exceeds the cutoff, and the
	// enumeration starts at the grid center, so the supersampled result
	// collapses to the plain center sample.
	p := grayscaleParams(t, 5)
	const re, im, pitch = 2.5, 1.5, 0.001

	center := escapeSpeed(re, im, p.MaxIterations, p.CardioidBulbCheck)
	if center <= p.SSAACutoff {
		t.Fatalf("escapeSpeed(%g, %g) = %g, expected above cutoff %g", re, im, center, p.SSAACutoff)
	}

	got := samplePixel(re, im, pitch, pitch, p, paletteFor(p.ColorType)).Luma()
	if math.Abs(got-center) > 1e-12 {
		t.Errorf("samplePixel = %g, want center sample %g", got, center)
	}
}

func TestNoAbortWhenUnrestricted(t *testing.T) {
	// With RestrictSSAARegion off, every grid point is sampled even far
	// from the set. The average still has to be close to the center
	// sample out there, just not identical.
	p := grayscaleParams(t, 3)
	p.RestrictSSAARegion = false
	const re, im, pitch = 2.5, 1.5, 0.001

	center := escapeSpeed(re, im, p.MaxIterations, p.CardioidBulbCheck)
	got := samplePixel(re, im, pitch, pitch, p, paletteFor(p.ColorType)).Luma()
	if math.Abs(got-center) > 0.01 {
		t.Errorf("samplePixel = %g, want close to %g", got, center)
	}
}
