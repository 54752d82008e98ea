package mandel

import "math"

// escapeThreshold is the squared magnitude beyond which a point is
// considered escaped. Aborting at |z| > 2 is enough for correctness, but
// iterating until |z| > 6 reduces color banding near the boundary.
const escapeThreshold = 36.0

// potentialShift tunes where the smoothed escape speed lands in [0, 1].
// e + 1 makes the final image look nicer with the current color curves.
const potentialShift = math.E + 1

// Iterate evaluates the Mandelbrot recurrence
//
//	z_(n+1) = z_n^2 + c
//
// on the given c starting with z_0 = c until it either escapes or the loop
// reaches maxIterations. It returns the number of iterations performed and
// the final squared magnitude of z.
//
// Points inside the main cardioid or the period-2 bulb are not iterated;
// they return maxIterations immediately. Their final squared magnitude is
// not well defined and is reported as NaN to signal that it must not be
// used.
func Iterate(cRe, cIm float64, maxIterations int) (iterations int, magSqr float64) {
	return iterate(cRe, cIm, maxIterations, true)
}

func iterate(cRe, cIm float64, maxIterations int, cardioidBulbCheck bool) (int, float64) {
	cImSqr := cIm * cIm
	magSqr := cRe*cRe + cImSqr

	if cardioidBulbCheck &&
		((cRe+1)*(cRe+1)+cImSqr <= 0.0625 || magSqr*(8*magSqr-3) <= 0.09375-cRe) {
		return maxIterations, math.NaN()
	}

	zRe := cRe
	zIm := cIm
	zReSqr := magSqr - cImSqr
	zImSqr := cImSqr

	// The starting values above already amount to one application of the
	// recurrence, hence iterations starts at 1. The loop body uses only
	// 3 multiplications, which is the minimum.
	iterations := 1
	for iterations < maxIterations && magSqr <= escapeThreshold {
		zIm *= zRe
		zIm += zIm
		zIm += cIm
		zRe = zReSqr - zImSqr + cRe
		zReSqr = zRe * zRe
		zImSqr = zIm * zIm
		magSqr = zReSqr + zImSqr
		iterations++
	}

	return iterations, magSqr
}

// escapeSpeed maps the result of iterate smoothly to a number between
// 0 (inside the set) and roughly 1 (far outside). It uses a potential-like
// function of the final magnitude instead of the raw iteration count to
// avoid visible banding.
func escapeSpeed(cRe, cIm float64, maxIterations int, cardioidBulbCheck bool) float64 {
	iterations, magSqr := iterate(cRe, cIm, maxIterations, cardioidBulbCheck)

	if iterations == maxIterations {
		// Everything that could not be excluded within the iteration
		// budget is labeled as inside the set. This also avoids touching
		// the undefined magnitude of short circuited points.
		return 0
	}

	return (float64(maxIterations-iterations) + math.Log2(math.Log(magSqr)) - potentialShift) /
		float64(maxIterations)
}
