// Package mandel renders images of the Mandelbrot set.
//
// A render is described by a Frame, a rectangle shaped region of the
// complex plane, and by RenderParameters, which carry the output
// resolution, iteration budget, supersampling factor and pixel format.
// Render computes the image in parallel bands and returns it in the
// conventional orientation, ready to be encoded by image/png or similar.
package mandel

import (
	"fmt"
	"math"
)

// Frame is a rectangle shaped region in the complex plane, described by
// its center point and its extent along the real and imaginary axes.
//
//	          RealDistance
//	|-------------------------------|
//	|                               |
//	|               x               |  ImagDistance
//	|  CenterReal + CenterImag*i    |
//	|-------------------------------|
type Frame struct {
	CenterReal   float64
	CenterImag   float64
	RealDistance float64
	ImagDistance float64
}

// NewFrame validates the region and returns it as a Frame.
// Both distances must be positive and all fields must be finite.
func NewFrame(centerReal, centerImag, realDistance, imagDistance float64) (Frame, error) {
	f := Frame{
		CenterReal:   centerReal,
		CenterImag:   centerImag,
		RealDistance: realDistance,
		ImagDistance: imagDistance,
	}
	if err := f.validate(); err != nil {
		return Frame{}, err
	}
	return f, nil
}

func (f Frame) validate() error {
	for _, v := range [...]float64{f.CenterReal, f.CenterImag, f.RealDistance, f.ImagDistance} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &ValidationError{Field: "frame", Reason: "all fields must be finite"}
		}
	}
	if f.RealDistance <= 0 || f.ImagDistance <= 0 {
		return &ValidationError{Field: "frame", Reason: "distances must be positive"}
	}
	return nil
}

// ValidationError reports a rejected Frame or RenderParameters field.
// Validation happens at construction time; the rendering kernel itself
// has no error paths.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Classic regions / landmarks in the Mandelbrot set
var (
	// FullSet – the whole set with some room around it
	FullSet = Frame{
		CenterReal:   -0.75,
		CenterImag:   0.0,
		RealDistance: 3.0,
		ImagDistance: 2.0,
	}

	// Seahorse Valley – dense filaments and repeating “seahorse” curls
	SeahorseValley = Frame{
		CenterReal:   -0.75,
		CenterImag:   0.1,
		RealDistance: 0.1,
		ImagDistance: 0.1,
	}

	// Elephant Valley – large bulb with trunk-like tendrils
	ElephantValley = Frame{
		CenterReal:   -1.8,
		CenterImag:   -0.06,
		RealDistance: 0.1,
		ImagDistance: 0.08,
	}

	// Spiral Minibrot – small Mandelbrot copy with tight spiral arms
	SpiralMinibrot = Frame{
		CenterReal:   -0.74275,
		CenterImag:   0.13175,
		RealDistance: 0.0015,
		ImagDistance: 0.0015,
	}

	// Triple Spiral – threefold symmetric spiral structure
	TripleSpiral = Frame{
		CenterReal:   -0.7465,
		CenterImag:   0.0965,
		RealDistance: 0.003,
		ImagDistance: 0.003,
	}

	// Valley of the Dragon – deep, highly detailed spiral filaments
	ValleyOfTheDragon = Frame{
		CenterReal:   -0.7375,
		CenterImag:   0.1825,
		RealDistance: 0.005,
		ImagDistance: 0.005,
	}

	// Minibrot in a Mini-Spiral – self-similar Mandelbrot copy inside a spiral arm
	MinibrotInMiniSpiral = Frame{
		CenterReal:   -1.73825,
		CenterImag:   -0.02275,
		RealDistance: 0.0015,
		ImagDistance: 0.0015,
	}
)
