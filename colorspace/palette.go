package colorspace

import "math"

// Palette determines the color of a pixel in linear RGB from its escape
// speed. The color map is the one from the python code in
// https://preshing.com/20110926/high-resolution-mandelbrot-in-obfuscated-python/
//
// As the input increases from 0 to 1 the color transitions as
//
//	black -> brown -> orange -> yellow -> cyan -> blue -> dark blue -> black.
//
// The polynomials are defined in sRGB; the result is converted to linear
// light so it can be accumulated by the sampler. Inputs outside [0, 1]
// produce unspecified colors.
func Palette(escapeSpeed float64) LinearRGB {
	third := escapeSpeed * escapeSpeed * escapeSpeed
	ninth := third * third * third
	eighteenth := ninth * ninth
	thirtySixth := eighteenth * eighteenth

	r := math.Pow(255, -2*ninth*thirtySixth) * escapeSpeed
	g := 14.0/51.0*escapeSpeed - 176.0/51.0*eighteenth + 701.0/255.0*ninth
	b := 16.0/51.0*escapeSpeed + ninth - 190.0/51.0*thirtySixth*thirtySixth*eighteenth*ninth

	return LinearRGB{
		R: SRGBToLinear(r),
		G: SRGBToLinear(g),
		B: SRGBToLinear(b),
	}
}

// Gray replicates an escape speed into all three linear channels.
// It is the palette used for grayscale renders.
func Gray(escapeSpeed float64) LinearRGB {
	return LinearRGB{R: escapeSpeed, G: escapeSpeed, B: escapeSpeed}
}
