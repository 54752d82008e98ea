// Package colorspace converts between linear light RGB values and the
// byte encoded sRGB pixels written to the output image, and contains the
// color map used to paint escape speeds.
package colorspace

import "math"

// SRGBToLinear converts one sRGB encoded channel in [0, 1] to linear light
// using the standard piecewise sRGB curve.
func SRGBToLinear(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// LinearToSRGB converts one linear light channel to its sRGB encoding.
// It is the inverse of SRGBToLinear up to floating point rounding.
func LinearToSRGB(c float64) float64 {
	if c <= 0.0031308 {
		return 12.92 * c
	}
	return 1.055*math.Pow(c, 1.0/2.4) - 0.055
}

// Quantize maps an sRGB channel in [0.0, 1.0] to a byte in [0, 255].
// The input is clamped to the range before conversion.
func Quantize(srgb float64) uint8 {
	return uint8(math.Round(255 * math.Min(math.Max(srgb, 0), 1)))
}

// Dequantize maps a byte back to an sRGB channel in [0.0, 1.0].
func Dequantize(v uint8) float64 {
	return float64(v) / 255
}

// Encode converts a linear channel straight to its stored byte value.
func Encode(linear float64) uint8 {
	return Quantize(LinearToSRGB(linear))
}

// Decode converts a stored byte value back to a linear channel.
func Decode(v uint8) float64 {
	return SRGBToLinear(Dequantize(v))
}
