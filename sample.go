package mandel

import "github.com/mandelgo/mandel/colorspace"

// ssaaRegionColor is the orange/brown marker used when ShowSSAARegion is set.
var ssaaRegionColor = colorspace.LinearRGB{R: 150.0 / 255.0, G: 75.0 / 255.0, B: 0}

// paletteFor picks the escape speed to linear color mapping once per band,
// so the hot sampling loop never branches on the pixel format.
func paletteFor(ct colorspace.ColorType) func(float64) colorspace.LinearRGB {
	if ct.HasColor() {
		return colorspace.Palette
	}
	return colorspace.Gray
}

// samplePixel computes the average color of one pixel by sampling escape
// speeds on a grid inside the pixel's footprint. With x as the pixel
// center and SqrtSamplesPerPixel = 3 the dots are also sampled:
//
//	 pixelWidth
//	  -------
//	  .  .  .  |
//	  .  x  .  | pixelHeight
//	  .  .  .  |
//
// The offsets are symmetric about the center and evenly spaced, so the gap
// between an edge sample and the pixel edge is half the gap between
// samples. If the factor is even the exact center is never sampled, and a
// factor of 1 degenerates to a single center sample.
//
// The grid is visited starting from the middle of the enumeration order
// and wrapping around, so that when sampling aborts early the samples
// closest to the center have already been taken. Sampling aborts as soon
// as one sample's escape speed exceeds the cutoff; such pixels are far
// from the set and need no anti-aliasing. The accumulated color is divided
// by the number of samples actually taken.
func samplePixel(cRe, cIm, pixelWidth, pixelHeight float64, p RenderParameters, palette func(float64) colorspace.LinearRGB) colorspace.LinearRGB {
	s := p.SqrtSamplesPerPixel
	sF := float64(s)
	maxSamples := s * s

	var color colorspace.LinearRGB
	samples := 0

	for n := 0; n < maxSamples; n++ {
		k := (n + maxSamples/2) % maxSamples
		rowOffset := (2*float64(k/s+1) - sF - 1) / (2 * sF)
		colOffset := (2*float64(k%s+1) - sF - 1) / (2 * sF)

		speed := escapeSpeed(
			cRe+rowOffset*pixelWidth,
			cIm+colOffset*pixelHeight,
			p.MaxIterations,
			p.CardioidBulbCheck,
		)

		color = color.Add(palette(speed))
		samples++

		if p.RestrictSSAARegion && speed > p.SSAACutoff {
			if p.ShowSSAARegion {
				color = ssaaRegionColor
			}
			break
		}
	}

	return color.Div(float64(samples))
}
