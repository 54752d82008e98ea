package mandel

import "math"

// renderBand fills one band of the transposed pixel buffer: all pixels
// sharing the real coordinate selected by bandIndex, laid out contiguously
// along the imaginary axis. len(band) must be BytesPerPixel * YResolution.
func renderBand(p RenderParameters, f Frame, bandIndex int, band []byte) {
	xResolution := float64(p.XResolution)
	yResolution := float64(p.YResolution)

	realDelta := pixelPitch(f.RealDistance, p.XResolution)
	imagDelta := pixelPitch(f.ImagDistance, p.YResolution)

	// True if the frame contains the real axis. The set is symmetric under
	// conjugation, so the result of the larger half can then be mirrored
	// onto the smaller one.
	mirror := p.Mirroring && math.Abs(f.CenterImag) < f.ImagDistance

	// The per pixel loop always assumes that the half with negative
	// imaginary part is the larger one. If that is false we render the
	// conjugate frame instead and flip the band vertically afterwards.
	needFlip := f.CenterImag > 0
	centerImag := f.CenterImag
	if needFlip {
		centerImag = -centerImag
	}

	startReal := f.CenterReal - f.RealDistance/2
	startImag := centerImag - f.ImagDistance/2

	// The real part of c is the same for the entire band.
	cRe := startReal + f.RealDistance*float64(bandIndex)/xResolution

	bpp := p.ColorType.BytesPerPixel()
	palette := paletteFor(p.ColorType)
	encode := p.ColorType.PixelEncoder()

	mirrorFrom := 0
	for yIndex := 0; yIndex < len(band); yIndex += bpp {
		cIm := startImag + f.ImagDistance*float64(yIndex)/(float64(bpp)*yResolution)

		if !(mirror && cIm > 0) {
			color := samplePixel(cRe, cIm, realDelta, imagDelta, p, palette)
			encode(band[yIndex:yIndex+bpp], color)

			// Track how many pixels have been computed so they can
			// potentially be mirrored.
			mirrorFrom += bpp
		} else {
			// Every pixel with negative imaginary part has been rendered.
			// Step back before copying: the first time this branch runs,
			// mirrorFrom points just past the pixel containing the real
			// line, which is infinitely thin and must not be mirrored.
			// Since the negative half is never the smaller one this walk
			// cannot run past the start of the band.
			mirrorFrom -= bpp
			copy(band[yIndex:yIndex+bpp], band[mirrorFrom-bpp:mirrorFrom])
		}
	}

	if needFlip {
		reversePixels(band, bpp)
	}
}

// pixelPitch is the distance in the complex plane between the centers of
// two neighboring pixels. A single pixel spans the whole extent.
func pixelPitch(distance float64, resolution int) float64 {
	if resolution <= 1 {
		return distance
	}
	return distance / float64(resolution-1)
}

// reversePixels reverses the order of the pixels in band while keeping the
// channel bytes of each pixel together. Reversing at byte granularity
// would turn RGB(A) pixels into (A)BGR ones.
func reversePixels(band []byte, bpp int) {
	var tmp [4]byte
	for i, j := 0, len(band)-bpp; i < j; i, j = i+bpp, j-bpp {
		front := band[i : i+bpp]
		back := band[j : j+bpp]
		copy(tmp[:bpp], front)
		copy(front, back)
		copy(back, tmp[:bpp])
	}
}
