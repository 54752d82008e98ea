package mandel

import (
	"image"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/mandelgo/mandel/colorspace"
)

// Render computes an image of the Mandelbrot set.
//
// The frame selects the region of the complex plane, the parameters select
// resolution, iteration budget, supersampling and pixel format. The pixel
// data is rendered in a transposed layout so that every band along the
// imaginary axis is a contiguous, independently written slice; the bands
// are distributed over a fixed size worker pool and a final transpose pass
// produces the conventional orientation. The output is bit for bit
// identical for any worker count.
//
// The returned image is *image.Gray for colorspace.L8 and *image.RGBA
// otherwise (for colorspace.RGB8 the alpha channel is fully opaque).
// Render performs no I/O; encoding and saving are up to the caller.
func Render(p RenderParameters, f Frame) (image.Image, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	if err := f.validate(); err != nil {
		return nil, err
	}

	bpp := p.ColorType.BytesPerPixel()
	bandLen := bpp * p.YResolution
	buf := make([]byte, bandLen*p.XResolution)

	workers := p.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	var done atomic.Int64
	var g errgroup.Group
	g.SetLimit(workers)
	for bandIndex := 0; bandIndex < p.XResolution; bandIndex++ {
		bandIndex := bandIndex
		band := buf[bandIndex*bandLen : (bandIndex+1)*bandLen]
		g.Go(func() error {
			renderBand(p, f, bandIndex, band)
			if p.OnBandDone != nil {
				p.OnBandDone(int(done.Add(1)), p.XResolution)
			}
			return nil
		})
	}
	// The band renderer has no error paths; Wait only serves as the join
	// barrier before the transpose below.
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return transpose(p, buf), nil
}

// transpose reassembles the band buffer into the conventional row major
// orientation: x along the real axis, y increasing downward from the
// largest imaginary coordinate. For RGB8 it also expands every pixel with
// an opaque alpha byte, since the standard library has no 3 byte RGB
// image type.
func transpose(p RenderParameters, buf []byte) image.Image {
	bpp := p.ColorType.BytesPerPixel()
	bandLen := bpp * p.YResolution
	rect := image.Rect(0, 0, p.XResolution, p.YResolution)

	if p.ColorType == colorspace.L8 {
		img := image.NewGray(rect)
		for x := 0; x < p.XResolution; x++ {
			band := buf[x*bandLen : (x+1)*bandLen]
			for y := 0; y < p.YResolution; y++ {
				img.Pix[(p.YResolution-1-y)*img.Stride+x] = band[y]
			}
		}
		return img
	}

	img := image.NewRGBA(rect)
	for x := 0; x < p.XResolution; x++ {
		band := buf[x*bandLen : (x+1)*bandLen]
		for y := 0; y < p.YResolution; y++ {
			src := band[y*bpp : (y+1)*bpp]
			dst := img.Pix[(p.YResolution-1-y)*img.Stride+x*4:]
			dst[0] = src[0]
			dst[1] = src[1]
			dst[2] = src[2]
			if p.ColorType == colorspace.RGBA8 {
				dst[3] = src[3]
			} else {
				dst[3] = 0xff
			}
		}
	}
	return img
}
