// mandelrender renders an image of the Mandelbrot set to a PNG file.
// Which part of the set is rendered, the zoom level, the iteration budget
// and a few other things can be changed on the command line.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"math"
	"os"

	"github.com/mandelgo/mandel"
	"github.com/mandelgo/mandel/colorspace"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	var (
		realCenter = flag.Float64("real-center", -0.75, "real part of the image center")
		imagCenter = flag.Float64("imag-center", 0.0, "imaginary part of the image center")
		zoomLevel  = flag.Float64("zoom", 0, "zoom exponent; every +1 halves the visible region")
		width      = flag.Int("width", 1920, "image width in pixels")
		height     = flag.Int("height", 1080, "image height in pixels")
		maxIters   = flag.Int("max-iterations", 255, "iteration budget per sample")
		ssaa       = flag.Int("ssaa", 3, "supersamples per pixel along one axis")
		grayscale  = flag.Bool("grayscale", false, "render in grayscale instead of color")
		alpha      = flag.Bool("alpha", false, "include an (opaque) alpha channel")
		workers    = flag.Int("workers", 0, "parallel workers, 0 means all CPUs")
		output     = flag.String("o", "mandel.png", "output file name")
		verbose    = flag.Bool("verbose", false, "print rendering progress to stderr")
	)
	flag.Parse()

	// The visible region follows from the zoom exponent and the aspect
	// ratio: at zoom 0 the imaginary axis spans 8/3, which frames the
	// whole set comfortably.
	zoom := math.Pow(2, *zoomLevel)
	imagDistance := 8.0 / (3.0 * zoom)
	realDistance := float64(*width) / float64(*height) * imagDistance

	frame, err := mandel.NewFrame(*realCenter, *imagCenter, realDistance, imagDistance)
	if err != nil {
		return err
	}

	colorType := colorspace.RGB8
	switch {
	case *grayscale:
		colorType = colorspace.L8
	case *alpha:
		colorType = colorspace.RGBA8
	}

	params, err := mandel.NewRenderParameters(*width, *height, *maxIters, *ssaa, colorType)
	if err != nil {
		return err
	}
	params.Workers = *workers
	if *verbose {
		params.OnBandDone = func(done, total int) {
			fmt.Fprintf(os.Stderr, "\rrendered %d/%d bands", done, total)
		}
	}

	img, err := mandel.Render(params, frame)
	if err != nil {
		return err
	}
	if *verbose {
		fmt.Fprintln(os.Stderr)
	}

	f, err := os.Create(*output)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode PNG: %w", err)
	}

	log.Printf("rendered image saved to %q", *output)
	return nil
}
