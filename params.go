package mandel

import (
	"math"

	"github.com/mandelgo/mandel/colorspace"
)

// Default tuning values used by NewRenderParameters.
const (
	// DefaultSSAACutoff is the escape speed above which supersampling of a
	// pixel is aborted. Points this far from the set do not need
	// anti-aliasing. For very low resolutions the abort region begins
	// clipping into the fractal, but at typical resolutions it does not.
	DefaultSSAACutoff = 0.963

	// maxSqrtSamplesPerPixel bounds the supersampling grid so the sample
	// count of a pixel always fits comfortably in an int.
	maxSqrtSamplesPerPixel = 255
)

// RenderParameters describes an image of the Mandelbrot set to render.
//
// Use NewRenderParameters to get a validated instance with the reference
// tuning values filled in. The zero value is not valid.
type RenderParameters struct {
	// XResolution and YResolution are the output size in pixels along the
	// real and imaginary axes.
	XResolution int
	YResolution int

	// MaxIterations bounds the escape test loop per sample.
	MaxIterations int

	// SqrtSamplesPerPixel is the supersampling grid size along one axis;
	// a value of 3 means every pixel is sampled up to 3^2 = 9 times.
	// 1 disables supersampling.
	SqrtSamplesPerPixel int

	// ColorType selects the pixel format of the output image.
	ColorType colorspace.ColorType

	// Workers is the number of bands rendered concurrently.
	// Zero or negative means GOMAXPROCS.
	Workers int

	// Mirroring enables copying already computed pixels across the real
	// axis instead of recomputing them. Only relevant when the frame
	// contains the real axis.
	Mirroring bool

	// CardioidBulbCheck tests every sample against the main cardioid and
	// the period-2 bulb before iterating. Disabling it can be faster when
	// the frame does not show those regions.
	CardioidBulbCheck bool

	// RestrictSSAARegion aborts supersampling of a pixel once a sample's
	// escape speed exceeds SSAACutoff.
	RestrictSSAARegion bool
	SSAACutoff         float64

	// ShowSSAARegion paints the region where supersampling was aborted
	// orange/brown. Debugging aid; pixels where supersampling was only
	// partially done appear dark.
	ShowSSAARegion bool

	// OnBandDone, if non-nil, is called after each band has been rendered
	// with the number of completed bands and the total band count. It may
	// be called concurrently from several worker goroutines.
	OnBandDone func(done, total int)
}

// NewRenderParameters returns validated render parameters with the
// reference tuning values: mirroring enabled, cardioid/bulb short circuit
// enabled, supersampling restricted to the neighborhood of the set.
func NewRenderParameters(xResolution, yResolution, maxIterations, sqrtSamplesPerPixel int, colorType colorspace.ColorType) (RenderParameters, error) {
	p := RenderParameters{
		XResolution:         xResolution,
		YResolution:         yResolution,
		MaxIterations:       maxIterations,
		SqrtSamplesPerPixel: sqrtSamplesPerPixel,
		ColorType:           colorType,
		Mirroring:           true,
		CardioidBulbCheck:   true,
		RestrictSSAARegion:  true,
		SSAACutoff:          DefaultSSAACutoff,
	}
	if err := p.validate(); err != nil {
		return RenderParameters{}, err
	}
	return p, nil
}

func (p RenderParameters) validate() error {
	if p.XResolution < 1 || p.YResolution < 1 {
		return &ValidationError{Field: "resolution", Reason: "must be positive"}
	}
	if p.MaxIterations < 1 {
		return &ValidationError{Field: "max iterations", Reason: "must be positive"}
	}
	if p.SqrtSamplesPerPixel < 1 || p.SqrtSamplesPerPixel > maxSqrtSamplesPerPixel {
		return &ValidationError{Field: "supersampling factor", Reason: "must be between 1 and 255"}
	}
	if !p.ColorType.Valid() {
		return &ValidationError{Field: "color type", Reason: "unknown pixel format"}
	}
	// The full buffer is bytesPerPixel * x * y bytes and must be indexable.
	bpp := p.ColorType.BytesPerPixel()
	if p.XResolution > math.MaxInt/bpp/p.YResolution {
		return &ValidationError{Field: "resolution", Reason: "pixel buffer size overflows"}
	}
	return nil
}
