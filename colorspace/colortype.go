package colorspace

import "fmt"

// ColorType identifies the pixel format of a rendered image.
type ColorType uint8

const (
	// L8 is 8 bit grayscale, one byte per pixel.
	L8 ColorType = iota
	// RGB8 is 8 bit color, three bytes per pixel.
	RGB8
	// RGBA8 is 8 bit color with a fully opaque alpha channel,
	// four bytes per pixel.
	RGBA8
)

func (ct ColorType) BytesPerPixel() int {
	switch ct {
	case L8:
		return 1
	case RGB8:
		return 3
	case RGBA8:
		return 4
	}
	return 0
}

func (ct ColorType) HasColor() bool {
	return ct == RGB8 || ct == RGBA8
}

func (ct ColorType) HasAlpha() bool {
	return ct == RGBA8
}

func (ct ColorType) String() string {
	switch ct {
	case L8:
		return "L8"
	case RGB8:
		return "RGB8"
	case RGBA8:
		return "RGBA8"
	}
	return fmt.Sprintf("ColorType(%d)", uint8(ct))
}

func (ct ColorType) Valid() bool {
	return ct == L8 || ct == RGB8 || ct == RGBA8
}

// PixelEncoder returns a function that writes one pixel of this color type
// into dst, which must be at least BytesPerPixel long. The format dispatch
// happens here, once, so the per pixel loop does not branch on it.
func (ct ColorType) PixelEncoder() func(dst []byte, c LinearRGB) {
	switch ct {
	case L8:
		return func(dst []byte, c LinearRGB) {
			dst[0] = Encode(c.Luma())
		}
	case RGB8:
		return func(dst []byte, c LinearRGB) {
			dst[0] = Encode(c.R)
			dst[1] = Encode(c.G)
			dst[2] = Encode(c.B)
		}
	case RGBA8:
		return func(dst []byte, c LinearRGB) {
			dst[0] = Encode(c.R)
			dst[1] = Encode(c.G)
			dst[2] = Encode(c.B)
			dst[3] = 0xff
		}
	}
	return nil
}
