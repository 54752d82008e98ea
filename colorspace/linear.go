package colorspace

// LinearRGB is an RGB triplet whose channels are linear light rather than
// gamma encoded sRGB. Linear values can be meaningfully added together and
// scaled, which is what the supersampler needs to average colors.
type LinearRGB struct {
	R, G, B float64
}

func (c LinearRGB) Add(o LinearRGB) LinearRGB {
	return LinearRGB{R: c.R + o.R, G: c.G + o.G, B: c.B + o.B}
}

func (c LinearRGB) Scale(f float64) LinearRGB {
	return LinearRGB{R: c.R * f, G: c.G * f, B: c.B * f}
}

func (c LinearRGB) Div(f float64) LinearRGB {
	return LinearRGB{R: c.R / f, G: c.G / f, B: c.B / f}
}

// Luma collapses the triplet to a single linear luminance value
// using the Rec. 709 channel weights.
func (c LinearRGB) Luma() float64 {
	return 0.2126*c.R + 0.7152*c.G + 0.0722*c.B
}
