package mandel

import "github.com/mandelgo/mandel/colorspace"

// RenderRequest is the wire format understood by the render service in
// cmd/server. It is sent as a single JSON message (or POST body) and maps
// onto a Frame and RenderParameters pair.
type RenderRequest struct {
	CenterReal   float64 `json:"center_real"`
	CenterImag   float64 `json:"center_imag"`
	RealDistance float64 `json:"real_distance"`
	ImagDistance float64 `json:"imag_distance"`

	Width         int  `json:"width"`
	Height        int  `json:"height"`
	MaxIterations int  `json:"max_iterations"`
	SSAA          int  `json:"ssaa"`
	Grayscale     bool `json:"grayscale"`
}

// Frame returns the requested region of the complex plane.
func (r RenderRequest) Frame() (Frame, error) {
	return NewFrame(r.CenterReal, r.CenterImag, r.RealDistance, r.ImagDistance)
}

// Parameters returns validated render parameters for the request.
func (r RenderRequest) Parameters() (RenderParameters, error) {
	colorType := colorspace.RGB8
	if r.Grayscale {
		colorType = colorspace.L8
	}
	return NewRenderParameters(r.Width, r.Height, r.MaxIterations, r.SSAA, colorType)
}

// Progress message types sent by the render service while a render is
// running. The final message on the socket is a binary PNG frame.
const (
	MessageProgress = "progress"
	MessageError    = "error"
	MessageDone     = "done"
)

// ProgressMessage reports how far a render has come, or why it failed.
type ProgressMessage struct {
	Type  string `json:"type"`
	Done  int    `json:"done,omitempty"`
	Total int    `json:"total,omitempty"`
	Error string `json:"error,omitempty"`
}
