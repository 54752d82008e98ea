package mandel

import (
	"testing"

	"github.com/mandelgo/mandel/colorspace"
)

func TestRenderRequestMapping(t *testing.T) {
	req := RenderRequest{
		CenterReal:    -0.75,
		CenterImag:    0.1,
		RealDistance:  0.1,
		ImagDistance:  0.1,
		Width:         640,
		Height:        480,
		MaxIterations: 200,
		SSAA:          2,
	}

	frame, err := req.Frame()
	if err != nil {
		t.Fatalf("Frame: %v", err)
	}
	if frame != SeahorseValley {
		t.Errorf("Frame = %+v, want %+v", frame, SeahorseValley)
	}

	params, err := req.Parameters()
	if err != nil {
		t.Fatalf("Parameters: %v", err)
	}
	if params.XResolution != 640 || params.YResolution != 480 {
		t.Errorf("resolution = %dx%d", params.XResolution, params.YResolution)
	}
	if params.ColorType != colorspace.RGB8 {
		t.Errorf("ColorType = %v, want RGB8", params.ColorType)
	}
	if !params.Mirroring || !params.CardioidBulbCheck || !params.RestrictSSAARegion {
		t.Error("reference tuning defaults not applied")
	}

	req.Grayscale = true
	params, err = req.Parameters()
	if err != nil {
		t.Fatalf("Parameters: %v", err)
	}
	if params.ColorType != colorspace.L8 {
		t.Errorf("ColorType = %v, want L8", params.ColorType)
	}

	req.Width = 0
	if _, err := req.Parameters(); err == nil {
		t.Error("zero width accepted")
	}
}
