// mandelclient is a CLI client for the render server. It connects over
// websocket, submits a render request, reports progress and saves the
// delivered image as a PNG file.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/bytedance/sonic"
	"github.com/coder/websocket"

	"github.com/mandelgo/mandel"
)

func main() {
	log.Printf("starting render client")
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	var (
		addr       = flag.String("addr", "ws://localhost:8080/ws", "websocket address of the render server")
		realCenter = flag.Float64("real-center", -0.75, "real part of the image center")
		imagCenter = flag.Float64("imag-center", 0.0, "imaginary part of the image center")
		realDist   = flag.Float64("real-distance", 3.0, "extent along the real axis")
		imagDist   = flag.Float64("imag-distance", 2.0, "extent along the imaginary axis")
		width      = flag.Int("width", 1920, "image width in pixels")
		height     = flag.Int("height", 1080, "image height in pixels")
		maxIters   = flag.Int("max-iterations", 255, "iteration budget per sample")
		ssaa       = flag.Int("ssaa", 3, "supersamples per pixel along one axis")
		grayscale  = flag.Bool("grayscale", false, "render in grayscale instead of color")
		output     = flag.String("o", "mandel.png", "output file name")
		timeout    = flag.Duration("timeout", 10*time.Minute, "give up after this long")
	)
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	log.Printf("connecting to render server at %s", *addr)
	c, _, err := websocket.Dial(ctx, *addr, nil)
	if err != nil {
		return fmt.Errorf("dial %s: %w", *addr, err)
	}
	defer c.CloseNow()
	// The final message carries a whole PNG.
	c.SetReadLimit(256 << 20)

	req := mandel.RenderRequest{
		CenterReal:    *realCenter,
		CenterImag:    *imagCenter,
		RealDistance:  *realDist,
		ImagDistance:  *imagDist,
		Width:         *width,
		Height:        *height,
		MaxIterations: *maxIters,
		SSAA:          *ssaa,
		Grayscale:     *grayscale,
	}
	data, err := sonic.Marshal(req)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	if err := c.Write(ctx, websocket.MessageText, data); err != nil {
		return fmt.Errorf("send request: %w", err)
	}

	log.Printf("request sent, waiting for the rendered image")
	for {
		typ, data, err := c.Read(ctx)
		if err != nil {
			return fmt.Errorf("read message: %w", err)
		}

		// Progress and errors arrive as JSON text; the image as binary.
		if typ == websocket.MessageBinary {
			if err := os.WriteFile(*output, data, 0o644); err != nil {
				return fmt.Errorf("write output file: %w", err)
			}
			log.Printf("rendered image saved to %q", *output)
			return nil
		}

		var msg mandel.ProgressMessage
		if err := sonic.Unmarshal(data, &msg); err != nil {
			return fmt.Errorf("decode message: %w", err)
		}
		switch msg.Type {
		case mandel.MessageProgress:
			log.Printf("rendered %d/%d bands", msg.Done, msg.Total)
		case mandel.MessageDone:
			log.Printf("render finished, receiving image")
		case mandel.MessageError:
			return fmt.Errorf("server: %s", msg.Error)
		}
	}
}
