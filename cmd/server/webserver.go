package main

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"io"
	"log"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/coder/websocket"

	"github.com/mandelgo/mandel"
)

// renderHandler serves one-shot renders: it reads a JSON render request
// from the POST body and answers with the encoded PNG.
func renderHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST a render request", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 1<<20))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req mandel.RenderRequest
	if err := sonic.Unmarshal(body, &req); err != nil {
		http.Error(w, fmt.Sprintf("decode request: %v", err), http.StatusBadRequest)
		return
	}

	img, err := render(req, nil)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	if err := png.Encode(w, img); err != nil {
		log.Printf("encode PNG: %v", err)
	}
}

// websocketHandler runs one render per connection. The client sends a
// single JSON render request; the server streams progress messages back
// and finishes with one binary message holding the PNG bytes.
func websocketHandler(w http.ResponseWriter, r *http.Request) {
	c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"}, // TODO: tighten in prod
	})
	if err != nil {
		log.Println(err)
		return
	}
	defer c.CloseNow()

	ctx := r.Context()
	log.Printf("got connection from: %s", r.RemoteAddr)

	_, data, err := c.Read(ctx)
	if err != nil {
		log.Printf("read request: %v", err)
		return
	}

	var req mandel.RenderRequest
	if err := sonic.Unmarshal(data, &req); err != nil {
		writeMessage(ctx, c, mandel.ProgressMessage{Type: mandel.MessageError, Error: err.Error()})
		return
	}

	// Progress updates arrive concurrently from the render workers; they
	// are funneled through a channel because only this goroutine may write
	// to the websocket. The channel is lossy on purpose: dropping a
	// progress update is better than slowing the render down.
	progress := make(chan mandel.ProgressMessage, 64)
	onBandDone := func(done, total int) {
		select {
		case progress <- mandel.ProgressMessage{Type: mandel.MessageProgress, Done: done, Total: total}:
		default:
		}
	}

	type renderResult struct {
		img image.Image
		err error
	}
	// The kernel has no mid-render cancellation; if the client goes away
	// the render finishes and its result is discarded.
	resultCh := make(chan renderResult, 1)
	go func() {
		img, err := render(req, onBandDone)
		resultCh <- renderResult{img: img, err: err}
	}()

	for {
		select {
		case msg := <-progress:
			if err := writeMessage(ctx, c, msg); err != nil {
				log.Printf("write progress: %v", err)
				return
			}
		case res := <-resultCh:
			if res.err != nil {
				writeMessage(ctx, c, mandel.ProgressMessage{Type: mandel.MessageError, Error: res.err.Error()})
				return
			}
			if err := writeImage(ctx, c, res.img); err != nil {
				log.Printf("write image: %v", err)
				return
			}
			c.Close(websocket.StatusNormalClosure, "")
			return
		case <-ctx.Done():
			return
		}
	}
}

// render maps the wire request onto the library types and runs it.
func render(req mandel.RenderRequest, onBandDone func(done, total int)) (image.Image, error) {
	frame, err := req.Frame()
	if err != nil {
		return nil, err
	}
	params, err := req.Parameters()
	if err != nil {
		return nil, err
	}
	params.OnBandDone = onBandDone

	return mandel.Render(params, frame)
}

func writeMessage(ctx context.Context, c *websocket.Conn, msg mandel.ProgressMessage) error {
	data, err := sonic.Marshal(msg)
	if err != nil {
		return err
	}
	return c.Write(ctx, websocket.MessageText, data)
}

func writeImage(ctx context.Context, c *websocket.Conn, img image.Image) error {
	if err := writeMessage(ctx, c, mandel.ProgressMessage{Type: mandel.MessageDone}); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return err
	}
	return c.Write(ctx, websocket.MessageBinary, buf.Bytes())
}
