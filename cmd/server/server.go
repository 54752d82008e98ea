// The render server exposes the Mandelbrot renderer over HTTP: a static
// browser client under /, a one-shot POST endpoint under /render and a
// websocket endpoint under /ws that streams rendering progress before
// delivering the finished PNG.
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	var (
		addr      = flag.String("addr", ":8080", "listen address")
		staticDir = flag.String("static", "./static", "directory with the browser client")
	)
	flag.Parse()

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", websocketHandler)
	mux.HandleFunc("/render", renderHandler)
	mux.Handle("/", http.FileServer(http.Dir(*staticDir)))

	srv := &http.Server{
		Addr:              *addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("render server listening on %s", *addr)
	if err := srv.ListenAndServe(); err != nil {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}
