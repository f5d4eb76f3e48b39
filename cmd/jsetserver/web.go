package main

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/binary"
	"log"
	"net/http"
	"time"

	"github.com/coder/websocket"

	"github.com/d2718/jset"
	"github.com/d2718/jset/imgio"
)

//go:embed viewer.html
var viewerHTML []byte

// webServer wires up the viewer page, the tile stream, and the finished
// image download.
func webServer(addr string, s *scheduler) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(viewerHTML)
	})
	mux.HandleFunc("/ws", tileStreamHandler(s))
	mux.HandleFunc("/image.png", imageHandler(s))

	return &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// tileStreamHandler upgrades to a websocket and streams the render to the
// viewer: one header frame with the image dimensions, then one binary
// frame per finished tile.
func tileStreamHandler(s *scheduler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: []string{"*"}, // TODO: tighten in prod
		})
		if err != nil {
			log.Println(err)
			return
		}
		defer c.CloseNow()

		ctx := r.Context()
		log.Printf("viewer connected: %s", r.RemoteAddr)

		var hdr [8]byte
		binary.BigEndian.PutUint32(hdr[:4], uint32(s.params.Width))
		binary.BigEndian.PutUint32(hdr[4:], uint32(s.params.Height))
		if err := c.Write(ctx, websocket.MessageBinary, hdr[:]); err != nil {
			return
		}

		replay, updates, unsub := s.subscribe()
		defer unsub()

		for _, u := range replay {
			if err := writeTile(ctx, c, u); err != nil {
				return
			}
		}
		for u := range updates {
			if err := writeTile(ctx, c, u); err != nil {
				return
			}
		}

		c.Close(websocket.StatusNormalClosure, "render complete")
		log.Printf("viewer done: %s", r.RemoteAddr)
	}
}

// writeTile frames a tile as x, y, w, h (big-endian uint32s) followed by
// raw RGB bytes.
func writeTile(ctx context.Context, c *websocket.Conn, u tileUpdate) error {
	buf := make([]byte, 16+len(u.Pix.Pix))
	binary.BigEndian.PutUint32(buf[0:], uint32(u.Tile.Min.X))
	binary.BigEndian.PutUint32(buf[4:], uint32(u.Tile.Min.Y))
	binary.BigEndian.PutUint32(buf[8:], uint32(u.Tile.Dx()))
	binary.BigEndian.PutUint32(buf[12:], uint32(u.Tile.Dy()))
	copy(buf[16:], u.Pix.Pix)
	return c.Write(ctx, websocket.MessageBinary, buf)
}

// imageHandler blocks until the render completes and serves the finished
// PNG with the parameter set embedded.
func imageHandler(s *scheduler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pb := s.Image()
		text, err := jset.EncodeParameters(s.params)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		var buf bytes.Buffer
		if err := imgio.WritePNG(&buf, pb, text); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		w.Write(buf.Bytes())
	}
}
