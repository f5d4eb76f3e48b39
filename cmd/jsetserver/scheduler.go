package main

import (
	"context"
	"image"
	"log"
	"sync"

	"github.com/d2718/jset"
)

// tileUpdate is one finished tile: its place in the full image plus its
// pixels.
type tileUpdate struct {
	Tile image.Rectangle
	Pix  *jset.PixelBuffer
}

// scheduler renders one image tile by tile on a bounded worker pool and
// broadcasts finished tiles to subscribers, so viewers watch the image
// fill in. Late subscribers are replayed the tiles finished so far.
type scheduler struct {
	params   *jset.ParameterSet
	renderer jset.TileRenderer

	ctx       context.Context
	ctxCancel context.CancelFunc

	m    sync.Mutex
	done []tileUpdate
	subs map[chan tileUpdate]struct{}

	totalPixels    int
	finishedPixels int
}

func newScheduler(p *jset.ParameterSet, r jset.TileRenderer) *scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &scheduler{
		params:      p,
		renderer:    r,
		ctx:         ctx,
		ctxCancel:   cancel,
		subs:        make(map[chan tileUpdate]struct{}),
		totalPixels: p.Width * p.Height,
	}
}

// run renders every tile across workers goroutines and returns when the
// image is complete. Each tile is rendered exactly once; tile pixels only
// ever touch the scheduler through tileFinished.
func (s *scheduler) run(workers, tileSize int) {
	tiles := splitTiles(image.Rect(0, 0, s.params.Width, s.params.Height), tileSize, tileSize)
	queue := make(chan image.Rectangle)

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for tile := range queue {
				pix, err := s.renderer.RenderTile(s.params, tile, s.params.Width, s.params.Height)
				if err != nil {
					log.Printf("render of tile %s failed: %v", tile, err)
					continue
				}
				s.tileFinished(tileUpdate{Tile: tile, Pix: pix})
			}
		}()
	}
	for _, t := range tiles {
		queue <- t
	}
	close(queue)
	wg.Wait()
	s.ctxCancel()
}

func (s *scheduler) tileFinished(u tileUpdate) {
	s.m.Lock()
	s.done = append(s.done, u)
	s.finishedPixels += u.Tile.Dx() * u.Tile.Dy()
	frac := float32(s.finishedPixels) / float32(s.totalPixels)
	for ch := range s.subs {
		select {
		case ch <- u:
		default:
			// Never let a stalled viewer wedge the render. A viewer that
			// misses tiles can still fetch the finished image.
		}
	}
	s.m.Unlock()

	log.Printf("finished: %f", frac)
}

// subscribe returns the tiles already finished, a channel of tiles to
// come, and an unsubscribe func. The channel closes once the image is
// complete.
func (s *scheduler) subscribe() (replay []tileUpdate, ch chan tileUpdate, unsub func()) {
	// Buffered so a briefly busy viewer doesn't drop tiles.
	ch = make(chan tileUpdate, 256)
	s.m.Lock()
	replay = append(replay, s.done...)
	s.subs[ch] = struct{}{}
	s.m.Unlock()

	go func() {
		<-s.ctx.Done()
		s.m.Lock()
		if _, ok := s.subs[ch]; ok {
			delete(s.subs, ch)
			close(ch)
		}
		s.m.Unlock()
	}()

	return replay, ch, func() {
		s.m.Lock()
		if _, ok := s.subs[ch]; ok {
			delete(s.subs, ch)
			close(ch)
		}
		s.m.Unlock()
	}
}

// Image blocks until the render completes, then assembles the full pixel
// buffer from the finished tiles.
func (s *scheduler) Image() *jset.PixelBuffer {
	<-s.ctx.Done()

	full := jset.NewPixelBuffer(s.params.Width, s.params.Height)
	s.m.Lock()
	defer s.m.Unlock()
	for _, u := range s.done {
		for y := 0; y < u.Pix.H; y++ {
			for x := 0; x < u.Pix.W; x++ {
				full.SetRGB(u.Tile.Min.X+x, u.Tile.Min.Y+y, u.Pix.RGBAt(x, y))
			}
		}
	}
	return full
}

// splitTiles splits r into tiles of size tileW x tileH. Tiles at the
// right and bottom edges are smaller if r is not divisible.
func splitTiles(r image.Rectangle, tileW, tileH int) []image.Rectangle {
	if tileW <= 0 || tileH <= 0 {
		panic("tile dimensions must be positive")
	}

	w := r.Dx()
	h := r.Dy()

	var tiles []image.Rectangle

	for oy := 0; oy < h; oy += tileH {
		th := tileH
		if oy+th > h {
			th = h - oy
		}

		for ox := 0; ox < w; ox += tileW {
			tw := tileW
			if ox+tw > w {
				tw = w - ox
			}

			tiles = append(tiles, image.Rect(
				r.Min.X+ox,
				r.Min.Y+oy,
				r.Min.X+ox+tw,
				r.Min.Y+oy+th,
			))
		}
	}

	return tiles
}
