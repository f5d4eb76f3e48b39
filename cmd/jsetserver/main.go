// Command jsetserver renders one fractal image tile by tile and streams
// the tiles to connected browsers over a websocket, so the image can be
// watched filling in. The finished PNG, parameters embedded, is served at
// /image.png.
package main

import (
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/alexflint/go-arg"

	"github.com/d2718/jset"
	"github.com/d2718/jset/imgio"
	"github.com/d2718/jset/render"
)

type cli struct {
	Addr     string `arg:"--addr" default:":8080" help:"http listen address"`
	Params   string `arg:"-p,--params" help:"parameter file (text, or an image with embedded parameters)"`
	Preset   string `arg:"--preset" help:"start from a named viewport preset"`
	Workers  int    `arg:"--workers" help:"tile worker count (default: one per CPU)"`
	TileSize int    `arg:"--tile-size" default:"64" help:"tile edge length in pixels"`
}

func main() {
	var args cli
	arg.MustParse(&args)
	if err := run(args); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run(args cli) error {
	ps := jset.DefaultParameters()
	if args.Params != "" {
		data, err := os.ReadFile(args.Params)
		if err != nil {
			return err
		}
		if ps, err = imgio.LoadParameters(data); err != nil {
			return fmt.Errorf("%s: %w", args.Params, err)
		}
	}
	if args.Preset != "" {
		preset, ok := jset.PresetByName(args.Preset)
		if !ok {
			return fmt.Errorf("unknown preset %q", args.Preset)
		}
		ps.Viewport = preset.Viewport(ps.Width)
	}
	if err := ps.Validate(); err != nil {
		return err
	}

	workers := args.Workers
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}

	// Tiles go to the scheduler's own pool; the per-tile engine stays
	// single-worker so the fan-out happens in exactly one place.
	sched := newScheduler(ps, render.Engine{Workers: 1})
	go sched.run(workers, args.TileSize)

	srv := webServer(args.Addr, sched)
	log.Printf("rendering %dx%d on %d workers", ps.Width, ps.Height, workers)
	log.Printf("listening on http://localhost%s", args.Addr)
	return srv.ListenAndServe()
}
