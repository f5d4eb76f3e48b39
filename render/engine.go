package render

import (
	"fmt"
	"image"
	"runtime"
	"sync"

	"github.com/d2718/jset"
)

// Grid holds the per-pixel smoothed escape values for one render. Cells
// equal to float64(MaxIter) mark points that never diverged. A Grid is
// written exactly once, by the render call that allocates it.
type Grid struct {
	W, H    int
	MaxIter int
	Vals    []float64
}

// At returns the escape value at (x, y).
func (g *Grid) At(x, y int) float64 {
	return g.Vals[y*g.W+x]
}

// Interior reports whether the point at (x, y) never diverged.
func (g *Grid) Interior(x, y int) bool {
	return g.At(x, y) == float64(g.MaxIter)
}

// Engine is the escape-time renderer. Workers bounds the worker pool; zero
// or negative means one worker per available CPU. The zero value is ready
// to use.
//
// Output is bit-identical for any worker count: each cell depends only on
// its own coordinates and the immutable parameter set, and each worker
// writes a disjoint row band of the pre-sized grid.
type Engine struct {
	Workers int
}

func (e Engine) workers(rows int) int {
	n := e.Workers
	if n < 1 {
		n = runtime.GOMAXPROCS(0)
	}
	if n > rows {
		n = rows
	}
	return n
}

// viewportFor rescales the framed plane region when the target width
// differs from the parameter set's nominal width, so previews show the
// same picture smaller.
func viewportFor(p *jset.ParameterSet, width int) jset.Viewport {
	vp := p.Viewport
	if width != p.Width {
		vp.Scale = vp.Scale * float64(p.Width) / float64(width)
	}
	return vp
}

// Grid renders the divergence grid for p at the given target size.
func (e Engine) Grid(p *jset.ParameterSet, width, height int) (*Grid, error) {
	return e.gridRect(p, image.Rect(0, 0, width, height), width, height)
}

// Tile renders the divergence grid for one sub-rectangle of a fullW x
// fullH image of p. The grid is tile-sized; its cells correspond to the
// global pixels tile.Min through tile.Max.
func (e Engine) Tile(p *jset.ParameterSet, tile image.Rectangle, fullW, fullH int) (*Grid, error) {
	return e.gridRect(p, tile, fullW, fullH)
}

func (e Engine) gridRect(p *jset.ParameterSet, rect image.Rectangle, fullW, fullH int) (*Grid, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if fullW < 1 || fullH < 1 || rect.Empty() {
		return nil, fmt.Errorf("degenerate render target %dx%d (%s)", fullW, fullH, rect)
	}

	vp := viewportFor(p, fullW)
	ev := compile(p.Function)
	w, h := rect.Dx(), rect.Dy()
	g := &Grid{W: w, H: h, MaxIter: p.Function.MaxIter, Vals: make([]float64, w*h)}

	nw := e.workers(h)
	var wg sync.WaitGroup
	wg.Add(nw)
	for i := 0; i < nw; i++ {
		y0 := rect.Min.Y + i*h/nw
		y1 := rect.Min.Y + (i+1)*h/nw
		go func(y0, y1 int) {
			defer wg.Done()
			for y := y0; y < y1; y++ {
				row := (y - rect.Min.Y) * w
				for x := rect.Min.X; x < rect.Max.X; x++ {
					pt := PlanePoint(vp, float64(x), float64(y), fullW, fullH)
					g.Vals[row+x-rect.Min.X] = ev.escapeValue(pt)
				}
			}
		}(y0, y1)
	}
	wg.Wait()

	return g, nil
}

// Render produces the finished pixel buffer for p at the given size:
// divergence grid plus gradient coloring. It fails only on an invalid
// parameter set or degenerate dimensions.
func (e Engine) Render(p *jset.ParameterSet, width, height int) (*jset.PixelBuffer, error) {
	g, err := e.Grid(p, width, height)
	if err != nil {
		return nil, err
	}
	return e.Paint(g, p.Colors), nil
}

// RenderTile produces the pixels for one sub-rectangle of the full image.
func (e Engine) RenderTile(p *jset.ParameterSet, tile image.Rectangle, fullW, fullH int) (*jset.PixelBuffer, error) {
	g, err := e.Tile(p, tile, fullW, fullH)
	if err != nil {
		return nil, err
	}
	return e.Paint(g, p.Colors), nil
}

var (
	_ jset.Renderer     = Engine{}
	_ jset.TileRenderer = Engine{}
)

// Image renders p at its own nominal dimensions with a default engine.
// This is the one-call entry point for plain callers.
func Image(p *jset.ParameterSet) (*jset.PixelBuffer, error) {
	return Engine{}.Render(p, p.Width, p.Height)
}
