package render

import (
	"sync"

	"github.com/d2718/jset"
)

// Paint colors a divergence grid through the gradient: interior cells get
// the map's interior color, escaped cells interpolate by their normalized
// escape value. The same row-band fan-out as the engine is reused; cells
// are independent, so the result never depends on the worker count.
func (e Engine) Paint(g *Grid, cm jset.ColorMap) *jset.PixelBuffer {
	pb := jset.NewPixelBuffer(g.W, g.H)
	sentinel := float64(g.MaxIter)

	nw := e.workers(g.H)
	var wg sync.WaitGroup
	wg.Add(nw)
	for i := 0; i < nw; i++ {
		y0 := i * g.H / nw
		y1 := (i + 1) * g.H / nw
		go func(y0, y1 int) {
			defer wg.Done()
			for y := y0; y < y1; y++ {
				for x := 0; x < g.W; x++ {
					v := g.At(x, y)
					if v == sentinel {
						pb.SetRGB(x, y, cm.Interior)
						continue
					}
					pb.SetRGB(x, y, cm.ColorAt(v/sentinel))
				}
			}
		}(y0, y1)
	}
	wg.Wait()

	return pb
}
