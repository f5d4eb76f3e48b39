package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d2718/jset"
)

func gradientForPaint() jset.ColorMap {
	return jset.ColorMap{
		Stops: []jset.ColorStop{
			{Pos: 0, Color: jset.RGB{R: 0, G: 0, B: 0}},
			{Pos: 0.5, Color: jset.RGB{R: 200, G: 100, B: 50}},
			{Pos: 1, Color: jset.RGB{R: 255, G: 255, B: 255}},
		},
		Interior: jset.RGB{R: 9, G: 8, B: 7},
	}
}

func TestPaintInteriorAndStops(t *testing.T) {
	// A hand-built grid: sentinel, exactly at a stop position, and past
	// the last stop.
	g := &Grid{W: 3, H: 1, MaxIter: 100, Vals: []float64{100, 50, 99.5}}
	cm := gradientForPaint()

	pb := Engine{Workers: 1}.Paint(g, cm)

	assert.Equal(t, cm.Interior, pb.RGBAt(0, 0), "sentinel cell gets the interior color")
	assert.Equal(t, cm.Stops[1].Color, pb.RGBAt(1, 0), "value at a stop position gets that stop exactly")

	between := pb.RGBAt(2, 0)
	assert.NotEqual(t, cm.Stops[1].Color, between)
	assert.NotEqual(t, cm.Stops[2].Color, between)
}

func TestPaintDeterministicAcrossWorkerCounts(t *testing.T) {
	p := jset.DefaultParameters()
	p.Width = 40
	p.Height = 30
	g, err := Engine{Workers: 1}.Grid(p, p.Width, p.Height)
	require.NoError(t, err)

	base := Engine{Workers: 1}.Paint(g, p.Colors)
	for _, workers := range []int{2, 5, 16} {
		pb := Engine{Workers: workers}.Paint(g, p.Colors)
		require.Equal(t, base.Pix, pb.Pix, "workers=%d", workers)
	}
}
