package jset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPixelBufferRGBARoundTrip(t *testing.T) {
	pb := NewPixelBuffer(3, 2)
	pb.SetRGB(0, 0, RGB{R: 1, G: 2, B: 3})
	pb.SetRGB(2, 1, RGB{R: 250, G: 100, B: 7})

	back := FromRGBA(pb.RGBA())
	require.Equal(t, pb.W, back.W)
	require.Equal(t, pb.H, back.H)
	assert.Equal(t, pb.Pix, back.Pix)
}

func TestDownscale(t *testing.T) {
	pb := NewPixelBuffer(8, 6)
	white := RGB{R: 255, G: 255, B: 255}
	for y := 0; y < 6; y++ {
		for x := 0; x < 8; x++ {
			pb.SetRGB(x, y, white)
		}
	}

	half := Downscale(pb, 2)
	require.Equal(t, 4, half.W)
	require.Equal(t, 3, half.H)
	assert.Equal(t, white, half.RGBAt(1, 1), "uniform image stays uniform under averaging")

	assert.Same(t, pb, Downscale(pb, 1), "factor below 2 is a no-op")
	assert.Same(t, pb, Downscale(pb, 100), "factor larger than the image is a no-op")
}
