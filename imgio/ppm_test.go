package imgio

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d2718/jset"
)

func checkerboard(w, h int) *jset.PixelBuffer {
	pb := jset.NewPixelBuffer(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x+y)%2 == 0 {
				pb.SetRGB(x, y, jset.RGB{R: uint8(x * 17), G: uint8(y * 29), B: 200})
			}
		}
	}
	return pb
}

func TestPPMRoundTrip(t *testing.T) {
	pb := checkerboard(7, 5)

	var buf bytes.Buffer
	require.NoError(t, WritePPM(&buf, pb))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("P6 7 5 255\n")))

	back, err := ReadPPM(&buf)
	require.NoError(t, err)
	assert.Equal(t, pb, back)
}

func TestReadPPMWithComments(t *testing.T) {
	data := []byte("P6\n# made by hand\n2 1\n255\n\xff\x00\x00\x00\xff\x00")
	pb, err := ReadPPM(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, jset.RGB{R: 255}, pb.RGBAt(0, 0))
	assert.Equal(t, jset.RGB{G: 255}, pb.RGBAt(1, 0))
}

func TestReadPPMErrors(t *testing.T) {
	_, err := ReadPPM(bytes.NewReader([]byte("P3 1 1 255\n000")))
	assert.ErrorContains(t, err, "magic")

	_, err = ReadPPM(bytes.NewReader([]byte("P6 2 2 65535\n")))
	assert.ErrorContains(t, err, "max value")

	_, err = ReadPPM(bytes.NewReader([]byte("P6 2 2 255\n\x00")))
	assert.ErrorContains(t, err, "short PPM pixel data")

	_, err = ReadPPM(bytes.NewReader([]byte("P6 two 2 255\n")))
	assert.Error(t, err)
}
