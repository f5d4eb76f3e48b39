package jset

import (
	"image"

	"github.com/anthonynsimon/bild/transform"
)

// PixelBuffer is a width x height grid of RGB byte triples in row-major
// order. It is the output of a render call and the input to the image
// writers.
type PixelBuffer struct {
	W, H int
	Pix  []uint8
}

// NewPixelBuffer allocates a zeroed (black) buffer.
func NewPixelBuffer(w, h int) *PixelBuffer {
	return &PixelBuffer{W: w, H: h, Pix: make([]uint8, w*h*3)}
}

// SetRGB writes the pixel at (x, y).
func (pb *PixelBuffer) SetRGB(x, y int, c RGB) {
	i := (y*pb.W + x) * 3
	pb.Pix[i] = c.R
	pb.Pix[i+1] = c.G
	pb.Pix[i+2] = c.B
}

// RGBAt reads the pixel at (x, y).
func (pb *PixelBuffer) RGBAt(x, y int) RGB {
	i := (y*pb.W + x) * 3
	return RGB{R: pb.Pix[i], G: pb.Pix[i+1], B: pb.Pix[i+2]}
}

// RGBA copies the buffer into a stdlib image with opaque alpha.
func (pb *PixelBuffer) RGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, pb.W, pb.H))
	si := 0
	for y := 0; y < pb.H; y++ {
		di := y * img.Stride
		for x := 0; x < pb.W; x++ {
			img.Pix[di] = pb.Pix[si]
			img.Pix[di+1] = pb.Pix[si+1]
			img.Pix[di+2] = pb.Pix[si+2]
			img.Pix[di+3] = 0xff
			si += 3
			di += 4
		}
	}
	return img
}

// FromRGBA repacks a stdlib image into a PixelBuffer, dropping alpha.
func FromRGBA(img *image.RGBA) *PixelBuffer {
	b := img.Bounds()
	pb := NewPixelBuffer(b.Dx(), b.Dy())
	di := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		si := (y - b.Min.Y) * img.Stride
		for x := b.Min.X; x < b.Max.X; x++ {
			pb.Pix[di] = img.Pix[si]
			pb.Pix[di+1] = img.Pix[si+1]
			pb.Pix[di+2] = img.Pix[si+2]
			di += 3
			si += 4
		}
	}
	return pb
}

// Downscale returns the buffer shrunk by an integer factor, each output
// pixel averaging a factor x factor block, for cheap preview images. A
// factor below 2 returns pb unchanged.
func Downscale(pb *PixelBuffer, factor int) *PixelBuffer {
	if factor < 2 {
		return pb
	}
	w := pb.W / factor
	h := pb.H / factor
	if w < 1 || h < 1 {
		return pb
	}
	return FromRGBA(transform.Resize(pb.RGBA(), w, h, transform.Box))
}
