// Package imgio encodes and decodes the two raster formats the renderer
// speaks — raw binary PPM and PNG — and owns the persistence entry points
// for parameter sets, including the PNG text chunk that lets a finished
// image carry its own recipe.
package imgio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/d2718/jset"
)

// WritePPM writes pb as a binary PPM (P6): a short text header followed by
// raw RGB triples in row-major order. The format carries no metadata.
func WritePPM(w io.Writer, pb *jset.PixelBuffer) error {
	if _, err := fmt.Fprintf(w, "P6 %d %d 255\n", pb.W, pb.H); err != nil {
		return err
	}
	_, err := w.Write(pb.Pix)
	return err
}

// ReadPPM decodes a binary PPM back into a pixel buffer. Only 8-bit RGB
// (max value 255) is supported.
func ReadPPM(r io.Reader) (*jset.PixelBuffer, error) {
	br := bufio.NewReader(r)

	magic, err := ppmToken(br)
	if err != nil {
		return nil, err
	}
	if magic != "P6" {
		return nil, fmt.Errorf("not a binary PPM: magic %q", magic)
	}

	var w, h, maxVal int
	for _, field := range []struct {
		name string
		dst  *int
	}{{"width", &w}, {"height", &h}, {"max value", &maxVal}} {
		tok, err := ppmToken(br)
		if err != nil {
			return nil, err
		}
		if _, err := fmt.Sscan(tok, field.dst); err != nil {
			return nil, fmt.Errorf("bad PPM %s %q", field.name, tok)
		}
	}
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("bad PPM dimensions %dx%d", w, h)
	}
	if maxVal != 255 {
		return nil, fmt.Errorf("unsupported PPM max value %d", maxVal)
	}

	pb := jset.NewPixelBuffer(w, h)
	if _, err := io.ReadFull(br, pb.Pix); err != nil {
		return nil, fmt.Errorf("short PPM pixel data: %w", err)
	}
	return pb, nil
}

// ppmToken returns the next whitespace-delimited header token, skipping
// '#' comments. The single whitespace byte after the last token is
// consumed by the token scan itself.
func ppmToken(br *bufio.Reader) (string, error) {
	var tok []byte
	for {
		b, err := br.ReadByte()
		if err != nil {
			return "", fmt.Errorf("truncated PPM header: %w", err)
		}
		switch {
		case b == '#' && len(tok) == 0:
			if _, err := br.ReadString('\n'); err != nil {
				return "", fmt.Errorf("truncated PPM header: %w", err)
			}
		case b == ' ' || b == '\t' || b == '\r' || b == '\n':
			if len(tok) > 0 {
				return string(tok), nil
			}
		default:
			tok = append(tok, b)
		}
	}
}
