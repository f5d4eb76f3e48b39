package imgio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"image"
	"image/draw"
	"image/png"
	"io"

	"github.com/d2718/jset"
)

// ParamKeyword is the tEXt chunk keyword under which a PNG carries its
// serialized parameter set.
const ParamKeyword = "jset parameters"

// ErrNoParameters reports that an image carries no embedded parameter
// set. It is a status, not a failure: a raster with no recipe is still a
// perfectly good raster.
var ErrNoParameters = errors.New("no embedded parameters")

var pngSig = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// WritePNG encodes pb losslessly as a PNG. A non-empty params text is
// embedded in a tEXt chunk directly after the header, where any
// standards-following reader will ignore it; pixel decoding never depends
// on its presence.
func WritePNG(w io.Writer, pb *jset.PixelBuffer, params []byte) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, pb.RGBA()); err != nil {
		return fmt.Errorf("encoding PNG: %w", err)
	}
	data := buf.Bytes()

	if len(params) == 0 {
		_, err := w.Write(data)
		return err
	}

	// Splice the tEXt chunk in between the IHDR chunk and the rest of the
	// stream the stdlib encoder produced.
	ihdrEnd := 8 + 12 + int(binary.BigEndian.Uint32(data[8:12]))
	if _, err := w.Write(data[:ihdrEnd]); err != nil {
		return err
	}
	text := append([]byte(ParamKeyword+"\x00"), params...)
	if err := writeChunk(w, "tEXt", text); err != nil {
		return err
	}
	_, err := w.Write(data[ihdrEnd:])
	return err
}

func writeChunk(w io.Writer, typ string, data []byte) error {
	var hdr [8]byte
	binary.BigEndian.PutUint32(hdr[:4], uint32(len(data)))
	copy(hdr[4:], typ)
	if _, err := w.Write(hdr[:]); err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	crc := crc32.NewIEEE()
	crc.Write(hdr[4:])
	crc.Write(data)
	var sum [4]byte
	binary.BigEndian.PutUint32(sum[:], crc.Sum32())
	_, err := w.Write(sum[:])
	return err
}

// ReadPNG decodes the pixel data of a PNG into a pixel buffer, with or
// without an embedded parameter chunk.
func ReadPNG(r io.Reader) (*jset.PixelBuffer, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decoding PNG: %w", err)
	}
	rgba, ok := img.(*image.RGBA)
	if !ok {
		b := img.Bounds()
		rgba = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	}
	return jset.FromRGBA(rgba), nil
}

// IsPNG reports whether data begins with the PNG signature.
func IsPNG(data []byte) bool {
	return bytes.HasPrefix(data, pngSig)
}

// ExtractParameters walks the chunks of a PNG stream and returns the
// parameter text embedded under ParamKeyword. A well-formed PNG without
// one returns ErrNoParameters; a malformed stream is an error.
func ExtractParameters(data []byte) ([]byte, error) {
	if !IsPNG(data) {
		return nil, errors.New("not a PNG stream")
	}
	pos := len(pngSig)
	for {
		if pos+8 > len(data) {
			return nil, errors.New("malformed PNG: truncated chunk header")
		}
		length := int(binary.BigEndian.Uint32(data[pos : pos+4]))
		typ := string(data[pos+4 : pos+8])
		if pos+12+length > len(data) {
			return nil, fmt.Errorf("malformed PNG: truncated %s chunk", typ)
		}
		body := data[pos+8 : pos+8+length]
		if typ == "tEXt" {
			if kw, text, ok := bytes.Cut(body, []byte{0}); ok && string(kw) == ParamKeyword {
				return text, nil
			}
		}
		if typ == "IEND" {
			return nil, ErrNoParameters
		}
		pos += 12 + length
	}
}
