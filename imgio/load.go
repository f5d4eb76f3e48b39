package imgio

import (
	"bytes"
	"fmt"

	"github.com/d2718/jset"
)

// LoadParameters recovers a parameter set from file contents, whichever
// form they take: bare parameter text, or a PNG with an embedded
// parameter chunk. A raster that carries no parameters — a raw PPM, or a
// PNG written without embedding — returns ErrNoParameters; malformed
// parameter text returns the decode error naming the trouble spot.
func LoadParameters(data []byte) (*jset.ParameterSet, error) {
	if IsPNG(data) {
		text, err := ExtractParameters(data)
		if err != nil {
			return nil, err
		}
		return jset.DecodeParameters(text)
	}
	if bytes.HasPrefix(data, []byte("P6")) {
		return nil, fmt.Errorf("raw raster: %w", ErrNoParameters)
	}
	return jset.DecodeParameters(data)
}
