package jset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fancyParameters exercises every optional field: a rotated viewport and
// a rational Julia map.
func fancyParameters() *ParameterSet {
	return &ParameterSet{
		Width:  640,
		Height: 480,
		Viewport: Viewport{
			Center:   Complex{Re: 0.125, Im: -0.75},
			Scale:    1.0 / 3.0,
			Rotation: 0.7853981633974483,
		},
		Function: IteratedFunction{
			Mode:         ModeJulia,
			Numerator:    []Complex{{Re: 0.1, Im: -0.2}, {}, {Re: 1}, {Im: 0.5}},
			Denominator:  []Complex{{Re: 1}, {Re: -0.25, Im: 0.125}},
			Seed:         Complex{Re: -0.8, Im: 0.156},
			MaxIter:      250,
			EscapeRadius: 100,
		},
		Colors: ColorMap{
			Stops: []ColorStop{
				{Pos: 0, Color: RGB{R: 10, G: 0, B: 40}},
				{Pos: 0.662, Color: RGB{R: 255, G: 100, B: 180}},
				{Pos: 1, Color: RGB{R: 255, G: 230, B: 150}},
			},
			Interior: RGB{R: 20, G: 2, B: 0},
		},
	}
}

func TestParameterRoundTrip(t *testing.T) {
	for name, p := range map[string]*ParameterSet{
		"default": DefaultParameters(),
		"fancy":   fancyParameters(),
	} {
		text, err := EncodeParameters(p)
		require.NoError(t, err, name)

		back, err := DecodeParameters(text)
		require.NoError(t, err, name)
		assert.Equal(t, p, back, name)
	}
}

func TestEncodeRejectsInvalid(t *testing.T) {
	p := DefaultParameters()
	p.Viewport.Scale = -1
	_, err := EncodeParameters(p)
	var ferr *FieldError
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, "viewport.scale", ferr.Field)
}

func TestDecodeMalformedText(t *testing.T) {
	_, err := DecodeParameters([]byte("width = \"eight hundred\"\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line")
}

func TestDecodeValidatesInvariants(t *testing.T) {
	p := fancyParameters()
	text, err := EncodeParameters(p)
	require.NoError(t, err)

	// Sabotage the serialized form so parsing succeeds but the invariants
	// don't hold.
	bad := strings.Replace(string(text), "width = 640", "width = -1", 1)
	require.NotEqual(t, string(text), bad)

	_, err = DecodeParameters([]byte(bad))
	var ferr *FieldError
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, "width", ferr.Field)
}

func TestDecodeNeverPartiallyPopulates(t *testing.T) {
	p, err := DecodeParameters([]byte("width = 100\nheight = 100\n[viewport]\nscale = oops\n"))
	assert.Error(t, err)
	assert.Nil(t, p)
}
