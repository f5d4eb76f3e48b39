package jset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMap() ColorMap {
	return ColorMap{
		Stops: []ColorStop{
			{Pos: 0.0, Color: RGB{R: 0, G: 7, B: 100}},
			{Pos: 0.25, Color: RGB{R: 32, G: 107, B: 203}},
			{Pos: 0.5, Color: RGB{R: 237, G: 255, B: 255}},
			{Pos: 1.0, Color: RGB{R: 0, G: 2, B: 0}},
		},
		Interior: RGB{R: 0, G: 0, B: 0},
	}
}

func TestColorAtStopsExact(t *testing.T) {
	m := testMap()
	for _, s := range m.Stops {
		assert.Equal(t, s.Color, m.ColorAt(s.Pos), "stop at %v", s.Pos)
	}
}

func TestColorAtClamps(t *testing.T) {
	m := testMap()
	assert.Equal(t, m.Stops[0].Color, m.ColorAt(-2))
	assert.Equal(t, m.Stops[len(m.Stops)-1].Color, m.ColorAt(3.7))
}

func TestColorAtInterpolates(t *testing.T) {
	m := ColorMap{
		Stops: []ColorStop{
			{Pos: 0, Color: RGB{R: 0, G: 100, B: 200}},
			{Pos: 1, Color: RGB{R: 100, G: 200, B: 0}},
		},
	}
	assert.Equal(t, RGB{R: 50, G: 150, B: 100}, m.ColorAt(0.5))
	assert.Equal(t, RGB{R: 25, G: 125, B: 150}, m.ColorAt(0.25))
}

func TestReplaceAndCopyColor(t *testing.T) {
	m := testMap()
	red := RGB{R: 255}

	require.NoError(t, m.ReplaceStop(1, red))
	assert.Equal(t, red, m.Stops[1].Color)
	assert.Equal(t, 0.25, m.Stops[1].Pos, "position must survive a color swap")

	require.NoError(t, m.CopyColor(1, 3))
	assert.Equal(t, red, m.Stops[3].Color)

	assert.Error(t, m.ReplaceStop(9, red))
	assert.Error(t, m.CopyColor(-1, 0))
	assert.Error(t, m.CopyColor(0, 99))
}

func TestColorMapValidate(t *testing.T) {
	m := testMap()
	require.NoError(t, m.validate())

	empty := ColorMap{}
	assert.ErrorContains(t, empty.validate(), "colors.stops")

	dup := testMap()
	dup.Stops[2].Pos = dup.Stops[1].Pos
	err := dup.validate()
	var ferr *FieldError
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, "colors.stops[2].pos", ferr.Field)

	oob := testMap()
	oob.Stops[3].Pos = 1.5
	assert.ErrorContains(t, oob.validate(), "[0, 1]")
}
