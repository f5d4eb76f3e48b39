package jset

import "image"

// Renderer produces the pixels for a full parameter set. Implemented by
// render.Engine; defined here so callers can be handed alternatives.
type Renderer interface {
	Render(p *ParameterSet, width, height int) (*PixelBuffer, error)
}

// TileRenderer renders one sub-rectangle of a larger image, for callers
// that assemble or stream an image piecewise.
type TileRenderer interface {
	RenderTile(p *ParameterSet, tile image.Rectangle, fullW, fullH int) (*PixelBuffer, error)
}
