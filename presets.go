package jset

// Preset is a named landmark in the Mandelbrot set, a convenient starting
// viewport. PlaneWidth is the horizontal extent on the plane; the per-pixel
// scale falls out of the target image width.
type Preset struct {
	Name       string
	Center     Complex
	PlaneWidth float64
}

// Viewport frames the preset for an image pixelWidth pixels across.
func (p Preset) Viewport(pixelWidth int) Viewport {
	return Viewport{Center: p.Center, Scale: p.PlaneWidth / float64(pixelWidth)}
}

// Classic landmarks in the Mandelbrot set.
var (
	// Seahorse Valley – dense filaments and repeating "seahorse" curls
	SeahorseValley = Preset{
		Name:       "seahorse-valley",
		Center:     Complex{Re: -0.75, Im: 0.1},
		PlaneWidth: 0.1,
	}

	// Elephant Valley – large bulb with trunk-like tendrils
	ElephantValley = Preset{
		Name:       "elephant-valley",
		Center:     Complex{Re: -1.8, Im: -0.06},
		PlaneWidth: 0.1,
	}

	// Spiral Minibrot – small Mandelbrot copy with tight spiral arms
	SpiralMinibrot = Preset{
		Name:       "spiral-minibrot",
		Center:     Complex{Re: -0.74275, Im: 0.13175},
		PlaneWidth: 0.0015,
	}

	// Triple Spiral – threefold symmetric spiral structure
	TripleSpiral = Preset{
		Name:       "triple-spiral",
		Center:     Complex{Re: -0.7465, Im: 0.0965},
		PlaneWidth: 0.003,
	}

	// Valley of the Dragon – deep, highly detailed spiral filaments
	ValleyOfTheDragon = Preset{
		Name:       "valley-of-the-dragon",
		Center:     Complex{Re: -0.7375, Im: 0.1825},
		PlaneWidth: 0.005,
	}

	// Minibrot in a Mini-Spiral – self-similar copy inside a spiral arm
	MinibrotInMiniSpiral = Preset{
		Name:       "minibrot-in-mini-spiral",
		Center:     Complex{Re: -1.73825, Im: -0.02275},
		PlaneWidth: 0.0015,
	}
)

// Presets lists every named landmark.
var Presets = []Preset{
	SeahorseValley,
	ElephantValley,
	SpiralMinibrot,
	TripleSpiral,
	ValleyOfTheDragon,
	MinibrotInMiniSpiral,
}

// PresetByName looks a preset up by its Name, returning false if there is
// no such landmark.
func PresetByName(name string) (Preset, bool) {
	for _, p := range Presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}
