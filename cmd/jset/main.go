// Command jset renders escape-time fractal images from parameter files
// and moves parameter sets in and out of saved images.
//
//	jset render -o out.png --preset seahorse-valley
//	jset render -o out.png -p params.toml --workers 8
//	jset params out.png > recovered.toml
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/alexflint/go-arg"

	"github.com/d2718/jset"
	"github.com/d2718/jset/imgio"
	"github.com/d2718/jset/render"
)

type renderCmd struct {
	Params  string `arg:"-p,--params" help:"parameter file (text, or an image with embedded parameters)"`
	Preset  string `arg:"--preset" help:"start from a named viewport preset"`
	Out     string `arg:"-o,--out,required" help:"output image file"`
	PPM     bool   `arg:"--ppm" help:"write a raw PPM instead of a PNG"`
	Bare    bool   `arg:"--bare" help:"skip embedding the parameter text in the PNG"`
	Width   int    `arg:"--width" help:"override image width"`
	Height  int    `arg:"--height" help:"override image height"`
	Scale   int    `arg:"--scale" help:"downscale the result by this integer factor" default:"1"`
	Workers int    `arg:"--workers" help:"worker count (default: one per CPU)"`
}

type paramsCmd struct {
	File string `arg:"positional" help:"image or parameter file to read; omit to print defaults"`
}

type cli struct {
	Render *renderCmd `arg:"subcommand:render" help:"render an image from a parameter set"`
	Params *paramsCmd `arg:"subcommand:params" help:"print the parameter text of a file"`
}

func (cli) Description() string {
	return "escape-time fractal renderer"
}

func main() {
	var args cli
	p := arg.MustParse(&args)

	var err error
	switch {
	case args.Render != nil:
		err = runRender(args.Render)
	case args.Params != nil:
		err = runParams(args.Params)
	default:
		p.WriteHelp(os.Stderr)
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("FATAL: %v", err)
	}
}

func runRender(c *renderCmd) error {
	ps, err := loadParams(c)
	if err != nil {
		return err
	}
	if c.Width > 0 {
		ps.Width = c.Width
	}
	if c.Height > 0 {
		ps.Height = c.Height
	}
	if err := ps.Validate(); err != nil {
		return err
	}

	eng := render.Engine{Workers: c.Workers}
	log.Printf("rendering %dx%d, max %d iterations", ps.Width, ps.Height, ps.Function.MaxIter)
	pb, err := eng.Render(ps, ps.Width, ps.Height)
	if err != nil {
		return err
	}
	pb = jset.Downscale(pb, c.Scale)

	if c.PPM {
		if err := imgio.SavePPM(c.Out, pb); err != nil {
			return err
		}
		log.Printf("raw image saved to %q", c.Out)
		return nil
	}

	var text []byte
	if !c.Bare {
		if text, err = jset.EncodeParameters(ps); err != nil {
			return err
		}
	}
	if err := imgio.SavePNG(c.Out, pb, text); err != nil {
		return err
	}
	log.Printf("image saved to %q", c.Out)
	return nil
}

func loadParams(c *renderCmd) (*jset.ParameterSet, error) {
	ps := jset.DefaultParameters()
	if c.Params != "" {
		data, err := os.ReadFile(c.Params)
		if err != nil {
			return nil, err
		}
		if ps, err = imgio.LoadParameters(data); err != nil {
			return nil, fmt.Errorf("%s: %w", c.Params, err)
		}
	}
	if c.Preset != "" {
		preset, ok := jset.PresetByName(c.Preset)
		if !ok {
			return nil, fmt.Errorf("unknown preset %q (have: %s)", c.Preset, presetNames())
		}
		ps.Viewport = preset.Viewport(ps.Width)
	}
	return ps, nil
}

func presetNames() string {
	names := make([]string, len(jset.Presets))
	for i, p := range jset.Presets {
		names[i] = p.Name
	}
	return strings.Join(names, ", ")
}

func runParams(c *paramsCmd) error {
	var ps *jset.ParameterSet
	if c.File == "" {
		ps = jset.DefaultParameters()
	} else {
		data, err := os.ReadFile(c.File)
		if err != nil {
			return err
		}
		if ps, err = imgio.LoadParameters(data); err != nil {
			return fmt.Errorf("%s: %w", c.File, err)
		}
	}
	text, err := jset.EncodeParameters(ps)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(text)
	return err
}
