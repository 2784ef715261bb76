package process

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"os"

	"flavorize/flavor"
	"flavorize/remap"
)

type AnalyzeCmd struct {
	File string `arg:"" help:"Image to analyze"`
	Top  int    `help:"Number of dominant colors to report" default:"5"`
}

func (c *AnalyzeCmd) Run(env *Env) error {
	imgFile, err := os.Open(c.File)
	if err != nil {
		return fmt.Errorf("could not open image %q: %w", c.File, err)
	}
	defer imgFile.Close()

	img, _, err := image.Decode(imgFile)
	if err != nil {
		return fmt.Errorf("could not decode image %q: %w", c.File, errors.Join(remap.ErrDecode, err))
	}

	dominant, suggested := remap.Analyze(img, c.Top)
	for i, d := range dominant {
		slog.Info("dominant color", "rank", i+1,
			"hex", fmt.Sprintf("#%02x%02x%02x", d.Color.R, d.Color.G, d.Color.B),
			"pixels", d.Count)
	}
	slog.Info("suggested flavor", "flavor", suggested.Name)

	return nil
}

type MatchCmd struct {
	Color  string `arg:"" help:"Color to match, #RGB or #RRGGBB"`
	Flavor string `help:"Flavor to match against" default:"mocha"`
}

func (c *MatchCmd) Run(env *Env) error {
	in, err := flavor.ParseHex(c.Color)
	if err != nil {
		return err
	}

	f, ok := flavor.Lookup(c.Flavor)
	if !ok {
		return fmt.Errorf("unknown flavor %q", c.Flavor)
	}

	e := f.Nearest(in)
	slog.Info("closest color", "flavor", f.Name, "name", e.Name,
		"hex", fmt.Sprintf("#%02x%02x%02x", e.Color.R, e.Color.G, e.Color.B))

	return nil
}
