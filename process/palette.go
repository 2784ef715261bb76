package process

import (
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"

	"flavorize/flavor"
)

type PaletteCmd struct {
	Flavor string `arg:"" help:"Flavor name, or 'all' for a side-by-side strip" default:"all"`
	Out    string `help:"Output PNG path" default:"palette.png"`
	Pal    string `help:"Also export the flavor as a RIFF PAL file to this path"`
}

func (c *PaletteCmd) Run(env *Env) error {
	var img image.Image
	var f *flavor.Flavor
	if c.Flavor == "all" {
		img = flavor.PreviewAll()
	} else {
		var ok bool
		if f, ok = flavor.Lookup(c.Flavor); !ok {
			return fmt.Errorf("unknown flavor %q", c.Flavor)
		}
		img = f.Preview()
	}

	out, err := os.Create(c.Out)
	if err != nil {
		return fmt.Errorf("could not create %q: %w", c.Out, err)
	}
	defer out.Close()

	if err := png.Encode(out, img); err != nil {
		return fmt.Errorf("could not encode palette preview: %w", err)
	}
	slog.Info("palette preview written", "flavor", c.Flavor, "file", c.Out)

	if c.Pal != "" {
		if f == nil {
			return fmt.Errorf("PAL export needs a single flavor, not %q", c.Flavor)
		}
		palFile, err := os.Create(c.Pal)
		if err != nil {
			return fmt.Errorf("could not create %q: %w", c.Pal, err)
		}
		defer palFile.Close()

		if err := f.WritePAL(palFile); err != nil {
			return err
		}
		slog.Info("palette exported", "flavor", f.Name, "file", c.Pal)
	}

	return nil
}
