package main

import (
	"context"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/vp8l"
	_ "golang.org/x/image/webp"

	"flavorize/jobs"
	"flavorize/lut"
	"flavorize/process"
)

var cli struct {
	Recolor process.RecolorCmd `cmd:"" help:"Recolor images in a folder to a flavor's palette"`
	Palette process.PaletteCmd `cmd:"" help:"Render flavor color swatches"`
	Analyze process.AnalyzeCmd `cmd:"" help:"Report an image's dominant colors and the best-fitting flavor"`
	Match   process.MatchCmd   `cmd:"" help:"Find the closest flavor color to a hex color"`

	Jobs int64 `help:"Maximum concurrently running transforms" default:"2"`
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Name("flavorize"),
		kong.Description("Recolors images (including animated GIFs) to Catppuccin flavor palettes using perceptual color matching."),
		kong.UsageOnError(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	env := &process.Env{
		Ctx:   ctx,
		Cache: lut.NewCache(),
		Gate:  jobs.NewGate(cli.Jobs),
	}

	if err := kctx.Run(env); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}
