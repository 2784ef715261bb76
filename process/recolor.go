package process

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/alecthomas/kong"

	"flavorize/flavor"
	"flavorize/jobs"
	"flavorize/lut"
	"flavorize/remap"
)

type RecolorCmd struct {
	Scan       string `help:"Source folder to scan" default:"."`
	Dest       string `help:"Destination folder for recolored pictures. Relative to scan dir if not absolute." default:"flavorized"`
	Flavor     string `help:"Flavor name (latte, frappe, macchiato, mocha)" default:"latte"`
	AllFlavors bool   `help:"Recolor with every flavor, one output per flavor"`
	Algorithm  string `help:"Matching algorithm (shepards-method, gaussian-rbf, linear-rbf, gaussian-sampling, nearest-neighbor, hald, euclide, mean, std)" default:"shepards-method"`
	Quality    string `help:"Coarse quality preset overriding the algorithm" enum:",fast,normal,high" default:""`
	Compare    bool   `help:"Write original and result side by side instead of the result alone"`
	Format     string `help:"Output format for still images" enum:"same,gif,jpeg,png,bmp,tiff" default:"png"`

	flavors []*flavor.Flavor
	algo    lut.Algorithm
}

func (c *RecolorCmd) Validate(kctx *kong.Context) error {
	scanDir, err := filepath.Abs(c.Scan)
	var info os.FileInfo
	if err == nil {
		if info, err = os.Stat(scanDir); err == nil && !info.IsDir() {
			err = fmt.Errorf("not a directory")
		}
	}
	if err != nil {
		return fmt.Errorf("invalid scan path %q: %w", c.Scan, err)
	}
	c.Scan = scanDir

	if !filepath.IsAbs(c.Dest) {
		c.Dest = filepath.Join(scanDir, c.Dest)
	}

	if c.AllFlavors {
		c.flavors = flavor.All
	} else {
		f, ok := flavor.Lookup(c.Flavor)
		if !ok {
			return fmt.Errorf("unknown flavor %q, expected one of %s", c.Flavor,
				strings.Join(flavor.Names(), ", "))
		}
		c.flavors = []*flavor.Flavor{f}
	}

	c.algo = lut.ParseAlgorithm(c.Algorithm)
	if c.Quality != "" {
		c.algo, _ = lut.ParseQuality(c.Quality)
	}

	return nil
}

func (c *RecolorCmd) Run(env *Env) error {
	if err := os.MkdirAll(c.Dest, os.ModeDir); err != nil {
		return fmt.Errorf("unable to create destination folder %q: %w", c.Dest, err)
	}

	files, err := os.ReadDir(c.Scan)
	if err != nil {
		return fmt.Errorf("unable to read folder %q: %w", c.Scan, err)
	}

	var processedCount, cancelledCount, errCount atomic.Uint64
	var wg sync.WaitGroup
	for _, file := range files {
		if file.IsDir() {
			continue
		}

		name := file.Name()
		wg.Add(1)
		go func() {
			defer wg.Done()
			logger := slog.Default().With("file", filepath.Join(c.Scan, name))

			jobCtx, done, err := env.Gate.Begin(env.Ctx, name)
			if err != nil {
				cancelledCount.Add(1)
				logger.Warn("job not admitted", "reason", err)
				return
			}
			defer done()

			switch err := c.processFile(jobCtx, env, name, logger); {
			case err == nil:
				processedCount.Add(1)
			case jobs.IsCancelled(err) || errors.Is(err, context.Canceled):
				cancelledCount.Add(1)
				logger.Warn("job cancelled")
			default:
				errCount.Add(1)
				logger.Error("could not recolor image", "error", err)
			}
		}()
	}

	wg.Wait()

	processed, cancelled, errs := processedCount.Load(), cancelledCount.Load(), errCount.Load()
	slog.Info("stats", "processed", processed, "cancelled", cancelled, "errors", errs,
		"total", processed+cancelled+errs)

	if errs > 0 {
		return fmt.Errorf("error processing %d files", errs)
	}
	return nil
}

func (c *RecolorCmd) processFile(ctx context.Context, env *Env, name string, logger *slog.Logger) error {
	filePath := filepath.Join(c.Scan, name)

	for _, f := range c.flavors {
		table, err := env.Cache.GetOrBuild(ctx, f, c.algo)
		if err != nil {
			return err
		}

		logger.Info("recoloring", "flavor", f.Name, "algorithm", c.algo.String())

		if isGIF(filePath) {
			if err := c.processAnimation(ctx, filePath, name, f, table); err != nil {
				return err
			}
			continue
		}

		imgFile, err := os.Open(filePath)
		if err != nil {
			return fmt.Errorf("could not open image: %w", err)
		}
		img, imgType, err := image.Decode(imgFile)
		imgFile.Close()
		if err != nil {
			return fmt.Errorf("could not decode image: %w", errors.Join(remap.ErrDecode, err))
		}

		var out image.Image = remap.Image(table, img)
		if c.Compare {
			out = remap.SideBySide(img, out)
		}

		if err := save(out, imgType, c.Format, c.Dest, flavoredName(name, f.Name)); err != nil {
			return err
		}
	}

	return nil
}

func (c *RecolorCmd) processAnimation(ctx context.Context, filePath, name string, f *flavor.Flavor, table *lut.Lut) error {
	in, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("could not open animation: %w", err)
	}
	defer in.Close()

	destName := flavoredName(name, f.Name)
	destName = destName[:len(destName)-len(filepath.Ext(destName))] + ".gif"
	out, err := os.Create(filepath.Join(c.Dest, destName))
	if err != nil {
		return fmt.Errorf("could not create destination %q: %w", destName, err)
	}

	if err := remap.GIF(ctx, out, in, table); err != nil {
		out.Close()
		os.Remove(out.Name())
		return err
	}

	if err := out.Close(); err != nil {
		return fmt.Errorf("could not close destination %q: %w", destName, err)
	}
	return nil
}

// isGIF sniffs the stream header; animated inputs go through the frame
// pipeline even when a still output format was requested.
func isGIF(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	hdr := make([]byte, 6)
	if _, err := io.ReadFull(f, hdr); err != nil {
		return false
	}
	return string(hdr) == "GIF87a" || string(hdr) == "GIF89a"
}

func flavoredName(name, flavorName string) string {
	ext := filepath.Ext(name)
	return fmt.Sprintf("%s_%s%s", name[:len(name)-len(ext)], flavorName, ext)
}
