package process

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func save(img image.Image, imgType, outType, destDir, srcName string) (err error) {
	if outType == "same" {
		outType = imgType
	}

	oldExt := filepath.Ext(srcName)
	destName := fmt.Sprintf("%s.%s", srcName[:len(srcName)-len(oldExt)], outType)

	outFile, err := os.CreateTemp(destDir, destName)
	if err != nil {
		return fmt.Errorf("could not create temporary destination %q: %w", destName, err)
	}
	canRename := false
	defer func() {
		if defErr := outFile.Sync(); defErr != nil {
			err = fmt.Errorf("could not flush temporary destination %q: %w", destName, defErr)
		}
		if defErr := outFile.Close(); defErr != nil {
			err = fmt.Errorf("could not close temporary destination %q: %w", destName, defErr)
		}

		if canRename {
			if defErr := os.Rename(outFile.Name(), filepath.Join(destDir, destName)); defErr != nil {
				err = fmt.Errorf("could not rename destination file %q: %w", destName, defErr)
			}
		}
	}()

	switch outType {
	case "gif":
		if err = gif.Encode(outFile, img, nil); err != nil {
			return fmt.Errorf("could not encode GIF destination %q: %w", destName, err)
		}
	case "jpeg":
		if err = jpeg.Encode(outFile, img, &jpeg.Options{Quality: 100}); err != nil {
			return fmt.Errorf("could not encode JPEG destination %q: %w", destName, err)
		}
	case "png":
		enc := png.Encoder{
			CompressionLevel: png.BestCompression,
			BufferPool:       pngPool,
		}
		if err = enc.Encode(outFile, img); err != nil {
			return fmt.Errorf("could not encode PNG destination %q: %w", destName, err)
		}
	case "bmp":
		if err = bmp.Encode(outFile, img); err != nil {
			return fmt.Errorf("could not encode BMP destination %q: %w", destName, err)
		}
	case "tiff":
		if err = tiff.Encode(outFile, img, nil); err != nil {
			return fmt.Errorf("could not encode TIFF destination %q: %w", destName, err)
		}
	default:
		return fmt.Errorf("unsupported output format: %s", outType)
	}

	canRename = true
	return err
}

type pngEncoderBufferPool struct {
	pool sync.Pool
}

func (p *pngEncoderBufferPool) Get() *png.EncoderBuffer {
	return p.pool.Get().(*png.EncoderBuffer)
}

func (p *pngEncoderBufferPool) Put(buf *png.EncoderBuffer) {
	p.pool.Put(buf)
}

var pngPool = &pngEncoderBufferPool{
	pool: sync.Pool{
		New: func() any {
			return &png.EncoderBuffer{}
		},
	},
}
