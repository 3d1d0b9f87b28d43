package raster

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/vovakirdan/fractals/internal/core"
)

// EncodePNG writes img as PNG to w.
func EncodePNG(w io.Writer, img image.Image) error {
	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	return enc.Encode(w, img)
}

// WritePNG encodes img to path atomically: the data goes to a temporary
// file in the same directory which is renamed over path only after a
// successful encode and sync.
func WritePNG(path string, img image.Image) (err error) {
	return WriteAtomic(path, func(w io.Writer) error {
		return EncodePNG(w, img)
	})
}

// WriteAtomic runs write against a temporary file next to path and renames
// it into place on success. Failures wrap core.ErrResource.
func WriteAtomic(path string, write func(io.Writer) error) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("raster: cannot create directory %s: %w: %w", dir, core.ErrResource, err)
	}

	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("raster: cannot create temp file: %w: %w", core.ErrResource, err)
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(tmp)
		}
	}()

	if err = write(f); err != nil {
		return fmt.Errorf("raster: encode %s: %w: %w", path, core.ErrResource, err)
	}
	if err = f.Sync(); err != nil {
		return fmt.Errorf("raster: sync %s: %w: %w", path, core.ErrResource, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("raster: close %s: %w: %w", path, core.ErrResource, err)
	}
	if err = os.Rename(tmp, path); err != nil {
		return fmt.Errorf("raster: rename to %s: %w: %w", path, core.ErrResource, err)
	}
	return nil
}
