package export

import (
	"fmt"
	"image"

	"github.com/vovakirdan/fractals/internal/raster"
	"github.com/vovakirdan/fractals/internal/scene"
)

// RenderStill draws all N segments of sc in index order and returns the
// finished image.
func RenderStill(sc *scene.Scene, opts Options) (*image.RGBA, error) {
	c, pts := newCanvas(sc, opts)
	c.StrokePath(pts, sc.Colors)
	return newFramer(sc, opts).frame(c)
}

// Still renders sc and writes it to path as PNG. Nothing is left at path
// if encoding fails.
func Still(sc *scene.Scene, opts Options, path string) error {
	img, err := RenderStill(sc, opts)
	if err != nil {
		return fmt.Errorf("export: render %s: %w", sc.Label(), err)
	}
	if err := raster.WritePNG(path, img); err != nil {
		return err
	}
	opts.logger().Info("saved image", "path", path, "edges", sc.N())
	return nil
}
