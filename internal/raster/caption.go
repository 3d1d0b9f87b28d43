package raster

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

var (
	regularOnce sync.Once
	regularFont *opentype.Font
	regularErr  error
)

func parsedRegular() (*opentype.Font, error) {
	regularOnce.Do(func() {
		regularFont, regularErr = opentype.Parse(goregular.TTF)
	})
	return regularFont, regularErr
}

// Caption draws text in the top-left corner of the canvas.
type Caption struct {
	Text   string
	Color  color.RGBA
	Size   float64 // points at 72 DPI; defaults to 18
	Margin int     // pixels from the top-left corner; defaults to 12
}

// Draw renders the caption onto dst.
func (c Caption) Draw(dst *image.RGBA) error {
	if c.Text == "" {
		return nil
	}
	size := c.Size
	if size <= 0 {
		size = 18
	}
	margin := c.Margin
	if margin <= 0 {
		margin = 12
	}

	f, err := parsedRegular()
	if err != nil {
		return fmt.Errorf("raster: parse caption font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return fmt.Errorf("raster: caption face: %w", err)
	}
	defer func() {
		_ = face.Close()
	}()

	ascent := face.Metrics().Ascent
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c.Color),
		Face: face,
		Dot:  fixed.P(dst.Bounds().Min.X+margin, dst.Bounds().Min.Y+margin).Add(fixed.Point26_6{Y: ascent}),
	}
	d.DrawString(c.Text)
	return nil
}

// MeasureCaption returns the advance width of text in pixels.
func MeasureCaption(text string, size float64) (int, error) {
	f, err := parsedRegular()
	if err != nil {
		return 0, err
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return 0, err
	}
	defer func() {
		_ = face.Close()
	}()
	return font.MeasureString(face, text).Ceil(), nil
}
