package loaders

import (
	"fmt"
	"image"
	"image/draw"
	"io"

	"github.com/fogleman/gg"
)

// WritePNG encodes img as PNG
func WritePNG(w io.Writer, img image.Image) error {
	if err := gg.NewContextForRGBA(toRGBA(img)).EncodePNG(w); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

// SavePNG writes img to path as PNG
func SavePNG(path string, img image.Image) error {
	if err := gg.NewContextForRGBA(toRGBA(img)).SavePNG(path); err != nil {
		return fmt.Errorf("failed to save PNG: %w", err)
	}
	return nil
}

// toRGBA returns img itself when it is already an *image.RGBA anchored at
// the origin, and a copy otherwise
func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) {
		return rgba
	}
	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	return rgba
}
