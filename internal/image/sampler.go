// Package image provides utilities for loading and sampling images.
package image

import (
	"fmt"
	"image"
	"math"

	"github.com/muesli/clusters"
	"golang.org/x/image/draw"
)

// Sample downsamples an image by the given fraction and flattens it
// row-major into a pixel collection with channels normalized to [0, 1].
// The fraction applies to both dimensions, preserving aspect ratio; the
// scaled image is never smaller than 1x1. resize must be in (0, 1]: a zero
// fraction would silently degenerate to an empty sample, so it is rejected.
func Sample(img image.Image, resize float64) (clusters.Observations, error) {
	if img == nil {
		return nil, fmt.Errorf("image cannot be nil")
	}
	if resize <= 0 || resize > 1 {
		return nil, fmt.Errorf("resize fraction must be in (0, 1], got %v", resize)
	}

	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return nil, fmt.Errorf("image has no pixels")
	}

	w := max(1, int(math.Round(float64(bounds.Dx())*resize)))
	h := max(1, int(math.Round(float64(bounds.Dy())*resize)))

	scaled := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(scaled, scaled.Bounds(), img, bounds, draw.Src, nil)

	pixels := make(clusters.Observations, 0, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := scaled.At(x, y).RGBA()
			// RGBA returns 16-bit channels; normalize to [0, 1].
			pixels = append(pixels, clusters.Coordinates{
				float64(r) / 65535.0,
				float64(g) / 65535.0,
				float64(b) / 65535.0,
			})
		}
	}
	return pixels, nil
}
