// Package colour provides colour extraction and palette manipulation functionality.
package colour

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"slices"

	"github.com/cenkalti/dominantcolor"
	"github.com/muesli/clusters"
)

// DominantClusterer picks the n most frequent colours by weight instead of
// synthesizing centroids. Useful for posterized or flat-colour artwork where
// averaged centroids wash out.
type DominantClusterer struct{}

// NewDominantClusterer creates a DominantClusterer.
func NewDominantClusterer() *DominantClusterer {
	return &DominantClusterer{}
}

// Cluster returns the n heaviest colours in the pixel collection.
func (c *DominantClusterer) Cluster(pixels clusters.Observations, n int) ([]RGB, error) {
	if err := validateClusterRequest(pixels, n); err != nil {
		return nil, err
	}

	candidates := dominantcolor.FindWeight(pixelImage(pixels), max(24, n*4))
	if len(candidates) < n {
		return nil, fmt.Errorf("%w: method %s with n=%d: only %d distinct colours found", ErrClusteringFailure, MethodDominant, n, len(candidates))
	}

	slices.SortStableFunc(candidates, func(a, b dominantcolor.Color) int {
		if a.Weight > b.Weight {
			return -1
		}
		if a.Weight < b.Weight {
			return 1
		}
		return 0
	})

	out := make([]RGB, n)
	for i := 0; i < n; i++ {
		out[i] = ToRGB(candidates[i].RGBA)
	}
	return out, nil
}

// pixelImage packs the sampled pixels into a square-ish image so the
// dominant-colour scorer can consume them. Pixel order carries no meaning
// for frequency counting.
func pixelImage(pixels clusters.Observations) image.Image {
	w := int(math.Ceil(math.Sqrt(float64(len(pixels)))))
	h := (len(pixels) + w - 1) / w
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	for i, p := range pixels {
		coords := p.Coordinates()
		rgb := centroidToRGB(coords)
		img.SetRGBA(i%w, i/w, color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255})
	}
	// Pad the trailing cells with the last pixel so the padding cannot
	// introduce a colour that is absent from the samples.
	if len(pixels) > 0 {
		last := centroidToRGB(pixels[len(pixels)-1].Coordinates())
		for i := len(pixels); i < w*h; i++ {
			img.SetRGBA(i%w, i/w, color.RGBA{R: last.R, G: last.G, B: last.B, A: 255})
		}
	}
	return img
}
