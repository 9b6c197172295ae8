// Package colour provides colour extraction and palette manipulation functionality.
package colour

import (
	"fmt"
	"math"

	"github.com/muesli/clusters"
)

// Clusterer defines the interface for pixel clustering strategies.
// Cluster reduces the sampled pixel collection to exactly n representative
// colours. Pixel channels are normalized floats in [0, 1].
type Clusterer interface {
	Cluster(pixels clusters.Observations, n int) ([]RGB, error)
}

// Method represents the pixel clustering strategy.
type Method string

const (
	// MethodCentroid partitions pixels with k-means, minimizing the
	// within-cluster sum of squared RGB distances.
	MethodCentroid Method = "centroid"

	// MethodMixture fits a Gaussian mixture model to the RGB distribution
	// via expectation-maximization and returns the component means.
	MethodMixture Method = "mixture"

	// MethodDominant picks the most frequent colours by weight.
	MethodDominant Method = "dominant"
)

// ValidMethods returns the list of supported clustering methods.
func ValidMethods() []Method {
	return []Method{MethodCentroid, MethodMixture, MethodDominant}
}

// IsValidMethod checks if the given method name is supported.
func IsValidMethod(m Method) bool {
	for _, valid := range ValidMethods() {
		if m == valid {
			return true
		}
	}
	return false
}

// NewClusterer creates a Clusterer for the given method. The seed makes
// centroid initialization reproducible; it is threaded explicitly rather
// than read from ambient global state so repeated calls stay independent.
func NewClusterer(m Method, seed int64) (Clusterer, error) {
	switch m {
	case MethodCentroid:
		return NewCentroidClusterer(seed), nil
	case MethodMixture:
		return NewMixtureClusterer(seed), nil
	case MethodDominant:
		return NewDominantClusterer(), nil
	default:
		return nil, fmt.Errorf("%w: unknown method %q (valid methods: %v)", ErrInvalidParameter, m, ValidMethods())
	}
}

// validateClusterRequest performs the shared up-front checks for all
// clustering strategies: a positive colour count and enough pixels to fill
// every cluster. Truncating to fewer than n colours is never acceptable.
func validateClusterRequest(pixels clusters.Observations, n int) error {
	if n < 1 {
		return fmt.Errorf("%w: colour count must be at least 1, got %d", ErrInvalidParameter, n)
	}
	if n > len(pixels) {
		return fmt.Errorf("%w: requested %d colours but only %d pixels are available", ErrInvalidParameter, n, len(pixels))
	}
	return nil
}

// centroidToRGB clips a centroid into the valid channel range and rounds it
// to 8-bit channels before any hex encoding happens downstream.
func centroidToRGB(c clusters.Coordinates) RGB {
	return RGB{
		R: clampChannel(c[0]),
		G: clampChannel(c[1]),
		B: clampChannel(c[2]),
	}
}

func clampChannel(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}
