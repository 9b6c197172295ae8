// Package colour provides colour extraction and palette manipulation functionality.
package colour

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
)

// errNotConverged is the internal non-convergence signal from the seeded
// solver. It triggers exactly one retry through the library partitioner
// before the failure is surfaced to the caller.
var errNotConverged = errors.New("centroids did not converge")

// CentroidClusterer implements centroid-based partitioning (k-means).
// Initialization uses k-means++ driven by an explicit seeded source, so two
// runs over the same pixels with the same seed return identical palettes.
type CentroidClusterer struct {
	maxIterations int
	convergence   float64
	rng           *rand.Rand
}

// NewCentroidClusterer creates a CentroidClusterer with default settings.
func NewCentroidClusterer(seed int64) *CentroidClusterer {
	return &CentroidClusterer{
		maxIterations: 40,
		convergence:   0.005, // mean centroid movement in unit RGB space
		rng:           rand.New(rand.NewSource(seed)),
	}
}

// Cluster partitions the pixels into n groups and returns the n centroid
// colours. If the seeded solver reports non-convergence it retries once with
// the kmeans library partitioner, which uses a different initialization and
// assignment heuristic; a second failure is fatal.
func (c *CentroidClusterer) Cluster(pixels clusters.Observations, n int) ([]RGB, error) {
	if err := validateClusterRequest(pixels, n); err != nil {
		return nil, err
	}

	centroids, err := c.lloyd(pixels, n)
	if err != nil {
		centroids, err = partitionFallback(pixels, n)
		if err != nil {
			return nil, fmt.Errorf("%w: method %s with n=%d: %v", ErrClusteringFailure, MethodCentroid, n, err)
		}
	}

	out := make([]RGB, n)
	for i, centroid := range centroids {
		out[i] = centroidToRGB(centroid)
	}
	return out, nil
}

// lloyd runs seeded k-means++ initialization followed by Lloyd iterations.
// Convergence is declared when fewer than 1% of assignments change or the
// mean centroid movement drops below the threshold.
func (c *CentroidClusterer) lloyd(pixels clusters.Observations, n int) ([]clusters.Coordinates, error) {
	centroids := c.seedCentroids(pixels, n)
	assignments := make([]int, len(pixels))
	for i := range assignments {
		assignments[i] = -1
	}

	for iter := 0; iter < c.maxIterations; iter++ {
		changed := 0
		for i, p := range pixels {
			nearest := nearestCentroid(p.Coordinates(), centroids)
			if assignments[i] != nearest {
				assignments[i] = nearest
				changed++
			}
		}
		if iter > 0 && float64(changed)/float64(len(pixels)) < 0.01 {
			return centroids, nil
		}

		next := c.recalculate(pixels, assignments, n)

		movement := 0.0
		for i := range centroids {
			movement += math.Sqrt(centroids[i].Distance(next[i]))
		}
		centroids = next

		if movement/float64(n) < c.convergence {
			return centroids, nil
		}
	}

	return nil, errNotConverged
}

// seedCentroids picks initial centroids with the k-means++ scheme: the first
// uniformly at random, each subsequent one with probability proportional to
// its squared distance from the nearest centroid chosen so far.
func (c *CentroidClusterer) seedCentroids(pixels clusters.Observations, n int) []clusters.Coordinates {
	centroids := make([]clusters.Coordinates, 0, n)
	centroids = append(centroids, copyCoordinates(pixels[c.rng.Intn(len(pixels))].Coordinates()))

	distances := make([]float64, len(pixels))
	for len(centroids) < n {
		total := 0.0
		for i, p := range pixels {
			minDist := math.MaxFloat64
			for _, centroid := range centroids {
				if d := p.Coordinates().Distance(centroid); d < minDist {
					minDist = d
				}
			}
			distances[i] = minDist
			total += minDist
		}

		if total == 0 {
			// Every remaining pixel coincides with an existing centroid.
			// Duplicate centroids still yield exactly n palette entries.
			centroids = append(centroids, copyCoordinates(centroids[len(centroids)-1]))
			continue
		}

		target := c.rng.Float64() * total
		cumulative := 0.0
		for i, d := range distances {
			cumulative += d
			if cumulative >= target {
				centroids = append(centroids, copyCoordinates(pixels[i].Coordinates()))
				break
			}
		}
	}

	return centroids
}

// recalculate moves each centroid to the mean of its assigned pixels.
// Empty clusters are reseeded from a random pixel.
func (c *CentroidClusterer) recalculate(pixels clusters.Observations, assignments []int, n int) []clusters.Coordinates {
	sums := make([]clusters.Coordinates, n)
	counts := make([]int, n)
	for i := range sums {
		sums[i] = clusters.Coordinates{0, 0, 0}
	}

	for i, p := range pixels {
		coords := p.Coordinates()
		cluster := assignments[i]
		for d := range sums[cluster] {
			sums[cluster][d] += coords[d]
		}
		counts[cluster]++
	}

	centroids := make([]clusters.Coordinates, n)
	for i := 0; i < n; i++ {
		if counts[i] == 0 {
			centroids[i] = copyCoordinates(pixels[c.rng.Intn(len(pixels))].Coordinates())
			continue
		}
		centroids[i] = sums[i]
		for d := range centroids[i] {
			centroids[i][d] /= float64(counts[i])
		}
	}
	return centroids
}

// partitionFallback is the retry path: the kmeans library partitioner with
// its own online initialization. Used once per extraction at most.
func partitionFallback(pixels clusters.Observations, n int) ([]clusters.Coordinates, error) {
	km := kmeans.New()
	cc, err := km.Partition(pixels, n)
	if err != nil {
		return nil, fmt.Errorf("fallback partitioner: %w", err)
	}
	if len(cc) != n {
		return nil, fmt.Errorf("fallback partitioner returned %d clusters, want %d", len(cc), n)
	}

	centroids := make([]clusters.Coordinates, len(cc))
	for i, cluster := range cc {
		centroids[i] = cluster.Center
	}
	return centroids, nil
}

func nearestCentroid(p clusters.Coordinates, centroids []clusters.Coordinates) int {
	minDist := math.MaxFloat64
	nearest := 0
	for i, centroid := range centroids {
		if d := p.Distance(centroid); d < minDist {
			minDist = d
			nearest = i
		}
	}
	return nearest
}

func copyCoordinates(c clusters.Coordinates) clusters.Coordinates {
	out := make(clusters.Coordinates, len(c))
	copy(out, c)
	return out
}
