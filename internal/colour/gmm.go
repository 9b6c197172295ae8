// Package colour provides colour extraction and palette manipulation functionality.
package colour

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/muesli/clusters"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"
)

const (
	rgbDims  = 3
	covRidge = 1e-4 // keeps component covariances positive definite
)

// MixtureClusterer implements probabilistic mixture modelling: n multivariate
// Gaussian components fitted to the RGB distribution with bounded
// expectation-maximization. The component mean vectors become the palette.
type MixtureClusterer struct {
	initCandidates int
	emIterations   int
	rng            *rand.Rand
}

// NewMixtureClusterer creates a MixtureClusterer with default settings:
// 10 scored random-subset initializations followed by 10 EM steps.
func NewMixtureClusterer(seed int64) *MixtureClusterer {
	return &MixtureClusterer{
		initCandidates: 10,
		emIterations:   10,
		rng:            rand.New(rand.NewSource(seed)),
	}
}

// Cluster fits the mixture and returns the n component means as colours.
func (c *MixtureClusterer) Cluster(pixels clusters.Observations, n int) ([]RGB, error) {
	if err := validateClusterRequest(pixels, n); err != nil {
		return nil, err
	}

	data := make([][]float64, len(pixels))
	for i, p := range pixels {
		data[i] = p.Coordinates()
	}

	model := c.initialModel(data, n)
	if err := c.expectationMaximization(data, model); err != nil {
		return nil, fmt.Errorf("%w: method %s with n=%d: %v", ErrClusteringFailure, MethodMixture, n, err)
	}

	out := make([]RGB, n)
	for k, mean := range model.means {
		out[k] = centroidToRGB(clusters.Coordinates(mean))
	}
	return out, nil
}

// mixtureModel holds the per-component parameters during fitting.
type mixtureModel struct {
	weights []float64
	means   [][]float64
	covs    []*mat.SymDense
}

// initialModel draws several random pixel subsets as candidate component
// means, scores each candidate by data log-likelihood under a shared
// spherical covariance, and keeps the best.
func (c *MixtureClusterer) initialModel(data [][]float64, n int) *mixtureModel {
	baseCov := sphericalCovariance(data)

	var best *mixtureModel
	bestScore := math.Inf(-1)
	for cand := 0; cand < c.initCandidates; cand++ {
		model := &mixtureModel{
			weights: make([]float64, n),
			means:   make([][]float64, n),
			covs:    make([]*mat.SymDense, n),
		}
		perm := c.rng.Perm(len(data))
		for k := 0; k < n; k++ {
			model.weights[k] = 1.0 / float64(n)
			model.means[k] = append([]float64(nil), data[perm[k]]...)
			model.covs[k] = mat.NewSymDense(rgbDims, nil)
			model.covs[k].CopySym(baseCov)
		}

		score, err := logLikelihood(data, model)
		if err != nil {
			continue
		}
		if score > bestScore {
			bestScore = score
			best = model
		}
	}

	if best == nil {
		// All candidates were degenerate; fall back to the first subset and
		// let EM either recover or report the failure.
		best = &mixtureModel{
			weights: make([]float64, n),
			means:   make([][]float64, n),
			covs:    make([]*mat.SymDense, n),
		}
		perm := c.rng.Perm(len(data))
		for k := 0; k < n; k++ {
			best.weights[k] = 1.0 / float64(n)
			best.means[k] = append([]float64(nil), data[perm[k]]...)
			best.covs[k] = mat.NewSymDense(rgbDims, nil)
			best.covs[k].CopySym(baseCov)
		}
	}
	return best
}

// expectationMaximization runs the bounded EM loop in place.
func (c *MixtureClusterer) expectationMaximization(data [][]float64, model *mixtureModel) error {
	n := len(model.means)
	logResp := make([][]float64, len(data))
	for i := range logResp {
		logResp[i] = make([]float64, n)
	}

	for iter := 0; iter < c.emIterations; iter++ {
		// E-step: per-pixel component responsibilities.
		normals, err := componentNormals(model)
		if err != nil {
			return err
		}
		for i, x := range data {
			for k := 0; k < n; k++ {
				logResp[i][k] = math.Log(model.weights[k]) + normals[k].LogProb(x)
			}
			norm := floats.LogSumExp(logResp[i])
			for k := 0; k < n; k++ {
				logResp[i][k] -= norm
			}
		}

		// M-step: re-estimate weights, means and covariances.
		for k := 0; k < n; k++ {
			nk := 0.0
			mean := make([]float64, rgbDims)
			for i, x := range data {
				r := math.Exp(logResp[i][k])
				nk += r
				for d := 0; d < rgbDims; d++ {
					mean[d] += r * x[d]
				}
			}
			if nk < 1e-10 {
				// Component lost all support; reseed it from a random pixel.
				copy(mean, data[c.rng.Intn(len(data))])
				nk = 1.0
				model.weights[k] = 1.0 / float64(len(data))
			} else {
				for d := 0; d < rgbDims; d++ {
					mean[d] /= nk
				}
				model.weights[k] = nk / float64(len(data))
			}
			model.means[k] = mean

			cov := mat.NewSymDense(rgbDims, nil)
			for i, x := range data {
				r := math.Exp(logResp[i][k])
				for a := 0; a < rgbDims; a++ {
					for b := a; b < rgbDims; b++ {
						cov.SetSym(a, b, cov.At(a, b)+r*(x[a]-mean[a])*(x[b]-mean[b]))
					}
				}
			}
			for a := 0; a < rgbDims; a++ {
				for b := a; b < rgbDims; b++ {
					cov.SetSym(a, b, cov.At(a, b)/nk)
				}
				cov.SetSym(a, a, cov.At(a, a)+covRidge)
			}
			model.covs[k] = cov
		}
	}

	// One final factorization check so a degenerate last M-step cannot leak
	// NaN means into the palette.
	if _, err := componentNormals(model); err != nil {
		return err
	}
	return nil
}

// componentNormals builds a distmv.Normal per component, regularizing the
// covariance once before declaring the fit degenerate.
func componentNormals(model *mixtureModel) ([]*distmv.Normal, error) {
	normals := make([]*distmv.Normal, len(model.means))
	for k := range model.means {
		normal, ok := distmv.NewNormal(model.means[k], model.covs[k], nil)
		if !ok {
			for d := 0; d < rgbDims; d++ {
				model.covs[k].SetSym(d, d, model.covs[k].At(d, d)+covRidge*10)
			}
			normal, ok = distmv.NewNormal(model.means[k], model.covs[k], nil)
		}
		if !ok {
			return nil, fmt.Errorf("component %d covariance is not positive definite", k)
		}
		normals[k] = normal
	}
	return normals, nil
}

// logLikelihood evaluates the data log-likelihood under the model.
func logLikelihood(data [][]float64, model *mixtureModel) (float64, error) {
	normals, err := componentNormals(model)
	if err != nil {
		return 0, err
	}

	total := 0.0
	terms := make([]float64, len(model.means))
	for _, x := range data {
		for k, normal := range normals {
			terms[k] = math.Log(model.weights[k]) + normal.LogProb(x)
		}
		total += floats.LogSumExp(terms)
	}
	return total, nil
}

// sphericalCovariance computes a shared isotropic covariance from the global
// per-channel variance of the data.
func sphericalCovariance(data [][]float64) *mat.SymDense {
	mean := make([]float64, rgbDims)
	for _, x := range data {
		for d := 0; d < rgbDims; d++ {
			mean[d] += x[d]
		}
	}
	for d := 0; d < rgbDims; d++ {
		mean[d] /= float64(len(data))
	}

	variance := 0.0
	for _, x := range data {
		for d := 0; d < rgbDims; d++ {
			variance += (x[d] - mean[d]) * (x[d] - mean[d])
		}
	}
	variance = variance/float64(len(data)*rgbDims) + covRidge

	cov := mat.NewSymDense(rgbDims, nil)
	for d := 0; d < rgbDims; d++ {
		cov.SetSym(d, d, variance)
	}
	return cov
}
