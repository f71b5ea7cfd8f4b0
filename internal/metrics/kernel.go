package metrics

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

const (
	// WindowSize is the side of the square PCQI weighting window.
	WindowSize = 11
	// WindowSigma is the standard deviation of the Gaussian window.
	WindowSigma = 1.5
)

// GaussianKernel1D returns a normalised 1-D Gaussian of the given size and sigma,
// centred on (size-1)/2.
func GaussianKernel1D(size int, sigma float64) []float64 {
	k := make([]float64, size)
	center := float64(size-1) / 2
	scale := -0.5 / (sigma * sigma)
	for i := range k {
		d := float64(i) - center
		k[i] = math.Exp(scale * d * d)
	}
	floats.Scale(1/floats.Sum(k), k)
	return k
}

// GaussianKernel2D is the outer product of two 1-D Gaussians, renormalised so the
// weights sum to 1. Returned row-major as size*size values.
func GaussianKernel2D(size int, sigma float64) []float64 {
	k1 := GaussianKernel1D(size, sigma)
	k2 := make([]float64, size*size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			k2[y*size+x] = k1[y] * k1[x]
		}
	}
	floats.Scale(1/floats.Sum(k2), k2)
	return k2
}
