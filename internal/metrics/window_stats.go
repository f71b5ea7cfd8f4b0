package metrics

import "fmt"

// LocalStatistics holds windowed second-order statistics of two grids. Every grid
// has size (W-WindowSize+1)×(H-WindowSize+1).
type LocalStatistics struct {
	MeanA, MeanB *Grid
	VarA, VarB   *Grid // clamped to >= 0
	Cov          *Grid
}

// WindowStats computes
//
//	μA = A⋆W, μB = B⋆W
//	σA² = max(0, (A·A)⋆W − μA²), σB² = max(0, (B·B)⋆W − μB²)
//	σAB = (A·B)⋆W − μA·μB
//
// where ⋆ is valid-mode correlation with the 11×11 Gaussian window.
func (c *calculator) WindowStats(a, b *Grid) (*LocalStatistics, error) {
	if !a.SameShape(b) {
		return nil, fmt.Errorf("%w: %dx%d vs %dx%d", ErrShapeMismatch, a.Dx(), a.Dy(), b.Dx(), b.Dy())
	}
	if a.Dx() < WindowSize || a.Dy() < WindowSize {
		return nil, fmt.Errorf("%w: %dx%d is below the %dx%d window", ErrImageTooSmall, a.Dx(), a.Dy(), WindowSize, WindowSize)
	}

	muA := c.correlateValid(a)
	muB := c.correlateValid(b)
	varA := c.correlateValid(a.Mul(a))
	varB := c.correlateValid(b.Mul(b))
	cov := c.correlateValid(a.Mul(b))

	for i, ma := range muA.values {
		mb := muB.values[i]
		varA.values[i] = clampNonNegative(varA.values[i] - ma*ma)
		varB.values[i] = clampNonNegative(varB.values[i] - mb*mb)
		cov.values[i] -= ma * mb
	}

	return &LocalStatistics{MeanA: muA, MeanB: muB, VarA: varA, VarB: varB, Cov: cov}, nil
}

// clampNonNegative absorbs rounding noise that can push a variance below zero
func clampNonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
