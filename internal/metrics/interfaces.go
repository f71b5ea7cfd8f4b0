package metrics

// Calculator computes the grid-level quality metrics
type Calculator interface {
	// WindowStats returns Gaussian-weighted local means, variances and covariance
	// of two equal-sized grids over the valid region.
	WindowStats(a, b *Grid) (*LocalStatistics, error)

	// PCQI returns the mean patch-based contrast quality index of dist against ref.
	PCQI(ref, dist *Grid) (float64, error)
	PCQIMap(ref, dist *Grid) (*Grid, error)

	// AverageGradient and EdgeIntensity are no-reference sharpness measures.
	AverageGradient(g *Grid) (float64, error)
	EdgeIntensity(g *Grid) (float64, error)
}

// NoReferenceScorer produces a single quality score from an RGB image.
// A scorer may return NaN or ±Inf; callers decide how to treat those.
type NoReferenceScorer interface {
	Name() string
	Score(img *RGBGrid) (float64, error)
}
