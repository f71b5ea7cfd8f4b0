package validation

import (
	"fmt"
	"math"

	apperrors "go-image-metrics/internal/errors"
)

// Limits defines the minimum image size accepted before scoring
type Limits struct {
	MinWidth  int
	MinHeight int
}

// DefaultLimits matches the 11×11 PCQI window, the largest operator footprint
func DefaultLimits() Limits {
	return Limits{
		MinWidth:  11,
		MinHeight: 11,
	}
}

// ScoreValidator checks metric inputs and outputs
type ScoreValidator struct {
	limits Limits
}

// NewScoreValidator creates a validator with default limits
func NewScoreValidator() *ScoreValidator {
	return &ScoreValidator{
		limits: DefaultLimits(),
	}
}

// NewScoreValidatorWithLimits creates a validator with custom limits
func NewScoreValidatorWithLimits(limits Limits) *ScoreValidator {
	return &ScoreValidator{
		limits: limits,
	}
}

// ValidateDimensions returns a computation error for images below the limits
func (v *ScoreValidator) ValidateDimensions(width, height int) error {
	if width < v.limits.MinWidth || height < v.limits.MinHeight {
		return apperrors.NewComputationError(
			fmt.Sprintf("image %dx%d is smaller than the %dx%d minimum", width, height, v.limits.MinWidth, v.limits.MinHeight), nil)
	}
	return nil
}

// ValidateScore returns an invalid-numeric error when value is NaN or infinite
func (v *ScoreValidator) ValidateScore(metric string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return apperrors.NewInvalidNumericError(metric, value)
	}
	return nil
}

// NamedScore is a metric value awaiting validation
type NamedScore struct {
	Metric string
	Value  float64
}

// ValidateScores returns the first invalid score, in argument order
func (v *ScoreValidator) ValidateScores(scores ...NamedScore) error {
	for _, s := range scores {
		if err := v.ValidateScore(s.Metric, s.Value); err != nil {
			return err
		}
	}
	return nil
}
