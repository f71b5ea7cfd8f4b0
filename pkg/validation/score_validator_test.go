package validation

import (
	"math"
	"testing"

	apperrors "go-image-metrics/internal/errors"
)

func TestNewScoreValidator(t *testing.T) {
	validator := NewScoreValidator()
	if validator == nil {
		t.Fatal("Expected non-nil score validator")
	}
	if validator.limits != DefaultLimits() {
		t.Errorf("Expected default limits, got %+v", validator.limits)
	}
}

func TestValidateDimensions(t *testing.T) {
	validator := NewScoreValidator()

	testCases := []struct {
		name          string
		width, height int
		expectError   bool
	}{
		{"Exactly window size", 11, 11, false},
		{"Large", 1920, 1080, false},
		{"Too narrow", 10, 100, true},
		{"Too short", 100, 3, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := validator.ValidateDimensions(tc.width, tc.height)
			if tc.expectError {
				if !apperrors.IsType(err, apperrors.ErrorTypeComputation) {
					t.Errorf("Expected computation error, got %v", err)
				}
			} else if err != nil {
				t.Errorf("Expected no error, got %v", err)
			}
		})
	}
}

func TestValidateDimensions_CustomLimits(t *testing.T) {
	validator := NewScoreValidatorWithLimits(Limits{MinWidth: 3, MinHeight: 3})
	if err := validator.ValidateDimensions(3, 3); err != nil {
		t.Errorf("Expected 3x3 to pass custom limits, got %v", err)
	}
}

func TestValidateScore(t *testing.T) {
	validator := NewScoreValidator()

	testCases := []struct {
		name        string
		value       float64
		expectError bool
	}{
		{"Zero", 0, false},
		{"Typical", 0.93, false},
		{"Negative", -1.5, false},
		{"NaN", math.NaN(), true},
		{"+Inf", math.Inf(1), true},
		{"-Inf", math.Inf(-1), true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := validator.ValidateScore("PCQI", tc.value)
			if tc.expectError != (err != nil) {
				t.Fatalf("Expected error=%v, got %v", tc.expectError, err)
			}
			if tc.expectError && !apperrors.IsType(err, apperrors.ErrorTypeInvalidNumeric) {
				t.Errorf("Expected invalid numeric error, got %v", err)
			}
		})
	}
}

func TestValidateScores_FirstInvalidWins(t *testing.T) {
	validator := NewScoreValidator()
	err := validator.ValidateScores(
		NamedScore{"AG", 1},
		NamedScore{"EI", math.Inf(1)},
		NamedScore{"PCQI", math.NaN()},
	)
	appErr, ok := err.(*apperrors.AppError)
	if !ok {
		t.Fatalf("Expected *AppError, got %T", err)
	}
	if appErr.Details != "EI" {
		t.Errorf("Expected EI to be reported first, got %s", appErr.Details)
	}
}
