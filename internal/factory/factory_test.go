package factory

import (
	"testing"

	"golang.org/x/image/draw"
)

func TestCreateResampler(t *testing.T) {
	f := NewResamplerFactory()

	testCases := []struct {
		name        string
		input       ResampleType
		expected    draw.Interpolator
		expectError bool
	}{
		{"Bilinear", BilinearResample, draw.BiLinear, false},
		{"Nearest", NearestResample, draw.NearestNeighbor, false},
		{"Upper case", "NEAREST", draw.NearestNeighbor, false},
		{"Unknown", "lanczos", nil, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			interp, err := f.CreateResampler(tc.input)
			if tc.expectError {
				if err == nil {
					t.Errorf("Expected error for %s", tc.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if interp != tc.expected {
				t.Errorf("Expected %v, got %v", tc.expected, interp)
			}
		})
	}
}

func TestCreateScorer(t *testing.T) {
	f := NewScorerFactory()

	scorer, err := f.CreateScorer(UIQMScorer)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if scorer.Name() != "UIQM" {
		t.Errorf("Expected UIQM scorer, got %s", scorer.Name())
	}

	if _, err := f.CreateScorer("niqe"); err == nil {
		t.Errorf("Expected error for unknown scorer")
	}
}

func TestCreateReporter(t *testing.T) {
	f := NewReporterFactory()

	for _, format := range []ReportFormat{TextReport, JSONReport, YAMLReport} {
		t.Run(string(format), func(t *testing.T) {
			r, err := f.CreateReporter(format)
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if r.Format() != string(format) {
				t.Errorf("Expected format %s, got %s", format, r.Format())
			}
		})
	}

	if _, err := f.CreateReporter("xml"); err == nil {
		t.Errorf("Expected error for unknown format")
	}
}

func TestNewComponentFactory(t *testing.T) {
	f := NewComponentFactory()
	if f.ResamplerFactory == nil || f.ScorerFactory == nil || f.ReporterFactory == nil {
		t.Errorf("Expected all factories to be set, got %+v", f)
	}
}
