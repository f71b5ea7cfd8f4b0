package uiqm

import (
	"errors"
	"math"
	"testing"

	"go-image-metrics/internal/metrics"
)

// createTestImage creates an RGB grid filled with one colour
func createTestImage(w, h int, r, g, b float64) *metrics.RGBGrid {
	img := metrics.NewRGBGrid(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGB(x, y, r, g, b)
		}
	}
	return img
}

// createPatternImage creates a colourful checkerboard with a gradient
func createPatternImage(w, h int) *metrics.RGBGrid {
	img := metrics.NewRGBGrid(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			base := float64((x*7 + y*3) % 200)
			if (x/4+y/4)%2 == 0 {
				img.SetRGB(x, y, 20+base/4, 60+base/2, 40+base)
			} else {
				img.SetRGB(x, y, 200-base/4, 150-base/3, 90)
			}
		}
	}
	return img
}

func TestScorer_Name(t *testing.T) {
	if name := NewScorer().Name(); name != "UIQM" {
		t.Errorf("Expected name UIQM, got %s", name)
	}
}

func TestScore_PatternImageIsFinite(t *testing.T) {
	scorer := NewScorer()
	score, err := scorer.Score(createPatternImage(64, 48))
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}
	if math.IsNaN(score) || math.IsInf(score, 0) {
		t.Errorf("Expected finite UIQM, got %f", score)
	}

	again, _ := scorer.Score(createPatternImage(64, 48))
	if again != score {
		t.Errorf("Expected deterministic score, got %f then %f", score, again)
	}
}

func TestScore_FlatImageIsNaN(t *testing.T) {
	score, err := NewScorer().Score(createTestImage(30, 30, 90, 120, 150))
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}
	if !math.IsNaN(score) {
		t.Errorf("Expected NaN for a flat image, got %f", score)
	}
}

func TestScore_TooSmall(t *testing.T) {
	_, err := NewScorer().Score(createTestImage(9, 40, 1, 2, 3))
	if !errors.Is(err, metrics.ErrImageTooSmall) {
		t.Errorf("Expected ErrImageTooSmall, got %v", err)
	}
}

func TestTrimmedMean(t *testing.T) {
	x := []float64{10, 1, 9, 2, 8, 3, 7, 4, 6, 5}
	// sorted[2:9] = 3..9
	if got := trimmedMean(x); math.Abs(got-42.0/8) > 1e-12 {
		t.Errorf("Expected trimmed mean %f, got %f", 42.0/8, got)
	}
}

func TestColorfulness_GrayHasNoChroma(t *testing.T) {
	if got := colorfulness(createTestImage(20, 20, 128, 128, 128)); got != 0 {
		t.Errorf("Expected zero UICM for gray, got %f", got)
	}
}

func TestReflect(t *testing.T) {
	testCases := []struct{ i, n, want int }{
		{-1, 5, 0}, {-2, 5, 1}, {0, 5, 0}, {4, 5, 4}, {5, 5, 4}, {6, 5, 3},
	}
	for _, tc := range testCases {
		if got := reflect(tc.i, tc.n); got != tc.want {
			t.Errorf("reflect(%d, %d): expected %d, got %d", tc.i, tc.n, tc.want, got)
		}
	}
}
