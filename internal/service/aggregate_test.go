package service

import (
	"math"
	"testing"

	"go-image-metrics/pkg/models"
)

func ptr(v float64) *float64 { return &v }

func TestPercentChange(t *testing.T) {
	testCases := []struct {
		name      string
		ref, dist float64
		expected  *float64
	}{
		{"Increase", 2, 3, ptr(50)},
		{"Decrease", 4, 3, ptr(-25)},
		{"Unchanged", 5, 5, ptr(0)},
		{"Zero reference", 0, 3, nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := percentChange(tc.ref, tc.dist)
			if tc.expected == nil {
				if got != nil {
					t.Errorf("Expected nil, got %v", *got)
				}
				return
			}
			if got == nil || math.Abs(*got-*tc.expected) > 1e-12 {
				t.Errorf("Expected %v, got %v", *tc.expected, got)
			}
		})
	}
}

func TestSummarizeFullReference(t *testing.T) {
	items := []models.ItemResult{
		{Filename: "a", Status: models.StatusScored, Record: &models.ScoreRecord{PCQI: ptr(0.9), AGRef: 2, AGDist: 3, EIRef: 10, EIDist: 5}},
		{Filename: "b", Status: models.StatusMissingPair},
		{Filename: "c", Status: models.StatusScored, Record: &models.ScoreRecord{PCQI: ptr(0.7), AGRef: 4, AGDist: 5, EIRef: 30, EIDist: 15}},
		{Filename: "d", Status: models.StatusDecodeFailed},
		{Filename: "e", Status: models.StatusFailed},
		{Filename: "f", Status: models.StatusInvalid, Record: &models.ScoreRecord{AGRef: 100, AGDist: 100}},
	}

	s := summarizeFullReference(items)
	if s.Total != 6 || s.Scored != 2 || s.Skipped != 2 || s.Failed != 1 || s.Invalid != 1 {
		t.Errorf("Unexpected counts: %+v", s)
	}
	if s.Empty {
		t.Errorf("Expected non-empty summary")
	}
	if math.Abs(s.MeanPCQI-0.8) > 1e-12 {
		t.Errorf("Expected mean PCQI 0.8, got %v", s.MeanPCQI)
	}
	if s.MeanAGRef != 3 || s.MeanAGDist != 4 {
		t.Errorf("Expected AG means 3/4, got %v/%v", s.MeanAGRef, s.MeanAGDist)
	}
	if s.AGChangePct == nil || math.Abs(*s.AGChangePct-100.0/3) > 1e-9 {
		t.Errorf("Expected AG change 33.33%%, got %v", s.AGChangePct)
	}
	if s.EIChangePct == nil || math.Abs(*s.EIChangePct+50) > 1e-9 {
		t.Errorf("Expected EI change -50%%, got %v", s.EIChangePct)
	}
}

func TestSummarizeFullReference_Empty(t *testing.T) {
	s := summarizeFullReference([]models.ItemResult{{Status: models.StatusMissingPair}})
	if !s.Empty {
		t.Errorf("Expected empty summary")
	}
	if s.MeanPCQI != 0 || s.AGChangePct != nil {
		t.Errorf("Expected no synthetic means, got %+v", s)
	}
}

func TestSummarizeNoReference_PairsNamesWithScores(t *testing.T) {
	// skips before valid entries must not shift best/worst
	items := []models.NoReferenceItem{
		{Filename: "a", Status: models.StatusDecodeFailed},
		{Filename: "b", Status: models.StatusInvalid},
		{Filename: "c", Status: models.StatusScored, Score: ptr(2)},
		{Filename: "d", Status: models.StatusDecodeFailed},
		{Filename: "e", Status: models.StatusScored, Score: ptr(5)},
		{Filename: "f", Status: models.StatusScored, Score: ptr(1)},
		{Filename: "g", Status: models.StatusScored, Score: ptr(5)},
	}

	s := summarizeNoReference(items)
	if s.Succeeded != 4 || s.Total != 7 {
		t.Errorf("Expected 4/7, got %d/%d", s.Succeeded, s.Total)
	}
	if s.Best.Filename != "e" {
		t.Errorf("Expected first maximum e, got %s", s.Best.Filename)
	}
	if s.Worst.Filename != "f" || s.Worst.Score != 1 {
		t.Errorf("Expected worst f=1, got %+v", s.Worst)
	}
	if s.Mean != 3.25 {
		t.Errorf("Expected mean 3.25, got %v", s.Mean)
	}
}
