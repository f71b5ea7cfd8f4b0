package service

import (
	"time"

	apperrors "go-image-metrics/internal/errors"
	"go-image-metrics/internal/metrics"
	"go-image-metrics/internal/observer"
	"go-image-metrics/pkg/models"
)

func (s *evaluationService) EvaluateNoReference(dir string) (*models.NoReferenceReport, error) {
	if s.scorer == nil {
		return nil, apperrors.NewValidationError("no-reference scorer is not configured", nil)
	}
	if err := s.checkDirectories(dir); err != nil {
		return nil, err
	}

	start := time.Now()
	names, err := s.repo.ListCandidates(dir, true)
	if err != nil {
		return nil, apperrors.NewDirectoryNotFoundError(dir, err)
	}

	s.notify(observer.EvaluationEvent{
		EventType: observer.RunStarted,
		Mode:      ModeNoReference,
		Metadata:  map[string]interface{}{"candidates": len(names), "metric": s.scorer.Name()},
	})

	items := make([]models.NoReferenceItem, len(names))
	s.forEach(len(names), func(i int) {
		itemStart := time.Now()
		items[i] = s.scoreSingle(dir, names[i])
		items[i].Index = i
		s.notifyItem(ModeNoReference, names[i], items[i].Status, items[i].Message, time.Since(itemStart))
	})

	report := &models.NoReferenceReport{
		Dir:       dir,
		Metric:    s.scorer.Name(),
		StartedAt: start,
		Items:     items,
		Summary:   summarizeNoReference(items),
	}
	report.Elapsed = time.Since(start)

	if report.Summary.Empty {
		s.logEmpty(ModeNoReference)
	}
	s.notify(observer.EvaluationEvent{
		EventType:      observer.RunCompleted,
		Mode:           ModeNoReference,
		ProcessingTime: report.Elapsed,
		Metadata:       map[string]interface{}{"succeeded": report.Summary.Succeeded, "total": report.Summary.Total},
	})
	return report, nil
}

func (s *evaluationService) scoreSingle(dir, name string) models.NoReferenceItem {
	item := models.NoReferenceItem{Filename: name}

	img, err := s.repo.FetchRGB(dir, name)
	if err != nil {
		item.Status = models.StatusDecodeFailed
		item.Message = apperrors.NewDecodeError("image could not be decoded", err).Error()
		return item
	}

	score, err := s.runScorer(name, img)
	switch {
	case err != nil:
		item.Status = models.StatusFailed
		item.Message = err.Error()
	default:
		if verr := s.validator.ValidateScore(s.scorer.Name(), score); verr != nil {
			item.Status = models.StatusInvalid
			item.Message = verr.Error()
			return item
		}
		item.Status = models.StatusScored
		item.Score = &score
	}
	return item
}

// runScorer isolates scorer errors and panics to the one image
func (s *evaluationService) runScorer(name string, img *metrics.RGBGrid) (score float64, err error) {
	defer recoverItem(name, &err)

	score, err = s.scorer.Score(img)
	if err != nil {
		return 0, apperrors.NewComputationError(s.scorer.Name(), err)
	}
	return score, nil
}
