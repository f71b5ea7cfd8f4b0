package service

import (
	"errors"
	"fmt"
	"image"
	"time"

	apperrors "go-image-metrics/internal/errors"
	"go-image-metrics/internal/imaging"
	"go-image-metrics/internal/logger"
	"go-image-metrics/internal/observer"
	"go-image-metrics/internal/repository"
	"go-image-metrics/pkg/models"
	"go-image-metrics/pkg/validation"

	"github.com/sirupsen/logrus"
)

func (s *evaluationService) EvaluateFullReference(refDir, distDir string) (*models.BatchReport, error) {
	if err := s.checkDirectories(refDir, distDir); err != nil {
		return nil, err
	}

	start := time.Now()
	// listing order: os.ReadDir sorts by name, so runs are reproducible
	names, err := s.repo.ListCandidates(refDir, false)
	if err != nil {
		return nil, apperrors.NewDirectoryNotFoundError(refDir, err)
	}

	s.notify(observer.EvaluationEvent{
		EventType: observer.RunStarted,
		Mode:      ModeFullReference,
		Metadata:  map[string]interface{}{"candidates": len(names), "workers": s.options.Workers},
	})

	items := make([]models.ItemResult, len(names))
	s.forEach(len(names), func(i int) {
		itemStart := time.Now()
		items[i] = s.evaluatePair(refDir, distDir, names[i])
		items[i].Index = i
		s.notifyItem(ModeFullReference, names[i], items[i].Status, items[i].Message, time.Since(itemStart))
	})

	report := &models.BatchReport{
		ReferenceDir: refDir,
		ProcessedDir: distDir,
		StartedAt:    start,
		Items:        items,
		Summary:      summarizeFullReference(items),
	}
	report.Elapsed = time.Since(start)

	if report.Summary.Empty {
		s.logEmpty(ModeFullReference)
	}
	s.notify(observer.EvaluationEvent{
		EventType:      observer.RunCompleted,
		Mode:           ModeFullReference,
		ProcessingTime: report.Elapsed,
		Metadata:       map[string]interface{}{"scored": report.Summary.Scored, "total": report.Summary.Total},
	})
	return report, nil
}

// evaluatePair produces exactly one outcome for name; nothing escapes it
func (s *evaluationService) evaluatePair(refDir, distDir, name string) models.ItemResult {
	result := models.ItemResult{Filename: name}

	if !s.repo.Exists(distDir, name) {
		result.Status = models.StatusMissingPair
		result.Message = apperrors.NewMissingPairError(name, nil).Message
		return result
	}

	ref, err := s.repo.FetchGray(refDir, name)
	if err != nil {
		return fetchFailure(result, "reference", err)
	}
	dist, err := s.repo.FetchGray(distDir, name)
	if err != nil {
		return fetchFailure(result, "processed", err)
	}

	record, err := s.scorePair(name, ref, dist)
	switch {
	case apperrors.IsType(err, apperrors.ErrorTypeInvalidNumeric):
		result.Status = models.StatusInvalid
		result.Message = err.Error()
		result.Record = record
	case err != nil:
		result.Status = models.StatusFailed
		result.Message = err.Error()
	default:
		result.Status = models.StatusScored
		result.Record = record
	}
	return result
}

func fetchFailure(result models.ItemResult, side string, err error) models.ItemResult {
	if errors.Is(err, repository.ErrImageNotFound) {
		result.Status = models.StatusMissingPair
		result.Message = apperrors.NewMissingPairError(result.Filename, err).Message
		return result
	}
	result.Status = models.StatusDecodeFailed
	result.Message = apperrors.NewDecodeError(fmt.Sprintf("%s image could not be decoded", side), err).Error()
	return result
}

// scorePair computes all five metrics. An InvalidNumeric error comes with a
// partial record when only PCQI was non-finite.
func (s *evaluationService) scorePair(name string, ref, dist *image.Gray) (record *models.ScoreRecord, err error) {
	defer recoverItem(name, &err)

	rb, db := ref.Bounds(), dist.Bounds()
	if rb.Dx() != db.Dx() || rb.Dy() != db.Dy() {
		logger.WithFields(logrus.Fields{
			"file":      name,
			"reference": rb.Size().String(),
			"processed": db.Size().String(),
		}).Debug("Resizing processed image to reference dimensions")
		dist = imaging.Resize(dist, rb.Dx(), rb.Dy(), s.options.Interpolator)
	}
	if err := s.validator.ValidateDimensions(rb.Dx(), rb.Dy()); err != nil {
		return nil, err
	}

	refGrid := imaging.GrayToGrid(ref)
	distGrid := imaging.GrayToGrid(dist)

	pcqi, err := s.calculator.PCQI(refGrid, distGrid)
	if err != nil {
		return nil, apperrors.NewComputationError("PCQI", err)
	}
	record = &models.ScoreRecord{Filename: name}
	if record.AGRef, err = s.calculator.AverageGradient(refGrid); err != nil {
		return nil, apperrors.NewComputationError("AG of reference", err)
	}
	if record.AGDist, err = s.calculator.AverageGradient(distGrid); err != nil {
		return nil, apperrors.NewComputationError("AG of processed", err)
	}
	if record.EIRef, err = s.calculator.EdgeIntensity(refGrid); err != nil {
		return nil, apperrors.NewComputationError("EI of reference", err)
	}
	if record.EIDist, err = s.calculator.EdgeIntensity(distGrid); err != nil {
		return nil, apperrors.NewComputationError("EI of processed", err)
	}

	if err := s.validator.ValidateScores(
		validation.NamedScore{Metric: "AG_ref", Value: record.AGRef},
		validation.NamedScore{Metric: "AG_dist", Value: record.AGDist},
		validation.NamedScore{Metric: "EI_ref", Value: record.EIRef},
		validation.NamedScore{Metric: "EI_dist", Value: record.EIDist},
	); err != nil {
		return nil, err
	}
	if err := s.validator.ValidateScore("PCQI", pcqi); err != nil {
		logger.WithFields(logrus.Fields{
			"file":      name,
			"reference": refGrid.Stats(),
			"processed": distGrid.Stats(),
		}).Debug("PCQI is not finite")
		return record, err
	}
	record.PCQI = &pcqi
	return record, nil
}
