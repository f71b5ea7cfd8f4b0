package service

import (
	"fmt"
	"runtime/debug"
	"time"

	apperrors "go-image-metrics/internal/errors"
	"go-image-metrics/internal/logger"
	"go-image-metrics/internal/metrics"
	"go-image-metrics/internal/observer"
	"go-image-metrics/internal/repository"
	"go-image-metrics/pkg/models"
	"go-image-metrics/pkg/validation"

	"github.com/sirupsen/logrus"
	"golang.org/x/image/draw"
)

// Evaluation modes, used in events and reports
const (
	ModeFullReference = "pcqi"
	ModeNoReference   = "nr"
)

// EvaluationService runs batch quality evaluations over image folders.
// Each call owns its own run state, so one service can serve many runs.
type EvaluationService interface {
	// EvaluateFullReference pairs every image in refDir with the identically
	// named image in distDir and scores PCQI, AG and EI.
	EvaluateFullReference(refDir, distDir string) (*models.BatchReport, error)

	// EvaluateNoReference scores every image in dir with the configured
	// no-reference scorer.
	EvaluateNoReference(dir string) (*models.NoReferenceReport, error)
}

// Options tunes a service
type Options struct {
	// Workers bounds how many items are evaluated concurrently
	Workers int
	// Interpolator resizes processed images to the reference dimensions
	Interpolator draw.Interpolator
}

// DefaultOptions evaluates items one at a time with bilinear resampling
func DefaultOptions() Options {
	return Options{
		Workers:      1,
		Interpolator: draw.BiLinear,
	}
}

type evaluationService struct {
	repo       repository.DatasetRepository
	calculator metrics.Calculator
	scorer     metrics.NoReferenceScorer
	validator  *validation.ScoreValidator
	publisher  observer.Subject
	options    Options
}

// NewEvaluationService creates a new evaluation service. scorer may be nil
// when no-reference evaluation is not needed.
func NewEvaluationService(
	repo repository.DatasetRepository,
	calculator metrics.Calculator,
	scorer metrics.NoReferenceScorer,
	validator *validation.ScoreValidator,
	publisher observer.Subject,
	options Options,
) EvaluationService {
	if options.Workers < 1 {
		options.Workers = 1
	}
	if options.Interpolator == nil {
		options.Interpolator = draw.BiLinear
	}
	if validator == nil {
		validator = validation.NewScoreValidator()
	}
	return &evaluationService{
		repo:       repo,
		calculator: calculator,
		scorer:     scorer,
		validator:  validator,
		publisher:  publisher,
		options:    options,
	}
}

// checkDirectories maps a missing folder to the fatal DirectoryNotFound error
func (s *evaluationService) checkDirectories(dirs ...string) error {
	for _, dir := range dirs {
		if err := s.repo.CheckDirectory(dir); err != nil {
			return apperrors.NewDirectoryNotFoundError(dir, err)
		}
	}
	return nil
}

// forEach runs fn for indices [0, n) on the worker pool and returns once all
// have finished. Callers write results by index, so output order does not
// depend on completion order.
func (s *evaluationService) forEach(n int, fn func(i int)) {
	if s.options.Workers == 1 || n < 2 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	pool := NewWorkerPool(min(s.options.Workers, n))
	pool.Start()
	defer pool.Close()

	for i := 0; i < n; i++ {
		i := i
		pool.Submit(func() { fn(i) })
	}
	pool.Wait()
}

// recoverItem turns a panic inside one item into an error for that item only
func recoverItem(filename string, errp *error) {
	if r := recover(); r != nil {
		logger.WithFields(logrus.Fields{
			"file":  filename,
			"panic": r,
		}).Debugf("Recovered item panic\n%s", debug.Stack())
		*errp = apperrors.NewComputationError(fmt.Sprintf("panic: %v", r), nil)
	}
}

func (s *evaluationService) notify(event observer.EvaluationEvent) {
	if s.publisher != nil {
		s.publisher.NotifyObservers(event)
	}
}

func (s *evaluationService) notifyItem(mode, filename string, status models.ItemStatus, message string, elapsed time.Duration) {
	event := observer.EvaluationEvent{
		Mode:           mode,
		Filename:       filename,
		ProcessingTime: elapsed,
		ErrorMessage:   message,
	}
	switch {
	case status == models.StatusScored:
		event.EventType = observer.ItemScored
	case status.Skipped():
		event.EventType = observer.ItemSkipped
		event.Metadata = map[string]interface{}{"reason": string(status)}
	case status == models.StatusInvalid:
		event.EventType = observer.ItemInvalid
	default:
		event.EventType = observer.ItemFailed
	}
	s.notify(event)
}

func (s *evaluationService) logEmpty(mode string) {
	logger.WithError(apperrors.NewEmptyResultError("no item produced a valid score")).
		WithField("mode", mode).
		Warn("Nothing to aggregate")
}
