package container

import (
	"fmt"

	"go-image-metrics/internal/config"
	"go-image-metrics/internal/factory"
	"go-image-metrics/internal/logger"
	"go-image-metrics/internal/metrics"
	"go-image-metrics/internal/observer"
	"go-image-metrics/internal/report"
	"go-image-metrics/internal/repository"
	"go-image-metrics/internal/service"
	"go-image-metrics/internal/storage"
	"go-image-metrics/pkg/validation"
)

// Container holds all application dependencies
type Container struct {
	config            *config.Config
	repository        repository.DatasetRepository
	calculator        metrics.Calculator
	evaluationService service.EvaluationService
	reporter          report.Reporter
	metricsObserver   *observer.MetricsObserver
}

// NewContainer wires the dependency graph for one CLI invocation
func NewContainer(cfg *config.Config, scorerType factory.ScorerType) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	components := factory.NewComponentFactory()

	interp, err := components.ResamplerFactory.CreateResampler(factory.ResampleType(cfg.Resample))
	if err != nil {
		return nil, err
	}
	reporter, err := components.ReporterFactory.CreateReporter(factory.ReportFormat(cfg.OutputFormat))
	if err != nil {
		return nil, err
	}
	var scorer metrics.NoReferenceScorer
	if scorerType != "" {
		if scorer, err = components.ScorerFactory.CreateScorer(scorerType); err != nil {
			return nil, err
		}
	}

	loader := storage.NewFileImageLoader()
	repo := repository.NewFileSystemRepository(loader)
	calculator := metrics.NewCalculator(cfg.CalculatorWorkers)

	publisher := observer.NewEventPublisher()
	metricsObserver := observer.NewMetricsObserver()
	publisher.Subscribe(observer.NewLoggingObserver(logger.Logger))
	publisher.Subscribe(metricsObserver)

	evaluationService := service.NewEvaluationService(
		repo,
		calculator,
		scorer,
		validation.NewScoreValidator(),
		publisher,
		service.Options{
			Workers:      cfg.Workers,
			Interpolator: interp,
		},
	)

	return &Container{
		config:            cfg,
		repository:        repo,
		calculator:        calculator,
		evaluationService: evaluationService,
		reporter:          reporter,
		metricsObserver:   metricsObserver,
	}, nil
}

// Service returns the evaluation service
func (c *Container) Service() service.EvaluationService {
	return c.evaluationService
}

// Reporter returns the configured report writer
func (c *Container) Reporter() report.Reporter {
	return c.reporter
}

// Metrics returns the run counters collected from evaluation events
func (c *Container) Metrics() map[string]interface{} {
	return c.metricsObserver.GetMetrics()
}

// Config returns the configuration
func (c *Container) Config() *config.Config {
	return c.config
}
