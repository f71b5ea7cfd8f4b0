package factory

import (
	"fmt"
	"strings"

	"go-image-metrics/internal/metrics"
	"go-image-metrics/internal/report"
	"go-image-metrics/internal/uiqm"

	"golang.org/x/image/draw"
)

// ResampleType names an interpolation kernel for resizing processed images
type ResampleType string

const (
	BilinearResample ResampleType = "bilinear"
	NearestResample  ResampleType = "nearest"
)

// ScorerType names a no-reference scorer
type ScorerType string

const (
	// UIQMScorer is the underwater image quality measure
	UIQMScorer ScorerType = "uiqm"
)

// ReportFormat names an output encoding
type ReportFormat string

const (
	TextReport ReportFormat = "text"
	JSONReport ReportFormat = "json"
	YAMLReport ReportFormat = "yaml"
)

// ResamplerFactory creates interpolators
type ResamplerFactory interface {
	CreateResampler(resampleType ResampleType) (draw.Interpolator, error)
}

// ScorerFactory creates no-reference scorers
type ScorerFactory interface {
	CreateScorer(scorerType ScorerType) (metrics.NoReferenceScorer, error)
}

// ReporterFactory creates report writers
type ReporterFactory interface {
	CreateReporter(format ReportFormat) (report.Reporter, error)
}

type resamplerFactory struct{}

// NewResamplerFactory creates a new resampler factory
func NewResamplerFactory() ResamplerFactory {
	return &resamplerFactory{}
}

// CreateResampler returns the interpolator for resampleType; names are case-insensitive
func (f *resamplerFactory) CreateResampler(resampleType ResampleType) (draw.Interpolator, error) {
	switch ResampleType(strings.ToLower(string(resampleType))) {
	case BilinearResample:
		return draw.BiLinear, nil
	case NearestResample:
		return draw.NearestNeighbor, nil
	default:
		return nil, fmt.Errorf("unsupported resample type: %s", resampleType)
	}
}

type scorerFactory struct{}

// NewScorerFactory creates a new scorer factory
func NewScorerFactory() ScorerFactory {
	return &scorerFactory{}
}

// CreateScorer returns the scorer for scorerType
func (f *scorerFactory) CreateScorer(scorerType ScorerType) (metrics.NoReferenceScorer, error) {
	switch ScorerType(strings.ToLower(string(scorerType))) {
	case UIQMScorer:
		return uiqm.NewScorer(), nil
	default:
		return nil, fmt.Errorf("unsupported scorer type: %s", scorerType)
	}
}

type reporterFactory struct{}

// NewReporterFactory creates a new reporter factory
func NewReporterFactory() ReporterFactory {
	return &reporterFactory{}
}

// CreateReporter returns the reporter for format
func (f *reporterFactory) CreateReporter(format ReportFormat) (report.Reporter, error) {
	switch ReportFormat(strings.ToLower(string(format))) {
	case TextReport:
		return report.NewTextReporter(), nil
	case JSONReport:
		return report.NewJSONReporter(), nil
	case YAMLReport:
		return report.NewYAMLReporter(), nil
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

// ComponentFactory combines all factories
type ComponentFactory struct {
	ResamplerFactory ResamplerFactory
	ScorerFactory    ScorerFactory
	ReporterFactory  ReporterFactory
}

// NewComponentFactory creates a new component factory
func NewComponentFactory() *ComponentFactory {
	return &ComponentFactory{
		ResamplerFactory: NewResamplerFactory(),
		ScorerFactory:    NewScorerFactory(),
		ReporterFactory:  NewReporterFactory(),
	}
}
