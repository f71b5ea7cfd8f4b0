package container

import (
	"testing"

	"go-image-metrics/internal/config"
	"go-image-metrics/internal/factory"
)

func validConfig() *config.Config {
	return &config.Config{
		Workers:      2,
		Resample:     config.ResampleNearest,
		OutputFormat: config.FormatJSON,
		LogLevel:     "info",
		LogFormat:    config.FormatText,
	}
}

func TestNewContainer(t *testing.T) {
	c, err := NewContainer(validConfig(), factory.UIQMScorer)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if c.Service() == nil {
		t.Error("Expected evaluation service")
	}
	if c.Reporter().Format() != config.FormatJSON {
		t.Errorf("Expected json reporter, got %s", c.Reporter().Format())
	}
	if c.Config().Workers != 2 {
		t.Errorf("Expected config to be kept, got %+v", c.Config())
	}
	if c.Metrics()["runs"] != int64(0) {
		t.Errorf("Expected fresh counters, got %v", c.Metrics())
	}
}

func TestNewContainer_WithoutScorer(t *testing.T) {
	c, err := NewContainer(validConfig(), "")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, err := c.Service().EvaluateNoReference(t.TempDir()); err == nil {
		t.Error("Expected no-reference evaluation to fail without a scorer")
	}
}

func TestNewContainer_Invalid(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*config.Config)
		scorer factory.ScorerType
	}{
		{"Zero workers", func(c *config.Config) { c.Workers = 0 }, ""},
		{"Unknown resampler", func(c *config.Config) { c.Resample = "cubic" }, ""},
		{"Unknown scorer", func(c *config.Config) {}, "brisque"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(cfg)
			if _, err := NewContainer(cfg, tc.scorer); err == nil {
				t.Error("Expected error")
			}
		})
	}
}
