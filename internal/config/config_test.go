package config

import "testing"

func TestLoadFromEnv_Defaults(t *testing.T) {
	for _, key := range []string{"EVAL_WORKERS", "EVAL_CALC_WORKERS", "EVAL_RESAMPLE", "EVAL_OUTPUT_FORMAT", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(key, "")
	}

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cfg.Workers != 1 {
		t.Errorf("Expected 1 worker, got %d", cfg.Workers)
	}
	if cfg.CalculatorWorkers != 0 {
		t.Errorf("Expected 0 calculator workers, got %d", cfg.CalculatorWorkers)
	}
	if cfg.Resample != ResampleBilinear {
		t.Errorf("Expected bilinear, got %s", cfg.Resample)
	}
	if cfg.OutputFormat != FormatText {
		t.Errorf("Expected text output, got %s", cfg.OutputFormat)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("Expected info log level, got %s", cfg.LogLevel)
	}
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("EVAL_WORKERS", " 4 ")
	t.Setenv("EVAL_RESAMPLE", "Nearest")
	t.Setenv("EVAL_OUTPUT_FORMAT", "JSON")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cfg.Workers != 4 {
		t.Errorf("Expected 4 workers, got %d", cfg.Workers)
	}
	if cfg.Resample != ResampleNearest {
		t.Errorf("Expected nearest, got %s", cfg.Resample)
	}
	if cfg.OutputFormat != FormatJSON {
		t.Errorf("Expected json output, got %s", cfg.OutputFormat)
	}
}

func TestLoadFromEnv_Invalid(t *testing.T) {
	testCases := []struct {
		name  string
		key   string
		value string
	}{
		{"Zero workers", "EVAL_WORKERS", "0"},
		{"Negative calculator workers", "EVAL_CALC_WORKERS", "-2"},
		{"Unknown resampler", "EVAL_RESAMPLE", "lanczos"},
		{"Unknown format", "EVAL_OUTPUT_FORMAT", "xml"},
		{"YAML is not a log format", "LOG_FORMAT", "yaml"},
		{"Unknown log format", "LOG_FORMAT", "logfmt"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)
			if _, err := LoadFromEnv(); err == nil {
				t.Errorf("Expected error for %s=%s", tc.key, tc.value)
			}
		})
	}
}

func TestLoadFromEnv_UnparseableIntFallsBack(t *testing.T) {
	t.Setenv("EVAL_WORKERS", "many")

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cfg.Workers != 1 {
		t.Errorf("Expected default of 1 worker, got %d", cfg.Workers)
	}
}
