package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Supported values for Resample and OutputFormat
const (
	ResampleBilinear = "bilinear"
	ResampleNearest  = "nearest"

	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

type Config struct {
	// Workers bounds how many items are evaluated at once; 1 is sequential
	Workers int
	// CalculatorWorkers is the row-strip parallelism inside one metric call; 0 means NumCPU
	CalculatorWorkers int
	Resample          string
	OutputFormat      string
	LogLevel          string
	LogFormat         string
}

func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Workers:           parseIntOrDefault("EVAL_WORKERS", 1),
		CalculatorWorkers: parseIntOrDefault("EVAL_CALC_WORKERS", 0),
		Resample:          strings.ToLower(getEnvOrDefault("EVAL_RESAMPLE", ResampleBilinear)),
		OutputFormat:      strings.ToLower(getEnvOrDefault("EVAL_OUTPUT_FORMAT", FormatText)),
		LogLevel:          strings.ToLower(getEnvOrDefault("LOG_LEVEL", "info")),
		LogFormat:         strings.ToLower(getEnvOrDefault("LOG_FORMAT", FormatText)),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings after env loading or flag overrides
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("EVAL_WORKERS must be >= 1 (got %d)", c.Workers)
	}
	if c.CalculatorWorkers < 0 {
		return fmt.Errorf("EVAL_CALC_WORKERS must be >= 0 (got %d)", c.CalculatorWorkers)
	}
	switch c.Resample {
	case ResampleBilinear, ResampleNearest:
	default:
		return fmt.Errorf("invalid EVAL_RESAMPLE: %q", c.Resample)
	}
	switch c.OutputFormat {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("invalid EVAL_OUTPUT_FORMAT: %q", c.OutputFormat)
	}
	switch c.LogFormat {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("invalid LOG_FORMAT: %q", c.LogFormat)
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			return intValue
		}
	}
	return defaultValue
}
