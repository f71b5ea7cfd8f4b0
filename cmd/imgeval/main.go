package main

import (
	"os"

	"go-image-metrics/internal/config"
	apperrors "go-image-metrics/internal/errors"
	"go-image-metrics/internal/logger"

	"github.com/spf13/cobra"
)

var (
	rootFlags struct {
		Workers     int
		CalcWorkers int
		Resample    string
		Format      string
		LogLevel    string
		LogFormat   string
	}

	// cfg is resolved from the environment and flags before any subcommand runs
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:           "imgeval",
	Short:         "Batch image quality evaluation",
	Long:          `Scores processed images against their references (PCQI, average gradient, edge intensity) or scores a single folder with a no-reference metric (UIQM).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.LoadFromEnv()
		if err != nil {
			return apperrors.NewValidationError("failed to load config", err)
		}
		applyFlagOverrides(cmd, loaded)
		if err := loaded.Validate(); err != nil {
			return apperrors.NewValidationError("invalid flags", err)
		}

		logger.SetLevel(loaded.LogLevel)
		logger.SetFormat(loaded.LogFormat)
		cfg = loaded
		return nil
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.IntVarP(&rootFlags.Workers, "workers", "w", 1, "Number of images evaluated concurrently (env EVAL_WORKERS)")
	flags.IntVar(&rootFlags.CalcWorkers, "calc-workers", 0, "Row-strip workers per metric call, 0 for one per CPU (env EVAL_CALC_WORKERS)")
	flags.StringVar(&rootFlags.Resample, "resample", config.ResampleBilinear, "Resampler for size mismatches: bilinear or nearest (env EVAL_RESAMPLE)")
	flags.StringVarP(&rootFlags.Format, "format", "f", config.FormatText, "Report format: text, json or yaml (env EVAL_OUTPUT_FORMAT)")
	flags.StringVar(&rootFlags.LogLevel, "log-level", "info", "Log level: debug, info, warn or error (env LOG_LEVEL)")
	flags.StringVar(&rootFlags.LogFormat, "log-format", config.FormatText, "Log format: text or json (env LOG_FORMAT)")
}

// applyFlagOverrides lets explicitly set flags win over the environment
func applyFlagOverrides(cmd *cobra.Command, c *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("workers") {
		c.Workers = rootFlags.Workers
	}
	if flags.Changed("calc-workers") {
		c.CalculatorWorkers = rootFlags.CalcWorkers
	}
	if flags.Changed("resample") {
		c.Resample = rootFlags.Resample
	}
	if flags.Changed("format") {
		c.OutputFormat = rootFlags.Format
	}
	if flags.Changed("log-level") {
		c.LogLevel = rootFlags.LogLevel
	}
	if flags.Changed("log-format") {
		c.LogFormat = rootFlags.LogFormat
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.WithError(err).Error("Evaluation aborted")
		os.Exit(apperrors.GetExitCode(err))
	}
}
