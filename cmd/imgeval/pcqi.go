package main

import (
	"go-image-metrics/internal/container"
	"go-image-metrics/internal/logger"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	pcqiFlags struct {
		Reference string
		Processed string
	}
)

var pcqiCmd = &cobra.Command{
	Use:   "pcqi",
	Short: "Compare a processed folder against a reference folder",
	Long: `Pairs images by filename and reports PCQI plus average gradient and edge
intensity for both sides. Processed images whose size differs from the
reference are resampled to the reference size first.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := container.NewContainer(cfg, "")
		if err != nil {
			return err
		}

		report, err := c.Service().EvaluateFullReference(pcqiFlags.Reference, pcqiFlags.Processed)
		if err != nil {
			return err
		}
		logger.WithFields(logrus.Fields(c.Metrics())).Debug("Run counters")
		return c.Reporter().WriteBatch(cmd.OutOrStdout(), report)
	},
}

func init() {
	rootCmd.AddCommand(pcqiCmd)

	pcqiCmd.Flags().StringVarP(&pcqiFlags.Reference, "ref", "r", "", "Reference image folder (required)")
	pcqiCmd.MarkFlagRequired("ref")
	pcqiCmd.Flags().StringVarP(&pcqiFlags.Processed, "dist", "d", "", "Processed image folder (required)")
	pcqiCmd.MarkFlagRequired("dist")
}
