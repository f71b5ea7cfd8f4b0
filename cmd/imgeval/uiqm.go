package main

import (
	"go-image-metrics/internal/container"
	"go-image-metrics/internal/factory"
	"go-image-metrics/internal/logger"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var uiqmCmd = &cobra.Command{
	Use:   "uiqm DIR",
	Short: "Score every image in a folder with UIQM",
	Long: `Computes the underwater image quality measure for each image in DIR, in
name order, and reports the mean together with the best and worst files.
Images that yield a non-finite score are reported as invalid.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := container.NewContainer(cfg, factory.UIQMScorer)
		if err != nil {
			return err
		}

		report, err := c.Service().EvaluateNoReference(args[0])
		if err != nil {
			return err
		}
		logger.WithFields(logrus.Fields(c.Metrics())).Debug("Run counters")
		return c.Reporter().WriteNoReference(cmd.OutOrStdout(), report)
	},
}

func init() {
	rootCmd.AddCommand(uiqmCmd)
}
