// Command prunecluster-replay runs a marker overlay scenario against an in-memory
// surface and prints every marker operation the overlay performs.
//
// Usage:
//
//	prunecluster-replay [--log-level debug] [--metrics] scenario.yaml
package main

import (
	"fmt"
	"os"

	"github.com/arloliu/prunecluster"
	"github.com/arloliu/prunecluster/internal/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var logLevel string
	var dumpMetrics bool

	cmd := &cobra.Command{
		Use:           "prunecluster-replay scenario.yaml",
		Short:         "Replay a marker overlay scenario and print surface operations",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := logging.NewText(cmd.ErrOrStderr(), logLevel)
			if err != nil {
				return err
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read scenario: %w", err)
			}
			sc, err := ParseScenario(data)
			if err != nil {
				return err
			}

			reg := prometheus.NewRegistry()
			metrics := prunecluster.NewPrometheusMetrics(reg, "")

			out := cmd.OutOrStdout()
			if err := Replay(out, sc, log, metrics); err != nil {
				return err
			}

			if !dumpMetrics {
				return nil
			}

			families, err := reg.Gather()
			if err != nil {
				return fmt.Errorf("gather metrics: %w", err)
			}
			_, _ = fmt.Fprintln(out, "== metrics")
			for _, mf := range families {
				if _, err := expfmt.MetricFamilyToText(out, mf); err != nil {
					return fmt.Errorf("write metrics: %w", err)
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&logLevel, "log-level", logging.LevelWarn, "Log level (debug, info, warn, error)")
	cmd.Flags().BoolVar(&dumpMetrics, "metrics", false, "Print overlay metrics after the replay")

	return cmd
}
