package cmd

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"word-history-project/chart"
	"word-history-project/history"
	"word-history-project/logger"
)

var printConfig bool

var aggregateCmd = &cobra.Command{
	Use:   "aggregate",
	Short: "Print the aggregated word history series",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		in, err := loadInput(cfg)
		if err != nil {
			return err
		}
		return writeAggregate(cmd.OutOrStdout(), in, printConfig)
	},
}

func init() {
	aggregateCmd.Flags().BoolVar(&printConfig, "chart", false, "print the line chart configuration instead of the series")
	rootCmd.AddCommand(aggregateCmd)
}

// writeAggregate prints nothing for the absent input. Invalid series are
// logged and left out.
func writeAggregate(w io.Writer, in history.Input, asChart bool) error {
	if _, ok := in.ResultSet(); !ok {
		return nil
	}

	series, err := in.Aggregate()
	if err != nil {
		logger.Logger.Warn("skipped invalid series", "err", err)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if asChart {
		return enc.Encode(chart.Line(series))
	}
	return enc.Encode(series)
}
