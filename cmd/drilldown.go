package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"word-history-project/chart"
	"word-history-project/history"
)

var (
	drillSeries string
	drillYear   int
)

var drilldownCmd = &cobra.Command{
	Use:   "drilldown",
	Short: "Print the per-document breakdown of a series year",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		in, err := loadInput(cfg)
		if err != nil {
			return err
		}

		b, err := in.DrillDown(drillSeries, drillYear)
		if errors.Is(err, history.ErrMissingInputData) {
			return nil
		}
		if err != nil {
			return err
		}
		writeBreakdown(cmd.OutOrStdout(), b, cfg.CollectionID)
		return nil
	},
}

func init() {
	drilldownCmd.Flags().StringVarP(&drillSeries, "series", "s", "", "series name, matched exactly")
	drilldownCmd.Flags().IntVarP(&drillYear, "year", "y", 0, "year to break down")
	_ = drilldownCmd.MarkFlagRequired("series")
	_ = drilldownCmd.MarkFlagRequired("year")
	rootCmd.AddCommand(drilldownCmd)
}

func writeBreakdown(w io.Writer, b history.Breakdown, collection string) {
	fmt.Fprintln(w, b.Title)
	fmt.Fprintln(w, strings.Repeat("-", 60))
	if len(b.Entries) == 0 {
		fmt.Fprintln(w, "No documents found.")
		return
	}

	var total float64
	for _, e := range b.Entries {
		total += e.Weight
	}
	for i, e := range b.Entries {
		share := 0.0
		if total != 0 {
			share = e.Weight / total * 100
		}
		fmt.Fprintf(w, "%d. %s\n", i+1, e.DocumentID)
		fmt.Fprintf(w, "   Weight: %g (%.1f%%)\n", e.Weight, share)
		fmt.Fprintf(w, "   Link: %s\n", chart.DetailsLink(e.DocumentID, collection))
	}
}
