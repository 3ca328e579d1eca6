package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"word-history-project/history"
)

var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Interactively break series years down into documents",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		in, err := loadInput(cfg)
		if err != nil {
			return err
		}
		return explore(cmd.InOrStdin(), cmd.OutOrStdout(), in, cfg.CollectionID)
	},
}

func init() {
	rootCmd.AddCommand(exploreCmd)
}

func explore(r io.Reader, w io.Writer, in history.Input, collection string) error {
	if _, ok := in.ResultSet(); !ok {
		fmt.Fprintln(w, "No word history results.")
		return nil
	}

	series, err := in.Aggregate()
	if err != nil {
		fmt.Fprintf(w, "Skipped invalid series: %v\n", err)
	}

	fmt.Fprintf(w, "Word History Ready!\n")
	fmt.Fprintf(w, "Results contain %d series\n", len(series))
	for _, s := range series {
		fmt.Fprintf(w, "- %s: %s\n", s.Name, formatYears(s.Points))
	}
	fmt.Fprintln(w, "\nEnter a series name and a year, e.g. 'war 1914' (or 'quit' to exit):")

	scanner := bufio.NewScanner(r)
	for {
		fmt.Fprint(w, "> ")
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			break
		}

		name, year, err := parseSelection(line)
		if err != nil {
			fmt.Fprintf(w, "Input error: %v\n", err)
			continue
		}

		b, err := in.DrillDown(name, year)
		switch {
		case errors.Is(err, history.ErrNoSuchSeries), errors.Is(err, history.ErrAmbiguousSeries):
			fmt.Fprintf(w, "Lookup error: %v\n", err)
			continue
		case err != nil:
			fmt.Fprintf(w, "Drill-down error: %v\n", err)
			continue
		}

		fmt.Fprintln(w)
		writeBreakdown(w, b, collection)
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "\nGoodbye!")
	return scanner.Err()
}

// parseSelection splits "<series name> <year>"; series names may contain spaces
func parseSelection(line string) (string, int, error) {
	idx := strings.LastIndex(line, " ")
	if idx < 0 {
		return "", 0, fmt.Errorf("expected '<series> <year>'")
	}
	year, err := strconv.Atoi(line[idx+1:])
	if err != nil {
		return "", 0, fmt.Errorf("invalid year %q", line[idx+1:])
	}
	return strings.TrimSpace(line[:idx]), year, nil
}

func formatYears(points []history.SeriesPoint) string {
	if len(points) == 0 {
		return "no data"
	}
	years := make([]string, len(points))
	for i, p := range points {
		years[i] = fmt.Sprintf("%d (%g)", p.Year, p.Total)
	}
	return strings.Join(years, ", ")
}
