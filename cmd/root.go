// Package cmd contains the wordhistory CLI commands
package cmd

import (
	"github.com/spf13/cobra"

	"word-history-project/config"
	"word-history-project/history"
	"word-history-project/logger"
)

var (
	inputFile  string
	collection string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "wordhistory",
	Short: "Word history charts with per-year drill-down",
	Long: `wordhistory turns term-frequency-by-year results into a line chart per
series and breaks a series year down into per-document weights.

Example usage:
  wordhistory serve                                # serve RESULTS_FILE over HTTP
  wordhistory aggregate -i results.json            # print the chart series
  wordhistory drilldown -i results.json -s war -y 1914
  wordhistory explore -i page.html                 # interactive drill-down`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&inputFile, "input", "i", "", "result set file, JSON or hosting HTML page (default $RESULTS_FILE)")
	rootCmd.PersistentFlags().StringVar(&collection, "collection", "", "collection id for detail links (default $COLLECTION_ID)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (default $LOG_LEVEL)")
}

// loadConfig reads the environment and applies flag overrides
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if inputFile != "" {
		cfg.ResultsFile = inputFile
	}
	if collection != "" {
		cfg.CollectionID = collection
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	logger.Init(cfg.LogLevel, cfg.LogOTel)
	return cfg, nil
}

// loadInput loads the configured result set
func loadInput(cfg *config.Config) (history.Input, error) {
	in, err := history.LoadFile(cfg.ResultsFile)
	if err != nil {
		return history.Absent(), err
	}
	if _, ok := in.ResultSet(); !ok {
		logger.Logger.Debug("no result data supplied", "file", cfg.ResultsFile)
	}
	return in, nil
}
