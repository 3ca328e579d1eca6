package main

import (
	"os"

	"word-history-project/cmd"
	"word-history-project/logger"
)

func main() {
	if err := cmd.Execute(); err != nil {
		logger.Logger.Error("wordhistory failed", "err", err)
		os.Exit(1)
	}
}
