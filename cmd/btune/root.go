// Package btune is the cobra CLI front-end for the tuner package: a
// run subcommand drives the Tuner against synthetic chunks through the
// internal/hostdemo backend so its exploration schedule and logging
// can be exercised end to end without a real Blosc host (§6.6).
package btune

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "btune",
	Short: "Online auto-tuner for streaming chunked-compression parameters",
}

// Execute runs the btune CLI, exiting the process on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a btune YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "info", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(runCmd)
}

func setLogLevel() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}
