// Package main provides the interview_agent CLI: fuzzy-logic answer scoring
// and the mock-interview REST API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/interview-coach/internal/config"
	"github.com/jonathan/interview-coach/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "interview_agent",
	Short: "Mock interview coach with fuzzy-logic answer scoring",
	Long: "interview_agent scores free-text interview answers on clarity, confidence and " +
		"relevance using linguistic feature extraction and Mamdani fuzzy inference, and " +
		"serves a REST API for full LLM-driven mock interviews.",
}

var (
	flagVerbose bool
	flagDebug   bool
	flagConfig  string
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Print detailed output")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to JSON config file")
}

// loadAppConfig loads the optional JSON config file and applies environment
// fallbacks and defaults.
func loadAppConfig() (*config.Config, error) {
	cfg := &config.Config{}
	if flagConfig != "" {
		loaded, err := config.LoadConfig(flagConfig)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if flagVerbose {
		cfg.Verbose = true
	}
	return cfg, nil
}

func newLogger(json bool) (*zap.Logger, error) {
	return logger.New(json, flagDebug)
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
