package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/interview-coach/internal/evaluation"
	"github.com/jonathan/interview-coach/internal/observability"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract linguistic features from an answer",
	Long: "Runs only the feature extraction stage: word and sentence counts, sentiment, " +
		"lexicon hits, coherence and complexity. No fuzzy scoring is performed.",
	RunE: runExtract,
}

var (
	extractAnswer string
	extractFile   string
	extractOutput string
)

func init() {
	extractCmd.Flags().StringVarP(&extractAnswer, "answer", "a", "", "Answer text to analyze")
	extractCmd.Flags().StringVarP(&extractFile, "file", "f", "", "Path to a text file containing the answer")
	extractCmd.Flags().StringVarP(&extractOutput, "out", "o", "", "Path to output JSON file (default: stdout)")

	extractCmd.MarkFlagsMutuallyExclusive("answer", "file")
	extractCmd.MarkFlagsOneRequired("answer", "file")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(_ *cobra.Command, _ []string) error {
	log, err := newLogger(false)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer log.Sync() //nolint:errcheck

	answer := extractAnswer
	if extractFile != "" {
		data, err := os.ReadFile(extractFile)
		if err != nil {
			return fmt.Errorf("failed to read answer file %s: %w", extractFile, err)
		}
		answer = strings.TrimSpace(string(data))
	}

	evaluator := evaluation.NewEvaluator(log)
	features, err := evaluator.ExtractFeatures(answer)
	if err != nil {
		return fmt.Errorf("failed to extract features: %w", err)
	}

	if flagVerbose {
		observability.NewPrinter(os.Stderr).PrintFeatures(features)
	}

	return writeJSON(extractOutput, features)
}
