package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/interview-coach/internal/evaluation"
	"github.com/jonathan/interview-coach/internal/observability"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score an interview answer",
	Long: "Scores a free-text answer on clarity, confidence and relevance using fuzzy " +
		"inference over extracted linguistic features. Accepts a single answer via " +
		"--answer or --file, or a batch via --input (JSON array of strings).",
	RunE: runScore,
}

var (
	scoreAnswer string
	scoreFile   string
	scoreInput  string
	scoreOutput string
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreAnswer, "answer", "a", "", "Answer text to score")
	scoreCmd.Flags().StringVarP(&scoreFile, "file", "f", "", "Path to a text file containing the answer")
	scoreCmd.Flags().StringVarP(&scoreInput, "input", "i", "", "Path to a JSON array of answers for batch scoring")
	scoreCmd.Flags().StringVarP(&scoreOutput, "out", "o", "", "Path to output JSON file (default: stdout)")

	scoreCmd.MarkFlagsMutuallyExclusive("answer", "file", "input")
	scoreCmd.MarkFlagsOneRequired("answer", "file", "input")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	log, err := newLogger(false)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer log.Sync() //nolint:errcheck

	evaluator := evaluation.NewEvaluator(log)

	if scoreInput != "" {
		return runScoreBatch(cmd.Context(), evaluator)
	}

	answer := scoreAnswer
	if scoreFile != "" {
		data, err := os.ReadFile(scoreFile)
		if err != nil {
			return fmt.Errorf("failed to read answer file %s: %w", scoreFile, err)
		}
		answer = strings.TrimSpace(string(data))
	}

	ev, err := evaluator.EvaluateAnswer(nil, answer)
	if err != nil {
		return fmt.Errorf("failed to score answer: %w", err)
	}

	if flagVerbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintFeatures(&ev.Features)
		printer.PrintScores(&ev.Scores)
		printer.PrintInsights(evaluation.InsightsFor(ev))
	}

	return writeJSON(scoreOutput, ev)
}

func runScoreBatch(ctx context.Context, evaluator *evaluation.Evaluator) error {
	data, err := os.ReadFile(scoreInput)
	if err != nil {
		return fmt.Errorf("failed to read input file %s: %w", scoreInput, err)
	}

	var answers []string
	if err := json.Unmarshal(data, &answers); err != nil {
		return fmt.Errorf("failed to parse input JSON (expected array of strings): %w", err)
	}
	if len(answers) == 0 {
		return fmt.Errorf("input file %s contains no answers", scoreInput)
	}

	scores, err := evaluator.ScoreBatch(ctx, answers)
	if err != nil {
		return fmt.Errorf("failed to score batch: %w", err)
	}

	return writeJSON(scoreOutput, scores)
}

// writeJSON marshals v with indentation and writes it to path, or stdout
// when path is empty.
func writeJSON(path string, v any) error {
	jsonOutput, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output to JSON: %w", err)
	}

	if path == "" {
		fmt.Println(string(jsonOutput))
		return nil
	}

	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}

	if err := os.WriteFile(path, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}
