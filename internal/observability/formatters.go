// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/interview-coach/internal/evaluation"
	"github.com/jonathan/interview-coach/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintFeatures outputs a human-readable summary of the extracted
// linguistic features.
func (p *Printer) PrintFeatures(f *types.LinguisticFeatures) {
	if f == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Words:           %d\n", f.WordCount))
	sb.WriteString(fmt.Sprintf("Sentences:       %d (avg %.2f words)\n", f.SentenceCount, f.AvgSentenceLength))
	sb.WriteString(fmt.Sprintf("Sentiment:       %+.3f\n", f.SentimentScore))
	sb.WriteString(fmt.Sprintf("Coherence:       %.3f\n", f.CoherenceScore))
	sb.WriteString(fmt.Sprintf("Complexity:      %.3f\n", f.ComplexityScore))
	sb.WriteString(fmt.Sprintf("Confidence cues: %d\n", f.ConfidenceIndicators))
	sb.WriteString(fmt.Sprintf("Filler words:    %d\n", f.FillerWordsCount))
	sb.WriteString(fmt.Sprintf("Technical terms: %d", f.TechnicalTermsCount))

	p.printBox("LINGUISTIC FEATURES", sb.String())
}

// PrintScores outputs the fuzzy evaluation scores with a bar per dimension.
func (p *Printer) PrintScores(s *types.EvaluationScore) {
	if s == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Clarity:    %s %.2f\n", scoreBar(s.Clarity), s.Clarity))
	sb.WriteString(fmt.Sprintf("Confidence: %s %.2f\n", scoreBar(s.Confidence), s.Confidence))
	sb.WriteString(fmt.Sprintf("Relevance:  %s %.2f\n", scoreBar(s.Relevance), s.Relevance))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Overall:    %s %.2f (%s)", scoreBar(s.Overall), s.Overall, evaluation.InterpretScore(s.Overall)))

	p.printBox("EVALUATION SCORES", sb.String())
}

// PrintInsights outputs strengths, weaknesses and quick tips.
func (p *Printer) PrintInsights(in *evaluation.Insights) {
	if in == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Performance: %s\n", in.OverallPerformance))

	if len(in.Strengths) > 0 {
		sb.WriteString("\nStrengths:\n")
		writeItems(&sb, in.Strengths)
	}
	if len(in.Weaknesses) > 0 {
		sb.WriteString("\nWeaknesses:\n")
		writeItems(&sb, in.Weaknesses)
	}
	if len(in.QuickTips) > 0 {
		sb.WriteString("\nQuick tips:\n")
		writeItems(&sb, in.QuickTips)
	}

	p.printBox("INSIGHTS", strings.TrimSuffix(sb.String(), "\n"))
}

// scoreBar renders a 0-10 score as a ten-segment bar.
func scoreBar(score float64) string {
	filled := int(score)
	if filled < 0 {
		filled = 0
	}
	if filled > 10 {
		filled = 10
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)
}

func writeItems(sb *strings.Builder, items []string) {
	count := len(items)
	if count > maxItemsToShow {
		count = maxItemsToShow
	}
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
}
