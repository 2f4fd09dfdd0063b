package agents

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/interview-coach/internal/evaluation"
	"github.com/jonathan/interview-coach/internal/llm"
	"github.com/jonathan/interview-coach/internal/prompts"
	"github.com/jonathan/interview-coach/internal/schemas"
	"github.com/jonathan/interview-coach/internal/types"
)

// FeedbackWriter synthesizes the comprehensive end-of-interview report from
// the full transcript and its evaluations. When the LLM is unavailable or
// returns output that fails schema validation, it degrades to a deterministic
// report assembled from the per-answer insights.
type FeedbackWriter struct {
	client llm.Client
	log    *zap.Logger
}

// NewFeedbackWriter creates a feedback agent.
func NewFeedbackWriter(client llm.Client, log *zap.Logger) *FeedbackWriter {
	if log == nil {
		log = zap.NewNop()
	}
	return &FeedbackWriter{client: client, log: log}
}

// GenerateFeedback produces the end-of-interview report. The overall score is
// always the computed average of the per-answer overall scores, never the
// model's opinion.
func (a *FeedbackWriter) GenerateFeedback(ctx context.Context, ic *InterviewContext) (*types.InterviewFeedback, error) {
	overall := OverallScore(ic.Evaluations)

	fb, err := a.llmFeedback(ctx, ic, overall)
	if err != nil {
		a.log.Warn("LLM feedback failed, using deterministic fallback", zap.Error(err))
		fb = fallbackFeedback(ic)
	}

	fb.OverallScore = overall
	return fb, nil
}

// OverallScore averages the overall score across all evaluations, rounded to
// two decimals. Returns 0 for an empty interview.
func OverallScore(evaluations []types.AnswerEvaluation) float64 {
	if len(evaluations) == 0 {
		return 0
	}
	var total float64
	for _, ev := range evaluations {
		total += ev.Scores.Overall
	}
	return math.Round(total/float64(len(evaluations))*100) / 100
}

func (a *FeedbackWriter) llmFeedback(ctx context.Context, ic *InterviewContext, overall float64) (*types.InterviewFeedback, error) {
	if a.client == nil {
		return nil, fmt.Errorf("no LLM client configured")
	}

	template, err := prompts.Get("feedback.json", "feedback")
	if err != nil {
		return nil, err
	}

	prompt := prompts.Format(template, map[string]string{
		"Role":           ic.Role,
		"Seniority":      ic.Seniority,
		"TotalQuestions": fmt.Sprintf("%d", len(ic.Questions)),
		"OverallScore":   fmt.Sprintf("%.2f", overall),
		"History":        fullTranscript(ic),
	})

	raw, err := a.client.GenerateJSON(ctx, prompt, llm.TierAdvanced)
	if err != nil {
		return nil, fmt.Errorf("generating feedback: %w", err)
	}

	if err := schemas.Validate(schemas.FeedbackSchema, []byte(raw)); err != nil {
		return nil, fmt.Errorf("feedback failed schema validation: %w", err)
	}

	var fb types.InterviewFeedback
	if err := json.Unmarshal([]byte(raw), &fb); err != nil {
		return nil, fmt.Errorf("parsing feedback: %w", err)
	}

	return &fb, nil
}

// fullTranscript renders the complete interview with per-answer scores and
// feature summaries for the feedback prompt. Unlike follow-up prompts the
// answers are not truncated; the report should see everything.
func fullTranscript(ic *InterviewContext) string {
	var sb strings.Builder
	for i, q := range ic.Questions {
		if i >= len(ic.Answers) || i >= len(ic.Evaluations) {
			break
		}
		ev := ic.Evaluations[i]
		fmt.Fprintf(&sb, "\nQuestion %d (%s): %s\n\nAnswer: %s\n\nEvaluation Scores:\n", i+1, q.Category, q.QuestionText, ic.Answers[i])
		fmt.Fprintf(&sb, "- Clarity: %.2f/10\n- Confidence: %.2f/10\n- Relevance: %.2f/10\n- Overall: %.2f/10\n",
			ev.Scores.Clarity, ev.Scores.Confidence, ev.Scores.Relevance, ev.Scores.Overall)
		if len(ev.Summary) > 0 {
			fmt.Fprintf(&sb, "Linguistic Analysis: %s\n", formatSummary(ev.Summary))
		}
		sb.WriteString("---\n")
	}
	return sb.String()
}

// formatSummary renders a feature summary map in a stable key order.
func formatSummary(summary map[string]string) string {
	keys := make([]string, 0, len(summary))
	for k := range summary {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+summary[k])
	}
	return strings.Join(parts, ", ")
}

// fallbackFeedback assembles a report from the deterministic per-answer
// insights when the LLM path is unavailable.
func fallbackFeedback(ic *InterviewContext) *types.InterviewFeedback {
	var (
		strengths  []string
		weaknesses []string
		tips       []string
	)
	for i := range ic.Evaluations {
		in := evaluation.InsightsFor(&ic.Evaluations[i])
		strengths = appendUnique(strengths, in.Strengths...)
		weaknesses = appendUnique(weaknesses, in.Weaknesses...)
		tips = appendUnique(tips, in.QuickTips...)
	}

	overall := OverallScore(ic.Evaluations)
	summary := fmt.Sprintf("Completed %d questions with an overall performance of %s (%.2f/10).",
		len(ic.Evaluations), evaluation.InterpretScore(overall), overall)

	items := []types.FeedbackItem{{
		Category:    "Overall Delivery",
		Suggestions: tips,
	}}

	return &types.InterviewFeedback{
		OverallScore:        overall,
		OverallSummary:      summary,
		FeedbackItems:       items,
		Strengths:           strengths,
		AreasForImprovement: weaknesses,
	}
}

func appendUnique(dst []string, items ...string) []string {
	for _, item := range items {
		seen := false
		for _, existing := range dst {
			if existing == item {
				seen = true
				break
			}
		}
		if !seen {
			dst = append(dst, item)
		}
	}
	return dst
}
