// Package agents implements the LLM-backed interview agents: the interviewer
// that generates contextual questions and the feedback writer that synthesizes
// the end-of-interview report. Answer scoring is deterministic and lives in
// the evaluation package; agents only handle generative tasks.
package agents

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/interview-coach/internal/llm"
	"github.com/jonathan/interview-coach/internal/prompts"
	"github.com/jonathan/interview-coach/internal/types"
)

// InterviewContext is the slice of session state the agents need to build
// prompts: configuration plus the transcript so far.
type InterviewContext struct {
	Role           string
	Seniority      string
	FocusAreas     []string
	TotalQuestions int
	Questions      []types.Question
	Answers        []string
	Evaluations    []types.AnswerEvaluation
}

// answerExcerptLen bounds how much of each answer is replayed into follow-up
// prompts, to keep prompt size flat as the interview grows.
const answerExcerptLen = 200

// Interviewer generates interview questions via the LLM.
type Interviewer struct {
	client llm.Client
	log    *zap.Logger
}

// NewInterviewer creates an interviewer agent.
func NewInterviewer(client llm.Client, log *zap.Logger) *Interviewer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Interviewer{client: client, log: log}
}

// FirstQuestion generates the opening question for a new interview.
func (a *Interviewer) FirstQuestion(ctx context.Context, ic *InterviewContext) (*types.Question, error) {
	if a.client == nil {
		return nil, fmt.Errorf("no LLM client configured")
	}
	template, err := prompts.Get("interview.json", "first_question")
	if err != nil {
		return nil, err
	}

	prompt := prompts.Format(template, map[string]string{
		"Role":           ic.Role,
		"Seniority":      ic.Seniority,
		"FocusAreas":     focusAreasLine(ic.FocusAreas),
		"TotalQuestions": fmt.Sprintf("%d", ic.TotalQuestions),
	})

	text, err := a.client.GenerateContent(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, fmt.Errorf("generating first question: %w", err)
	}

	a.log.Debug("generated first question",
		zap.String("role", ic.Role),
		zap.String("seniority", ic.Seniority))

	return &types.Question{
		QuestionID:   1,
		QuestionText: strings.TrimSpace(text),
		Category:     CategoryOpening,
		Timestamp:    time.Now().UTC(),
	}, nil
}

// NextQuestion generates a follow-up question based on the transcript so far.
func (a *Interviewer) NextQuestion(ctx context.Context, ic *InterviewContext) (*types.Question, error) {
	if a.client == nil {
		return nil, fmt.Errorf("no LLM client configured")
	}
	template, err := prompts.Get("interview.json", "followup_question")
	if err != nil {
		return nil, err
	}

	questionID := len(ic.Questions) + 1
	category := CategoryFor(questionID, ic.TotalQuestions)

	prompt := prompts.Format(template, map[string]string{
		"Role":           ic.Role,
		"Seniority":      ic.Seniority,
		"FocusAreas":     focusAreasLine(ic.FocusAreas),
		"TotalQuestions": fmt.Sprintf("%d", ic.TotalQuestions),
		"QuestionID":     fmt.Sprintf("%d", questionID),
		"Category":       category,
		"History":        transcriptExcerpt(ic),
	})

	text, err := a.client.GenerateContent(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, fmt.Errorf("generating question %d: %w", questionID, err)
	}

	a.log.Debug("generated follow-up question",
		zap.Int("question_id", questionID),
		zap.String("category", category))

	return &types.Question{
		QuestionID:   questionID,
		QuestionText: strings.TrimSpace(text),
		Category:     category,
		Timestamp:    time.Now().UTC(),
	}, nil
}

// Question categories by interview phase.
const (
	CategoryOpening      = "opening"
	CategoryFoundational = "foundational"
	CategoryIntermediate = "intermediate"
	CategoryAdvanced     = "advanced"
	CategoryClosing      = "closing"
)

// CategoryFor maps a question's position in the interview to its category.
// The interview ramps from foundational through advanced and closes with a
// wrap-up question in the final tenth.
func CategoryFor(questionID, totalQuestions int) string {
	if questionID == 1 {
		return CategoryOpening
	}
	progress := float64(questionID) / float64(totalQuestions)
	switch {
	case progress <= 0.3:
		return CategoryFoundational
	case progress <= 0.6:
		return CategoryIntermediate
	case progress <= 0.9:
		return CategoryAdvanced
	default:
		return CategoryClosing
	}
}

// focusAreasLine renders the optional focus areas as a prompt line, or an
// empty string when none were requested.
func focusAreasLine(areas []string) string {
	if len(areas) == 0 {
		return ""
	}
	return "\nSpecific focus areas: " + strings.Join(areas, ", ")
}

// transcriptExcerpt builds the compact Q&A history used in follow-up prompts.
// Answers are truncated and each entry carries the fuzzy scores so the model
// can calibrate difficulty.
func transcriptExcerpt(ic *InterviewContext) string {
	var sb strings.Builder
	for i, q := range ic.Questions {
		if i >= len(ic.Answers) {
			break
		}
		answer := excerpt(ic.Answers[i], answerExcerptLen)

		scores := ""
		if i < len(ic.Evaluations) {
			s := ic.Evaluations[i].Scores
			scores = fmt.Sprintf(" [Scores - Clarity: %.2f, Confidence: %.2f, Relevance: %.2f]",
				s.Clarity, s.Confidence, s.Relevance)
		}

		fmt.Fprintf(&sb, "\nQ%d: %s\nA%d: %s%s\n", i+1, q.QuestionText, i+1, answer, scores)
	}
	return sb.String()
}

func excerpt(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
