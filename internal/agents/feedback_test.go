package agents

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/interview-coach/internal/types"
)

func feedbackContext() *InterviewContext {
	return &InterviewContext{
		Role:           "Backend Engineer",
		Seniority:      "mid",
		TotalQuestions: 2,
		Questions: []types.Question{
			{QuestionID: 1, QuestionText: "Tell me about yourself.", Category: CategoryOpening},
			{QuestionID: 2, QuestionText: "Explain database indexing.", Category: CategoryClosing},
		},
		Answers: []string{
			"I build distributed backend systems.",
			"An index is a sorted structure that speeds up lookups.",
		},
		Evaluations: []types.AnswerEvaluation{
			{QuestionID: 1, Scores: types.EvaluationScore{Clarity: 8, Confidence: 7, Relevance: 7, Overall: 7.3}, Summary: map[string]string{"length": "brief"}},
			{QuestionID: 2, Scores: types.EvaluationScore{Clarity: 6, Confidence: 5, Relevance: 8, Overall: 6.5}},
		},
	}
}

const llmFeedbackJSON = `{
  "overall_summary": "A capable candidate with room to grow.",
  "strengths": ["clear structure"],
  "areas_for_improvement": ["more depth"],
  "feedback_items": [{"category": "Technical Knowledge", "strength": "Good fundamentals"}],
  "recommended_resources": ["Designing Data-Intensive Applications"]
}`

func TestGenerateFeedbackFromLLM(t *testing.T) {
	client := &fakeClient{jsonContent: llmFeedbackJSON}
	writer := NewFeedbackWriter(client, nil)

	fb, err := writer.GenerateFeedback(context.Background(), feedbackContext())
	require.NoError(t, err)

	assert.Equal(t, "A capable candidate with room to grow.", fb.OverallSummary)
	assert.Equal(t, []string{"clear structure"}, fb.Strengths)
	require.Len(t, fb.FeedbackItems, 1)
	assert.Equal(t, "Technical Knowledge", fb.FeedbackItems[0].Category)

	// The overall score is computed, never taken from the model.
	assert.InDelta(t, 6.9, fb.OverallScore, 1e-9)

	assert.Contains(t, client.lastPrompt, "Explain database indexing.")
	assert.Contains(t, client.lastPrompt, "Overall Score: 6.90/10")
	assert.Contains(t, client.lastPrompt, "length: brief")
}

func TestGenerateFeedbackFallbackOnLLMError(t *testing.T) {
	client := &fakeClient{err: errors.New("model unavailable")}
	writer := NewFeedbackWriter(client, nil)

	fb, err := writer.GenerateFeedback(context.Background(), feedbackContext())
	require.NoError(t, err)

	assert.InDelta(t, 6.9, fb.OverallScore, 1e-9)
	assert.NotEmpty(t, fb.OverallSummary)
	assert.NotEmpty(t, fb.FeedbackItems)
}

func TestGenerateFeedbackFallbackOnInvalidJSON(t *testing.T) {
	client := &fakeClient{jsonContent: `{"strengths": "wrong shape"}`}
	writer := NewFeedbackWriter(client, nil)

	fb, err := writer.GenerateFeedback(context.Background(), feedbackContext())
	require.NoError(t, err)

	// Schema validation rejected the model output, so the deterministic
	// fallback is used.
	assert.Contains(t, fb.OverallSummary, "Completed 2 questions")
}

func TestGenerateFeedbackNilClient(t *testing.T) {
	writer := NewFeedbackWriter(nil, nil)

	fb, err := writer.GenerateFeedback(context.Background(), feedbackContext())
	require.NoError(t, err)
	assert.NotEmpty(t, fb.OverallSummary)
}

func TestOverallScore(t *testing.T) {
	assert.Equal(t, 0.0, OverallScore(nil))

	evals := []types.AnswerEvaluation{
		{Scores: types.EvaluationScore{Overall: 7.33}},
		{Scores: types.EvaluationScore{Overall: 6.5}},
	}
	assert.InDelta(t, 6.92, OverallScore(evals), 1e-9)
}

func TestFallbackFeedbackAggregatesInsights(t *testing.T) {
	ic := feedbackContext()
	// Weak clarity on both answers should surface once, deduplicated.
	ic.Evaluations[0].Scores.Clarity = 2
	ic.Evaluations[1].Scores.Clarity = 3

	fb := fallbackFeedback(ic)
	count := 0
	for _, w := range fb.AreasForImprovement {
		if w == "Response lacks clarity and structure" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}
