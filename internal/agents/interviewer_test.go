package agents

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/interview-coach/internal/llm"
	"github.com/jonathan/interview-coach/internal/types"
)

// fakeClient is a canned-response llm.Client for agent tests.
type fakeClient struct {
	content     string
	jsonContent string
	err         error
	lastPrompt  string
}

func (f *fakeClient) GenerateContent(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	f.lastPrompt = prompt
	return f.content, f.err
}

func (f *fakeClient) GenerateJSON(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	f.lastPrompt = prompt
	return f.jsonContent, f.err
}

func (f *fakeClient) GetModel(llm.ModelTier) string { return "fake-model" }

func (f *fakeClient) Close() error { return nil }

func testContext() *InterviewContext {
	return &InterviewContext{
		Role:           "Backend Engineer",
		Seniority:      "senior",
		FocusAreas:     []string{"distributed systems", "databases"},
		TotalQuestions: 5,
	}
}

func TestFirstQuestion(t *testing.T) {
	client := &fakeClient{content: "  Tell me about your background with Go services.  \n"}
	interviewer := NewInterviewer(client, nil)

	q, err := interviewer.FirstQuestion(context.Background(), testContext())
	require.NoError(t, err)

	assert.Equal(t, 1, q.QuestionID)
	assert.Equal(t, CategoryOpening, q.Category)
	assert.Equal(t, "Tell me about your background with Go services.", q.QuestionText)
	assert.False(t, q.Timestamp.IsZero())

	assert.Contains(t, client.lastPrompt, "Backend Engineer")
	assert.Contains(t, client.lastPrompt, "senior")
	assert.Contains(t, client.lastPrompt, "distributed systems, databases")
	assert.NotContains(t, client.lastPrompt, "{{.")
}

func TestFirstQuestionNoFocusAreas(t *testing.T) {
	client := &fakeClient{content: "Why backend engineering?"}
	interviewer := NewInterviewer(client, nil)

	ic := testContext()
	ic.FocusAreas = nil

	_, err := interviewer.FirstQuestion(context.Background(), ic)
	require.NoError(t, err)
	assert.NotContains(t, client.lastPrompt, "Specific focus areas")
}

func TestNextQuestionIncludesHistory(t *testing.T) {
	client := &fakeClient{content: "How would you shard a Postgres table?"}
	interviewer := NewInterviewer(client, nil)

	ic := testContext()
	ic.Questions = []types.Question{{QuestionID: 1, QuestionText: "Tell me about yourself.", Category: CategoryOpening}}
	ic.Answers = []string{"I have eight years of backend experience."}
	ic.Evaluations = []types.AnswerEvaluation{{
		QuestionID: 1,
		Scores:     types.EvaluationScore{Clarity: 7.5, Confidence: 6.2, Relevance: 8.1, Overall: 7.4},
	}}

	q, err := interviewer.NextQuestion(context.Background(), ic)
	require.NoError(t, err)

	assert.Equal(t, 2, q.QuestionID)
	assert.Contains(t, client.lastPrompt, "Tell me about yourself.")
	assert.Contains(t, client.lastPrompt, "eight years of backend experience")
	assert.Contains(t, client.lastPrompt, "Clarity: 7.50")
}

func TestNextQuestionTruncatesLongAnswers(t *testing.T) {
	long := ""
	for i := 0; i < 50; i++ {
		long += "the answer keeps going "
	}

	ic := testContext()
	ic.Questions = []types.Question{{QuestionID: 1, QuestionText: "Q1"}}
	ic.Answers = []string{long}

	history := transcriptExcerpt(ic)
	assert.Contains(t, history, "...")
	assert.Less(t, len(history), len(long))
}

func TestNextQuestionLLMError(t *testing.T) {
	client := &fakeClient{err: errors.New("quota exceeded")}
	interviewer := NewInterviewer(client, nil)

	ic := testContext()
	ic.Questions = []types.Question{{QuestionID: 1, QuestionText: "Q1"}}
	ic.Answers = []string{"an answer"}

	_, err := interviewer.NextQuestion(context.Background(), ic)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestCategoryFor(t *testing.T) {
	tests := []struct {
		id, total int
		want      string
	}{
		{1, 5, CategoryOpening},
		{1, 10, CategoryOpening},
		{2, 10, CategoryFoundational},
		{3, 10, CategoryFoundational},
		{4, 10, CategoryIntermediate},
		{6, 10, CategoryIntermediate},
		{7, 10, CategoryAdvanced},
		{9, 10, CategoryAdvanced},
		{10, 10, CategoryClosing},
		{5, 5, CategoryClosing},
		{2, 5, CategoryIntermediate},
		{3, 5, CategoryIntermediate},
		{4, 5, CategoryAdvanced},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CategoryFor(tt.id, tt.total), "question %d of %d", tt.id, tt.total)
	}
}
