package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jonathan/interview-coach/internal/agents"
	"github.com/jonathan/interview-coach/internal/config"
	"github.com/jonathan/interview-coach/internal/evaluation"
	"github.com/jonathan/interview-coach/internal/interview"
	"github.com/jonathan/interview-coach/internal/server/ratelimit"
	"github.com/jonathan/interview-coach/internal/types"
)

// stubInterviewer and stubFeedback replace the LLM-backed agents in tests.
type stubInterviewer struct{}

func (stubInterviewer) FirstQuestion(_ context.Context, _ *agents.InterviewContext) (*types.Question, error) {
	return &types.Question{
		QuestionID:   1,
		QuestionText: "Tell me about yourself.",
		Category:     agents.CategoryOpening,
		Timestamp:    time.Now().UTC(),
	}, nil
}

func (stubInterviewer) NextQuestion(_ context.Context, ic *agents.InterviewContext) (*types.Question, error) {
	id := len(ic.Questions) + 1
	return &types.Question{
		QuestionID:   id,
		QuestionText: fmt.Sprintf("Question %d", id),
		Category:     agents.CategoryFor(id, ic.TotalQuestions),
		Timestamp:    time.Now().UTC(),
	}, nil
}

type stubFeedback struct{}

func (stubFeedback) GenerateFeedback(_ context.Context, ic *agents.InterviewContext) (*types.InterviewFeedback, error) {
	return &types.InterviewFeedback{
		OverallScore:   agents.OverallScore(ic.Evaluations),
		OverallSummary: "Test feedback.",
	}, nil
}

func newTestServer(t *testing.T) (*Server, http.Handler) {
	t.Helper()

	evaluator := evaluation.NewEvaluator(nil)
	s := &Server{
		evaluator: evaluator,
		workflow: interview.NewWorkflow(interview.WorkflowConfig{
			Interviewer:    stubInterviewer{},
			Feedback:       stubFeedback{},
			Evaluator:      evaluator,
			TotalQuestions: 2,
		}),
		jwtService:  NewJWTService(&config.JWTConfig{Secret: "test-secret", ExpirationHours: 1}),
		rateLimiter: ratelimit.NewLimiter(&ratelimit.Config{Enabled: false}),
		log:         zap.NewNop(),
	}
	return s, s.buildHandler()
}

func doJSON(t *testing.T, handler http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func startInterview(t *testing.T, handler http.Handler) InterviewSessionResponse {
	t.Helper()

	rec := doJSON(t, handler, "POST", "/interviews", "", types.StartInterviewRequest{
		Role:      "Backend Engineer",
		Seniority: "senior",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp InterviewSessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

const testAnswer = "I designed a caching layer with an optimized database schema. " +
	"The architecture definitely improved latency because the algorithm avoids redundant queries."

func TestHealth(t *testing.T) {
	_, handler := newTestServer(t)

	rec := doJSON(t, handler, "GET", "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestStartInterview_HTTP(t *testing.T) {
	_, handler := newTestServer(t)

	resp := startInterview(t, handler)
	assert.NotEqual(t, uuid.Nil, resp.SessionID)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, interview.StatusInProgress, resp.Status)
	require.NotNil(t, resp.CurrentQuestion)
	assert.Equal(t, "Tell me about yourself.", resp.CurrentQuestion.QuestionText)
	assert.Equal(t, 2, resp.QuestionsRemaining)
}

func TestStartInterviewValidation(t *testing.T) {
	_, handler := newTestServer(t)

	rec := doJSON(t, handler, "POST", "/interviews", "", types.StartInterviewRequest{
		Role:      "Backend Engineer",
		Seniority: "principal", // not in junior/mid/senior/lead
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req := httptest.NewRequest("POST", "/interviews", strings.NewReader("{not json"))
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetInterview(t *testing.T) {
	_, handler := newTestServer(t)
	started := startInterview(t, handler)

	rec := doJSON(t, handler, "GET", "/interviews/"+started.SessionID.String(), "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp InterviewSessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, started.SessionID, resp.SessionID)
	assert.Empty(t, resp.Token, "token is only issued at start")
}

func TestGetInterviewNotFound(t *testing.T) {
	_, handler := newTestServer(t)

	rec := doJSON(t, handler, "GET", "/interviews/"+uuid.NewString(), "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, handler, "GET", "/interviews/not-a-uuid", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitAnswerFlow(t *testing.T) {
	_, handler := newTestServer(t)
	started := startInterview(t, handler)
	path := "/interviews/" + started.SessionID.String() + "/answers"

	rec := doJSON(t, handler, "POST", path, started.Token, types.SubmitAnswerRequest{Answer: testAnswer})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp AnswerResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.QuestionAnswered)
	assert.Greater(t, resp.Evaluation.Overall, 0.0)
	assert.Greater(t, resp.Features.WordCount, 0)
	require.NotNil(t, resp.NextQuestion)
	assert.Equal(t, 2, resp.NextQuestion.QuestionID)
	assert.Equal(t, 1, resp.QuestionsRemaining)

	// Final answer: no next question.
	rec = doJSON(t, handler, "POST", path, started.Token, types.SubmitAnswerRequest{Answer: testAnswer})
	require.Equal(t, http.StatusOK, rec.Code)
	resp = AnswerResponse{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Nil(t, resp.NextQuestion)
	assert.Equal(t, 0, resp.QuestionsRemaining)

	// Interview is out of questions.
	rec = doJSON(t, handler, "POST", path, started.Token, types.SubmitAnswerRequest{Answer: testAnswer})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitAnswerAuth(t *testing.T) {
	_, handler := newTestServer(t)
	started := startInterview(t, handler)
	path := "/interviews/" + started.SessionID.String() + "/answers"

	// No token.
	rec := doJSON(t, handler, "POST", path, "", types.SubmitAnswerRequest{Answer: testAnswer})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Garbage token.
	rec = doJSON(t, handler, "POST", path, "garbage", types.SubmitAnswerRequest{Answer: testAnswer})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Valid token for a different session.
	other := startInterview(t, handler)
	rec = doJSON(t, handler, "POST", path, other.Token, types.SubmitAnswerRequest{Answer: testAnswer})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestSubmitAnswerTooShort(t *testing.T) {
	_, handler := newTestServer(t)
	started := startInterview(t, handler)
	path := "/interviews/" + started.SessionID.String() + "/answers"

	rec := doJSON(t, handler, "POST", path, started.Token, types.SubmitAnswerRequest{Answer: "short"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFeedbackEndpoint(t *testing.T) {
	_, handler := newTestServer(t)
	started := startInterview(t, handler)
	answers := "/interviews/" + started.SessionID.String() + "/answers"

	rec := doJSON(t, handler, "POST", answers, started.Token, types.SubmitAnswerRequest{Answer: testAnswer})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, handler, "GET", "/interviews/"+started.SessionID.String()+"/feedback", started.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp FeedbackResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Feedback)
	assert.Equal(t, "Test feedback.", resp.Feedback.OverallSummary)
	assert.Len(t, resp.AllEvaluations, 1)
	require.NotNil(t, resp.InterviewDurationMinutes)

	// The session is now completed.
	rec = doJSON(t, handler, "GET", "/interviews/"+started.SessionID.String(), "", nil)
	var view InterviewSessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, interview.StatusCompleted, view.Status)
}

func TestFeedbackStream(t *testing.T) {
	_, handler := newTestServer(t)
	started := startInterview(t, handler)

	rec := doJSON(t, handler, "POST", "/interviews/"+started.SessionID.String()+"/feedback/stream", started.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	assert.Contains(t, body, "event: status")
	assert.Contains(t, body, "event: feedback")
	assert.Contains(t, body, "event: complete")
	assert.Contains(t, body, started.SessionID.String())
}

func TestListInterviews(t *testing.T) {
	_, handler := newTestServer(t)
	startInterview(t, handler)
	startInterview(t, handler)

	rec := doJSON(t, handler, "GET", "/interviews", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var summaries []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summaries))
	assert.Len(t, summaries, 2)
	assert.Equal(t, "Backend Engineer", summaries[0]["role"])
}

func TestEvaluateEndpoint(t *testing.T) {
	_, handler := newTestServer(t)

	rec := doJSON(t, handler, "POST", "/evaluate", "", types.EvaluateRequest{Answer: testAnswer})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp EvaluateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.GreaterOrEqual(t, resp.Scores.Overall, 0.0)
	assert.LessOrEqual(t, resp.Scores.Overall, 10.0)
	assert.Greater(t, resp.Features.WordCount, 0)
	require.NotNil(t, resp.Insights)
	assert.NotEmpty(t, resp.Insights.OverallPerformance)
}

func TestEvaluateValidation(t *testing.T) {
	_, handler := newTestServer(t)

	rec := doJSON(t, handler, "POST", "/evaluate", "", types.EvaluateRequest{Answer: "hi"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCORSPreflight(t *testing.T) {
	_, handler := newTestServer(t)

	req := httptest.NewRequest("OPTIONS", "/interviews", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimitExceeded(t *testing.T) {
	s, _ := newTestServer(t)
	s.rateLimiter.Stop()
	s.rateLimiter = ratelimit.NewLimiter(&ratelimit.Config{
		Enabled:       true,
		DefaultLimit:  100,
		DefaultWindow: time.Minute,
		EndpointConfigs: []ratelimit.EndpointConfig{
			{Path: "/evaluate", Method: "POST", Limit: 10, Window: time.Hour, Burst: 1},
		},
	})
	defer s.rateLimiter.Stop()
	handler := s.buildHandler()

	rec := doJSON(t, handler, "POST", "/evaluate", "", types.EvaluateRequest{Answer: testAnswer})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "10", rec.Header().Get("X-RateLimit-Limit"))

	rec = doJSON(t, handler, "POST", "/evaluate", "", types.EvaluateRequest{Answer: testAnswer})
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "rate_limit_exceeded")
}
