package server

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/interview-coach/internal/evaluation"
	"github.com/jonathan/interview-coach/internal/interview"
	"github.com/jonathan/interview-coach/internal/server/middleware"
	"github.com/jonathan/interview-coach/internal/types"
)

// InterviewSessionResponse is returned when starting or fetching an interview.
type InterviewSessionResponse struct {
	SessionID          uuid.UUID       `json:"session_id"`
	Token              string          `json:"token,omitempty"`
	Role               string          `json:"role"`
	Seniority          string          `json:"seniority"`
	CurrentQuestion    *types.Question `json:"current_question,omitempty"`
	TotalQuestions     int             `json:"total_questions"`
	QuestionsRemaining int             `json:"questions_remaining"`
	Status             string          `json:"status"`
	CreatedAt          time.Time       `json:"created_at"`
}

// AnswerResponse is returned after submitting an answer.
type AnswerResponse struct {
	SessionID          uuid.UUID                `json:"session_id"`
	QuestionAnswered   int                      `json:"question_answered"`
	Evaluation         types.EvaluationScore    `json:"evaluation"`
	Features           types.LinguisticFeatures `json:"features"`
	NextQuestion       *types.Question          `json:"next_question,omitempty"`
	Status             string                   `json:"status"`
	TotalQuestions     int                      `json:"total_questions"`
	QuestionsRemaining int                      `json:"questions_remaining"`
}

// FeedbackResponse is the end-of-interview report payload.
type FeedbackResponse struct {
	SessionID                uuid.UUID                `json:"session_id"`
	Feedback                 *types.InterviewFeedback `json:"feedback"`
	AllEvaluations           []types.AnswerEvaluation `json:"all_evaluations"`
	InterviewDurationMinutes *float64                 `json:"interview_duration_minutes,omitempty"`
}

// EvaluateResponse is the stateless scoring payload.
type EvaluateResponse struct {
	Scores   types.EvaluationScore    `json:"scores"`
	Features types.LinguisticFeatures `json:"features"`
	Insights *evaluation.Insights     `json:"insights"`
}

func sessionResponse(s *interview.Session, token string) *InterviewSessionResponse {
	return &InterviewSessionResponse{
		SessionID:          s.ID,
		Token:              token,
		Role:               s.Role,
		Seniority:          s.Seniority,
		CurrentQuestion:    s.CurrentQuestion(),
		TotalQuestions:     s.TotalQuestions,
		QuestionsRemaining: s.QuestionsRemaining(),
		Status:             s.Status,
		CreatedAt:          s.CreatedAt,
	}
}

// handleStartInterview creates a session, generates the first question and
// issues the session token used by the answer and feedback endpoints.
func (s *Server) handleStartInterview(w http.ResponseWriter, r *http.Request) {
	var req types.StartInterviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	sess, err := s.workflow.StartInterview(r.Context(), &req)
	if err != nil {
		s.handleError(w, err)
		return
	}

	token, err := s.jwtService.GenerateToken(sess.ID)
	if err != nil {
		s.handleError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusCreated, sessionResponse(sess, token))
}

// handleListInterviews returns summaries of all stored sessions.
func (s *Server) handleListInterviews(w http.ResponseWriter, r *http.Request) {
	sessions, err := s.workflow.Store().List(r.Context())
	if err != nil {
		s.handleError(w, err)
		return
	}

	summaries := make([]map[string]any, 0, len(sessions))
	for _, sess := range sessions {
		summary := map[string]any{
			"session_id":         sess.ID,
			"role":               sess.Role,
			"seniority":          sess.Seniority,
			"status":             sess.Status,
			"questions_answered": len(sess.Answers),
			"total_questions":    sess.TotalQuestions,
			"created_at":         sess.CreatedAt,
		}
		if sess.Feedback != nil {
			summary["overall_score"] = sess.Feedback.OverallScore
		}
		summaries = append(summaries, summary)
	}

	s.jsonResponse(w, http.StatusOK, summaries)
}

// handleGetInterview returns the public view of one session.
func (s *Server) handleGetInterview(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid session ID")
		return
	}

	sess, err := s.workflow.GetSession(r.Context(), id)
	if err != nil {
		s.handleError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, sessionResponse(sess, ""))
}

// authorizedSession parses the {id} path parameter and verifies the request's
// session token is scoped to that session.
func (s *Server) authorizedSession(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, &ErrValidation{Field: "id", Message: "invalid session ID"}
	}

	tokenSession, err := middleware.GetSessionID(r)
	if err != nil {
		return uuid.Nil, fmt.Errorf("missing session context: %w", err)
	}
	if tokenSession != id {
		return uuid.Nil, &ErrSessionForbidden{}
	}
	return id, nil
}

// handleSubmitAnswer records and evaluates an answer, returning the scores
// and the next question until the interview is done.
func (s *Server) handleSubmitAnswer(w http.ResponseWriter, r *http.Request) {
	id, err := s.authorizedSession(r)
	if err != nil {
		s.handleError(w, err)
		return
	}

	var req types.SubmitAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	sess, ev, err := s.workflow.SubmitAnswer(r.Context(), id, req.Answer)
	if err != nil {
		s.handleError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, &AnswerResponse{
		SessionID:          sess.ID,
		QuestionAnswered:   ev.QuestionID,
		Evaluation:         ev.Scores,
		Features:           ev.Features,
		NextQuestion:       sess.CurrentQuestion(),
		Status:             sess.Status,
		TotalQuestions:     sess.TotalQuestions,
		QuestionsRemaining: sess.QuestionsRemaining(),
	})
}

// handleFeedback generates (or returns the cached) end-of-interview report.
func (s *Server) handleFeedback(w http.ResponseWriter, r *http.Request) {
	id, err := s.authorizedSession(r)
	if err != nil {
		s.handleError(w, err)
		return
	}

	sess, err := s.workflow.Feedback(r.Context(), id)
	if err != nil {
		s.handleError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, feedbackResponse(sess))
}

// handleFeedbackStream generates the report while streaming progress events,
// then sends the report itself as a final event.
func (s *Server) handleFeedbackStream(w http.ResponseWriter, r *http.Request) {
	id, err := s.authorizedSession(r)
	if err != nil {
		s.handleError(w, err)
		return
	}

	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	sse.WriteStatus("generating_feedback")

	sess, err := s.workflow.Feedback(r.Context(), id)
	if err != nil {
		sse.WriteError(err.Error())
		return
	}

	if err := sse.WriteEvent("feedback", feedbackResponse(sess)); err != nil {
		s.log.Error("failed to stream feedback", zap.Error(err))
		return
	}
	sse.WriteComplete(sess.ID.String(), sess.Status)
}

func feedbackResponse(sess *interview.Session) *FeedbackResponse {
	resp := &FeedbackResponse{
		SessionID:      sess.ID,
		Feedback:       sess.Feedback,
		AllEvaluations: sess.Evaluations,
	}
	if d, ok := sess.Duration(); ok {
		minutes := math.Round(d.Minutes()*100) / 100
		resp.InterviewDurationMinutes = &minutes
	}
	return resp
}

// handleEvaluate scores a single answer without any session state. This is
// the pure extraction + fuzzy inference pipeline.
func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req types.EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	ev, err := s.evaluator.EvaluateAnswer(nil, req.Answer)
	if err != nil {
		s.handleError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, &EvaluateResponse{
		Scores:   ev.Scores,
		Features: ev.Features,
		Insights: evaluation.InsightsFor(ev),
	})
}
