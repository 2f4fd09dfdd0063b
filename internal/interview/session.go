// Package interview orchestrates mock interview sessions: question
// generation, answer evaluation and final feedback, backed by a pluggable
// session store.
package interview

import (
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/interview-coach/internal/agents"
	"github.com/jonathan/interview-coach/internal/types"
)

// Session status values.
const (
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// Session is the full state of one mock interview. It serializes to JSON as
// a whole, which is also how the PostgreSQL store persists it.
type Session struct {
	ID             uuid.UUID                `json:"session_id"`
	Role           string                   `json:"role"`
	Seniority      string                   `json:"seniority"`
	FocusAreas     []string                 `json:"focus_areas,omitempty"`
	TotalQuestions int                      `json:"total_questions"`
	Status         string                   `json:"status"`
	CreatedAt      time.Time                `json:"created_at"`
	Questions      []types.Question         `json:"questions"`
	Answers        []string                 `json:"answers"`
	Evaluations    []types.AnswerEvaluation `json:"evaluations"`
	Feedback       *types.InterviewFeedback `json:"final_feedback,omitempty"`
}

// NewSession creates a fresh in-progress session.
func NewSession(role, seniority string, focusAreas []string, totalQuestions int) *Session {
	return &Session{
		ID:             uuid.New(),
		Role:           role,
		Seniority:      seniority,
		FocusAreas:     focusAreas,
		TotalQuestions: totalQuestions,
		Status:         StatusInProgress,
		CreatedAt:      time.Now().UTC(),
		Questions:      []types.Question{},
		Answers:        []string{},
		Evaluations:    []types.AnswerEvaluation{},
	}
}

// CurrentQuestion returns the open question awaiting an answer, or nil when
// every generated question has been answered.
func (s *Session) CurrentQuestion() *types.Question {
	if len(s.Questions) > len(s.Answers) {
		return &s.Questions[len(s.Questions)-1]
	}
	return nil
}

// QuestionsRemaining counts how many answers the candidate still owes.
func (s *Session) QuestionsRemaining() int {
	remaining := s.TotalQuestions - len(s.Answers)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Duration reports the span from the first question to the latest evaluation.
// The second return is false when the interview has no evaluations yet.
func (s *Session) Duration() (time.Duration, bool) {
	if len(s.Questions) == 0 || len(s.Evaluations) == 0 {
		return 0, false
	}
	return s.Evaluations[len(s.Evaluations)-1].Timestamp.Sub(s.Questions[0].Timestamp), true
}

// Context builds the agent view of this session for prompt construction.
func (s *Session) Context() *agents.InterviewContext {
	return &agents.InterviewContext{
		Role:           s.Role,
		Seniority:      s.Seniority,
		FocusAreas:     s.FocusAreas,
		TotalQuestions: s.TotalQuestions,
		Questions:      s.Questions,
		Answers:        s.Answers,
		Evaluations:    s.Evaluations,
	}
}

// Clone returns a deep-enough copy for safe hand-off across goroutines: the
// slices are copied, the evaluations and feedback values are not shared.
func (s *Session) Clone() *Session {
	c := *s
	c.FocusAreas = append([]string(nil), s.FocusAreas...)
	c.Questions = append([]types.Question(nil), s.Questions...)
	c.Answers = append([]string(nil), s.Answers...)
	c.Evaluations = append([]types.AnswerEvaluation(nil), s.Evaluations...)
	if s.Feedback != nil {
		fb := *s.Feedback
		c.Feedback = &fb
	}
	return &c
}
