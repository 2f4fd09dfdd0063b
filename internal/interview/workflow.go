package interview

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/interview-coach/internal/agents"
	"github.com/jonathan/interview-coach/internal/evaluation"
	"github.com/jonathan/interview-coach/internal/types"
)

// DefaultTotalQuestions is the interview length when none is configured.
const DefaultTotalQuestions = 10

// QuestionGenerator produces interview questions from session context.
// Implemented by agents.Interviewer.
type QuestionGenerator interface {
	FirstQuestion(ctx context.Context, ic *agents.InterviewContext) (*types.Question, error)
	NextQuestion(ctx context.Context, ic *agents.InterviewContext) (*types.Question, error)
}

// FeedbackGenerator produces the end-of-interview report.
// Implemented by agents.FeedbackWriter.
type FeedbackGenerator interface {
	GenerateFeedback(ctx context.Context, ic *agents.InterviewContext) (*types.InterviewFeedback, error)
}

// Workflow advances interview sessions through their lifecycle: start,
// answer/evaluate cycles, and final feedback. All state transitions go
// through the store so sessions survive whatever backend it uses.
type Workflow struct {
	interviewer    QuestionGenerator
	feedback       FeedbackGenerator
	evaluator      *evaluation.Evaluator
	store          Store
	totalQuestions int
	log            *zap.Logger
}

// WorkflowConfig bundles the workflow collaborators.
type WorkflowConfig struct {
	Interviewer QuestionGenerator
	Feedback    FeedbackGenerator
	Evaluator   *evaluation.Evaluator
	Store       Store
	// TotalQuestions is the interview length; DefaultTotalQuestions when zero.
	TotalQuestions int
	Logger         *zap.Logger
}

// NewWorkflow creates a workflow. A nil Store falls back to the in-memory
// store and a nil Logger to a no-op logger.
func NewWorkflow(cfg WorkflowConfig) *Workflow {
	if cfg.Store == nil {
		cfg.Store = NewMemoryStore()
	}
	if cfg.TotalQuestions <= 0 {
		cfg.TotalQuestions = DefaultTotalQuestions
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Workflow{
		interviewer:    cfg.Interviewer,
		feedback:       cfg.Feedback,
		evaluator:      cfg.Evaluator,
		store:          cfg.Store,
		totalQuestions: cfg.TotalQuestions,
		log:            cfg.Logger,
	}
}

// Store exposes the session store, for handlers serving read-only views.
func (w *Workflow) Store() Store { return w.store }

// StartInterview opens a new session and generates its first question.
func (w *Workflow) StartInterview(ctx context.Context, req *types.StartInterviewRequest) (*Session, error) {
	s := NewSession(req.Role, req.Seniority, req.FocusAreas, w.totalQuestions)

	q, err := w.interviewer.FirstQuestion(ctx, s.Context())
	if err != nil {
		return nil, fmt.Errorf("starting interview: %w", err)
	}
	s.Questions = append(s.Questions, *q)

	if err := w.store.Save(ctx, s); err != nil {
		return nil, fmt.Errorf("saving session: %w", err)
	}

	w.log.Info("interview started",
		zap.String("session_id", s.ID.String()),
		zap.String("role", s.Role),
		zap.String("seniority", s.Seniority),
		zap.Int("total_questions", s.TotalQuestions))

	return s, nil
}

// GetSession loads a session by ID.
func (w *Workflow) GetSession(ctx context.Context, id uuid.UUID) (*Session, error) {
	return w.store.Get(ctx, id)
}

// SubmitAnswer records an answer to the current question, evaluates it, and
// generates the next question unless the interview just finished. Returns the
// updated session and the evaluation of the submitted answer.
func (w *Workflow) SubmitAnswer(ctx context.Context, id uuid.UUID, answer string) (*Session, *types.AnswerEvaluation, error) {
	s, err := w.store.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if s.Status == StatusCompleted || len(s.Answers) >= s.TotalQuestions {
		return nil, nil, ErrSessionCompleted
	}

	current := s.CurrentQuestion()
	if current == nil {
		return nil, nil, ErrSessionCompleted
	}

	ev, err := w.evaluator.EvaluateAnswer(current, answer)
	if err != nil {
		return nil, nil, fmt.Errorf("evaluating answer: %w", err)
	}

	s.Answers = append(s.Answers, answer)
	s.Evaluations = append(s.Evaluations, *ev)

	if len(s.Answers) < s.TotalQuestions {
		next, err := w.interviewer.NextQuestion(ctx, s.Context())
		if err != nil {
			return nil, nil, fmt.Errorf("generating next question: %w", err)
		}
		s.Questions = append(s.Questions, *next)
	}

	if err := w.store.Save(ctx, s); err != nil {
		return nil, nil, fmt.Errorf("saving session: %w", err)
	}

	w.log.Info("answer evaluated",
		zap.String("session_id", s.ID.String()),
		zap.Int("question_id", ev.QuestionID),
		zap.Float64("overall", ev.Scores.Overall),
		zap.Int("remaining", s.QuestionsRemaining()))

	return s, ev, nil
}

// Feedback generates (or returns the cached) end-of-interview report and
// marks the session completed. It may be requested before all questions are
// answered; the report then covers the answers given so far.
func (w *Workflow) Feedback(ctx context.Context, id uuid.UUID) (*Session, error) {
	s, err := w.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.Feedback != nil {
		return s, nil
	}

	fb, err := w.feedback.GenerateFeedback(ctx, s.Context())
	if err != nil {
		return nil, fmt.Errorf("generating feedback: %w", err)
	}

	s.Feedback = fb
	s.Status = StatusCompleted

	if err := w.store.Save(ctx, s); err != nil {
		return nil, fmt.Errorf("saving session: %w", err)
	}

	w.log.Info("feedback generated",
		zap.String("session_id", s.ID.String()),
		zap.Float64("overall_score", fb.OverallScore))

	return s, nil
}
