package types

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Question is a single interview question.
type Question struct {
	QuestionID   int       `json:"question_id"`
	QuestionText string    `json:"question_text"`
	Category     string    `json:"category,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

// AnswerEvaluation captures the evaluation of one answer: the fuzzy scores
// plus the linguistic features they were derived from, for explainability.
type AnswerEvaluation struct {
	QuestionID int                 `json:"question_id"`
	AnswerText string              `json:"answer_text"`
	Scores     EvaluationScore     `json:"scores"`
	Features   LinguisticFeatures  `json:"features"`
	Summary    map[string]string   `json:"summary,omitempty"`
	Timestamp  time.Time           `json:"timestamp"`
}

// FeedbackItem is one category of end-of-interview feedback.
type FeedbackItem struct {
	Category    string   `json:"category"`
	Strength    string   `json:"strength,omitempty"`
	Weakness    string   `json:"weakness,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// InterviewFeedback is the comprehensive end-of-interview report.
type InterviewFeedback struct {
	OverallScore         float64        `json:"overall_score"`
	OverallSummary       string         `json:"overall_summary"`
	FeedbackItems        []FeedbackItem `json:"feedback_items,omitempty"`
	RecommendedResources []string       `json:"recommended_resources,omitempty"`
	Strengths            []string       `json:"strengths,omitempty"`
	AreasForImprovement  []string       `json:"areas_for_improvement,omitempty"`
}

// StartInterviewRequest is the request to open a new interview session.
type StartInterviewRequest struct {
	Role       string   `json:"role" validate:"required,min=2"`
	Seniority  string   `json:"seniority" validate:"required,oneof=junior mid senior lead"`
	FocusAreas []string `json:"focus_areas,omitempty"`
}

// SubmitAnswerRequest is the request to answer the current question.
// The minimum answer length is enforced here, before the extractor runs.
type SubmitAnswerRequest struct {
	Answer string `json:"answer" validate:"required,min=10"`
}

// EvaluateRequest is the stateless scoring request: one answer in, one
// EvaluationScore out, no session involved.
type EvaluateRequest struct {
	Answer string `json:"answer" validate:"required,min=10"`
}

// Validate validates the StartInterviewRequest using the validator.
func (r *StartInterviewRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the SubmitAnswerRequest using the validator.
func (r *SubmitAnswerRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the EvaluateRequest using the validator.
func (r *EvaluateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
