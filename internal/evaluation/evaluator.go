// Package evaluation composes the feature extractor and the fuzzy engine
// into the answer-scoring pipeline consumed by the interview orchestrator.
package evaluation

import (
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/interview-coach/internal/analysis"
	"github.com/jonathan/interview-coach/internal/fuzzy"
	"github.com/jonathan/interview-coach/internal/types"
)

// Evaluator scores free-text answers. It is stateless across calls and safe
// for concurrent use: the extractor and engine only read process-wide
// immutable data.
type Evaluator struct {
	extractor *analysis.Extractor
	engine    *fuzzy.Engine
	log       *zap.Logger
}

// NewEvaluator wires the extractor and fuzzy engine together. A nil logger
// is replaced with a no-op logger.
func NewEvaluator(log *zap.Logger) *Evaluator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Evaluator{
		extractor: analysis.NewExtractor(log),
		engine:    fuzzy.NewEngine(),
		log:       log,
	}
}

// ExtractFeatures exposes the feature extraction step on its own.
func (e *Evaluator) ExtractFeatures(text string) (*types.LinguisticFeatures, error) {
	return e.extractor.ExtractFeatures(text)
}

// Evaluate exposes the fuzzy scoring step on its own.
func (e *Evaluator) Evaluate(features *types.LinguisticFeatures) *types.EvaluationScore {
	return e.engine.Evaluate(features)
}

// ScoreAnswer chains extraction and fuzzy evaluation for one answer.
func (e *Evaluator) ScoreAnswer(text string) (*types.EvaluationScore, error) {
	features, err := e.extractor.ExtractFeatures(text)
	if err != nil {
		return nil, err
	}
	return e.engine.Evaluate(features), nil
}

// EvaluateAnswer scores an answer against its question and packages the
// result with the underlying features and a human-readable summary.
func (e *Evaluator) EvaluateAnswer(question *types.Question, answer string) (*types.AnswerEvaluation, error) {
	features, err := e.extractor.ExtractFeatures(answer)
	if err != nil {
		return nil, err
	}
	scores := e.engine.Evaluate(features)

	questionID := 0
	if question != nil {
		questionID = question.QuestionID
	}

	return &types.AnswerEvaluation{
		QuestionID: questionID,
		AnswerText: answer,
		Scores:     *scores,
		Features:   *features,
		Summary:    SummarizeFeatures(features),
		Timestamp:  time.Now().UTC(),
	}, nil
}
