package fuzzy

import (
	"math"

	"github.com/jonathan/interview-coach/internal/types"
)

// Weights for combining the three scores into the overall score.
const (
	clarityWeight    = 0.3
	confidenceWeight = 0.3
	relevanceWeight  = 0.4
)

// Engine bundles the three independent inference systems. It is immutable
// after construction and safe for concurrent use.
type Engine struct {
	clarity    *System
	confidence *System
	relevance  *System
}

// NewEngine builds the rule bases and membership partitions once. The
// returned engine is read-only for the process lifetime.
func NewEngine() *Engine {
	return &Engine{
		clarity: newSystem(
			newOutputVariable("clarity_score"),
			clarityRules(),
			newInputVariable(VarCoherence),
			newInputVariable(VarFillerRatio),
		),
		confidence: newSystem(
			newOutputVariable("confidence_score"),
			confidenceRules(),
			newInputVariable(VarConfidenceLevel),
			newInputVariable(VarWordCount),
		),
		relevance: newSystem(
			newOutputVariable("relevance_score"),
			relevanceRules(),
			newInputVariable(VarTechnicalDepth),
			newInputVariable(VarComplexity),
		),
	}
}

// Evaluate normalizes the features, runs the three inference systems and
// combines their crisp outputs. It is a pure function of its input: identical
// features yield bit-identical scores.
func (e *Engine) Evaluate(f *types.LinguisticFeatures) *types.EvaluationScore {
	n := Normalize(f)

	clarity := round2(clamp(e.clarity.Infer(map[string]float64{
		VarCoherence:   n.Coherence,
		VarFillerRatio: n.FillerRatio,
	}), universeMin, universeMax))

	confidence := round2(clamp(e.confidence.Infer(map[string]float64{
		VarConfidenceLevel: n.ConfidenceLevel,
		VarWordCount:       n.WordCount,
	}), universeMin, universeMax))

	relevance := round2(clamp(e.relevance.Infer(map[string]float64{
		VarTechnicalDepth: n.TechnicalDepth,
		VarComplexity:     n.Complexity,
	}), universeMin, universeMax))

	// Overall is computed from the rounded components so the published
	// weighted-sum identity holds exactly on the output values.
	overall := round2(clamp(
		clarity*clarityWeight+confidence*confidenceWeight+relevance*relevanceWeight,
		universeMin, universeMax))

	return &types.EvaluationScore{
		Clarity:    clarity,
		Confidence: confidence,
		Relevance:  relevance,
		Overall:    overall,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
