package evaluation

import "github.com/jonathan/interview-coach/internal/types"

// Insights is the score interpretation attached to an evaluation: what went
// well, what did not, and concrete practice tips.
type Insights struct {
	OverallPerformance string   `json:"overall_performance"`
	Strengths          []string `json:"strengths"`
	Weaknesses         []string `json:"weaknesses"`
	QuickTips          []string `json:"quick_tips"`
}

// Score thresholds for insight generation.
const (
	strongScore = 7.0
	weakScore   = 4.0
)

// InsightsFor interprets a single answer evaluation into strengths,
// weaknesses and quick tips.
func InsightsFor(ev *types.AnswerEvaluation) *Insights {
	in := &Insights{
		OverallPerformance: InterpretScore(ev.Scores.Overall),
		Strengths:          []string{},
		Weaknesses:         []string{},
		QuickTips:          []string{},
	}

	if ev.Scores.Clarity >= strongScore {
		in.Strengths = append(in.Strengths, "Clear and well-structured response")
	} else if ev.Scores.Clarity <= weakScore {
		in.Weaknesses = append(in.Weaknesses, "Response lacks clarity and structure")
		in.QuickTips = append(in.QuickTips, "Organize your thoughts before answering")
	}

	if ev.Scores.Confidence >= strongScore {
		in.Strengths = append(in.Strengths, "Confident delivery")
	} else if ev.Scores.Confidence <= weakScore {
		in.Weaknesses = append(in.Weaknesses, "Response lacks confidence indicators")
		in.QuickTips = append(in.QuickTips, "Use more assertive language and provide concrete examples")
	}

	if ev.Scores.Relevance >= strongScore {
		in.Strengths = append(in.Strengths, "Highly relevant and technical response")
	} else if ev.Scores.Relevance <= weakScore {
		in.Weaknesses = append(in.Weaknesses, "Response could be more technical and relevant")
		in.QuickTips = append(in.QuickTips, "Include more technical details and domain-specific terminology")
	}

	if ev.Features.FillerWordsCount > 5 {
		in.Weaknesses = append(in.Weaknesses, "Excessive use of filler words")
		in.QuickTips = append(in.QuickTips, "Practice reducing filler words (um, uh, like)")
	}

	return in
}

// InterpretScore maps a numeric score onto a performance level.
func InterpretScore(score float64) string {
	switch {
	case score >= 8:
		return "Excellent"
	case score >= 6:
		return "Good"
	case score >= 4:
		return "Fair"
	default:
		return "Needs Improvement"
	}
}
