package evaluation

import "github.com/jonathan/interview-coach/internal/types"

// SummarizeFeatures maps raw feature values onto human-readable buckets.
// The summary rides along with each evaluation for explainability; nothing
// downstream branches on it.
func SummarizeFeatures(f *types.LinguisticFeatures) map[string]string {
	summary := make(map[string]string, 4)

	switch {
	case f.WordCount < 50:
		summary["length"] = "very brief"
	case f.WordCount < 100:
		summary["length"] = "brief"
	case f.WordCount < 200:
		summary["length"] = "moderate"
	default:
		summary["length"] = "detailed"
	}

	switch {
	case f.SentimentScore > 0.3:
		summary["tone"] = "positive"
	case f.SentimentScore < -0.3:
		summary["tone"] = "negative"
	default:
		summary["tone"] = "neutral"
	}

	switch {
	case f.CoherenceScore > 0.7:
		summary["coherence"] = "very coherent"
	case f.CoherenceScore > 0.4:
		summary["coherence"] = "moderately coherent"
	default:
		summary["coherence"] = "needs better structure"
	}

	switch {
	case f.ComplexityScore > 0.7:
		summary["complexity"] = "sophisticated vocabulary"
	case f.ComplexityScore > 0.4:
		summary["complexity"] = "moderate complexity"
	default:
		summary["complexity"] = "simple language"
	}

	return summary
}
