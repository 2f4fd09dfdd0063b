// Package types provides type definitions for structured data used throughout the interview-coach system.
package types

// LinguisticFeatures holds the measurements extracted from a single answer.
// All fields are computed in one pass by the analysis package; the struct is
// treated as an immutable value object after creation.
//
// Sentiment is a coarse bag-of-words polarity heuristic: it counts lexicon
// hits and does not handle negation or sarcasm. Coherence is adjacent-sentence
// keyword overlap, a weak proxy for discourse coherence (no entity resolution,
// no coreference).
type LinguisticFeatures struct {
	WordCount            int     `json:"word_count"`
	SentenceCount        int     `json:"sentence_count"`
	AvgSentenceLength    float64 `json:"avg_sentence_length"`
	SentimentScore       float64 `json:"sentiment_score"`       // [-1, 1]
	ConfidenceIndicators int     `json:"confidence_indicators"` // distinct lexicon hits
	FillerWordsCount     int     `json:"filler_words_count"`    // distinct lexicon hits
	TechnicalTermsCount  int     `json:"technical_terms_count"` // distinct lexicon hits
	CoherenceScore       float64 `json:"coherence_score"`       // [0, 1]
	ComplexityScore      float64 `json:"complexity_score"`      // [0, 1]
}

// EvaluationScore holds the crisp outputs of the fuzzy evaluator.
// Each field is in [0, 10], rounded to two decimals.
// Overall = 0.3*Clarity + 0.3*Confidence + 0.4*Relevance.
type EvaluationScore struct {
	Clarity    float64 `json:"clarity"`
	Confidence float64 `json:"confidence"`
	Relevance  float64 `json:"relevance"`
	Overall    float64 `json:"overall_score"`
}
