package fuzzy

import "github.com/jonathan/interview-coach/internal/types"

// fullScaleWords is the answer length treated as the full-scale reference:
// answers of 150+ words saturate the word_count input.
const fullScaleWords = 150.0

// NormalizedFeatures are the six fuzzy inputs, each already clamped to the
// [0, 10] universe. Filler is inverted: higher means fewer fillers.
type NormalizedFeatures struct {
	WordCount       float64
	Coherence       float64
	ConfidenceLevel float64
	TechnicalDepth  float64
	FillerRatio     float64
	Complexity      float64
}

// Normalize maps raw linguistic features onto the fuzzy universe. Indicator
// counts are taken per 100 words; the max(wordCount/100, 1) divisor guards
// against short answers and zero word counts inflating (or crashing) the
// ratios.
func Normalize(f *types.LinguisticFeatures) NormalizedFeatures {
	per100 := float64(f.WordCount) / 100.0
	if per100 < 1 {
		per100 = 1
	}

	wordCount := float64(f.WordCount) / fullScaleWords * 10.0
	confidence := float64(f.ConfidenceIndicators) / per100 * 5.0
	technical := float64(f.TechnicalTermsCount) / per100 * 3.0
	filler := 10.0 - float64(f.FillerWordsCount)/per100*5.0

	return NormalizedFeatures{
		WordCount:       clamp(wordCount, universeMin, universeMax),
		Coherence:       clamp(f.CoherenceScore*10.0, universeMin, universeMax),
		ConfidenceLevel: clamp(confidence, universeMin, universeMax),
		TechnicalDepth:  clamp(technical, universeMin, universeMax),
		FillerRatio:     clamp(filler, universeMin, universeMax),
		Complexity:      clamp(f.ComplexityScore*10.0, universeMin, universeMax),
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
