// Package analysis extracts linguistic features from raw interview answers.
// It is stateless across calls: the only shared data are the fixed lexicons,
// which are read-only for the process lifetime.
package analysis

import (
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/interview-coach/internal/types"
)

// Extractor turns raw answer text into a LinguisticFeatures bundle.
type Extractor struct {
	seg Segmenter
	log *zap.Logger
}

// NewExtractor creates an extractor using the heuristic segmenter.
// A nil logger is replaced with a no-op logger.
func NewExtractor(log *zap.Logger) *Extractor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Extractor{seg: heuristicSegmenter{}, log: log}
}

// NewExtractorWithSegmenter creates an extractor backed by a custom segmenter.
// If the segmenter fails at runtime, extraction silently degrades to the
// heuristic splitter instead of surfacing an error.
func NewExtractorWithSegmenter(seg Segmenter, log *zap.Logger) *Extractor {
	e := NewExtractor(log)
	if seg != nil {
		e.seg = seg
	}
	return e
}

// ExtractFeatures analyzes the answer text and returns its feature bundle.
// It returns *EmptyInputError for blank input and never fails otherwise.
func (e *Extractor) ExtractFeatures(text string) (*types.LinguisticFeatures, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &EmptyInputError{}
	}

	textLower := strings.ToLower(text)

	words := e.segmentWords(text)
	sentences := e.segmentSentences(text)

	wordCount := len(words)
	sentenceCount := len(sentences)
	if sentenceCount < 1 {
		sentenceCount = 1
	}
	avgSentenceLength := float64(wordCount) / float64(sentenceCount)

	tokens := make(map[string]struct{}, wordCount)
	for _, w := range words {
		tokens[strings.ToLower(w)] = struct{}{}
	}

	fillerCount := countLexiconHits(textLower, tokens, fillerLexicon)
	confidenceCount := countLexiconHits(textLower, tokens, confidenceLexicon)
	technicalCount := countLexiconHits(textLower, tokens, technicalLexicon)
	sentiment := calculateSentiment(textLower, tokens)
	coherence := e.calculateCoherence(sentences)
	complexity := calculateComplexity(words)

	return &types.LinguisticFeatures{
		WordCount:            wordCount,
		SentenceCount:        sentenceCount,
		AvgSentenceLength:    round(avgSentenceLength, 2),
		SentimentScore:       round(sentiment, 3),
		ConfidenceIndicators: confidenceCount,
		FillerWordsCount:     fillerCount,
		TechnicalTermsCount:  technicalCount,
		CoherenceScore:       round(coherence, 3),
		ComplexityScore:      round(complexity, 3),
	}, nil
}

// segmentWords runs the configured segmenter, falling back to the heuristic
// splitter if the segmenter panics. The degradation is logged, not surfaced.
func (e *Extractor) segmentWords(text string) (words []string) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Debug("word segmenter failed, using heuristic fallback", zap.Any("cause", r))
			words = heuristicSegmenter{}.Words(text)
		}
	}()
	words = e.seg.Words(text)
	return words
}

func (e *Extractor) segmentSentences(text string) (sentences []string) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Debug("sentence segmenter failed, using heuristic fallback", zap.Any("cause", r))
			sentences = heuristicSegmenter{}.Sentences(text)
		}
	}()
	sentences = e.seg.Sentences(text)
	if len(sentences) == 0 {
		sentences = heuristicSegmenter{}.Sentences(text)
	}
	return sentences
}

// calculateSentiment computes net polarity in [-1, 1] from lexicon counts.
func calculateSentiment(textLower string, tokens map[string]struct{}) float64 {
	pos := countLexiconHits(textLower, tokens, positiveLexicon)
	neg := countLexiconHits(textLower, tokens, negativeLexicon)
	total := pos + neg
	if total == 0 {
		return 0.0
	}
	return float64(pos-neg) / float64(total)
}

// calculateCoherence computes the mean Jaccard overlap of content-word lemma
// sets between consecutive sentences. With fewer than two sentences (or no
// comparable pairs) it returns the neutral 0.5.
func (e *Extractor) calculateCoherence(sentences []string) float64 {
	if len(sentences) < 2 {
		return 0.5
	}

	keywordSets := make([]map[string]struct{}, len(sentences))
	for i, sent := range sentences {
		keywordSets[i] = contentLemmas(e.segmentWords(sent))
	}

	sum := 0.0
	pairs := 0
	for i := 0; i < len(keywordSets)-1; i++ {
		if overlap, ok := jaccard(keywordSets[i], keywordSets[i+1]); ok {
			sum += overlap
			pairs++
		}
	}
	if pairs == 0 {
		return 0.5
	}
	return sum / float64(pairs)
}

// calculateComplexity combines lexical diversity (unique lemmas over total
// words) with normalized average word length: 0.6*diversity + 0.4*length.
func calculateComplexity(words []string) float64 {
	if len(words) == 0 {
		return 0.0
	}

	uniqueLemmas := make(map[string]struct{}, len(words))
	totalChars := 0
	for _, w := range words {
		uniqueLemmas[lemma(w)] = struct{}{}
		totalChars += len([]rune(w))
	}

	diversity := float64(len(uniqueLemmas)) / float64(len(words))
	avgWordLength := float64(totalChars) / float64(len(words))
	lengthScore := math.Min(avgWordLength/10.0, 1.0)

	complexity := diversity*0.6 + lengthScore*0.4
	if complexity > 1.0 {
		complexity = 1.0
	}
	return complexity
}

func round(v float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(v*factor) / factor
}
