package analysis

import (
	"strings"
	"unicode"
)

// Segmenter splits raw text into words and sentences. The default
// implementation is a heuristic splitter; a richer linguistic backend can be
// plugged in, and extraction falls back to the heuristic if the backend
// misbehaves.
type Segmenter interface {
	// Words returns the tokens of the text with surrounding punctuation
	// stripped. Punctuation-only tokens are dropped.
	Words(text string) []string
	// Sentences returns the sentences of the text. Always returns at least
	// one sentence for non-blank input.
	Sentences(text string) []string
}

// heuristicSegmenter is the naive whitespace/terminal-punctuation splitter.
type heuristicSegmenter struct{}

func (heuristicSegmenter) Words(text string) []string {
	fields := strings.Fields(text)
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		w := trimPunct(f)
		if w != "" {
			words = append(words, w)
		}
	}
	return words
}

func (heuristicSegmenter) Sentences(text string) []string {
	var sentences []string
	var sb strings.Builder
	for _, r := range text {
		if r == '.' || r == '!' || r == '?' {
			if s := strings.TrimSpace(sb.String()); s != "" {
				sentences = append(sentences, s)
			}
			sb.Reset()
			continue
		}
		sb.WriteRune(r)
	}
	if s := strings.TrimSpace(sb.String()); s != "" {
		sentences = append(sentences, s)
	}
	if len(sentences) == 0 {
		if s := strings.TrimSpace(text); s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

// trimPunct strips leading and trailing punctuation and symbols from a token.
// Internal punctuation (hyphens, apostrophes) is preserved, so "well-structured"
// stays a single token.
func trimPunct(token string) string {
	return strings.TrimFunc(token, func(r rune) bool {
		return unicode.IsPunct(r) || unicode.IsSymbol(r)
	})
}

// lemma reduces a lowered token to a crude lemma by stripping common English
// inflection suffixes. It is intentionally simple; the coherence and
// diversity metrics only need repeated-concept detection, not real
// lemmatization.
func lemma(token string) string {
	t := strings.ToLower(token)
	switch {
	case len(t) > 4 && strings.HasSuffix(t, "ies"):
		return t[:len(t)-3] + "y"
	case len(t) > 5 && strings.HasSuffix(t, "ing"):
		return t[:len(t)-3]
	case len(t) > 4 && strings.HasSuffix(t, "ed"):
		return t[:len(t)-2]
	case len(t) > 4 && hasESPluralSuffix(t):
		return t[:len(t)-2]
	case len(t) > 3 && strings.HasSuffix(t, "s") && !strings.HasSuffix(t, "ss"):
		return t[:len(t)-1]
	default:
		return t
	}
}

// hasESPluralSuffix reports whether the token ends in an "-es" plural that
// should drop both letters (classes, boxes, matches) rather than just the "s"
// (databases, queues).
func hasESPluralSuffix(t string) bool {
	for _, sfx := range []string{"sses", "xes", "zes", "ches", "shes"} {
		if strings.HasSuffix(t, sfx) {
			return true
		}
	}
	return false
}

// stopwords approximates the function-word filter. Without a POS tagger,
// "content word" means any non-stopword token longer than two characters.
var stopwords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {}, "if": {},
	"of": {}, "to": {}, "in": {}, "on": {}, "at": {}, "by": {}, "for": {},
	"with": {}, "about": {}, "into": {}, "through": {}, "from": {}, "up": {},
	"down": {}, "out": {}, "over": {}, "under": {}, "again": {}, "then": {},
	"once": {}, "here": {}, "there": {}, "when": {}, "where": {}, "why": {},
	"how": {}, "all": {}, "any": {}, "both": {}, "each": {}, "few": {},
	"more": {}, "most": {}, "other": {}, "some": {}, "such": {}, "not": {},
	"only": {}, "own": {}, "same": {}, "than": {}, "too": {}, "very": {},
	"can": {}, "will": {}, "just": {}, "should": {}, "now": {}, "is": {},
	"are": {}, "was": {}, "were": {}, "be": {}, "been": {}, "being": {},
	"have": {}, "has": {}, "had": {}, "do": {}, "does": {}, "did": {},
	"it": {}, "its": {}, "this": {}, "that": {}, "these": {}, "those": {},
	"i": {}, "me": {}, "my": {}, "we": {}, "our": {}, "you": {}, "your": {},
	"he": {}, "him": {}, "his": {}, "she": {}, "her": {}, "they": {},
	"them": {}, "their": {}, "what": {}, "which": {}, "who": {}, "whom": {},
	"because": {}, "as": {}, "until": {}, "while": {}, "it's": {}, "i'm": {},
}

// contentLemmas returns the set of content-word lemmas for a token list.
func contentLemmas(tokens []string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range tokens {
		lower := strings.ToLower(tok)
		if _, stop := stopwords[lower]; stop {
			continue
		}
		if len([]rune(lower)) <= 2 {
			continue
		}
		set[lemma(lower)] = struct{}{}
	}
	return set
}

// jaccard computes |A∩B| / |A∪B| for two sets. Returns 0 and false when the
// union is empty, signalling the pair should be skipped.
func jaccard(a, b map[string]struct{}) (float64, bool) {
	if len(a) == 0 && len(b) == 0 {
		return 0, false
	}
	intersection := 0
	for k := range a {
		if _, ok := b[k]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0, false
	}
	return float64(intersection) / float64(union), true
}
