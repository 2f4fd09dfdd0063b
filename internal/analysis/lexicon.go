package analysis

import "strings"

// Fixed lexicons for lexical detection. These are compiled-in configuration
// data: initialized once, never mutated at runtime.
//
// Detection is presence-only: each entry counts at most once per answer
// regardless of repetition. This undercounts heavily repeated filler use,
// which is a known property of the scoring model rather than a bug.
var (
	fillerLexicon = []string{
		"um", "uh", "like", "you know", "i mean", "sort of",
		"basically", "actually", "literally", "so", "well",
	}

	confidenceLexicon = []string{
		"definitely", "certainly", "clearly", "obviously", "precisely",
		"exactly", "absolutely", "confident", "sure", "positive",
		"undoubtedly", "believe", "think", "know",
	}

	technicalLexicon = []string{
		"algorithm", "complexity", "database", "api", "framework",
		"architecture", "scalability", "optimization", "implementation",
		"design pattern", "microservice", "cache", "queue", "stack",
		"performance", "latency", "throughput", "distributed", "concurrent",
	}

	positiveLexicon = []string{
		"good", "excellent", "great", "positive", "success", "achieve",
		"improve", "effective", "efficient", "strong", "confident",
		"capable", "solution", "solve", "amazing",
	}

	negativeLexicon = []string{
		"bad", "poor", "fail", "difficult", "problem", "issue", "struggle",
		"weak", "unable", "cannot", "never", "impossible", "confused",
		"error", "wrong", "complicated",
	}
)

// countLexiconHits counts how many distinct lexicon entries occur in the
// answer. Multi-word entries match as substrings of the lowered text;
// single-word entries match against the token set so that, for example,
// "well-structured" does not register the filler "well".
func countLexiconHits(textLower string, tokens map[string]struct{}, lexicon []string) int {
	count := 0
	for _, entry := range lexicon {
		if strings.ContainsRune(entry, ' ') {
			if strings.Contains(textLower, entry) {
				count++
			}
			continue
		}
		if _, ok := tokens[entry]; ok {
			count++
		}
	}
	return count
}
