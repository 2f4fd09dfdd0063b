// Package llm - util.go provides shared utilities for LLM response processing.
package llm

import "strings"

// CleanJSONBlock strips markdown code fences and conversational preamble from
// LLM output that is supposed to be a JSON object. Models often wrap JSON in
// ```json fences or prepend a sentence even when instructed not to.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		// Skip a language identifier left on the first line
		if idx := strings.Index(text, "\n"); idx >= 0 {
			firstLine := strings.TrimSpace(text[:idx])
			if firstLine != "" && len(firstLine) < 20 && !strings.ContainsAny(firstLine, " {") {
				text = text[idx+1:]
			}
		}
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		return strings.TrimSpace(text)
	}

	// Preamble before a bare JSON object: keep from the first '{' through
	// the last '}'.
	if !strings.HasPrefix(text, "{") {
		start := strings.Index(text, "{")
		end := strings.LastIndex(text, "}")
		if start >= 0 && end > start {
			return strings.TrimSpace(text[start : end+1])
		}
	}

	return text
}
