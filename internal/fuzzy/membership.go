// Package fuzzy implements the Mamdani-style fuzzy inference engine that
// turns linguistic features into clarity, confidence and relevance scores.
// The engine is pure and deterministic: no randomness, no external calls,
// no state shared between evaluations.
package fuzzy

// Triangle is a triangular membership function with feet at A and C and peak
// at B. Degenerate shoulders (A == B or B == C) clamp the edge at full
// membership, matching trimf semantics.
type Triangle struct {
	A, B, C float64
}

// Membership returns the degree of membership of x, in [0, 1].
func (t Triangle) Membership(x float64) float64 {
	if x < t.A || x > t.C {
		return 0
	}
	if x == t.B {
		return 1
	}
	if x < t.B {
		if t.B == t.A {
			return 1
		}
		return (x - t.A) / (t.B - t.A)
	}
	if t.C == t.B {
		return 1
	}
	return (t.C - x) / (t.C - t.B)
}
