package token

import "strings"

// Estimator approximates token counts without a BPE vocabulary: one token
// per whitespace-separated word plus one per 4 extra runes of long words.
// Deterministic and dependency-free, used in tests and offline mode.
type Estimator struct{}

// NewEstimator returns a heuristic token counter.
func NewEstimator() *Estimator {
	return &Estimator{}
}

// Count estimates the number of tokens in text.
func (e *Estimator) Count(text string) int {
	if text == "" {
		return 0
	}
	n := 0
	for _, w := range strings.Fields(text) {
		n++
		if r := len([]rune(w)); r > 6 {
			n += (r - 6) / 4
		}
	}
	return n
}
