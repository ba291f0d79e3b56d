// Package sentiment scores free text with a fixed valence lexicon. It is
// deterministic and purely CPU-bound; journal entries are capped at 1000
// characters upstream so a call is effectively constant-time.
package sentiment

import (
	"strings"
	"unicode"
)

// Analyze returns the summed valence of the recognized tokens in text. Words
// outside the lexicon contribute nothing, so any string yields a real score;
// a fully unrecognized entry scores 0.
func Analyze(text string) float64 {
	tokens := tokenize(text)
	var score float64
	for i, tok := range tokens {
		v, ok := valences[tok]
		if !ok {
			continue
		}
		if i > 0 && negators[tokens[i-1]] {
			v = -v
		}
		score += v
	}
	return score
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})
}
