// Package mood maps the closed set of selectable mood labels to fixed
// sentiment scores in [-1, 1].
package mood

import (
	"errors"
	"sort"
)

var ErrUnknownMood = errors.New("unknown mood label")

// scores is exhaustive: every selectable label appears here, and submissions
// with any other label are rejected at the boundary. A MoodEntry therefore
// always carries the table value for its label.
var scores = map[string]float64{
	"Happy":        1,
	"Joyful":       1,
	"Excited":      1,
	"LOL":          0.5,
	"Warm":         0.8,
	"Peaceful":     0.7,
	"Content":      0.6,
	"Silly":        0.5,
	"Playful":      0.7,
	"Loved":        1,
	"Affectionate": 0.9,
	"Meh":          0,
	"Thinking":     0.2,
	"Blank":        0,
	"Smug":         -0.2,
	"Unamused":     -0.3,
	"Over it":      -0.4,
	"Awkward":      -0.5,
	"Down":         -0.8,
	"Sad":          -1,
	"Heartbroken":  -1,
	"Exhausted":    -0.7,
	"Pleading":     -0.6,
	"Frustrated":   -0.8,
	"Furious":      -1,
	"Mind-blown":   0.8,
	"Scared":       -0.9,
	"Melting":      -0.5,
	"Overwhelmed":  -0.7,
	"Invisible":    -0.6,
}

// Score returns the fixed sentiment score for label, or ErrUnknownMood when
// the label is not in the table. Callers must reject the write on error;
// there is no default score.
func Score(label string) (float64, error) {
	s, ok := scores[label]
	if !ok {
		return 0, ErrUnknownMood
	}
	return s, nil
}

// Labels returns every recognized label in sorted order.
func Labels() []string {
	out := make([]string, 0, len(scores))
	for l := range scores {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}
