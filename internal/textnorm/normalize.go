// Package textnorm canonicalizes question text so that matching is
// insensitive to case and punctuation.
package textnorm

import (
	"slices"
	"strings"
	"unicode"
)

// questionWords is the interrogative and article list that carries no topic.
var questionWords = map[string]bool{
	"what": true, "is": true, "are": true, "how": true, "why": true,
	"when": true, "where": true, "who": true, "which": true,
	"the": true, "a": true, "an": true, "in": true, "on": true,
	"at": true, "to": true, "for": true, "with": true,
}

// Normalize lowercases text, drops every rune that is neither a letter, a
// digit nor whitespace, and trims the ends. Internal whitespace runs are
// kept as they are.
func Normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// Words splits text on whitespace.
func Words(text string) []string {
	return strings.Fields(text)
}

// ContainsPhrase reports whether the words of phrase appear consecutively
// in text, so "pi" does not match inside "respiration".
func ContainsPhrase(text, phrase string) bool {
	want := strings.Fields(phrase)
	if len(want) == 0 {
		return false
	}
	have := strings.Fields(text)
	for i := 0; i+len(want) <= len(have); i++ {
		if slices.Equal(have[i:i+len(want)], want) {
			return true
		}
	}
	return false
}

// ContentWords returns the words of an already normalized text that are not
// interrogatives or articles, in their original order.
func ContentWords(normalized string) []string {
	var out []string
	for _, w := range strings.Fields(normalized) {
		if !questionWords[w] {
			out = append(out, w)
		}
	}
	return out
}

// HasContentWord reports whether normalized contains at least one word that
// can identify a topic.
func HasContentWord(normalized string) bool {
	return len(ContentWords(normalized)) > 0
}

// IsQuestionWord reports whether w is on the interrogative/article list.
func IsQuestionWord(w string) bool {
	return questionWords[w]
}

// WordSet returns the set of lowercase whitespace-separated words in text.
func WordSet(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(strings.ToLower(text)) {
		set[w] = struct{}{}
	}
	return set
}

// Jaccard returns |A∩B| / |A∪B| over the lowercase word sets of a and b.
// Two empty texts score 0.
func Jaccard(a, b string) float64 {
	return JaccardSets(WordSet(a), WordSet(b))
}

// JaccardSets is Jaccard over precomputed word sets.
func JaccardSets(a, b map[string]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	inter := 0
	for w := range a {
		if _, ok := b[w]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}
