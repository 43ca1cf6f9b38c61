// Package tfidf builds TF-IDF document vectors over question text and
// scores queries against them with cosine similarity.
package tfidf

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode"
)

// ErrNotFitted is returned when a vectorizer has no vocabulary.
var ErrNotFitted = errors.New("tfidf vectorizer not fitted")

// Vector is a sparse, L2-normalized TF-IDF row keyed by term column.
type Vector map[int]float64

// Matrix holds one Vector per fitted document, in document order.
type Matrix []Vector

// Vectorizer maps text onto a fixed vocabulary with smoothed IDF weights.
// The vocabulary is sorted so column indices are stable across runs.
type Vectorizer struct {
	terms []string
	idf   []float64
	index map[string]int
}

// State is the serializable form of a fitted Vectorizer.
type State struct {
	Terms []string  `json:"terms"`
	IDF   []float64 `json:"idf"`
}

// Fit learns the vocabulary and IDF weights from docs.
func Fit(docs []string) (*Vectorizer, error) {
	if len(docs) == 0 {
		return nil, errors.New("empty corpus for tf-idf fit")
	}

	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]struct{})
		for _, tok := range Tokenize(doc) {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	if len(terms) == 0 {
		return nil, errors.New("no tokens found in corpus")
	}

	n := float64(len(docs))
	idf := make([]float64, len(terms))
	for i, term := range terms {
		// Smoothed IDF
		idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1.0
	}
	return newVectorizer(terms, idf), nil
}

// FitTransform fits a vectorizer on docs and returns their rows.
func FitTransform(docs []string) (*Vectorizer, Matrix, error) {
	v, err := Fit(docs)
	if err != nil {
		return nil, nil, err
	}
	m := make(Matrix, len(docs))
	for i, doc := range docs {
		m[i] = v.Transform(doc)
	}
	return v, m, nil
}

// FromState rebuilds a vectorizer that was previously fitted.
func FromState(s State) (*Vectorizer, error) {
	if len(s.Terms) == 0 {
		return nil, ErrNotFitted
	}
	if len(s.Terms) != len(s.IDF) {
		return nil, fmt.Errorf("vectorizer state: %d terms but %d idf weights", len(s.Terms), len(s.IDF))
	}
	if !sort.StringsAreSorted(s.Terms) {
		return nil, errors.New("vectorizer state: terms not sorted")
	}
	return newVectorizer(append([]string(nil), s.Terms...), append([]float64(nil), s.IDF...)), nil
}

func newVectorizer(terms []string, idf []float64) *Vectorizer {
	index := make(map[string]int, len(terms))
	for i, t := range terms {
		index[t] = i
	}
	return &Vectorizer{terms: terms, idf: idf, index: index}
}

// State returns a copy of the fitted vocabulary and weights.
func (v *Vectorizer) State() State {
	return State{
		Terms: append([]string(nil), v.terms...),
		IDF:   append([]float64(nil), v.idf...),
	}
}

// Len is the vocabulary size.
func (v *Vectorizer) Len() int { return len(v.terms) }

// Transform returns the L2-normalized TF-IDF vector of text. Terms outside
// the vocabulary are ignored; text with no known terms yields an empty vector.
func (v *Vectorizer) Transform(text string) Vector {
	tf := make(map[int]int)
	for _, tok := range Tokenize(text) {
		if idx, ok := v.index[tok]; ok {
			tf[idx]++
		}
	}
	vec := make(Vector, len(tf))
	norm := 0.0
	for idx, count := range tf {
		w := float64(count) * v.idf[idx]
		vec[idx] = w
		norm += w * w
	}
	if norm == 0 {
		return vec
	}
	norm = math.Sqrt(norm)
	for idx := range vec {
		vec[idx] /= norm
	}
	return vec
}

// Cosine returns the cosine similarity of a and b. Empty vectors score 0.
func Cosine(a, b Vector) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	if len(b) < len(a) {
		a, b = b, a
	}
	dot, na, nb := 0.0, 0.0, 0.0
	for idx, x := range a {
		dot += x * b[idx]
		na += x * x
	}
	for _, y := range b {
		nb += y * y
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

// Best returns the row of m most similar to query. Ties keep the earliest
// row. It returns -1 when m is empty.
func Best(query Vector, m Matrix) (int, float64) {
	best, bestScore := -1, 0.0
	for i, row := range m {
		s := Cosine(query, row)
		if best == -1 || s > bestScore {
			best, bestScore = i, s
		}
	}
	return best, bestScore
}

// Tokenize lowercases text, splits it on anything that is not a letter or
// digit, and drops single-rune tokens and English stop words.
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	out := fields[:0]
	for _, f := range fields {
		if len([]rune(f)) < 2 {
			continue
		}
		if _, stop := stopWords[f]; stop {
			continue
		}
		out = append(out, f)
	}
	return out
}
