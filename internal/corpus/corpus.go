// Package corpus holds the subject-scoped question/answer pairs the tutor
// answers from, the fitted TF-IDF models over them, and the loaders for the
// on-disk formats.
package corpus

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/tutor/internal/textnorm"
	"github.com/alexanderramin/tutor/internal/tfidf"
)

var (
	// ErrEmptyCorpus is returned when a source yields no usable pairs.
	ErrEmptyCorpus = errors.New("corpus has no question/answer pairs")

	// ErrUnknownFormat is returned when a file is neither a legacy JSON
	// corpus nor a snapshot.
	ErrUnknownFormat = errors.New("unknown corpus format")
)

// QAPair is one stored question and the answer returned for it.
type QAPair struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Rule is a direct answer returned when every keyword occurs in the
// normalized question.
type Rule struct {
	Keywords []string `json:"keywords"`
	Answer   string   `json:"answer"`
}

// Matches reports whether all rule keywords occur in normalized.
func (r Rule) Matches(normalized string) bool {
	if len(r.Keywords) == 0 {
		return false
	}
	for _, kw := range r.Keywords {
		if !strings.Contains(normalized, kw) {
			return false
		}
	}
	return true
}

// SubjectData is the serializable content of one subject.
type SubjectData struct {
	Name  string   `json:"name"`
	Pairs []QAPair `json:"pairs"`
	Rules []Rule   `json:"rules,omitempty"`
}

// Subject is a loaded subject with its normalized questions and the
// vectorizer fitted on them. Pair order is match priority.
type Subject struct {
	Name  string
	Pairs []QAPair
	Rules []Rule

	normalized []string
	vectorizer *tfidf.Vectorizer
	matrix     tfidf.Matrix
}

// Key is the case-insensitive lookup key of the subject.
func (s *Subject) Key() string { return subjectKey(s.Name) }

// NormalizedQuestion returns the normalized form of pair i's question.
func (s *Subject) NormalizedQuestion(i int) string { return s.normalized[i] }

// Vectorized returns the subject's TF-IDF model. The vectorizer is nil when
// no question had an indexable term.
func (s *Subject) Vectorized() (*tfidf.Vectorizer, tfidf.Matrix) {
	return s.vectorizer, s.matrix
}

// Ref locates a pair inside a Store.
type Ref struct {
	Subject int
	Pair    int
}

// Store is the immutable, loaded corpus.
type Store struct {
	subjects []*Subject
	byKey    map[string]*Subject

	global       *tfidf.Vectorizer
	globalMatrix tfidf.Matrix
	globalRefs   []Ref

	origin string
}

// Source is a corpus as read from disk or built in code: either a
// LegacyCorpus or a VectorizedCorpus.
type Source interface {
	subjectData() []SubjectData
}

// LegacyCorpus is subject-keyed question/answer data with no fitted model.
type LegacyCorpus struct {
	Subjects []SubjectData
}

func (c LegacyCorpus) subjectData() []SubjectData { return c.Subjects }

// VectorizedCorpus carries a vectorizer and document matrix fitted over the
// concatenation of every subject's questions, in subject then pair order.
type VectorizedCorpus struct {
	Subjects   []SubjectData
	Vectorizer tfidf.State
	Matrix     tfidf.Matrix
}

func (c VectorizedCorpus) subjectData() []SubjectData { return c.Subjects }

// NewStore builds a Store from src. Legacy sources are cleaned (blank pairs
// dropped, repeated subject names merged) and fitted; vectorized sources
// must already be consistent with their matrix.
func NewStore(src Source) (*Store, error) {
	switch c := src.(type) {
	case LegacyCorpus:
		return buildLegacy(c)
	case *LegacyCorpus:
		return buildLegacy(*c)
	case VectorizedCorpus:
		return buildVectorized(c)
	case *VectorizedCorpus:
		return buildVectorized(*c)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownFormat, src)
	}
}

func buildLegacy(c LegacyCorpus) (*Store, error) {
	s := &Store{byKey: make(map[string]*Subject)}
	for _, sd := range c.Subjects {
		name := strings.TrimSpace(sd.Name)
		if name == "" {
			continue
		}
		subj, ok := s.byKey[subjectKey(name)]
		if !ok {
			subj = &Subject{Name: name}
		}
		for _, p := range sd.Pairs {
			q, a := strings.TrimSpace(p.Question), strings.TrimSpace(p.Answer)
			if q == "" || a == "" {
				continue
			}
			subj.Pairs = append(subj.Pairs, QAPair{Question: q, Answer: a})
		}
		subj.Rules = append(subj.Rules, sd.Rules...)
		if !ok && len(subj.Pairs) > 0 {
			s.subjects = append(s.subjects, subj)
			s.byKey[subj.Key()] = subj
		}
	}
	if s.Len() == 0 {
		return nil, ErrEmptyCorpus
	}
	for _, subj := range s.subjects {
		if len(subj.Rules) == 0 {
			subj.Rules = DefaultRules(subj.Name)
		}
	}
	s.prepare()

	docs := make([]string, 0, len(s.globalRefs))
	for _, ref := range s.globalRefs {
		docs = append(docs, s.subjects[ref.Subject].Pairs[ref.Pair].Question)
	}
	if v, m, err := tfidf.FitTransform(docs); err == nil {
		s.global, s.globalMatrix = v, m
	}
	return s, nil
}

func buildVectorized(c VectorizedCorpus) (*Store, error) {
	s := &Store{byKey: make(map[string]*Subject)}
	for _, sd := range c.Subjects {
		key := subjectKey(sd.Name)
		if key == "" {
			return nil, errors.New("snapshot subject with empty name")
		}
		if _, dup := s.byKey[key]; dup {
			return nil, fmt.Errorf("snapshot repeats subject %q", sd.Name)
		}
		for i, p := range sd.Pairs {
			if strings.TrimSpace(p.Question) == "" || strings.TrimSpace(p.Answer) == "" {
				return nil, fmt.Errorf("snapshot subject %q: blank pair at %d", sd.Name, i)
			}
		}
		subj := &Subject{Name: sd.Name, Pairs: append([]QAPair(nil), sd.Pairs...), Rules: sd.Rules}
		s.subjects = append(s.subjects, subj)
		s.byKey[key] = subj
	}
	if s.Len() == 0 {
		return nil, ErrEmptyCorpus
	}

	v, err := tfidf.FromState(c.Vectorizer)
	if err != nil {
		return nil, fmt.Errorf("restoring vectorizer: %w", err)
	}
	if len(c.Matrix) != s.Len() {
		return nil, fmt.Errorf("snapshot matrix has %d rows for %d pairs", len(c.Matrix), s.Len())
	}
	for i, row := range c.Matrix {
		for col := range row {
			if col < 0 || col >= v.Len() {
				return nil, fmt.Errorf("snapshot matrix row %d: column %d out of range", i, col)
			}
		}
	}
	s.prepare()
	s.global, s.globalMatrix = v, c.Matrix
	return s, nil
}

// prepare normalizes questions, fits per-subject models and lays out the
// global row order.
func (s *Store) prepare() {
	s.globalRefs = s.globalRefs[:0]
	for si, subj := range s.subjects {
		subj.normalized = make([]string, len(subj.Pairs))
		docs := make([]string, len(subj.Pairs))
		for pi, p := range subj.Pairs {
			subj.normalized[pi] = textnorm.Normalize(p.Question)
			docs[pi] = p.Question
			s.globalRefs = append(s.globalRefs, Ref{Subject: si, Pair: pi})
		}
		if v, m, err := tfidf.FitTransform(docs); err == nil {
			subj.vectorizer, subj.matrix = v, m
		}
	}
}

// Subjects returns the subjects in load order.
func (s *Store) Subjects() []*Subject { return s.subjects }

// Subject looks a subject up by name, ignoring case and surrounding space.
func (s *Store) Subject(name string) (*Subject, bool) {
	subj, ok := s.byKey[subjectKey(name)]
	return subj, ok
}

// SubjectNames returns the display names in load order.
func (s *Store) SubjectNames() []string {
	names := make([]string, len(s.subjects))
	for i, subj := range s.subjects {
		names[i] = subj.Name
	}
	return names
}

// Len is the total number of pairs.
func (s *Store) Len() int {
	n := 0
	for _, subj := range s.subjects {
		n += len(subj.Pairs)
	}
	return n
}

// Global returns the model fitted over every subject and the pair each row
// belongs to. The vectorizer is nil if nothing could be indexed.
func (s *Store) Global() (*tfidf.Vectorizer, tfidf.Matrix, []Ref) {
	return s.global, s.globalMatrix, s.globalRefs
}

// Resolve returns the subject and pair a Ref points to.
func (s *Store) Resolve(ref Ref) (*Subject, QAPair) {
	subj := s.subjects[ref.Subject]
	return subj, subj.Pairs[ref.Pair]
}

// Origin describes where the store was loaded from.
func (s *Store) Origin() string { return s.origin }

// WithOrigin records where the store was loaded from.
func (s *Store) WithOrigin(origin string) *Store {
	s.origin = origin
	return s
}

// Vectorized exports the store as a VectorizedCorpus suitable for a
// snapshot. It fails if the global model could not be fitted.
func (s *Store) Vectorized() (VectorizedCorpus, error) {
	if s.global == nil {
		return VectorizedCorpus{}, tfidf.ErrNotFitted
	}
	out := VectorizedCorpus{
		Vectorizer: s.global.State(),
		Matrix:     s.globalMatrix,
	}
	for _, subj := range s.subjects {
		out.Subjects = append(out.Subjects, SubjectData{
			Name:  subj.Name,
			Pairs: append([]QAPair(nil), subj.Pairs...),
			Rules: subj.Rules,
		})
	}
	return out, nil
}

func subjectKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
